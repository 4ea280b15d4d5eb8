package replay

// Turn numbers a simulation step from the beginning of the recording.
// Turns recorded into a replay must be strictly increasing; gaps are
// allowed.
type Turn uint64

// World is the capability contract a simulation state type implements to
// be replay-compatible. The type parameter I is the simulation's external
// input type, typically player input; inputs must round-trip through CBOR
// and support comparison in tests.
//
// Decode calls these methods on a zero value of the world type, so they
// must not depend on instance state.
type World[I any] interface {
	// MagicBytes returns the per-simulation identifier embedded in every
	// container. It rejects save files and replays from incompatible
	// simulation code early.
	MagicBytes() [4]byte

	// CurrentVersion is the simulation's own schema version. It is
	// written to containers to make backward compatible parsers possible.
	CurrentVersion() uint32

	// GuardVersion reports whether a stored version is still loadable by
	// the running simulation code. Exact match against CurrentVersion is
	// the conventional implementation.
	GuardVersion(version uint32) bool
}

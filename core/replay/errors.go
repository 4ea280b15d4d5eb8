package replay

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingTurnInput reports a turn input block with length zero.
	// Unlike the initial state, inputs are never legitimately
	// empty-serialized once declared present in the input count.
	ErrMissingTurnInput = errors.New("turn input with length 0 in replay")
)

// IncoherentTurnError reports a Record call whose turn is not strictly
// greater than the last recorded turn. It is a caller-contract failure:
// the log is left untouched and no corruption is implied.
type IncoherentTurnError struct {
	Last      Turn
	Attempted Turn
}

func (e *IncoherentTurnError) Error() string {
	return fmt.Sprintf("cannot record non-monotonic turn: last turn %d, tried to record turn %d", e.Last, e.Attempted)
}

// InvalidMagicError reports a container whose core or game magic bytes do
// not match the expected identifier.
type InvalidMagicError struct {
	Found [4]byte
	Want  [4]byte
}

func (e *InvalidMagicError) Error() string {
	return fmt.Sprintf("invalid magic bytes in header: %q, expected %q", e.Found[:], e.Want[:])
}

// UnsupportedCoreVersionError reports a container written by a different
// version of the replay format layer.
type UnsupportedCoreVersionError struct {
	Version uint32
}

func (e *UnsupportedCoreVersionError) Error() string {
	return fmt.Sprintf("unsupported core version of replay format: %d", e.Version)
}

// UnsupportedGameVersionError reports a stored game version rejected by
// the world's version guard.
type UnsupportedGameVersionError struct {
	Version uint32
}

func (e *UnsupportedGameVersionError) Error() string {
	return fmt.Sprintf("unsupported game version of replay format: %d", e.Version)
}

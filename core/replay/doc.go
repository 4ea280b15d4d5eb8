// Package replay records and reconstructs deterministic simulations.
//
// # Overview
//
// A deterministic simulation is fully determined by its initial state and
// the external inputs applied on each turn. [Replay] captures exactly
// that: a snapshot of the state at turn zero plus the turn-ordered log of
// inputs. Serializing a replay and feeding it back into the same
// simulation code reproduces the state at any recorded turn.
//
// # World contract
//
// The core knows nothing about how a simulation steps, renders or
// interprets inputs. A simulation type plugs in through the [World]
// capability contract: a 4-byte magic identifier, a schema version and a
// version guard. The input type is carried as a type parameter; both the
// world state and its inputs round-trip through CBOR.
//
//	type Pong struct {
//	    BallX float64 `json:"ball_x"`
//	    BallY float64 `json:"ball_y"`
//	}
//
//	func (Pong) MagicBytes() [4]byte        { return [4]byte{'P', 'O', 'N', 'G'} }
//	func (Pong) CurrentVersion() uint32     { return 1 }
//	func (Pong) GuardVersion(v uint32) bool { return v == 1 }
//
// The contract is queried on a zero value during decode, so implement it
// with value receivers that do not touch instance state.
//
// # Recording and persistence
//
//	r := replay.New[Pong, PongInput](initial, 60)
//	err := r.Record(1, []PongInput{{Move: +1}})
//	err = r.Save("match.stgr")
//
//	r2, err := replay.Load[Pong, PongInput]("match.stgr")
//
// Record enforces strictly increasing turns and is the only in-place
// mutator. Encode and Decode are the one-shot equivalents of Save and
// Load for in-memory buffers. Load reads its source in chunks and
// re-attempts a full decode as the buffer grows, so it works on sources
// of unknown total length, including files still being written.
//
// # Container format
//
// All integers are fixed-width big-endian, payloads are CBOR:
//
//	"STGR"          core magic
//	u32             core format version (currently 1)
//	[4]byte         game magic, from World.MagicBytes
//	u32             game version, from World.CurrentVersion
//	u32             rate, turns per second
//	u64 + bytes     initial state block (length may be 0: zero-value world)
//	u64             turn count, then per turn:
//	    u64             turn number
//	    u64             input count, then per input:
//	        u64 + bytes     input payload (length 0 is fatal)
//
// There is no compression and no checksum.
//
// # Failure modes
//
// Structural failures (wrong magic, unsupported version, invalid length,
// malformed payload, missing turn input, I/O) abort the operation with no
// partial result. A non-monotonic turn passed to Record is a local
// caller-contract failure that leaves the log untouched. A zero-length
// initial state block is benign: it decodes to the zero-value world with
// a logged warning. Decode failures carry the path of field labels from
// outermost to innermost, see the wire package.
package replay

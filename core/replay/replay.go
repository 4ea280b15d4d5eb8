package replay

import (
	"io"

	"github.com/Teaspot-Studio/strategka/core/wire"
)

// Magic bytes distinguishing replay containers from other files. Ascii for STGR.
var magicBytes = [4]byte{0x53, 0x54, 0x47, 0x52}

// FormatVersion is the container format version this core emits and accepts.
const FormatVersion uint32 = 1

// DefaultRate is the assumed turns per second when none is given.
const DefaultRate uint32 = 60

// TurnEntry is one line of the input log: every external input recorded
// for a single turn, in arrival order.
type TurnEntry[I any] struct {
	Turn   Turn
	Inputs []I
}

// Replay is the serializable record of a simulation: the initial state
// plus the turn-ordered log of external inputs. The simulation is assumed
// to run at a constant rate of turns per second; the rate is stored as
// metadata and not enforced here.
//
// Record is the only in-place mutator. Two Replay values share no state
// and may be used concurrently on separate goroutines without
// coordination.
type Replay[W World[I], I any] struct {
	// Rate is simulation turns per second.
	Rate uint32
	// Initial is the simulation state at turn zero. It is set at
	// construction and never mutated by replay operations.
	Initial W
	// Inputs is the chronological input log, one entry per recorded turn.
	Inputs []TurnEntry[I]
}

// New creates an empty replay starting from the given initial state.
func New[W World[I], I any](initial W, rate uint32) *Replay[W, I] {
	return &Replay[W, I]{Rate: rate, Initial: initial}
}

// NewDefault creates an empty replay of the zero-value world at DefaultRate.
func NewDefault[W World[I], I any]() *Replay[W, I] {
	var initial W
	return New[W, I](initial, DefaultRate)
}

// Record appends the inputs observed on a turn. Turns must be strictly
// increasing across calls; a turn may legitimately carry zero inputs. On
// failure the log is left untouched.
func (r *Replay[W, I]) Record(turn Turn, inputs []I) error {
	if n := len(r.Inputs); n > 0 {
		if last := r.Inputs[n-1].Turn; last >= turn {
			return &IncoherentTurnError{Last: last, Attempted: turn}
		}
	}
	var batch []I
	if len(inputs) > 0 {
		batch = make([]I, len(inputs))
		copy(batch, inputs)
	}
	r.Inputs = append(r.Inputs, TurnEntry[I]{Turn: turn, Inputs: batch})
	return nil
}

// Encode writes the replay container to sink in one shot.
func (r *Replay[W, I]) Encode(sink io.Writer, opts ...Option) error {
	o := newOptions(opts)
	defer o.metrics.EncodeDuration().ObserveDuration()

	cw := &countingWriter{w: sink}
	e := wire.NewEncoder(cw, wire.WithEncoderLogger(o.log))
	if err := e.Raw(magicBytes[:]); err != nil {
		return err
	}
	if err := e.Uint32(FormatVersion); err != nil {
		return err
	}
	gameMagic := r.Initial.MagicBytes()
	if err := e.Raw(gameMagic[:]); err != nil {
		return err
	}
	if err := e.Uint32(r.Initial.CurrentVersion()); err != nil {
		return err
	}
	if err := e.Uint32(r.Rate); err != nil {
		return err
	}
	if err := e.LengthPrefixed(func(e *wire.Encoder) error {
		return e.Payload(r.Initial)
	}); err != nil {
		return err
	}
	err := wire.EncodeSeq(e, r.Inputs, func(e *wire.Encoder, entry TurnEntry[I]) error {
		if err := e.Uint64(uint64(entry.Turn)); err != nil {
			return err
		}
		return wire.EncodeSeq(e, entry.Inputs, func(e *wire.Encoder, input I) error {
			return e.LengthPrefixed(func(e *wire.Encoder) error {
				return e.Payload(input)
			})
		})
	})
	if err != nil {
		return err
	}
	o.metrics.EncodedBytes(cw.n)
	return nil
}

// Decode reconstructs a replay from a fully buffered container. Trailing
// bytes after the container are ignored. For sources of unknown total
// length use Load or LoadFrom instead.
func Decode[W World[I], I any](data []byte, opts ...Option) (*Replay[W, I], error) {
	o := newOptions(opts)
	defer o.metrics.DecodeDuration().ObserveDuration()

	d := wire.NewDecoder(data, wire.WithDecoderLogger(o.log))
	return decode[W, I](d)
}

func decode[W World[I], I any](d *wire.Decoder) (*Replay[W, I], error) {
	var probe W
	if err := expectMagic(d, "core magic bytes", magicBytes); err != nil {
		return nil, err
	}
	coreVersion, err := d.Uint32("core version")
	if err != nil {
		return nil, err
	}
	if coreVersion != FormatVersion {
		return nil, &UnsupportedCoreVersionError{Version: coreVersion}
	}
	if err := expectMagic(d, "game magic bytes", probe.MagicBytes()); err != nil {
		return nil, err
	}
	gameVersion, err := d.Uint32("game version")
	if err != nil {
		return nil, err
	}
	if !probe.GuardVersion(gameVersion) {
		return nil, &UnsupportedGameVersionError{Version: gameVersion}
	}
	rate, err := d.Uint32("simulation rate")
	if err != nil {
		return nil, err
	}
	// An empty block is benign here: the zero-value world stands in.
	var initial W
	_, err = d.LengthPrefixed("initial world", func(d *wire.Decoder) error {
		v, err := wire.Payload[W](d)
		if err != nil {
			return err
		}
		initial = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	entries, err := wire.DecodeSeq(d, "inputs", decodeTurn[I])
	if err != nil {
		return nil, err
	}
	return &Replay[W, I]{Rate: rate, Initial: initial, Inputs: entries}, nil
}

func decodeTurn[I any](d *wire.Decoder) (TurnEntry[I], error) {
	turn, err := d.Uint64("turn number")
	if err != nil {
		return TurnEntry[I]{}, err
	}
	inputs, err := wire.DecodeSeq(d, "turn inputs", decodeInput[I])
	if err != nil {
		return TurnEntry[I]{}, err
	}
	return TurnEntry[I]{Turn: Turn(turn), Inputs: inputs}, nil
}

func decodeInput[I any](d *wire.Decoder) (I, error) {
	var input I
	present, err := d.LengthPrefixed("turn input", func(d *wire.Decoder) error {
		v, err := wire.Payload[I](d)
		if err != nil {
			return err
		}
		input = v
		return nil
	})
	if err != nil {
		return input, err
	}
	if !present {
		return input, ErrMissingTurnInput
	}
	return input, nil
}

func expectMagic(d *wire.Decoder, label string, want [4]byte) error {
	b, err := d.Bytes(len(want), label)
	if err != nil {
		return err
	}
	var found [4]byte
	copy(found[:], b)
	if found != want {
		return &InvalidMagicError{Found: found, Want: want}
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

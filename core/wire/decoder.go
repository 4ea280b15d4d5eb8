package wire

import (
	"encoding/binary"
	"fmt"
	"log/slog"
)

// Mode selects how the decoder reports running out of bytes.
type Mode int

const (
	// Complete treats the buffer as the entire input: a length prefix
	// declaring more bytes than remain is structurally invalid.
	Complete Mode = iota
	// Streaming treats the buffer as a growing prefix of the input: every
	// shortfall is reported as IncompleteError so the caller can retry
	// once more bytes have arrived.
	Streaming
)

// Decoder is a pull-parser cursor over an immutable byte buffer. It never
// mutates its input and holds no state beyond the cursor position. Each
// read either consumes a prefix of the remaining input or fails with a
// typed error carrying the context path of field labels.
type Decoder struct {
	buf  []byte
	pos  int
	mode Mode
	log  *slog.Logger
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithMode sets the shortfall reporting mode. The default is Complete.
func WithMode(m Mode) DecoderOption {
	return func(d *Decoder) { d.mode = m }
}

// WithDecoderLogger routes the decoder's non-fatal diagnostics to log.
func WithDecoderLogger(log *slog.Logger) DecoderOption {
	return func(d *Decoder) { d.log = log }
}

func NewDecoder(buf []byte, opts ...DecoderOption) *Decoder {
	d := &Decoder{buf: buf, log: slog.Default()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Remaining reports how many bytes are left to consume.
func (d *Decoder) Remaining() int { return len(d.buf) - d.pos }

// Offset reports the cursor position from the start of the buffer.
func (d *Decoder) Offset() int { return d.pos }

func (d *Decoder) take(n int) ([]byte, error) {
	if rem := d.Remaining(); rem < n {
		return nil, &IncompleteError{Needed: uint64(n - rem)}
	}
	out := d.buf[d.pos : d.pos+n]
	d.pos += n
	return out, nil
}

// Bytes consumes exactly n bytes. The returned slice aliases the buffer
// and must not be mutated.
func (d *Decoder) Bytes(n int, label string) ([]byte, error) {
	b, err := d.take(n)
	if err != nil {
		return nil, Context(label, err)
	}
	return b, nil
}

// Uint32 consumes exactly 4 bytes, big-endian.
func (d *Decoder) Uint32(label string) (uint32, error) {
	b, err := d.take(4)
	if err != nil {
		return 0, Context(label, err)
	}
	return binary.BigEndian.Uint32(b), nil
}

// Uint64 consumes exactly 8 bytes, big-endian.
func (d *Decoder) Uint64(label string) (uint64, error) {
	b, err := d.take(8)
	if err != nil {
		return 0, Context(label, err)
	}
	return binary.BigEndian.Uint64(b), nil
}

// LengthPrefixed reads a u64 length prefix and parses the block behind it
// with fn, restricted to exactly the declared bytes. fn must consume the
// whole block. A zero-length block yields present == false without
// invoking fn; whether that is benign is the caller's decision.
//
// In Complete mode a declared length exceeding the remaining bytes is an
// InvalidLengthError; in Streaming mode it is an IncompleteError carrying
// the shortage.
func (d *Decoder) LengthPrefixed(label string, fn func(*Decoder) error) (present bool, err error) {
	length, err := d.Uint64("block length")
	if err != nil {
		return false, Context(label, err)
	}
	if rem := uint64(d.Remaining()); rem < length {
		if d.mode == Streaming {
			return false, Context(label, &IncompleteError{Needed: length - rem})
		}
		return false, Context(label, &InvalidLengthError{Declared: length, Available: int(rem)})
	}
	if length == 0 {
		d.log.Warn("length-prefixed block is empty", slog.String("field", label))
		return false, nil
	}
	sub := &Decoder{buf: d.buf[d.pos : d.pos+int(length)], mode: Complete, log: d.log}
	if err := fn(sub); err != nil {
		return false, Context(label, Context("block body", err))
	}
	if rem := sub.Remaining(); rem != 0 {
		err := fmt.Errorf("block body left %d of %d bytes unconsumed", rem, length)
		return false, Context(label, &DecoderError{Err: err})
	}
	d.pos += int(length)
	return true, nil
}

// DecodeSeq reads a u64 element count and then exactly that many items
// with item, propagating the first item failure immediately. A zero count
// yields a nil slice.
func DecodeSeq[T any](d *Decoder, label string, item func(*Decoder) (T, error)) ([]T, error) {
	count, err := d.Uint64("sequence length")
	if err != nil {
		return nil, Context(label, err)
	}
	var out []T
	for i := uint64(0); i < count; i++ {
		v, err := item(d)
		if err != nil {
			return nil, Context(label, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Payload decodes a CBOR payload from the entire remaining input of d,
// typically the restricted slice of a length-prefixed block. Trailing
// bytes after the CBOR item are a decode failure.
func Payload[T any](d *Decoder) (T, error) {
	var v T
	b, err := d.take(d.Remaining())
	if err != nil {
		return v, err
	}
	if err := payloadCodec.Unmarshal(b, &v); err != nil {
		return v, &DecoderError{Err: err}
	}
	return v, nil
}

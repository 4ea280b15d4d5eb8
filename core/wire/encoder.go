package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"

	"github.com/Teaspot-Studio/strategka/internal/codec"
)

var payloadCodec codec.Codec = codec.CBORCodec{}

// Encoder writes the fixed-width, big-endian primitives of the container
// format to a sink. It buffers only transiently, to measure the length of a
// variable-size nested block before emitting its prefix.
type Encoder struct {
	w   io.Writer
	log *slog.Logger
}

// EncoderOption configures an Encoder.
type EncoderOption func(*Encoder)

// WithEncoderLogger routes the encoder's non-fatal diagnostics to log.
func WithEncoderLogger(log *slog.Logger) EncoderOption {
	return func(e *Encoder) { e.log = log }
}

func NewEncoder(w io.Writer, opts ...EncoderOption) *Encoder {
	e := &Encoder{w: w, log: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Raw writes p verbatim.
func (e *Encoder) Raw(p []byte) error {
	if _, err := e.w.Write(p); err != nil {
		return fmt.Errorf("write to sink: %w", err)
	}
	return nil
}

// Uint32 writes exactly 4 bytes, big-endian.
func (e *Encoder) Uint32(v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return e.Raw(buf[:])
}

// Uint64 writes exactly 8 bytes, big-endian.
func (e *Encoder) Uint64(v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return e.Raw(buf[:])
}

// LengthPrefixed buffers the output of body, writes its byte length as a
// u64 prefix and then the body itself. The prefix is written even when the
// body is empty; the body bytes are written only when non-empty.
func (e *Encoder) LengthPrefixed(body func(*Encoder) error) error {
	var buf bytes.Buffer
	if err := body(&Encoder{w: &buf, log: e.log}); err != nil {
		return err
	}
	if err := e.Uint64(uint64(buf.Len())); err != nil {
		return err
	}
	if buf.Len() == 0 {
		return nil
	}
	return e.Raw(buf.Bytes())
}

// Payload serializes v through the payload codec into the sink. A
// zero-byte serialization is success: the surrounding length prefix will
// correctly read back as zero, so the condition is only logged.
func (e *Encoder) Payload(v any) error {
	data, err := payloadCodec.Marshal(v)
	if err != nil {
		return &EncoderError{Err: err}
	}
	if len(data) == 0 {
		e.log.Warn("serialized payload body is empty", slog.String("type", fmt.Sprintf("%T", v)))
		return nil
	}
	return e.Raw(data)
}

// EncodeSeq writes the element count as a u64 followed by every element in
// order. Elements carry no framing beyond what item itself performs.
func EncodeSeq[T any](e *Encoder, items []T, item func(*Encoder, T) error) error {
	if err := e.Uint64(uint64(len(items))); err != nil {
		return err
	}
	for i := range items {
		if err := item(e, items[i]); err != nil {
			return err
		}
	}
	return nil
}

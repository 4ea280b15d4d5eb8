package codec

import "github.com/fxamacker/cbor/v2"

// Codec serializes the opaque payload values of the container format.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// CBORCodec encodes payloads as CBOR (RFC 8949). Struct types can reuse
// their json tags; fxamacker/cbor falls back to them.
type CBORCodec struct{}

func (CBORCodec) Marshal(v any) ([]byte, error)   { return cbor.Marshal(v) }
func (CBORCodec) Unmarshal(b []byte, v any) error { return cbor.Unmarshal(b, v) }

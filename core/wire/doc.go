// Package wire provides the primitive codec layer of the replay container
// format: fixed-width big-endian integers, length-prefixed block framing,
// homogeneous-sequence framing and a guarded CBOR payload step.
//
// # Encoding
//
// [Encoder] writes sequentially to a caller-provided sink. Nested
// variable-size blocks are buffered transiently so their byte length can be
// emitted as a u64 prefix before the body:
//
//	e := wire.NewEncoder(sink)
//	err := e.LengthPrefixed(func(e *wire.Encoder) error {
//	    return e.Payload(value)
//	})
//
// # Decoding
//
// [Decoder] is an explicit cursor over an immutable byte buffer. Each read
// consumes a prefix of the remaining input or fails with a typed error.
// Every field read carries a static label; failures accumulate an
// outermost-to-innermost path of labels (see [ContextError] and [Path])
// without losing the innermost cause.
//
// The decoder runs in one of two modes. In [Complete] mode the buffer is
// the whole input, so a length prefix declaring more bytes than remain is
// structurally invalid ([InvalidLengthError]). In [Streaming] mode the
// buffer is a growing prefix of the input and every shortfall is reported
// as [IncompleteError], letting a caller retry once more bytes arrive.
// Partial reads of a well-formed, still-growing file are therefore never
// misreported as corruption.
//
// # Payloads
//
// Payload values are CBOR. A zero-byte serialization is treated as success
// on encode (the surrounding length prefix reads back as zero) and as an
// explicit "absent" result on decode; both conditions emit a warning
// through the configured logger. Whether "absent" is benign is decided by
// the caller, not by this package.
package wire

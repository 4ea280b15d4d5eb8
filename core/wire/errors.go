package wire

import (
	"errors"
	"fmt"
)

var (
	// ErrIncomplete matches any IncompleteError via errors.Is.
	ErrIncomplete = errors.New("incomplete input")
)

// IncompleteError reports that the decoder ran out of bytes before it could
// decide between success and failure. Needed is the minimum number of
// additional bytes required; zero means the amount is unknown.
type IncompleteError struct {
	Needed uint64
}

func (e *IncompleteError) Error() string {
	if e.Needed == 0 {
		return "parsing failed on incomplete input: more bytes needed"
	}
	return fmt.Sprintf("parsing failed on incomplete input: %d more bytes needed", e.Needed)
}

func (e *IncompleteError) Unwrap() error { return ErrIncomplete }

// InvalidLengthError reports a length-prefixed block whose declared length
// exceeds the bytes available behind the prefix.
type InvalidLengthError struct {
	Declared  uint64
	Available int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("length-prefixed block has invalid length: declared %d, only %d bytes remain", e.Declared, e.Available)
}

// EncoderError wraps a payload serialization failure.
type EncoderError struct {
	Err error
}

func (e *EncoderError) Error() string { return "failed to encode payload: " + e.Err.Error() }
func (e *EncoderError) Unwrap() error { return e.Err }

// DecoderError wraps a payload deserialization failure, including a block
// body that did not consume its declared byte range exactly.
type DecoderError struct {
	Err error
}

func (e *DecoderError) Error() string { return "failed to decode payload: " + e.Err.Error() }
func (e *DecoderError) Unwrap() error { return e.Err }

// ContextError prefixes a failure with the static label of the field that
// was being read. Nested wrapping produces an outermost-to-innermost path
// of labels ending in the original cause.
type ContextError struct {
	Label string
	Err   error
}

func (e *ContextError) Error() string { return e.Label + ": " + e.Err.Error() }
func (e *ContextError) Unwrap() error { return e.Err }

// Context wraps err with a field label. A nil err stays nil.
func Context(label string, err error) error {
	if err == nil {
		return nil
	}
	return &ContextError{Label: label, Err: err}
}

// Path collects the context labels attached to err, outermost first.
func Path(err error) []string {
	var out []string
	for e := err; e != nil; e = errors.Unwrap(e) {
		if ce, ok := e.(*ContextError); ok {
			out = append(out, ce.Label)
		}
	}
	return out
}

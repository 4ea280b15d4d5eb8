package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecoder_FixedWidth(t *testing.T) {
	d := NewDecoder([]byte{
		0x01, 0x02, 0x03, 0x04,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	})

	v32, err := d.Uint32("first")
	require.NoError(t, err)
	require.Equal(t, uint32(0x01020304), v32)
	require.Equal(t, 4, d.Offset())

	v64, err := d.Uint64("second")
	require.NoError(t, err)
	require.Equal(t, uint64(0x0102030405060708), v64)
	require.Zero(t, d.Remaining())
}

func TestDecoder_IncompleteReportsShortage(t *testing.T) {
	d := NewDecoder([]byte{0x01, 0x02})

	_, err := d.Uint64("counter")
	require.ErrorIs(t, err, ErrIncomplete)

	var incomplete *IncompleteError
	require.ErrorAs(t, err, &incomplete)
	require.Equal(t, uint64(6), incomplete.Needed)
	require.Equal(t, []string{"counter"}, Path(err))

	// failed reads leave the cursor in place
	require.Equal(t, 2, d.Remaining())
}

func lengthPrefixedBlock(body []byte) []byte {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	if err := e.LengthPrefixed(func(e *Encoder) error { return e.Raw(body) }); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func TestDecoder_LengthPrefixed(t *testing.T) {
	d := NewDecoder(lengthPrefixedBlock([]byte{0, 0, 0, 42}))

	var got uint32
	present, err := d.LengthPrefixed("field", func(d *Decoder) error {
		v, err := d.Uint32("value")
		got = v
		return err
	})
	require.NoError(t, err)
	require.True(t, present)
	require.Equal(t, uint32(42), got)
	require.Zero(t, d.Remaining())
}

func TestDecoder_LengthPrefixed_ZeroLengthIsAbsent(t *testing.T) {
	d := NewDecoder(lengthPrefixedBlock(nil))

	present, err := d.LengthPrefixed("field", func(*Decoder) error {
		t.Fatal("inner parser must not run for an empty block")
		return nil
	})
	require.NoError(t, err)
	require.False(t, present)
	require.Zero(t, d.Remaining())
}

func TestDecoder_LengthPrefixed_DeclaredLengthExceedsInput(t *testing.T) {
	// prefix declares 16 bytes, only 2 follow
	input := append([]byte{0, 0, 0, 0, 0, 0, 0, 16}, 0xAA, 0xBB)

	t.Run("complete mode fails structurally", func(t *testing.T) {
		d := NewDecoder(input)
		_, err := d.LengthPrefixed("field", func(*Decoder) error { return nil })

		var invalid *InvalidLengthError
		require.ErrorAs(t, err, &invalid)
		require.Equal(t, uint64(16), invalid.Declared)
		require.Equal(t, 2, invalid.Available)
	})

	t.Run("streaming mode asks for more bytes", func(t *testing.T) {
		d := NewDecoder(input, WithMode(Streaming))
		_, err := d.LengthPrefixed("field", func(*Decoder) error { return nil })

		var incomplete *IncompleteError
		require.ErrorAs(t, err, &incomplete)
		require.Equal(t, uint64(14), incomplete.Needed)
	})
}

func TestDecoder_LengthPrefixed_BodyMustConsumeBlock(t *testing.T) {
	d := NewDecoder(lengthPrefixedBlock([]byte{0, 0, 0, 42, 0xFF}))

	_, err := d.LengthPrefixed("field", func(d *Decoder) error {
		_, err := d.Uint32("value")
		return err
	})

	var decErr *DecoderError
	require.ErrorAs(t, err, &decErr)
}

func TestDecoder_LengthPrefixed_BodyCannotReadPastBlock(t *testing.T) {
	// 4-byte block followed by 4 more buffer bytes the body must not see
	input := append(lengthPrefixedBlock([]byte{0, 0, 0, 42}), 1, 2, 3, 4)

	d := NewDecoder(input)
	_, err := d.LengthPrefixed("field", func(d *Decoder) error {
		_, err := d.Uint64("value")
		return err
	})
	require.ErrorIs(t, err, ErrIncomplete)
}

func TestDecoder_ContextPath(t *testing.T) {
	d := NewDecoder(lengthPrefixedBlock([]byte{0xAA}))

	_, err := d.LengthPrefixed("outer", func(d *Decoder) error {
		_, err := d.Uint32("inner")
		return err
	})
	require.Error(t, err)
	require.Equal(t, []string{"outer", "block body", "inner"}, Path(err))
}

func TestDecodeSeq(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	require.NoError(t, EncodeSeq(e, []uint32{7, 8, 9}, func(e *Encoder, v uint32) error {
		return e.Uint32(v)
	}))

	d := NewDecoder(buf.Bytes())
	got, err := DecodeSeq(d, "numbers", func(d *Decoder) (uint32, error) {
		return d.Uint32("number")
	})
	require.NoError(t, err)
	require.Equal(t, []uint32{7, 8, 9}, got)
	require.Zero(t, d.Remaining())
}

func TestDecodeSeq_EmptyIsNil(t *testing.T) {
	d := NewDecoder(make([]byte, 8))
	got, err := DecodeSeq(d, "numbers", func(d *Decoder) (uint32, error) {
		return d.Uint32("number")
	})
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestDecodeSeq_FirstItemFailureWins(t *testing.T) {
	// declares 2 items, provides 1.5
	input := []byte{
		0, 0, 0, 0, 0, 0, 0, 2,
		0, 0, 0, 7,
		0, 0,
	}

	d := NewDecoder(input)
	_, err := DecodeSeq(d, "numbers", func(d *Decoder) (uint32, error) {
		return d.Uint32("number")
	})
	require.ErrorIs(t, err, ErrIncomplete)
	require.Equal(t, []string{"numbers", "number"}, Path(err))
}

func TestPayload_MalformedBytes(t *testing.T) {
	d := NewDecoder([]byte{0xFF, 0xFF})
	_, err := Payload[uint32](d)

	var decErr *DecoderError
	require.ErrorAs(t, err, &decErr)
}

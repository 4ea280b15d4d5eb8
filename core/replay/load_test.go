package replay

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"testing/iotest"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/stretchr/testify/require"

	"github.com/Teaspot-Studio/strategka/core/wire"
)

func tempReplayPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), gonanoid.Must()+".stgr")
}

func TestReplay_SaveLoadRoundTrip(t *testing.T) {
	r := exampleReplay(t)
	path := tempReplayPath(t)

	require.NoError(t, r.Save(path))

	loaded, err := Load[counterWorld, counterInput](path)
	require.NoError(t, err)
	require.Equal(t, r, loaded)
}

func TestReplay_SaveLoad_EmptyLog(t *testing.T) {
	r := New[blankWorld, blankInput](blankWorld{}, 60)
	path := tempReplayPath(t)

	require.NoError(t, r.Save(path))

	loaded, err := Load[blankWorld, blankInput](path)
	require.NoError(t, err)
	require.Equal(t, r, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load[counterWorld, counterInput](filepath.Join(t.TempDir(), "nope.stgr"))
	require.Error(t, err)
}

func TestLoadFrom_SingleChunk(t *testing.T) {
	r := exampleReplay(t)
	data := encodeToBytes(t, r)

	loaded, err := LoadFrom[counterWorld, counterInput](bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, r, loaded)
}

func TestLoadFrom_OneByteChunksMatchSingleChunk(t *testing.T) {
	r := exampleReplay(t)
	data := encodeToBytes(t, r)

	whole, err := LoadFrom[counterWorld, counterInput](bytes.NewReader(data))
	require.NoError(t, err)

	chunked, err := LoadFrom[counterWorld, counterInput](iotest.OneByteReader(bytes.NewReader(data)))
	require.NoError(t, err)

	require.Equal(t, whole, chunked)
	require.Equal(t, r, chunked)
}

func TestLoadFrom_TrailingBytesIgnored(t *testing.T) {
	r := exampleReplay(t)
	data := append(encodeToBytes(t, r), 0xDE, 0xAD)

	loaded, err := LoadFrom[counterWorld, counterInput](iotest.OneByteReader(bytes.NewReader(data)))
	require.NoError(t, err)
	require.Equal(t, r, loaded)
}

func TestLoadFrom_TruncatedSource(t *testing.T) {
	data := encodeToBytes(t, exampleReplay(t))

	for _, cut := range []int{2, offGameVersion + 1, len(data) - 1} {
		_, err := LoadFrom[counterWorld, counterInput](bytes.NewReader(data[:cut]))
		require.ErrorIs(t, err, wire.ErrIncomplete, "cut at %d", cut)
	}
}

func TestLoadFrom_EmptySource(t *testing.T) {
	_, err := LoadFrom[counterWorld, counterInput](bytes.NewReader(nil))
	require.ErrorIs(t, err, wire.ErrIncomplete)
}

func TestLoadFrom_FatalErrorAbortsImmediately(t *testing.T) {
	data := encodeToBytes(t, exampleReplay(t))
	data[offCoreMagic] ^= 0xFF

	// even on a byte-by-byte source the magic mismatch surfaces as soon
	// as the header is buffered
	_, err := LoadFrom[counterWorld, counterInput](iotest.OneByteReader(bytes.NewReader(data)))
	var invalid *InvalidMagicError
	require.ErrorAs(t, err, &invalid)
}

func TestLoadFrom_SourceReadError(t *testing.T) {
	boom := errors.New("disk on fire")
	src := io.MultiReader(
		bytes.NewReader(encodeToBytes(t, exampleReplay(t))[:4]),
		iotest.ErrReader(boom),
	)

	_, err := LoadFrom[counterWorld, counterInput](src)
	require.ErrorIs(t, err, boom)
}

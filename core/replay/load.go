package replay

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Teaspot-Studio/strategka/core/wire"
)

// loadChunkSize is the read granularity of the load loop.
const loadChunkSize = 8 << 20 // 8 MiB

// Save encodes the replay into a freshly created file at path.
func (r *Replay[W, I]) Save(path string, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create replay file: %w", err)
	}
	if err := r.Encode(f, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads the container at path and reconstructs the replay.
func Load[W World[I], I any](path string, opts ...Option) (*Replay[W, I], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay file: %w", err)
	}
	defer f.Close()
	return LoadFrom[W, I](f, opts...)
}

// LoadFrom drives the incremental decode loop over src: read a chunk,
// append it to the accumulated buffer, attempt a full decode of the buffer
// so far. Success returns immediately and ignores any unread source bytes;
// an incomplete parse continues the loop; every other failure aborts. A
// source that ends while the parser still needs bytes fails with the
// recorded shortage.
//
// The whole buffer is re-parsed after every chunk, which is quadratic in
// the number of chunks. Replays are expected to stay far below the size
// where that matters.
// TODO: resumable parser that keeps decoded prefixes across iterations.
func LoadFrom[W World[I], I any](src io.Reader, opts ...Option) (*Replay[W, I], error) {
	o := newOptions(opts)
	defer o.metrics.LoadDuration().ObserveDuration()

	var buf []byte
	chunk := make([]byte, loadChunkSize)
	for {
		n, rerr := src.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
			o.metrics.LoadChunk(n)
		}

		d := wire.NewDecoder(buf, wire.WithMode(wire.Streaming), wire.WithDecoderLogger(o.log))
		r, err := decode[W, I](d)
		if err == nil {
			return r, nil
		}
		var incomplete *wire.IncompleteError
		if !errors.As(err, &incomplete) {
			return nil, err
		}

		if rerr != nil {
			if !errors.Is(rerr, io.EOF) {
				return nil, fmt.Errorf("read replay chunk: %w", rerr)
			}
			o.log.Error("replay source ended before the container was complete",
				slog.Int("buffered", len(buf)),
				slog.Uint64("missing", incomplete.Needed),
			)
			return nil, err
		}
	}
}

package replay

import "github.com/Teaspot-Studio/strategka/core/metrics"

// Metrics is the instrumentation hook for replay operations.
// Implementations must be safe for concurrent use; instrumentation has no
// effect on correctness.
type Metrics interface {
	// EncodeDuration times one Encode call.
	EncodeDuration() metrics.Timer
	// DecodeDuration times one Decode call.
	DecodeDuration() metrics.Timer
	// LoadDuration times one Load/LoadFrom call, including all reads.
	LoadDuration() metrics.Timer
	// EncodedBytes records the size of an encoded container.
	EncodedBytes(n int)
	// LoadChunk records one chunk read by the load loop.
	LoadChunk(bytes int)
}

// nopMetrics is a no-op implementation of Metrics.
type nopMetrics struct{}

func (nopMetrics) EncodeDuration() metrics.Timer { return metrics.NopTimer() }
func (nopMetrics) DecodeDuration() metrics.Timer { return metrics.NopTimer() }
func (nopMetrics) LoadDuration() metrics.Timer   { return metrics.NopTimer() }
func (nopMetrics) EncodedBytes(int)              {}
func (nopMetrics) LoadChunk(int)                 {}

// NopMetrics returns a no-op Metrics implementation.
func NopMetrics() Metrics { return nopMetrics{} }

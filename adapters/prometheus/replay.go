package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Teaspot-Studio/strategka/core/metrics"
	"github.com/Teaspot-Studio/strategka/core/replay"
)

// replayMetrics implements replay.Metrics using Prometheus.
type replayMetrics struct {
	encodeDuration prometheus.Histogram
	decodeDuration prometheus.Histogram
	loadDuration   prometheus.Histogram
	encodedBytes   prometheus.Counter
	loadChunks     prometheus.Counter
	loadChunkBytes prometheus.Counter
}

// NewReplayMetrics creates a new Prometheus implementation of
// replay.Metrics and registers its collectors with reg.
func NewReplayMetrics(reg prometheus.Registerer) replay.Metrics {
	m := &replayMetrics{
		encodeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "strategka_replay_encode_duration_seconds",
			Help:    "Replay encode latency in seconds",
			Buckets: defaultBuckets,
		}),

		decodeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "strategka_replay_decode_duration_seconds",
			Help:    "Replay decode latency in seconds",
			Buckets: defaultBuckets,
		}),

		loadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "strategka_replay_load_duration_seconds",
			Help:    "Replay load latency in seconds, including source reads",
			Buckets: defaultBuckets,
		}),

		encodedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "strategka_replay_encoded_bytes_total",
			Help: "Total bytes written by replay encoding",
		}),

		loadChunks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "strategka_replay_load_chunks_total",
			Help: "Total chunks read by the replay load loop",
		}),

		loadChunkBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "strategka_replay_load_chunk_bytes_total",
			Help: "Total bytes read by the replay load loop",
		}),
	}

	reg.MustRegister(
		m.encodeDuration,
		m.decodeDuration,
		m.loadDuration,
		m.encodedBytes,
		m.loadChunks,
		m.loadChunkBytes,
	)

	return m
}

func (m *replayMetrics) EncodeDuration() metrics.Timer { return newTimer(m.encodeDuration) }
func (m *replayMetrics) DecodeDuration() metrics.Timer { return newTimer(m.decodeDuration) }
func (m *replayMetrics) LoadDuration() metrics.Timer   { return newTimer(m.loadDuration) }

func (m *replayMetrics) EncodedBytes(n int) { m.encodedBytes.Add(float64(n)) }

func (m *replayMetrics) LoadChunk(bytes int) {
	m.loadChunks.Inc()
	m.loadChunkBytes.Add(float64(bytes))
}

var _ replay.Metrics = (*replayMetrics)(nil)

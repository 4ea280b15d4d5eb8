package replay

import "log/slog"

type options struct {
	log     *slog.Logger
	metrics Metrics
}

// Option configures encode, decode, save and load behavior.
type Option func(*options)

// WithLogger routes the non-fatal codec diagnostics (empty-block warnings,
// truncation reports) to log instead of slog.Default.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithMetrics instruments operations with m. The default is a no-op.
func WithMetrics(m Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func newOptions(opts []Option) options {
	o := options{log: slog.Default(), metrics: NopMetrics()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

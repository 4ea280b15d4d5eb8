// Package metrics provides abstract instrumentation interfaces so the core
// packages stay decoupled from any specific backend (Prometheus, StatsD,
// etc.).
package metrics

// Timer measures the duration of an operation. Call ObserveDuration when
// the operation completes to record the elapsed time.
type Timer interface {
	// ObserveDuration records the elapsed time since the timer was created.
	ObserveDuration()
}

// Package metrics records generator metrics through a pluggable global
// backend. The default backend discards everything, so callers never need
// to check whether metrics are configured.
//
// Concrete systems live in subpackages (prompush, datadog) and are installed
// with SetBackend.
package metrics

import "time"

// Metric names.
const (
	StepTotal           = "datafaker_step_total"
	StepDurationSeconds = "datafaker_step_duration_seconds"
	RowsTotal           = "datafaker_rows_total"
	BatchesTotal        = "datafaker_batches_total"
	BatchRowsPerSecond  = "datafaker_batch_rows_per_second"
)

// Steps recorded by the pipeline.
const (
	StepGenerate   = "generate"
	StepInsert     = "insert"
	StepCheckpoint = "checkpoint"
)

// Labels are string key/value pairs attached to a metric.
type Labels map[string]string

// Backend is the minimal interface for metrics backends.
type Backend interface {
	// IncCounter increments a counter by delta.
	IncCounter(name string, delta float64, labels Labels)
	// ObserveHistogram records a value in a latency/duration style metric.
	ObserveHistogram(name string, value float64, labels Labels)
	// Flush pushes or flushes metrics, if the backend needs it (e.g. Pushgateway).
	Flush() error
}

type nopBackend struct{}

func (nopBackend) IncCounter(name string, delta float64, labels Labels)       {}
func (nopBackend) ObserveHistogram(name string, value float64, labels Labels) {}
func (nopBackend) Flush() error                                               { return nil }

var backend Backend = nopBackend{}

// SetBackend installs a concrete backend. Passing nil keeps the existing backend.
func SetBackend(b Backend) {
	if b == nil {
		return
	}
	backend = b
}

// Flush delegates to the current backend.
func Flush() error {
	return backend.Flush()
}

// RecordStep counts one execution of a pipeline step and records its latency.
func RecordStep(job, step string, err error, d time.Duration) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	lbls := Labels{"job": job, "step": step, "status": status}
	backend.IncCounter(StepTotal, 1, lbls)
	backend.ObserveHistogram(StepDurationSeconds, d.Seconds(), lbls)
}

// RecordRow adds delta rows of the given kind ("generated", "inserted",
// "dropped").
func RecordRow(job, kind string, delta int64) {
	if delta <= 0 {
		return
	}
	backend.IncCounter(RowsTotal, float64(delta), Labels{"job": job, "kind": kind})
}

// RecordBatches increments the flushed-batch counter.
func RecordBatches(job string, delta int64) {
	if delta <= 0 {
		return
	}
	backend.IncCounter(BatchesTotal, float64(delta), Labels{"job": job})
}

// RecordBatchRate observes the insert throughput of one batch.
func RecordBatchRate(job string, rows int, d time.Duration) {
	if rows <= 0 || d <= 0 {
		return
	}
	backend.ObserveHistogram(BatchRowsPerSecond, float64(rows)/d.Seconds(), Labels{"job": job})
}

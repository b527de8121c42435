// Package telemetry exports Prometheus instrumentation for dashboard
// snapshots.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Snapshot outcomes used as label values.
const (
	OutcomeOK          = "ok"
	OutcomeLoadFailure = "load_failure"
	OutcomeError       = "error"
)

// SnapshotMetrics records how dashboard snapshots fare.
type SnapshotMetrics struct {
	duration         *prometheus.HistogramVec
	snapshots        *prometheus.CounterVec
	modelUnavailable prometheus.Counter
}

// NewSnapshotMetrics registers the snapshot metrics on reg. A nil reg
// yields a no-op recorder.
func NewSnapshotMetrics(reg prometheus.Registerer) *SnapshotMetrics {
	if reg == nil {
		return &SnapshotMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dashboard_snapshot_duration_seconds",
		Help:    "Time spent loading datasets and computing a dashboard snapshot.",
		Buckets: prometheus.DefBuckets,
	}, []string{"source"})
	snapshots := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_snapshots_total",
		Help: "Dashboard snapshots by outcome.",
	}, []string{"source", "outcome"})
	modelUnavailable := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_model_metrics_unavailable_total",
		Help: "Snapshots whose computed model metrics fell back to unavailable.",
	})
	reg.MustRegister(duration, snapshots, modelUnavailable)
	return &SnapshotMetrics{
		duration:         duration,
		snapshots:        snapshots,
		modelUnavailable: modelUnavailable,
	}
}

// Observe records one snapshot attempt against the named dataset source.
func (m *SnapshotMetrics) Observe(source, outcome string, took time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(source)).Observe(took.Seconds())
	m.snapshots.WithLabelValues(normalizeLabel(source), outcome).Inc()
}

// IncModelUnavailable counts a degenerate-label fallback.
func (m *SnapshotMetrics) IncModelUnavailable() {
	if m == nil || m.modelUnavailable == nil {
		return
	}
	m.modelUnavailable.Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}

package telemetry

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSnapshotMetricsCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSnapshotMetrics(reg)

	m.Observe("csv", OutcomeOK, 20*time.Millisecond)
	m.Observe("csv", OutcomeOK, 10*time.Millisecond)
	m.Observe("", OutcomeLoadFailure, time.Millisecond)
	m.IncModelUnavailable()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.snapshots.WithLabelValues("csv", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.snapshots.WithLabelValues("unknown", OutcomeLoadFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.modelUnavailable))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestSnapshotMetricsNilSafe(t *testing.T) {
	var m *SnapshotMetrics
	m.Observe("csv", OutcomeOK, time.Second)
	m.IncModelUnavailable()

	NewSnapshotMetrics(nil).Observe("csv", OutcomeOK, time.Second)
}

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/prajwal2403/task-backend/types"
)

func TestNopMetrics_ImplementsInterface(t *testing.T) {
	var _ types.MetricsCollector = (*NopMetrics)(nil)
	var _ types.MetricsCollector = (*PrometheusCollector)(nil)
}

func TestNopMetrics_NoPanic(t *testing.T) {
	m := NewNop()

	m.RecordRotation("manual", true)
	m.ObserveRotationDuration(0.01)
	m.SetRosterSize(3, 5)
	m.RecordSchedulerWake(false)
	m.RecordSchedulerFailure()
}

func TestPrometheusCollector_RegistersOnFirstUse(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus(reg, "test")

	m.RecordRotation("scheduled", true)
	m.RecordRotation("scheduled", false)
	m.ObserveRotationDuration(0.002)
	m.SetRosterSize(5, 5)
	m.RecordSchedulerWake(true)
	m.RecordSchedulerFailure()

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	require.True(t, names["test_engine_rotations_total"])
	require.True(t, names["test_engine_rotation_duration_seconds"])
	require.True(t, names["test_roster_people"])
	require.True(t, names["test_roster_tasks"])
	require.True(t, names["test_scheduler_wakes_total"])
	require.True(t, names["test_scheduler_failures_total"])
}

func TestPrometheusCollector_DoubleUseDoesNotDoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus(reg, "test")

	// MustRegister panics on duplicate registration; two calls through the
	// sync.Once guard must not trigger that.
	m.RecordRotation("manual", true)
	m.RecordRotation("manual", true)
}

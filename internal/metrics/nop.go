// Package metrics provides MetricsCollector implementations for the
// task-backend library.
package metrics

import "github.com/prajwal2403/task-backend/types"

// NopMetrics is a no-op metrics collector that discards all measurements.
//
// Used as the default when no collector is injected, so engine and scheduler
// code never needs nil checks around metrics calls.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: Collector that performs no operations
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordRotation discards the measurement.
func (n *NopMetrics) RecordRotation(_ /* trigger */ string, _ /* success */ bool) {}

// ObserveRotationDuration discards the measurement.
func (n *NopMetrics) ObserveRotationDuration(_ /* seconds */ float64) {}

// SetRosterSize discards the measurement.
func (n *NopMetrics) SetRosterSize(_ /* people */, _ /* tasks */ int) {}

// RecordSchedulerWake discards the measurement.
func (n *NopMetrics) RecordSchedulerWake(_ /* triggered */ bool) {}

// RecordSchedulerFailure discards the measurement.
func (n *NopMetrics) RecordSchedulerFailure() {}

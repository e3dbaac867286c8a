package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Methods are called from both request handlers and the scheduler goroutine
// and must be thread-safe.
type MetricsCollector interface {
	EngineMetrics
	SchedulerMetrics
}

// EngineMetrics defines metrics for rotation engine operations.
type EngineMetrics interface {
	// RecordRotation records a completed rotation attempt.
	//
	// Parameters:
	//   - trigger: What caused the rotation ("scheduled", "manual", "roster_change", "startup", "simulate")
	//   - success: true if the rotation succeeded
	RecordRotation(trigger string, success bool)

	// ObserveRotationDuration records the time taken by a rotation in seconds.
	ObserveRotationDuration(seconds float64)

	// SetRosterSize records the current roster dimensions.
	SetRosterSize(people, tasks int)
}

// SchedulerMetrics defines metrics for the background scheduler loop.
type SchedulerMetrics interface {
	// RecordSchedulerWake records a scheduler wake cycle and whether the
	// trigger predicate matched.
	RecordSchedulerWake(triggered bool)

	// RecordSchedulerFailure records a failed wake cycle.
	RecordSchedulerFailure()
}

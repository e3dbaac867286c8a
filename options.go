package taskbackend

import "github.com/prajwal2403/task-backend/types"

// Option configures an Engine or Scheduler with optional dependencies.
type Option func(*options)

// options holds optional dependencies shared by Engine and Scheduler.
type options struct {
	logger  types.Logger
	metrics types.MetricsCollector
	clock   types.Clock
	hooks   *types.Hooks
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (e.g. the logging package's slog adapter)
//
// Returns:
//   - Option: Functional option for NewEngine / NewScheduler
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	eng, err := taskbackend.NewEngine(&cfg, pol, taskbackend.WithLogger(logger))
func WithLogger(logger types.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewEngine / NewScheduler
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(o *options) {
		o.metrics = metrics
	}
}

// WithClock sets the time source used by the scheduler's trigger predicate.
//
// Injecting a clock lets tests pin the calendar to any weekday without
// waiting for a real rotation day.
//
// Parameters:
//   - clock: Clock implementation
//
// Returns:
//   - Option: Functional option for NewScheduler
func WithClock(clock types.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithHooks sets lifecycle event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	hooks := &taskbackend.Hooks{
//	    OnRotated: func(trigger string, table taskbackend.Table) error {
//	        return pushToFrontend(table)
//	    },
//	}
//	eng, err := taskbackend.NewEngine(&cfg, pol, taskbackend.WithHooks(hooks))
func WithHooks(hooks *types.Hooks) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}

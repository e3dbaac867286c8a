package taskbackend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prajwal2403/task-backend/internal/logging"
	"github.com/prajwal2403/task-backend/internal/metrics"
	"github.com/prajwal2403/task-backend/types"
)

// Rotator is the slice of the engine the scheduler depends on.
type Rotator interface {
	// Rotate recomputes the assignment table for the given trigger.
	Rotate(trigger string) error
}

// Scheduler runs the time-triggered rotation loop.
//
// A single always-running goroutine wakes on a fixed interval, evaluates the
// trigger predicate ("is today the designated rotation day?") against the
// injected clock, and invokes the engine's Rotate when it matches. Any error
// during a wake cycle is caught, logged, and retried with jittered backoff;
// the loop never dies from a single failed rotation attempt.
//
// With the fine-grained (hourly) check interval a matching day would be hit
// repeatedly; the RotateOncePerDay config guard suppresses repeat rotations
// within one calendar day unless it is disabled.
//
// Lifecycle:
//   - Create with NewScheduler()
//   - Call Start() to launch the loop
//   - Call Stop() for graceful shutdown; the sleep is the only suspension
//     point and is cancellable
type Scheduler struct {
	cfg     Config
	rotator Rotator
	clock   types.Clock
	logger  types.Logger
	metrics types.MetricsCollector

	day time.Weekday

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// lastRotated is the calendar day (clock location, "2006-01-02") of the
	// last scheduled rotation. Guarded by mu.
	lastRotated string
}

// NewScheduler creates a new scheduler driving the given rotator.
//
// Parameters:
//   - rotator: Engine (or any Rotator) to invoke on trigger days
//   - cfg: Runtime configuration (defaults applied, then validated)
//   - opts: Optional dependencies (logger, metrics, clock)
//
// Returns:
//   - *Scheduler: Initialized scheduler instance
//   - error: Validation error if configuration or dependencies are invalid
//
// Example:
//
//	sched, err := taskbackend.NewScheduler(eng, &cfg, taskbackend.WithClock(clock))
//	if err != nil { /* handle */ }
//	_ = sched.Start(ctx)
//	defer sched.Stop(context.Background())
func NewScheduler(rotator Rotator, cfg *Config, opts ...Option) (*Scheduler, error) {
	if rotator == nil {
		return nil, ErrEngineRequired
	}
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	SetDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.logger == nil {
		o.logger = logging.NewNop()
	}
	if o.metrics == nil {
		o.metrics = metrics.NewNop()
	}
	if o.clock == nil {
		o.clock = types.SystemClock{}
	}

	return &Scheduler{
		cfg:     *cfg,
		rotator: rotator,
		clock:   o.clock,
		logger:  o.logger,
		metrics: o.metrics,
		day:     cfg.Weekday(),
	}, nil
}

// Start launches the background loop.
//
// The loop performs its first trigger check after one check interval, not
// immediately; startup-time rotation is the service's responsibility.
//
// Parameters:
//   - ctx: Parent context; cancelling it stops the loop
//
// Returns:
//   - error: ErrAlreadyStarted if the scheduler is already running
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx != nil {
		return ErrAlreadyStarted
	}

	s.ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go s.run(s.ctx)

	s.logger.Info("scheduler started",
		"rotation_day", s.day.String(),
		"check_interval", s.cfg.CheckInterval,
		"once_per_day", s.cfg.RotateOncePerDay,
	)

	return nil
}

// Stop shuts the loop down and waits for it to exit.
//
// Parameters:
//   - ctx: Context bounding the wait
//
// Returns:
//   - error: ErrNotStarted if the scheduler never started, or ctx.Err() if
//     the loop did not exit in time
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.ctx == nil {
		s.mu.Unlock()

		return ErrNotStarted
	}
	s.cancel()
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		s.logger.Error("scheduler stop timeout exceeded")
		return ctx.Err()
	}
}

// IsRotationDay reports whether the scheduler's designated weekday matches
// the clock right now.
func (s *Scheduler) IsRotationDay() bool {
	return IsRotationDay(s.clock.Now(), s.day)
}

// run is the WAITING → CHECK_TRIGGER loop. delay starts at the check
// interval and switches to jittered backoff after a failed wake.
func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	delay := s.cfg.CheckInterval
	var backoff time.Duration

	timer := time.NewTimer(delay)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		if err := s.wake(); err != nil {
			s.metrics.RecordSchedulerFailure()
			backoff = jitterBackoff(backoff, s.cfg.RetryInterval, 2.0, s.cfg.MaxRetryInterval)
			delay = backoff
			s.logger.Error("scheduled rotation failed", "error", err, "retry_in", delay)
		} else {
			backoff = 0
			delay = s.cfg.CheckInterval
		}

		timer.Reset(delay)
	}
}

// wake performs one CHECK_TRIGGER cycle. Panics from policy code are
// converted to errors so the loop survives them.
func (s *Scheduler) wake() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("wake cycle panic: %v", r)
		}
	}()

	now := s.clock.Now()
	triggered := IsRotationDay(now, s.day)
	s.metrics.RecordSchedulerWake(triggered)

	if !triggered {
		s.logger.Debug("not rotation day", "weekday", now.Weekday().String())

		return nil
	}

	today := now.Format(time.DateOnly)
	if s.cfg.RotateOncePerDay {
		s.mu.Lock()
		done := s.lastRotated == today
		s.mu.Unlock()
		if done {
			s.logger.Debug("already rotated today", "date", today)

			return nil
		}
	}

	if err := s.rotator.Rotate(TriggerScheduled); err != nil {
		return err
	}

	s.mu.Lock()
	s.lastRotated = today
	s.mu.Unlock()

	s.logger.Info("scheduled rotation complete", "date", today)

	return nil
}

// IsRotationDay reports whether t falls on the given weekday.
//
// The predicate is pure: it depends only on its inputs, which is what makes
// the scheduler testable against a simulated clock. The check uses the
// calendar day of t in t's location, not a scheduled timestamp, so a process
// that is down across an entire matching day skips that window.
//
// Parameters:
//   - t: Time to check
//   - day: Designated weekday
//
// Returns:
//   - bool: true when t's weekday equals day
func IsRotationDay(t time.Time, day time.Weekday) bool {
	return t.Weekday() == day
}

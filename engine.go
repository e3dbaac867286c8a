package taskbackend

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prajwal2403/task-backend/internal/logging"
	"github.com/prajwal2403/task-backend/internal/metrics"
	"github.com/prajwal2403/task-backend/types"
)

// Rotation trigger labels used for logging and metrics.
const (
	// TriggerStartup marks the initial rotation performed while seeding.
	TriggerStartup = "startup"

	// TriggerManual marks an explicitly requested rotation.
	TriggerManual = "manual"

	// TriggerScheduled marks a rotation fired by the scheduler.
	TriggerScheduled = "scheduled"

	// TriggerRosterChange marks a rotation following an add operation.
	TriggerRosterChange = "roster_change"

	// TriggerSimulate marks a rotation fired by the simulate endpoint.
	TriggerSimulate = "simulate"
)

// Engine owns the roster and the assignment table and computes rotations.
//
// The Engine is the only writer of the assignment table. All mutations
// (adds and rotations) are serialized behind an internal lock; the table
// itself is published as a copy-on-write snapshot, so a concurrent reader
// always observes either the complete pre-rotation table or the complete
// post-rotation table, never a partial overwrite.
//
// Thread Safety:
//   - All public methods are safe for concurrent use
//   - Rotate calls are serialized; stateful policies need no locking of their own
//
// Testing:
// Consumers can define minimal interfaces for mocking:
//
//	type ChoreRotator interface {
//	    Rotate(trigger string) error
//	    Assignments() ([]taskbackend.Assignment, error)
//	}
type Engine struct {
	cfg     Config
	policy  types.RotationPolicy
	logger  types.Logger
	metrics types.MetricsCollector
	hooks   *types.Hooks

	mu     sync.RWMutex
	people []types.Person
	tasks  []types.Task

	// table holds the current types.Table snapshot (copy-on-write).
	table     atomic.Value
	rotations atomic.Int64
}

// NewEngine creates a new rotation engine.
//
// The configuration's seed roster is loaded immediately but no rotation is
// performed; callers decide when the first rotation happens (the service
// rotates once at startup).
//
// Returns a concrete *Engine following the "accept interfaces, return
// structs" principle.
//
// Parameters:
//   - cfg: Runtime configuration (defaults applied, then validated)
//   - policy: Rotation policy (e.g. policy.NewSequential())
//   - opts: Optional dependencies (logger, metrics, hooks)
//
// Returns:
//   - *Engine: Initialized engine instance
//   - error: Validation error if configuration or dependencies are invalid
//
// Example:
//
//	cfg := taskbackend.DefaultConfig()
//	eng, err := taskbackend.NewEngine(&cfg, policy.NewSequential())
func NewEngine(cfg *Config, policy types.RotationPolicy, opts ...Option) (*Engine, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if policy == nil {
		return nil, ErrPolicyRequired
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

	e := &Engine{
		cfg:     *cfg,
		policy:  policy,
		logger:  o.logger,
		metrics: o.metrics,
		hooks:   o.hooks,
	}

	e.people = append(e.people, cfg.Seed.People...)
	e.tasks = append(e.tasks, cfg.Seed.Tasks...)
	e.table.Store(types.Table{})
	e.metrics.SetRosterSize(len(e.people), len(e.tasks))

	return e, nil
}

// AddPerson appends a person to the roster.
//
// Insertion order is significant: it defines the rotation sequence. The add
// does not itself trigger a rotation; the new person receives a task on the
// next rotation event (the service layer usually rotates immediately after).
//
// Parameters:
//   - person: Person to add
//
// Returns:
//   - error: ErrDuplicatePerson if the ID is already present; the roster and
//     assignment table are left unchanged
func (e *Engine) AddPerson(person types.Person) error {
	e.mu.Lock()
	for _, p := range e.people {
		if p.ID == person.ID {
			e.mu.Unlock()

			return fmt.Errorf("%w: id %d", ErrDuplicatePerson, person.ID)
		}
	}
	e.people = append(e.people, person)
	people, tasks := len(e.people), len(e.tasks)
	e.mu.Unlock()

	e.metrics.SetRosterSize(people, tasks)
	e.logger.Info("person added", "id", person.ID, "name", person.Name, "roster_size", people)
	e.fireRosterChanged(people, tasks)

	return nil
}

// AddTask appends a task to the catalog.
//
// Parameters:
//   - task: Task to add
//
// Returns:
//   - error: ErrDuplicateTask if the ID is already present; the catalog and
//     assignment table are left unchanged
func (e *Engine) AddTask(task types.Task) error {
	e.mu.Lock()
	for _, t := range e.tasks {
		if t.ID == task.ID {
			e.mu.Unlock()

			return fmt.Errorf("%w: id %d", ErrDuplicateTask, task.ID)
		}
	}
	e.tasks = append(e.tasks, task)
	people, tasks := len(e.people), len(e.tasks)
	e.mu.Unlock()

	e.metrics.SetRosterSize(people, tasks)
	e.logger.Info("task added", "id", task.ID, "name", task.Name, "task_count", tasks)
	e.fireRosterChanged(people, tasks)

	return nil
}

// People returns the roster in insertion order.
//
// Returns:
//   - []types.Person: Copy of the current roster
func (e *Engine) People() []types.Person {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]types.Person, len(e.people))
	copy(out, e.people)

	return out
}

// Tasks returns the task catalog in insertion order.
//
// Returns:
//   - []types.Task: Copy of the current task list
func (e *Engine) Tasks() []types.Task {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]types.Task, len(e.tasks))
	copy(out, e.tasks)

	return out
}

// Rotate recomputes the whole assignment table using the configured policy.
//
// Rotate is deliberately not idempotent: two calls in immediate succession
// advance stateful policies twice (or draw two independent permutations
// under the shuffle policy). It never fails for an empty roster or task
// list; lookups on the query path fail instead.
//
// Parameters:
//   - trigger: What caused the rotation (TriggerManual, TriggerScheduled, ...)
//
// Returns:
//   - error: Policy error, wrapped; the previous table remains published
func (e *Engine) Rotate(trigger string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	e.logger.Info("rotation started", "trigger", trigger, "people", len(e.people), "tasks", len(e.tasks))

	prev, _ := e.table.Load().(types.Table)
	table, err := e.policy.Rotate(e.people, e.tasks, prev)
	if err != nil {
		e.metrics.RecordRotation(trigger, false)
		e.logger.Error("rotation failed", "trigger", trigger, "error", err)

		return fmt.Errorf("rotation failed: %w", err)
	}

	e.table.Store(table)
	e.rotations.Add(1)

	elapsed := time.Since(start)
	e.metrics.RecordRotation(trigger, true)
	e.metrics.ObserveRotationDuration(elapsed.Seconds())
	e.logger.Info("rotation complete", "trigger", trigger, "assigned", len(table), "elapsed", elapsed)

	if e.hooks != nil && e.hooks.OnRotated != nil {
		if err := e.hooks.OnRotated(trigger, table.Clone()); err != nil {
			e.logger.Warn("OnRotated hook failed", "error", err)
		}
	}

	return nil
}

// Table returns a snapshot of the current assignment table.
//
// Returns:
//   - types.Table: Independent copy, safe to read and mutate
func (e *Engine) Table() types.Table {
	table, _ := e.table.Load().(types.Table)

	return table.Clone()
}

// Assignments resolves the current table into an ordered projection: one row
// per assigned person, in roster order, with names instead of IDs.
//
// People without a table entry are omitted; that is the observable shape of
// the shuffle policy's truncation (and of a roster that has never rotated).
//
// Returns:
//   - []types.Assignment: Ordered resolved assignments
//   - error: ErrUnknownTask or ErrUnknownPerson when the table references an
//     entity that does not exist (model corruption; never swallowed)
func (e *Engine) Assignments() ([]types.Assignment, error) {
	e.mu.RLock()
	people := make([]types.Person, len(e.people))
	copy(people, e.people)
	tasks := make([]types.Task, len(e.tasks))
	copy(tasks, e.tasks)
	// The snapshot must be loaded while the roster copy is still current.
	// Rotate publishes under the write lock and the roster is append-only, so
	// a table loaded here can only reference people the copy already knows;
	// loading after RUnlock could pick up a rotation that saw a newer roster.
	table, _ := e.table.Load().(types.Table)
	e.mu.RUnlock()

	byID := make(map[int]types.Task, len(tasks))
	for _, task := range tasks {
		byID[task.ID] = task
	}

	known := make(map[int]bool, len(people))
	out := make([]types.Assignment, 0, len(people))
	for _, person := range people {
		known[person.ID] = true
		taskID, ok := table[person.ID]
		if !ok {
			continue
		}
		task, ok := byID[taskID]
		if !ok {
			return nil, fmt.Errorf("%w: person %d assigned task %d", ErrUnknownTask, person.ID, taskID)
		}
		out = append(out, types.Assignment{Person: person, Task: task})
	}

	// A table entry for a person the roster does not know is the same class
	// of corruption as a missing task.
	for personID := range table {
		if !known[personID] {
			return nil, fmt.Errorf("%w: id %d", ErrUnknownPerson, personID)
		}
	}

	return out, nil
}

// RotationCount returns the number of successful rotations performed.
func (e *Engine) RotationCount() int64 {
	return e.rotations.Load()
}

func (e *Engine) fireRosterChanged(people, tasks int) {
	if e.hooks != nil && e.hooks.OnRosterChanged != nil {
		if err := e.hooks.OnRosterChanged(people, tasks); err != nil {
			e.logger.Warn("OnRosterChanged hook failed", "error", err)
		}
	}
}

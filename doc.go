// Package taskbackend provides a chore rotation engine: it assigns a catalog
// of recurring tasks to a roster of people and rotates the assignment on a
// weekly cadence or on demand.
//
// # Quick Start
//
// Basic usage with the sequential policy:
//
//	import (
//	    taskbackend "github.com/prajwal2403/task-backend"
//	    "github.com/prajwal2403/task-backend/policy"
//	)
//
//	cfg := taskbackend.DefaultConfig()
//	eng, err := taskbackend.NewEngine(&cfg, policy.NewSequential())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	_ = eng.AddPerson(taskbackend.Person{ID: 1, Name: "Mithilesh"})
//	_ = eng.AddTask(taskbackend.Task{ID: 1, Name: "Balcony", BaseValue: 5})
//	_ = eng.Rotate(taskbackend.TriggerStartup)
//
//	assignments, err := eng.Assignments()
//
// # Key Pieces
//
//   - Engine: owns the roster and the assignment table behind a lock; the
//     table is published copy-on-write so readers never see a torn update
//   - RotationPolicy: pluggable rotation algorithm (policy.Sequential,
//     policy.Shuffle, policy.Successor) — mutually exclusive choices, picked
//     once per engine
//   - Scheduler: cancellable background loop that rotates automatically on
//     the designated weekday (default Saturday), evaluated against an
//     injectable Clock
//   - httpapi: thin HTTP layer exposing the engine's operations
//
// # Advanced Usage
//
// Scheduler with injected dependencies:
//
//	sched, err := taskbackend.NewScheduler(eng, &cfg,
//	    taskbackend.WithLogger(logger),
//	    taskbackend.WithMetrics(collector),
//	    taskbackend.WithClock(clock),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = sched.Start(ctx)
//	defer sched.Stop(context.Background())
//
// See the examples/ directory for a complete working example.
package taskbackend

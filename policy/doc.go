// Package policy provides rotation policy implementations for the
// task-backend engine.
//
// Three policies are available:
//   - Sequential: a persistent cursor walks the task list so every person
//     eventually receives every task (recommended)
//   - Shuffle: an independent uniform permutation per rotation
//   - Successor: each person's next task ID is derived from their current one
//
// Policies are mutually exclusive configuration choices of one engine; they
// do not compose within a single instance. Pick one at construction time:
//
//	eng, err := taskbackend.NewEngine(&cfg, policy.NewSequential())
package policy

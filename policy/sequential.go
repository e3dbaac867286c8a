package policy

import (
	"github.com/prajwal2403/task-backend/types"
)

// Sequential implements cursor-based round-robin rotation.
//
// A single cursor tracks the position in the task list and persists across
// rotation events: a rotation continues from wherever the previous one left
// off instead of resetting to the start of the list. Over time, assuming the
// task list does not change, every person receives every task and no task is
// skipped.
type Sequential struct {
	cursor int
}

var _ types.RotationPolicy = (*Sequential)(nil)

// NewSequential creates a new sequential rotation policy.
//
// The cursor starts at -1 ("before the first task") so the first rotation
// assigns tasks starting from index 0.
//
// The returned policy is stateful and not safe for concurrent use on its own;
// the engine serializes all Rotate calls.
//
// Returns:
//   - *Sequential: Initialized sequential policy
//
// Example:
//
//	pol := policy.NewSequential()
//	eng, err := taskbackend.NewEngine(&cfg, pol)
func NewSequential() *Sequential {
	return &Sequential{cursor: -1}
}

// Rotate assigns the next task in cursor order to each person in roster order.
//
// The whole table is recomputed: people added since the previous rotation are
// simply part of the roster walk, so everyone is reassigned, not just new
// entrants. An empty task list yields an empty table without advancing the
// cursor; an empty roster yields an empty table.
func (s *Sequential) Rotate(people []types.Person, tasks []types.Task, _ types.Table) (types.Table, error) {
	table := make(types.Table, len(people))
	if len(tasks) == 0 {
		return table, nil
	}

	for _, person := range people {
		s.cursor = (s.cursor + 1) % len(tasks)
		table[person.ID] = tasks[s.cursor].ID
	}

	return table, nil
}

// Cursor returns the current cursor position. Exposed for observability and
// tests; -1 means no task has been assigned yet.
func (s *Sequential) Cursor() int {
	return s.cursor
}

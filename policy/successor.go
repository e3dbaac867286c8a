package policy

import (
	"github.com/prajwal2403/task-backend/types"
)

// Successor implements person-local rotation by task ID.
//
// On the first rotation the person at roster position i (0-based) receives
// the task whose ID equals (i mod N) + 1, where N is the task count. On every
// subsequent rotation each person's new task ID is derived purely from their
// own current task ID: next = (current mod N) + 1. There is no shared cursor,
// so two people never interfere.
//
// The derivation silently assumes task IDs form a dense 1..N range. If a task
// is added with a non-contiguous ID, the computed successor may not match any
// task; the engine surfaces that as an explicit lookup failure on the query
// path rather than a silent wrong answer.
type Successor struct{}

var _ types.RotationPolicy = (*Successor)(nil)

// NewSuccessor creates a new successor rotation policy.
//
// Returns:
//   - *Successor: Initialized successor policy
func NewSuccessor() *Successor {
	return &Successor{}
}

// Rotate advances each person to the successor of their current task ID,
// wrapping to 1 after N. People without a previous assignment (first rotation
// or newly added) receive the positional first-assignment ID (i mod N) + 1.
func (s *Successor) Rotate(people []types.Person, tasks []types.Task, prev types.Table) (types.Table, error) {
	table := make(types.Table, len(people))
	if len(tasks) == 0 {
		return table, nil
	}

	n := len(tasks)
	for i, person := range people {
		current, ok := prev[person.ID]
		if !ok {
			table[person.ID] = (i % n) + 1
			continue
		}
		table[person.ID] = (current % n) + 1
	}

	return table, nil
}

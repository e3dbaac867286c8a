package types

// RotationPolicy computes a fresh assignment table from the roster.
//
// Policies implement different rotation algorithms:
//   - Sequential: persistent cursor walking the task list (round-robin over time)
//   - Shuffle: independent uniform permutation per rotation
//   - Successor: person-local "next task ID" derivation
//
// The engine calls Rotate during:
//   - Initial assignment at startup
//   - Roster changes (person or task added)
//   - Scheduled rotation (designated weekday)
//   - Manual rotation requests
//
// Policy implementations may carry internal state (the sequential cursor) and
// are NOT required to be safe for concurrent use: the engine serializes all
// Rotate calls behind its own lock. Two consecutive calls advance state twice
// under stateful policies; Rotate is deliberately not idempotent.
type RotationPolicy interface {
	// Rotate computes a new table assigning one task to each person.
	//
	// Parameters:
	//   - people: Roster in insertion order
	//   - tasks: Task list in insertion order
	//   - prev: Previous assignment table (nil or empty on first rotation)
	//
	// Returns:
	//   - Table: New person→task table (may be smaller than the roster when a
	//     policy truncates, e.g. Shuffle with more people than tasks)
	//   - error: Rotation error; an empty roster or task list is not an
	//     error, it yields an empty table
	Rotate(people []Person, tasks []Task, prev Table) (Table, error)
}

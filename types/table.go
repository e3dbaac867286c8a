package types

// Table is the assignment table mapping person ID to task ID.
//
// Tables are recomputed wholesale on every rotation event and published as
// copy-on-write snapshots; callers always observe either the complete
// pre-rotation table or the complete post-rotation table, never a partial
// overwrite. A Table returned by the engine is a private copy and safe to
// read without synchronization.
type Table map[int]int

// Clone returns a deep copy of the table.
//
// Returns:
//   - Table: Independent copy (empty, non-nil table for a nil receiver)
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for person, task := range t {
		out[person] = task
	}

	return out
}

// Assignment is one resolved row of the assignment table: a person together
// with their currently assigned task.
type Assignment struct {
	Person Person `json:"person"`
	Task   Task   `json:"task"`
}

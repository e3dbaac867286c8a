package types

// Task is a recurring chore that can be assigned to a person.
//
// IDs are externally assigned and must be unique. Like people, tasks are
// append-only and their insertion order is significant: sequential rotation
// walks the task list in this order.
type Task struct {
	// ID uniquely identifies the task. The successor rotation policy assumes
	// IDs form a dense 1..N range; see policy.Successor.
	ID int `json:"id" yaml:"id"`

	// Name is the display name used by the assignment projection.
	Name string `json:"name" yaml:"name"`

	// Description optionally elaborates on the task.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// BaseValue is the relative point value of the task. It is carried as
	// inert data; no rotation policy consumes it.
	BaseValue int `json:"baseValue,omitempty" yaml:"baseValue,omitempty"`
}

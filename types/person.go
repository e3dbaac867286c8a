package types

// Person is a member of the roster.
//
// IDs are externally assigned and must be unique within a roster. People are
// never mutated or removed once added; insertion order defines the rotation
// sequence.
type Person struct {
	// ID uniquely identifies the person.
	ID int `json:"id" yaml:"id"`

	// Name is the display name used by the assignment projection.
	Name string `json:"name" yaml:"name"`
}

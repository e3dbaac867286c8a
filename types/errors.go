package types

import "errors"

// Sentinel errors for the task-backend library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). Components should return these sentinels for known error
// conditions and wrap external errors with context using
// fmt.Errorf("%s: %w", msg, err).

// Roster errors - returned by roster mutations.
var (
	// ErrDuplicatePerson is returned when adding a person whose ID already exists.
	// The roster and assignment table are left unchanged.
	ErrDuplicatePerson = errors.New("person already exists")

	// ErrDuplicateTask is returned when adding a task whose ID already exists.
	// The roster and assignment table are left unchanged.
	ErrDuplicateTask = errors.New("task already exists")
)

// Lookup errors - returned by the assignment query path.
//
// A dangling reference indicates model corruption (an assignment pointing at
// an entity that does not exist) and is surfaced as a hard failure, never
// silently dropped.
var (
	// ErrUnknownTask is returned when an assignment references a task ID with
	// no matching task.
	ErrUnknownTask = errors.New("assignment references unknown task")

	// ErrUnknownPerson is returned when an assignment references a person ID
	// with no matching person.
	ErrUnknownPerson = errors.New("assignment references unknown person")
)

// Engine and scheduler errors.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrPolicyRequired is returned when the rotation policy is nil.
	ErrPolicyRequired = errors.New("rotation policy is required")

	// ErrEngineRequired is returned when the engine passed to a collaborator is nil.
	ErrEngineRequired = errors.New("engine is required")

	// ErrAlreadyStarted is returned when Start is called on a running scheduler.
	ErrAlreadyStarted = errors.New("scheduler already started")

	// ErrNotStarted is returned when Stop is called on a scheduler that has
	// not been started.
	ErrNotStarted = errors.New("scheduler not started")
)

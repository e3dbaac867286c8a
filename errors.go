package taskbackend

import "github.com/prajwal2403/task-backend/types"

// Sentinel errors re-exported from the types subpackage.
//
// Re-exporting the same error values (not copies) keeps errors.Is checks
// working regardless of which package a caller imports.
var (
	// ErrDuplicatePerson is returned when adding a person whose ID already exists.
	ErrDuplicatePerson = types.ErrDuplicatePerson

	// ErrDuplicateTask is returned when adding a task whose ID already exists.
	ErrDuplicateTask = types.ErrDuplicateTask

	// ErrUnknownTask is returned when an assignment references a missing task.
	ErrUnknownTask = types.ErrUnknownTask

	// ErrUnknownPerson is returned when an assignment references a missing person.
	ErrUnknownPerson = types.ErrUnknownPerson

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrPolicyRequired is returned when the rotation policy is nil.
	ErrPolicyRequired = types.ErrPolicyRequired

	// ErrEngineRequired is returned when the engine is nil.
	ErrEngineRequired = types.ErrEngineRequired

	// ErrAlreadyStarted is returned when Start is called on a running scheduler.
	ErrAlreadyStarted = types.ErrAlreadyStarted

	// ErrNotStarted is returned when Stop is called on a scheduler that has
	// not been started.
	ErrNotStarted = types.ErrNotStarted
)

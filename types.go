package taskbackend

import "github.com/prajwal2403/task-backend/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root package, while
// still providing a convenient `taskbackend.Person`, `taskbackend.Logger`,
// etc. for users.
type (
	Person     = types.Person
	Task       = types.Task
	Table      = types.Table
	Assignment = types.Assignment
)

// Re-export interfaces from the types subpackage for convenience.
type (
	RotationPolicy   = types.RotationPolicy
	Clock            = types.Clock
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
	Hooks            = types.Hooks
)

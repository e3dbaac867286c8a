// Package types contains the core types and interfaces shared across the
// task-backend library.
//
// Internal packages depend on types without depending on the root package,
// which keeps the dependency graph acyclic while the root package re-exports
// everything under convenient aliases (taskbackend.Person, taskbackend.Logger,
// and so on).
package types

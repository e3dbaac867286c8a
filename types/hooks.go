package types

// Hooks defines optional callbacks for engine lifecycle events.
//
// Hooks are invoked synchronously from within the mutating call after the new
// state is published, so implementations should complete quickly and must not
// call back into the engine's mutating methods (doing so would deadlock on
// the engine lock).
//
// Hook errors are logged but never fail the triggering operation.
//
// Example:
//
//	hooks := &taskbackend.Hooks{
//	    OnRotated: func(trigger string, table taskbackend.Table) error {
//	        return notifyFrontend(table)
//	    },
//	}
//	eng, _ := taskbackend.NewEngine(&cfg, pol, taskbackend.WithHooks(hooks))
type Hooks struct {
	// OnRotated is called after every successful rotation with a snapshot of
	// the new assignment table.
	OnRotated func(trigger string, table Table) error

	// OnRosterChanged is called after a person or task is added.
	OnRosterChanged func(people, tasks int) error

	// OnError is called when a recoverable error occurs (e.g. a failed
	// scheduled rotation).
	OnError func(err error) error
}

package policy

import (
	"fmt"

	"github.com/prajwal2403/task-backend/types"
)

// ByName constructs the rotation policy selected by configuration.
//
// Parameters:
//   - name: "sequential", "shuffle", or "successor"
//
// Returns:
//   - types.RotationPolicy: Freshly constructed policy
//   - error: For unrecognized names
func ByName(name string) (types.RotationPolicy, error) {
	switch name {
	case "sequential":
		return NewSequential(), nil
	case "shuffle":
		return NewShuffle(), nil
	case "successor":
		return NewSuccessor(), nil
	default:
		return nil, fmt.Errorf("unrecognized rotation policy %q", name)
	}
}

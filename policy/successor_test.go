package policy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prajwal2403/task-backend/types"
)

func TestSuccessor_Rotate(t *testing.T) {
	t.Run("first rotation assigns by roster position", func(t *testing.T) {
		pol := NewSuccessor()
		roster := people("P1", "P2")
		chores := tasks("T1", "T2", "T3")

		table, err := pol.Rotate(roster, chores, nil)

		require.NoError(t, err)
		require.Equal(t, types.Table{1: 1, 2: 2}, table)
	})

	t.Run("subsequent rotation advances each person by task id", func(t *testing.T) {
		pol := NewSuccessor()
		roster := people("P1", "P2")
		chores := tasks("T1", "T2", "T3")

		first, err := pol.Rotate(roster, chores, nil)
		require.NoError(t, err)

		second, err := pol.Rotate(roster, chores, first)
		require.NoError(t, err)

		require.Equal(t, types.Table{1: 2, 2: 3}, second)
	})

	t.Run("wraps to task 1 after the maximum id", func(t *testing.T) {
		pol := NewSuccessor()
		roster := people("P1")
		chores := tasks("T1", "T2", "T3")

		table := types.Table{1: 3}
		next, err := pol.Rotate(roster, chores, table)

		require.NoError(t, err)
		require.Equal(t, types.Table{1: 1}, next)
	})

	t.Run("people are independent of each other", func(t *testing.T) {
		pol := NewSuccessor()
		roster := people("P1", "P2", "P3")
		chores := tasks("T1", "T2", "T3", "T4")

		prev := types.Table{1: 4, 2: 1, 3: 2}
		next, err := pol.Rotate(roster, chores, prev)

		require.NoError(t, err)
		require.Equal(t, types.Table{1: 1, 2: 2, 3: 3}, next)
	})

	t.Run("new person gets positional first assignment", func(t *testing.T) {
		pol := NewSuccessor()
		roster := people("P1", "P2", "P3")
		chores := tasks("T1", "T2", "T3")

		prev := types.Table{1: 2, 2: 3}
		next, err := pol.Rotate(roster, chores, prev)

		require.NoError(t, err)
		// P3 is at roster position 2, so (2 mod 3) + 1 = 3.
		require.Equal(t, types.Table{1: 3, 2: 1, 3: 3}, next)
	})

	t.Run("non-contiguous task id produces a dangling successor", func(t *testing.T) {
		pol := NewSuccessor()
		roster := people("P1")
		// Task ids 1 and 7: the dense 1..N assumption is violated.
		chores := []types.Task{{ID: 1, Name: "T1"}, {ID: 7, Name: "T7"}}

		next, err := pol.Rotate(roster, chores, types.Table{1: 7})

		require.NoError(t, err)
		// (7 mod 2) + 1 = 2, which matches no task. The engine's query path
		// reports this as an unknown-task lookup failure.
		require.Equal(t, types.Table{1: 2}, next)
	})

	t.Run("empty task list yields empty table", func(t *testing.T) {
		table, err := NewSuccessor().Rotate(people("P1"), nil, types.Table{1: 1})

		require.NoError(t, err)
		require.Empty(t, table)
	})
}

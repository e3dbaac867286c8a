package policy

import (
	rand "math/rand/v2"

	"github.com/prajwal2403/task-backend/types"
)

// Shuffle implements random rotation: each rotation event independently
// permutes the task list uniformly at random and zips it against the roster
// in order.
//
// The zip truncates at the shorter list. When people outnumber tasks the
// excess people receive no assignment for that cycle; this asymmetry is
// deliberate and observable through the assignment projection.
type Shuffle struct {
	rng *rand.Rand
}

var _ types.RotationPolicy = (*Shuffle)(nil)

// NewShuffle creates a new shuffle rotation policy using the shared
// package-level PRNG.
//
// Returns:
//   - *Shuffle: Initialized shuffle policy
func NewShuffle() *Shuffle {
	return &Shuffle{}
}

// NewShuffleWithSeed creates a shuffle policy with a deterministic PRNG.
//
// A zero seed falls back to the shared package-level PRNG. Deterministic
// seeding is intended for tests that need reproducible permutations.
//
// Parameters:
//   - seed: PRNG seed (0 = non-deterministic)
//
// Returns:
//   - *Shuffle: Initialized shuffle policy
func NewShuffleWithSeed(seed int64) *Shuffle {
	if seed == 0 {
		return NewShuffle()
	}
	s1 := uint64(seed)
	s2 := s1 ^ 0x9e3779b97f4a7c15

	return &Shuffle{rng: rand.New(rand.NewPCG(s1, s2))}
}

// Rotate draws an independent uniform permutation of the task list and pairs
// roster position i with permutation position i, truncating at the shorter
// list. Two consecutive calls draw two independent permutations.
func (s *Shuffle) Rotate(people []types.Person, tasks []types.Task, _ types.Table) (types.Table, error) {
	table := make(types.Table, len(people))
	if len(tasks) == 0 || len(people) == 0 {
		return table, nil
	}

	shuffled := make([]types.Task, len(tasks))
	copy(shuffled, tasks)
	s.shuffle(shuffled)

	n := min(len(people), len(shuffled))
	for i := range n {
		table[people[i].ID] = shuffled[i].ID
	}

	return table, nil
}

func (s *Shuffle) shuffle(tasks []types.Task) {
	swap := func(i, j int) { tasks[i], tasks[j] = tasks[j], tasks[i] }
	if s.rng != nil {
		s.rng.Shuffle(len(tasks), swap)
		return
	}
	rand.Shuffle(len(tasks), swap)
}

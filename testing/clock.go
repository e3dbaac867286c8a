package testing

import (
	"sync"
	"time"

	"github.com/prajwal2403/task-backend/types"
)

// ManualClock is a Clock pinned to an explicit time that tests advance by
// hand. Safe for concurrent use.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

var _ types.Clock = (*ManualClock)(nil)

// NewManualClock creates a clock frozen at the given time.
//
// Parameters:
//   - now: The time the clock reports until advanced
//
// Returns:
//   - *ManualClock: Initialized manual clock
func NewManualClock(now time.Time) *ManualClock {
	return &ManualClock{now: now}
}

// Now returns the pinned time.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// Set pins the clock to an absolute time.
func (c *ManualClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = now
}

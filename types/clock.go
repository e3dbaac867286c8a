package types

import "time"

// Clock provides the current time.
//
// The scheduler and the HTTP simulate endpoint evaluate the rotation trigger
// against an injected Clock so tests can pin the calendar to any weekday
// without waiting for a real Saturday.
type Clock interface {
	// Now returns the current wall-clock time.
	Now() time.Time
}

// SystemClock is a Clock backed by time.Now.
type SystemClock struct{}

// Compile-time assertion that SystemClock implements Clock.
var _ Clock = SystemClock{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

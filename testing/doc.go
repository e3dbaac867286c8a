// Package testing provides test utilities for the task-backend library.
//
// It follows Go's convention of providing testing helpers in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - NewTestLogger: Logger that writes through testing.T
//   - NewManualClock: Clock pinned to an explicit time, advanced by tests
//
// Example usage:
//
//	import (
//	    "testing"
//	    tbtest "github.com/prajwal2403/task-backend/testing"
//	)
//
//	func TestScheduler(t *testing.T) {
//	    clock := tbtest.NewManualClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
//	    logger := tbtest.NewTestLogger(t)
//	    // ...
//	}
package testing

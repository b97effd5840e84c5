package timer

import "time"

// Scheduler arms one-shot callbacks. The real implementation delegates to
// time.AfterFunc; tests swap in a mock and fire callbacks deterministically.
type Scheduler interface {
	// AfterFunc runs f on its own goroutine after d elapses
	AfterFunc(d time.Duration, f func()) Handle
}

// Handle is a cancellable scheduled callback. Stop reports whether the
// callback was prevented from running; a false return means it already fired
// or is in flight, so callers must still guard against stale firings.
type Handle interface {
	Stop() bool
}

// RealScheduler implements Scheduler using the runtime timer heap
type RealScheduler struct{}

// New creates a new RealScheduler
func New() *RealScheduler {
	return &RealScheduler{}
}

// AfterFunc schedules f after d
func (s *RealScheduler) AfterFunc(d time.Duration, f func()) Handle {
	return time.AfterFunc(d, f)
}

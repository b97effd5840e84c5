package mocks

import (
	"sync"
	"time"

	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/dependencies/timer"
)

// ScheduledCall is one recorded AfterFunc registration
type ScheduledCall struct {
	Delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

// Stop marks the call as cancelled
func (c *ScheduledCall) Stop() bool {
	if c.fired {
		return false
	}
	c.stopped = true
	return true
}

// MockScheduler records AfterFunc registrations so tests can fire timer
// callbacks deterministically instead of sleeping.
type MockScheduler struct {
	mu    sync.Mutex
	calls []*ScheduledCall
}

// Ensure MockScheduler implements Scheduler
var _ timer.Scheduler = (*MockScheduler)(nil)

// NewMockScheduler creates a new MockScheduler
func NewMockScheduler() *MockScheduler {
	return &MockScheduler{}
}

// AfterFunc records the callback without running it
func (s *MockScheduler) AfterFunc(d time.Duration, f func()) timer.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	call := &ScheduledCall{Delay: d, fn: f}
	s.calls = append(s.calls, call)
	return call
}

// FireNext runs the oldest pending callback synchronously.
// Returns false when nothing is pending.
func (s *MockScheduler) FireNext() bool {
	s.mu.Lock()
	var next *ScheduledCall
	for _, c := range s.calls {
		if !c.stopped && !c.fired {
			next = c
			break
		}
	}
	if next == nil {
		s.mu.Unlock()
		return false
	}
	next.fired = true
	s.mu.Unlock()

	next.fn()
	return true
}

// FireAll runs pending callbacks until none remain, including callbacks
// scheduled by the callbacks themselves. Stops after limit firings.
func (s *MockScheduler) FireAll(limit int) int {
	fired := 0
	for fired < limit && s.FireNext() {
		fired++
	}
	return fired
}

// Pending returns the number of callbacks that are neither fired nor stopped
func (s *MockScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		if !c.stopped && !c.fired {
			n++
		}
	}
	return n
}

// LastDelay returns the delay of the most recent registration
func (s *MockScheduler) LastDelay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return 0
	}
	return s.calls[len(s.calls)-1].Delay
}

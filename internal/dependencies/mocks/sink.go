package mocks

import (
	"sync"

	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/model"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/notify"
)

// MockSink records delivered notifications for assertions
type MockSink struct {
	mu        sync.Mutex
	delivered []notify.Notification
}

// Ensure MockSink implements Sink
var _ notify.Sink = (*MockSink)(nil)

// NewMockSink creates a new MockSink
func NewMockSink() *MockSink {
	return &MockSink{}
}

// Deliver records the notification
func (s *MockSink) Deliver(n notify.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delivered = append(s.delivered, n)
}

// All returns every recorded notification in delivery order
func (s *MockSink) All() []notify.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]notify.Notification(nil), s.delivered...)
}

// ByEvent returns every recorded notification with the given event name
func (s *MockSink) ByEvent(event model.EventType) []notify.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []notify.Notification
	for _, n := range s.delivered {
		if n.Event == event {
			out = append(out, n)
		}
	}
	return out
}

// ToParticipant returns direct notifications sent to the given participant
func (s *MockSink) ToParticipant(id model.ParticipantID) []notify.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []notify.Notification
	for _, n := range s.delivered {
		if n.Target.Participant == id {
			out = append(out, n)
		}
	}
	return out
}

// Reset clears the recorded notifications
func (s *MockSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delivered = nil
}

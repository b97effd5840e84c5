// Package notify defines the outbound notification model at the boundary
// between the game core and the session gateway. The core computes
// notifications while holding a room's lock and flushes them to the sink
// after releasing it, so delivery can never deadlock against or abort a
// state transition.
package notify

import "github.com/ANNOMOUSUSER/skribbl-clone2/internal/model"

// Target addresses a notification: one participant, a whole room, or a
// whole room minus one sender.
type Target struct {
	Participant model.ParticipantID // set for direct delivery
	Room        model.RoomCode      // set for room broadcast
	Except      model.ParticipantID // optional exclusion on room broadcast
}

// Notification is one outbound emission
type Notification struct {
	Target  Target
	Event   model.EventType
	Payload any
}

// Sink delivers notifications to connected clients. Implementations must
// tolerate recipients that have already disconnected.
type Sink interface {
	Deliver(n Notification)
}

// Buffer accumulates notifications produced during a single room mutation.
// It is not safe for concurrent use; each operation builds its own buffer
// under the room lock and flushes it afterwards.
type Buffer struct {
	pending []Notification
}

// To queues a direct notification to one participant
func (b *Buffer) To(id model.ParticipantID, event model.EventType, payload any) {
	b.pending = append(b.pending, Notification{
		Target:  Target{Participant: id},
		Event:   event,
		Payload: payload,
	})
}

// ToRoom queues a room-wide broadcast
func (b *Buffer) ToRoom(code model.RoomCode, event model.EventType, payload any) {
	b.pending = append(b.pending, Notification{
		Target:  Target{Room: code},
		Event:   event,
		Payload: payload,
	})
}

// ToRoomExcept queues a room-wide broadcast excluding one participant
func (b *Buffer) ToRoomExcept(code model.RoomCode, except model.ParticipantID, event model.EventType, payload any) {
	b.pending = append(b.pending, Notification{
		Target:  Target{Room: code, Except: except},
		Event:   event,
		Payload: payload,
	})
}

// Flush delivers all queued notifications to the sink and empties the buffer
func (b *Buffer) Flush(sink Sink) {
	for _, n := range b.pending {
		sink.Deliver(n)
	}
	b.pending = nil
}

// Len returns the number of queued notifications
func (b *Buffer) Len() int {
	return len(b.pending)
}

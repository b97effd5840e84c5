package storage

import "github.com/ANNOMOUSUSER/skribbl-clone2/internal/model"

// Store owns the shared cross-room maps: code→room and participant→room.
// It guards only the maps themselves; mutating a room's contents requires
// the room's own lock. Store methods never take room locks, which keeps the
// lock order strictly store-then-room.
type Store interface {
	// SaveRoom registers a room under its code.
	// Returns false if the code is already in use.
	SaveRoom(room *model.Room) bool

	// Room returns the live room for a code
	Room(code model.RoomCode) (*model.Room, error)

	// DeleteRoom removes a room from the registry
	DeleteRoom(code model.RoomCode)

	// Rooms snapshots all live rooms
	Rooms() []*model.Room

	// BindParticipant records which room an identity belongs to.
	// An identity belongs to at most one room at a time.
	BindParticipant(id model.ParticipantID, code model.RoomCode)

	// ParticipantRoom is the O(1) reverse lookup from identity to room code
	ParticipantRoom(id model.ParticipantID) (model.RoomCode, bool)

	// UnbindParticipant clears an identity's membership
	UnbindParticipant(id model.ParticipantID)
}

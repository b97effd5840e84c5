package memory

import (
	"sync"

	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/model"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/storage"
)

// Storage is the in-memory implementation of the registry maps
type Storage struct {
	mu sync.RWMutex

	rooms      map[model.RoomCode]*model.Room
	membership map[model.ParticipantID]model.RoomCode
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		rooms:      make(map[model.RoomCode]*model.Room),
		membership: make(map[model.ParticipantID]model.RoomCode),
	}
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) SaveRoom(room *model.Room) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.rooms[room.Code]; exists {
		return false
	}
	s.rooms[room.Code] = room
	return true
}

func (s *Storage) Room(code model.RoomCode) (*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[code]
	if !ok {
		return nil, model.ErrRoomNotFound
	}
	return room, nil
}

func (s *Storage) DeleteRoom(code model.RoomCode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, code)
}

func (s *Storage) Rooms() []*model.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		out = append(out, room)
	}
	return out
}

func (s *Storage) BindParticipant(id model.ParticipantID, code model.RoomCode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.membership[id] = code
}

func (s *Storage) ParticipantRoom(id model.ParticipantID) (model.RoomCode, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	code, ok := s.membership[id]
	return code, ok
}

func (s *Storage) UnbindParticipant(id model.ParticipantID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.membership, id)
}

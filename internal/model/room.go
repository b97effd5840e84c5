package model

import (
	"sync"
	"time"
)

// RoomCode is a short opaque identifier for joining rooms
type RoomCode string

// MaxPlayersPerRoom caps the player list; spectators are uncapped
const MaxPlayersPerRoom = 8

// Settings holds per-room game configuration
type Settings struct {
	MaxRounds int `json:"maxRounds"`
	RoundTime int `json:"roundTime"` // seconds per round
	TotalTime int `json:"totalTime"` // overall game time, echoed to clients
}

// DefaultSettings returns the default room settings
func DefaultSettings() Settings {
	return Settings{
		MaxRounds: 3,
		RoundTime: 60,
		TotalTime: 15,
	}
}

// SettingsOverride carries optional per-field setting overrides from clients
type SettingsOverride struct {
	MaxRounds *int `json:"maxRounds,omitempty"`
	RoundTime *int `json:"roundTime,omitempty"`
	TotalTime *int `json:"totalTime,omitempty"`
}

// Apply merges non-nil override fields onto s. Non-positive values are ignored.
func (s *Settings) Apply(o *SettingsOverride) {
	if o == nil {
		return
	}
	if o.MaxRounds != nil && *o.MaxRounds > 0 {
		s.MaxRounds = *o.MaxRounds
	}
	if o.RoundTime != nil && *o.RoundTime > 0 {
		s.RoundTime = *o.RoundTime
	}
	if o.TotalTime != nil && *o.TotalTime > 0 {
		s.TotalTime = *o.TotalTime
	}
}

// TimerHandle is a cancellable scheduled callback (satisfied by timer.Handle)
type TimerHandle interface {
	Stop() bool
}

// Room is one isolated game session. All mutable fields are guarded by the
// room's own mutex: every operation that touches a room (join, leave, guess,
// admin action, timer firing) runs under Lock, so at most one mutation is in
// flight per room at any instant.
type Room struct {
	mu sync.Mutex

	Code       RoomCode
	Settings   Settings
	Players    []*Player // insertion order = turn order
	Spectators []*Participant

	GameStarted bool
	// RoundActive distinguishes a running round from the grace windows
	// between rounds: it is set when a round begins and cleared the moment
	// the round ends, while GameStarted stays true until the game is over.
	// With the word revealed at round end, nothing between rounds may score,
	// re-end the round, or treat the drawer as still drawing.
	RoundActive bool
	Round       int
	TurnIdx     int // index of the current drawer in Players
	DrawerID    ParticipantID
	Word        string
	Hint        string
	TimeLeft    int
	AdminID     ParticipantID

	// Timer bookkeeping. TimerGen is the room's timer generation: it is
	// bumped whenever the active timer is cancelled or replaced, and a fired
	// callback must compare its captured generation against it before doing
	// anything, so a stale firing racing a just-rescheduled timer is a no-op.
	Timer    TimerHandle
	TimerGen uint64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRoom creates a room in the lobby state
func NewRoom(code RoomCode, settings Settings, now time.Time) *Room {
	return &Room{
		Code:      code,
		Settings:  settings,
		Round:     1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Lock acquires the room's mutation lock
func (r *Room) Lock() { r.mu.Lock() }

// Unlock releases the room's mutation lock
func (r *Room) Unlock() { r.mu.Unlock() }

// PlayerByID returns the player with the given ID, or nil
func (r *Room) PlayerByID(id ParticipantID) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// SpectatorByID returns the spectator with the given ID, or nil
func (r *Room) SpectatorByID(id ParticipantID) *Participant {
	for _, s := range r.Spectators {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Host returns the current host player, or nil
func (r *Room) Host() *Player {
	for _, p := range r.Players {
		if p.IsHost {
			return p
		}
	}
	return nil
}

// RemovePlayer removes the player at the given ID, keeping turn order
// consistent: TurnIdx is shifted left when the removal is at or before it,
// so the next cyclic advance lands on the player who followed the departed one.
func (r *Room) RemovePlayer(id ParticipantID) *Player {
	for i, p := range r.Players {
		if p.ID == id {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			if i <= r.TurnIdx {
				r.TurnIdx--
			}
			return p
		}
	}
	return nil
}

// RemoveSpectator removes the spectator with the given ID
func (r *Room) RemoveSpectator(id ParticipantID) *Participant {
	for i, s := range r.Spectators {
		if s.ID == id {
			r.Spectators = append(r.Spectators[:i], r.Spectators[i+1:]...)
			return s
		}
	}
	return nil
}

// Empty reports whether the room has no occupants left
func (r *Room) Empty() bool {
	return len(r.Players) == 0 && len(r.Spectators) == 0
}

// IsAdmin is the single authority predicate consulted before every
// privileged operation: the participant must hold the admin role in this
// room and be the room's registered admin identity.
func (r *Room) IsAdmin(id ParticipantID) bool {
	s := r.SpectatorByID(id)
	return s != nil && s.Role == RoleAdmin && r.AdminID == id
}

// CanStartGame allows the admin or the host player to start the game
func (r *Room) CanStartGame(id ParticipantID) bool {
	if r.IsAdmin(id) {
		return true
	}
	p := r.PlayerByID(id)
	return p != nil && p.IsHost
}

// AllNonDrawersGuessed reports whether every non-drawer player has guessed
// correctly this round. False when the drawer is the only player.
func (r *Room) AllNonDrawersGuessed() bool {
	guessers := 0
	for _, p := range r.Players {
		if p.ID == r.DrawerID {
			continue
		}
		if !p.Guessed {
			return false
		}
		guessers++
	}
	return guessers > 0
}

// OccupantIDs snapshots every occupant identity, optionally excluding one.
// Takes the room lock; callers must not hold it.
func (r *Room) OccupantIDs(except ParticipantID) []ParticipantID {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]ParticipantID, 0, len(r.Players)+len(r.Spectators))
	for _, p := range r.Players {
		if p.ID != except {
			ids = append(ids, p.ID)
		}
	}
	for _, s := range r.Spectators {
		if s.ID != except {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// PlayerSummaries returns the wire form of the player list in turn order
func (r *Room) PlayerSummaries() []PlayerSummary {
	out := make([]PlayerSummary, 0, len(r.Players))
	for _, p := range r.Players {
		out = append(out, p.Summary())
	}
	return out
}

// SpectatorSummaries returns the wire form of the spectator list
func (r *Room) SpectatorSummaries() []SpectatorSummary {
	out := make([]SpectatorSummary, 0, len(r.Spectators))
	for _, s := range r.Spectators {
		out = append(out, SpectatorSummary{
			ID:      s.ID,
			Name:    s.DisplayName,
			IsAdmin: s.Role == RoleAdmin,
		})
	}
	return out
}

// RoomInfo is the public snapshot served by introspection endpoints.
// It never carries the current word.
type RoomInfo struct {
	Code        RoomCode       `json:"roomId"`
	Settings    Settings       `json:"settings"`
	Players     int            `json:"playerCount"`
	Spectators  int            `json:"spectatorCount"`
	GameStarted bool           `json:"gameStarted"`
	Round       int            `json:"round"`
	CreatedAt   time.Time      `json:"createdAt"`
	PlayerNames []string       `json:"playerNames"`
}

// Info builds the public snapshot. Caller must hold the room lock.
func (r *Room) Info() RoomInfo {
	names := make([]string, 0, len(r.Players))
	for _, p := range r.Players {
		names = append(names, p.DisplayName)
	}
	return RoomInfo{
		Code:        r.Code,
		Settings:    r.Settings,
		Players:     len(r.Players),
		Spectators:  len(r.Spectators),
		GameStarted: r.GameStarted,
		Round:       r.Round,
		CreatedAt:   r.CreatedAt,
		PlayerNames: names,
	}
}

package model

import "time"

// ParticipantID uniquely identifies a connected participant across the system
type ParticipantID string

// Role is a participant's capability in a room.
// Admin has spectator visibility (sees the drawing and the actual word)
// plus game-flow authority; it is a distinct role, not a flag combination.
type Role string

const (
	RolePlayer    Role = "player"
	RoleSpectator Role = "spectator"
	RoleAdmin     Role = "admin"
)

// Spectating reports whether the role receives spectator-level visibility
func (r Role) Spectating() bool {
	return r == RoleSpectator || r == RoleAdmin
}

// Participant is a connected client's membership record in a room
type Participant struct {
	ID          ParticipantID
	DisplayName string
	Role        Role
	JoinedAt    time.Time
}

// Player is a participant in the player list, carrying per-game state.
// Position in the room's player slice is turn order.
type Player struct {
	Participant
	Score   int
	IsHost  bool
	Guessed bool // guessed correctly this round
}

// PlayerSummary is the wire representation of a player in standings updates
type PlayerSummary struct {
	ID      ParticipantID `json:"id"`
	Name    string        `json:"name"`
	Score   int           `json:"score"`
	IsHost  bool          `json:"isHost"`
	Guessed bool          `json:"hasGuessed"`
}

// SpectatorSummary is the wire representation of a spectator
type SpectatorSummary struct {
	ID      ParticipantID `json:"id"`
	Name    string        `json:"name"`
	IsAdmin bool          `json:"isAdmin"`
}

// Summary converts a player to its wire form
func (p *Player) Summary() PlayerSummary {
	return PlayerSummary{
		ID:      p.ID,
		Name:    p.DisplayName,
		Score:   p.Score,
		IsHost:  p.IsHost,
		Guessed: p.Guessed,
	}
}

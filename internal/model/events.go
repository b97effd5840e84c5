package model

// EventType names an inbound client event or an outbound notification
type EventType string

// Inbound client events
const (
	EventCreateRoom      EventType = "createRoom"
	EventJoinRoom        EventType = "joinRoom"
	EventStartGame       EventType = "startGame"
	EventAdminSkipTurn   EventType = "adminSkipTurn"
	EventAdminEndGame    EventType = "adminEndGame"
	EventAdminKickPlayer EventType = "adminKickPlayer"
	EventAdminKickAll    EventType = "adminKickAll"
	EventAdminChat       EventType = "adminChatMessage"
	EventChatMessage     EventType = "chatMessage"
	EventDrawingData     EventType = "drawingData"
	EventClearCanvas     EventType = "clearCanvas"
	EventGetRoomInfo     EventType = "getRoomInfo"
	EventDisconnect      EventType = "disconnect"
)

// Outbound notifications
const (
	EventRoomCreated        EventType = "roomCreated"
	EventRoomJoined         EventType = "roomJoined"
	EventJoinError          EventType = "joinError"
	EventPlayersUpdate      EventType = "playersUpdate"
	EventSpectatorsUpdate   EventType = "spectatorsUpdate"
	EventAdminStatusUpdate  EventType = "adminStatusUpdate"
	EventRoundStart         EventType = "roundStart"
	EventWordReveal         EventType = "wordReveal"
	EventTimeUpdate         EventType = "timeUpdate"
	EventCorrectGuess       EventType = "correctGuess"
	EventRoundEnd           EventType = "roundEnd"
	EventGameEnd            EventType = "gameEnd"
	EventPlayerJoined       EventType = "playerJoined"
	EventPlayerLeft         EventType = "playerLeft"
	EventSpectatorJoined    EventType = "spectatorJoined"
	EventSpectatorLeft      EventType = "spectatorLeft"
	EventKicked             EventType = "kicked"
	EventAdminAction        EventType = "adminAction"
	EventAdminActionSuccess EventType = "adminActionSuccess"
	EventAdminError         EventType = "adminError"
	EventStartGameError     EventType = "startGameError"
	EventRoomNotFound       EventType = "roomNotFound"
	EventRoomInfo           EventType = "roomInfo"
)

// RoundStartPayload announces a new round. Word is filled only for the
// drawer and spectating roles; guessers get the masked hint.
type RoundStartPayload struct {
	Drawer     ParticipantID `json:"drawer"`
	DrawerName string        `json:"drawerName"`
	Word       string        `json:"word,omitempty"`
	Hint       string        `json:"hint"`
	Round      int           `json:"round"`
	MaxRounds  int           `json:"maxRounds"`
	TimeLeft   int           `json:"timeLeft"`
}

// WordRevealPayload carries the actual word to drawer and spectators
type WordRevealPayload struct {
	Word string `json:"word"`
}

// TimeUpdatePayload is the per-second countdown broadcast
type TimeUpdatePayload struct {
	TimeLeft int `json:"timeLeft"`
}

// CorrectGuessPayload announces a scoring guess with updated standings
type CorrectGuessPayload struct {
	Player  PlayerSummary   `json:"player"`
	Score   int             `json:"score"`
	Players []PlayerSummary `json:"players"`
}

// RoundEndPayload reveals the word and the round's standings
type RoundEndPayload struct {
	Word    string          `json:"word"`
	Players []PlayerSummary `json:"players"`
}

// ScoreEntry is one row of the final leaderboard
type ScoreEntry struct {
	ID    ParticipantID `json:"id"`
	Name  string        `json:"name"`
	Score int           `json:"score"`
}

// GameEndPayload carries the final leaderboard. Winner is nil when the
// room has no players left.
type GameEndPayload struct {
	FinalScores []ScoreEntry `json:"finalScores"`
	Winner      *ScoreEntry  `json:"winner,omitempty"`
}

// ChatPayload is a chat broadcast
type ChatPayload struct {
	Player      string `json:"player"`
	Message     string `json:"message"`
	IsAdmin     bool   `json:"isAdmin,omitempty"`
	IsSpectator bool   `json:"isSpectator,omitempty"`
}

// RoomJoinedPayload acknowledges a successful join
type RoomJoinedPayload struct {
	RoomID   RoomCode `json:"roomId"`
	Settings Settings `json:"settings"`
}

// RoomCreatedPayload acknowledges room creation
type RoomCreatedPayload struct {
	RoomID RoomCode `json:"roomId"`
}

// AdminStatusPayload tells a participant whether they hold admin authority
type AdminStatusPayload struct {
	IsAdmin bool     `json:"isAdmin"`
	RoomID  RoomCode `json:"roomId"`
}

// PlayersUpdatePayload is the full player-list snapshot
type PlayersUpdatePayload struct {
	Players []PlayerSummary `json:"players"`
}

// SpectatorsUpdatePayload is the full spectator-list snapshot
type SpectatorsUpdatePayload struct {
	Spectators []SpectatorSummary `json:"spectators"`
}

// MemberPayload announces a single join/leave
type MemberPayload struct {
	ID   ParticipantID `json:"id"`
	Name string        `json:"name"`
}

// KickedPayload notifies a participant of forced removal
type KickedPayload struct {
	Reason string `json:"reason"`
}

// AdminActionPayload announces an admin action to the room
type AdminActionPayload struct {
	Action string `json:"action"`
}

// AdminActionSuccessPayload acknowledges an admin action to its issuer
type AdminActionSuccessPayload struct {
	Message string `json:"message"`
}

// ErrorPayload reports a recoverable failure back to the originator
type ErrorPayload struct {
	Reason string `json:"reason"`
}

package game

import (
	"fmt"

	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/model"
)

func (s *ControllerSuite) TestCreateRoomAddsHostPlayer() {
	code := s.createRoom("ROOM01", "player-1")

	room := s.room(code)
	s.Require().Len(room.Players, 1)
	s.True(room.Players[0].IsHost)
	s.Equal(model.ParticipantID("player-1"), room.Players[0].ID)

	bound, ok := s.controller.Resolve("player-1")
	s.True(ok)
	s.Equal(code, bound)
}

func (s *ControllerSuite) TestCreateRoomAcknowledgesCreator() {
	code := s.createRoom("ROOM01", "player-1")

	n := s.lastByEvent(model.EventRoomJoined)
	s.Equal(model.ParticipantID("player-1"), n.Target.Participant)
	payload, ok := n.Payload.(model.RoomJoinedPayload)
	s.Require().True(ok)
	s.Equal(code, payload.RoomID)
	s.Equal(model.DefaultSettings(), payload.Settings)
}

func (s *ControllerSuite) TestCreateRoomRetriesOnCodeCollision() {
	s.createRoom("ROOM01", "player-1")

	s.random.QueueString("ROOM01", "ROOM02")
	code, err := s.controller.CreateRoom("player-2", "second", model.RolePlayer, nil)
	s.Require().NoError(err)
	s.Equal(model.RoomCode("ROOM02"), code)
}

func (s *ControllerSuite) TestCreateRoomAppliesSettingsOverride() {
	rounds, roundTime := 5, 90
	s.random.QueueString("ROOM01")
	code, err := s.controller.CreateRoom("player-1", "host", model.RolePlayer, &model.SettingsOverride{
		MaxRounds: &rounds,
		RoundTime: &roundTime,
	})
	s.Require().NoError(err)

	room := s.room(code)
	s.Equal(5, room.Settings.MaxRounds)
	s.Equal(90, room.Settings.RoundTime)
	s.Equal(model.DefaultSettings().TotalTime, room.Settings.TotalTime)
}

func (s *ControllerSuite) TestJoinUnknownRoomFails() {
	err := s.controller.Join("NOPE99", "player-1", "name", model.RolePlayer)
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *ControllerSuite) TestJoinFullRoomFailsForPlayers() {
	code := s.createRoom("ROOM01", "player-1")
	for i := 2; i <= model.MaxPlayersPerRoom; i++ {
		s.joinPlayer(code, model.ParticipantID(fmt.Sprintf("player-%d", i)))
	}

	room := s.room(code)
	s.Require().Len(room.Players, model.MaxPlayersPerRoom)

	err := s.controller.Join(code, "player-9", "ninth", model.RolePlayer)
	s.ErrorIs(err, model.ErrRoomFull)

	// Spectators are exempt from the player cap
	s.joinSpectator(code, "spectator-1")
	s.Len(s.room(code).Spectators, 1)
}

func (s *ControllerSuite) TestJoinLeavesPreviousRoom() {
	first := s.createRoom("ROOM01", "player-1")
	second := s.createRoom("ROOM02", "player-2")

	s.joinPlayer(second, "player-1")

	bound, ok := s.controller.Resolve("player-1")
	s.True(ok)
	s.Equal(second, bound)

	// The first room emptied out and was deleted
	_, err := s.storage.Room(first)
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *ControllerSuite) TestJoinBroadcastsMembershipSnapshots() {
	code := s.createRoom("ROOM01", "player-1")
	s.sink.Reset()
	s.joinPlayer(code, "player-2")

	joined := s.lastByEvent(model.EventPlayerJoined)
	payload, ok := joined.Payload.(model.MemberPayload)
	s.Require().True(ok)
	s.Equal(model.ParticipantID("player-2"), payload.ID)

	update := s.lastByEvent(model.EventPlayersUpdate)
	players, ok := update.Payload.(model.PlayersUpdatePayload)
	s.Require().True(ok)
	s.Len(players.Players, 2)
}

func (s *ControllerSuite) TestAdminJoinReceivesAdminStatus() {
	code := s.createRoom("ROOM01", "player-1")
	s.joinAdmin(code, "admin-1")

	room := s.room(code)
	s.Equal(model.ParticipantID("admin-1"), room.AdminID)
	s.True(room.IsAdmin("admin-1"))

	n := s.lastByEvent(model.EventAdminStatusUpdate)
	s.Equal(model.ParticipantID("admin-1"), n.Target.Participant)
	payload, ok := n.Payload.(model.AdminStatusPayload)
	s.Require().True(ok)
	s.True(payload.IsAdmin)
}

func (s *ControllerSuite) TestSecondAdminDoesNotUsurpFirst() {
	code := s.createRoom("ROOM01", "player-1")
	s.joinAdmin(code, "admin-1")
	s.joinAdmin(code, "admin-2")

	room := s.room(code)
	s.True(room.IsAdmin("admin-1"))
	s.False(room.IsAdmin("admin-2"))
}

func (s *ControllerSuite) TestAdminDepartureClearsSlotWithoutPromotion() {
	code := s.createRoom("ROOM01", "player-1")
	s.joinAdmin(code, "admin-1")
	s.joinAdmin(code, "admin-2")

	s.Require().NoError(s.controller.Leave("admin-1"))

	// The slot empties; the remaining admin-role spectator is not promoted
	room := s.room(code)
	s.Empty(room.AdminID)
	s.False(room.IsAdmin("admin-2"))

	// The next admin-role joiner claims the empty slot
	s.joinAdmin(code, "admin-3")
	s.True(s.room(code).IsAdmin("admin-3"))
	s.False(s.room(code).IsAdmin("admin-2"))
}

func (s *ControllerSuite) TestLeaveReassignsHost() {
	code := s.createRoom("ROOM01", "player-1")
	s.joinPlayer(code, "player-2")
	s.joinPlayer(code, "player-3")

	s.Require().NoError(s.controller.Leave("player-1"))

	room := s.room(code)
	s.Require().Len(room.Players, 2)
	s.True(room.Players[0].IsHost)
	s.Equal(model.ParticipantID("player-2"), room.Players[0].ID)
}

func (s *ControllerSuite) TestLeaveWithoutRoomFails() {
	err := s.controller.Leave("nobody")
	s.ErrorIs(err, model.ErrNotInRoom)
}

func (s *ControllerSuite) TestEmptyRoomIsDeleted() {
	code := s.createRoom("ROOM01", "player-1")
	s.Require().NoError(s.controller.Leave("player-1"))

	_, err := s.storage.Room(code)
	s.ErrorIs(err, model.ErrRoomNotFound)

	_, ok := s.controller.Resolve("player-1")
	s.False(ok)
}

func (s *ControllerSuite) TestRoomSurvivesOnSpectators() {
	code := s.createRoom("ROOM01", "player-1")
	s.joinSpectator(code, "spectator-1")
	s.Require().NoError(s.controller.Leave("player-1"))

	room := s.room(code)
	s.Empty(room.Players)
	s.Len(room.Spectators, 1)
}

func (s *ControllerSuite) TestLateJoinerCatchesUpOnRunningRound() {
	code := s.createRoom("ROOM01", "player-1")
	s.joinPlayer(code, "player-2")
	s.Require().NoError(s.controller.StartGame(code, "player-1", nil))
	s.sink.Reset()

	s.joinSpectator(code, "spectator-1")
	n := s.lastByEvent(model.EventRoundStart)
	s.Equal(model.ParticipantID("spectator-1"), n.Target.Participant)
	payload, ok := n.Payload.(model.RoundStartPayload)
	s.Require().True(ok)
	s.Equal("apple", payload.Word)
	s.Equal(model.ParticipantID("player-1"), payload.Drawer)

	// A late player only sees the masked hint
	s.sink.Reset()
	s.joinPlayer(code, "player-3")
	n = s.lastByEvent(model.EventRoundStart)
	payload, ok = n.Payload.(model.RoundStartPayload)
	s.Require().True(ok)
	s.Empty(payload.Word)
	s.Equal("_____", payload.Hint)
}

func (s *ControllerSuite) TestRoomInfoSnapshot() {
	code := s.createRoom("ROOM01", "player-1")
	s.joinPlayer(code, "player-2")
	s.joinSpectator(code, "spectator-1")

	info, err := s.controller.RoomInfo(code)
	s.Require().NoError(err)
	s.Equal(code, info.Code)
	s.Equal(2, info.Players)
	s.Equal(1, info.Spectators)
	s.False(info.GameStarted)

	_, err = s.controller.RoomInfo("NOPE99")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

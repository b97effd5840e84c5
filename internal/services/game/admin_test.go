package game

import (
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/model"
)

// adminRoom builds a started room with two players and an admin spectator
func (s *ControllerSuite) adminRoom() model.RoomCode {
	code := s.createRoom("ROOM01", "player-1")
	s.joinPlayer(code, "player-2")
	s.joinAdmin(code, "admin-1")
	s.Require().NoError(s.controller.StartGame(code, "player-1", nil))
	s.sink.Reset()
	return code
}

func (s *ControllerSuite) TestAdminActionsRequireAdminAuthority() {
	code := s.adminRoom()

	// The host player holds start authority but no admin authority
	s.ErrorIs(s.controller.AdminSkipTurn(code, "player-1"), model.ErrNotAuthorized)
	s.ErrorIs(s.controller.AdminEndGame(code, "player-1"), model.ErrNotAuthorized)
	s.ErrorIs(s.controller.KickPlayer(code, "player-1", "player-2"), model.ErrNotAuthorized)
	s.ErrorIs(s.controller.KickAll(code, "player-1"), model.ErrNotAuthorized)
	s.ErrorIs(s.controller.AdminChat(code, "player-1", "hi"), model.ErrNotAuthorized)
}

func (s *ControllerSuite) TestAdminSkipTurnEndsRound() {
	code := s.adminRoom()

	s.Require().NoError(s.controller.AdminSkipTurn(code, "admin-1"))

	s.NotEmpty(s.sink.ByEvent(model.EventRoundEnd))
	s.NotEmpty(s.sink.ByEvent(model.EventAdminAction))

	ack := s.lastByEvent(model.EventAdminActionSuccess)
	s.Equal(model.ParticipantID("admin-1"), ack.Target.Participant)
}

func (s *ControllerSuite) TestAdminSkipTurnDuringGraceFails() {
	code := s.adminRoom()
	s.Require().NoError(s.controller.AdminSkipTurn(code, "admin-1"))
	s.Require().Len(s.sink.ByEvent(model.EventRoundEnd), 1)

	// The round is already over; a second skip cannot re-end it
	s.ErrorIs(s.controller.AdminSkipTurn(code, "admin-1"), model.ErrNoActiveGame)
	s.Len(s.sink.ByEvent(model.EventRoundEnd), 1)
	s.Equal(1, s.sched.Pending())
}

func (s *ControllerSuite) TestAdminSkipTurnOutsideGameFails() {
	code := s.createRoom("ROOM01", "player-1")
	s.joinAdmin(code, "admin-1")

	s.ErrorIs(s.controller.AdminSkipTurn(code, "admin-1"), model.ErrNoActiveGame)
}

func (s *ControllerSuite) TestAdminEndGameBroadcastsLeaderboard() {
	code := s.adminRoom()

	s.Require().NoError(s.controller.AdminEndGame(code, "admin-1"))

	n := s.lastByEvent(model.EventGameEnd)
	payload := n.Payload.(model.GameEndPayload)
	s.Len(payload.FinalScores, 2)

	room := s.room(code)
	s.False(room.GameStarted)
	s.Zero(s.sched.Pending())
}

func (s *ControllerSuite) TestAdminEndGameOutsideGameFails() {
	code := s.createRoom("ROOM01", "player-1")
	s.joinAdmin(code, "admin-1")

	s.ErrorIs(s.controller.AdminEndGame(code, "admin-1"), model.ErrNoActiveGame)
}

func (s *ControllerSuite) TestKickPlayerNotifiesAndRemoves() {
	code := s.adminRoom()

	s.Require().NoError(s.controller.KickPlayer(code, "admin-1", "player-2"))

	kicked := s.lastByEvent(model.EventKicked)
	s.Equal(model.ParticipantID("player-2"), kicked.Target.Participant)
	payload := kicked.Payload.(model.KickedPayload)
	s.Equal(KickReason, payload.Reason)

	s.Nil(s.room(code).PlayerByID("player-2"))
	_, bound := s.controller.Resolve("player-2")
	s.False(bound)
}

func (s *ControllerSuite) TestKickUnknownPlayerFails() {
	code := s.adminRoom()
	s.ErrorIs(s.controller.KickPlayer(code, "admin-1", "nobody"), model.ErrPlayerNotFound)
}

func (s *ControllerSuite) TestKickingDrawerEndsRound() {
	code := s.adminRoom()

	s.Require().NoError(s.controller.KickPlayer(code, "admin-1", "player-1"))

	s.NotEmpty(s.sink.ByEvent(model.EventRoundEnd))
	room := s.room(code)
	s.Nil(room.PlayerByID("player-1"))
	s.True(room.Players[0].IsHost)
}

func (s *ControllerSuite) TestKickAllClearsPlayersKeepsSpectators() {
	code := s.adminRoom()

	s.Require().NoError(s.controller.KickAll(code, "admin-1"))

	room := s.room(code)
	s.Empty(room.Players)
	s.Len(room.Spectators, 1)
	s.Len(s.sink.ByEvent(model.EventKicked), 2)
}

func (s *ControllerSuite) TestAdminChatIsFlagged() {
	code := s.adminRoom()

	s.Require().NoError(s.controller.AdminChat(code, "admin-1", "behave"))

	n := s.lastByEvent(model.EventChatMessage)
	s.Equal(code, n.Target.Room)
	payload := n.Payload.(model.ChatPayload)
	s.True(payload.IsAdmin)
	s.Equal("behave", payload.Message)
}

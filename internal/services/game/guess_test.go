package game

import (
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/model"
)

func (s *ControllerSuite) startedRoom() model.RoomCode {
	code := s.createRoom("ROOM01", "player-1")
	s.joinPlayer(code, "player-2")
	s.joinPlayer(code, "player-3")
	s.Require().NoError(s.controller.StartGame(code, "player-1", nil))
	s.sink.Reset()
	return code
}

func (s *ControllerSuite) TestChatWithoutRoomFails() {
	_, err := s.controller.HandleChat("nobody", "hello")
	s.ErrorIs(err, model.ErrNotInRoom)
}

func (s *ControllerSuite) TestLobbyChatIsBroadcast() {
	code := s.createRoom("ROOM01", "player-1")
	s.sink.Reset()

	result, err := s.controller.HandleChat("player-1", "hello there")
	s.Require().NoError(err)
	s.Equal(GuessChat, result)

	n := s.lastByEvent(model.EventChatMessage)
	s.Equal(code, n.Target.Room)
	payload := n.Payload.(model.ChatPayload)
	s.Equal("hello there", payload.Message)
	s.False(payload.IsSpectator)
}

func (s *ControllerSuite) TestCorrectGuessScoresOnce() {
	code := s.startedRoom()
	s.Require().True(s.sched.FireNext()) // one second elapses
	s.Require().True(s.sched.FireNext()) // two seconds

	result, err := s.controller.HandleChat("player-2", "apple")
	s.Require().NoError(err)
	s.Equal(GuessCorrect, result)

	room := s.room(code)
	p := room.PlayerByID("player-2")
	s.Equal(90, p.Score) // 100 - 2s * 5
	s.True(p.Guessed)

	n := s.lastByEvent(model.EventCorrectGuess)
	payload := n.Payload.(model.CorrectGuessPayload)
	s.Equal(90, payload.Score)
	s.Equal(model.ParticipantID("player-2"), payload.Player.ID)

	// A repeat from the same player is suppressed outright
	s.sink.Reset()
	result, err = s.controller.HandleChat("player-2", "apple")
	s.Require().NoError(err)
	s.Equal(GuessRejected, result)
	s.Empty(s.sink.All())
	s.Equal(90, s.room(code).PlayerByID("player-2").Score)
}

func (s *ControllerSuite) TestGuessMatchingIgnoresCaseAndWhitespace() {
	s.startedRoom()

	result, err := s.controller.HandleChat("player-2", "  APPLE  ")
	s.Require().NoError(err)
	s.Equal(GuessCorrect, result)
}

func (s *ControllerSuite) TestIncorrectGuessEchoedAsChat() {
	code := s.startedRoom()

	result, err := s.controller.HandleChat("player-2", "pear")
	s.Require().NoError(err)
	s.Equal(GuessIncorrect, result)

	s.Zero(s.room(code).PlayerByID("player-2").Score)
	n := s.lastByEvent(model.EventChatMessage)
	payload := n.Payload.(model.ChatPayload)
	s.Equal("pear", payload.Message)
}

func (s *ControllerSuite) TestDrawerCannotGuess() {
	code := s.startedRoom()

	result, err := s.controller.HandleChat("player-1", "apple")
	s.Require().NoError(err)
	s.Equal(GuessRejected, result)
	s.Empty(s.sink.All())
	s.Zero(s.room(code).PlayerByID("player-1").Score)
}

func (s *ControllerSuite) TestSpectatorChatNeverScores() {
	code := s.startedRoom()
	s.joinSpectator(code, "spectator-1")
	s.sink.Reset()

	result, err := s.controller.HandleChat("spectator-1", "apple")
	s.Require().NoError(err)
	s.Equal(GuessChat, result)

	n := s.lastByEvent(model.EventChatMessage)
	payload := n.Payload.(model.ChatPayload)
	s.True(payload.IsSpectator)
	s.Equal("apple", payload.Message)
	s.Empty(s.sink.ByEvent(model.EventCorrectGuess))
}

func (s *ControllerSuite) TestAllGuessedEndsRoundEarly() {
	s.startedRoom()

	_, err := s.controller.HandleChat("player-2", "apple")
	s.Require().NoError(err)
	s.Empty(s.sink.ByEvent(model.EventRoundEnd))

	_, err = s.controller.HandleChat("player-3", "apple")
	s.Require().NoError(err)

	// The countdown was replaced by the short all-guessed delay
	s.Equal(s.controller.cfg.AllGuessedDelay, s.sched.LastDelay())
	s.Require().True(s.sched.FireNext())

	n := s.lastByEvent(model.EventRoundEnd)
	payload := n.Payload.(model.RoundEndPayload)
	s.Equal("apple", payload.Word)
}

func (s *ControllerSuite) TestRevealedWordCannotScoreDuringGrace() {
	roundTime := 1
	s.random.QueueString("ROOM01")
	code, err := s.controller.CreateRoom("player-1", "host", model.RolePlayer, &model.SettingsOverride{RoundTime: &roundTime})
	s.Require().NoError(err)
	s.joinPlayer(code, "player-2")
	s.joinPlayer(code, "player-3")
	s.Require().NoError(s.controller.StartGame(code, "player-1", nil))

	s.Require().True(s.sched.FireNext()) // clock runs out, word revealed
	s.Require().Len(s.sink.ByEvent(model.EventRoundEnd), 1)

	// A slow guesser parroting the revealed word gets plain chat, no points
	result, err := s.controller.HandleChat("player-2", "apple")
	s.Require().NoError(err)
	s.Equal(GuessChat, result)

	room := s.room(code)
	s.Zero(room.PlayerByID("player-2").Score)
	s.False(room.PlayerByID("player-2").Guessed)
	s.Empty(s.sink.ByEvent(model.EventCorrectGuess))

	// The round did not end a second time and the next round is still due
	s.Require().Len(s.sink.ByEvent(model.EventRoundEnd), 1)
	s.Equal(1, s.sched.Pending())
	s.Equal(s.controller.cfg.NextRoundDelay, s.sched.LastDelay())

	// The next round proceeds normally and the late echo never counted
	s.Require().True(s.sched.FireNext())
	room = s.room(code)
	s.Equal(2, room.Round)
	s.False(room.PlayerByID("player-2").Guessed)
}

func (s *ControllerSuite) TestArmedEarlyEndSurvivesGuesserLeaving() {
	code := s.createRoom("ROOM01", "player-1")
	s.joinPlayer(code, "player-2")
	s.Require().NoError(s.controller.StartGame(code, "player-1", nil))

	_, err := s.controller.HandleChat("player-2", "apple")
	s.Require().NoError(err)

	// The sole guesser scored, so the early-end delay is armed
	s.Equal(s.controller.cfg.AllGuessedDelay, s.sched.LastDelay())

	// With the guesser gone the drawer is alone; the armed delay still
	// fires and ends the round cleanly
	s.Require().NoError(s.controller.Leave("player-2"))
	s.Require().True(s.sched.FireNext())
	s.NotEmpty(s.sink.ByEvent(model.EventRoundEnd))
}

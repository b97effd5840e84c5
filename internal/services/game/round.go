package game

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/model"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/notify"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/services/words"
)

// StartGame transitions a lobby to its first round. Authorized for the
// room admin or the host player.
func (c *Controller) StartGame(code model.RoomCode, by model.ParticipantID, override *model.SettingsOverride) error {
	return c.withRoom(code, func(r *model.Room, em *notify.Buffer) error {
		if !r.CanStartGame(by) {
			return model.ErrNotAuthorized
		}
		if r.GameStarted {
			return model.ErrAlreadyStarted
		}
		if len(r.Players) == 0 {
			return model.ErrNoPlayers
		}

		r.Settings.Apply(override)
		for _, p := range r.Players {
			p.Score = 0
			p.Guessed = false
		}
		r.GameStarted = true
		r.Round = 1
		r.TurnIdx = 0
		r.DrawerID = r.Players[0].ID

		c.logger.Info("game started",
			slog.String("room", string(code)),
			slog.String("by", string(by)),
			slog.Int("players", len(r.Players)),
			slog.Int("max_rounds", r.Settings.MaxRounds),
		)

		c.beginRoundLocked(r, em)
		return nil
	})
}

// beginRoundLocked draws a fresh word, emits the per-role round start
// notifications, and arms the countdown. Caller holds the room lock.
func (c *Controller) beginRoundLocked(r *model.Room, em *notify.Buffer) {
	r.Word = c.words.Random()
	r.Hint = words.Hint(r.Word)
	r.TimeLeft = r.Settings.RoundTime
	r.RoundActive = true
	for _, p := range r.Players {
		p.Guessed = false
	}

	payload := model.RoundStartPayload{
		Drawer:    r.DrawerID,
		Hint:      r.Hint,
		Round:     r.Round,
		MaxRounds: r.Settings.MaxRounds,
		TimeLeft:  r.TimeLeft,
	}
	if drawer := r.PlayerByID(r.DrawerID); drawer != nil {
		payload.DrawerName = drawer.DisplayName
	}

	// Guessers get the masked hint; the drawer and spectating roles get the word
	for _, p := range r.Players {
		if p.ID == r.DrawerID {
			withWord := payload
			withWord.Word = r.Word
			em.To(p.ID, model.EventRoundStart, withWord)
			em.To(p.ID, model.EventWordReveal, model.WordRevealPayload{Word: r.Word})
		} else {
			em.To(p.ID, model.EventRoundStart, payload)
		}
	}
	for _, s := range r.Spectators {
		withWord := payload
		withWord.Word = r.Word
		em.To(s.ID, model.EventRoundStart, withWord)
		em.To(s.ID, model.EventWordReveal, model.WordRevealPayload{Word: r.Word})
	}

	c.armLocked(r, c.cfg.TickInterval, c.tick)
}

// tick fires once per countdown interval: decrement, broadcast, and either
// end the round at zero or re-arm under the same timer generation.
func (c *Controller) tick(code model.RoomCode, gen uint64) {
	_ = c.withRoom(code, func(r *model.Room, em *notify.Buffer) error {
		if r.TimerGen != gen || !r.GameStarted {
			return nil
		}

		r.TimeLeft--
		em.ToRoom(code, model.EventTimeUpdate, model.TimeUpdatePayload{TimeLeft: r.TimeLeft})

		if r.TimeLeft <= 0 {
			c.endRoundLocked(r, em)
			return nil
		}

		r.Timer = c.sched.AfterFunc(c.cfg.TickInterval, func() { c.tick(code, gen) })
		return nil
	})
}

// endRoundLocked cancels the countdown, reveals the word, and either ends
// the game or schedules the next round. Clearing RoundActive here closes
// the grace window: the revealed word cannot score and a finished round
// cannot be ended twice. Caller holds the room lock.
func (c *Controller) endRoundLocked(r *model.Room, em *notify.Buffer) {
	c.cancelTimerLocked(r)
	r.RoundActive = false

	em.ToRoom(r.Code, model.EventRoundEnd, model.RoundEndPayload{
		Word:    r.Word,
		Players: r.PlayerSummaries(),
	})

	if len(r.Players) == 0 || r.Round >= r.Settings.MaxRounds {
		c.endGameLocked(r, em)
		return
	}

	c.armLocked(r, c.cfg.NextRoundDelay, c.nextRound)
}

// nextRound fires after the inter-round grace delay: rotate the drawer
// cyclically and begin the next round.
func (c *Controller) nextRound(code model.RoomCode, gen uint64) {
	_ = c.withRoom(code, func(r *model.Room, em *notify.Buffer) error {
		if r.TimerGen != gen || !r.GameStarted {
			return nil
		}

		// Everyone may have left during the grace delay
		if len(r.Players) == 0 {
			c.endGameLocked(r, em)
			return nil
		}

		r.Round++
		n := len(r.Players)
		r.TurnIdx = ((r.TurnIdx+1)%n + n) % n
		r.DrawerID = r.Players[r.TurnIdx].ID

		c.beginRoundLocked(r, em)
		return nil
	})
}

// delayedRoundEnd fires after the accelerated all-guessed delay
func (c *Controller) delayedRoundEnd(code model.RoomCode, gen uint64) {
	_ = c.withRoom(code, func(r *model.Room, em *notify.Buffer) error {
		if r.TimerGen != gen || !r.GameStarted {
			return nil
		}
		c.endRoundLocked(r, em)
		return nil
	})
}

// endGameLocked resets the room to its lobby state and broadcasts the
// final leaderboard. Caller holds the room lock.
func (c *Controller) endGameLocked(r *model.Room, em *notify.Buffer) {
	c.cancelTimerLocked(r)

	board := c.scoring.Leaderboard(r.Players)
	winner := c.scoring.Winner(board)

	r.GameStarted = false
	r.RoundActive = false
	r.DrawerID = ""
	r.Word = ""
	r.Hint = ""
	r.TimeLeft = 0
	r.Round = 1
	r.TurnIdx = 0

	em.ToRoom(r.Code, model.EventGameEnd, model.GameEndPayload{
		FinalScores: board,
		Winner:      winner,
	})

	c.logger.Info("game ended", slog.String("room", string(r.Code)))
}

// armLocked replaces the room's active timer: the previous schedule is
// invalidated by the generation bump, then fire is armed under the new
// generation. Caller holds the room lock.
func (c *Controller) armLocked(r *model.Room, d time.Duration, fire func(code model.RoomCode, gen uint64)) {
	c.cancelTimerLocked(r)
	code := r.Code
	gen := r.TimerGen
	r.Timer = c.sched.AfterFunc(d, func() { fire(code, gen) })
}

// cancelTimerLocked stops any pending timer and bumps the generation so an
// already-fired callback becomes a no-op. Caller holds the room lock.
func (c *Controller) cancelTimerLocked(r *model.Room) {
	if r.Timer != nil {
		r.Timer.Stop()
		r.Timer = nil
	}
	r.TimerGen++
}

// Relay forwards opaque drawing payloads from the current drawer to every
// other occupant. The core never interprets the payload.
func (c *Controller) Relay(code model.RoomCode, by model.ParticipantID, event model.EventType, payload json.RawMessage) error {
	return c.withRoom(code, func(r *model.Room, em *notify.Buffer) error {
		if !r.RoundActive || r.DrawerID != by {
			return model.ErrNotAuthorized
		}
		em.ToRoomExcept(code, by, event, payload)
		return nil
	})
}

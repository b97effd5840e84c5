package game

import (
	"errors"
	"log/slog"

	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/model"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/notify"
)

// KickReason is the notice sent to forcibly removed participants
const KickReason = "removed by admin"

// AdminSkipTurn ends the current round immediately, advancing to the next
// drawer or to the game end.
func (c *Controller) AdminSkipTurn(code model.RoomCode, by model.ParticipantID) error {
	return c.withRoom(code, func(r *model.Room, em *notify.Buffer) error {
		if !r.IsAdmin(by) {
			return model.ErrNotAuthorized
		}
		// During the grace window the round is already over; re-ending it
		// would emit a duplicate roundEnd and cancel the next-round timer
		if !r.GameStarted || !r.RoundActive {
			return model.ErrNoActiveGame
		}

		em.ToRoom(code, model.EventAdminAction, model.AdminActionPayload{Action: "skipTurn"})
		em.To(by, model.EventAdminActionSuccess, model.AdminActionSuccessPayload{Message: "turn skipped"})
		c.endRoundLocked(r, em)
		return nil
	})
}

// AdminEndGame terminates the game at once, broadcasting the leaderboard
func (c *Controller) AdminEndGame(code model.RoomCode, by model.ParticipantID) error {
	return c.withRoom(code, func(r *model.Room, em *notify.Buffer) error {
		if !r.IsAdmin(by) {
			return model.ErrNotAuthorized
		}
		if !r.GameStarted {
			return model.ErrNoActiveGame
		}

		em.ToRoom(code, model.EventAdminAction, model.AdminActionPayload{Action: "endGame"})
		em.To(by, model.EventAdminActionSuccess, model.AdminActionSuccessPayload{Message: "game ended"})
		c.endGameLocked(r, em)
		return nil
	})
}

// KickPlayer forcibly removes one player. The target is notified before
// removal; removal itself runs through Leave, so drawer departure and
// empty-room teardown behave exactly as a voluntary exit.
func (c *Controller) KickPlayer(code model.RoomCode, by, target model.ParticipantID) error {
	err := c.withRoom(code, func(r *model.Room, em *notify.Buffer) error {
		if !r.IsAdmin(by) {
			return model.ErrNotAuthorized
		}
		if r.PlayerByID(target) == nil {
			return model.ErrPlayerNotFound
		}

		em.To(target, model.EventKicked, model.KickedPayload{Reason: KickReason})
		em.ToRoom(code, model.EventAdminAction, model.AdminActionPayload{Action: "kickPlayer"})
		em.To(by, model.EventAdminActionSuccess, model.AdminActionSuccessPayload{Message: "player kicked"})
		return nil
	})
	if err != nil {
		return err
	}

	c.logger.Info("player kicked",
		slog.String("room", string(code)),
		slog.String("target", string(target)),
		slog.String("by", string(by)),
	)

	if err := c.Leave(target); err != nil && !errors.Is(err, model.ErrNotInRoom) {
		return err
	}
	return nil
}

// KickAll forcibly removes every player from the room. Spectators and the
// admin remain.
func (c *Controller) KickAll(code model.RoomCode, by model.ParticipantID) error {
	var targets []model.ParticipantID

	err := c.withRoom(code, func(r *model.Room, em *notify.Buffer) error {
		if !r.IsAdmin(by) {
			return model.ErrNotAuthorized
		}

		for _, p := range r.Players {
			targets = append(targets, p.ID)
			em.To(p.ID, model.EventKicked, model.KickedPayload{Reason: KickReason})
		}
		em.ToRoom(code, model.EventAdminAction, model.AdminActionPayload{Action: "kickAll"})
		em.To(by, model.EventAdminActionSuccess, model.AdminActionSuccessPayload{Message: "all players kicked"})
		return nil
	})
	if err != nil {
		return err
	}

	for _, target := range targets {
		if err := c.Leave(target); err != nil && !errors.Is(err, model.ErrNotInRoom) {
			return err
		}
	}

	c.logger.Info("all players kicked",
		slog.String("room", string(code)),
		slog.Int("count", len(targets)),
	)

	return nil
}

// AdminChat broadcasts a privileged chat message to the whole room
func (c *Controller) AdminChat(code model.RoomCode, by model.ParticipantID, text string) error {
	return c.withRoom(code, func(r *model.Room, em *notify.Buffer) error {
		if !r.IsAdmin(by) {
			return model.ErrNotAuthorized
		}

		s := r.SpectatorByID(by)
		em.ToRoom(code, model.EventChatMessage, model.ChatPayload{
			Player:  s.DisplayName,
			Message: text,
			IsAdmin: true,
		})
		return nil
	})
}

package game

import (
	"log/slog"
	"strings"

	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/model"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/notify"
)

// GuessResult classifies the outcome of a chat message submitted mid-game
type GuessResult int

const (
	// GuessChat means the message was ordinary chat, broadcast as such
	GuessChat GuessResult = iota
	// GuessCorrect means the message matched the current word and scored
	GuessCorrect
	// GuessIncorrect means the message was a wrong guess, echoed as chat
	GuessIncorrect
	// GuessRejected means the sender may not guess (drawer or already
	// guessed); the message is suppressed and never scored
	GuessRejected
)

// HandleChat evaluates a chat message from a participant. During an active
// round a player's message is a guess; otherwise it is ordinary chat.
func (c *Controller) HandleChat(id model.ParticipantID, text string) (GuessResult, error) {
	code, bound := c.store.ParticipantRoom(id)
	if !bound {
		return GuessRejected, model.ErrNotInRoom
	}

	result := GuessChat
	err := c.withRoom(code, func(r *model.Room, em *notify.Buffer) error {
		// Spectating roles can never guess; their chat is always relayed
		if s := r.SpectatorByID(id); s != nil {
			em.ToRoom(code, model.EventChatMessage, model.ChatPayload{
				Player:      s.DisplayName,
				Message:     text,
				IsSpectator: true,
			})
			return nil
		}

		p := r.PlayerByID(id)
		if p == nil {
			return model.ErrPlayerNotFound
		}

		// Outside an active round there is nothing to guess: lobby chat,
		// and chat during the reveal window between rounds, is relayed
		// verbatim and never scored even when it matches the last word
		if !r.GameStarted || !r.RoundActive {
			em.ToRoom(code, model.EventChatMessage, model.ChatPayload{
				Player:  p.DisplayName,
				Message: text,
			})
			return nil
		}

		// The drawer and players who already guessed could leak the word;
		// their messages are suppressed, not scored, and not broadcast
		if r.DrawerID == id || p.Guessed {
			result = GuessRejected
			return nil
		}

		if !matchesWord(text, r.Word) {
			result = GuessIncorrect
			em.ToRoom(code, model.EventChatMessage, model.ChatPayload{
				Player:  p.DisplayName,
				Message: text,
			})
			return nil
		}

		result = GuessCorrect
		points := c.scoring.Points(r.Settings.RoundTime, r.TimeLeft)
		p.Score += points
		p.Guessed = true

		em.ToRoom(code, model.EventCorrectGuess, model.CorrectGuessPayload{
			Player:  p.Summary(),
			Score:   points,
			Players: r.PlayerSummaries(),
		})

		c.logger.Info("correct guess",
			slog.String("room", string(code)),
			slog.String("player", string(id)),
			slog.Int("points", points),
		)

		// No guesser left: end the round early instead of running out the clock
		if r.AllNonDrawersGuessed() {
			c.armLocked(r, c.cfg.AllGuessedDelay, c.delayedRoundEnd)
		}

		return nil
	})

	return result, err
}

// matchesWord compares a guess against the current word, ignoring case and
// leading/trailing whitespace.
func matchesWord(guess, word string) bool {
	return strings.EqualFold(strings.TrimSpace(guess), strings.TrimSpace(word))
}

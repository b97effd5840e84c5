// Package game implements the room session core: the registry of live rooms,
// the per-room round state machine, guess evaluation, and admin authority.
// Every operation that touches a room runs under that room's lock and
// accumulates its outbound notifications in a buffer flushed after unlock.
package game

import (
	"log/slog"
	"time"

	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/dependencies/clock"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/dependencies/random"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/dependencies/timer"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/model"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/notify"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/services/scoring"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/services/words"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/storage"
)

const (
	// RoomCodeLength is the length of generated room codes
	RoomCodeLength = 6
	// RoomCodeAlphabet is the characters used in room codes (avoid confusing chars)
	RoomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Config holds the state machine's fixed delays
type Config struct {
	// TickInterval is the countdown granularity
	TickInterval time.Duration
	// NextRoundDelay is the grace period between rounds
	NextRoundDelay time.Duration
	// AllGuessedDelay is the accelerated round end once every guesser has scored
	AllGuessedDelay time.Duration
}

// DefaultConfig returns the production delays
func DefaultConfig() Config {
	return Config{
		TickInterval:    time.Second,
		NextRoundDelay:  3 * time.Second,
		AllGuessedDelay: 2 * time.Second,
	}
}

// Controller coordinates all live rooms
type Controller struct {
	store   storage.Store
	words   *words.Service
	scoring *scoring.Service
	clock   clock.Clock
	random  random.Random
	sched   timer.Scheduler
	sink    notify.Sink
	logger  *slog.Logger
	cfg     Config
}

// NewController creates a new game Controller
func NewController(
	store storage.Store,
	wordService *words.Service,
	scoringService *scoring.Service,
	clk clock.Clock,
	rnd random.Random,
	sched timer.Scheduler,
	sink notify.Sink,
	cfg Config,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		store:   store,
		words:   wordService,
		scoring: scoringService,
		clock:   clk,
		random:  rnd,
		sched:   sched,
		sink:    sink,
		logger:  logger,
		cfg:     cfg,
	}
}

// withRoom resolves a room, runs fn under its lock, and flushes the
// notifications fn queued once the lock is released. Delivery failures
// cannot abort the state transition because delivery happens after it.
func (c *Controller) withRoom(code model.RoomCode, fn func(r *model.Room, em *notify.Buffer) error) error {
	room, err := c.store.Room(code)
	if err != nil {
		return err
	}

	em := &notify.Buffer{}
	room.Lock()
	err = fn(room, em)
	room.Unlock()
	em.Flush(c.sink)

	return err
}

// Shutdown cancels every room's active timer so no callback fires into
// torn-down state during process exit.
func (c *Controller) Shutdown() {
	for _, room := range c.store.Rooms() {
		room.Lock()
		c.cancelTimerLocked(room)
		room.Unlock()
	}
	c.logger.Info("game controller shut down")
}

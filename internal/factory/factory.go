package factory

import (
	"io"
	"log/slog"

	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/dependencies/clock"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/dependencies/random"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/dependencies/timer"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/gateway"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/services/game"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/services/scoring"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/services/words"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/storage"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Store storage.Store

	// External dependencies
	Clock     clock.Clock
	Random    random.Random
	Scheduler timer.Scheduler

	// Services
	WordService    *words.Service
	ScoringService *scoring.Service
	Controller     *game.Controller
	Gateway        *gateway.Gateway
}

// Config holds configuration for the application factory
type Config struct {
	// WordsPath is an optional word-list file (one word per line).
	// If empty, the built-in vocabulary is used.
	WordsPath string
	// GameConfig holds the round state machine's delays (optional)
	// If zero value, defaults to game.DefaultConfig()
	GameConfig game.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	gameCfg := cfg.GameConfig
	if gameCfg.TickInterval == 0 {
		gameCfg = game.DefaultConfig()
	}

	store := memory.New()
	clk := clock.New()
	rnd := random.New()
	sched := timer.New()

	wordService := words.New(rnd, logger)
	if cfg.WordsPath != "" {
		if err := wordService.LoadFromFile(cfg.WordsPath); err != nil {
			return nil, err
		}
	}

	scoringService := scoring.New()

	// The controller and gateway reference each other: the gateway is the
	// controller's notification sink, and the controller handles the
	// gateway's inbound events. Wire through a late-bound sink.
	sink := &lateSink{}
	controller := game.NewController(store, wordService, scoringService, clk, rnd, sched, sink, gameCfg, logger)
	gw := gateway.New(controller, store, logger)
	sink.bind(gw)

	return &App{
		Store:          store,
		Clock:          clk,
		Random:         rnd,
		Scheduler:      sched,
		WordService:    wordService,
		ScoringService: scoringService,
		Controller:     controller,
		Gateway:        gw,
	}, nil
}

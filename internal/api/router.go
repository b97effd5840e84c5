package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/middleware"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger     *slog.Logger
	Controller *game.Controller
	Gateway    http.Handler
}

// NewRouter creates the HTTP router: the websocket endpoint plus the
// read-only introspection API.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	roomHandler := newRoomHandler(cfg.Controller)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{code}", roomHandler.Get).Methods(http.MethodGet)

	r.Handle("/ws", cfg.Gateway)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

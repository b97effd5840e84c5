// Package gateway is the transport boundary: it upgrades websocket
// connections, assigns each one a stable participant identity, feeds inbound
// events into the game core, and delivers the core's notifications back to
// specific participants or whole rooms.
package gateway

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/model"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/notify"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/services/game"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/storage"
)

// Envelope is the wire frame for both directions: an event name plus an
// event-specific JSON payload.
type Envelope struct {
	Event model.EventType `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Gateway owns the connected-client registry and implements notify.Sink
type Gateway struct {
	controller *game.Controller
	store      storage.Store
	logger     *slog.Logger
	upgrader   websocket.Upgrader

	mu      sync.RWMutex
	clients map[model.ParticipantID]*Client
}

// New creates a Gateway. It must be handed to the controller as its sink.
func New(controller *game.Controller, store storage.Store, logger *slog.Logger) *Gateway {
	return &Gateway{
		controller: controller,
		store:      store,
		logger:     logger.With(slog.String("component", "gateway")),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[model.ParticipantID]*Client),
	}
}

// Ensure Gateway implements the notification sink
var _ notify.Sink = (*Gateway)(nil)

// ServeHTTP upgrades the connection and starts the client's pumps
func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	client := &Client{
		id:   model.ParticipantID(uuid.NewString()),
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		gw:   g,
	}

	g.mu.Lock()
	g.clients[client.id] = client
	g.mu.Unlock()

	g.logger.Info("client connected", slog.String("participant", string(client.id)))

	go client.writePump()
	go client.readPump()
}

// unregister drops the client and removes it from any room it occupied.
// An in-flight delivery may still hold the *Client it snapshotted from the
// map, so the send channel is closed through the client's own guard rather
// than directly.
func (g *Gateway) unregister(c *Client) {
	g.mu.Lock()
	if _, ok := g.clients[c.id]; !ok {
		g.mu.Unlock()
		return
	}
	delete(g.clients, c.id)
	g.mu.Unlock()

	c.closeSend()

	g.logger.Info("client disconnected", slog.String("participant", string(c.id)))

	if err := g.controller.Leave(c.id); err != nil && !errors.Is(err, model.ErrNotInRoom) {
		g.logger.Warn("leave on disconnect failed",
			slog.String("participant", string(c.id)),
			slog.String("error", err.Error()),
		)
	}
}

// Deliver implements notify.Sink. Room targets are resolved against the
// registry at delivery time; recipients that have already disconnected are
// skipped without affecting anyone else.
func (g *Gateway) Deliver(n notify.Notification) {
	frame, err := marshalFrame(n.Event, n.Payload)
	if err != nil {
		g.logger.Error("marshal notification failed",
			slog.String("event", string(n.Event)),
			slog.String("error", err.Error()),
		)
		return
	}

	if n.Target.Participant != "" {
		g.sendTo(n.Target.Participant, frame)
		return
	}

	room, err := g.store.Room(n.Target.Room)
	if err != nil {
		return // room already torn down; nothing to deliver
	}
	for _, id := range room.OccupantIDs(n.Target.Except) {
		g.sendTo(id, frame)
	}
}

func (g *Gateway) sendTo(id model.ParticipantID, frame []byte) {
	g.mu.RLock()
	client, ok := g.clients[id]
	g.mu.RUnlock()
	if ok {
		client.enqueue(frame)
	}
}

// sendEvent marshals and queues a direct event for one client
func (g *Gateway) sendEvent(c *Client, event model.EventType, payload any) {
	frame, err := marshalFrame(event, payload)
	if err != nil {
		g.logger.Error("marshal event failed",
			slog.String("event", string(event)),
			slog.String("error", err.Error()),
		)
		return
	}
	c.enqueue(frame)
}

func marshalFrame(event model.EventType, payload any) ([]byte, error) {
	var data json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		data = b
	}
	return json.Marshal(Envelope{Event: event, Data: data})
}

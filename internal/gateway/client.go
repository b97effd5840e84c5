package gateway

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/model"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingInterval   = (pongWait * 9) / 10
	sendBufferSize = 256
	maxMessageSize = 64 * 1024
)

// Client is one connected websocket participant. Reads are funneled into
// the dispatcher; writes go through the buffered send channel so a slow
// consumer never blocks a room mutation.
type Client struct {
	id   model.ParticipantID
	conn *websocket.Conn
	gw   *Gateway

	// mu serializes enqueue against closeSend. Deliveries run on timer
	// goroutines that may hold a *Client the teardown path is closing;
	// without the guard a send could race the close of the channel.
	mu     sync.Mutex
	send   chan []byte
	closed bool
}

// ID returns the participant identity assigned to this connection
func (c *Client) ID() model.ParticipantID {
	return c.id
}

// readPump consumes inbound frames until the connection drops, then tears
// down the participant's membership.
func (c *Client) readPump() {
	defer func() {
		c.gw.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.gw.logger.Warn("websocket read error",
					slog.String("participant", string(c.id)),
					slog.String("error", err.Error()),
				)
			}
			return
		}
		c.gw.dispatch(c, raw)
	}
}

// writePump drains the send channel and keeps the connection alive with pings
func (c *Client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// enqueue hands a marshaled frame to the writer, dropping it if the client's
// buffer is full or the client is already torn down. A dropped frame never
// fails or panics the caller.
func (c *Client) enqueue(frame []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- frame:
	default:
		c.gw.logger.Warn("send buffer full, frame dropped",
			slog.String("participant", string(c.id)),
		)
	}
}

// closeSend stops the write pump. Safe against concurrent enqueues and
// idempotent; after it returns no goroutine can send on the channel.
func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

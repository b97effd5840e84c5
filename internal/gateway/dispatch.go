package gateway

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/model"
)

// Inbound payload shapes. Role flags are collapsed into the closed role set
// before they reach the core.
type createRoomRequest struct {
	Username    string                  `json:"username"`
	Settings    *model.SettingsOverride `json:"settings,omitempty"`
	IsSpectator bool                    `json:"isSpectator,omitempty"`
	IsAdmin     bool                    `json:"isAdmin,omitempty"`
}

type joinRoomRequest struct {
	RoomID      string                  `json:"roomId"`
	Username    string                  `json:"username"`
	IsSpectator bool                    `json:"isSpectator,omitempty"`
	IsAdmin     bool                    `json:"isAdmin,omitempty"`
}

type startGameRequest struct {
	CustomSettings *model.SettingsOverride `json:"customSettings,omitempty"`
}

type kickPlayerRequest struct {
	TargetID string `json:"targetId"`
}

type chatRequest struct {
	Text string `json:"text"`
}

type roomInfoRequest struct {
	RoomID string `json:"roomId"`
}

func roleFromFlags(isSpectator, isAdmin bool) model.Role {
	switch {
	case isAdmin:
		return model.RoleAdmin
	case isSpectator:
		return model.RoleSpectator
	default:
		return model.RolePlayer
	}
}

// dispatch routes one inbound frame to the core and maps failures back to
// the originator as named error events. A malformed or out-of-state event
// is rejected; it never crashes the room.
func (g *Gateway) dispatch(c *Client, raw []byte) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		g.logger.Warn("malformed frame",
			slog.String("participant", string(c.id)),
			slog.String("error", err.Error()),
		)
		return
	}

	switch env.Event {
	case model.EventCreateRoom:
		var req createRoomRequest
		if !g.decode(c, env.Data, &req) {
			return
		}
		role := roleFromFlags(req.IsSpectator, req.IsAdmin)
		code, err := g.controller.CreateRoom(c.id, req.Username, role, req.Settings)
		if err != nil {
			g.sendEvent(c, model.EventJoinError, model.ErrorPayload{Reason: err.Error()})
			return
		}
		g.sendEvent(c, model.EventRoomCreated, model.RoomCreatedPayload{RoomID: code})

	case model.EventJoinRoom:
		var req joinRoomRequest
		if !g.decode(c, env.Data, &req) {
			return
		}
		role := roleFromFlags(req.IsSpectator, req.IsAdmin)
		err := g.controller.Join(model.RoomCode(req.RoomID), c.id, req.Username, role)
		switch {
		case errors.Is(err, model.ErrRoomNotFound):
			g.sendEvent(c, model.EventRoomNotFound, nil)
		case err != nil:
			g.sendEvent(c, model.EventJoinError, model.ErrorPayload{Reason: err.Error()})
		}

	case model.EventStartGame:
		var req startGameRequest
		if !g.decode(c, env.Data, &req) {
			return
		}
		code, ok := g.controller.Resolve(c.id)
		if !ok {
			g.sendEvent(c, model.EventStartGameError, model.ErrorPayload{Reason: model.ErrNotInRoom.Error()})
			return
		}
		if err := g.controller.StartGame(code, c.id, req.CustomSettings); err != nil {
			g.sendEvent(c, model.EventStartGameError, model.ErrorPayload{Reason: err.Error()})
		}

	case model.EventAdminSkipTurn:
		g.adminOp(c, func(code model.RoomCode) error {
			return g.controller.AdminSkipTurn(code, c.id)
		})

	case model.EventAdminEndGame:
		g.adminOp(c, func(code model.RoomCode) error {
			return g.controller.AdminEndGame(code, c.id)
		})

	case model.EventAdminKickPlayer:
		var req kickPlayerRequest
		if !g.decode(c, env.Data, &req) {
			return
		}
		g.adminOp(c, func(code model.RoomCode) error {
			return g.controller.KickPlayer(code, c.id, model.ParticipantID(req.TargetID))
		})

	case model.EventAdminKickAll:
		g.adminOp(c, func(code model.RoomCode) error {
			return g.controller.KickAll(code, c.id)
		})

	case model.EventAdminChat:
		var req chatRequest
		if !g.decode(c, env.Data, &req) {
			return
		}
		g.adminOp(c, func(code model.RoomCode) error {
			return g.controller.AdminChat(code, c.id, req.Text)
		})

	case model.EventChatMessage:
		var req chatRequest
		if !g.decode(c, env.Data, &req) {
			return
		}
		if _, err := g.controller.HandleChat(c.id, req.Text); err != nil && !errors.Is(err, model.ErrNotInRoom) {
			g.logger.Warn("chat rejected",
				slog.String("participant", string(c.id)),
				slog.String("error", err.Error()),
			)
		}

	case model.EventDrawingData, model.EventClearCanvas:
		code, ok := g.controller.Resolve(c.id)
		if !ok {
			return
		}
		// Opaque payload, relayed verbatim; only the drawer may send
		if err := g.controller.Relay(code, c.id, env.Event, env.Data); err != nil {
			g.logger.Debug("relay rejected",
				slog.String("participant", string(c.id)),
				slog.String("event", string(env.Event)),
			)
		}

	case model.EventGetRoomInfo:
		var req roomInfoRequest
		if !g.decode(c, env.Data, &req) {
			return
		}
		info, err := g.controller.RoomInfo(model.RoomCode(req.RoomID))
		if err != nil {
			g.sendEvent(c, model.EventRoomNotFound, nil)
			return
		}
		g.sendEvent(c, model.EventRoomInfo, info)

	case model.EventDisconnect:
		if err := g.controller.Leave(c.id); err != nil && !errors.Is(err, model.ErrNotInRoom) {
			g.logger.Warn("leave failed",
				slog.String("participant", string(c.id)),
				slog.String("error", err.Error()),
			)
		}

	default:
		g.logger.Warn("unknown event",
			slog.String("participant", string(c.id)),
			slog.String("event", string(env.Event)),
		)
	}
}

// adminOp resolves the issuer's room and maps failures to adminError
func (g *Gateway) adminOp(c *Client, op func(code model.RoomCode) error) {
	code, ok := g.controller.Resolve(c.id)
	if !ok {
		g.sendEvent(c, model.EventAdminError, model.ErrorPayload{Reason: model.ErrNotInRoom.Error()})
		return
	}
	if err := op(code); err != nil {
		g.sendEvent(c, model.EventAdminError, model.ErrorPayload{Reason: err.Error()})
	}
}

// decode unmarshals an event payload, reporting malformed input to the sender
func (g *Gateway) decode(c *Client, data json.RawMessage, v any) bool {
	if len(data) == 0 {
		return true
	}
	if err := json.Unmarshal(data, v); err != nil {
		g.logger.Warn("malformed payload",
			slog.String("participant", string(c.id)),
			slog.String("error", err.Error()),
		)
		return false
	}
	return true
}

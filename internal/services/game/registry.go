package game

import (
	"errors"
	"log/slog"

	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/model"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/notify"
)

// CreateRoom creates a fresh room and adds the creator under the requested
// role. A creator still bound to another room leaves it first.
func (c *Controller) CreateRoom(id model.ParticipantID, name string, role model.Role, override *model.SettingsOverride) (model.RoomCode, error) {
	if _, bound := c.store.ParticipantRoom(id); bound {
		if err := c.Leave(id); err != nil && !errors.Is(err, model.ErrNotInRoom) {
			return "", err
		}
	}

	settings := model.DefaultSettings()
	settings.Apply(override)

	// Collision-retry until the code is fresh
	var room *model.Room
	for {
		code := model.RoomCode(c.random.String(RoomCodeLength, RoomCodeAlphabet))
		room = model.NewRoom(code, settings, c.clock.Now())
		if c.store.SaveRoom(room) {
			break
		}
	}

	em := &notify.Buffer{}
	room.Lock()
	c.addParticipantLocked(room, em, id, name, role)
	room.Unlock()
	em.Flush(c.sink)

	c.logger.Info("room created",
		slog.String("room", string(room.Code)),
		slog.String("creator", string(id)),
		slog.String("role", string(role)),
	)

	return room.Code, nil
}

// Join adds a participant to an existing room. Fails with ErrRoomFull when
// the player list already holds the maximum and the joiner wants to play.
func (c *Controller) Join(code model.RoomCode, id model.ParticipantID, name string, role model.Role) error {
	if _, bound := c.store.ParticipantRoom(id); bound {
		if err := c.Leave(id); err != nil && !errors.Is(err, model.ErrNotInRoom) {
			return err
		}
	}

	return c.withRoom(code, func(r *model.Room, em *notify.Buffer) error {
		if role == model.RolePlayer && len(r.Players) >= model.MaxPlayersPerRoom {
			return model.ErrRoomFull
		}
		c.addParticipantLocked(r, em, id, name, role)
		return nil
	})
}

// addParticipantLocked appends the participant, binds the membership index,
// and queues the acknowledgement plus membership notifications.
// Caller holds the room lock.
func (c *Controller) addParticipantLocked(r *model.Room, em *notify.Buffer, id model.ParticipantID, name string, role model.Role) {
	now := c.clock.Now()
	participant := model.Participant{
		ID:          id,
		DisplayName: name,
		Role:        role,
		JoinedAt:    now,
	}

	if role == model.RolePlayer {
		r.Players = append(r.Players, &model.Player{
			Participant: participant,
			IsHost:      len(r.Players) == 0,
		})
		em.ToRoom(r.Code, model.EventPlayerJoined, model.MemberPayload{ID: id, Name: name})
	} else {
		r.Spectators = append(r.Spectators, &participant)
		if role == model.RoleAdmin && r.AdminID == "" {
			r.AdminID = id
		}
		em.ToRoom(r.Code, model.EventSpectatorJoined, model.MemberPayload{ID: id, Name: name})
	}

	c.store.BindParticipant(id, r.Code)
	r.UpdatedAt = now

	em.To(id, model.EventRoomJoined, model.RoomJoinedPayload{RoomID: r.Code, Settings: r.Settings})
	if role == model.RoleAdmin {
		em.To(id, model.EventAdminStatusUpdate, model.AdminStatusPayload{
			IsAdmin: r.AdminID == id,
			RoomID:  r.Code,
		})
	}
	c.membershipUpdatesLocked(r, em)

	// Late joiner catch-up: current round state, word for spectating roles.
	// Nothing to catch up on during the grace window between rounds.
	if r.RoundActive {
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
		if role.Spectating() {
			payload.Word = r.Word
		}
		em.To(id, model.EventRoundStart, payload)
	}
}

// membershipUpdatesLocked queues full player and spectator snapshots.
// Caller holds the room lock.
func (c *Controller) membershipUpdatesLocked(r *model.Room, em *notify.Buffer) {
	em.ToRoom(r.Code, model.EventPlayersUpdate, model.PlayersUpdatePayload{Players: r.PlayerSummaries()})
	em.ToRoom(r.Code, model.EventSpectatorsUpdate, model.SpectatorsUpdatePayload{Spectators: r.SpectatorSummaries()})
}

// Leave removes a participant from their room, reassigns the host, ends the
// round if the drawer departed, and deletes the room once it is empty.
func (c *Controller) Leave(id model.ParticipantID) error {
	code, bound := c.store.ParticipantRoom(id)
	if !bound {
		return model.ErrNotInRoom
	}

	return c.withRoom(code, func(r *model.Room, em *notify.Buffer) error {
		wasDrawer := false

		if p := r.RemovePlayer(id); p != nil {
			wasDrawer = r.RoundActive && r.DrawerID == id
			em.ToRoom(code, model.EventPlayerLeft, model.MemberPayload{ID: id, Name: p.DisplayName})
			if p.IsHost && len(r.Players) > 0 {
				r.Players[0].IsHost = true
			}
		} else if s := r.RemoveSpectator(id); s != nil {
			if r.AdminID == id {
				r.AdminID = ""
			}
			em.ToRoom(code, model.EventSpectatorLeft, model.MemberPayload{ID: id, Name: s.DisplayName})
		} else {
			c.store.UnbindParticipant(id)
			return model.ErrNotInRoom
		}

		c.store.UnbindParticipant(id)
		r.UpdatedAt = c.clock.Now()
		c.membershipUpdatesLocked(r, em)

		// A round cannot be completed without its drawer
		if wasDrawer {
			c.endRoundLocked(r, em)
		}

		// Rooms have no lifecycle beyond their occupants
		if r.Empty() {
			c.cancelTimerLocked(r)
			c.store.DeleteRoom(code)
			c.logger.Info("room deleted", slog.String("room", string(code)))
		}

		return nil
	})
}

// Resolve is the O(1) reverse lookup from identity to room code
func (c *Controller) Resolve(id model.ParticipantID) (model.RoomCode, bool) {
	return c.store.ParticipantRoom(id)
}

// RoomInfo returns the public snapshot of a room
func (c *Controller) RoomInfo(code model.RoomCode) (model.RoomInfo, error) {
	var info model.RoomInfo
	err := c.withRoom(code, func(r *model.Room, _ *notify.Buffer) error {
		info = r.Info()
		return nil
	})
	return info, err
}

package model

import "errors"

// Common errors used across the application
var (
	// Room errors
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomFull     = errors.New("room is full")

	// Participant errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrNotInRoom      = errors.New("participant is not in a room")

	// Game flow errors
	ErrNotAuthorized  = errors.New("not authorized")
	ErrAlreadyStarted = errors.New("game is already started")
	ErrNoPlayers      = errors.New("no players in room")
	ErrNoActiveGame   = errors.New("no game in progress")

	// Word errors
	ErrNoWordsLoaded = errors.New("word list not loaded")
)

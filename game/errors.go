package game

import "errors"

var (
	ErrRoomNotFound  = errors.New("room-not-found")
	ErrRoomExists    = errors.New("room-already-exists")
	ErrRoomFull      = errors.New("room-full")
	ErrNameTaken     = errors.New("name-taken")
	ErrRoomNotReady  = errors.New("room-not-ready")
	ErrInvalidNumber = errors.New("invalid-number")
	ErrNotInRoom     = errors.New("player-not-in-room")
	ErrNotYourTurn   = errors.New("not-your-turn")
	ErrSecretsLocked = errors.New("secrets-locked")
	ErrGameFinished  = errors.New("game-finished")
)

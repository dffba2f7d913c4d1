package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound  = errors.New("player not found")
	ErrEmptyPlayerName = errors.New("player name is empty")

	// Session errors
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionExists       = errors.New("session id already exists")
	ErrNotJoinable         = errors.New("session is not accepting this action")
	ErrNotGameMaster       = errors.New("player is not the game master")
	ErrInsufficientPlayers = errors.New("insufficient players to start round")
	ErrNoQuestionSet       = errors.New("no question has been set")
	ErrInvalidQuestion     = errors.New("invalid question or answer")
	ErrTimeExpired         = errors.New("round time has expired")
	ErrRoundNotEnded       = errors.New("round has not ended")
	ErrGameOver            = errors.New("game is already over")
)

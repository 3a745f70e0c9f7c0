package domain

import "errors"

// Validation errors, rejected before any storage access
var (
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidMode       = errors.New("invalid game mode")
	ErrInvalidActionKind = errors.New("invalid action kind")
	ErrInvalidUserID     = errors.New("user id must be positive")
)

// Session state machine errors
var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrAlreadyJoined       = errors.New("user already joined this session")
	ErrInvalidSessionState = errors.New("session is not in a valid state for this action")
	ErrNotEnoughPlayers    = errors.New("at least two players are required to start")
	ErrNotCreator          = errors.New("only the session creator can perform this action")
	ErrNoParticipants      = errors.New("session has no participants")
	ErrNotYourTurn         = errors.New("it is not this player's turn")
	ErrSessionFinished     = errors.New("session already finished")
)

// Turn record errors
var (
	ErrTurnNotFound         = errors.New("turn record not found")
	ErrTurnAlreadyCompleted = errors.New("turn record already completed")
	ErrNotTurnOwner         = errors.New("only the acting player can complete this turn")
)

var ErrUserNotFound = errors.New("user not found")

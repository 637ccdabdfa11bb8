package model

import "errors"

// Common errors used across the application
var (
	// Move errors
	ErrOutOfRange   = errors.New("move is outside of the board")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrMidAir       = errors.New("cell has no stone below it")
	ErrIllegalMove  = errors.New("illegal move")
	ErrNoLegalMove  = errors.New("no legal move available")

	// Search errors
	ErrSearchIncomplete = errors.New("search did not complete a single depth")

	// Player errors
	ErrNotInitialized     = errors.New("player has not been initialized")
	ErrAlreadyInitialized = errors.New("player has already been initialized")
	ErrUnknownPlayerKind  = errors.New("unknown player kind")
	ErrInputClosed        = errors.New("player input closed")

	// Match errors
	ErrSamePlayer    = errors.New("red and blue must be different players")
	ErrInvalidSeries = errors.New("invalid series configuration")

	// Parsing errors
	ErrInvalidBoard = errors.New("invalid board")
	ErrInvalidSide  = errors.New("invalid side")

	// Standings errors
	ErrStandingNotFound = errors.New("standing not found")
)

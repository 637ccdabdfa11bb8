package player

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/connect4-arena/internal/model"
	"github.com/mcoot/connect4-arena/internal/services/board"
)

// Player is one side of a match as the controller sees it
type Player interface {
	// Name identifies the player in results and standings
	Name() string
	// Initialize hands the player its own copy of the starting board and its side.
	// It may be called once.
	Initialize(b model.Board, side model.Side) error
	// Play receives the opponent's last move (NoMove on the very first turn) and
	// returns the index of the player's own move
	Play(ctx context.Context, lastOpponentMove int) (int, error)
}

// Adapter is a Player that keeps an exclusive replica of the board in sync with
// the match and delegates the choice of move to a Strategy
type Adapter struct {
	name     string
	kind     model.PlayerKind
	strategy Strategy
	logger   *slog.Logger

	board       model.Board
	side        model.Side
	initialized bool
}

// Ensure Adapter implements Player
var _ Player = (*Adapter)(nil)

// NewAdapter creates a new Adapter around a strategy
func NewAdapter(name string, kind model.PlayerKind, strategy Strategy, logger *slog.Logger) *Adapter {
	return &Adapter{
		name:     name,
		kind:     kind,
		strategy: strategy,
		logger:   logger.With(slog.String("component", "player"), slog.String("player", name)),
	}
}

// Name returns the player's name
func (a *Adapter) Name() string {
	return a.name
}

// Kind returns the kind of strategy driving the player
func (a *Adapter) Kind() model.PlayerKind {
	return a.kind
}

// Side returns the side assigned at initialization
func (a *Adapter) Side() model.Side {
	return a.side
}

// Board returns a copy of the player's replica
func (a *Adapter) Board() model.Board {
	return a.board
}

// Initialize stores a private copy of b and the player's side
func (a *Adapter) Initialize(b model.Board, side model.Side) error {
	if a.initialized {
		return fmt.Errorf("%s: %w", a.name, model.ErrAlreadyInitialized)
	}
	if !side.IsValid() {
		return fmt.Errorf("%s: side %d: %w", a.name, side, model.ErrInvalidSide)
	}
	a.board = b
	a.side = side
	a.initialized = true
	return nil
}

// Play applies the opponent's move to the replica, asks the strategy for a move
// and applies that too
func (a *Adapter) Play(ctx context.Context, lastOpponentMove int) (int, error) {
	if !a.initialized {
		return model.NoMove, fmt.Errorf("%s: %w", a.name, model.ErrNotInitialized)
	}

	if lastOpponentMove != model.NoMove {
		if err := board.ValidateMove(&a.board, lastOpponentMove); err != nil {
			return model.NoMove, fmt.Errorf("%s: opponent move: %w: %w", a.name, model.ErrIllegalMove, err)
		}
		a.board.Apply(lastOpponentMove, a.side.Opponent())
	}

	if a.board.IsFull() {
		return model.NoMove, fmt.Errorf("%s: %w", a.name, model.ErrNoLegalMove)
	}

	index, err := a.strategy.Decide(ctx, a.board, a.side)
	if err != nil {
		return model.NoMove, fmt.Errorf("%s: %w", a.name, err)
	}
	if err := board.ValidateMove(&a.board, index); err != nil {
		return model.NoMove, fmt.Errorf("%s: strategy chose %d: %w: %w", a.name, index, model.ErrIllegalMove, err)
	}
	a.board.Apply(index, a.side)

	a.logger.Debug("move chosen",
		slog.String("side", a.side.String()),
		slog.Int("index", index))
	return index, nil
}

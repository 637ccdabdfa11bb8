package player

import (
	"context"

	"github.com/mcoot/connect4-arena/internal/model"
	"github.com/mcoot/connect4-arena/internal/services/board"
	"github.com/mcoot/connect4-arena/internal/services/search"
)

// Strategy decides which move a player makes
type Strategy interface {
	// Decide returns a legal index for side on b. b is a copy the strategy may
	// modify freely.
	Decide(ctx context.Context, b model.Board, side model.Side) (int, error)
}

// SearchStrategy picks moves with the search engine
type SearchStrategy struct {
	engine *search.Engine
}

// NewSearchStrategy creates a new SearchStrategy
func NewSearchStrategy(engine *search.Engine) *SearchStrategy {
	return &SearchStrategy{engine: engine}
}

// Decide runs a time-bounded search
func (s *SearchStrategy) Decide(ctx context.Context, b model.Board, side model.Side) (int, error) {
	result, err := s.engine.Search(ctx, b, side)
	if err != nil {
		return model.NoMove, err
	}
	return result.Move, nil
}

// GreedyStrategy drops into the leftmost column that has room
type GreedyStrategy struct{}

// NewGreedyStrategy creates a new GreedyStrategy
func NewGreedyStrategy() *GreedyStrategy {
	return &GreedyStrategy{}
}

// Decide returns the lowest free cell of the leftmost open column
func (s *GreedyStrategy) Decide(_ context.Context, b model.Board, _ model.Side) (int, error) {
	index := board.GreedyMove(&b)
	if index == model.NoMove {
		return model.NoMove, model.ErrNoLegalMove
	}
	return index, nil
}

package player

import (
	"context"

	"github.com/mcoot/connect4-arena/internal/dependencies/random"
	"github.com/mcoot/connect4-arena/internal/model"
	"github.com/mcoot/connect4-arena/internal/services/board"
)

// RandomStrategy picks uniformly among the legal moves
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// Decide picks a random legal move
func (s *RandomStrategy) Decide(_ context.Context, b model.Board, _ model.Side) (int, error) {
	moves := board.Moves(&b)
	if len(moves) == 0 {
		return model.NoMove, model.ErrNoLegalMove
	}
	return moves[s.random.Intn(len(moves))], nil
}

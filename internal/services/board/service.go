package board

import (
	"fmt"

	"github.com/mcoot/connect4-arena/internal/model"
)

// columnOrder tries the centre first; centre columns take part in the most lines
var columnOrder = [model.Width]int{3, 2, 4, 1, 5, 0, 6}

// ColumnOrder returns the order in which columns are expanded
func ColumnOrder() []int {
	order := columnOrder
	return order[:]
}

// Moves returns the legal moves on b: the lowest empty cell of every column that
// is not full, in centre-out column order. A full board yields an empty slice.
func Moves(b *model.Board) []int {
	moves := make([]int, 0, model.Width)
	for _, col := range columnOrder {
		if index := b.LowestFree(col); index != model.NoMove {
			moves = append(moves, index)
		}
	}
	return moves
}

// ValidateMove checks that index is a legal drop on b
func ValidateMove(b *model.Board, index int) error {
	if !model.InRange(index) {
		return fmt.Errorf("index %d: %w", index, model.ErrOutOfRange)
	}
	if b.At(index) != model.Empty {
		return fmt.Errorf("index %d: %w", index, model.ErrCellOccupied)
	}
	if index >= model.Width && b.At(index-model.Width) == model.Empty {
		return fmt.Errorf("index %d: %w", index, model.ErrMidAir)
	}
	return nil
}

// GreedyMove returns the lowest free cell of the leftmost column that is not
// full, or NoMove on a full board
func GreedyMove(b *model.Board) int {
	for col := 0; col < model.Width; col++ {
		if index := b.LowestFree(col); index != model.NoMove {
			return index
		}
	}
	return model.NoMove
}

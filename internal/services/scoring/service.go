package scoring

import "github.com/mcoot/connect4-arena/internal/model"

// weights holds the positional value of every cell, bottom row first.
// Centre cells lie on more winning lines and are worth more.
var weights = [model.Size]int{
	3, 4, 6, 7, 6, 4, 3,
	2, 4, 6, 7, 6, 4, 2,
	2, 4, 6, 7, 6, 4, 2,
	3, 4, 6, 7, 6, 4, 3,
}

// maxAbsScore is the sum of every weight, the largest value Evaluate can reach
var maxAbsScore = func() int {
	total := 0
	for _, w := range weights {
		total += w
	}
	return total
}()

// Weight returns the positional weight of a cell
func Weight(index int) int {
	return weights[index]
}

// Evaluate scores b from side's point of view: the weights under side's stones
// minus the weights under the opponent's. Evaluate(b, s) == -Evaluate(b, s.Opponent()).
func Evaluate(b *model.Board, side model.Side) int {
	own, other := side.Cell(), side.Opponent().Cell()
	score := 0
	for index, c := range b {
		switch c {
		case own:
			score += weights[index]
		case other:
			score -= weights[index]
		}
	}
	return score
}

// MaxAbsScore returns the bound on |Evaluate| for any board
func MaxAbsScore() int {
	return maxAbsScore
}

package model

import "time"

// MatchID uniquely identifies a match
type MatchID string

// Outcome is the final state of a finished match
type Outcome string

const (
	OutcomeRedWon  Outcome = "red_won"
	OutcomeBlueWon Outcome = "blue_won"
	OutcomeDraw    Outcome = "draw"
)

// OutcomeFor returns the outcome of side winning
func OutcomeFor(winner Side) Outcome {
	if winner == Red {
		return OutcomeRedWon
	}
	return OutcomeBlueWon
}

// MatchResult is the record of a finished match
type MatchResult struct {
	ID      MatchID `json:"id"`
	Red     string  `json:"red"`
	Blue    string  `json:"blue"`
	Outcome Outcome `json:"outcome"`
	Winner  string  `json:"winner,omitempty"` // Empty on a draw

	Moves []int `json:"moves"`
	Final Board `json:"final"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// IsDraw returns true if neither side completed a line
func (r *MatchResult) IsDraw() bool {
	return r.Outcome == OutcomeDraw
}

// WinnerSide returns the winning side, or false on a draw
func (r *MatchResult) WinnerSide() (Side, bool) {
	switch r.Outcome {
	case OutcomeRedWon:
		return Red, true
	case OutcomeBlueWon:
		return Blue, true
	default:
		return 0, false
	}
}

// Loser returns the name of the losing player, or empty on a draw
func (r *MatchResult) Loser() string {
	switch r.Outcome {
	case OutcomeRedWon:
		return r.Blue
	case OutcomeBlueWon:
		return r.Red
	default:
		return ""
	}
}

// PlayerName returns the name of the player on side
func (r *MatchResult) PlayerName(side Side) string {
	if side == Red {
		return r.Red
	}
	return r.Blue
}

// Duration returns how long the match took
func (r *MatchResult) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

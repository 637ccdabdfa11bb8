package storage

import (
	"context"

	"github.com/mcoot/connect4-arena/internal/model"
)

// Storage defines the interface for standings persistence. Only aggregate
// win/loss/draw counts are kept, never the moves of a match.
type Storage interface {
	// RecordResult adds a finished match to both players' standings
	RecordResult(ctx context.Context, result *model.MatchResult) error

	// GetStanding returns one player's standing or ErrStandingNotFound
	GetStanding(ctx context.Context, player string) (*model.Standing, error)

	// ListStandings returns every standing ordered by SortStandings
	ListStandings(ctx context.Context) ([]model.Standing, error)

	// ResetStandings removes all standings
	ResetStandings(ctx context.Context) error
}

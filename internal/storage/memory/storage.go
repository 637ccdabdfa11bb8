package memory

import (
	"context"
	"sync"

	"github.com/mcoot/connect4-arena/internal/model"
	"github.com/mcoot/connect4-arena/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu        sync.RWMutex
	standings map[string]*model.Standing
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		standings: make(map[string]*model.Standing),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) RecordResult(ctx context.Context, result *model.MatchResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	red, blue := s.standing(result.Red), s.standing(result.Blue)
	switch result.Outcome {
	case model.OutcomeRedWon:
		red.Wins++
		blue.Losses++
	case model.OutcomeBlueWon:
		blue.Wins++
		red.Losses++
	default:
		red.Draws++
		blue.Draws++
	}
	return nil
}

// standing returns the entry for player, creating it. Callers hold the write lock.
func (s *Storage) standing(player string) *model.Standing {
	st, ok := s.standings[player]
	if !ok {
		st = &model.Standing{Player: player}
		s.standings[player] = st
	}
	return st
}

func (s *Storage) GetStanding(ctx context.Context, player string) (*model.Standing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.standings[player]
	if !ok {
		return nil, model.ErrStandingNotFound
	}
	copied := *st
	return &copied, nil
}

func (s *Storage) ListStandings(ctx context.Context) ([]model.Standing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	standings := make([]model.Standing, 0, len(s.standings))
	for _, st := range s.standings {
		standings = append(standings, *st)
	}
	model.SortStandings(standings)
	return standings, nil
}

func (s *Storage) ResetStandings(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.standings = make(map[string]*model.Standing)
	return nil
}

// Package storagetest holds the behaviour every Storage backend must share.
package storagetest

import (
	"context"
	"sync"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/connect4-arena/internal/model"
	"github.com/mcoot/connect4-arena/internal/storage"
)

// Suite runs the common Storage tests. Backends embed it and set Storage in
// their own SetupTest.
type Suite struct {
	suite.Suite
	Storage storage.Storage
	Ctx     context.Context
}

func result(red, blue string, outcome model.Outcome) *model.MatchResult {
	r := &model.MatchResult{ID: "M1", Red: red, Blue: blue, Outcome: outcome}
	if side, ok := r.WinnerSide(); ok {
		r.Winner = r.PlayerName(side)
	}
	return r
}

func (s *Suite) TestRecordResultUpdatesBothPlayers() {
	s.Require().NoError(s.Storage.RecordResult(s.Ctx, result("alice", "bob", model.OutcomeRedWon)))

	alice, err := s.Storage.GetStanding(s.Ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.Standing{Player: "alice", Wins: 1}, *alice)

	bob, err := s.Storage.GetStanding(s.Ctx, "bob")
	s.Require().NoError(err)
	s.Equal(model.Standing{Player: "bob", Losses: 1}, *bob)
}

func (s *Suite) TestRecordDraw() {
	s.Require().NoError(s.Storage.RecordResult(s.Ctx, result("alice", "bob", model.OutcomeDraw)))
	s.Require().NoError(s.Storage.RecordResult(s.Ctx, result("bob", "alice", model.OutcomeBlueWon)))

	alice, err := s.Storage.GetStanding(s.Ctx, "alice")
	s.Require().NoError(err)
	s.Equal(1, alice.Wins)
	s.Equal(1, alice.Draws)
	s.Equal(2, alice.Played())

	bob, err := s.Storage.GetStanding(s.Ctx, "bob")
	s.Require().NoError(err)
	s.Equal(1, bob.Losses)
	s.Equal(1, bob.Draws)
}

func (s *Suite) TestGetStandingNotFound() {
	_, err := s.Storage.GetStanding(s.Ctx, "nobody")
	s.ErrorIs(err, model.ErrStandingNotFound)
}

func (s *Suite) TestListStandingsIsSorted() {
	s.Require().NoError(s.Storage.RecordResult(s.Ctx, result("carol", "bob", model.OutcomeRedWon)))
	s.Require().NoError(s.Storage.RecordResult(s.Ctx, result("carol", "alice", model.OutcomeRedWon)))
	s.Require().NoError(s.Storage.RecordResult(s.Ctx, result("alice", "bob", model.OutcomeDraw)))

	standings, err := s.Storage.ListStandings(s.Ctx)
	s.Require().NoError(err)

	names := make([]string, len(standings))
	for i, st := range standings {
		names[i] = st.Player
	}
	s.Equal([]string{"carol", "alice", "bob"}, names)
	s.Equal(2, standings[0].Wins)
}

func (s *Suite) TestListStandingsEmpty() {
	standings, err := s.Storage.ListStandings(s.Ctx)
	s.Require().NoError(err)
	s.Empty(standings)
}

func (s *Suite) TestResetStandings() {
	s.Require().NoError(s.Storage.RecordResult(s.Ctx, result("alice", "bob", model.OutcomeBlueWon)))
	s.Require().NoError(s.Storage.ResetStandings(s.Ctx))

	standings, err := s.Storage.ListStandings(s.Ctx)
	s.Require().NoError(err)
	s.Empty(standings)

	_, err = s.Storage.GetStanding(s.Ctx, "bob")
	s.ErrorIs(err, model.ErrStandingNotFound)
}

func (s *Suite) TestConcurrentRecordsAreNotLost() {
	const games = 40
	var wg sync.WaitGroup
	for i := 0; i < games; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.NoError(s.Storage.RecordResult(s.Ctx, result("alice", "bob", model.OutcomeRedWon)))
		}()
	}
	wg.Wait()

	alice, err := s.Storage.GetStanding(s.Ctx, "alice")
	s.Require().NoError(err)
	s.Equal(games, alice.Wins)
}

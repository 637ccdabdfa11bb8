package match

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/connect4-arena/internal/dependencies/mocks"
	"github.com/mcoot/connect4-arena/internal/dependencies/random"
	"github.com/mcoot/connect4-arena/internal/model"
	"github.com/mcoot/connect4-arena/internal/services/player"
	"github.com/mcoot/connect4-arena/internal/services/search"
	"github.com/mcoot/connect4-arena/internal/storage/memory"
	"github.com/mcoot/connect4-arena/internal/testutil"
)

type SeriesSuite struct {
	suite.Suite
	storage *memory.Storage
	series  *Series
	ctx     context.Context
}

func TestSeriesSuite(t *testing.T) {
	suite.Run(t, new(SeriesSuite))
}

func (s *SeriesSuite) SetupTest() {
	s.storage = memory.New()
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	rnd := mocks.NewMockRandom()
	engine := search.New(search.Config{MaxDepth: 3}, clk, testutil.NopLogger())
	factory := player.NewFactory(engine, rnd, nil, nil, testutil.NopLogger())
	controller := NewController(s.storage, clk, rnd, testutil.NopLogger())
	s.series = NewSeries(controller, factory, 0, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *SeriesSuite) TestColoursAlternate() {
	summary, err := s.series.Run(s.ctx, SeriesConfig{
		RedKind:  model.PlayerKindGreedy,
		BlueKind: model.PlayerKindRandom,
		Games:    4,
		Parallel: 2,
	})
	s.Require().NoError(err)
	s.Require().Len(summary.Results, 4)

	for i, r := range summary.Results {
		if i%2 == 0 {
			s.Equal("greedy", r.Red)
			s.Equal("random", r.Blue)
		} else {
			s.Equal("random", r.Red)
			s.Equal("greedy", r.Blue)
		}
	}
}

func (s *SeriesSuite) TestSummaryMatchesStore() {
	summary, err := s.series.Run(s.ctx, SeriesConfig{
		RedKind:  model.PlayerKindSearch,
		BlueKind: model.PlayerKindGreedy,
		Games:    6,
		Parallel: 3,
	})
	s.Require().NoError(err)
	s.Equal(6, summary.Games)

	played := 0
	for _, st := range summary.Standings {
		played += st.Played()
		stored, err := s.storage.GetStanding(s.ctx, st.Player)
		s.Require().NoError(err)
		s.Equal(st, *stored)
	}
	s.Equal(12, played)
}

func (s *SeriesSuite) TestSameKindGetsNumberedNames() {
	summary, err := s.series.Run(s.ctx, SeriesConfig{
		RedKind:  model.PlayerKindGreedy,
		BlueKind: model.PlayerKindGreedy,
		Games:    2,
	})
	s.Require().NoError(err)
	s.Equal("greedy-1", summary.Results[0].Red)
	s.Equal("greedy-2", summary.Results[0].Blue)
	// greedy always wins as red by stacking the left column first
	s.Equal(model.OutcomeRedWon, summary.Results[0].Outcome)
	s.Equal(model.OutcomeRedWon, summary.Results[1].Outcome)
}

func (s *SeriesSuite) TestSeededSeriesIgnoresScheduling() {
	run := func(parallel int) []*model.MatchResult {
		clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
		rnd := mocks.NewMockRandom()
		engine := search.New(search.Config{MaxDepth: 3}, clk, testutil.NopLogger())
		factory := player.NewFactory(engine, random.New(), nil, nil, testutil.NopLogger())
		controller := NewController(memory.New(), clk, rnd, testutil.NopLogger())
		series := NewSeries(controller, factory, 99, testutil.NopLogger())

		summary, err := series.Run(s.ctx, SeriesConfig{
			RedKind:  model.PlayerKindRandom,
			BlueKind: model.PlayerKindRandom,
			Games:    8,
			Parallel: parallel,
		})
		s.Require().NoError(err)
		return summary.Results
	}

	sequential := run(1)
	for attempt := 0; attempt < 3; attempt++ {
		concurrent := run(4)
		for i := range sequential {
			s.Equal(sequential[i].Moves, concurrent[i].Moves, "game %d", i+1)
			s.Equal(sequential[i].Outcome, concurrent[i].Outcome, "game %d", i+1)
		}
	}
}

func (s *SeriesSuite) TestRejectsBadConfig() {
	_, err := s.series.Run(s.ctx, SeriesConfig{RedKind: model.PlayerKindGreedy, BlueKind: model.PlayerKindRandom})
	s.ErrorIs(err, model.ErrInvalidSeries)

	_, err = s.series.Run(s.ctx, SeriesConfig{RedKind: model.PlayerKindHuman, BlueKind: model.PlayerKindRandom, Games: 1})
	s.ErrorIs(err, model.ErrInvalidSeries)

	_, err = s.series.Run(s.ctx, SeriesConfig{RedKind: "oracle", BlueKind: model.PlayerKindRandom, Games: 1})
	s.ErrorIs(err, model.ErrUnknownPlayerKind)
}

func (s *SeriesSuite) TestSummarize() {
	summary := Summarize([]*model.MatchResult{
		{Red: "a", Blue: "b", Outcome: model.OutcomeRedWon},
		{Red: "b", Blue: "a", Outcome: model.OutcomeDraw},
		{Red: "b", Blue: "a", Outcome: model.OutcomeBlueWon},
	})
	s.Equal(3, summary.Games)
	s.Equal(1, summary.Draws)
	s.Equal([]model.Standing{
		{Player: "a", Wins: 2, Draws: 1},
		{Player: "b", Losses: 2, Draws: 1},
	}, summary.Standings)
}

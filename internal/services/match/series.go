package match

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mcoot/connect4-arena/internal/dependencies/random"
	"github.com/mcoot/connect4-arena/internal/model"
	"github.com/mcoot/connect4-arena/internal/services/player"
)

// SeriesConfig describes a run of matches between two kinds of player
type SeriesConfig struct {
	// RedKind plays red in the first game; colours swap every game
	RedKind  model.PlayerKind
	BlueKind model.PlayerKind
	Games    int
	// Parallel caps how many matches run at once. Values below 1 mean 1.
	Parallel int
}

// SeriesSummary totals the results of one series
type SeriesSummary struct {
	Games     int                  `json:"games"`
	Draws     int                  `json:"draws"`
	Standings []model.Standing     `json:"standings"`
	Results   []*model.MatchResult `json:"results,omitempty"`
}

// Series plays many independent matches. Every match gets freshly built players
// and its own boards, so matches share nothing but the standings store.
type Series struct {
	controller *Controller
	players    *player.Factory
	seed       uint64
	logger     *slog.Logger
}

// NewSeries creates a new Series runner. A non-zero seed gives game i its own
// source seeded with seed+i, so results do not depend on how games interleave.
// Zero uses the factory's shared source.
func NewSeries(controller *Controller, players *player.Factory, seed uint64, logger *slog.Logger) *Series {
	return &Series{
		controller: controller,
		players:    players,
		seed:       seed,
		logger:     logger.With(slog.String("component", "series")),
	}
}

func (s *Series) playersFor(game int) *player.Factory {
	if s.seed == 0 {
		return s.players
	}
	return s.players.WithRandom(random.NewSeeded(s.seed + uint64(game)))
}

// SeriesPlayerNames returns the names used for the two entrants. Equal kinds get
// numbered so that their standings stay apart.
func SeriesPlayerNames(first, second model.PlayerKind) (string, string) {
	if first == second {
		return string(first) + "-1", string(second) + "-2"
	}
	return string(first), string(second)
}

// Run plays cfg.Games matches and returns their summary. The first error stops
// the series.
func (s *Series) Run(ctx context.Context, cfg SeriesConfig) (*SeriesSummary, error) {
	if cfg.Games < 1 {
		return nil, fmt.Errorf("games must be positive, got %d: %w", cfg.Games, model.ErrInvalidSeries)
	}
	for _, kind := range []model.PlayerKind{cfg.RedKind, cfg.BlueKind} {
		if _, err := model.ParsePlayerKind(string(kind)); err != nil {
			return nil, err
		}
		if kind == model.PlayerKindHuman {
			return nil, fmt.Errorf("human players cannot play a series: %w", model.ErrInvalidSeries)
		}
	}
	parallel := max(cfg.Parallel, 1)

	firstName, secondName := SeriesPlayerNames(cfg.RedKind, cfg.BlueKind)
	s.logger.Info("series started",
		slog.String("first", firstName),
		slog.String("second", secondName),
		slog.Int("games", cfg.Games),
		slog.Int("parallel", parallel))

	results := make([]*model.MatchResult, cfg.Games)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i := 0; i < cfg.Games; i++ {
		g.Go(func() error {
			players := s.playersFor(i)
			first, err := players.New(cfg.RedKind, firstName)
			if err != nil {
				return err
			}
			second, err := players.New(cfg.BlueKind, secondName)
			if err != nil {
				return err
			}

			red, blue := player.Player(first), player.Player(second)
			if i%2 == 1 {
				red, blue = blue, red
			}

			result, err := s.controller.Play(gctx, red, blue)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := Summarize(results)
	s.logger.Info("series finished",
		slog.Int("games", summary.Games),
		slog.Int("draws", summary.Draws))
	return summary, nil
}

// Summarize totals a set of results per player
func Summarize(results []*model.MatchResult) *SeriesSummary {
	summary := &SeriesSummary{Games: len(results), Results: results}
	byPlayer := map[string]*model.Standing{}
	standing := func(name string) *model.Standing {
		st, ok := byPlayer[name]
		if !ok {
			st = &model.Standing{Player: name}
			byPlayer[name] = st
		}
		return st
	}

	for _, r := range results {
		red, blue := standing(r.Red), standing(r.Blue)
		switch r.Outcome {
		case model.OutcomeRedWon:
			red.Wins++
			blue.Losses++
		case model.OutcomeBlueWon:
			blue.Wins++
			red.Losses++
		default:
			red.Draws++
			blue.Draws++
			summary.Draws++
		}
	}

	summary.Standings = make([]model.Standing, 0, len(byPlayer))
	for _, st := range byPlayer {
		summary.Standings = append(summary.Standings, *st)
	}
	model.SortStandings(summary.Standings)
	return summary
}

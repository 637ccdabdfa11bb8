package match

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/connect4-arena/internal/dependencies/clock"
	"github.com/mcoot/connect4-arena/internal/dependencies/random"
	"github.com/mcoot/connect4-arena/internal/model"
	"github.com/mcoot/connect4-arena/internal/services/board"
	"github.com/mcoot/connect4-arena/internal/services/player"
	"github.com/mcoot/connect4-arena/internal/storage"
)

// MatchIDLength is the length of generated match IDs
const MatchIDLength = 12

// Observer receives match events as they happen. It runs on the match's goroutine.
type Observer func(event model.Event)

type playOptions struct {
	observer Observer
	record   bool
}

// PlayOption configures a single match
type PlayOption func(*playOptions)

// WithObserver sends the match's events to obs
func WithObserver(obs Observer) PlayOption {
	return func(o *playOptions) {
		o.observer = obs
	}
}

// WithoutRecording keeps the result out of the standings
func WithoutRecording() PlayOption {
	return func(o *playOptions) {
		o.record = false
	}
}

// Controller referees matches. It keeps the canonical board, checks every move
// the players return and records finished matches in the standings.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new match Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger.With(slog.String("component", "match-controller")),
	}
}

// Play runs one match to completion, red moving first. A player error or an
// illegal move aborts the match and returns the error without a result.
func (c *Controller) Play(ctx context.Context, red, blue player.Player, opts ...PlayOption) (*model.MatchResult, error) {
	options := playOptions{record: true}
	for _, opt := range opts {
		opt(&options)
	}

	// standings are keyed by name, so a shared name counts as the same player
	if red.Name() == blue.Name() {
		return nil, fmt.Errorf("%q: %w", red.Name(), model.ErrSamePlayer)
	}

	var canonical model.Board
	if err := red.Initialize(canonical, model.Red); err != nil {
		return nil, err
	}
	if err := blue.Initialize(canonical, model.Blue); err != nil {
		return nil, err
	}

	result := &model.MatchResult{
		ID:        model.MatchID(c.random.String(MatchIDLength, random.IDAlphabet)),
		Red:       red.Name(),
		Blue:      blue.Name(),
		Moves:     make([]int, 0, model.Size),
		StartedAt: c.clock.Now(),
	}
	log := c.logger.With(slog.String("match_id", string(result.ID)))
	log.Info("match started",
		slog.String("red", result.Red),
		slog.String("blue", result.Blue))
	c.emit(options, result.ID, model.EventMatchStarted, model.MatchStartedPayload{Red: result.Red, Blue: result.Blue})

	players := map[model.Side]player.Player{model.Red: red, model.Blue: blue}
	side := model.Red
	last := model.NoMove
	for {
		if canonical.IsFull() {
			result.Outcome = model.OutcomeDraw
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current := players[side]
		index, err := current.Play(ctx, last)
		if err != nil {
			log.Error("player failed",
				slog.String("player", current.Name()),
				slog.String("side", side.String()),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("%s (%s): %w", current.Name(), side, err)
		}

		if err := board.ValidateMove(&canonical, index); err != nil {
			log.Error("illegal move",
				slog.String("player", current.Name()),
				slog.String("side", side.String()),
				slog.Int("index", index),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("%s (%s) played %d: %w: %w", current.Name(), side, index, model.ErrIllegalMove, err)
		}

		canonical.Apply(index, side)
		result.Moves = append(result.Moves, index)
		c.emit(options, result.ID, model.EventMovePlayed, model.MovePlayedPayload{
			Ply:    len(result.Moves),
			Side:   side,
			Player: current.Name(),
			Index:  index,
			Board:  canonical,
		})

		if canonical.IsWinningFor(side) {
			result.Outcome = model.OutcomeFor(side)
			result.Winner = current.Name()
			break
		}

		last = index
		side = side.Opponent()
	}

	result.Final = canonical
	result.FinishedAt = c.clock.Now()

	log.Info("match finished",
		slog.String("outcome", string(result.Outcome)),
		slog.String("winner", result.Winner),
		slog.Int("moves", len(result.Moves)))
	c.emit(options, result.ID, model.EventMatchFinished, model.MatchFinishedPayload{Result: result})

	if options.record {
		if err := c.storage.RecordResult(ctx, result); err != nil {
			log.Error("failed to record result", slog.String("error", err.Error()))
			return result, fmt.Errorf("recording result: %w", err)
		}
	}
	return result, nil
}

func (c *Controller) emit(options playOptions, id model.MatchID, eventType model.EventType, payload any) {
	if options.observer == nil {
		return
	}
	options.observer(model.Event{
		Type:      eventType,
		Timestamp: c.clock.Now(),
		MatchID:   id,
		Payload:   payload,
	})
}

package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mcoot/connect4-arena/internal/dependencies/clock"
	"github.com/mcoot/connect4-arena/internal/model"
	"github.com/mcoot/connect4-arena/internal/services/board"
	"github.com/mcoot/connect4-arena/internal/services/scoring"
)

const (
	// WinScore is returned for a decided position. It must exceed scoring.MaxAbsScore.
	WinScore = 1000
	// Infinity bounds the root window. It must exceed WinScore + model.Size so that
	// every real score lies strictly inside it, and stay small enough to negate.
	Infinity = 100000

	// DefaultTimeBudget is the wall-clock time after which no new iteration starts
	DefaultTimeBudget = 1250 * time.Millisecond
)

// Config holds search limits
type Config struct {
	// TimeBudget is checked between iterations only. A started iteration always
	// runs to completion, so a single move may take longer than the budget.
	TimeBudget time.Duration
	// MaxDepth caps the deepening. Zero means the number of free cells.
	MaxDepth int
}

// DefaultConfig returns the default search limits
func DefaultConfig() Config {
	return Config{TimeBudget: DefaultTimeBudget}
}

// Result is the outcome of a search
type Result struct {
	Move    int           `json:"move"`
	Score   int           `json:"score"`
	Depth   int           `json:"depth"`
	Nodes   int64         `json:"nodes"`
	Elapsed time.Duration `json:"elapsed"`
}

// Engine runs iterative-deepening negamax with alpha-beta pruning. An Engine
// holds no per-search state and may be shared by any number of players, but a
// single search is single-threaded.
type Engine struct {
	config Config
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a new search Engine
func New(cfg Config, clk clock.Clock, logger *slog.Logger) *Engine {
	if cfg.TimeBudget <= 0 {
		cfg.TimeBudget = DefaultTimeBudget
	}
	return &Engine{
		config: cfg,
		clock:  clk,
		logger: logger.With(slog.String("component", "search-engine")),
	}
}

// Config returns the engine's limits
func (e *Engine) Config() Config {
	return e.config
}

// WithConfig returns an engine sharing this one's clock and logger with other limits
func (e *Engine) WithConfig(cfg Config) *Engine {
	if cfg.TimeBudget <= 0 {
		cfg.TimeBudget = DefaultTimeBudget
	}
	return &Engine{config: cfg, clock: e.clock, logger: e.logger}
}

// searchContext is the state of one search call
type searchContext struct {
	board     model.Board
	rootDepth int
	bestMove  int
	nodes     int64
}

// Search picks a move for side on b by deepening one ply at a time until the
// time budget is spent, ctx is done, or the maximum depth is reached. The result
// of the deepest completed iteration is returned. b is not modified.
func (e *Engine) Search(ctx context.Context, b model.Board, side model.Side) (Result, error) {
	start := e.clock.Now()

	movesAvailable := b.Free()
	if movesAvailable == 0 {
		return Result{Move: model.NoMove}, model.ErrNoLegalMove
	}

	maxDepth := movesAvailable
	if e.config.MaxDepth > 0 && e.config.MaxDepth < maxDepth {
		maxDepth = e.config.MaxDepth
	}

	result := Result{Move: model.NoMove}
	sc := &searchContext{board: b}
	for distance := 1; distance <= maxDepth; distance++ {
		if distance > 1 {
			if e.clock.Now().Sub(start) >= e.config.TimeBudget {
				break
			}
			if ctx.Err() != nil {
				break
			}
		}

		score := e.iterate(sc, side, movesAvailable, distance)
		result.Move = sc.bestMove
		result.Score = score
		result.Depth = distance
		result.Nodes = sc.nodes

		e.logger.Debug("iteration complete",
			slog.Int("depth", distance),
			slog.Int("move", sc.bestMove),
			slog.Int("score", score),
			slog.Int64("nodes", sc.nodes),
			slog.Duration("elapsed", e.clock.Since(start)))
	}

	if result.Depth == 0 {
		return result, fmt.Errorf("%s to move: %w", side, model.ErrSearchIncomplete)
	}

	result.Elapsed = e.clock.Since(start)
	e.logger.Info("search finished",
		slog.String("side", side.String()),
		slog.Int("move", result.Move),
		slog.Int("score", result.Score),
		slog.Int("depth", result.Depth),
		slog.Int64("nodes", result.Nodes),
		slog.Duration("elapsed", result.Elapsed))
	return result, nil
}

// SearchDepth runs a single fixed-depth pass, ignoring the time budget.
// depth is clamped to [1, free cells].
func (e *Engine) SearchDepth(b model.Board, side model.Side, depth int) (Result, error) {
	start := e.clock.Now()

	movesAvailable := b.Free()
	if movesAvailable == 0 {
		return Result{Move: model.NoMove}, model.ErrNoLegalMove
	}
	depth = max(1, min(depth, movesAvailable))

	sc := &searchContext{board: b}
	score := e.iterate(sc, side, movesAvailable, depth)
	return Result{
		Move:    sc.bestMove,
		Score:   score,
		Depth:   depth,
		Nodes:   sc.nodes,
		Elapsed: e.clock.Since(start),
	}, nil
}

// iterate runs one full-window pass at depth and leaves the best root move in sc
func (e *Engine) iterate(sc *searchContext, side model.Side, free, depth int) int {
	sc.rootDepth = depth
	sc.bestMove = model.NoMove
	score := sc.negamax(side, free, depth, -Infinity, Infinity)

	// A position that is already decided returns before expanding the root.
	if sc.bestMove == model.NoMove {
		if moves := board.Moves(&sc.board); len(moves) > 0 {
			sc.bestMove = moves[0]
		}
	}
	return score
}

// negamax scores the position for side. Terminal wins carry the remaining depth so
// that quicker wins and slower losses are preferred.
func (sc *searchContext) negamax(side model.Side, free, depth, alpha, beta int) int {
	sc.nodes++

	if sc.board.IsWinningFor(side.Opponent()) {
		return -(WinScore + depth)
	}
	if sc.board.IsWinningFor(side) {
		return WinScore + depth
	}
	if depth == 0 || free == 0 {
		return scoring.Evaluate(&sc.board, side)
	}

	best := alpha
	for _, index := range board.Moves(&sc.board) {
		score := sc.child(index, side, free, depth, beta, best)
		if score > best {
			best = score
			if depth == sc.rootDepth {
				sc.bestMove = index
			}
			if best >= beta {
				break
			}
		}
	}
	return best
}

// child plays index for side, scores the reply and takes the stone back
func (sc *searchContext) child(index int, side model.Side, free, depth, beta, best int) int {
	sc.board.Apply(index, side)
	defer sc.board.Undo(index)
	return -sc.negamax(side.Opponent(), free-1, depth-1, -beta, -best)
}

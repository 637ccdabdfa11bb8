package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/connect4-arena/internal/dependencies/clock"
	"github.com/mcoot/connect4-arena/internal/dependencies/random"
	"github.com/mcoot/connect4-arena/internal/services/match"
	"github.com/mcoot/connect4-arena/internal/services/player"
	"github.com/mcoot/connect4-arena/internal/services/search"
	"github.com/mcoot/connect4-arena/internal/storage"
	"github.com/mcoot/connect4-arena/internal/storage/memory"
	redisstorage "github.com/mcoot/connect4-arena/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Engine     *search.Engine
	Players    *player.Factory
	Controller *match.Controller
	Series     *match.Series

	closer io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Search holds the search engine limits
	// If zero value, defaults to search.DefaultConfig()
	Search search.Config
	// Seed makes the random source reproducible. Zero seeds from entropy.
	Seed uint64
	// Input and Output are the terminal used by human players (optional)
	Input  io.Reader
	Output io.Writer
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	var closer io.Closer
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
		closer = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random = random.New()
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	}

	app := newWithDependencies(store, clk, rnd, cfg.Seed, cfg.Search, cfg.Input, cfg.Output, logger)
	app.closer = closer
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	seed uint64,
	searchCfg search.Config,
	in io.Reader,
	out io.Writer,
	logger *slog.Logger,
) *App {
	engine := search.New(searchCfg, clk, logger)
	players := player.NewFactory(engine, rnd, in, out, logger)
	controller := match.NewController(store, clk, rnd, logger)
	series := match.NewSeries(controller, players, seed, logger)

	return &App{
		Storage:    store,
		Clock:      clk,
		Random:     rnd,
		Engine:     engine,
		Players:    players,
		Controller: controller,
		Series:     series,
	}
}

// Close releases the storage connection, if any
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

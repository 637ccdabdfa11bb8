package cli

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/connect4-arena/internal/config"
	"github.com/mcoot/connect4-arena/internal/factory"
	"github.com/mcoot/connect4-arena/internal/services/search"
	redisstorage "github.com/mcoot/connect4-arena/internal/storage/redis"
)

// Config holds CLI configuration
type Config struct {
	Storage  string
	RedisURL string
	Budget   time.Duration
	MaxDepth int
	Seed     uint64
	Server   string
	Output   string
	LogLevel string
	Verbose  bool
}

// DefaultConfig returns a Config with values from the environment and .env
func DefaultConfig() *Config {
	env, err := config.Load()
	if err != nil {
		env = config.FromEnv()
	}
	return &Config{
		Storage:  env.Storage,
		RedisURL: env.RedisURL,
		Budget:   env.TimeBudget,
		MaxDepth: env.MaxDepth,
		Seed:     env.Seed,
		Server:   "http://localhost:" + env.Port,
		Output:   "text",
		LogLevel: env.LogLevel,
	}
}

// Logger builds the CLI's text logger on w
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := config.ParseLogLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// FactoryConfig translates the flags into the application factory's config
func (c *Config) FactoryConfig(logger *slog.Logger, in io.Reader, out io.Writer) (factory.Config, error) {
	if c.Output != "text" && c.Output != "json" {
		return factory.Config{}, fmt.Errorf("unknown output format %q", c.Output)
	}
	if c.MaxDepth < 0 {
		return factory.Config{}, fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}

	fc := factory.Config{
		Logger:      logger,
		StorageType: c.Storage,
		Search: search.Config{
			TimeBudget: c.Budget,
			MaxDepth:   c.MaxDepth,
		},
		Seed:   c.Seed,
		Input:  in,
		Output: out,
	}
	if c.Storage == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc, nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment keys
const (
	EnvStorage    = "CONNECT4_STORAGE"
	EnvRedisURL   = "REDIS_URL"
	EnvTimeBudget = "CONNECT4_TIME_BUDGET"
	EnvMaxDepth   = "CONNECT4_MAX_DEPTH"
	EnvLogLevel   = "CONNECT4_LOG_LEVEL"
	EnvSeed       = "CONNECT4_SEED"
	EnvPort       = "PORT"
)

// Config is the runtime configuration shared by the CLI and the server
type Config struct {
	Storage    string
	RedisURL   string
	TimeBudget time.Duration
	MaxDepth   int
	LogLevel   string
	Port       string

	// Seed makes random players reproducible. Zero seeds from entropy.
	Seed uint64
}

// Load reads a .env file from the working directory if there is one, then
// builds the configuration from the environment
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading env file: %w", err)
	}
	return FromEnv(), nil
}

// FromEnv builds the configuration from the environment only
func FromEnv() *Config {
	return &Config{
		Storage:    GetEnv(EnvStorage, "memory"),
		RedisURL:   GetEnv(EnvRedisURL, "redis://localhost:6379"),
		TimeBudget: GetEnvAsDuration(EnvTimeBudget, 1250*time.Millisecond),
		MaxDepth:   GetEnvAsInt(EnvMaxDepth, 0),
		LogLevel:   GetEnv(EnvLogLevel, "warn"),
		Port:       GetEnv(EnvPort, "8080"),
		Seed:       uint64(GetEnvAsInt(EnvSeed, 0)),
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn("invalid integer in environment, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Int("default", defaultValue))
		return defaultValue
	}
	return value
}

// GetEnvAsDuration accepts Go durations ("1.5s") or a bare number of milliseconds
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if ms, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		slog.Warn("invalid duration in environment, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Duration("default", defaultValue))
		return defaultValue
	}
	return value
}

// ParseLogLevel maps debug, info, warn and error onto slog levels
func ParseLogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelWarn, fmt.Errorf("log level %q: %w", level, err)
	}
	return l, nil
}

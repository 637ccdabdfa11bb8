package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{EnvStorage, EnvRedisURL, EnvTimeBudget, EnvMaxDepth, EnvLogLevel, EnvSeed, EnvPort} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	assert.Equal(t, "memory", cfg.Storage)
	assert.Equal(t, 1250*time.Millisecond, cfg.TimeBudget)
	assert.Equal(t, 0, cfg.MaxDepth)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, "8080", cfg.Port)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvStorage, "redis")
	t.Setenv(EnvRedisURL, "redis://cache:6379/2")
	t.Setenv(EnvTimeBudget, "2s")
	t.Setenv(EnvMaxDepth, "8")
	t.Setenv(EnvSeed, "42")

	cfg := FromEnv()
	assert.Equal(t, "redis", cfg.Storage)
	assert.Equal(t, "redis://cache:6379/2", cfg.RedisURL)
	assert.Equal(t, 2*time.Second, cfg.TimeBudget)
	assert.Equal(t, 8, cfg.MaxDepth)
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("C4_TEST_DURATION", "500")
	assert.Equal(t, 500*time.Millisecond, GetEnvAsDuration("C4_TEST_DURATION", time.Second))

	t.Setenv("C4_TEST_DURATION", "1m")
	assert.Equal(t, time.Minute, GetEnvAsDuration("C4_TEST_DURATION", time.Second))

	t.Setenv("C4_TEST_DURATION", "soon")
	assert.Equal(t, time.Second, GetEnvAsDuration("C4_TEST_DURATION", time.Second))
}

func TestGetEnvAsIntFallsBack(t *testing.T) {
	t.Setenv("C4_TEST_INT", "many")
	assert.Equal(t, 3, GetEnvAsInt("C4_TEST_INT", 3))
}

func TestLoadReadsEnvFile(t *testing.T) {
	t.Setenv(EnvMaxDepth, "")
	_ = os.Unsetenv(EnvMaxDepth)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CONNECT4_MAX_DEPTH=5\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MaxDepth)
}

func TestLoadWithoutEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLogLevel("ERROR")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, level)

	_, err = ParseLogLevel("loud")
	assert.Error(t, err)
}

package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/connect4-arena/internal/dependencies/mocks"
	"github.com/mcoot/connect4-arena/internal/services/search"
	"github.com/mcoot/connect4-arena/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// The mocked clock never advances on its own, so searches run to maxDepth.
func NewTestApp(maxDepth int) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	searchCfg := search.DefaultConfig()
	searchCfg.MaxDepth = maxDepth
	app := newWithDependencies(store, mockClock, mockRandom, 0, searchCfg, nil, nil, logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

package mocks

import (
	"sync"
	"time"

	"github.com/mcoot/connect4-arena/internal/dependencies/clock"
)

// MockClock is a mock implementation of Clock for testing.
// With a non-zero Step every Now call moves the clock forward by Step after
// reading it, which lets tests drive time-budgeted loops deterministically.
type MockClock struct {
	mu          sync.Mutex
	CurrentTime time.Time
	Step        time.Duration
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// NewSteppingClock creates a MockClock that advances by step on every Now call
func NewSteppingClock(t time.Time, step time.Duration) *MockClock {
	return &MockClock{CurrentTime: t, Step: step}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.CurrentTime
	c.CurrentTime = c.CurrentTime.Add(c.Step)
	return now
}

// Since returns the mocked time elapsed since t. It does not step the clock.
func (c *MockClock) Since(t time.Time) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.CurrentTime.Sub(t)
}

// Advance moves the clock forward by the given duration
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.CurrentTime = c.CurrentTime.Add(d)
}

// Set sets the clock to the given time
func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.CurrentTime = t
}

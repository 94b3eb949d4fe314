package engine

import "time"

// MockTimeProvider is a manually driven clock for deterministic ticks in tests
// Not safe for concurrent use, tests drive it from the same goroutine as GameContext.Tick
type MockTimeProvider struct {
	now time.Time
}

// NewMockTimeProvider starts the clock at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.now
}

// SetTime jumps the clock, backwards jumps are allowed
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.now = t
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}

// Run advances the clock by frame before each of n ticks of ctx
func (m *MockTimeProvider) Run(ctx *GameContext, n int, frame time.Duration) {
	for i := 0; i < n; i++ {
		m.Advance(frame)
		ctx.Tick()
	}
}

package system

import "time"

// IntervalGate accumulates frame time and fires at most once per frame after Interval has elapsed
// The remainder past the interval carries over, the same way a repeating timer keeps its phase
type IntervalGate struct {
	Interval time.Duration
	elapsed  time.Duration
}

// NewIntervalGate creates a gate with nothing accumulated
func NewIntervalGate(interval time.Duration) IntervalGate {
	return IntervalGate{Interval: interval}
}

// Tick adds dt and reports whether the gate fired this frame
// A non-positive interval fires on every call
func (g *IntervalGate) Tick(dt time.Duration) bool {
	if g.Interval <= 0 {
		return true
	}
	if dt > 0 {
		g.elapsed += dt
	}
	if g.elapsed < g.Interval {
		return false
	}
	g.elapsed %= g.Interval
	return true
}

// Elapsed returns time accumulated toward the next firing
func (g *IntervalGate) Elapsed() time.Duration {
	return g.elapsed
}

// Reset discards accumulated time
func (g *IntervalGate) Reset() {
	g.elapsed = 0
}

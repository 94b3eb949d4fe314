package engine

import (
	"time"

	"go.uber.org/zap"
)

// GameContext drives the per-frame tick: it owns the world, the clock and the logger
type GameContext struct {
	World        *World
	TimeProvider TimeProvider
	Logger       *zap.Logger

	lastTick    time.Time
	frameNumber int64
}

// NewGameContext creates a context over a fresh world, nil logger is replaced by a no-op logger
func NewGameContext(tp TimeProvider, logger *zap.Logger) *GameContext {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameContext{
		World:        NewWorld(),
		TimeProvider: tp,
		Logger:       logger,
	}
}

// Tick advances the simulation by the real time elapsed since the previous tick
// The first tick runs with zero elapsed time, a clock going backwards also yields zero
func (g *GameContext) Tick() time.Duration {
	now := g.TimeProvider.Now()

	var elapsed time.Duration
	if g.frameNumber > 0 {
		elapsed = now.Sub(g.lastTick)
		if elapsed < 0 {
			elapsed = 0
		}
	}
	g.lastTick = now
	g.frameNumber++

	res := g.World.Resource
	res.Time.Update(now, elapsed, g.frameNumber)
	res.Events.Reset()

	g.World.Update(elapsed)
	return elapsed
}

// FrameNumber returns the number of ticks run so far
func (g *GameContext) FrameNumber() int64 {
	return g.frameNumber
}

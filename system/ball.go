package system

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// BallSystem advances the ball by its velocity over a clamped delta time
// Purely kinematic, collisions are resolved later in the frame
type BallSystem struct {
	maxDelta time.Duration
	misses   missLog
}

func NewBallSystem(ctx *engine.GameContext) *BallSystem {
	return &BallSystem{
		maxDelta: parameter.MaxDeltaTime,
		misses:   newMissLog(ctx.Logger, "ball"),
	}
}

func (s *BallSystem) Name() string {
	return "ball"
}

func (s *BallSystem) Priority() int {
	return parameter.PriorityBall
}

// ClampDelta bounds dt to [0, max] so a stall does not teleport the ball
func ClampDelta(dt, max time.Duration) time.Duration {
	if dt < 0 {
		return 0
	}
	if dt > max {
		return max
	}
	return dt
}

func (s *BallSystem) Update(world *engine.World, dt time.Duration) {
	e, ball, tr, ok := resolveBall(world, &s.misses)
	if !ok {
		return
	}

	seconds := ClampDelta(dt, s.maxDelta).Seconds()
	if seconds == 0 {
		return
	}

	tr.Translation = vmath.V3FMulAdd(tr.Translation, ball.Velocity, seconds)
	world.Components.Transform.Set(e, tr)
}

// resolveBall looks the ball up by role and reports a miss when it or its components are gone
func resolveBall(world *engine.World, misses *missLog) (core.Entity, component.BallComponent, component.TransformComponent, bool) {
	c := &world.Components
	e, err := world.Resource.Roles.Ball()
	if err != nil {
		misses.report("ball", err)
		return 0, component.BallComponent{}, component.TransformComponent{}, false
	}
	ball, ok := c.Ball.Get(e)
	tr, ok2 := c.Transform.Get(e)
	if !ok || !ok2 {
		misses.report("ball", fmt.Errorf("%w: entity %d has no ball or transform", engine.ErrBallNotFound, e))
		return 0, component.BallComponent{}, component.TransformComponent{}, false
	}
	return e, ball, tr, true
}

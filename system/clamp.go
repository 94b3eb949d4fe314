package system

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
)

// ClampSystem keeps paddles between the inner edges of the top and bottom walls
// Runs only with RulesResource.ClampPaddles, otherwise paddles may leave the arena
type ClampSystem struct {
	misses missLog
}

func NewClampSystem(ctx *engine.GameContext) *ClampSystem {
	return &ClampSystem{misses: newMissLog(ctx.Logger, "clamp")}
}

func (s *ClampSystem) Name() string {
	return "clamp"
}

func (s *ClampSystem) Priority() int {
	return parameter.PriorityClamp
}

func (s *ClampSystem) Update(world *engine.World, _ time.Duration) {
	if !world.Resource.Rules.ClampPaddles {
		return
	}

	top, ok := s.innerEdge(world, component.WallTop)
	if !ok {
		return
	}
	bottom, ok := s.innerEdge(world, component.WallBottom)
	if !ok {
		return
	}

	c := &world.Components
	for _, e := range c.Paddle.All() {
		tr, ok := c.Transform.Get(e)
		if !ok {
			continue
		}
		half := 0.0
		if sp, ok := c.Sprite.Get(e); ok {
			half = sp.Size.Y / 2
		}

		maxY := top - half
		minY := bottom + half
		y := tr.Translation.Y
		if y > maxY {
			y = maxY
		}
		if y < minY {
			y = minY
		}
		if y != tr.Translation.Y {
			tr.Translation.Y = y
			c.Transform.Set(e, tr)
		}
	}
}

// innerEdge returns the arena-facing Y edge of a horizontal wall
func (s *ClampSystem) innerEdge(world *engine.World, role component.WallRole) (float64, bool) {
	e, err := world.Resource.Roles.Wall(role)
	if err != nil {
		s.misses.report(role.String(), err)
		return 0, false
	}
	c := &world.Components
	tr, ok := c.Transform.Get(e)
	sp, ok2 := c.Sprite.Get(e)
	if !ok || !ok2 {
		s.misses.report(role.String(), fmt.Errorf("%w: %s has no geometry", engine.ErrWallRoleMissing, role))
		return 0, false
	}
	if role == component.WallTop {
		return tr.Translation.Y - sp.Size.Y/2, true
	}
	return tr.Translation.Y + sp.Size.Y/2, true
}

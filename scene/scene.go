// Package scene builds the fixed starting arena: one ball, two paddles and four walls.
package scene

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Scene holds the created entity ids by role
type Scene struct {
	Ball    core.Entity
	Paddles [component.PaddleRoleCount]core.Entity
	Walls   [component.WallRoleCount]core.Entity
}

type paddleDef struct {
	role  component.PaddleRole
	name  string
	x     float64
	color core.Color
}

type wallDef struct {
	role     component.WallRole
	collider component.ColliderKind
	name     string
	pos      vmath.Vec3F
	size     vmath.Vec2F
}

var paddleDefs = []paddleDef{
	{component.PlayerOne, parameter.NamePlayerOne, -parameter.PaddleOffsetX, parameter.ColorPlayerOne},
	{component.PlayerTwo, parameter.NamePlayerTwo, parameter.PaddleOffsetX, parameter.ColorPlayerTwo},
}

var wallDefs = []wallDef{
	{
		role: component.WallTop, collider: component.ColliderSolid, name: parameter.NameWallTop,
		pos:  vmath.Vec3F{Y: parameter.WallTopY},
		size: vmath.Vec2F{X: parameter.ArenaWidth, Y: parameter.WallThickness},
	},
	{
		role: component.WallBottom, collider: component.ColliderSolid, name: parameter.NameWallBottom,
		pos:  vmath.Vec3F{Y: parameter.WallBottomY},
		size: vmath.Vec2F{X: parameter.ArenaWidth, Y: parameter.WallThickness},
	},
	{
		role: component.WallLeft, collider: component.ColliderScore, name: parameter.NameWallLeft,
		pos:  vmath.Vec3F{X: parameter.WallLeftX},
		size: vmath.Vec2F{X: parameter.WallLeftWidth, Y: parameter.ArenaHeight},
	},
	{
		role: component.WallRight, collider: component.ColliderScore, name: parameter.NameWallRight,
		pos:  vmath.Vec3F{X: parameter.WallRightX},
		size: vmath.Vec2F{X: parameter.WallRightWidth, Y: parameter.ArenaHeight},
	},
}

// Setup creates the starting entity set in w and binds every role in the world's RoleIndex
func Setup(w *engine.World) *Scene {
	c := &w.Components
	roles := w.Resource.Roles
	sc := &Scene{}

	// Ball
	sc.Ball = w.CreateEntity()
	c.Transform.Set(sc.Ball, component.TransformComponent{
		Scale: vmath.Vec3F{X: parameter.BallScale, Y: parameter.BallScale, Z: parameter.BallScaleZ},
	})
	c.Sprite.Set(sc.Ball, component.SpriteComponent{
		Color:   parameter.ColorBall,
		Texture: parameter.BallTexture,
	})
	c.Ball.Set(sc.Ball, component.BallComponent{
		Velocity: vmath.Vec3F{X: parameter.BallVelocityX, Y: parameter.BallVelocityY},
	})
	roles.SetBall(sc.Ball)

	// Players
	for _, d := range paddleDefs {
		e := w.CreateEntity()
		c.Transform.Set(e, component.NewTransform(vmath.Vec3F{X: d.x}))
		c.Sprite.Set(e, component.SpriteComponent{
			Color: d.color,
			Size:  vmath.Vec2F{X: parameter.PaddleWidth, Y: parameter.PaddleHeight},
		})
		c.Paddle.Set(e, component.PaddleComponent{Role: d.role})
		c.Score.Set(e, component.ScoreComponent{})
		c.Name.Set(e, component.NameComponent{Name: d.name})
		sc.Paddles[d.role] = e
		roles.SetPaddle(d.role, e)
	}

	// Walls and goal areas
	for _, d := range wallDefs {
		e := w.CreateEntity()
		c.Transform.Set(e, component.NewTransform(d.pos))
		c.Sprite.Set(e, component.SpriteComponent{Color: parameter.ColorWall, Size: d.size})
		c.Wall.Set(e, component.WallComponent{Collider: d.collider, Role: d.role})
		c.Name.Set(e, component.NameComponent{Name: d.name})
		sc.Walls[d.role] = e
		roles.SetWall(d.role, e)
	}

	return sc
}

// Validate checks that every paddle and wall role is bound to exactly one entity
// All problems are reported, joined
func Validate(w *engine.World) error {
	c := &w.Components
	var errs []error

	if c.Ball.Count() != 1 {
		errs = append(errs, fmt.Errorf("%w: %d ball entities", engine.ErrBallNotFound, c.Ball.Count()))
	}

	var paddleSeen [component.PaddleRoleCount]int
	for _, e := range c.Paddle.All() {
		p, _ := c.Paddle.Get(e)
		if p.Role < component.PaddleRoleCount {
			paddleSeen[p.Role]++
		}
	}
	for role, n := range paddleSeen {
		r := component.PaddleRole(role)
		switch {
		case n == 0:
			errs = append(errs, fmt.Errorf("%w: %s", engine.ErrPaddleNotFound, r))
		case n > 1:
			errs = append(errs, fmt.Errorf("%w: paddle %s", engine.ErrDuplicateRole, r))
		}
	}

	var wallSeen [component.WallRoleCount]int
	for _, e := range c.Wall.All() {
		wc, _ := c.Wall.Get(e)
		if wc.Role < component.WallRoleCount {
			wallSeen[wc.Role]++
		}
	}
	for role, n := range wallSeen {
		r := component.WallRole(role)
		switch {
		case n == 0:
			errs = append(errs, fmt.Errorf("%w: %s", engine.ErrWallRoleMissing, r))
		case n > 1:
			errs = append(errs, fmt.Errorf("%w: wall %s", engine.ErrDuplicateRole, r))
		}
	}

	return errors.Join(errs...)
}

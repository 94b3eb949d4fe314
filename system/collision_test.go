package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/vmath"
)

func TestReflect(t *testing.T) {
	v := vmath.Vec3F{X: 150, Y: -75, Z: 3}

	tests := []struct {
		role component.WallRole
		want vmath.Vec3F
	}{
		{component.WallTop, vmath.Vec3F{X: 150, Y: 75, Z: 3}},
		{component.WallBottom, vmath.Vec3F{X: 150, Y: 75, Z: 3}},
		{component.WallLeft, vmath.Vec3F{X: -150, Y: -75, Z: 3}},
		{component.WallRight, vmath.Vec3F{X: -150, Y: -75, Z: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			if got := Reflect(v, tt.role); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestCollisionWallResponse(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want vmath.Vec3F
	}{
		{"Top flips Y", 0, 340, vmath.Vec3F{X: 150, Y: -150}},
		{"Bottom flips Y", 100, -331, vmath.Vec3F{X: 150, Y: -150}},
		{"Left flips X", -700, 0, vmath.Vec3F{X: -150, Y: 150}},
		{"Right flips X", 625, 50, vmath.Vec3F{X: -150, Y: 150}},
		{"Open arena", 0, 0, vmath.Vec3F{X: 150, Y: 150}},
		{"Corner flips both", -640, 340, vmath.Vec3F{X: -150, Y: -150}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, sc, _ := newTestContext(t)
			placeBall(t, ctx, sc, tt.x, tt.y)
			cs := NewCollisionSystem(ctx)

			cs.Update(ctx.World, 0)

			pos, vel := ballState(ctx, sc)
			assert.Equal(t, tt.want, vel)
			assert.Equal(t, vmath.Vec3F{X: tt.x, Y: tt.y}, pos, "resolver applies no positional correction")
		})
	}
}

func TestCollisionVelocityProperties(t *testing.T) {
	velocities := []vmath.Vec3F{
		{X: 150, Y: 150},
		{X: -80, Y: 33},
		{X: 0.5, Y: -0.25},
	}
	for _, v := range velocities {
		ctx, sc, _ := newTestContext(t)
		ctx.World.Components.Ball.Set(sc.Ball, component.BallComponent{Velocity: v})
		placeBall(t, ctx, sc, 0, -345)
		NewCollisionSystem(ctx).Update(ctx.World, 0)
		_, got := ballState(ctx, sc)
		assert.Equal(t, v.X, got.X, "horizontal wall keeps vx")
		assert.Equal(t, -v.Y, got.Y, "horizontal wall inverts vy")

		ctx, sc, _ = newTestContext(t)
		ctx.World.Components.Ball.Set(sc.Ball, component.BallComponent{Velocity: v})
		placeBall(t, ctx, sc, 650, 0)
		NewCollisionSystem(ctx).Update(ctx.World, 0)
		_, got = ballState(ctx, sc)
		assert.Equal(t, -v.X, got.X, "vertical wall inverts vx")
		assert.Equal(t, v.Y, got.Y, "vertical wall keeps vy")
	}
}

func TestCollisionStillOverlappingFlipsAgain(t *testing.T) {
	ctx, sc, _ := newTestContext(t)
	placeBall(t, ctx, sc, 0, 340)
	cs := NewCollisionSystem(ctx)

	cs.Update(ctx.World, 0)
	cs.Update(ctx.World, 0)

	_, vel := ballState(ctx, sc)
	assert.Equal(t, 150.0, vel.Y, "two frames inside the wall flip twice")
}

func TestCollisionDeepestWallOnly(t *testing.T) {
	ctx, sc, _ := newTestContext(t)
	ctx.World.Resource.Rules.DeepestWallOnly = true
	// Touches the left wall edge by 0.03 and sits fully inside the top wall band
	placeBall(t, ctx, sc, -640, 340)
	cs := NewCollisionSystem(ctx)

	cs.Update(ctx.World, 0)

	_, vel := ballState(ctx, sc)
	assert.Equal(t, vmath.Vec3F{X: 150, Y: -150}, vel)
	assert.Equal(t, 2, ctx.World.Resource.Events.Len(), "both contacts still reported")
}

func TestCollisionEventsOnContactStart(t *testing.T) {
	ctx, sc, _ := newTestContext(t)
	events := ctx.World.Resource.Events
	cs := NewCollisionSystem(ctx)

	placeBall(t, ctx, sc, 0, 340)
	cs.Update(ctx.World, 0)
	require.Equal(t, 1, events.Len())
	ev := events.Events()[0]
	assert.Equal(t, sc.Walls[component.WallTop], ev.Wall)
	assert.Equal(t, component.WallTop, ev.Role)
	assert.Equal(t, component.ColliderSolid, ev.Collider)

	events.Reset()
	cs.Update(ctx.World, 0)
	assert.Equal(t, 0, events.Len(), "ongoing contact is not a new bounce")

	placeBall(t, ctx, sc, 0, 0)
	cs.Update(ctx.World, 0)
	placeBall(t, ctx, sc, 660, 0)
	cs.Update(ctx.World, 0)
	require.Equal(t, 1, events.Len())
	assert.Equal(t, component.WallRight, events.Events()[0].Role)
	assert.Equal(t, component.ColliderScore, events.Events()[0].Collider)
}

func TestCollisionInvalidRoleIgnored(t *testing.T) {
	ctx, sc, logs := newTestContext(t)
	top := sc.Walls[component.WallTop]
	wc, _ := ctx.World.Components.Wall.Get(top)
	wc.Role = component.WallRoleCount
	ctx.World.Components.Wall.Set(top, wc)

	placeBall(t, ctx, sc, 0, 340)
	cs := NewCollisionSystem(ctx)
	cs.Update(ctx.World, 0)
	cs.Update(ctx.World, 0)

	_, vel := ballState(ctx, sc)
	assert.Equal(t, 150.0, vel.Y)
	assert.Equal(t, 1, logs.FilterMessage("dispatch miss").Len())
}

func TestCollisionWallWithoutSize(t *testing.T) {
	ctx, sc, logs := newTestContext(t)
	ctx.World.Components.Sprite.Remove(sc.Walls[component.WallTop])

	placeBall(t, ctx, sc, 0, 340)
	NewCollisionSystem(ctx).Update(ctx.World, 0)

	_, vel := ballState(ctx, sc)
	assert.Equal(t, 150.0, vel.Y)
	assert.Equal(t, 1, logs.FilterMessage("dispatch miss").Len())
}

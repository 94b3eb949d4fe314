package system

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

type contactKey struct {
	ball, wall core.Entity
}

type wallHit struct {
	entity core.Entity
	wall   component.WallComponent
	depth  float64
}

// CollisionSystem reflects the ball velocity off every wall its box overlaps
// Dispatch is by wall role: side walls flip X, top and bottom flip Y
// No push-out is applied, a ball still overlapping next frame flips again
type CollisionSystem struct {
	ballSize vmath.Vec2F
	contacts map[contactKey]struct{}
	hits     []wallHit
	misses   missLog
}

func NewCollisionSystem(ctx *engine.GameContext) *CollisionSystem {
	return &CollisionSystem{
		ballSize: vmath.Vec2F{X: parameter.BallCollisionSize, Y: parameter.BallCollisionSize},
		contacts: make(map[contactKey]struct{}),
		hits:     make([]wallHit, 0, component.WallRoleCount),
		misses:   newMissLog(ctx.Logger, "collision"),
	}
}

// Init forgets ongoing contacts
func (s *CollisionSystem) Init() {
	clear(s.contacts)
	s.misses.reset()
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionSystem) Update(world *engine.World, _ time.Duration) {
	c := &world.Components
	res := world.Resource
	walls := c.Wall.All()

	be, ball, btr, ok := resolveBall(world, &s.misses)
	if !ok {
		return
	}
	ballBox := vmath.BoxAt(btr.Translation, s.ballSize)

	s.hits = s.hits[:0]
	for _, we := range walls {
		key := contactKey{be, we}

		wallBox, ok := s.wallBox(world, we)
		if !ok || !ballBox.Overlaps(wallBox) {
			delete(s.contacts, key)
			continue
		}

		wc, _ := c.Wall.Get(we)
		if wc.Role >= component.WallRoleCount {
			s.misses.report(wallKey(we), fmt.Errorf("%w: entity %d has role %d", engine.ErrWallRoleMissing, we, wc.Role))
			continue
		}

		px, py := ballBox.Penetration(wallBox)
		depth := py
		if wc.Role.Vertical() {
			depth = px
		}
		s.hits = append(s.hits, wallHit{entity: we, wall: wc, depth: depth})

		if _, touching := s.contacts[key]; !touching {
			s.contacts[key] = struct{}{}
			res.Events.Push(engine.BounceEvent{
				Wall:     we,
				Role:     wc.Role,
				Collider: wc.Collider,
				Frame:    res.Time.FrameNumber,
			})
		}
	}

	respond := s.hits
	if res.Rules.DeepestWallOnly && len(respond) > 1 {
		deepest := 0
		for i := 1; i < len(respond); i++ {
			if respond[i].depth > respond[deepest].depth {
				deepest = i
			}
		}
		respond = respond[deepest : deepest+1]
	}

	for _, h := range respond {
		ball.Velocity = Reflect(ball.Velocity, h.wall.Role)
	}
	c.Ball.Set(be, ball)
}

// Reflect negates the velocity component facing the wall
func Reflect(v vmath.Vec3F, role component.WallRole) vmath.Vec3F {
	switch role {
	case component.WallLeft, component.WallRight:
		v.X = -v.X
	case component.WallTop, component.WallBottom:
		v.Y = -v.Y
	}
	return v
}

// wallBox derives a wall's box from its transform and sprite size
func (s *CollisionSystem) wallBox(world *engine.World, we core.Entity) (vmath.AABB, bool) {
	c := &world.Components
	tr, ok := c.Transform.Get(we)
	if !ok {
		s.misses.report(wallKey(we), fmt.Errorf("%w: entity %d has no transform", engine.ErrWallRoleMissing, we))
		return vmath.AABB{}, false
	}
	sp, ok := c.Sprite.Get(we)
	if !ok || !sp.HasSize() {
		s.misses.report(wallKey(we), fmt.Errorf("%w: entity %d has no sized sprite", engine.ErrWallRoleMissing, we))
		return vmath.AABB{}, false
	}
	return vmath.BoxAt(tr.Translation, sp.Size), true
}

func wallKey(e core.Entity) string {
	return "wall-" + strconv.FormatUint(uint64(e), 10)
}

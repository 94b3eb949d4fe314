package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
)

// RoleIndex resolves typed roles to entities by direct indexed lookup
type RoleIndex struct {
	ball    core.Entity
	paddles [component.PaddleRoleCount]core.Entity
	walls   [component.WallRoleCount]core.Entity
}

func NewRoleIndex() *RoleIndex {
	return &RoleIndex{}
}

// SetBall binds the ball
func (r *RoleIndex) SetBall(e core.Entity) {
	r.ball = e
}

// Ball returns the bound ball or ErrBallNotFound
func (r *RoleIndex) Ball() (core.Entity, error) {
	if r.ball == 0 {
		return 0, ErrBallNotFound
	}
	return r.ball, nil
}

// SetPaddle binds a paddle role, an out-of-range role is ignored
func (r *RoleIndex) SetPaddle(role component.PaddleRole, e core.Entity) {
	if role < component.PaddleRoleCount {
		r.paddles[role] = e
	}
}

// SetWall binds a wall role, an out-of-range role is ignored
func (r *RoleIndex) SetWall(role component.WallRole, e core.Entity) {
	if role < component.WallRoleCount {
		r.walls[role] = e
	}
}

// Paddle returns the entity bound to role or ErrPaddleNotFound
func (r *RoleIndex) Paddle(role component.PaddleRole) (core.Entity, error) {
	if role >= component.PaddleRoleCount || r.paddles[role] == 0 {
		return 0, fmt.Errorf("%w: %s", ErrPaddleNotFound, role)
	}
	return r.paddles[role], nil
}

// Wall returns the entity bound to role or ErrWallRoleMissing
func (r *RoleIndex) Wall(role component.WallRole) (core.Entity, error) {
	if role >= component.WallRoleCount || r.walls[role] == 0 {
		return 0, fmt.Errorf("%w: %s", ErrWallRoleMissing, role)
	}
	return r.walls[role], nil
}

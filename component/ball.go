package component

import "github.com/lixenwraith/vi-pong/vmath"

// BallComponent owns the ball velocity in units per second
type BallComponent struct {
	Velocity vmath.Vec3F
}

package component

import "github.com/lixenwraith/vi-pong/vmath"

// TransformComponent places an entity in world space
// Translation.Z orders rendering only and never takes part in physics
type TransformComponent struct {
	Translation vmath.Vec3F
	Scale       vmath.Vec3F
}

// NewTransform returns a transform at pos with unit scale
func NewTransform(pos vmath.Vec3F) TransformComponent {
	return TransformComponent{
		Translation: pos,
		Scale:       vmath.Vec3F{X: 1, Y: 1, Z: 1},
	}
}

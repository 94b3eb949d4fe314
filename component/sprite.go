package component

import (
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/vmath"
)

// SpriteComponent is the visual description handed to the render host
// Either Texture is set (textured sprite scaled by transform) or Size is set (solid rectangle)
type SpriteComponent struct {
	Color   core.Color
	Size    vmath.Vec2F
	Texture string
}

// HasSize reports whether the sprite carries an explicit rectangle size
func (s SpriteComponent) HasSize() bool {
	return s.Size.X > 0 && s.Size.Y > 0
}

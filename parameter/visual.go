package parameter

import "github.com/lixenwraith/vi-pong/core"

// Sprite colors
var (
	ColorPlayerOne = core.Color{R: 0.25, G: 0.25, B: 0.75}
	ColorPlayerTwo = core.Color{R: 0.76, G: 0.12, B: 0.12}
	ColorWall      = core.Color{R: 0.76, G: 0.12, B: 0.12}
	ColorBall      = core.Color{R: 1.0, G: 1.0, B: 1.0}
)

// Terminal glyphs
const (
	GlyphBlock = '█'
	GlyphBall  = '●'
)

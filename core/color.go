package core

// Color is a linear RGB color with channels in 0..1
type Color struct {
	R, G, B float64
}

// RGB8 converts to 8-bit channels, clamping out-of-range values
func (c Color) RGB8() (r, g, b int32) {
	return channel8(c.R), channel8(c.G), channel8(c.B)
}

func channel8(v float64) int32 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return int32(v*255 + 0.5)
}

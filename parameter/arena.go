package parameter

// Arena geometry in world units, origin at the arena center, Y up
const (
	ArenaWidth  = 1280.0
	ArenaHeight = 720.0

	// WallThickness is the height of the top and bottom strips
	WallThickness = 30.0

	WallTopY    = 345.0
	WallBottomY = -345.0

	// Side walls are intentionally asymmetric
	WallLeftX      = -690.0
	WallLeftWidth  = 100.0
	WallRightX     = 650.0
	WallRightWidth = 60.0
)

// Wall names kept for display and logging
const (
	NameWallTop    = "WallTop"
	NameWallBottom = "WallBottom"
	NameWallLeft   = "WallLeft"
	NameWallRight  = "WallRight"
)

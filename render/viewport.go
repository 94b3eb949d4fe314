package render

import (
	"math"

	"github.com/lixenwraith/vi-pong/parameter"
)

// Viewport projects world units (origin at arena center, Y up) onto a cell grid
type Viewport struct {
	Cols, Rows int
	OffsetY    int // first grid row used by the arena
}

// ToCell maps a world point to a column and row, unclipped
func (v Viewport) ToCell(x, y float64) (col, row int) {
	col = int(math.Floor((x + parameter.ArenaWidth/2) / parameter.ArenaWidth * float64(v.Cols)))
	row = int(math.Floor((parameter.ArenaHeight/2-y)/parameter.ArenaHeight*float64(v.Rows))) + v.OffsetY
	return col, row
}

// Clip bounds a cell to the viewport, ok is false when the cell lies outside
func (v Viewport) Clip(col, row int) (int, int, bool) {
	inside := col >= 0 && col < v.Cols && row >= v.OffsetY && row < v.OffsetY+v.Rows
	col = max(0, min(col, v.Cols-1))
	row = max(v.OffsetY, min(row, v.OffsetY+v.Rows-1))
	return col, row, inside
}

// CellRect returns the clipped cell rectangle covering a world box, empty when fully outside
func (v Viewport) CellRect(minX, minY, maxX, maxY float64) (c0, r0, c1, r1 int, ok bool) {
	c0, r0 = v.ToCell(minX, maxY)
	c1, r1 = v.ToCell(maxX, minY)
	if c1 < 0 || c0 >= v.Cols || r1 < v.OffsetY || r0 >= v.OffsetY+v.Rows {
		return 0, 0, 0, 0, false
	}
	c0, r0, _ = v.Clip(c0, r0)
	c1, r1, _ = v.Clip(c1, r1)
	return c0, r0, c1, r1, true
}

package vmath

// Vec2F is a float64 2D extent (width, height)
type Vec2F struct {
	X, Y float64
}

// AABB is an axis-aligned box stored as center and half extents on the XY plane
type AABB struct {
	CenterX, CenterY float64
	HalfW, HalfH     float64
}

// BoxAt builds an AABB from a center position and a full size, Z is ignored
func BoxAt(center Vec3F, size Vec2F) AABB {
	return AABB{
		CenterX: center.X,
		CenterY: center.Y,
		HalfW:   size.X / 2,
		HalfH:   size.Y / 2,
	}
}

func (b AABB) MinX() float64 { return b.CenterX - b.HalfW }
func (b AABB) MaxX() float64 { return b.CenterX + b.HalfW }
func (b AABB) MinY() float64 { return b.CenterY - b.HalfH }
func (b AABB) MaxY() float64 { return b.CenterY + b.HalfH }

// Overlaps reports intersection on both axes, touching edges count as overlap
func (b AABB) Overlaps(o AABB) bool {
	return b.MinX() <= o.MaxX() && b.MaxX() >= o.MinX() &&
		b.MinY() <= o.MaxY() && b.MaxY() >= o.MinY()
}

// Penetration returns the overlap depth on each axis, zero or negative when separated on that axis
func (b AABB) Penetration(o AABB) (x, y float64) {
	x = min(b.MaxX(), o.MaxX()) - max(b.MinX(), o.MinX())
	y = min(b.MaxY(), o.MaxY()) - max(b.MinY(), o.MinY())
	return x, y
}

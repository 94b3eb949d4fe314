package vmath

// Vec3F is a float64 3D vector used for world-space positions and velocities
type Vec3F struct {
	X, Y, Z float64
}

// V3FMulAdd returns p + v*s, the explicit-Euler step used by integrators
func V3FMulAdd(p, v Vec3F, s float64) Vec3F {
	return Vec3F{p.X + v.X*s, p.Y + v.Y*s, p.Z + v.Z*s}
}

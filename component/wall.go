package component

// ColliderKind distinguishes bounce-only walls from scoring walls
type ColliderKind uint8

const (
	ColliderSolid ColliderKind = iota
	ColliderScore
)

func (k ColliderKind) String() string {
	if k == ColliderScore {
		return "Score"
	}
	return "Solid"
}

// WallRole identifies a wall's side of the arena and so its bounce axis
type WallRole uint8

const (
	WallTop WallRole = iota
	WallBottom
	WallLeft
	WallRight

	WallRoleCount
)

func (r WallRole) String() string {
	switch r {
	case WallTop:
		return "Top"
	case WallBottom:
		return "Bottom"
	case WallLeft:
		return "Left"
	case WallRight:
		return "Right"
	default:
		return "WallRole(?)"
	}
}

// Vertical reports whether the wall runs along Y, such walls reflect the X velocity
func (r WallRole) Vertical() bool {
	return r == WallLeft || r == WallRight
}

// WallComponent marks an arena boundary
type WallComponent struct {
	Collider ColliderKind
	Role     WallRole
}

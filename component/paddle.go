package component

// PaddleRole identifies which player controls a paddle
type PaddleRole uint8

const (
	PlayerOne PaddleRole = iota
	PlayerTwo

	PaddleRoleCount
)

func (r PaddleRole) String() string {
	switch r {
	case PlayerOne:
		return "PlayerOne"
	case PlayerTwo:
		return "PlayerTwo"
	default:
		return "PaddleRole(?)"
	}
}

// PaddleComponent tags a player-controlled entity
type PaddleComponent struct {
	Role PaddleRole
}

// ScoreComponent counts goals credited to a paddle
type ScoreComponent struct {
	Points uint32
}

// NameComponent is a display label, not an identity key
type NameComponent struct {
	Name string
}

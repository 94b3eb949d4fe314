package input

// Action is a logical input the game reacts to
type Action uint8

const (
	ActionNone Action = iota
	ActionP1Up
	ActionP1Down
	ActionP2Up
	ActionP2Down
	ActionQuit

	ActionCount
)

// actionNames maps canonical config names to actions
var actionNames = map[string]Action{
	"p1_up":   ActionP1Up,
	"p1_down": ActionP1Down,
	"p2_up":   ActionP2Up,
	"p2_down": ActionP2Down,
	"quit":    ActionQuit,
}

// ActionByName resolves a config action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionNames[name]
	return a, ok
}

func (a Action) String() string {
	for name, action := range actionNames {
		if action == a {
			return name
		}
	}
	return "none"
}

// opposite returns the action that cancels a movement, ActionNone for non-movement
func (a Action) opposite() Action {
	switch a {
	case ActionP1Up:
		return ActionP1Down
	case ActionP1Down:
		return ActionP1Up
	case ActionP2Up:
		return ActionP2Down
	case ActionP2Down:
		return ActionP2Up
	default:
		return ActionNone
	}
}

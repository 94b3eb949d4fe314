package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// State tracks which actions are held
// Terminals report presses and auto-repeat but no release, so a press counts as held for a hold window
type State struct {
	clock   Clock
	hold    time.Duration
	pressed [ActionCount]time.Time
}

// NewState creates a state whose presses last for hold
func NewState(clock Clock, hold time.Duration) *State {
	return &State{clock: clock, hold: hold}
}

// Press marks the action as held from now, pressing a direction releases its opposite
func (s *State) Press(a Action) {
	if a == ActionNone || a >= ActionCount {
		return
	}
	s.pressed[a] = s.clock.Now()
	if o := a.opposite(); o != ActionNone {
		s.pressed[o] = time.Time{}
	}
}

// ReleaseAll clears every held action
func (s *State) ReleaseAll() {
	s.pressed = [ActionCount]time.Time{}
}

// Held reports whether the action was pressed within the hold window
func (s *State) Held(a Action) bool {
	if a >= ActionCount {
		return false
	}
	t := s.pressed[a]
	if t.IsZero() {
		return false
	}
	return s.clock.Now().Sub(t) < s.hold
}

// HandleKey applies a key event through the table and returns the resolved action
func (s *State) HandleKey(ev *tcell.EventKey, kt *KeyTable) (Action, bool) {
	a, ok := kt.Lookup(ev)
	if !ok {
		return ActionNone, false
	}
	s.Press(a)
	return a, true
}

// @focus: #sys { io } #input { keys }
package input

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Binding identifies a physical key; Rune is set only when Key is tcell.KeyRune
type Binding struct {
	Key  tcell.Key
	Rune rune
}

// specialKeys maps config key names to non-rune tcell keys
var specialKeys = map[string]tcell.Key{
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"enter":  tcell.KeyEnter,
	"tab":    tcell.KeyTab,
	"ctrl-c": tcell.KeyCtrlC,
	"ctrl-q": tcell.KeyCtrlQ,
}

// ParseBinding resolves a key name such as "w", "up" or "ctrl-c"
// Single letters are case-insensitive
func ParseBinding(name string) (Binding, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if k, ok := specialKeys[lower]; ok {
		return Binding{Key: k}, nil
	}
	if lower == "space" {
		return Binding{Key: tcell.KeyRune, Rune: ' '}, nil
	}
	runes := []rune(lower)
	if len(runes) == 1 && unicode.IsPrint(runes[0]) {
		return Binding{Key: tcell.KeyRune, Rune: runes[0]}, nil
	}
	return Binding{}, fmt.Errorf("unknown key name %q", name)
}

// KeyTable maps physical keys to actions
type KeyTable struct {
	bindings map[Binding]Action
}

// DefaultKeyNames is the classic layout: W/S for player one, arrows for player two
func DefaultKeyNames() map[Action][]string {
	return map[Action][]string{
		ActionP1Up:   {"w"},
		ActionP1Down: {"s"},
		ActionP2Up:   {"up"},
		ActionP2Down: {"down"},
		ActionQuit:   {"esc", "ctrl-c"},
	}
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	kt, err := NewKeyTable(DefaultKeyNames())
	if err != nil {
		panic(err)
	}
	return kt
}

// NewKeyTable builds a table from key names per action
// A key bound to two different actions is rejected
func NewKeyTable(names map[Action][]string) (*KeyTable, error) {
	kt := &KeyTable{bindings: make(map[Binding]Action)}

	// Deterministic order so conflict errors are stable
	actions := make([]Action, 0, len(names))
	for a := range names {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	for _, a := range actions {
		for _, name := range names[a] {
			b, err := ParseBinding(name)
			if err != nil {
				return nil, fmt.Errorf("action %s: %w", a, err)
			}
			if prev, ok := kt.bindings[b]; ok && prev != a {
				return nil, fmt.Errorf("key %q bound to both %s and %s", name, prev, a)
			}
			kt.bindings[b] = a
		}
	}
	return kt, nil
}

// Lookup maps a key event to an action
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Action, bool) {
	b := Binding{Key: ev.Key()}
	if ev.Key() == tcell.KeyRune {
		b.Rune = unicode.ToLower(ev.Rune())
	}
	a, ok := kt.bindings[b]
	return a, ok
}

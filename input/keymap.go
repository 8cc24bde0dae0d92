// Package input translates terminal key and pointer events into abstract
// navigation requests.
package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/focusnav/internal/logging/events"
	"github.com/atomicstack/focusnav/navigation"
)

// Keymap binds key names (as reported by tea.KeyMsg.String) to navigation
// requests.
type Keymap struct {
	Up, Down, Left, Right []string
	Action                []string
	Cancel                []string
	Next, Previous        []string
	Unlock                []string
}

// DefaultKeymap binds arrows and WASD to movement, enter and space to
// activation, escape and backspace to cancel, tab and e/q to scope cycling,
// and f12 to unlock.
func DefaultKeymap() Keymap {
	return Keymap{
		Up:       []string{"up", "w"},
		Down:     []string{"down", "s"},
		Left:     []string{"left", "a"},
		Right:    []string{"right", "d"},
		Action:   []string{"enter", " "},
		Cancel:   []string{"esc", "backspace"},
		Next:     []string{"tab", "e"},
		Previous: []string{"shift+tab", "q"},
		Unlock:   []string{"f12"},
	}
}

// Request maps a key message to a navigation request. The second return is
// false for keys the map does not bind.
func (k Keymap) Request(msg tea.KeyMsg) (navigation.Request, bool) {
	key := msg.String()
	req, ok := k.lookup(key)
	if ok {
		events.Input.Key(key, req.String())
	}
	return req, ok
}

func (k Keymap) lookup(key string) (navigation.Request, bool) {
	switch {
	case contains(k.Up, key):
		return navigation.Move(navigation.North), true
	case contains(k.Down, key):
		return navigation.Move(navigation.South), true
	case contains(k.Left, key):
		return navigation.Move(navigation.West), true
	case contains(k.Right, key):
		return navigation.Move(navigation.East), true
	case contains(k.Action, key):
		return navigation.Action(), true
	case contains(k.Cancel, key):
		return navigation.Cancel(), true
	case contains(k.Next, key):
		return navigation.ScopeMove(navigation.Next), true
	case contains(k.Previous, key):
		return navigation.ScopeMove(navigation.Previous), true
	case contains(k.Unlock, key):
		return navigation.Unlock(), true
	}
	return navigation.Request{}, false
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

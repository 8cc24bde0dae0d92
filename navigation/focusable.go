package navigation

import "fmt"

// FocusState is the visual/active state of a Focusable. It is driven
// exclusively by Apply reacting to FocusChanged events, with the single
// exception of Blocked, which only an explicit host call can set or clear.
type FocusState int

const (
	// StateInert is the resting state: not focused, not on the breadcrumb,
	// not remembered.
	StateInert FocusState = iota
	// StatePrioritized marks the node that regains focus when navigation
	// returns to its menu. At most one per menu.
	StatePrioritized
	// StateFocused marks the single currently focused node. All requests
	// resolve relative to it.
	StateFocused
	// StateActive marks nodes on the breadcrumb path from the root menu to
	// the focused node.
	StateActive
	// StateBlocked excludes a node from all selection. It keeps its slot in
	// the tree but can never hold focus.
	StateBlocked
)

func (s FocusState) String() string {
	switch s {
	case StateInert:
		return "inert"
	case StatePrioritized:
		return "prioritized"
	case StateFocused:
		return "focused"
	case StateActive:
		return "active"
	case StateBlocked:
		return "blocked"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// FocusAction is what an Action request does when a Focusable is focused.
type FocusAction int

const (
	// ActionNormal descends into the menu reachable from this focusable,
	// if any.
	ActionNormal FocusAction = iota
	// ActionCancel reroutes the Action request into a Cancel.
	ActionCancel
	// ActionLock freezes the navigation system until an Unlock request.
	ActionLock
)

func (a FocusAction) String() string {
	switch a {
	case ActionNormal:
		return "normal"
	case ActionCancel:
		return "cancel"
	case ActionLock:
		return "lock"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Focusable is the navigation state attached to a leaf navigable node.
type Focusable struct {
	State  FocusState
	Action FocusAction
}

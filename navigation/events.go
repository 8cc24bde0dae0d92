package navigation

import "fmt"

// NodeID identifies a node in the host graph. The zero value is NoNode and
// never refers to a real node.
type NodeID int64

// NoNode is the absent-node sentinel.
const NoNode NodeID = 0

// Vec is a 2D position. The Y axis points up, matching the coordinate
// conventions of the default spatial strategy.
type Vec struct {
	X, Y float64
}

// Direction is one of the four cardinal movement directions for Move
// requests.
type Direction int

const (
	South Direction = iota
	North
	East
	West
)

func (d Direction) String() string {
	switch d {
	case South:
		return "south"
	case North:
		return "north"
	case East:
		return "east"
	case West:
		return "west"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Contains reports whether other falls inside the 90° cone of d centered on
// reference. The four cones partition the plane around reference; offsets
// lying exactly on a |dy| == |dx| diagonal resolve to the North/South cones,
// so any non-zero offset belongs to exactly one direction.
func (d Direction) Contains(reference, other Vec) bool {
	dx := other.X - reference.X
	dy := other.Y - reference.Y
	switch d {
	case North:
		return dy > 0 && dy >= abs(dx)
	case South:
		return dy < 0 && -dy >= abs(dx)
	case East:
		return dx > 0 && dx > abs(dy)
	case West:
		return dx < 0 && -dx > abs(dy)
	}
	return false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// ScopeDirection is the movement direction for ScopeMove requests.
type ScopeDirection int

const (
	Next ScopeDirection = iota
	Previous
)

func (d ScopeDirection) String() string {
	if d == Next {
		return "next"
	}
	return "previous"
}

// RequestKind discriminates Request values.
type RequestKind int

const (
	RequestMove RequestKind = iota
	RequestScopeMove
	RequestAction
	RequestCancel
	RequestFocusOn
	RequestLock
	RequestUnlock
)

func (k RequestKind) String() string {
	switch k {
	case RequestMove:
		return "move"
	case RequestScopeMove:
		return "scope-move"
	case RequestAction:
		return "action"
	case RequestCancel:
		return "cancel"
	case RequestFocusOn:
		return "focus-on"
	case RequestLock:
		return "lock"
	case RequestUnlock:
		return "unlock"
	}
	return fmt.Sprintf("request(%d)", int(k))
}

// Request is one abstract navigation request, as produced by an
// input-mapping layer. Use the constructor functions rather than filling
// the struct directly.
type Request struct {
	Kind   RequestKind
	Dir    Direction
	Scope  ScopeDirection
	Target NodeID
}

// Move requests a spatial move in the given direction within the enclosing
// 2D menu.
func Move(dir Direction) Request {
	return Request{Kind: RequestMove, Dir: dir}
}

// ScopeMove requests a sequential move within the enclosing scope menu.
func ScopeMove(dir ScopeDirection) Request {
	return Request{Kind: RequestScopeMove, Scope: dir}
}

// Action activates the focused node: descend into its menu, cancel, or lock
// depending on its FocusAction.
func Action() Request {
	return Request{Kind: RequestAction}
}

// Cancel returns focus to the parent of the enclosing menu.
func Cancel() Request {
	return Request{Kind: RequestCancel}
}

// FocusOn requests focus on an arbitrary focusable node.
func FocusOn(target NodeID) Request {
	return Request{Kind: RequestFocusOn, Target: target}
}

// Lock freezes the navigation system until an Unlock request.
func Lock() Request {
	return Request{Kind: RequestLock}
}

// Unlock releases a lock previously set by Lock or an ActionLock focusable.
func Unlock() Request {
	return Request{Kind: RequestUnlock}
}

func (r Request) String() string {
	switch r.Kind {
	case RequestMove:
		return fmt.Sprintf("move(%s)", r.Dir)
	case RequestScopeMove:
		return fmt.Sprintf("scope-move(%s)", r.Scope)
	case RequestFocusOn:
		return fmt.Sprintf("focus-on(%d)", r.Target)
	default:
		return r.Kind.String()
	}
}

// LockReason records what locked the navigation system. Focusable is the
// ActionLock node that triggered the lock, or NoNode for an explicit Lock
// request.
type LockReason struct {
	Focusable NodeID
}

// Explicit reports whether the lock came from a Lock request rather than an
// ActionLock focusable.
func (r LockReason) Explicit() bool {
	return r.Focusable == NoNode
}

func (r LockReason) String() string {
	if r.Explicit() {
		return "explicit"
	}
	return fmt.Sprintf("focusable(%d)", r.Focusable)
}

// EventKind discriminates Event values.
type EventKind int

const (
	// EventFocusChanged reports a successful focus change. From holds the
	// previous breadcrumb, To the new one; both are non-empty and ordered
	// most specific first (the focused node leads).
	EventFocusChanged EventKind = iota
	// EventNoChanges reports a request that had no effect (dead end,
	// invalid direction for the menu type, unlock while unlocked).
	EventNoChanges
	// EventLocked reports that the navigation system froze.
	EventLocked
	// EventUnlocked reports that the navigation system resumed.
	EventUnlocked
)

func (k EventKind) String() string {
	switch k {
	case EventFocusChanged:
		return "focus-changed"
	case EventNoChanges:
		return "no-changes"
	case EventLocked:
		return "locked"
	case EventUnlocked:
		return "unlocked"
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is the outcome of one resolution.
type Event struct {
	Kind EventKind

	// From and To are set for EventFocusChanged; From alone for
	// EventNoChanges.
	From []NodeID
	To   []NodeID

	// Request echoes the ineffective request for EventNoChanges.
	Request Request

	// Reason is set for EventLocked and EventUnlocked.
	Reason LockReason
}

// focusChanged builds a FocusChanged event with a single-element To list,
// the common case for in-menu movement.
func focusChanged(to NodeID, from []NodeID) Event {
	return Event{Kind: EventFocusChanged, From: from, To: []NodeID{to}}
}

func noChanges(from []NodeID, req Request) Event {
	return Event{Kind: EventNoChanges, From: from, Request: req}
}

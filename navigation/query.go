package navigation

// Query is the read-only view of the menu graph consumed by Resolve. The
// graph package provides the default arena-backed implementation; hosts
// with their own scene graph can implement it directly.
//
// All reads for one resolution complete before any write: implementations
// must not be mutated while a Resolve call is in flight.
type Query interface {
	// Children returns the ordered child nodes of a node.
	Children(NodeID) []NodeID
	// Parent returns the structural parent of a node, if any.
	Parent(NodeID) (NodeID, bool)
	// Focusable returns the Focusable attached to a node, if any.
	Focusable(NodeID) (Focusable, bool)
	// Menu returns the Menu attached to a node, if any.
	Menu(NodeID) (Menu, bool)
	// Position returns a node's 2D position. Only the spatial strategy
	// needs it; implementations backing purely sequential menus may always
	// report false.
	Position(NodeID) (Vec, bool)
	// Focusables returns every focusable node in declaration order. Used
	// for the implicit flat sibling set when no menu encloses the focused
	// node, and by driving loops to pick a first focus.
	Focusables() []NodeID
	// Menus returns every menu node in declaration order. Used to find the
	// menu a focusable descends into (the menu whose FocusParent it is).
	Menus() []NodeID
}

// Mutable extends Query with the two writes Apply needs.
type Mutable interface {
	Query
	// SetFocusState updates a focusable's state. Implementations must keep
	// Blocked sticky: state changes on a Blocked node are ignored so that
	// only an explicit unblock can clear it.
	SetFocusState(NodeID, FocusState)
	// SetActiveChild updates a menu's cached active child.
	SetActiveChild(menu, child NodeID)
}

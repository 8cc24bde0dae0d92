// Package graph provides the default arena-backed menu tree consumed by the
// navigation resolver. Nodes are identified by integer ids handed out in
// spawn order; the tree implements both navigation.Query and
// navigation.Mutable.
package graph

import (
	"github.com/atomicstack/focusnav/navigation"
)

type node struct {
	parent   navigation.NodeID
	children []navigation.NodeID

	focusable *navigation.Focusable
	menu      *navigation.Menu

	pos    navigation.Vec
	hasPos bool

	size    navigation.Vec
	hasSize bool

	name   string
	marker string
}

// Tree is an arena of nodes. Build one with a Builder; a zero Tree is empty
// and useless.
type Tree struct {
	// nodes[0] is a placeholder so ids index the slice directly.
	nodes      []node
	focusables []navigation.NodeID
	menus      []navigation.NodeID
}

func (t *Tree) node(id navigation.NodeID) *node {
	if id <= 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return &t.nodes[id]
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	if len(t.nodes) == 0 {
		return 0
	}
	return len(t.nodes) - 1
}

// Children returns the ordered child nodes of id.
func (t *Tree) Children(id navigation.NodeID) []navigation.NodeID {
	if n := t.node(id); n != nil {
		return n.children
	}
	return nil
}

// Parent returns the structural parent of id.
func (t *Tree) Parent(id navigation.NodeID) (navigation.NodeID, bool) {
	if n := t.node(id); n != nil && n.parent != navigation.NoNode {
		return n.parent, true
	}
	return navigation.NoNode, false
}

// Focusable returns the focusable attached to id, if any.
func (t *Tree) Focusable(id navigation.NodeID) (navigation.Focusable, bool) {
	if n := t.node(id); n != nil && n.focusable != nil {
		return *n.focusable, true
	}
	return navigation.Focusable{}, false
}

// Menu returns the menu attached to id, if any.
func (t *Tree) Menu(id navigation.NodeID) (navigation.Menu, bool) {
	if n := t.node(id); n != nil && n.menu != nil {
		return *n.menu, true
	}
	return navigation.Menu{}, false
}

// Position returns the 2D position of id, if one was declared.
func (t *Tree) Position(id navigation.NodeID) (navigation.Vec, bool) {
	if n := t.node(id); n != nil && n.hasPos {
		return n.pos, true
	}
	return navigation.Vec{}, false
}

// Size returns the declared extent of id. Pointer hit testing uses it.
func (t *Tree) Size(id navigation.NodeID) (navigation.Vec, bool) {
	if n := t.node(id); n != nil && n.hasSize {
		return n.size, true
	}
	return navigation.Vec{}, false
}

// Focusables returns every focusable node in spawn order.
func (t *Tree) Focusables() []navigation.NodeID {
	return t.focusables
}

// Menus returns every menu node in spawn order.
func (t *Tree) Menus() []navigation.NodeID {
	return t.menus
}

// Name returns the name declared for id, or "".
func (t *Tree) Name(id navigation.NodeID) string {
	if n := t.node(id); n != nil {
		return n.name
	}
	return ""
}

// FindByName returns the node declared with the given name, or NoNode.
func (t *Tree) FindByName(name string) navigation.NodeID {
	if name == "" {
		return navigation.NoNode
	}
	for id := 1; id < len(t.nodes); id++ {
		if t.nodes[id].name == name {
			return navigation.NodeID(id)
		}
	}
	return navigation.NoNode
}

// Focused returns the node currently in StateFocused, or NoNode before the
// first resolution.
func (t *Tree) Focused() navigation.NodeID {
	for _, id := range t.focusables {
		if t.nodes[id].focusable.State == navigation.StateFocused {
			return id
		}
	}
	return navigation.NoNode
}

// SetFocusState updates a focusable's state. Blocked is sticky: the call is
// ignored on a blocked node, so only SetBlocked can clear that state.
func (t *Tree) SetFocusState(id navigation.NodeID, state navigation.FocusState) {
	n := t.node(id)
	if n == nil || n.focusable == nil {
		return
	}
	if n.focusable.State == navigation.StateBlocked {
		return
	}
	n.focusable.State = state
}

// SetBlocked blocks or unblocks a focusable. Unblocking leaves the node
// Inert; it does not restore whatever state blocking displaced.
func (t *Tree) SetBlocked(id navigation.NodeID, blocked bool) {
	n := t.node(id)
	if n == nil || n.focusable == nil {
		return
	}
	if blocked {
		n.focusable.State = navigation.StateBlocked
	} else if n.focusable.State == navigation.StateBlocked {
		n.focusable.State = navigation.StateInert
	}
}

// SetActiveChild updates a menu's cached active child.
func (t *Tree) SetActiveChild(menu, child navigation.NodeID) {
	n := t.node(menu)
	if n == nil || n.menu == nil {
		return
	}
	n.menu.ActiveChild = child
}

package graph

import "github.com/atomicstack/focusnav/navigation"

// SetMenuMarker tags a menu. PropagateMarkers copies the tag onto the
// menu's own focusables so observers can tell which menu a focus event
// belongs to without walking the tree.
func (t *Tree) SetMenuMarker(menu navigation.NodeID, marker string) {
	if n := t.node(menu); n != nil && n.menu != nil {
		n.marker = marker
	}
}

// Marker returns the tag on a node, either set directly on a menu or
// copied onto a focusable by PropagateMarkers.
func (t *Tree) Marker(id navigation.NodeID) string {
	if n := t.node(id); n != nil {
		return n.marker
	}
	return ""
}

// PropagateMarkers copies each menu's marker onto the focusables that
// belong to it. Nested menus keep their own markers; propagation stops at
// their boundary the same way sibling collection does.
func (t *Tree) PropagateMarkers() {
	for _, id := range t.menus {
		marker := t.node(id).marker
		if marker == "" {
			continue
		}
		for _, f := range navigation.MenuFocusables(id, t) {
			t.node(f).marker = marker
		}
	}
}

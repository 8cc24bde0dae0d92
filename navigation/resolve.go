package navigation

import (
	"fmt"

	"github.com/atomicstack/focusnav/internal/logging/events"
)

// Resolve computes the outcome of one navigation request relative to the
// currently focused node. It reads the graph through q, delegates 2D
// movement to strat (DefaultStrategy when nil), and only touches lock for
// the Lock/Unlock request kinds. The graph itself is never mutated; apply
// the returned event with Apply.
//
// Resolve never fails on well-formed graphs. It panics on the two fatal
// configuration errors: a cycle in the menu FocusParent links, and a menu
// with no focusable children. Both mean the caller mis-declared the menu
// graph, and continuing would loop or corrupt the breadcrumb.
func Resolve(focused NodeID, req Request, q Query, strat Strategy, lock *NavLock) Event {
	if strat == nil {
		strat = DefaultStrategy{}
	}
	return resolve(focused, req, q, strat, lock, nil)
}

// resolve carries the breadcrumb accumulated across recursive calls
// (Action-as-Cancel rerouting and ScopeMove bubbling re-enter here).
func resolve(focused NodeID, req Request, q Query, strat Strategy, lock *NavLock, from []NodeID) Event {
	if _, ok := q.Focusable(focused); !ok {
		panic(fmt.Sprintf("navigation: resolution must start from a focusable node, got %d", focused))
	}
	for _, seen := range from {
		if seen == focused {
			panic(cycleMsg)
		}
	}
	from = append(from, focused)

	switch req.Kind {
	case RequestMove:
		menuID, menu, hasMenu := parentMenu(focused, q)
		wrap := true
		var siblings []NodeID
		if hasMenu {
			if menu.Setting.Scope {
				return noChanges(from, req)
			}
			wrap = menu.Setting.Wrap
			siblings = selectable(childrenFocusables(menuID, q), q)
		} else {
			// No enclosing menu: every focusable in the graph forms one
			// implicit flat sibling set, wrapping always.
			siblings = selectable(q.Focusables(), q)
		}
		to := strat.Nearest(focused, req.Dir, wrap, siblings, positionOf(q))
		if to == NoNode {
			return noChanges(from, req)
		}
		return focusChanged(to, from)

	case RequestScopeMove:
		menuID, menu, hasMenu := parentMenu(focused, q)
		if !hasMenu {
			return noChanges(from, req)
		}
		if !menu.Setting.Scope {
			// Bubble the request up to the scope menu enclosing this one.
			if menu.FocusParent == NoNode {
				return noChanges(from, req)
			}
			return resolve(menu.FocusParent, req, q, strat, lock, from)
		}
		siblings := selectable(childrenFocusables(menuID, q), q)
		to, ok := resolveScope(focused, req.Scope, menu.Setting.Wrap, siblings)
		if !ok {
			return noChanges(from, req)
		}
		toPath := []NodeID{to}
		if _, child, ok := childMenu(to, q); ok {
			// Land on the submenu's remembered leaf, not the container.
			toPath = append(focusDeep(child, q), to)
		}
		return Event{Kind: EventFocusChanged, From: from, To: toPath}

	case RequestAction:
		f, _ := q.Focusable(focused)
		switch f.Action {
		case ActionCancel:
			return resolve(focused, Cancel(), q, strat, lock, from[:len(from)-1])
		case ActionLock:
			reason := LockReason{Focusable: focused}
			lock.set(reason)
			return Event{Kind: EventLocked, Reason: reason}
		}
		_, child, ok := childMenu(focused, q)
		if !ok {
			return noChanges(from, req)
		}
		to := make([]NodeID, 0, len(from)+1)
		to = append(to, child.ActiveChild)
		to = append(to, from...)
		return Event{Kind: EventFocusChanged, From: from, To: to}

	case RequestCancel:
		_, menu, ok := parentMenu(focused, q)
		if !ok || menu.FocusParent == NoNode {
			return noChanges(from, req)
		}
		to := menu.FocusParent
		from = append(from, to)
		return focusChanged(to, from)

	case RequestFocusOn:
		if f, ok := q.Focusable(req.Target); !ok || f.State == StateBlocked {
			return noChanges(from, req)
		}
		fromPath := RootPath(focused, q)
		toPath := RootPath(req.Target, q)
		fromPath, toPath = trimCommonTail(fromPath, toPath)
		if sameIDs(fromPath, toPath) {
			return noChanges(from, req)
		}
		return Event{Kind: EventFocusChanged, From: fromPath, To: toPath}

	case RequestLock:
		if lock.IsLocked() {
			return noChanges(from, req)
		}
		reason := LockReason{}
		lock.set(reason)
		return Event{Kind: EventLocked, Reason: reason}

	case RequestUnlock:
		if reason, ok := lock.clear(); ok {
			return Event{Kind: EventUnlocked, Reason: reason}
		}
		events.Nav.SpuriousUnlock()
		return noChanges(from, req)
	}

	return noChanges(from, req)
}

const cycleMsg = "navigation: menu graph cycle detected; this panic prevented a stack " +
	"overflow, check the reachable-from declarations of your menus"

// parentMenu walks up structural parent links to the innermost menu
// containing node.
func parentMenu(node NodeID, q Query) (NodeID, Menu, bool) {
	parent, ok := q.Parent(node)
	if !ok {
		return NoNode, Menu{}, false
	}
	if menu, ok := q.Menu(parent); ok {
		return parent, menu, true
	}
	return parentMenu(parent, q)
}

// childMenu finds the menu reachable from node, i.e. the menu whose
// FocusParent is node.
func childMenu(node NodeID, q Query) (NodeID, Menu, bool) {
	for _, id := range q.Menus() {
		if menu, ok := q.Menu(id); ok && menu.FocusParent == node {
			return id, menu, true
		}
	}
	return NoNode, Menu{}, false
}

// childrenFocusables returns the focusables belonging to a menu: its direct
// focusable children first, then focusables nested under non-menu
// descendants. Recursion stops the moment a nested menu boundary is
// crossed; that menu's focusables belong to it, not to the ancestor.
func childrenFocusables(menu NodeID, q Query) []NodeID {
	siblings := collectFocusables(menu, q)
	if len(siblings) == 0 {
		panic(fmt.Sprintf("navigation: menu %d has no focusable children; every menu needs at least one", menu))
	}
	return siblings
}

// MenuFocusables returns the focusables belonging to a menu using the same
// traversal as resolution, without asserting non-emptiness. Graph builders
// use it to validate menus and pick initial active children.
func MenuFocusables(menu NodeID, q Query) []NodeID {
	return collectFocusables(menu, q)
}

func collectFocusables(node NodeID, q Query) []NodeID {
	children := q.Children(node)
	out := make([]NodeID, 0, len(children))
	for _, child := range children {
		if _, ok := q.Focusable(child); ok {
			out = append(out, child)
		}
	}
	for _, child := range children {
		if _, ok := q.Focusable(child); ok {
			continue
		}
		if _, ok := q.Menu(child); ok {
			continue
		}
		out = append(out, collectFocusables(child, q)...)
	}
	return out
}

// selectable drops Blocked focusables from a candidate set. A blocked node
// keeps its place in the tree but can never be navigated to.
func selectable(siblings []NodeID, q Query) []NodeID {
	out := make([]NodeID, 0, len(siblings))
	for _, id := range siblings {
		if f, ok := q.Focusable(id); ok && f.State != StateBlocked {
			out = append(out, id)
		}
	}
	return out
}

// RootPath returns the breadcrumb from node to its conceptual root,
// ascending through menu FocusParent links (not structural parent links),
// most specific first. Panics when the links form a cycle.
func RootPath(node NodeID, q Query) []NodeID {
	path := []NodeID{node}
	for {
		_, menu, ok := parentMenu(node, q)
		if !ok || menu.FocusParent == NoNode {
			return path
		}
		node = menu.FocusParent
		for _, seen := range path {
			if seen == node {
				panic(cycleMsg)
			}
		}
		path = append(path, node)
	}
}

// focusDeep descends through cached active children so that entering a
// menu lands on the previously visited leaf rather than a container. The
// returned path is deepest first.
func focusDeep(menu Menu, q Query) []NodeID {
	var path []NodeID
	for {
		last := menu.ActiveChild
		path = append([]NodeID{last}, path...)
		_, next, ok := childMenu(last, q)
		if !ok {
			return path
		}
		menu = next
	}
}

// trimCommonTail drops the longest common suffix of two breadcrumbs (most
// specific first), leaving only the divergent prefixes. When one breadcrumb
// is a suffix of the other, both are returned unchanged.
func trimCommonTail(v1, v2 []NodeID) ([]NodeID, []NodeID) {
	i1, i2 := len(v1)-1, len(v2)-1
	for {
		if v1[i1] != v2[i2] {
			return v1[:i1+1], v2[:i2+1]
		}
		if i1 == 0 || i2 == 0 {
			return v1, v2
		}
		i1--
		i2--
	}
}

// resolveScope picks the next or previous sibling by index arithmetic.
func resolveScope(focused NodeID, dir ScopeDirection, wrap bool, siblings []NodeID) (NodeID, bool) {
	idx := indexOf(focused, siblings)
	if idx < 0 {
		return NoNode, false
	}
	next, ok := resolveIndex(idx, wrap, dir, len(siblings)-1)
	if !ok {
		return NoNode, false
	}
	return siblings[next], true
}

// resolveIndex cycles past the ends only when wrap is set; otherwise the
// ends are dead ends.
func resolveIndex(from int, wrap bool, dir ScopeDirection, max int) (int, bool) {
	switch {
	case dir == Previous && from == 0:
		return max, wrap
	case dir == Previous:
		return from - 1, true
	case from == max:
		return 0, wrap
	default:
		return from + 1, true
	}
}

func indexOf(id NodeID, ids []NodeID) int {
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}
	return -1
}

func sameIDs(a, b []NodeID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func positionOf(q Query) func(NodeID) Vec {
	return func(id NodeID) Vec {
		pos, ok := q.Position(id)
		if !ok {
			panic(fmt.Sprintf("navigation: node %d has no position; focusables in 2D menus need one", id))
		}
		return pos
	}
}

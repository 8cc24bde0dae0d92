package navigation

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/focusnav/internal/logging"
)

type testNode struct {
	parent    NodeID
	children  []NodeID
	focusable *Focusable
	menu      *Menu
	pos       Vec
	hasPos    bool
}

// testGraph is a minimal Query/Mutable implementation so the resolver can
// be exercised without the graph package.
type testGraph struct {
	nextID NodeID
	nodes  map[NodeID]*testNode
	order  []NodeID
}

func newTestGraph() *testGraph {
	return &testGraph{nodes: map[NodeID]*testNode{}}
}

func (g *testGraph) spawn(parent NodeID) NodeID {
	g.nextID++
	id := g.nextID
	g.nodes[id] = &testNode{parent: parent}
	if parent != NoNode {
		g.nodes[parent].children = append(g.nodes[parent].children, id)
	}
	g.order = append(g.order, id)
	return id
}

func (g *testGraph) leaf(parent NodeID) NodeID {
	id := g.spawn(parent)
	g.nodes[id].focusable = &Focusable{}
	return id
}

func (g *testGraph) leafAt(parent NodeID, x, y float64) NodeID {
	id := g.leaf(parent)
	g.nodes[id].pos = Vec{X: x, Y: y}
	g.nodes[id].hasPos = true
	return id
}

func (g *testGraph) actionLeaf(parent NodeID, action FocusAction) NodeID {
	id := g.leaf(parent)
	g.nodes[id].focusable.Action = action
	return id
}

func (g *testGraph) declareMenu(id NodeID, menu Menu) {
	g.nodes[id].menu = &menu
}

func (g *testGraph) setActive(menu, child NodeID) {
	g.nodes[menu].menu.ActiveChild = child
}

func (g *testGraph) block(id NodeID) {
	g.nodes[id].focusable.State = StateBlocked
}

func (g *testGraph) Children(id NodeID) []NodeID {
	if n, ok := g.nodes[id]; ok {
		return n.children
	}
	return nil
}

func (g *testGraph) Parent(id NodeID) (NodeID, bool) {
	if n, ok := g.nodes[id]; ok && n.parent != NoNode {
		return n.parent, true
	}
	return NoNode, false
}

func (g *testGraph) Focusable(id NodeID) (Focusable, bool) {
	if n, ok := g.nodes[id]; ok && n.focusable != nil {
		return *n.focusable, true
	}
	return Focusable{}, false
}

func (g *testGraph) Menu(id NodeID) (Menu, bool) {
	if n, ok := g.nodes[id]; ok && n.menu != nil {
		return *n.menu, true
	}
	return Menu{}, false
}

func (g *testGraph) Position(id NodeID) (Vec, bool) {
	if n, ok := g.nodes[id]; ok && n.hasPos {
		return n.pos, true
	}
	return Vec{}, false
}

func (g *testGraph) Focusables() []NodeID {
	var out []NodeID
	for _, id := range g.order {
		if g.nodes[id].focusable != nil {
			out = append(out, id)
		}
	}
	return out
}

func (g *testGraph) Menus() []NodeID {
	var out []NodeID
	for _, id := range g.order {
		if g.nodes[id].menu != nil {
			out = append(out, id)
		}
	}
	return out
}

func (g *testGraph) SetFocusState(id NodeID, state FocusState) {
	n, ok := g.nodes[id]
	if !ok || n.focusable == nil || n.focusable.State == StateBlocked {
		return
	}
	n.focusable.State = state
}

func (g *testGraph) SetActiveChild(menu, child NodeID) {
	if n, ok := g.nodes[menu]; ok && n.menu != nil {
		n.menu.ActiveChild = child
	}
}

func wantFocusChanged(t *testing.T, ev Event, from, to []NodeID) {
	t.Helper()
	if ev.Kind != EventFocusChanged {
		t.Fatalf("expected focus change, got %s", ev.Kind)
	}
	if !sameIDs(ev.From, from) {
		t.Fatalf("from = %v, want %v", ev.From, from)
	}
	if !sameIDs(ev.To, to) {
		t.Fatalf("to = %v, want %v", ev.To, to)
	}
}

func wantNoChanges(t *testing.T, ev Event) {
	t.Helper()
	if ev.Kind != EventNoChanges {
		t.Fatalf("expected no changes, got %s", ev.Kind)
	}
}

func TestScopeMoveBounds(t *testing.T) {
	g := newTestGraph()
	menu := g.spawn(NoNode)
	items := []NodeID{g.leaf(menu), g.leaf(menu), g.leaf(menu), g.leaf(menu)}
	g.declareMenu(menu, Menu{Setting: MenuSetting{Scope: true}})
	g.setActive(menu, items[0])

	var lock NavLock
	ev := Resolve(items[0], ScopeMove(Previous), g, nil, &lock)
	wantNoChanges(t, ev)
	ev = Resolve(items[3], ScopeMove(Next), g, nil, &lock)
	wantNoChanges(t, ev)

	g.nodes[menu].menu.Setting.Wrap = true
	ev = Resolve(items[0], ScopeMove(Previous), g, nil, &lock)
	wantFocusChanged(t, ev, []NodeID{items[0]}, []NodeID{items[3]})
	ev = Resolve(items[3], ScopeMove(Next), g, nil, &lock)
	wantFocusChanged(t, ev, []NodeID{items[3]}, []NodeID{items[0]})
}

func TestMoveRejectedInScopeMenu(t *testing.T) {
	g := newTestGraph()
	menu := g.spawn(NoNode)
	a := g.leafAt(menu, 0, 0)
	g.leafAt(menu, 10, 0)
	g.declareMenu(menu, Menu{Setting: MenuSetting{Scope: true, Wrap: true}})

	var lock NavLock
	wantNoChanges(t, Resolve(a, Move(East), g, nil, &lock))
}

// twoTabs builds a scope menu of two tabs, each tab opening a 2D submenu
// with two leaves.
func twoTabs(g *testGraph) (tabs, tab1, tab2, a, b, c, d NodeID) {
	tabs = g.spawn(NoNode)
	tab1 = g.leafAt(tabs, 0, 0)
	tab2 = g.leafAt(tabs, 10, 0)
	g.declareMenu(tabs, Menu{Setting: MenuSetting{Scope: true}})
	g.setActive(tabs, tab1)

	m1 := g.spawn(NoNode)
	a = g.leafAt(m1, 0, -10)
	b = g.leafAt(m1, 0, -20)
	g.declareMenu(m1, Menu{FocusParent: tab1})
	g.setActive(m1, a)

	m2 := g.spawn(NoNode)
	c = g.leafAt(m2, 10, -10)
	d = g.leafAt(m2, 10, -20)
	g.declareMenu(m2, Menu{FocusParent: tab2})
	g.setActive(m2, c)
	return
}

func TestScopeMoveBubblesToScopeMenu(t *testing.T) {
	g := newTestGraph()
	_, tab1, tab2, a, _, c, _ := twoTabs(g)

	var lock NavLock
	ev := Resolve(a, ScopeMove(Next), g, nil, &lock)
	// The request bubbles up to the tab row, moves to the next tab, and
	// descends into its submenu's remembered child.
	wantFocusChanged(t, ev, []NodeID{a, tab1}, []NodeID{c, tab2})
}

func TestActionDescendsToActiveChild(t *testing.T) {
	g := newTestGraph()
	_, tab1, _, a, _, _, _ := twoTabs(g)

	var lock NavLock
	ev := Resolve(tab1, Action(), g, nil, &lock)
	wantFocusChanged(t, ev, []NodeID{tab1}, []NodeID{a, tab1})
}

func TestActionWithoutSubmenu(t *testing.T) {
	g := newTestGraph()
	_, _, _, a, _, _, _ := twoTabs(g)

	var lock NavLock
	wantNoChanges(t, Resolve(a, Action(), g, nil, &lock))
}

func TestActionCancelReroutes(t *testing.T) {
	g := newTestGraph()
	tabs := g.spawn(NoNode)
	tab := g.leaf(tabs)
	g.declareMenu(tabs, Menu{Setting: MenuSetting{Scope: true}})
	g.setActive(tabs, tab)

	menu := g.spawn(NoNode)
	g.leaf(menu)
	back := g.actionLeaf(menu, ActionCancel)
	g.declareMenu(menu, Menu{FocusParent: tab})

	var lock NavLock
	ev := Resolve(back, Action(), g, nil, &lock)
	wantFocusChanged(t, ev, []NodeID{back, tab}, []NodeID{tab})
}

func TestCancelAtRootIsStable(t *testing.T) {
	g := newTestGraph()
	menu := g.spawn(NoNode)
	a := g.leaf(menu)
	g.declareMenu(menu, Menu{})
	g.setActive(menu, a)

	var lock NavLock
	wantNoChanges(t, Resolve(a, Cancel(), g, nil, &lock))
	wantNoChanges(t, Resolve(a, Cancel(), g, nil, &lock))
}

func TestCancelAscends(t *testing.T) {
	g := newTestGraph()
	_, tab1, _, a, _, _, _ := twoTabs(g)

	var lock NavLock
	ev := Resolve(a, Cancel(), g, nil, &lock)
	wantFocusChanged(t, ev, []NodeID{a, tab1}, []NodeID{tab1})
}

func TestLockAndUnlock(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "test.log"))
	g := newTestGraph()
	menu := g.spawn(NoNode)
	a := g.leaf(menu)
	g.declareMenu(menu, Menu{})

	var lock NavLock
	ev := Resolve(a, Lock(), g, nil, &lock)
	if ev.Kind != EventLocked || !ev.Reason.Explicit() {
		t.Fatalf("expected explicit lock, got %+v", ev)
	}
	if !lock.IsLocked() {
		t.Fatalf("lock not held after Lock request")
	}
	wantNoChanges(t, Resolve(a, Lock(), g, nil, &lock))

	ev = Resolve(a, Unlock(), g, nil, &lock)
	if ev.Kind != EventUnlocked {
		t.Fatalf("expected unlocked, got %s", ev.Kind)
	}
	if lock.IsLocked() {
		t.Fatalf("lock still held after Unlock")
	}
	wantNoChanges(t, Resolve(a, Unlock(), g, nil, &lock))
}

func TestActionLockFreezes(t *testing.T) {
	g := newTestGraph()
	menu := g.spawn(NoNode)
	lockButton := g.actionLeaf(menu, ActionLock)
	g.declareMenu(menu, Menu{})

	var lock NavLock
	ev := Resolve(lockButton, Action(), g, nil, &lock)
	if ev.Kind != EventLocked {
		t.Fatalf("expected locked, got %s", ev.Kind)
	}
	if reason, ok := lock.Reason(); !ok || reason.Focusable != lockButton {
		t.Fatalf("lock reason = %v, %v", reason, ok)
	}
}

// chainOf builds nested menus so that the breadcrumb of the deepest leaf
// is [leaf, parents...], most specific first.
func chainOf(g *testGraph, depth int) []NodeID {
	var path []NodeID
	parent := NoNode
	rootMenu := g.spawn(NoNode)
	leaf := g.leaf(rootMenu)
	g.declareMenu(rootMenu, Menu{})
	g.setActive(rootMenu, leaf)
	parent = leaf
	path = append(path, leaf)
	for i := 1; i < depth; i++ {
		menu := g.spawn(NoNode)
		leaf := g.leaf(menu)
		g.declareMenu(menu, Menu{FocusParent: parent})
		g.setActive(menu, leaf)
		parent = leaf
		path = append([]NodeID{leaf}, path...)
	}
	return path
}

func TestFocusOnTrimsCommonSuffix(t *testing.T) {
	g := newTestGraph()
	path := chainOf(g, 4)
	a := path[0]
	// x shares a's menu, so the two breadcrumbs diverge only at the head.
	deepest, _ := g.Parent(a)
	x := g.leaf(deepest)

	var lock NavLock
	ev := Resolve(a, FocusOn(x), g, nil, &lock)
	wantFocusChanged(t, ev, []NodeID{a}, []NodeID{x})
}

func TestFocusOnBlockedTarget(t *testing.T) {
	g := newTestGraph()
	menu := g.spawn(NoNode)
	a := g.leaf(menu)
	b := g.leaf(menu)
	g.declareMenu(menu, Menu{})
	g.block(b)

	var lock NavLock
	wantNoChanges(t, Resolve(a, FocusOn(b), g, nil, &lock))
}

func TestFocusOnSelf(t *testing.T) {
	g := newTestGraph()
	menu := g.spawn(NoNode)
	a := g.leaf(menu)
	g.declareMenu(menu, Menu{})

	var lock NavLock
	wantNoChanges(t, Resolve(a, FocusOn(a), g, nil, &lock))
}

func TestMenuCycleDetection(t *testing.T) {
	g := newTestGraph()
	menuA := g.spawn(NoNode)
	fa := g.leaf(menuA)
	menuB := g.spawn(NoNode)
	fb := g.leaf(menuB)
	g.declareMenu(menuA, Menu{FocusParent: fb})
	g.declareMenu(menuB, Menu{FocusParent: fa})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic on the menu cycle")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "cycle") {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	var lock NavLock
	Resolve(fa, FocusOn(fb), g, nil, &lock)
}

func TestMoveWithoutMenuUsesFlatSet(t *testing.T) {
	g := newTestGraph()
	root := g.spawn(NoNode)
	a := g.leafAt(root, 0, 0)
	b := g.leafAt(root, 10, 0)
	c := g.leafAt(root, 20, 0)

	var lock NavLock
	ev := Resolve(a, Move(East), g, nil, &lock)
	wantFocusChanged(t, ev, []NodeID{a}, []NodeID{b})
	// Without a menu the flat set always wraps.
	ev = Resolve(a, Move(West), g, nil, &lock)
	wantFocusChanged(t, ev, []NodeID{a}, []NodeID{c})
}

func TestMoveSkipsBlockedSiblings(t *testing.T) {
	g := newTestGraph()
	menu := g.spawn(NoNode)
	a := g.leafAt(menu, 0, 0)
	b := g.leafAt(menu, 10, 0)
	c := g.leafAt(menu, 20, 0)
	g.declareMenu(menu, Menu{})
	g.block(b)

	var lock NavLock
	ev := Resolve(a, Move(East), g, nil, &lock)
	wantFocusChanged(t, ev, []NodeID{a}, []NodeID{c})
}

func TestMoveDeadEndWithoutWrap(t *testing.T) {
	g := newTestGraph()
	menu := g.spawn(NoNode)
	a := g.leafAt(menu, 0, 0)
	g.leafAt(menu, 10, 0)
	g.declareMenu(menu, Menu{})

	var lock NavLock
	wantNoChanges(t, Resolve(a, Move(West), g, nil, &lock))
}

func TestTrimCommonTail(t *testing.T) {
	cases := []struct {
		name         string
		v1, v2       []NodeID
		want1, want2 []NodeID
	}{
		{
			name:  "diverging prefixes",
			v1:    []NodeID{1, 2, 3, 4, 5, 6, 7},
			v2:    []NodeID{3, 2, 1, 4, 5, 6, 7},
			want1: []NodeID{1, 2, 3},
			want2: []NodeID{3, 2, 1},
		},
		{
			name:  "head divergence only",
			v1:    []NodeID{1, 4, 5},
			v2:    []NodeID{2, 4, 5},
			want1: []NodeID{1},
			want2: []NodeID{2},
		},
		{
			name:  "one is a suffix of the other",
			v1:    []NodeID{1, 2, 3},
			v2:    []NodeID{2, 3},
			want1: []NodeID{1, 2, 3},
			want2: []NodeID{2, 3},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got1, got2 := trimCommonTail(tc.v1, tc.v2)
			if !sameIDs(got1, tc.want1) || !sameIDs(got2, tc.want2) {
				t.Fatalf("trimCommonTail(%v, %v) = %v, %v; want %v, %v",
					tc.v1, tc.v2, got1, got2, tc.want1, tc.want2)
			}
		})
	}
}

func TestScopeMoveDescendsIntoSubmenu(t *testing.T) {
	g := newTestGraph()
	tabs := g.spawn(NoNode)
	tab1 := g.leaf(tabs)
	tab2 := g.leaf(tabs)
	g.declareMenu(tabs, Menu{Setting: MenuSetting{Scope: true}})
	g.setActive(tabs, tab1)

	outer := g.spawn(NoNode)
	mid := g.leaf(outer)
	g.declareMenu(outer, Menu{FocusParent: tab2})
	g.setActive(outer, mid)

	inner := g.spawn(NoNode)
	deep := g.leaf(inner)
	g.declareMenu(inner, Menu{FocusParent: mid})
	g.setActive(inner, deep)

	var lock NavLock
	ev := Resolve(tab1, ScopeMove(Next), g, nil, &lock)
	wantFocusChanged(t, ev, []NodeID{tab1}, []NodeID{deep, mid, tab2})
}

package graph

import (
	"fmt"

	"github.com/atomicstack/focusnav/navigation"
)

// Builder assembles a Tree. Spawn nodes first, then declare which of them
// are menus, then Build. Build validates the whole declaration at once so a
// menu can be reachable from a focusable spawned after it.
type Builder struct {
	tree  *Tree
	menus []menuDecl
}

type menuDecl struct {
	id   navigation.NodeID
	spec MenuSpec
}

// MenuSpec declares a node as a menu. ReachableFrom names the focusable
// whose Action request descends into this menu, either by id or by the name
// given at spawn; leave both empty for a root menu. Scope menus resolve
// ScopeMove requests, 2D menus resolve Move requests.
type MenuSpec struct {
	Scope bool
	Wrap  bool

	ReachableFrom      navigation.NodeID
	ReachableFromNamed string
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{tree: &Tree{nodes: make([]node, 1)}}
}

// SpawnOption configures a node at spawn time.
type SpawnOption func(*node)

// WithFocusable marks the node navigable, starting Inert with the Normal
// action.
func WithFocusable() SpawnOption {
	return func(n *node) {
		n.focusable = &navigation.Focusable{}
	}
}

// WithAction marks the node navigable with the given activation behavior.
func WithAction(action navigation.FocusAction) SpawnOption {
	return func(n *node) {
		n.focusable = &navigation.Focusable{Action: action}
	}
}

// WithPrioritized marks the node as its menu's remembered child, the one
// focus lands on when the menu is first entered. Implies WithFocusable.
func WithPrioritized() SpawnOption {
	return func(n *node) {
		if n.focusable == nil {
			n.focusable = &navigation.Focusable{}
		}
		n.focusable.State = navigation.StatePrioritized
	}
}

// WithBlocked spawns the node blocked. Implies WithFocusable.
func WithBlocked() SpawnOption {
	return func(n *node) {
		if n.focusable == nil {
			n.focusable = &navigation.Focusable{}
		}
		n.focusable.State = navigation.StateBlocked
	}
}

// WithPosition places the node for spatial navigation. The Y axis points
// up.
func WithPosition(x, y float64) SpawnOption {
	return func(n *node) {
		n.pos = navigation.Vec{X: x, Y: y}
		n.hasPos = true
	}
}

// WithSize gives the node an extent for pointer hit testing.
func WithSize(w, h float64) SpawnOption {
	return func(n *node) {
		n.size = navigation.Vec{X: w, Y: h}
		n.hasSize = true
	}
}

// WithName names the node so menus can reference it before it has an id
// and jump prompts can find it.
func WithName(name string) SpawnOption {
	return func(n *node) {
		n.name = name
	}
}

// Spawn adds a node under parent (NoNode for a root) and returns its id.
func (b *Builder) Spawn(parent navigation.NodeID, opts ...SpawnOption) navigation.NodeID {
	n := node{parent: parent}
	for _, opt := range opts {
		opt(&n)
	}
	id := navigation.NodeID(len(b.tree.nodes))
	b.tree.nodes = append(b.tree.nodes, n)
	if parent != navigation.NoNode {
		if p := b.tree.node(parent); p != nil {
			p.children = append(p.children, id)
		}
	}
	if n.focusable != nil {
		b.tree.focusables = append(b.tree.focusables, id)
	}
	return id
}

// DeclareMenu records that id is a menu. Validation happens in Build.
func (b *Builder) DeclareMenu(id navigation.NodeID, spec MenuSpec) {
	b.menus = append(b.menus, menuDecl{id: id, spec: spec})
}

// Build validates the declaration and returns the finished tree. It fails
// when a menu references an unknown or non-focusable parent, has no
// focusable children, or when the reachable-from links form a cycle.
func (b *Builder) Build() (*Tree, error) {
	t := b.tree
	for _, decl := range b.menus {
		n := t.node(decl.id)
		if n == nil {
			return nil, fmt.Errorf("graph: menu declared on unknown node %d", decl.id)
		}
		if n.focusable != nil {
			return nil, fmt.Errorf("graph: node %d cannot be both a menu and a focusable", decl.id)
		}
		if n.menu != nil {
			return nil, fmt.Errorf("graph: node %d declared as a menu twice", decl.id)
		}
		parent, err := b.resolveFocusParent(decl)
		if err != nil {
			return nil, err
		}
		n.menu = &navigation.Menu{
			FocusParent: parent,
			Setting: navigation.MenuSetting{
				Scope: decl.spec.Scope,
				Wrap:  decl.spec.Wrap,
			},
		}
		t.menus = append(t.menus, decl.id)
	}

	for _, id := range t.menus {
		siblings := navigation.MenuFocusables(id, t)
		if len(siblings) == 0 {
			return nil, fmt.Errorf("graph: menu %d has no focusable children; every menu needs at least one", id)
		}
		t.node(id).menu.ActiveChild = initialActiveChild(t, siblings)
	}

	if err := checkReachableCycles(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (b *Builder) resolveFocusParent(decl menuDecl) (navigation.NodeID, error) {
	spec := decl.spec
	if spec.ReachableFrom != navigation.NoNode && spec.ReachableFromNamed != "" {
		return navigation.NoNode, fmt.Errorf("graph: menu %d declares both an id and a named parent", decl.id)
	}
	parent := spec.ReachableFrom
	if spec.ReachableFromNamed != "" {
		parent = b.tree.FindByName(spec.ReachableFromNamed)
		if parent == navigation.NoNode {
			return navigation.NoNode, fmt.Errorf("graph: menu %d is reachable from %q, but no node has that name", decl.id, spec.ReachableFromNamed)
		}
	}
	if parent != navigation.NoNode {
		if n := b.tree.node(parent); n == nil || n.focusable == nil {
			return navigation.NoNode, fmt.Errorf("graph: menu %d must be reachable from a focusable, node %d is not one", decl.id, parent)
		}
	}
	return parent, nil
}

// initialActiveChild prefers a child spawned Prioritized, falling back to
// the first focusable in order.
func initialActiveChild(t *Tree, siblings []navigation.NodeID) navigation.NodeID {
	for _, id := range siblings {
		if f, _ := t.Focusable(id); f.State == navigation.StatePrioritized {
			return id
		}
	}
	return siblings[0]
}

// checkReachableCycles ascends each menu's reachable-from chain and fails
// if it revisits a menu. Catching this at build time keeps resolution from
// hitting its own cycle panic later.
func checkReachableCycles(t *Tree) error {
	for _, start := range t.menus {
		seen := map[navigation.NodeID]bool{start: true}
		current := start
		for {
			menu, _ := t.Menu(current)
			if menu.FocusParent == navigation.NoNode {
				break
			}
			next, ok := enclosingMenu(t, menu.FocusParent)
			if !ok {
				break
			}
			if seen[next] {
				return fmt.Errorf("graph: menus %d and %d are reachable from each other; reachable-from links must be acyclic", start, next)
			}
			seen[next] = true
			current = next
		}
	}
	return nil
}

func enclosingMenu(t *Tree, id navigation.NodeID) (navigation.NodeID, bool) {
	for {
		parent, ok := t.Parent(id)
		if !ok {
			return navigation.NoNode, false
		}
		if _, ok := t.Menu(parent); ok {
			return parent, true
		}
		id = parent
	}
}

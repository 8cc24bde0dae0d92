package navigation

// MenuSetting controls how movement resolves inside a menu.
type MenuSetting struct {
	// Scope makes the menu sequential: it resolves ScopeMove requests
	// (including ones bubbled up from nested non-scope menus) and rejects
	// Move requests. When false the menu is 2D and resolves Move requests
	// through the spatial strategy.
	Scope bool
	// Wrap enables cyclic wraparound at the menu edges.
	Wrap bool
}

// Menu is the navigation bookkeeping attached to a container node.
type Menu struct {
	// FocusParent is the Focusable whose Action request descends into this
	// menu. NoNode marks a root menu.
	FocusParent NodeID
	Setting     MenuSetting
	// ActiveChild caches the focusable (direct or transitive) that
	// represents this menu: where focus re-enters, and the next link of the
	// active breadcrumb.
	ActiveChild NodeID
}

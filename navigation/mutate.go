package navigation

// Apply writes a FocusChanged event back into the graph. The old breadcrumb
// is demoted: its deepest entries become Prioritized (focus memory for
// their menus) and its last entry, the divergence point, drops to Inert.
// The new breadcrumb is promoted: its head becomes Focused, the rest
// Active, and every promoted node becomes its enclosing menu's ActiveChild,
// dropping the child it displaces to Inert.
//
// Events other than FocusChanged leave the graph untouched. Promotions run
// after demotions in breadcrumb order, so nodes appearing in both lists end
// up in their promoted state.
func Apply(ev Event, g Mutable) {
	if ev.Kind != EventFocusChanged || sameIDs(ev.From, ev.To) {
		return
	}
	last := len(ev.From) - 1
	for _, id := range ev.From[:last] {
		g.SetFocusState(id, StatePrioritized)
	}
	g.SetFocusState(ev.From[last], StateInert)

	promote(g, ev.To[0], StateFocused)
	for _, id := range ev.To[1:] {
		promote(g, id, StateActive)
	}
}

func promote(g Mutable, id NodeID, state FocusState) {
	if menuID, menu, ok := parentMenu(id, g); ok {
		if prev := menu.ActiveChild; prev != id && prev != NoNode {
			g.SetFocusState(prev, StateInert)
		}
		g.SetActiveChild(menuID, id)
	}
	g.SetFocusState(id, state)
}

// Package engine drives the navigation resolver over a graph.Tree. It owns
// the lock state, enforces the one-request-per-tick rule, applies resolved
// focus changes back to the tree, and fans events out to observers.
package engine

import (
	"github.com/atomicstack/focusnav/graph"
	"github.com/atomicstack/focusnav/internal/logging/events"
	"github.com/atomicstack/focusnav/navigation"
)

// Observer receives every event the engine emits.
type Observer func(navigation.Event)

// Engine holds the mutable navigation state for one tree.
type Engine struct {
	tree      *graph.Tree
	lock      navigation.NavLock
	strategy  navigation.Strategy
	observers []Observer
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithStrategy swaps the spatial strategy used for Move requests. The
// default is navigation.DefaultStrategy.
func WithStrategy(s navigation.Strategy) Option {
	return func(e *Engine) {
		e.strategy = s
	}
}

// New wraps a built tree.
func New(tree *graph.Tree, opts ...Option) *Engine {
	e := &Engine{tree: tree, strategy: navigation.DefaultStrategy{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Observe registers fn for every subsequent event.
func (e *Engine) Observe(fn Observer) {
	e.observers = append(e.observers, fn)
}

// Tree returns the tree the engine drives. Reads are safe between ticks.
func (e *Engine) Tree() *graph.Tree {
	return e.tree
}

// Focused returns the currently focused node, or NoNode before the first
// focus change.
func (e *Engine) Focused() navigation.NodeID {
	return e.tree.Focused()
}

// Locked reports whether navigation is currently frozen.
func (e *Engine) Locked() bool {
	return e.lock.IsLocked()
}

// Tick processes the requests collected since the last tick and returns
// the resulting event, or nil when nothing happened. Only the first
// request is honored; extras are dropped and traced. While locked, every
// request except Unlock is gated here so the resolver never sees it.
func (e *Engine) Tick(requests []navigation.Request) *navigation.Event {
	if len(requests) == 0 {
		return nil
	}
	if len(requests) > 1 {
		events.Engine.DroppedRequests(len(requests) - 1)
	}
	req := requests[0]

	if e.lock.IsLocked() && req.Kind != navigation.RequestUnlock {
		events.Engine.LockGated(req.String())
		return nil
	}

	focused := e.tree.Focused()
	if focused == navigation.NoNode {
		focused = e.firstFocus()
		if focused == navigation.NoNode {
			events.Engine.NoFocusables()
			return nil
		}
		// Seed the focus directly so the resolver has a valid origin and
		// later ticks find it through Focused.
		e.tree.SetFocusState(focused, navigation.StateFocused)
		events.Engine.InitialFocus(int64(focused))
	}

	ev := navigation.Resolve(focused, req, e.tree, e.strategy, &e.lock)
	switch ev.Kind {
	case navigation.EventFocusChanged:
		navigation.Apply(ev, e.tree)
		events.Nav.Resolved(req.String(), ids(ev.From), ids(ev.To))
	case navigation.EventNoChanges:
		events.Nav.NoChanges(req.String(), ids(ev.From))
	case navigation.EventLocked:
		events.Nav.Locked(ev.Reason.String())
	case navigation.EventUnlocked:
		events.Nav.Unlocked(ev.Reason.String())
	}

	for _, fn := range e.observers {
		fn(ev)
	}
	return &ev
}

// firstFocus picks the first non-blocked focusable as the origin when no
// node holds focus yet.
func (e *Engine) firstFocus() navigation.NodeID {
	for _, id := range e.tree.Focusables() {
		if f, _ := e.tree.Focusable(id); f.State != navigation.StateBlocked {
			return id
		}
	}
	return navigation.NoNode
}

func ids(nodes []navigation.NodeID) []int64 {
	out := make([]int64, len(nodes))
	for i, id := range nodes {
		out[i] = int64(id)
	}
	return out
}

// Package navigation implements the focus-resolution algorithm for
// gamepad/keyboard-driven menu hierarchies.
//
// The package is deliberately split into a read phase and a write phase:
//   - Resolve is a pure function from the current focus, one Request, and a
//     read-only Query view of the menu graph to a single Event. It never
//     mutates anything.
//   - Apply takes a FocusChanged event and writes the resulting focus states
//     and active-child caches back through a Mutable graph.
//
// A driving loop (see the engine package) collects one Request per tick,
// calls Resolve, and applies the result. Keeping the two phases separate
// means the whole algorithm can be exercised in tests against a fixture
// graph with no mutation in between.
//
// Graph shape:
//   - Focusable nodes are the leaves navigation can land on.
//   - Menu nodes group focusables and define how movement works inside them
//     (2D spatial movement or sequential scope movement, bounded or
//     wrapping).
//   - A menu's FocusParent is the focusable that "opens" it; following
//     FocusParent links upward yields the breadcrumb from any node to its
//     root menu. This relation must be acyclic: a cycle is a configuration
//     error and Resolve panics on detection rather than looping forever.
//
// Spatial movement is delegated to a Strategy so hosts with exotic
// coordinate systems (world-space 3D, tile grids) can substitute their own
// nearest-neighbor search. DefaultStrategy covers the common screen-space
// case.
package navigation

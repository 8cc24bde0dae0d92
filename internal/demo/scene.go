// Package demo hosts the interactive showcase: a tabbed menu tree driven
// entirely by navigation requests, with nested submenus, a lock button,
// and a fuzzy jump prompt.
package demo

import (
	"github.com/atomicstack/focusnav/graph"
	"github.com/atomicstack/focusnav/navigation"
)

// BuildScene assembles the demo tree: a scope menu of three tabs, each
// descending into a 2D menu. The red tab holds a 3x3 grid, the green tab a
// column with a nested submenu and a cancel button, the blue tab a lock
// button and a blocked item.
func BuildScene(wrap bool) (*graph.Tree, error) {
	b := graph.NewBuilder()

	root := b.Spawn(navigation.NoNode)
	tabs := b.Spawn(root)
	b.Spawn(tabs, graph.WithFocusable(), graph.WithName("tab-red"), graph.WithPosition(0, 0), graph.WithSize(8, 1))
	b.Spawn(tabs, graph.WithFocusable(), graph.WithName("tab-green"), graph.WithPosition(10, 0), graph.WithSize(8, 1))
	blue := b.Spawn(tabs, graph.WithFocusable(), graph.WithName("tab-blue"), graph.WithPosition(20, 0), graph.WithSize(8, 1))
	b.DeclareMenu(tabs, graph.MenuSpec{Scope: true, Wrap: wrap})

	redMenu := b.Spawn(root)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			opts := []graph.SpawnOption{
				graph.WithFocusable(),
				graph.WithName(cellName("red", row, col)),
				graph.WithPosition(float64(col*10), float64(-10-row*10)),
				graph.WithSize(8, 1),
			}
			if row == 0 && col == 0 {
				opts = append(opts, graph.WithPrioritized())
			}
			b.Spawn(redMenu, opts...)
		}
	}
	b.DeclareMenu(redMenu, graph.MenuSpec{Wrap: wrap, ReachableFromNamed: "tab-red"})

	greenMenu := b.Spawn(root)
	b.Spawn(greenMenu, graph.WithFocusable(), graph.WithName("green-top"), graph.WithPosition(10, -10), graph.WithSize(12, 1))
	nestedParent := b.Spawn(greenMenu, graph.WithFocusable(), graph.WithName("green-nested"), graph.WithPosition(10, -20), graph.WithSize(12, 1))
	b.Spawn(greenMenu, graph.WithAction(navigation.ActionCancel), graph.WithName("green-back"), graph.WithPosition(10, -30), graph.WithSize(12, 1))
	b.DeclareMenu(greenMenu, graph.MenuSpec{Wrap: wrap, ReachableFromNamed: "tab-green"})

	nested := b.Spawn(greenMenu)
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			b.Spawn(nested,
				graph.WithFocusable(),
				graph.WithName(cellName("nested", row, col)),
				graph.WithPosition(float64(30+col*10), float64(-10-row*10)),
				graph.WithSize(8, 1),
			)
		}
	}
	b.DeclareMenu(nested, graph.MenuSpec{Wrap: wrap, ReachableFrom: nestedParent})

	blueMenu := b.Spawn(root)
	b.Spawn(blueMenu, graph.WithFocusable(), graph.WithName("blue-top"), graph.WithPosition(20, -10), graph.WithSize(12, 1))
	b.Spawn(blueMenu, graph.WithAction(navigation.ActionLock), graph.WithName("blue-lock"), graph.WithPosition(20, -20), graph.WithSize(12, 1))
	b.Spawn(blueMenu, graph.WithBlocked(), graph.WithName("blue-sealed"), graph.WithPosition(20, -30), graph.WithSize(12, 1))
	b.Spawn(blueMenu, graph.WithAction(navigation.ActionCancel), graph.WithName("blue-back"), graph.WithPosition(20, -40), graph.WithSize(12, 1))
	b.DeclareMenu(blueMenu, graph.MenuSpec{Wrap: wrap, ReachableFrom: blue})

	tree, err := b.Build()
	if err != nil {
		return nil, err
	}
	tree.SetMenuMarker(tabs, "tabs")
	tree.SetMenuMarker(redMenu, "red")
	tree.SetMenuMarker(greenMenu, "green")
	tree.SetMenuMarker(nested, "green-nested")
	tree.SetMenuMarker(blueMenu, "blue")
	tree.PropagateMarkers()
	return tree, nil
}

func cellName(prefix string, row, col int) string {
	return prefix + "-" + string(rune('0'+row)) + "-" + string(rune('0'+col))
}

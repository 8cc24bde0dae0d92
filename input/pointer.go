package input

import (
	"github.com/atomicstack/focusnav/internal/logging/events"
	"github.com/atomicstack/focusnav/navigation"
)

// Surface extends the graph view with node extents so pointer positions
// can be hit tested. graph.Tree satisfies it.
type Surface interface {
	navigation.Query
	Size(navigation.NodeID) (navigation.Vec, bool)
}

// FocusableAt returns the focusable under pos, or NoNode. Each focusable
// occupies a rectangle centered on its position; when rectangles overlap,
// the last one in declaration order wins, matching draw order. Blocked
// focusables are transparent to the pointer.
func FocusableAt(pos navigation.Vec, s Surface) navigation.NodeID {
	hit := navigation.NoNode
	for _, id := range s.Focusables() {
		f, _ := s.Focusable(id)
		if f.State == navigation.StateBlocked {
			continue
		}
		center, ok := s.Position(id)
		if !ok {
			continue
		}
		size, ok := s.Size(id)
		if !ok {
			continue
		}
		if pos.X < center.X-size.X/2 || pos.X > center.X+size.X/2 {
			continue
		}
		if pos.Y < center.Y-size.Y/2 || pos.Y > center.Y+size.Y/2 {
			continue
		}
		hit = id
	}
	return hit
}

// PointerRequest turns a pointer sample into a navigation request: hovering
// over an unfocused focusable requests focus on it, releasing over the
// focused one activates it. The second return is false when the sample
// calls for no request.
func PointerRequest(pos navigation.Vec, released bool, focused navigation.NodeID, s Surface) (navigation.Request, bool) {
	target := FocusableAt(pos, s)
	if target == navigation.NoNode {
		return navigation.Request{}, false
	}
	events.Input.Pointer(pos.X, pos.Y, int64(target))
	if target != focused {
		return navigation.FocusOn(target), true
	}
	if released {
		return navigation.Action(), true
	}
	return navigation.Request{}, false
}

package navigation

// Strategy answers "which sibling is the nearest neighbor of the focused
// node in a given direction". It is injected into Resolve so hosts with
// their own coordinate systems (3D world space, tile grids) can substitute
// the search. Implementations must be deterministic and must never return
// the focused node itself; NoNode means dead end.
type Strategy interface {
	Nearest(focused NodeID, dir Direction, wrap bool, siblings []NodeID, pos func(NodeID) Vec) NodeID
}

// DefaultStrategy is the screen-space nearest-neighbor search: candidates
// are the siblings whose offset from the focused node falls in the
// direction's cone (see Direction.Contains), and the closest one by
// Euclidean distance wins. Distance ties keep the first candidate in slice
// order. With wrap enabled and no candidate in the cone, the search origin
// is projected past the opposite edge of the sibling bounding box, so
// pressing West on the leftmost item of a row lands on the rightmost item
// of that row.
type DefaultStrategy struct{}

func (DefaultStrategy) Nearest(focused NodeID, dir Direction, wrap bool, siblings []NodeID, pos func(NodeID) Vec) NodeID {
	origin := pos(focused)
	best := NoNode
	bestDist := 0.0
	for _, sibling := range siblings {
		if sibling == focused || !dir.Contains(origin, pos(sibling)) {
			continue
		}
		d := distSquared(origin, pos(sibling))
		if best == NoNode || d < bestDist {
			best = sibling
			bestDist = d
		}
	}
	if best != NoNode || !wrap {
		return best
	}
	return nearestTo(wrapOrigin(origin, dir, siblings, pos), focused, siblings, pos)
}

// wrapOrigin projects the search origin beyond the opposite edge of the
// sibling bounding box along the movement axis, keeping the cross-axis
// coordinate so the wrap stays on the same row or column.
func wrapOrigin(origin Vec, dir Direction, siblings []NodeID, pos func(NodeID) Vec) Vec {
	minX, maxX := origin.X, origin.X
	minY, maxY := origin.Y, origin.Y
	for _, sibling := range siblings {
		p := pos(sibling)
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	switch dir {
	case North:
		return Vec{X: origin.X, Y: minY - 1}
	case South:
		return Vec{X: origin.X, Y: maxY + 1}
	case East:
		return Vec{X: minX - 1, Y: origin.Y}
	case West:
		return Vec{X: maxX + 1, Y: origin.Y}
	}
	return origin
}

func nearestTo(origin Vec, exclude NodeID, siblings []NodeID, pos func(NodeID) Vec) NodeID {
	best := NoNode
	bestDist := 0.0
	for _, sibling := range siblings {
		if sibling == exclude {
			continue
		}
		d := distSquared(origin, pos(sibling))
		if best == NoNode || d < bestDist {
			best = sibling
			bestDist = d
		}
	}
	return best
}

func distSquared(a, b Vec) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

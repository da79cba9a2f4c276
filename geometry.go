package banyan

import "math"

// Grid holds the fixed per-document tile geometry: the extent of one
// tile in world units at zoom 1. All methods are pure and total —
// out-of-range inputs are clamped, never rejected.
type Grid struct {
	Extent Extent
}

// NewGrid creates a Grid with the given tile extent.
func NewGrid(width, height float64) Grid {
	return Grid{Extent: Extent{Width: width, Height: height}}
}

// CellSize returns the size of one child slot in the parent's local
// coordinates.
func (g Grid) CellSize() (w, h float64) {
	return g.Extent.Width / Subdivision, g.Extent.Height / Subdivision
}

// ChildCenter returns the center of the child slot addr expressed in the
// parent's local coordinates. The center slot (2,2) maps to the origin.
func (g Grid) ChildCenter(addr GridAddress) Vec2 {
	return Vec2{
		X: float64(addr.Col-Subdivision/2) * g.Extent.Width / Subdivision,
		Y: float64(addr.Row-Subdivision/2) * g.Extent.Height / Subdivision,
	}
}

// AddressAt returns the child slot containing the parent-local point p.
// The result is always in range: points beyond the tile's own bounds are
// clamped to the edge slots. Callers that know p may exceed the bounds
// must wrap it first (see Engine's lateral wrap).
func (g Grid) AddressAt(p Vec2) GridAddress {
	cw, ch := g.CellSize()
	return GridAddress{
		Col: clampSlot(int(math.Floor((p.X + g.Extent.Width/2) / cw))),
		Row: clampSlot(int(math.Floor((p.Y + g.Extent.Height/2) / ch))),
	}
}

func clampSlot(i int) int {
	if i < 0 {
		return 0
	}
	if i >= Subdivision {
		return Subdivision - 1
	}
	return i
}

// Contains reports whether the local point p lies within the tile's own
// bounds: ±extent/2 on both axes, edges inclusive.
func (g Grid) Contains(p Vec2) bool {
	return math.Abs(p.X) <= g.Extent.Width/2 &&
		math.Abs(p.Y) <= g.Extent.Height/2
}

// ToChild re-expresses the parent-local point p in the local space of
// the child at addr. A point on the child slot's center maps to the
// child's origin; distances grow by Subdivision.
func (g Grid) ToChild(addr GridAddress, p Vec2) Vec2 {
	c := g.ChildCenter(addr)
	return Vec2{
		X: (p.X - c.X) * Subdivision,
		Y: (p.Y - c.Y) * Subdivision,
	}
}

// ToParent re-expresses a point in the local space of a child at addr in
// the parent's local coordinates. Exact inverse of ToChild.
func (g Grid) ToParent(addr GridAddress, p Vec2) Vec2 {
	c := g.ChildCenter(addr)
	return Vec2{
		X: c.X + p.X/Subdivision,
		Y: c.Y + p.Y/Subdivision,
	}
}

// RelativePoint re-expresses p, given in from's local space, in to's
// local space. The two tiles must belong to the same tree (always the
// case for tiles reached through Child, Neighbor, and EnsureParent);
// ok is false if they are disconnected. The walk climbs from both tiles
// to their common ancestor, so cost is bounded by tree depth.
func (g Grid) RelativePoint(from, to *Tile, p Vec2) (v Vec2, ok bool) {
	// Express p in every ancestor of from, keyed by the ancestor.
	inAncestor := map[*Tile]Vec2{from: p}
	q := p
	for t := from; t.parent != nil; t = t.parent {
		q = g.ToParent(t.addr, q)
		inAncestor[t.parent] = q
	}

	// Climb from to until we hit a shared ancestor, then descend back
	// down the recorded path.
	var path []GridAddress
	for anc := to; ; anc = anc.parent {
		if v, ok := inAncestor[anc]; ok {
			for i := len(path) - 1; i >= 0; i-- {
				v = g.ToChild(path[i], v)
			}
			return v, true
		}
		if anc.parent == nil {
			return Vec2{}, false
		}
		path = append(path, anc.addr)
	}
}

package banyan

// Content transfer helpers.
//
// The engine never reads a tile's Content payload, but hosts moving
// content across tile boundaries (a stroke drawn over an edge, a card
// dragged to another region) need the same coordinate math the
// navigation transitions use. RelativePoint covers arbitrary pairs of
// connected tiles; Rehome covers the common case of a point that has
// spilled past its tile's own bounds.

// Rehome returns the same-depth tile whose bounds contain p, given in
// t's local space, together with p re-expressed in that tile's space.
// For a point already in bounds it returns (t, p) unchanged. Neighbor
// tiles are materialized as needed.
func (g Grid) Rehome(t *Tile, p Vec2) (*Tile, Vec2) {
	halfW := g.Extent.Width / 2
	halfH := g.Extent.Height / 2
	for p.X > halfW {
		t = t.Neighbor(East)
		p.X -= g.Extent.Width
	}
	for p.X < -halfW {
		t = t.Neighbor(West)
		p.X += g.Extent.Width
	}
	for p.Y > halfH {
		t = t.Neighbor(South)
		p.Y -= g.Extent.Height
	}
	for p.Y < -halfH {
		t = t.Neighbor(North)
		p.Y += g.Extent.Height
	}
	return t, p
}

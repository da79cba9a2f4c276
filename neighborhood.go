package banyan

import "math"

// maxVisibleSteps bounds how many same-depth tiles Visible materializes
// per axis on each side of the active tile. With zoom normalized to
// [1, Subdivision) a viewport never sees more than a couple of tiles,
// so the bound only matters for degenerate viewport/extent ratios.
const maxVisibleSteps = 8

// TileView pairs a same-depth tile with the offset of its origin in the
// active tile's local space. Renderers draw a TileView's content
// translated by Offset and projected through the camera; hit-testers
// subtract Offset to express a world point in the view's tile space.
type TileView struct {
	Tile   *Tile
	Offset Vec2
}

// Visible materializes the same-depth neighborhood covering the
// viewport: the active tile plus every neighbor whose bounds intersect
// the camera's visible area. Tiles are reached through Neighbor, so the
// result is always consistent with navigation (lazily creating empty
// tiles is idempotent and harmless). The active tile is always first,
// at offset (0,0).
func (e *Engine) Visible() []TileView {
	bounds := e.cam.VisibleBounds()
	w := e.grid.Extent.Width
	h := e.grid.Extent.Height

	// Tile step (i, j) covers [i·w − w/2, i·w + w/2] on X; edge contact
	// counts as visible.
	iMin := clampSteps(int(math.Floor((bounds.X + w/2) / w)))
	iMax := clampSteps(int(math.Floor((bounds.X + bounds.Width + w/2) / w)))
	jMin := clampSteps(int(math.Floor((bounds.Y + h/2) / h)))
	jMax := clampSteps(int(math.Floor((bounds.Y + bounds.Height + h/2) / h)))

	views := make([]TileView, 0, (iMax-iMin+1)*(jMax-jMin+1))
	views = append(views, TileView{Tile: e.cam.Active})

	// Walk each row from a vertically-stepped origin, then across.
	for j := jMin; j <= jMax; j++ {
		rowStart := step(e.cam.Active, j, North, South)
		for i := iMin; i <= iMax; i++ {
			if i == 0 && j == 0 {
				continue // active tile, already first
			}
			t := step(rowStart, i, West, East)
			views = append(views, TileView{
				Tile:   t,
				Offset: Vec2{X: float64(i) * w, Y: float64(j) * h},
			})
		}
	}
	return views
}

// step walks n same-depth neighbor hops from t: toward neg when n is
// negative, toward pos when positive.
func step(t *Tile, n int, neg, pos Direction) *Tile {
	for ; n < 0; n++ {
		t = t.Neighbor(neg)
	}
	for ; n > 0; n-- {
		t = t.Neighbor(pos)
	}
	return t
}

func clampSteps(n int) int {
	if n < -maxVisibleSteps {
		return -maxVisibleSteps
	}
	if n > maxVisibleSteps {
		return maxVisibleSteps
	}
	return n
}

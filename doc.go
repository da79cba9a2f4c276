// Package banyan is an infinite, self-similar 2D canvas engine for
// [Ebitengine].
//
// Banyan keeps a drawing surface pannable and zoomable without bound
// while every coordinate stays small and precise. Space is a sparse
// tree of fixed-size tiles, each subdividing into a 5×5 grid of
// children; the engine moves the camera's "active" tile up, down, and
// sideways through that tree as the user zooms and pans, keeping the
// gesture anchor point pixel-fixed on screen through every transition.
// Content attached to a tile stays anchored to its region of space no
// matter how far the user travels.
//
// # Quick start
//
//	grid := banyan.NewGrid(1024, 768)
//	engine := banyan.NewEngine(grid, nil, banyan.Rect{Width: 1024, Height: 768})
//	ctrl := banyan.NewController(engine)
//
//	// In your ebiten.Game:
//	func (g *Game) Update() error { ctrl.Update(); return nil }
//	func (g *Game) Draw(screen *ebiten.Image) {
//		for _, tv := range engine.Visible() {
//			// draw tv.Tile's content translated by tv.Offset,
//			// projected through engine.Camera()
//		}
//	}
//
// # Coordinates
//
// Every tile spans the same extent in its own local space; one
// zoom-level step only changes what a world unit means, by a factor of
// [Subdivision]. The camera's zoom is therefore always normalized to
// [1, Subdivision): zooming past the top of the range drills into a
// child tile, dropping below 1 pops up to a parent — created on demand,
// so the tree has no fixed root and the canvas no edge.
//
// # Content
//
// A tile's Content payload is opaque to banyan: attach strokes, cards,
// or anything else, and it is carried through persistence and tree
// growth unchanged. Use [Grid.RelativePoint] and [Grid.Rehome] to move
// content coordinates between tiles.
//
// Momentum scrolling uses [gween] tweens; input translation
// ([Controller]) and the [DebugLayer] overlay use Ebitengine. The core
// tree, geometry, and navigation code have no dependencies and can be
// driven headlessly.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package banyan

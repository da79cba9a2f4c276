package banyan

import (
	"fmt"
	"math"
	"os"
)

// Engine drives the camera through gesture updates. After every applied
// delta it normalizes the view to a fixed point: drill-down while zoom
// has passed Subdivision, pop-up while it has dropped below 1, then a
// lateral tile wrap on each axis — re-solving the pan offset after the
// transitions so the gesture anchor stays pinned to the same screen
// point through however many tile changes a single update causes.
//
// The engine is single-threaded: all calls must come from the thread
// that owns the host event loop, and every call runs to completion
// before the updated camera is observable.
type Engine struct {
	grid Grid
	cam  *Camera

	// Anchor bookkeeping: the world/screen pair of the most recent
	// update, with world re-expressed in the active tile's space after
	// all transitions.
	anchorWorld  Vec2
	anchorScreen Vec2

	fling  *flingAnim
	scroll *scrollAnim

	debug bool
}

// NewEngine creates an engine viewing the given tile through the given
// viewport. A nil tile starts a fresh document with a new top-level
// tile.
func NewEngine(grid Grid, active *Tile, viewport Rect) *Engine {
	if active == nil {
		active = NewTile()
	}
	return &Engine{
		grid: grid,
		cam:  NewCamera(active, viewport),
	}
}

// Grid returns the document's fixed tile geometry.
func (e *Engine) Grid() Grid {
	return e.grid
}

// Camera returns the engine's camera. Collaborators (renderers,
// hit-testers) read it between engine calls; only the engine mutates it.
func (e *Engine) Camera() *Camera {
	return e.cam
}

// Active returns the camera's active tile.
func (e *Engine) Active() *Tile {
	return e.cam.Active
}

// Anchor returns the anchor pair of the most recent update: the world
// point (in the active tile's space) and the screen point it is pinned
// to. The anchor-stability contract guarantees the world point projects
// to the screen point after every call.
func (e *Engine) Anchor() (world, screen Vec2) {
	return e.anchorWorld, e.anchorScreen
}

// SetDebug enables invariant checks after every gesture update. A
// violated invariant is an engine bug and panics with a diagnostic.
func (e *Engine) SetDebug(enabled bool) {
	e.debug = enabled
}

// ApplyPan shifts the view by (dx, dy) screen pixels, using the given
// screen point as the wrap anchor (typically the pointer position).
// Non-finite input is rejected and the update ignored.
func (e *Engine) ApplyPan(dx, dy, anchorX, anchorY float64) {
	if !allFinite(dx, dy, anchorX, anchorY) {
		return
	}
	e.stopMomentum()
	e.panBy(dx, dy, anchorX, anchorY)
}

// panBy applies a pan delta without cancelling momentum. Fling and
// scroll ticks come through here.
func (e *Engine) panBy(dx, dy, anchorX, anchorY float64) {
	e.cam.PanX += dx
	e.cam.PanY += dy
	e.cam.dirty = true
	// A pan moves new world content under the anchor point; recapture
	// the world point now resting there, then restore the invariants.
	wx, wy := e.cam.ScreenToWorld(anchorX, anchorY)
	e.normalize(Vec2{wx, wy}, anchorX, anchorY)
}

// ApplyZoom multiplies the zoom by factor, keeping the world point
// under the anchor screen point visually fixed. A factor that pushes
// zoom past the [1, Subdivision) range triggers one or more drill-down
// or pop-up transitions in the same call. Non-positive or non-finite
// input is rejected.
func (e *Engine) ApplyZoom(factor, anchorX, anchorY float64) {
	if factor <= 0 || !allFinite(factor, anchorX, anchorY) {
		return
	}
	e.stopMomentum()
	wx, wy := e.cam.ScreenToWorld(anchorX, anchorY)
	world := Vec2{wx, wy}
	e.cam.Zoom *= factor
	e.cam.solveAnchor(world, anchorX, anchorY)
	e.normalize(world, anchorX, anchorY)
}

// ApplyRotation adds delta radians to the view rotation about the
// anchor screen point. Non-finite input is rejected.
func (e *Engine) ApplyRotation(delta, anchorX, anchorY float64) {
	if !allFinite(delta, anchorX, anchorY) {
		return
	}
	e.stopMomentum()
	wx, wy := e.cam.ScreenToWorld(anchorX, anchorY)
	world := Vec2{wx, wy}
	e.cam.Rotation += delta
	e.cam.solveAnchor(world, anchorX, anchorY)
	e.normalize(world, anchorX, anchorY)
}

// normalize restores the camera invariants (zoom in [1, Subdivision),
// anchor world point within the active tile's bounds), transitioning
// the active tile as many levels and steps as needed. world is the
// anchor expressed in the active tile's space; it is remapped through
// every transition. The pan offset is re-solved once at the end, so the
// anchor stays fixed at (screenX, screenY) no matter how many
// transitions ran.
func (e *Engine) normalize(world Vec2, screenX, screenY float64) {
	cam := e.cam

	// Drill down: one level per factor of Subdivision. Handles fast
	// multi-level zoom gestures in a single update.
	for cam.Zoom >= Subdivision {
		addr := e.grid.AddressAt(world)
		child := cam.Active.Child(addr)
		world = e.grid.ToChild(addr, world)
		cam.Active = child
		cam.Zoom /= Subdivision
	}

	// Pop up, symmetrically, growing the universe when the top is
	// reached.
	for cam.Zoom < 1 {
		parent := cam.Active.EnsureParent()
		world = e.grid.ToParent(cam.Active.addr, world)
		cam.Active = parent
		cam.Zoom *= Subdivision
	}

	// Lateral wrap, each axis independently. A drill-down or pop-up can
	// itself leave the anchor outside the new tile's bounds, so this
	// always runs last.
	halfW := e.grid.Extent.Width / 2
	halfH := e.grid.Extent.Height / 2
	for world.X > halfW {
		cam.Active = cam.Active.Neighbor(East)
		world.X -= e.grid.Extent.Width
	}
	for world.X < -halfW {
		cam.Active = cam.Active.Neighbor(West)
		world.X += e.grid.Extent.Width
	}
	for world.Y > halfH {
		cam.Active = cam.Active.Neighbor(South)
		world.Y -= e.grid.Extent.Height
	}
	for world.Y < -halfH {
		cam.Active = cam.Active.Neighbor(North)
		world.Y += e.grid.Extent.Height
	}

	cam.solveAnchor(world, screenX, screenY)

	e.anchorWorld = world
	e.anchorScreen = Vec2{screenX, screenY}

	if e.debug {
		e.checkInvariants()
	}
}

// checkInvariants verifies the post-update camera invariants. Debug
// mode only.
func (e *Engine) checkInvariants() {
	cam := e.cam
	if cam.Zoom < 1 || cam.Zoom >= Subdivision {
		panic(fmt.Sprintf("banyan debug: zoom %v outside [1, %d) after update", cam.Zoom, Subdivision))
	}
	if !e.grid.Contains(e.anchorWorld) {
		panic(fmt.Sprintf("banyan debug: anchor world %v outside tile bounds %v", e.anchorWorld, e.grid.Extent))
	}
	cam.Active.checkConsistent()

	sx, sy := cam.WorldToScreen(e.anchorWorld.X, e.anchorWorld.Y)
	const eps = 1e-6
	if math.Abs(sx-e.anchorScreen.X) > eps || math.Abs(sy-e.anchorScreen.Y) > eps {
		fmt.Fprintf(os.Stderr,
			"[banyan] warning: anchor drift (%g, %g) px after update\n",
			sx-e.anchorScreen.X, sy-e.anchorScreen.Y)
	}
}

func allFinite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

package banyan

import "math"

// Camera is the mutable view state for a banyan canvas: which tile all
// on-screen content is currently expressed in, plus the pan offset,
// zoom, rotation, and viewport that project that tile's local space to
// the screen.
//
// Zoom is kept in [1, Subdivision) by the engine's transitions — the
// camera itself does not enforce the range.
type Camera struct {
	// Active is the tile whose local coordinate space all on-screen
	// content is currently expressed in. Reassigned (never mutated in
	// place) by navigation transitions.
	Active *Tile
	// PanX and PanY are the screen-space pan offset in pixels.
	PanX, PanY float64
	// Zoom is the scale factor from world units to pixels.
	Zoom float64
	// Rotation is the view rotation in radians (positive rotates
	// content clockwise on screen, Y-down).
	Rotation float64
	// Viewport is the screen-space rectangle the camera renders into.
	Viewport Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool
}

// NewCamera creates a Camera at zoom 1 with no pan or rotation, looking
// at the given tile.
func NewCamera(active *Tile, viewport Rect) *Camera {
	return &Camera{
		Active:   active,
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
}

// MarkDirty forces a recomputation of the view matrix. Call after
// bulk-setting fields directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// center returns the viewport center in screen coordinates.
func (c *Camera) center() (cx, cy float64) {
	return c.Viewport.X + c.Viewport.Width/2, c.Viewport.Y + c.Viewport.Height/2
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// screen = viewportCenter + pan + Rotate(rotation) * (zoom * world)
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx, cy := c.center()
	sin, cos := math.Sincos(c.Rotation)
	z := c.Zoom

	c.viewMatrix = [6]float64{z * cos, z * sin, -z * sin, z * cos, cx + c.PanX, cy + c.PanY}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen projects a point in the active tile's local space to
// screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	sx, sy = transformPoint(c.viewMatrix, wx, wy)
	return
}

// ScreenToWorld converts screen coordinates to the active tile's local
// space. Exact inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	wx, wy = transformPoint(c.invViewMatrix, sx, sy)
	return
}

// VisibleBounds returns the axis-aligned bounding rect, in the active
// tile's local space, of the area the viewport can see.
func (c *Camera) VisibleBounds() Rect {
	c.computeViewMatrix()
	inv := c.invViewMatrix

	vx := c.Viewport.X
	vy := c.Viewport.Y
	vr := vx + c.Viewport.Width
	vb := vy + c.Viewport.Height

	// Transform the four viewport corners to world space.
	x0, y0 := transformPoint(inv, vx, vy)
	x1, y1 := transformPoint(inv, vr, vy)
	x2, y2 := transformPoint(inv, vr, vb)
	x3, y3 := transformPoint(inv, vx, vb)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// solveAnchor rewrites the pan offset so that the world point anchors
// at the given screen point under the camera's current zoom and
// rotation. Closed form, not iterative.
func (c *Camera) solveAnchor(world Vec2, screenX, screenY float64) {
	pan := SolvePanOffset(world, Vec2{screenX, screenY}, c.Zoom, c.Rotation, c.Viewport)
	c.PanX = pan.X
	c.PanY = pan.Y
	c.dirty = true
}

// SolvePanOffset returns the pan offset that makes the given world
// point project to the given screen point under the zoom, rotation, and
// viewport. This is the closed-form inverse of the camera projection:
//
//	pan = screen - viewportCenter - Rotate(rotation) * (zoom * world)
func SolvePanOffset(world, screen Vec2, zoom, rotation float64, viewport Rect) Vec2 {
	cx := viewport.X + viewport.Width/2
	cy := viewport.Y + viewport.Height/2
	sin, cos := math.Sincos(rotation)
	rx := zoom * (cos*world.X - sin*world.Y)
	ry := zoom * (sin*world.X + cos*world.Y)
	return Vec2{X: screen.X - cx - rx, Y: screen.Y - cy - ry}
}

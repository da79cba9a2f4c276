package banyan

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	defaultWheelZoomStep = 1.1
	defaultDragDeadZone  = 4.0 // pixels
)

// pointerState tracks one dragging pointer (the mouse or a single
// touch).
type pointerState struct {
	down           bool
	startX, startY float64
	lastX, lastY   float64
	dragging       bool
}

// pinchState tracks an active two-finger gesture between frames.
type pinchState struct {
	active         bool
	prevDist       float64
	prevAngle      float64
	prevCX, prevCY float64
}

// Controller translates raw Ebitengine input into engine gestures:
// mouse or single-touch drag pans, the wheel zooms about the cursor,
// and a two-finger pinch zooms, rotates, and pans about the gesture
// centroid. Releasing a drag with velocity hands off to Engine.Fling.
//
// Call Update once per frame from the host game loop; it also advances
// the engine's momentum animations.
type Controller struct {
	engine *Engine

	// WheelZoomStep is the zoom factor applied per wheel notch.
	WheelZoomStep float64
	// DragDeadZone is the pointer movement in pixels before a drag pan
	// starts. Keeps taps from nudging the canvas.
	DragDeadZone float64
	// FlingEnabled releases a drag into inertial panning.
	FlingEnabled bool
	// RotateEnabled applies the twist component of pinch gestures.
	RotateEnabled bool

	mouse pointerState
	touch pointerState
	pinch pinchState

	// Smoothed drag velocity in pixels per second, for fling handoff.
	velX, velY float64

	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticGesture
}

// NewController creates a controller driving the given engine, with
// fling and pinch rotation enabled.
func NewController(engine *Engine) *Controller {
	return &Controller{
		engine:        engine,
		WheelZoomStep: defaultWheelZoomStep,
		DragDeadZone:  defaultDragDeadZone,
		FlingEnabled:  true,
		RotateEnabled: true,
	}
}

// Engine returns the engine this controller drives.
func (c *Controller) Engine() *Engine {
	return c.engine
}

// Update reads this frame's input, applies the resulting gestures, and
// advances momentum. Injected synthetic gestures are consumed one per
// frame and suppress real input for that frame, so scripted tests see
// the same one-gesture-per-update cadence as live interaction.
func (c *Controller) Update() {
	dt := 1.0 / float64(ebiten.TPS())
	c.engine.Update(float32(dt))

	if c.consumeInjected() {
		return
	}
	if c.processTouch(dt) {
		// An active touch gesture owns the frame; ignore the mouse.
		return
	}
	c.processMouse(dt)
}

// processMouse handles wheel zoom and left-button drag panning.
func (c *Controller) processMouse(dt float64) {
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		c.engine.ApplyZoom(math.Pow(c.WheelZoomStep, wheelY), sx, sy)
	}

	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	c.dragPointer(&c.mouse, sx, sy, pressed, dt)
}

// dragPointer runs the drag state machine for one pointer, shared
// between the mouse and single-touch paths.
func (c *Controller) dragPointer(ps *pointerState, sx, sy float64, pressed bool, dt float64) {
	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.dragging = false
		ps.startX, ps.startY = sx, sy
		ps.lastX, ps.lastY = sx, sy
		c.velX, c.velY = 0, 0
		c.engine.stopMomentum()

	case pressed && ps.down:
		dx := sx - ps.lastX
		dy := sy - ps.lastY
		if !ps.dragging {
			tx := sx - ps.startX
			ty := sy - ps.startY
			if math.Sqrt(tx*tx+ty*ty) > c.DragDeadZone {
				ps.dragging = true
			}
		}
		if ps.dragging && (dx != 0 || dy != 0) {
			c.engine.ApplyPan(dx, dy, sx, sy)
		}
		// Exponentially smoothed velocity so a brief hesitation before
		// release doesn't kill the fling entirely.
		if dt > 0 {
			c.velX = 0.8*c.velX + 0.2*(dx/dt)
			c.velY = 0.8*c.velY + 0.2*(dy/dt)
		}
		ps.lastX, ps.lastY = sx, sy

	case !pressed && ps.down:
		if ps.dragging && c.FlingEnabled {
			c.engine.Fling(c.velX, c.velY)
		}
		ps.down = false
		ps.dragging = false
	}
}

// processTouch handles one- and two-finger touch gestures. Returns true
// while any touch interaction (including its release frame) is being
// handled.
func (c *Controller) processTouch(dt float64) bool {
	c.prevTouchIDs = ebiten.AppendTouchIDs(c.prevTouchIDs[:0])
	ids := c.prevTouchIDs

	if len(ids) >= 2 {
		x0, y0 := ebiten.TouchPosition(ids[0])
		x1, y1 := ebiten.TouchPosition(ids[1])
		c.updatePinch(float64(x0), float64(y0), float64(x1), float64(y1))
		// A pinch supersedes any single-touch drag in progress.
		c.touch.down = false
		c.touch.dragging = false
		return true
	}

	if c.pinch.active {
		c.pinch.active = false
		return true
	}

	if len(ids) == 1 {
		tx, ty := ebiten.TouchPosition(ids[0])
		c.dragPointer(&c.touch, float64(tx), float64(ty), true, dt)
		return true
	}

	if c.touch.down {
		c.dragPointer(&c.touch, c.touch.lastX, c.touch.lastY, false, dt)
		return true
	}
	return false
}

// updatePinch applies the pan, zoom, and rotation deltas of a
// two-finger gesture, all anchored at the gesture centroid.
func (c *Controller) updatePinch(x0, y0, x1, y1 float64) {
	cx := (x0 + x1) / 2
	cy := (y0 + y1) / 2
	dx := x1 - x0
	dy := y1 - y0
	dist := math.Sqrt(dx*dx + dy*dy)
	angle := math.Atan2(dy, dx)

	if !c.pinch.active {
		c.pinch.active = true
		c.pinch.prevDist = dist
		c.pinch.prevAngle = angle
		c.pinch.prevCX, c.pinch.prevCY = cx, cy
		c.engine.stopMomentum()
		return
	}

	if pdx, pdy := cx-c.pinch.prevCX, cy-c.pinch.prevCY; pdx != 0 || pdy != 0 {
		c.engine.ApplyPan(pdx, pdy, cx, cy)
	}
	if c.pinch.prevDist > 0 && dist > 0 {
		c.engine.ApplyZoom(dist/c.pinch.prevDist, cx, cy)
	}
	if c.RotateEnabled {
		if rot := angle - c.pinch.prevAngle; rot != 0 {
			c.engine.ApplyRotation(rot, cx, cy)
		}
	}

	c.pinch.prevDist = dist
	c.pinch.prevAngle = angle
	c.pinch.prevCX, c.pinch.prevCY = cx, cy
}

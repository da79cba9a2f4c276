package banyan

// gestureKind identifies a synthetic gesture type.
type gestureKind uint8

const (
	gesturePan gestureKind = iota
	gestureZoom
	gestureRotate
	gestureFling
)

// syntheticGesture is a single injected gesture. Screen coordinates are
// used, identical to real input.
type syntheticGesture struct {
	kind             gestureKind
	a, b             float64 // (dx, dy), (factor, -), (delta, -), or (vx, vy)
	anchorX, anchorY float64
}

// InjectPan queues a pan of (dx, dy) screen pixels anchored at the
// given screen point. The gesture is consumed on the next Update call.
func (c *Controller) InjectPan(dx, dy, anchorX, anchorY float64) {
	c.injectQueue = append(c.injectQueue, syntheticGesture{
		kind: gesturePan, a: dx, b: dy, anchorX: anchorX, anchorY: anchorY,
	})
}

// InjectZoom queues a zoom by factor about the given screen point.
func (c *Controller) InjectZoom(factor, anchorX, anchorY float64) {
	c.injectQueue = append(c.injectQueue, syntheticGesture{
		kind: gestureZoom, a: factor, anchorX: anchorX, anchorY: anchorY,
	})
}

// InjectRotate queues a rotation by delta radians about the given
// screen point.
func (c *Controller) InjectRotate(delta, anchorX, anchorY float64) {
	c.injectQueue = append(c.injectQueue, syntheticGesture{
		kind: gestureRotate, a: delta, anchorX: anchorX, anchorY: anchorY,
	})
}

// InjectFling queues an inertial pan release with the given velocity in
// screen pixels per second.
func (c *Controller) InjectFling(vx, vy float64) {
	c.injectQueue = append(c.injectQueue, syntheticGesture{
		kind: gestureFling, a: vx, b: vy,
	})
}

// InjectPinch queues one step of a two-finger gesture as its pan, zoom,
// and rotation components about the centroid, consumed over three
// consecutive frames in the order a live pinch applies them.
func (c *Controller) InjectPinch(dx, dy, factor, rotate, centroidX, centroidY float64) {
	c.InjectPan(dx, dy, centroidX, centroidY)
	c.InjectZoom(factor, centroidX, centroidY)
	c.InjectRotate(rotate, centroidX, centroidY)
}

// InjectDrag queues a drag as a sequence of per-frame pan gestures from
// (fromX, fromY) to (toX, toY) over the given number of frames (minimum
// 1), matching the cadence of a live pointer drag.
func (c *Controller) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	stepX := (toX - fromX) / float64(frames)
	stepY := (toY - fromY) / float64(frames)
	x, y := fromX, fromY
	for i := 0; i < frames; i++ {
		x += stepX
		y += stepY
		c.InjectPan(stepX, stepY, x, y)
	}
}

// consumeInjected pops one gesture from the inject queue and applies it
// to the engine. Returns true if a gesture was consumed (real input is
// skipped that frame).
func (c *Controller) consumeInjected() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	g := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	switch g.kind {
	case gesturePan:
		c.engine.ApplyPan(g.a, g.b, g.anchorX, g.anchorY)
	case gestureZoom:
		c.engine.ApplyZoom(g.a, g.anchorX, g.anchorY)
	case gestureRotate:
		c.engine.ApplyRotation(g.a, g.anchorX, g.anchorY)
	case gestureFling:
		c.engine.Fling(g.a, g.b)
	}
	return true
}

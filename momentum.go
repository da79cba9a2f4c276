package banyan

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// flingDuration is how long an inertial pan takes to decelerate to rest.
const flingDuration float32 = 1.2

// flingAnim holds the active inertial pan tweens for X and Y. Tween
// values are cumulative distances; each tick applies the difference
// since the previous tick as a pan delta.
type flingAnim struct {
	tweenX, tweenY *gween.Tween
	lastX, lastY   float32
	doneX, doneY   bool
}

// scrollAnim holds an active animated-pan tween pair.
type scrollAnim struct {
	tweenX, tweenY *gween.Tween
	lastX, lastY   float32
	doneX, doneY   bool
}

// Fling starts an inertial pan with the given release velocity in
// screen pixels per second, decelerating to rest over about a second.
// While the fling runs there is no touch point, so the viewport center
// is the wrap anchor. Any new gesture cancels the fling.
func (e *Engine) Fling(vx, vy float64) {
	if !allFinite(vx, vy) {
		return
	}
	// With an OutCubic ramp the initial slope is 3·distance/duration,
	// so distance = v·T/3 matches the release velocity.
	dx := vx * float64(flingDuration) / 3
	dy := vy * float64(flingDuration) / 3
	e.fling = &flingAnim{
		tweenX: gween.New(0, float32(dx), flingDuration, ease.OutCubic),
		tweenY: gween.New(0, float32(dy), flingDuration, ease.OutCubic),
	}
}

// ScrollBy animates a pan of (dx, dy) screen pixels over duration
// seconds with the given easing, through the same wrap pathway as a
// live pan. Replaces any fling or scroll already running.
func (e *Engine) ScrollBy(dx, dy float64, duration float32, fn ease.TweenFunc) {
	if !allFinite(dx, dy) {
		return
	}
	e.fling = nil
	e.scroll = &scrollAnim{
		tweenX: gween.New(0, float32(dx), duration, fn),
		tweenY: gween.New(0, float32(dy), duration, fn),
	}
}

// Scrolling reports whether a fling or scroll animation is running.
func (e *Engine) Scrolling() bool {
	return e.fling != nil || e.scroll != nil
}

// stopMomentum cancels any running fling or scroll. Called when a live
// gesture takes over.
func (e *Engine) stopMomentum() {
	e.fling = nil
	e.scroll = nil
}

// Update advances momentum and scroll animations by dt seconds. Call
// once per frame from the host game loop. Deltas are applied through
// the normal wrap pathway with the viewport center as the anchor, so
// tile swaps during inertia stay seamless.
func (e *Engine) Update(dt float32) {
	cx, cy := e.cam.center()

	if f := e.fling; f != nil {
		dx, dy := f.step(dt)
		e.panBy(dx, dy, cx, cy)
		if f.doneX && f.doneY {
			e.fling = nil
		}
	}

	if s := e.scroll; s != nil {
		dx, dy := s.step(dt)
		e.panBy(dx, dy, cx, cy)
		if s.doneX && s.doneY {
			e.scroll = nil
		}
	}
}

func (f *flingAnim) step(dt float32) (dx, dy float64) {
	if !f.doneX {
		val, done := f.tweenX.Update(dt)
		dx = float64(val - f.lastX)
		f.lastX = val
		f.doneX = done
	}
	if !f.doneY {
		val, done := f.tweenY.Update(dt)
		dy = float64(val - f.lastY)
		f.lastY = val
		f.doneY = done
	}
	return dx, dy
}

func (s *scrollAnim) step(dt float32) (dx, dy float64) {
	if !s.doneX {
		val, done := s.tweenX.Update(dt)
		dx = float64(val - s.lastX)
		s.lastX = val
		s.doneX = done
	}
	if !s.doneY {
		val, done := s.tweenY.Update(dt)
		dy = float64(val - s.lastY)
		s.lastY = val
		s.doneY = done
	}
	return dx, dy
}

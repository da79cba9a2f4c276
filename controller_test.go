package banyan

import (
	"math"
	"testing"
)

// Controller tests drive the synthetic gesture queue only, so they run
// headlessly: each Update call has a queued gesture, which suppresses
// real input reads for that frame.

func testController() *Controller {
	return NewController(testEngine())
}

func TestNewControllerDefaults(t *testing.T) {
	c := testController()
	if c.WheelZoomStep != defaultWheelZoomStep {
		t.Errorf("WheelZoomStep = %f, want %f", c.WheelZoomStep, defaultWheelZoomStep)
	}
	if c.DragDeadZone != defaultDragDeadZone {
		t.Errorf("DragDeadZone = %f, want %f", c.DragDeadZone, defaultDragDeadZone)
	}
	if !c.FlingEnabled || !c.RotateEnabled {
		t.Error("fling and rotation should default to enabled")
	}
	if c.Engine() == nil {
		t.Error("Engine() returned nil")
	}
}

func TestInjectZoom(t *testing.T) {
	c := testController()
	c.InjectZoom(2.0, 500, 500)
	c.Update()

	if !approxEqual(c.Engine().Camera().Zoom, 2.0, epsilon) {
		t.Errorf("zoom = %f, want 2.0", c.Engine().Camera().Zoom)
	}
}

func TestInjectOneGesturePerFrame(t *testing.T) {
	c := testController()
	c.InjectPan(-10, 0, 500, 500)
	c.InjectPan(-15, 0, 500, 500)

	c.Update()
	if got := c.Engine().Camera().PanX; !approxEqual(got, -10, epsilon) {
		t.Errorf("PanX after first frame = %f, want -10", got)
	}

	c.Update()
	if got := c.Engine().Camera().PanX; !approxEqual(got, -25, epsilon) {
		t.Errorf("PanX after second frame = %f, want -25", got)
	}
}

func TestInjectDrag(t *testing.T) {
	c := testController()
	c.InjectDrag(500, 500, 560, 530, 3)

	for i := 0; i < 3; i++ {
		c.Update()
	}
	cam := c.Engine().Camera()
	if !approxEqual(cam.PanX, 60, 1e-9) || !approxEqual(cam.PanY, 30, 1e-9) {
		t.Errorf("drag panned (%f,%f), want (60,30)", cam.PanX, cam.PanY)
	}
}

func TestInjectDragMinimumOneFrame(t *testing.T) {
	c := testController()
	c.InjectDrag(500, 500, 520, 500, 0)
	c.Update()

	if !approxEqual(c.Engine().Camera().PanX, 20, 1e-9) {
		t.Errorf("PanX = %f, want 20", c.Engine().Camera().PanX)
	}
}

func TestInjectRotate(t *testing.T) {
	c := testController()
	c.InjectRotate(math.Pi/6, 400, 300)
	c.Update()

	if !approxEqual(c.Engine().Camera().Rotation, math.Pi/6, epsilon) {
		t.Errorf("rotation = %f, want pi/6", c.Engine().Camera().Rotation)
	}
}

func TestInjectFling(t *testing.T) {
	c := testController()
	c.InjectFling(400, 0)
	c.Update()

	if !c.Engine().Scrolling() {
		t.Fatal("fling not running after injection")
	}
	pump(c.Engine(), 1.5)
	if c.Engine().Scrolling() {
		t.Error("fling still running after its duration")
	}
	if !approxEqual(c.Engine().Camera().PanX, 160, 1.5) {
		t.Errorf("fling travelled %f px, want ~160", c.Engine().Camera().PanX)
	}
}

func TestInjectPinch(t *testing.T) {
	c := testController()
	c.InjectPinch(-20, 10, 1.8, math.Pi/8, 500, 500)

	for i := 0; i < 3; i++ {
		c.Update()
	}
	cam := c.Engine().Camera()
	if !approxEqual(cam.Zoom, 1.8, epsilon) {
		t.Errorf("zoom = %f, want 1.8", cam.Zoom)
	}
	if !approxEqual(cam.Rotation, math.Pi/8, epsilon) {
		t.Errorf("rotation = %f, want pi/8", cam.Rotation)
	}
}

func TestConsumeInjectedEmptyQueue(t *testing.T) {
	c := testController()
	if c.consumeInjected() {
		t.Error("consumeInjected reported a gesture on an empty queue")
	}
}

func TestInjectedGestureCrossesTiles(t *testing.T) {
	c := testController()
	c.Engine().SetDebug(true)
	orig := c.Engine().Active()

	c.InjectPan(-700, 0, 500, 500)
	c.Update()

	if c.Engine().Active() != orig.Neighbor(East) {
		t.Error("injected pan did not wrap to the east neighbor")
	}
}

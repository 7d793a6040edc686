package linden

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func approxEps(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// --- Defaults ---

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	if cam.Zoom != 1.0 {
		t.Errorf("Zoom = %f, want 1.0", cam.Zoom)
	}
	if !cam.CullEnabled {
		t.Error("CullEnabled = false, want true")
	}
	if cam.Viewport.Width != 800 || cam.Viewport.Height != 600 {
		t.Errorf("Viewport = %v, want 800x600", cam.Viewport)
	}
}

// --- View matrix ---

func TestCameraIdentityView(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	// At (0,0), zoom 1, no rotation, the world origin maps to the viewport center.
	sx, sy := cam.WorldToScreen(0, 0)
	assertPoint(t, sx, sy, 400, 300)
}

func TestCameraTranslation(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.X = 100
	cam.Y = 50
	// The camera looks at (100, 50), so that point maps to the viewport center.
	sx, sy := cam.WorldToScreen(100, 50)
	assertPoint(t, sx, sy, 400, 300)
}

func TestCameraZoom(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.Zoom = 2.0
	// At zoom 2, a point one unit from the look-at point lands two pixels out.
	sx1, _ := cam.WorldToScreen(1, 0)
	sx0, _ := cam.WorldToScreen(0, 0)
	if !approx(sx1-sx0, 2.0) {
		t.Errorf("screen distance = %v, want 2", sx1-sx0)
	}
}

func TestCameraViewCacheTracksFieldEdits(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.ViewMatrix()
	// Direct field mutation must be picked up without any dirty-marking call.
	cam.X = 10
	sx, _ := cam.WorldToScreen(10, 0)
	if !approx(sx, 400) {
		t.Errorf("WorldToScreen(10,0) after moving camera = %v, want 400", sx)
	}
}

func TestCameraScreenToWorldRoundTrip(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.X = 37
	cam.Y = -12
	cam.Zoom = 1.5
	cam.Rotation = 0.3

	sx, sy := cam.WorldToScreen(100, 200)
	wx, wy := cam.ScreenToWorld(sx, sy)
	if !approxEps(wx, 100, 1e-6) || !approxEps(wy, 200, 1e-6) {
		t.Errorf("round trip = (%v, %v), want (100, 200)", wx, wy)
	}
}

// --- Visible bounds ---

func TestCameraVisibleBounds(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.X = 400
	cam.Y = 300
	b := cam.VisibleBounds()
	if !approx(b.X, 0) || !approx(b.Y, 0) || !approx(b.Width, 800) || !approx(b.Height, 600) {
		t.Errorf("VisibleBounds = %v, want {0 0 800 600}", b)
	}
}

func TestCameraVisibleBoundsZoomed(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.Zoom = 2.0
	b := cam.VisibleBounds()
	if !approx(b.Width, 400) || !approx(b.Height, 300) {
		t.Errorf("VisibleBounds at zoom 2 = %v, want 400x300", b)
	}
}

// --- Scroll animation ---

func TestCameraScrollTo(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.ScrollTo(100, 200, 1.0, ease.Linear)

	cam.update(0.5)
	if !approxEps(cam.X, 50, 0.01) || !approxEps(cam.Y, 100, 0.01) {
		t.Errorf("mid-scroll position = (%v, %v), want (50, 100)", cam.X, cam.Y)
	}

	cam.update(0.5)
	if !approxEps(cam.X, 100, 0.01) || !approxEps(cam.Y, 200, 0.01) {
		t.Errorf("final position = (%v, %v), want (100, 200)", cam.X, cam.Y)
	}
	if cam.scrollTween != nil {
		t.Error("finished scroll should clear the tween")
	}
}

// --- Follow ---

func TestCameraFollowSnap(t *testing.T) {
	target := NewPath("target", RectPath(0, 0, 10, 10))
	target.SetPosition(250, 125)

	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.Follow(target, 0, 0, 1.0)
	cam.update(1.0 / 60)

	if !approx(cam.X, 250) || !approx(cam.Y, 125) {
		t.Errorf("camera = (%v, %v), want (250, 125)", cam.X, cam.Y)
	}
}

func TestCameraFollowLerp(t *testing.T) {
	target := NewPath("target", RectPath(0, 0, 10, 10))
	target.SetPosition(100, 0)

	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.Follow(target, 0, 0, 0.5)
	cam.update(1.0 / 60)

	if !approx(cam.X, 50) {
		t.Errorf("camera X after one half-lerp step = %v, want 50", cam.X)
	}
}

// --- Bounds clamping ---

func TestCameraClampToBounds(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.SetBounds(Rect{X: 0, Y: 0, Width: 2000, Height: 2000})

	cam.X = -500
	cam.Y = 5000
	cam.update(1.0 / 60)

	// Half the visible area is 400x300, so the center is clamped to
	// [400, 1600] x [300, 1700].
	if !approx(cam.X, 400) {
		t.Errorf("clamped X = %v, want 400", cam.X)
	}
	if !approx(cam.Y, 1700) {
		t.Errorf("clamped Y = %v, want 1700", cam.Y)
	}
}

func TestCameraClampSmallBoundsCenters(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.SetBounds(Rect{X: 0, Y: 0, Width: 100, Height: 100})

	cam.X = 9999
	cam.Y = 9999
	cam.ClampToBounds()

	if !approx(cam.X, 50) || !approx(cam.Y, 50) {
		t.Errorf("camera = (%v, %v), want centered (50, 50)", cam.X, cam.Y)
	}
}

// --- Culling ---

func TestShouldCull(t *testing.T) {
	visible := Rect{X: 0, Y: 0, Width: 800, Height: 600}

	inside := NewPath("inside", RectPath(0, 0, 50, 50))
	inside.SetPosition(100, 100)
	if shouldCull(inside, visible) {
		t.Error("node inside the visible area should not be culled")
	}

	outside := NewPath("outside", RectPath(0, 0, 50, 50))
	outside.SetPosition(2000, 2000)
	if !shouldCull(outside, visible) {
		t.Error("node outside the visible area should be culled")
	}

	group := NewGroup("g")
	group.SetPosition(5000, 5000)
	if shouldCull(group, visible) {
		t.Error("groups are never culled")
	}

	empty := NewPath("empty", NewPathData())
	empty.SetPosition(5000, 5000)
	if shouldCull(empty, visible) {
		t.Error("nodes with no geometry cannot be sized and are kept")
	}
}

func TestSceneDrawCullsWithCamera(t *testing.T) {
	scene := NewScene()
	inside := NewPath("inside", RectPath(0, 0, 50, 50))
	outside := NewPath("outside", RectPath(0, 0, 50, 50))
	outside.SetPosition(5000, 5000)
	scene.Root().AddChild(inside)
	scene.Root().AddChild(outside)

	rec := newRecordingSurface()
	rec.labelPath(inside.Path, "inside")
	rec.labelPath(outside.Path, "outside")

	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.X = 400
	cam.Y = 300
	scene.SetCamera(cam)

	scene.Draw(rec)

	if !rec.hasCall("FillPath inside") {
		t.Error("visible node should be painted")
	}
	if rec.hasCall("FillPath outside") {
		t.Error("off-screen node should be culled")
	}
}

package linden

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera controls the view into the scene: position, zoom, rotation, and
// viewport. A scene draws without one by default; attach a camera with
// [Scene.SetCamera] to pan and zoom over a document larger than the surface.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the surface-space rectangle this camera renders into.
	Viewport Rect

	// CullEnabled skips leaf nodes whose world bounds fall entirely outside
	// the camera's visible area.
	CullEnabled bool

	followTarget  *Node
	followOffsetX float64
	followOffsetY float64
	followLerp    float64

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to when
	// BoundsEnabled is true.
	Bounds Rect

	view    Matrix
	invView Matrix
	viewFor camKey
	viewOK  bool

	scrollTween *scrollAnim
}

// camKey is the set of inputs the cached view matrix was computed from. The
// cache is checked by value comparison, so direct mutation of the public
// fields needs no dirty-marking call.
type camKey struct {
	x, y, zoom, rot float64
	viewport        Rect
}

// NewCamera creates a camera with default values and the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:        1.0,
		Viewport:    viewport,
		CullEnabled: true,
	}
}

// Follow makes the camera track a target node with the given offset and lerp
// factor. A lerp of 1.0 snaps immediately; lower values give smoother
// following.
func (c *Camera) Follow(node *Node, offsetX, offsetY, lerp float64) {
	c.followTarget = node
	c.followOffsetX = offsetX
	c.followOffsetY = offsetY
	c.followLerp = lerp
}

// Unfollow stops tracking the current target node.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// ScrollTo animates the camera to the given world position over duration
// seconds. The animation advances from [Scene.Update].
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// ClampToBounds immediately clamps the camera position so the visible area
// stays within Bounds. Call this after modifying X/Y directly (e.g. in a
// drag callback) to prevent a single frame where the camera sees outside
// the bounds. No-op if BoundsEnabled is false.
func (c *Camera) ClampToBounds() {
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// update advances follow, scroll, and bounds clamping. Called from Scene.Update.
func (c *Camera) update(dt float32) {
	// Follow target
	if c.followTarget != nil && !c.followTarget.IsDisposed() {
		wx, wy := c.followTarget.LocalToWorld(0, 0)
		c.X += (wx + c.followOffsetX - c.X) * c.followLerp
		c.Y += (wy + c.followOffsetY - c.Y) * c.followLerp
	}

	// Scroll animation
	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	// Bounds clamping
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// clampToBounds restricts camera position so the visible area stays within Bounds.
func (c *Camera) clampToBounds() {
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	// If bounds are smaller than the visible area, center the camera.
	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// ViewMatrix returns the world-to-surface transform:
//
//	Translate(viewport center) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
//
// The matrix and its inverse are cached and recomputed only when a camera
// parameter has changed since the last call.
func (c *Camera) ViewMatrix() Matrix {
	key := camKey{x: c.X, y: c.Y, zoom: c.Zoom, rot: c.Rotation, viewport: c.Viewport}
	if c.viewOK && key == c.viewFor {
		return c.view
	}

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	m := Translation(cx, cy).
		Mul(Scaling(c.Zoom, c.Zoom)).
		Mul(RotationMatrix(-c.Rotation)).
		Mul(Translation(-c.X, -c.Y))

	c.view = m
	c.invView = m.Invert()
	c.viewFor = key
	c.viewOK = true
	return c.view
}

// WorldToScreen converts world coordinates to surface coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return c.ViewMatrix().Apply(wx, wy)
}

// ScreenToWorld converts surface coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.ViewMatrix()
	return c.invView.Apply(sx, sy)
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's
// visible area in world space.
func (c *Camera) VisibleBounds() Rect {
	c.ViewMatrix()
	return mapRect(c.invView, c.Viewport)
}

// --- Culling ---

// shouldCull reports whether the node can be skipped for this pass. Groups
// are never culled (their children may extend beyond their own geometry's
// neighborhood); leaf nodes are culled when their own world-space bounds
// miss the camera's visible area entirely. Nodes with no geometry cannot be
// sized and are kept.
func shouldCull(n *Node, cullBounds Rect) bool {
	if n.Type == NodeTypeGroup {
		return false
	}
	r, ok := ownBounds(n)
	if !ok {
		return false
	}
	return !mapRect(n.WorldMatrix(), r).Intersects(cullBounds)
}

package linden

// Surface is an immediate-mode 2D drawing target. The scene graph draws
// through this interface only; backends (CPU raster, Ebitengine) implement it.
//
// A Surface carries mutable state: the current transform, the active font and
// justification, and the active composite operator. Save pushes a snapshot of
// that state and Restore pops it. Every node draw is wrapped in a Save/Restore
// pair, so a node's state mutations never leak to its siblings.
type Surface interface {
	// Save pushes the current surface state (transform, font, justification,
	// composite operator).
	Save()
	// Restore pops to the most recently saved state.
	Restore()

	// Translate moves the drawing origin by (dx, dy) in the current space.
	Translate(dx, dy float64)
	// Concat multiplies the current transform by m.
	Concat(m Matrix)

	// SetFont selects the active font face by family name and pixel size.
	// Unknown families fall back to the backend's default face.
	SetFont(family string, size float64)
	// SetJustification sets how FillText and StrokeText anchor runs at x.
	SetJustification(j Justification)
	// MeasureText returns the rendered pixel width of s under the active font.
	MeasureText(s string) float64
	// FillText paints a filled glyph run with its baseline at (x, y).
	FillText(s string, x, y float64, c Color)
	// StrokeText paints an outlined glyph run with its baseline at (x, y).
	StrokeText(s string, x, y float64, c Color)

	// FillPath fills the path under the current transform.
	FillPath(p *PathData, c Color)
	// StrokePath strokes the path outline at the given local width.
	StrokePath(p *PathData, c Color, width float64)

	// CompositeOp returns the active composite operator.
	CompositeOp() CompositeOp
	// SetCompositeOp sets the active composite operator for subsequent paints.
	SetCompositeOp(op CompositeOp)
}

// RenderParams carries per-pass state shared down a draw call tree. One value
// is threaded through the whole pass; nodes write into it and backends may
// read from it.
type RenderParams struct {
	// LayerOffset is the floored top-left of the stroke-inclusive bounding box
	// of the most recent group drawn with clip masks. Backends that allocate a
	// temporary compositing layer use it to align that layer with the group.
	LayerOffset Vec2

	// alpha is the accumulated node alpha, 1 at the root.
	alpha float64

	// cull enables world-space culling against cullBounds. Set by Scene.Draw
	// when the attached camera asks for it.
	cull       bool
	cullBounds Rect

	// stats collects paint metrics for the pass. Nil outside debug mode.
	stats *drawStats
}

// NewRenderParams returns params ready for a fresh pass.
func NewRenderParams() *RenderParams {
	return &RenderParams{alpha: 1}
}

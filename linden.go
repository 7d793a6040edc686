package linden

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to a surface.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is opaque black, the default fill for vector shapes and text.
var ColorBlack = Color{0, 0, 0, 1}

// RGBA implements the color.Color interface. The returned components are
// alpha-premultiplied in the 16-bit range, matching image/color conventions.
func (c Color) RGBA() (r, g, b, a uint32) {
	ca := clamp01(c.A)
	r = uint32(clamp01(c.R) * ca * 0xffff)
	g = uint32(clamp01(c.G) * ca * 0xffff)
	b = uint32(clamp01(c.B) * ca * 0xffff)
	a = uint32(ca * 0xffff)
	return
}

// scaleAlpha returns c with its alpha multiplied by a.
func scaleAlpha(c Color, a float64) Color {
	c.A *= a
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// CompositeOp selects a Porter-Duff compositing operation. It governs how
// newly painted pixels combine with pixels already on the surface. The active
// operator is surface state: the only component that swaps it is a group
// painting a clip-mask child, and that swap is save/restore scoped.
type CompositeOp uint8

const (
	CompositeSourceOver      CompositeOp = iota // standard alpha blending (default)
	CompositeSourceIn                           // source kept only where destination exists
	CompositeSourceOut                          // source kept only where destination is empty
	CompositeSourceAtop                         // source drawn onto destination coverage
	CompositeDestinationOver                    // draw behind existing content
	CompositeDestinationIn                      // destination kept only where source covers
	CompositeDestinationOut                     // destination erased where source covers
	CompositeDestinationAtop                    // destination kept on source coverage, source behind
	CompositeLighter                            // additive
	CompositeCopy                               // opaque copy (skip blending)
	CompositeXor                                // source and destination where they do not overlap
)

// NodeType distinguishes drawing behavior for a Node.
type NodeType uint8

const (
	NodeTypeGroup     NodeType = iota // container; composites children with clip masks
	NodeTypePath                      // fills and/or strokes retained path geometry
	NodeTypeTextFrame                 // wraps and paints text inside its path's bounding box
)

// Justification controls horizontal text alignment within a text frame.
type Justification uint8

const (
	JustifyLeft   Justification = iota // align text to the left edge (default)
	JustifyCenter                      // center text horizontally
	JustifyRight                       // align text to the right edge
)

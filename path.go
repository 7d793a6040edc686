package linden

// PathVerb identifies one step of a retained path.
type PathVerb uint8

const (
	VerbMoveTo  PathVerb = iota // starts a new subpath; consumes 1 point
	VerbLineTo                  // consumes 1 point
	VerbQuadTo                  // consumes 2 points: control, end
	VerbCubicTo                 // consumes 3 points: control1, control2, end
	VerbClose                   // closes the current subpath; consumes no points
)

// pointsPerVerb maps each PathVerb to the number of points it consumes.
// Surfaces use this to walk the verb and point slices in lockstep.
var pointsPerVerb = [...]int{
	VerbMoveTo:  1,
	VerbLineTo:  1,
	VerbQuadTo:  2,
	VerbCubicTo: 3,
	VerbClose:   0,
}

// PointsPerVerb returns the number of points the given verb consumes.
func PointsPerVerb(v PathVerb) int {
	return pointsPerVerb[v]
}

// PathData is retained path geometry: a verb list and a point list consumed
// in lockstep. Mutating operations mark the cached bounding box dirty; the
// box is recomputed lazily by Bounds.
type PathData struct {
	verbs  []PathVerb
	points []Vec2

	bounds      Rect
	boundsDirty bool
}

// NewPathData returns an empty path.
func NewPathData() *PathData {
	return &PathData{}
}

// MoveTo starts a new subpath at (x, y).
func (p *PathData) MoveTo(x, y float64) {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, Vec2{x, y})
	p.boundsDirty = true
}

// LineTo adds a line segment to (x, y).
func (p *PathData) LineTo(x, y float64) {
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, Vec2{x, y})
	p.boundsDirty = true
}

// QuadTo adds a quadratic Bezier segment through control (cx, cy) to (x, y).
func (p *PathData) QuadTo(cx, cy, x, y float64) {
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, Vec2{cx, cy}, Vec2{x, y})
	p.boundsDirty = true
}

// CubicTo adds a cubic Bezier segment through controls (c1x, c1y) and
// (c2x, c2y) to (x, y).
func (p *PathData) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, Vec2{c1x, c1y}, Vec2{c2x, c2y}, Vec2{x, y})
	p.boundsDirty = true
}

// Close closes the current subpath back to its starting point.
func (p *PathData) Close() {
	p.verbs = append(p.verbs, VerbClose)
}

// Empty reports whether the path has no segments.
func (p *PathData) Empty() bool {
	return len(p.verbs) == 0
}

// Verbs returns the verb list. The returned slice MUST NOT be mutated by the caller.
func (p *PathData) Verbs() []PathVerb {
	return p.verbs
}

// Points returns the point list. The returned slice MUST NOT be mutated by the caller.
func (p *PathData) Points() []Vec2 {
	return p.points
}

// Bounds returns the axis-aligned bounding box of the path's anchor and
// control points. Control points of Bezier segments are included, so the box
// is conservative: never smaller than the curve, occasionally larger.
func (p *PathData) Bounds() Rect {
	if !p.boundsDirty {
		return p.bounds
	}
	p.boundsDirty = false

	if len(p.points) == 0 {
		p.bounds = Rect{}
		return p.bounds
	}

	minX, minY := p.points[0].X, p.points[0].Y
	maxX, maxY := minX, minY
	for _, pt := range p.points[1:] {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}
	p.bounds = Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
	return p.bounds
}

// Clone returns a deep copy of the path.
func (p *PathData) Clone() *PathData {
	c := &PathData{
		verbs:       append([]PathVerb(nil), p.verbs...),
		points:      append([]Vec2(nil), p.points...),
		bounds:      p.bounds,
		boundsDirty: p.boundsDirty,
	}
	return c
}

// --- Shape helpers ---

// kappa is the cubic Bezier control point distance for circle approximation:
// 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// RectPath returns a closed rectangular path.
func RectPath(x, y, w, h float64) *PathData {
	p := NewPathData()
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

// EllipsePath returns a closed ellipse approximated by four cubic segments.
func EllipsePath(cx, cy, rx, ry float64) *PathData {
	kx := kappa * rx
	ky := kappa * ry
	p := NewPathData()
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.Close()
	return p
}

// CirclePath returns a closed circle approximated by four cubic segments.
func CirclePath(cx, cy, r float64) *PathData {
	return EllipsePath(cx, cy, r, r)
}

// PolygonPath returns a closed polygon through the given points.
// Returns an empty path when fewer than three points are supplied.
func PolygonPath(points []Vec2) *PathData {
	p := NewPathData()
	if len(points) < 3 {
		return p
	}
	p.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
	return p
}

// Package ebitengine is a GPU backend for linden scene graphs, built on
// [Ebitengine].
//
// A [Surface] wraps a destination image. Paths are tessellated through
// Ebitengine's vector package and submitted as triangles; text renders
// through text/v2. Paints under a non-source-over operator go through an
// offscreen layer that is composed back with the matching blend, so all
// eleven Porter-Duff operators keep their whole-surface semantics on the
// GPU.
//
// [Ebitengine]: https://ebitengine.org
package ebitengine

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/linden"
)

// WhitePixel is a 1x1 white image used as the texture for solid color
// triangles.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(color.White)
}

// state is one snapshot of the mutable surface state.
type state struct {
	matrix  linden.Matrix
	op      linden.CompositeOp
	family  string
	size    float64
	justify linden.Justification
}

// Surface is an Ebitengine-backed implementation of [linden.Surface].
//
// A Surface is meant to live across frames: construct it once, then point it
// at the frame's destination with [Surface.SetTarget] before each pass. The
// font set and scratch allocations carry over.
type Surface struct {
	dst     *ebiten.Image
	scratch *ebiten.Image

	fonts *FontSet

	state state
	stack []state

	// Reused triangle buffers.
	vs []ebiten.Vertex
	is []uint16
}

var _ linden.Surface = (*Surface)(nil) // assert interface conformance

// New creates a surface that draws onto dst, with the Go Regular face
// registered under [DefaultFamily].
func New(dst *ebiten.Image) *Surface {
	return &Surface{
		dst:   dst,
		fonts: NewFontSet(),
		state: state{
			matrix: linden.Identity(),
			family: DefaultFamily,
			size:   defaultSize,
		},
	}
}

// SetTarget points the surface at a new destination image. State, fonts, and
// buffers are kept.
func (s *Surface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

// Fonts returns the surface's font set for registering additional families.
func (s *Surface) Fonts() *FontSet {
	return s.fonts
}

// --- State stack ---

// Save pushes the current surface state.
func (s *Surface) Save() {
	s.stack = append(s.stack, s.state)
}

// Restore pops to the most recently saved state. Unbalanced calls are ignored.
func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// Translate moves the drawing origin by (dx, dy) in the current space.
func (s *Surface) Translate(dx, dy float64) {
	s.state.matrix = s.state.matrix.Mul(linden.Translation(dx, dy))
}

// Concat multiplies the current transform by m.
func (s *Surface) Concat(m linden.Matrix) {
	s.state.matrix = s.state.matrix.Mul(m)
}

// CompositeOp returns the active composite operator.
func (s *Surface) CompositeOp() linden.CompositeOp {
	return s.state.op
}

// SetCompositeOp sets the operator subsequent paints compose under.
func (s *Surface) SetCompositeOp(op linden.CompositeOp) {
	s.state.op = op
}

// --- Path painting ---

// FillPath fills p under the current transform using the non-zero winding rule.
func (s *Surface) FillPath(p *linden.PathData, c linden.Color) {
	if p == nil || p.Empty() || c.A <= 0 {
		return
	}
	var vp vector.Path
	buildPath(&vp, s.state.matrix, p)
	s.vs, s.is = vp.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.paintTriangles(c, ebiten.FillRuleNonZero)
}

// StrokePath strokes p's outline with butt caps and miter joins. The width
// is given in path-local units and converted to device units by the current
// transform's scale.
func (s *Surface) StrokePath(p *linden.PathData, c linden.Color, width float64) {
	if p == nil || p.Empty() || c.A <= 0 || width <= 0 {
		return
	}
	dev := width * s.state.matrix.Scale()
	if dev <= 0 {
		return
	}
	var vp vector.Path
	buildPath(&vp, s.state.matrix, p)
	opts := &vector.StrokeOptions{
		Width:      float32(dev),
		LineCap:    vector.LineCapButt,
		LineJoin:   vector.LineJoinMiter,
		MiterLimit: 4,
	}
	s.vs, s.is = vp.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], opts)
	s.paintTriangles(c, ebiten.FillRuleFillAll)
}

// buildPath walks p's verbs, transforms every point by m, and appends the
// result to vp. A drawing verb with no open subpath starts one at the
// segment's end point.
func buildPath(vp *vector.Path, m linden.Matrix, p *linden.PathData) {
	pts := p.Points()
	pi := 0
	open := false
	for _, v := range p.Verbs() {
		switch v {
		case linden.VerbMoveTo:
			x, y := m.Apply(pts[pi].X, pts[pi].Y)
			pi++
			vp.MoveTo(float32(x), float32(y))
			open = true
		case linden.VerbLineTo:
			x, y := m.Apply(pts[pi].X, pts[pi].Y)
			pi++
			if !open {
				vp.MoveTo(float32(x), float32(y))
				open = true
				continue
			}
			vp.LineTo(float32(x), float32(y))
		case linden.VerbQuadTo:
			cx, cy := m.Apply(pts[pi].X, pts[pi].Y)
			x, y := m.Apply(pts[pi+1].X, pts[pi+1].Y)
			pi += 2
			if !open {
				vp.MoveTo(float32(x), float32(y))
				open = true
				continue
			}
			vp.QuadTo(float32(cx), float32(cy), float32(x), float32(y))
		case linden.VerbCubicTo:
			c1x, c1y := m.Apply(pts[pi].X, pts[pi].Y)
			c2x, c2y := m.Apply(pts[pi+1].X, pts[pi+1].Y)
			x, y := m.Apply(pts[pi+2].X, pts[pi+2].Y)
			pi += 3
			if !open {
				vp.MoveTo(float32(x), float32(y))
				open = true
				continue
			}
			vp.CubicTo(float32(c1x), float32(c1y), float32(c2x), float32(c2y), float32(x), float32(y))
		case linden.VerbClose:
			if open {
				vp.Close()
				open = false
			}
		}
	}
}

// paintTriangles colors the buffered vertices and submits them, through the
// offscreen layer when the active operator requires whole-surface
// compositing.
func (s *Surface) paintTriangles(c linden.Color, rule ebiten.FillRule) {
	if len(s.is) == 0 {
		return
	}
	for i := range s.vs {
		v := &s.vs[i]
		v.SrcX = 0.5
		v.SrcY = 0.5
		v.ColorR = float32(c.R)
		v.ColorG = float32(c.G)
		v.ColorB = float32(c.B)
		v.ColorA = float32(c.A)
	}

	target, composed := s.paintTarget()
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  rule,
	}
	target.DrawTriangles(s.vs, s.is, WhitePixel, op)
	if composed {
		s.composeScratch()
	}
}

// paintTarget returns the image the next paint should draw into. Under
// source-over that is the destination itself; any other operator routes
// through a cleared offscreen layer.
func (s *Surface) paintTarget() (*ebiten.Image, bool) {
	if s.state.op == linden.CompositeSourceOver {
		return s.dst, false
	}
	b := s.dst.Bounds()
	if s.scratch != nil {
		sb := s.scratch.Bounds()
		if sb.Dx() != b.Dx() || sb.Dy() != b.Dy() {
			s.scratch.Deallocate()
			s.scratch = nil
		}
	}
	if s.scratch == nil {
		s.scratch = ebiten.NewImage(b.Dx(), b.Dy())
	} else {
		s.scratch.Clear()
	}
	return s.scratch, true
}

// composeScratch blends the offscreen layer onto the destination under the
// active operator. Drawing the full layer rect makes the blend touch every
// destination pixel, which operators like source-in depend on.
func (s *Surface) composeScratch() {
	var op ebiten.DrawImageOptions
	op.Blend = compositeBlend(s.state.op)
	s.dst.DrawImage(s.scratch, &op)
}

// Package raster is a CPU backend for linden scene graphs, built on the
// rasterx scan converter.
//
// A [Surface] rasterizes into an in-memory RGBA image. Every paint operation
// goes through a transparent scratch layer that is then composed onto the
// image under the active Porter-Duff operator, so all eleven operators work
// uniformly for fills, strokes, and text.
//
// Text renders through x/image font faces. Glyphs scale with the current
// transform but stay upright: rotation moves the run's anchor, not the
// letterforms.
package raster

import (
	"image"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/phanxgames/linden"
)

// state is one snapshot of the mutable surface state.
type state struct {
	matrix  linden.Matrix
	op      linden.CompositeOp
	family  string
	size    float64
	justify linden.Justification
}

// Surface is a CPU-rasterizing implementation of [linden.Surface] backed by
// an RGBA image.
type Surface struct {
	width  int
	height int

	img     *image.RGBA
	scratch *image.RGBA

	scanner *rasterx.ScannerGV
	filler  *rasterx.Filler
	stroker *rasterx.Dasher

	fonts *fontSet

	state state
	stack []state
}

var _ linden.Surface = (*Surface)(nil) // assert interface conformance

// New creates a width x height surface with a fully transparent image and
// the Go Regular face registered under [DefaultFamily].
func New(width, height int) *Surface {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scratch := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, scratch, scratch.Bounds())
	return &Surface{
		width:   width,
		height:  height,
		img:     img,
		scratch: scratch,
		scanner: scanner,
		filler:  rasterx.NewFiller(width, height, scanner),
		stroker: rasterx.NewDasher(width, height, scanner),
		fonts:   newFontSet(),
		state: state{
			matrix: linden.Identity(),
			family: DefaultFamily,
			size:   defaultSize,
		},
	}
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Clear replaces every pixel of the image with c.
func (s *Surface) Clear(c linden.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
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
	s.clearScratch()
	s.scanner.SetColor(c)
	addPath(s.filler, s.state.matrix, p)
	s.filler.Draw()
	s.filler.Clear()
	s.compose()
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
	s.clearScratch()
	s.scanner.SetColor(c)
	s.stroker.SetStroke(
		fixed.Int26_6(dev*64), fixed.Int26_6(4*64),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter,
		nil, 0)
	addPath(s.stroker, s.state.matrix, p)
	s.stroker.Draw()
	s.stroker.Clear()
	s.compose()
}

// pathSink is the subset of rasterx sinks addPath feeds. Both Filler and
// Dasher satisfy it.
type pathSink interface {
	Start(a fixed.Point26_6)
	Line(b fixed.Point26_6)
	QuadBezier(b, c fixed.Point26_6)
	CubeBezier(b, c, d fixed.Point26_6)
	Stop(closeLoop bool)
}

// addPath walks p's verbs, transforms every point by m, and feeds the result
// to sink. A drawing verb with no open subpath starts one at the segment's
// end point. Trailing open subpaths are stopped without closing.
func addPath(sink pathSink, m linden.Matrix, p *linden.PathData) {
	verbs := p.Verbs()
	points := p.Points()
	pi := 0
	open := false
	for _, v := range verbs {
		switch v {
		case linden.VerbMoveTo:
			if open {
				sink.Stop(false)
			}
			sink.Start(devicePoint(m, points[pi]))
			pi++
			open = true
		case linden.VerbLineTo:
			pt := devicePoint(m, points[pi])
			pi++
			if !open {
				sink.Start(pt)
				open = true
				continue
			}
			sink.Line(pt)
		case linden.VerbQuadTo:
			ctrl := devicePoint(m, points[pi])
			end := devicePoint(m, points[pi+1])
			pi += 2
			if !open {
				sink.Start(end)
				open = true
				continue
			}
			sink.QuadBezier(ctrl, end)
		case linden.VerbCubicTo:
			c1 := devicePoint(m, points[pi])
			c2 := devicePoint(m, points[pi+1])
			end := devicePoint(m, points[pi+2])
			pi += 3
			if !open {
				sink.Start(end)
				open = true
				continue
			}
			sink.CubeBezier(c1, c2, end)
		case linden.VerbClose:
			if open {
				sink.Stop(true)
				open = false
			}
		}
	}
	if open {
		sink.Stop(false)
	}
}

// devicePoint maps a path point to fixed-point device coordinates.
func devicePoint(m linden.Matrix, pt linden.Vec2) fixed.Point26_6 {
	x, y := m.Apply(pt.X, pt.Y)
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

// clearScratch zeroes the scratch layer.
func (s *Surface) clearScratch() {
	pix := s.scratch.Pix
	for i := range pix {
		pix[i] = 0
	}
}

// compose blends the scratch layer onto the image under the active operator.
func (s *Surface) compose() {
	composeRGBA(s.img, s.scratch, s.state.op)
}

package ebitengine

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/linden"
)

// DefaultFamily is the font family every surface starts with. It resolves to
// the embedded Go Regular face and also serves as the fallback for unknown
// family names.
const DefaultFamily = "sans-serif"

const defaultSize = 16

// FontSet holds the registered font sources for a surface. GoTextFace values
// are cheap per-draw wrappers, so only the sources are cached.
type FontSet struct {
	sources map[string]*text.GoTextFaceSource
}

// NewFontSet creates a font set with Go Regular registered under
// [DefaultFamily].
func NewFontSet() *FontSet {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("linden/ebitengine: parse embedded Go Regular: " + err.Error())
	}
	return &FontSet{
		sources: map[string]*text.GoTextFaceSource{DefaultFamily: src},
	}
}

// Register makes a TTF or OTF font available under the given family name,
// replacing any previous registration.
func (fs *FontSet) Register(family string, data []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("linden/ebitengine: parse font %q: %w", family, err)
	}
	fs.sources[family] = src
	return nil
}

// face returns a face for the family at the given pixel size. Unknown
// families fall back to [DefaultFamily].
func (fs *FontSet) face(family string, size float64) *text.GoTextFace {
	src, ok := fs.sources[family]
	if !ok {
		src = fs.sources[DefaultFamily]
	}
	return &text.GoTextFace{Source: src, Size: size}
}

// --- Surface text ---

// SetFont selects the family and pixel size for subsequent text calls. An
// empty family or non-positive size keeps the current value.
func (s *Surface) SetFont(family string, size float64) {
	if family != "" {
		s.state.family = family
	}
	if size > 0 {
		s.state.size = size
	}
}

// SetJustification sets how FillText and StrokeText anchor their string
// relative to the given x.
func (s *Surface) SetJustification(j linden.Justification) {
	s.state.justify = j
}

// MeasureText returns the advance width of str in local units at the current
// font and size.
func (s *Surface) MeasureText(str string) float64 {
	return text.Advance(str, s.fonts.face(s.state.family, s.state.size))
}

// FillText draws str with its baseline at local (x, y).
func (s *Surface) FillText(str string, x, y float64, c linden.Color) {
	if str == "" || c.A <= 0 {
		return
	}
	s.textRun(str, x, y, c, fillOffsets[:])
}

// StrokeText draws an outline of str at local (x, y) by stamping the string
// at eight one-pixel offsets around the anchor.
func (s *Surface) StrokeText(str string, x, y float64, c linden.Color) {
	if str == "" || c.A <= 0 {
		return
	}
	s.textRun(str, x, y, c, outlineOffsets[:])
}

var fillOffsets = [1][2]float64{{0, 0}}

var outlineOffsets = [8][2]float64{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// textRun stamps str once per offset. The anchor is justified in local units,
// then mapped through the current transform; the face is scaled to device
// units. Glyphs stay upright, rotation and skew move only the anchor.
func (s *Surface) textRun(str string, x, y float64, c linden.Color, offsets [][2]float64) {
	scale := s.state.matrix.Scale()
	if scale <= 0 {
		return
	}
	lx := x
	switch s.state.justify {
	case linden.JustifyCenter:
		lx -= s.MeasureText(str) / 2
	case linden.JustifyRight:
		lx -= s.MeasureText(str)
	}
	dx, dy := s.state.matrix.Apply(lx, y)

	face := s.fonts.face(s.state.family, s.state.size*scale)
	// text.Draw positions the top-left of the line box, not the baseline.
	top := dy - face.Metrics().HAscent

	target, composed := s.paintTarget()
	for _, off := range offsets {
		op := &text.DrawOptions{}
		op.GeoM.Translate(dx+off[0], top+off[1])
		op.ColorScale.ScaleWithColor(c)
		text.Draw(target, str, face, op)
	}
	if composed {
		s.composeScratch()
	}
}

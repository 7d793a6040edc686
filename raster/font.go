package raster

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/phanxgames/linden"
)

// DefaultFamily is the face every surface starts with and the fallback for
// unknown family names. It maps to the embedded Go Regular font.
const DefaultFamily = "sans-serif"

const defaultSize = 16

// fontSet holds parsed fonts by family name plus a cache of sized faces.
type fontSet struct {
	fonts map[string]*opentype.Font
	faces map[faceKey]font.Face
}

type faceKey struct {
	family string
	size   float64
}

func newFontSet() *fontSet {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		// The font ships with the module; parsing it cannot fail.
		panic("linden/raster: parse embedded Go Regular: " + err.Error())
	}
	return &fontSet{
		fonts: map[string]*opentype.Font{DefaultFamily: f},
		faces: make(map[faceKey]font.Face),
	}
}

// face returns a cached face for the family at the given pixel size, falling
// back to the default family when the name is unknown.
func (fs *fontSet) face(family string, size float64) font.Face {
	if size <= 0 {
		size = defaultSize
	}
	f, ok := fs.fonts[family]
	if !ok {
		family = DefaultFamily
		f = fs.fonts[family]
	}
	key := faceKey{family, size}
	if fc, ok := fs.faces[key]; ok {
		return fc
	}
	fc, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		panic("linden/raster: build face: " + err.Error())
	}
	fs.faces[key] = fc
	return fc
}

// RegisterFont parses TTF or OTF data and registers it under the given
// family name, replacing any previous registration. Sized faces derived from
// the replaced font are dropped.
func (s *Surface) RegisterFont(family string, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("linden/raster: parse font %q: %w", family, err)
	}
	s.fonts.fonts[family] = f
	for k := range s.fonts.faces {
		if k.family == family {
			delete(s.fonts.faces, k)
		}
	}
	return nil
}

// --- Text painting ---

// SetFont selects the active face by family name and pixel size. An empty
// family or non-positive size keeps the current value.
func (s *Surface) SetFont(family string, size float64) {
	if family != "" {
		s.state.family = family
	}
	if size > 0 {
		s.state.size = size
	}
}

// SetJustification sets which part of a text run lands on its x anchor:
// the start, the middle, or the end.
func (s *Surface) SetJustification(j linden.Justification) {
	s.state.justify = j
}

// MeasureText returns the advance width of str in local units under the
// active font, before the current transform applies.
func (s *Surface) MeasureText(str string) float64 {
	if str == "" {
		return 0
	}
	face := s.fonts.face(s.state.family, s.state.size)
	return float64(font.MeasureString(face, str)) / 64
}

// FillText paints a filled glyph run with its baseline anchored at (x, y)
// per the active justification.
func (s *Surface) FillText(str string, x, y float64, c linden.Color) {
	if str == "" || c.A <= 0 {
		return
	}
	s.clearScratch()
	s.drawRun(str, x, y, c, 0, 0)
	s.compose()
}

// StrokeText paints an outlined glyph run by stamping it at one-pixel
// offsets in eight directions around the anchor.
func (s *Surface) StrokeText(str string, x, y float64, c linden.Color) {
	if str == "" || c.A <= 0 {
		return
	}
	s.clearScratch()
	for _, off := range outlineOffsets {
		s.drawRun(str, x, y, c, off[0], off[1])
	}
	s.compose()
}

// outlineOffsets are the eight stamp offsets used for outlined text.
var outlineOffsets = [8][2]float64{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// drawRun rasterizes one glyph run into the scratch layer. Justification
// shifts the anchor in local units; the shifted anchor is then mapped to
// device space and the run drawn with a face scaled to the transform.
func (s *Surface) drawRun(str string, x, y float64, c linden.Color, offX, offY float64) {
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
	d := font.Drawer{
		Dst:  s.scratch,
		Src:  image.NewUniform(c),
		Face: s.fonts.face(s.state.family, s.state.size*scale),
		Dot: fixed.Point26_6{
			X: fixed.Int26_6((dx + offX) * 64),
			Y: fixed.Int26_6((dy + offY) * 64),
		},
	}
	d.DrawString(str)
}

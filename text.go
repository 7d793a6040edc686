package linden

import (
	"strings"
	"unicode/utf8"
)

// --- TextConfig ---

// TextConfig is the construction-time configuration for a text payload.
// Zero values select defaults: sans-serif at 16px, leading at 1.2 times the
// font size, left justification, and an opaque black fill.
type TextConfig struct {
	Content    string
	FontFamily string  // "" selects "sans-serif"
	FontSize   float64 // pixels; 0 selects 16
	Leading    float64 // baseline distance; 0 derives from FontSize
	Justify    Justification

	// FillColor and StrokeColor are optional. A nil FillColor selects the
	// default black fill; a nil StrokeColor selects no stroke.
	FillColor   *Color
	StrokeColor *Color
}

// --- TextContent ---

// TextContent holds the text payload of a text frame node: the string, the
// font selection, line spacing, justification, and paint styles. All fields
// are private; every mutation goes through a setter so the stored state can
// never be driven out of sync.
type TextContent struct {
	content    string
	fontFamily string
	fontSize   float64
	leading    float64 // 0 = derive from fontSize
	justify    Justification

	fill      Color
	fillSet   bool
	stroke    Color
	strokeSet bool
}

// newTextContent builds a payload from cfg, applying defaults.
func newTextContent(cfg TextConfig) *TextContent {
	t := &TextContent{
		content:    cfg.Content,
		fontFamily: cfg.FontFamily,
		fontSize:   cfg.FontSize,
		leading:    cfg.Leading,
		justify:    cfg.Justify,
	}
	if t.fontFamily == "" {
		t.fontFamily = "sans-serif"
	}
	if t.fontSize <= 0 {
		t.fontSize = 16
	}
	if t.leading < 0 {
		t.leading = 0
	}
	if cfg.FillColor != nil {
		t.fill = *cfg.FillColor
	} else {
		t.fill = ColorBlack
	}
	t.fillSet = true
	if cfg.StrokeColor != nil {
		t.stroke = *cfg.StrokeColor
		t.strokeSet = true
	}
	return t
}

// clone returns a copy of the payload. All fields are values, so a shallow
// copy is a deep copy.
func (t *TextContent) clone() *TextContent {
	c := *t
	return &c
}

// Content returns the text string.
func (t *TextContent) Content() string {
	return t.content
}

// SetContent replaces the text string.
func (t *TextContent) SetContent(s string) {
	t.content = s
}

// FontFamily returns the selected font family name.
func (t *TextContent) FontFamily() string {
	return t.fontFamily
}

// FontSize returns the font size in pixels.
func (t *TextContent) FontSize() float64 {
	return t.fontSize
}

// SetFont changes the font selection. An empty family keeps the current
// family; a non-positive size keeps the current size.
func (t *TextContent) SetFont(family string, size float64) {
	if family != "" {
		t.fontFamily = family
	}
	if size > 0 {
		t.fontSize = size
	}
}

// Leading returns the baseline-to-baseline distance. When no explicit leading
// is set, it derives as 1.2 times the font size.
func (t *TextContent) Leading() float64 {
	if t.leading > 0 {
		return t.leading
	}
	return t.fontSize * 1.2
}

// SetLeading sets an explicit leading. Non-positive values reset to the
// derived default.
func (t *TextContent) SetLeading(l float64) {
	if l <= 0 {
		t.leading = 0
		return
	}
	t.leading = l
}

// Justification returns the horizontal alignment.
func (t *TextContent) Justification() Justification {
	return t.justify
}

// SetJustification sets the horizontal alignment.
func (t *TextContent) SetJustification(j Justification) {
	t.justify = j
}

// FillColor returns the fill color. Meaningful only when HasFill is true.
func (t *TextContent) FillColor() Color {
	return t.fill
}

// HasFill reports whether the text is filled.
func (t *TextContent) HasFill() bool {
	return t.fillSet
}

// CachedFillColor returns the same canonical value as FillColor. Earlier
// revisions stored a separate mirror of the fill for fast access during
// drawing; the accessor survives, the second field does not, so the two can
// never disagree.
func (t *TextContent) CachedFillColor() Color {
	return t.fill
}

// SetFillColor sets the fill color and enables filling.
func (t *TextContent) SetFillColor(c Color) {
	t.fill = c
	t.fillSet = true
}

// ClearFillColor disables filling.
func (t *TextContent) ClearFillColor() {
	t.fill = Color{}
	t.fillSet = false
}

// StrokeColor returns the stroke color. Meaningful only when HasStroke is true.
func (t *TextContent) StrokeColor() Color {
	return t.stroke
}

// HasStroke reports whether the text is outlined.
func (t *TextContent) HasStroke() bool {
	return t.strokeSet
}

// CachedStrokeColor returns the same canonical value as StrokeColor.
// See CachedFillColor.
func (t *TextContent) CachedStrokeColor() Color {
	return t.stroke
}

// SetStrokeColor sets the stroke color and enables outlining.
func (t *TextContent) SetStrokeColor(c Color) {
	t.stroke = c
	t.strokeSet = true
}

// ClearStrokeColor disables outlining.
func (t *TextContent) ClearStrokeColor() {
	t.stroke = Color{}
	t.strokeSet = false
}

// SetText replaces this node's text payload with one built from cfg.
// Only meaningful on NodeTypeTextFrame nodes.
func (n *Node) SetText(cfg TextConfig) {
	n.Text = newTextContent(cfg)
}

// --- Text frame drawing ---

// drawTextFrame wraps and paints the node's text inside its path's bounding
// box. Empty content, a degenerate box, and a payload with neither fill nor
// stroke are silent no-ops.
func (n *Node) drawTextFrame(surf Surface, rp *RenderParams) {
	t := n.Text
	if t == nil || t.content == "" {
		return
	}
	if n.Path == nil || n.Path.Empty() {
		return
	}
	box := n.Path.Bounds()
	if box.Width <= 0 || box.Height <= 0 {
		return
	}
	if !t.fillSet && !t.strokeSet {
		return
	}

	surf.SetFont(t.fontFamily, t.fontSize)
	surf.SetJustification(t.justify)
	// The first baseline sits one pixel in from the box's left edge and
	// fontSize-1 below its top.
	surf.Translate(box.X+1, box.Y+t.fontSize-1)

	w := &lineWriter{
		surf:    surf,
		text:    t,
		boxW:    box.Width,
		boxH:    box.Height,
		leading: t.Leading(),
		alpha:   rp.alpha,
		stats:   rp.stats,
	}
	for _, logical := range strings.Split(t.content, "\n") {
		breakUnits(surf.MeasureText, strings.Split(logical, " "), " ", box.Width, w)
	}
}

// lineWriter paints wrapped lines one after another, walking a baseline
// cursor down the frame.
type lineWriter struct {
	surf    Surface
	text    *TextContent
	boxW    float64
	boxH    float64
	leading float64
	cursor  float64 // baseline offset below the first baseline
	alpha   float64
	stats   *drawStats
}

// writeLine paints one wrapped line and advances the cursor by the leading.
// A line whose advance would land past the box height is dropped and the
// cursor stays put, which drops every following line as well.
func (w *lineWriter) writeLine(s string) {
	if w.cursor+w.leading > w.boxH {
		return
	}
	x := justifyAnchor(w.text.justify, w.boxW)
	if w.text.fillSet {
		w.surf.FillText(s, x, w.cursor, scaleAlpha(w.text.fill, w.alpha))
	}
	if w.text.strokeSet {
		w.surf.StrokeText(s, x, w.cursor, scaleAlpha(w.text.stroke, w.alpha))
	}
	if w.stats != nil {
		w.stats.textLines++
	}
	w.cursor += w.leading
}

// justifyAnchor returns the x coordinate text runs anchor at inside a box of
// the given width: the left edge, the midpoint, or the right edge. The
// surface's justification state tells it which part of the run to place at
// the anchor.
func justifyAnchor(j Justification, boxW float64) float64 {
	switch j {
	case JustifyCenter:
		return boxW / 2
	case JustifyRight:
		return boxW
	default:
		return 0
	}
}

// --- Line breaking ---

// breakUnits greedily packs units into lines no wider than maxW and emits
// each completed line through out. Units are joined with sep both for
// measurement and for the emitted line, so separator runs survive wrapping.
//
// When a line overflows, the unit that pushed it over is popped, the part
// that fits is emitted, and the popped unit is reprocessed onto the next
// line. A unit too wide even for an empty line is re-broken at rune
// granularity with an empty separator; a single rune that still overflows is
// emitted as its own line rather than recursing forever.
func breakUnits(measure func(string) float64, units []string, sep string, maxW float64, out *lineWriter) {
	var line []string
	for i := 0; i < len(units); i++ {
		line = append(line, units[i])
		if measure(strings.Join(line, sep)) <= maxW {
			continue
		}
		if len(line) == 1 {
			line = line[:0]
			if sep == "" || utf8.RuneCountInString(units[i]) <= 1 {
				out.writeLine(units[i])
			} else {
				breakUnits(measure, splitRunes(units[i]), "", maxW, out)
			}
			continue
		}
		line = line[:len(line)-1]
		out.writeLine(strings.Join(line, sep))
		line = line[:0]
		i--
	}
	if len(line) > 0 {
		out.writeLine(strings.Join(line, sep))
	}
}

// splitRunes splits s into single-rune strings.
func splitRunes(s string) []string {
	out := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

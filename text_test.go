package linden

import (
	"strconv"
	"strings"
	"testing"
)

// fillTextLines extracts the strings painted by FillText calls, in order.
func fillTextLines(rec *recordingSurface) []string {
	var lines []string
	for _, c := range rec.calls {
		if !strings.HasPrefix(c, "FillText ") {
			continue
		}
		quoted := c[len("FillText ") : strings.LastIndex(c, " x=")]
		s, err := strconv.Unquote(quoted)
		if err != nil {
			continue
		}
		lines = append(lines, s)
	}
	return lines
}

// drawFrameLines draws a text frame onto a fresh recording surface with the
// given per-rune measurement and returns the painted line strings.
func drawFrameLines(n *Node, measure func(string) float64) []string {
	rec := newRecordingSurface()
	rec.measure = measure
	n.Draw(rec, NewRenderParams())
	return fillTextLines(rec)
}

func assertLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("painted %d lines %q, want %d lines %q", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

// --- Word wrap ---

func TestWrapKeepsFittingLine(t *testing.T) {
	n := NewTextFrame("f", RectPath(0, 0, 200, 100), TextConfig{Content: "short line"})
	assertLines(t, drawFrameLines(n, nil), []string{"short line"})
}

func TestWrapReprocessesPoppedWord(t *testing.T) {
	// 'a' runes measure 20, everything else 8: "aaa bbb" = 92 > 70 while
	// "aaa" = 60 and "bbb ccc" = 56 both fit. The popped "bbb" must start
	// the next line, not be dropped.
	measure := func(s string) float64 {
		w := 0.0
		for _, r := range s {
			if r == 'a' {
				w += 20
			} else {
				w += 8
			}
		}
		return w
	}
	n := NewTextFrame("f", RectPath(0, 0, 70, 100), TextConfig{Content: "aaa bbb ccc"})
	assertLines(t, drawFrameLines(n, measure), []string{"aaa", "bbb ccc"})
}

func TestWrapSingleLongWordBreaksByCharacter(t *testing.T) {
	// Default measurement is 8 per rune, so a 32-wide box holds 4 characters.
	n := NewTextFrame("f", RectPath(0, 0, 32, 200), TextConfig{Content: "XXXXXXXXXX"})
	assertLines(t, drawFrameLines(n, nil), []string{"XXXX", "XXXX", "XX"})
}

func TestWrapLongWordMidLine(t *testing.T) {
	// The fitting prefix is emitted first, the over-wide word breaks by
	// character with every fragment on its own line, then accumulation
	// resumes fresh with the following words.
	n := NewTextFrame("f", RectPath(0, 0, 40, 200), TextConfig{Content: "ab XXXXXXX cd"})
	assertLines(t, drawFrameLines(n, nil), []string{"ab", "XXXXX", "XX", "cd"})
}

func TestWrapExplicitLineBreaks(t *testing.T) {
	n := NewTextFrame("f", RectPath(0, 0, 200, 200), TextConfig{Content: "one\ntwo three\nfour"})
	assertLines(t, drawFrameLines(n, nil), []string{"one", "two three", "four"})
}

func TestWrapPreservesSpaceRuns(t *testing.T) {
	// Splitting on single spaces turns "a  b" into ["a", "", "b"]; rejoining
	// with the separator restores the double space.
	n := NewTextFrame("f", RectPath(0, 0, 200, 200), TextConfig{Content: "a  b"})
	assertLines(t, drawFrameLines(n, nil), []string{"a  b"})
}

func TestWrapOverWideSingleRune(t *testing.T) {
	// A lone rune wider than the box is painted anyway rather than dropped.
	measure := func(s string) float64 { return float64(len(s)) * 50 }
	n := NewTextFrame("f", RectPath(0, 0, 40, 200), TextConfig{Content: "W"})
	assertLines(t, drawFrameLines(n, measure), []string{"W"})
}

// --- Vertical overflow ---

func TestOverflowDropsExcessLines(t *testing.T) {
	// Leading 10 against a 25-high box: lines advance the cursor to 10 and
	// 20; a third line would need 30 and is dropped.
	n := NewTextFrame("f", RectPath(0, 0, 200, 25), TextConfig{
		Content:  "one\ntwo\nthree\nfour",
		FontSize: 10,
		Leading:  10,
	})
	assertLines(t, drawFrameLines(n, nil), []string{"one", "two"})
}

func TestOverflowIsSticky(t *testing.T) {
	// Once a line is dropped the cursor never advances again, so a later
	// line that would nominally fit is dropped too. The wrapped middle line
	// overflows first; the short final logical line must not reappear.
	measure := func(s string) float64 { return float64(len(s)) * 8 }
	n := NewTextFrame("f", RectPath(0, 0, 32, 25), TextConfig{
		Content:  "ab\nWWWWWWWW\ncd",
		FontSize: 10,
		Leading:  10,
	})
	// Wrap output order: "ab", "WWWW", "WWWW" (dropped), "cd" (dropped).
	assertLines(t, drawFrameLines(n, measure), []string{"ab", "WWWW"})
}

func TestOverflowCursorFrozen(t *testing.T) {
	rec := newRecordingSurface()
	n := NewTextFrame("f", RectPath(0, 0, 200, 15), TextConfig{
		Content:  "one\ntwo\nthree",
		FontSize: 10,
		Leading:  10,
	})
	n.Draw(rec, NewRenderParams())

	// Only the first line fits; it paints at the first baseline (y = 0
	// after the frame translation).
	lines := fillTextLines(rec)
	assertLines(t, lines, []string{"one"})
	if !rec.hasCall(`FillText "one" x=0 y=0`) {
		t.Errorf("first line should paint at the frame origin, calls = %v", rec.calls)
	}
}

// --- Early exits ---

func TestTextFrameEmptyContentNoOp(t *testing.T) {
	n := NewTextFrame("f", RectPath(0, 0, 100, 100), TextConfig{})
	rec := newRecordingSurface()
	n.Draw(rec, NewRenderParams())
	if len(rec.calls) != 0 {
		t.Errorf("empty content should paint nothing, calls = %v", rec.calls)
	}
}

func TestTextFrameZeroAreaBoxNoOp(t *testing.T) {
	n := NewTextFrame("f", RectPath(0, 0, 0, 100), TextConfig{Content: "hello"})
	rec := newRecordingSurface()
	n.Draw(rec, NewRenderParams())
	if len(rec.calls) != 0 {
		t.Errorf("zero-width box should paint nothing, calls = %v", rec.calls)
	}
}

func TestTextFrameNoStyleNoOp(t *testing.T) {
	n := NewTextFrame("f", RectPath(0, 0, 100, 100), TextConfig{Content: "hello"})
	n.Text.ClearFillColor()
	rec := newRecordingSurface()
	n.Draw(rec, NewRenderParams())
	if len(rec.calls) != 0 {
		t.Errorf("frame with neither fill nor stroke should paint nothing, calls = %v", rec.calls)
	}
}

// --- Frame setup ---

func TestTextFrameBaselineOffset(t *testing.T) {
	n := NewTextFrame("f", RectPath(10, 10, 100, 100), TextConfig{
		Content:  "hi",
		FontSize: 10,
	})
	rec := newRecordingSurface()
	n.Draw(rec, NewRenderParams())

	// Origin moves to the box top-left plus (1, fontSize-1).
	if !rec.hasCall("Translate 11 19") {
		t.Errorf("frame should translate to (11, 19), calls = %v", rec.calls)
	}
}

func TestTextFrameStrokePaintsPerLine(t *testing.T) {
	red := Color{R: 1, A: 1}
	n := NewTextFrame("f", RectPath(0, 0, 200, 100), TextConfig{
		Content:     "hello",
		StrokeColor: &red,
	})
	rec := newRecordingSurface()
	n.Draw(rec, NewRenderParams())

	if !rec.hasCall(`FillText "hello"`) || !rec.hasCall(`StrokeText "hello"`) {
		t.Errorf("line should paint both fill and stroke runs, calls = %v", rec.calls)
	}
}

func TestTextFrameJustifyAnchors(t *testing.T) {
	for _, tt := range []struct {
		justify Justification
		anchor  float64
	}{
		{JustifyLeft, 0},
		{JustifyCenter, 50},
		{JustifyRight, 100},
	} {
		n := NewTextFrame("f", RectPath(0, 0, 100, 100), TextConfig{
			Content: "hi",
			Justify: tt.justify,
		})
		rec := newRecordingSurface()
		n.Draw(rec, NewRenderParams())
		want := "x=" + strconv.FormatFloat(tt.anchor, 'g', -1, 64)
		if !rec.hasCall(want) {
			t.Errorf("justify %d: anchor should be %s, calls = %v", tt.justify, want, rec.calls)
		}
	}
}

// --- Config defaults ---

func TestTextConfigDefaults(t *testing.T) {
	tc := newTextContent(TextConfig{})
	if tc.FontFamily() != "sans-serif" {
		t.Errorf("FontFamily = %q, want sans-serif", tc.FontFamily())
	}
	if tc.FontSize() != 16 {
		t.Errorf("FontSize = %v, want 16", tc.FontSize())
	}
	if !tc.HasFill() || tc.FillColor() != ColorBlack {
		t.Error("default fill should be opaque black")
	}
	if tc.HasStroke() {
		t.Error("stroke should default to unset")
	}
	if tc.Justification() != JustifyLeft {
		t.Errorf("Justification = %d, want left", tc.Justification())
	}
}

func TestLeadingDerivesFromFontSize(t *testing.T) {
	tc := newTextContent(TextConfig{FontSize: 20})
	if !approx(tc.Leading(), 24) {
		t.Errorf("Leading = %v, want 24 (fontSize * 1.2)", tc.Leading())
	}

	tc.SetLeading(30)
	if tc.Leading() != 30 {
		t.Errorf("explicit Leading = %v, want 30 verbatim", tc.Leading())
	}

	tc.SetLeading(0)
	if !approx(tc.Leading(), 24) {
		t.Errorf("reset Leading = %v, want derived 24", tc.Leading())
	}
}

func TestSetFontEmptyFamilyKeepsCurrent(t *testing.T) {
	tc := newTextContent(TextConfig{FontFamily: "serif", FontSize: 12})
	tc.SetFont("", 14)
	if tc.FontFamily() != "serif" {
		t.Errorf("FontFamily = %q, an empty family must not clear it", tc.FontFamily())
	}
	if tc.FontSize() != 14 {
		t.Errorf("FontSize = %v, want 14", tc.FontSize())
	}

	tc.SetFont("mono", 0)
	if tc.FontFamily() != "mono" || tc.FontSize() != 14 {
		t.Errorf("font = (%q, %v), want (mono, 14)", tc.FontFamily(), tc.FontSize())
	}
}

// --- Style cache ---

func TestFillColorCacheNeverDiverges(t *testing.T) {
	tc := newTextContent(TextConfig{})
	red := Color{R: 1, A: 1}
	tc.SetFillColor(red)
	if tc.FillColor() != red || tc.CachedFillColor() != red {
		t.Errorf("fill = %v / cached = %v, want both %v", tc.FillColor(), tc.CachedFillColor(), red)
	}

	blue := Color{B: 1, A: 1}
	tc.SetStrokeColor(blue)
	if tc.StrokeColor() != blue || tc.CachedStrokeColor() != blue {
		t.Errorf("stroke = %v / cached = %v, want both %v", tc.StrokeColor(), tc.CachedStrokeColor(), blue)
	}
}

func TestClearColors(t *testing.T) {
	tc := newTextContent(TextConfig{})
	tc.SetStrokeColor(Color{B: 1, A: 1})

	tc.ClearFillColor()
	if tc.HasFill() {
		t.Error("ClearFillColor should unset the fill")
	}
	tc.ClearStrokeColor()
	if tc.HasStroke() {
		t.Error("ClearStrokeColor should unset the stroke")
	}
}

// --- SetText and cloning ---

func TestSetTextReplacesPayload(t *testing.T) {
	n := NewTextFrame("f", RectPath(0, 0, 100, 100), TextConfig{Content: "old"})
	old := n.Text
	n.SetText(TextConfig{Content: "new", FontSize: 20})

	if n.Text == old {
		t.Fatal("SetText should replace the payload wholesale")
	}
	if n.Text.Content() != "new" || n.Text.FontSize() != 20 {
		t.Errorf("payload = (%q, %v), want (new, 20)", n.Text.Content(), n.Text.FontSize())
	}
}

func TestTextFrameCloneDeepCopiesPayload(t *testing.T) {
	red := Color{R: 1, A: 1}
	n := NewTextFrame("f", RectPath(0, 0, 100, 100), TextConfig{
		Content:   "original",
		FillColor: &red,
	})

	c := n.Clone()
	if c.Text == n.Text {
		t.Fatal("clone must not share the text payload")
	}
	if c.Text.CachedFillColor() != n.Text.CachedFillColor() {
		t.Error("clone's cached colors should equal the original's at clone time")
	}

	c.Text.SetContent("changed")
	if n.Text.Content() != "original" {
		t.Error("mutating the clone's payload must not affect the original")
	}
}

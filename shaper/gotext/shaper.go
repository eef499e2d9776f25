// Package gotext implements vgr.Shaper with HarfBuzz-level text shaping via
// go-text/typesetting: kerning, ligatures, complex scripts and right-to-left
// paragraphs all come from the shaping engine rather than naive per-rune
// advance summing.
package gotext

import (
	"bytes"
	"math"
	"strings"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/vgr"
)

// Shaper shapes text with a single font face.
//
// Shaper is not safe for concurrent use: both the go-text face and the
// HarfBuzz shaper carry mutable state. It belongs to the frame-building
// goroutine, like the rest of scene construction.
type Shaper struct {
	face *font.Face
	hb   shaping.HarfbuzzShaper
}

var _ vgr.Shaper = (*Shaper)(nil)

// New parses fontData (TTF/OTF) and returns a shaper for it.
func New(fontData []byte) (*Shaper, error) {
	face, err := font.ParseTTF(bytes.NewReader(fontData))
	if err != nil {
		return nil, err
	}
	return &Shaper{face: face}, nil
}

// glyphInfo is one shaped glyph within a single line, before wrapping.
type glyphInfo struct {
	gid     vgr.GlyphID
	cluster int
	x, y    float32
	advance float32
	bounds  vgr.Rect
}

// lineMetrics are the font's vertical metrics at the shaped size.
// descent is negative (below the baseline), matching go-text.
type lineMetrics struct {
	ascent, descent, gap float32
}

func (m lineMetrics) height() float32 {
	return m.ascent - m.descent + m.gap
}

// Shape implements vgr.Shaper. Paragraphs split on newlines; within a
// paragraph, a non-negative breakWidth wraps lines at word boundaries,
// falling back to character boundaries for words longer than the width.
func (s *Shaper) Shape(text string, size, breakWidth float32) []vgr.ShapedGlyph {
	if text == "" {
		return nil
	}

	var out []vgr.ShapedGlyph
	var penY float32
	for _, para := range strings.Split(text, "\n") {
		glyphs, metrics := s.shapeLine(para, size)
		lineH := metrics.height()
		if lineH <= 0 {
			lineH = size * 1.2
		}
		if len(glyphs) == 0 {
			penY += lineH
			continue
		}

		runes := []rune(para)
		var lines [][2]int
		if breakWidth < 0 {
			lines = [][2]int{{0, len(glyphs)}}
		} else {
			lines = wrapLines(runes, glyphs, breakWidth)
		}

		for _, ln := range lines {
			startX := glyphs[ln[0]].x
			for _, g := range glyphs[ln[0]:ln[1]] {
				out = append(out, vgr.ShapedGlyph{
					GID:    g.gid,
					Pos:    vgr.Point{X: g.x - startX, Y: penY + g.y},
					Bounds: g.bounds,
				})
			}
			penY += lineH
		}
	}
	return out
}

// LineBounds implements vgr.Shaper: the logical bounds of text laid out as a
// single line, relative to the pen origin, y down.
func (s *Shaper) LineBounds(text string, size float32) (vgr.Point, vgr.Point) {
	glyphs, metrics := s.shapeLine(text, size)
	var advance float32
	if n := len(glyphs); n > 0 {
		advance = glyphs[n-1].x + glyphs[n-1].advance
	}
	return vgr.Point{X: 0, Y: -metrics.ascent},
		vgr.Point{X: advance, Y: -metrics.descent}
}

// MeasureGlyph reports the pixel dimensions of a glyph's ink bounds at the
// given size. It satisfies atlas.MeasureFunc.
func (s *Shaper) MeasureGlyph(gid vgr.GlyphID, size float32) (int, int, bool) {
	ext, ok := s.face.GlyphExtents(font.GID(gid))
	if !ok {
		return 0, 0, false
	}
	scale := size / float32(s.face.Upem())
	// Extents are y-up with negative Height.
	w := int(math.Ceil(float64(ext.Width * scale)))
	h := int(math.Ceil(float64(-ext.Height * scale)))
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// shapeLine shapes one paragraph as a single unwrapped line.
func (s *Shaper) shapeLine(text string, size float32) ([]glyphInfo, lineMetrics) {
	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: paragraphDirection(text),
		Face:      s.face,
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	output := s.hb.Shape(input)

	metrics := lineMetrics{
		ascent:  fixedToFloat(output.LineBounds.Ascent),
		descent: fixedToFloat(output.LineBounds.Descent),
		gap:     fixedToFloat(output.LineBounds.Gap),
	}

	if len(output.Glyphs) == 0 {
		return nil, metrics
	}

	glyphs := make([]glyphInfo, 0, len(output.Glyphs))
	var x float32
	for _, g := range output.Glyphs {
		// Shaping coordinates are y-up; the engine's layout space is
		// y-down, so vertical values flip sign.
		glyphs = append(glyphs, glyphInfo{
			gid:     vgr.GlyphID(uint16(g.GlyphID)),
			cluster: g.TextIndex(),
			x:       x + fixedToFloat(g.XOffset),
			y:       -fixedToFloat(g.YOffset),
			advance: fixedToFloat(g.XAdvance),
			bounds: vgr.Rect{
				Min: vgr.Point{
					X: fixedToFloat(g.XBearing),
					Y: -fixedToFloat(g.YBearing),
				},
				Max: vgr.Point{
					X: fixedToFloat(g.XBearing + g.Width),
					Y: -fixedToFloat(g.YBearing + g.Height),
				},
			},
		})
		x += fixedToFloat(g.XAdvance)
	}
	return glyphs, metrics
}

// paragraphDirection resolves the base direction of a paragraph from its
// first bidi run.
func paragraphDirection(text string) di.Direction {
	p := bidi.Paragraph{}
	if _, err := p.SetString(text); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript inspects the runes and returns the script of the first
// non-space character. For mixed-script text, split runs by script before
// shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// fixedToFloat converts a fixed.Int26_6 value to float32.
func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

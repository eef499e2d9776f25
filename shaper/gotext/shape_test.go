package gotext

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/vgr"
)

func testShaper(t *testing.T) *Shaper {
	t.Helper()
	s, err := New(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to parse font: %v", err)
	}
	return s
}

func TestShapeBasicLatin(t *testing.T) {
	s := testShaper(t)
	glyphs := s.Shape("Hello", 16, vgr.NoWrap)
	if len(glyphs) != 5 {
		t.Fatalf("Shape(\"Hello\") = %d glyphs, want 5", len(glyphs))
	}
	var prevX float32 = -1
	for i, g := range glyphs {
		if g.Pos.Y != 0 {
			t.Errorf("glyph %d Pos.Y = %v, want 0 (baseline of first line)", i, g.Pos.Y)
		}
		if g.Pos.X <= prevX {
			t.Errorf("glyph %d Pos.X = %v, want > previous %v", i, g.Pos.X, prevX)
		}
		prevX = g.Pos.X
	}
}

func TestShapeEmpty(t *testing.T) {
	s := testShaper(t)
	if glyphs := s.Shape("", 16, vgr.NoWrap); len(glyphs) != 0 {
		t.Errorf("Shape(\"\") = %d glyphs, want 0", len(glyphs))
	}
}

func TestShapeNewlineAdvancesLine(t *testing.T) {
	s := testShaper(t)
	glyphs := s.Shape("ab\ncd", 16, vgr.NoWrap)
	if len(glyphs) != 4 {
		t.Fatalf("Shape(\"ab\\ncd\") = %d glyphs, want 4", len(glyphs))
	}
	if glyphs[0].Pos.Y != 0 || glyphs[1].Pos.Y != 0 {
		t.Errorf("first line baselines = %v/%v, want 0", glyphs[0].Pos.Y, glyphs[1].Pos.Y)
	}
	if glyphs[2].Pos.Y <= 0 {
		t.Errorf("second line baseline = %v, want below the first", glyphs[2].Pos.Y)
	}
	if glyphs[2].Pos.Y != glyphs[3].Pos.Y {
		t.Errorf("second line baselines differ: %v vs %v", glyphs[2].Pos.Y, glyphs[3].Pos.Y)
	}
	// Each line restarts at the pen origin.
	if glyphs[2].Pos.X != 0 {
		t.Errorf("second line starts at x=%v, want 0", glyphs[2].Pos.X)
	}
}

func TestShapeWrapStaysWithinWidth(t *testing.T) {
	s := testShaper(t)
	const width = 50
	glyphs := s.Shape("aaaa bbbb cccc dddd", 16, width)
	if len(glyphs) == 0 {
		t.Fatal("no glyphs shaped")
	}
	lines := make(map[float32]bool)
	for i, g := range glyphs {
		lines[g.Pos.Y] = true
		if g.Pos.X >= width {
			t.Errorf("glyph %d Pos.X = %v, want < %v (wrapped)", i, g.Pos.X, float32(width))
		}
	}
	if len(lines) < 2 {
		t.Errorf("text occupies %d lines, want wrapping onto several", len(lines))
	}
}

func TestShapeNoWrapSingleLine(t *testing.T) {
	s := testShaper(t)
	glyphs := s.Shape("aaaa bbbb cccc dddd", 16, vgr.NoWrap)
	for i, g := range glyphs {
		if g.Pos.Y != 0 {
			t.Fatalf("glyph %d Pos.Y = %v, want everything on one line", i, g.Pos.Y)
		}
	}
}

func TestLineBoundsMetrics(t *testing.T) {
	s := testShaper(t)
	bmin, bmax := s.LineBounds("Hello", 16)
	if bmin.Y >= 0 {
		t.Errorf("min.Y = %v, want negative (ascent above the baseline)", bmin.Y)
	}
	if bmax.Y <= bmin.Y {
		t.Errorf("max.Y = %v, want > min.Y %v", bmax.Y, bmin.Y)
	}
	if bmax.X <= 0 {
		t.Errorf("advance = %v, want > 0", bmax.X)
	}
	_, longer := s.LineBounds("Hello world", 16)
	if longer.X <= bmax.X {
		t.Errorf("longer text advance = %v, want > %v", longer.X, bmax.X)
	}
}

func TestMeasureGlyph(t *testing.T) {
	s := testShaper(t)
	letter := s.Shape("A", 16, vgr.NoWrap)
	if len(letter) != 1 {
		t.Fatalf("Shape(\"A\") = %d glyphs, want 1", len(letter))
	}
	w, h, ok := s.MeasureGlyph(letter[0].GID, 16)
	if !ok || w <= 0 || h <= 0 {
		t.Errorf("MeasureGlyph(A) = %dx%d/%v, want positive ink bounds", w, h, ok)
	}

	// A space has no ink.
	space := s.Shape(" ", 16, vgr.NoWrap)
	if len(space) != 1 {
		t.Fatalf("Shape(\" \") = %d glyphs, want 1", len(space))
	}
	if _, _, ok := s.MeasureGlyph(space[0].GID, 16); ok {
		t.Error("MeasureGlyph(space) = ok, want no ink")
	}
}

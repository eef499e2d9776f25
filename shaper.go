package vgr

// GlyphID identifies a glyph within the shaper's font.
type GlyphID uint16

// ShapedGlyph is one positioned glyph produced by a Shaper.
type ShapedGlyph struct {
	// GID is the glyph id within the font.
	GID GlyphID

	// Pos is the pen position of the glyph in layout-local space
	// (y down, baseline of the first line at y=0).
	Pos Point

	// Bounds is the glyph's ink bound relative to Pos.
	Bounds Rect
}

// Shaper turns a string into positioned glyphs. It must be deterministic for
// identical inputs; the text layout cache relies on that to reuse shaped
// primitives across frames.
//
// A Shaper that cannot shape the input returns zero glyphs rather than
// failing; the cache stores a valid empty layout in that case.
type Shaper interface {
	// Shape lays out text at the given size. breakWidth is the wrap
	// width; NoWrap disables wrapping.
	Shape(text string, size, breakWidth float32) []ShapedGlyph

	// LineBounds returns the logical bounds of text laid out as a single
	// line, relative to the pen origin (min.Y is negative: above the
	// baseline).
	LineBounds(text string, size float32) (min, max Point)
}

package vgr

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// GlyphPath is a glyph outline as closed contours of chained cubic beziers,
// ready for FillCubicPath. Coordinates are in pixels, y down, relative to
// the glyph origin on the baseline.
type GlyphPath struct {
	Contours [][]Point
}

type glyphPathKey struct {
	gid  GlyphID
	size float32
}

// GlyphPathCache extracts glyph outlines from a font and memoizes the
// converted contours. Rendering text as vector paths avoids atlas residency
// for very large sizes, where a bitmap glyph would dominate the atlas.
//
// The cache is not safe for concurrent use; like the rest of scene
// construction it belongs to the frame-building goroutine.
type GlyphPathCache struct {
	font  *sfnt.Font
	buf   sfnt.Buffer
	cache *lru.Cache[glyphPathKey, *GlyphPath]
}

// NewGlyphPathCache parses fontData (TTF/OTF) and creates a cache holding up
// to maxEntries converted outlines.
func NewGlyphPathCache(fontData []byte, maxEntries int) (*GlyphPathCache, error) {
	f, err := sfnt.Parse(fontData)
	if err != nil {
		return nil, err
	}
	if maxEntries <= 0 {
		maxEntries = 1024
	}
	c, err := lru.New[glyphPathKey, *GlyphPath](maxEntries)
	if err != nil {
		return nil, err
	}
	return &GlyphPathCache{font: f, cache: c}, nil
}

// Lookup returns the glyph's outline contours at the given pixel size,
// extracting and converting them on first use.
func (pc *GlyphPathCache) Lookup(gid GlyphID, size float32) (*GlyphPath, error) {
	key := glyphPathKey{gid: gid, size: size}
	if gp, ok := pc.cache.Get(key); ok {
		return gp, nil
	}

	ppem := fixed.Int26_6(size * 64)
	segments, err := pc.font.LoadGlyph(&pc.buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		return nil, err
	}

	gp := &GlyphPath{}
	var contour []Point
	var cur Point
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if len(contour) >= 4 {
				gp.Contours = append(gp.Contours, contour)
			}
			cur = fixedPoint(seg.Args[0])
			contour = []Point{cur}
		case sfnt.SegmentOpLineTo:
			p := fixedPoint(seg.Args[0])
			// Degree-elevate the line to a cubic with thirds as
			// control points.
			contour = append(contour,
				cur.Lerp(p, 1.0/3.0),
				cur.Lerp(p, 2.0/3.0),
				p)
			cur = p
		case sfnt.SegmentOpQuadTo:
			q := fixedPoint(seg.Args[0])
			p := fixedPoint(seg.Args[1])
			contour = append(contour,
				cur.Lerp(q, 2.0/3.0),
				p.Lerp(q, 2.0/3.0),
				p)
			cur = p
		case sfnt.SegmentOpCubeTo:
			contour = append(contour,
				fixedPoint(seg.Args[0]),
				fixedPoint(seg.Args[1]),
				fixedPoint(seg.Args[2]))
			cur = fixedPoint(seg.Args[2])
		}
	}
	if len(contour) >= 4 {
		gp.Contours = append(gp.Contours, contour)
	}

	pc.cache.Add(key, gp)
	return gp, nil
}

func fixedPoint(p fixed.Point26_6) Point {
	return Point{
		X: float32(p.X) / 64,
		Y: float32(p.Y) / 64,
	}
}

// FillGlyphPath renders a glyph as a filled vector outline at pos, using the
// scanline structure to handle self-intersecting contours. Glyphs without an
// outline (or color glyphs) are skipped.
func (ctx *Context) FillGlyphPath(pc *GlyphPathCache, gid GlyphID, size float32, pos Point, paint PaintIndex) {
	gp, err := pc.Lookup(gid, size)
	if err != nil {
		Logger().Debug("vgr: no outline for glyph", "gid", gid, "err", err)
		return
	}
	ctx.Save()
	ctx.Translate(pos.X, pos.Y)
	for _, contour := range gp.Contours {
		ctx.FillCubicPath(contour, paint, true)
	}
	ctx.Restore()
}

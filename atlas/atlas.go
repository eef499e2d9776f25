// Package atlas provides a shelf-packing glyph atlas implementing the
// vgr.Atlas placement contract: region references stay stable for a region's
// lifetime while the rectangle a region occupies may move when the atlas
// grows and repacks. Rasterization is the caller's concern; the atlas
// manages placement and owns the texture pixels.
package atlas

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/vgr"
)

// MeasureFunc reports the pixel dimensions of a glyph rendered at the given
// size. ok is false for glyphs without an image (e.g. spaces).
type MeasureFunc func(gid vgr.GlyphID, size float32) (w, h int, ok bool)

// Options configures atlas geometry.
type Options struct {
	// Width is the fixed texture width in pixels.
	Width int

	// Height is the initial texture height; the atlas doubles it when
	// full, repacking all regions.
	Height int

	// MaxHeight caps growth. Allocation fails once reached.
	MaxHeight int

	// Padding is the gap in pixels kept between regions.
	Padding int
}

// DefaultOptions returns the default atlas geometry.
func DefaultOptions() Options {
	return Options{
		Width:     1024,
		Height:    1024,
		MaxHeight: 8192,
		Padding:   1,
	}
}

type glyphKey struct {
	gid vgr.GlyphID
	// size is the pixel size quantized to quarter units so nearly equal
	// float sizes share a region.
	size int32
}

type region struct {
	w, h int
	x, y int
}

// shelf is one packing row: regions are placed left to right on shelves of
// fixed height.
type shelf struct {
	y, height, used int
}

// Atlas is a shelf-packing implementation of vgr.Atlas.
//
// Atlas is not safe for concurrent use; it belongs to the frame-building
// goroutine, like the rest of scene construction.
type Atlas struct {
	opts    Options
	measure MeasureFunc

	height  int
	pixels  []byte
	shelves []shelf
	regions []region
	glyphs  map[glyphKey]vgr.RegionIndex

	// generation increments on every repack. Pixel contents are dropped
	// when the atlas repacks; a rasterizer watches the generation to know
	// when regions need re-rendering.
	generation uint64
}

var _ vgr.Atlas = (*Atlas)(nil)

// New creates an atlas. measure supplies glyph dimensions; it is typically
// the shaper's MeasureGlyph method.
func New(opts Options, measure MeasureFunc) *Atlas {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.MaxHeight < opts.Height {
		opts.MaxHeight = max(def.MaxHeight, opts.Height)
	}
	if opts.Padding < 0 {
		opts.Padding = def.Padding
	}
	return &Atlas{
		opts:    opts,
		measure: measure,
		height:  opts.Height,
		pixels:  make([]byte, opts.Width*opts.Height*4),
		glyphs:  make(map[glyphKey]vgr.RegionIndex),
	}
}

// GlyphRegion implements vgr.Atlas.
func (a *Atlas) GlyphRegion(gid vgr.GlyphID, size float32) (vgr.RegionIndex, bool) {
	key := glyphKey{gid: gid, size: int32(size*4 + 0.5)}
	if idx, ok := a.glyphs[key]; ok {
		return idx, true
	}
	if a.measure == nil {
		return vgr.NoRegion, false
	}
	w, h, ok := a.measure(gid, size)
	if !ok || w <= 0 || h <= 0 {
		return vgr.NoRegion, false
	}

	idx := vgr.RegionIndex(len(a.regions))
	a.regions = append(a.regions, region{w: w, h: h})
	if !a.place(int(idx)) {
		if !a.grow() {
			a.regions = a.regions[:len(a.regions)-1]
			return vgr.NoRegion, false
		}
	}
	a.glyphs[key] = idx
	return idx, true
}

// Rect implements vgr.Atlas. The rectangle is the region's current placement
// and may differ between calls if the atlas repacked in between.
func (a *Atlas) Rect(idx vgr.RegionIndex) vgr.Rect {
	if idx < 0 || int(idx) >= len(a.regions) {
		return vgr.Rect{}
	}
	r := a.regions[idx]
	return vgr.Rect{
		Min: vgr.Point{X: float32(r.x), Y: float32(r.y)},
		Max: vgr.Point{X: float32(r.x + r.w), Y: float32(r.y + r.h)},
	}
}

// Texture implements vgr.Atlas. The pixel slice aliases the atlas's storage;
// a rasterizer writes glyph images through it.
func (a *Atlas) Texture() vgr.TextureData {
	return vgr.TextureData{
		Format: gputypes.TextureFormatRGBA8Unorm,
		Width:  uint32(a.opts.Width),
		Height: uint32(a.height),
		Pixels: a.pixels,
	}
}

// Generation returns the repack counter. It increments whenever existing
// region rectangles move and pixel contents are dropped.
func (a *Atlas) Generation() uint64 {
	return a.generation
}

// place assigns a rectangle to regions[idx] using shelf packing.
func (a *Atlas) place(idx int) bool {
	r := &a.regions[idx]
	w := r.w + a.opts.Padding
	h := r.h + a.opts.Padding
	if w > a.opts.Width {
		return false
	}
	for i := range a.shelves {
		s := &a.shelves[i]
		if h <= s.height && s.used+w <= a.opts.Width {
			r.x, r.y = s.used, s.y
			s.used += w
			return true
		}
	}
	bottom := 0
	if n := len(a.shelves); n > 0 {
		bottom = a.shelves[n-1].y + a.shelves[n-1].height
	}
	if bottom+h > a.height {
		return false
	}
	a.shelves = append(a.shelves, shelf{y: bottom, height: h, used: w})
	r.x, r.y = 0, bottom
	return true
}

// grow doubles the atlas height (up to MaxHeight) and repacks every region.
// Region indices stay stable; rectangles move and pixels are dropped.
func (a *Atlas) grow() bool {
	for a.height < a.opts.MaxHeight {
		a.height = min(a.height*2, a.opts.MaxHeight)
		a.pixels = make([]byte, a.opts.Width*a.height*4)
		a.generation++
		if a.repack() {
			return true
		}
	}
	return false
}

func (a *Atlas) repack() bool {
	a.shelves = a.shelves[:0]
	for i := range a.regions {
		if !a.place(i) {
			return false
		}
	}
	return true
}

package vgr

// Align is a bitmask combining one horizontal and one vertical alignment
// flag. The zero value aligns left on the baseline.
type Align uint8

const (
	// AlignLeft places the pen origin at the start of the line (default).
	AlignLeft Align = 0

	// AlignCenter centers the line horizontally on the pen origin.
	AlignCenter Align = 1 << iota

	// AlignRight ends the line at the pen origin.
	AlignRight

	// AlignTop places the line's top at the pen origin.
	AlignTop

	// AlignMiddle centers the line vertically on the pen origin.
	AlignMiddle

	// AlignBottom places the line's bottom at the pen origin.
	AlignBottom
)

// TextLayoutKey identifies a cached text layout. Two renders with equal keys
// hit the same cache entry regardless of call order.
type TextLayoutKey struct {
	Text       string
	Size       float32
	Align      Align
	BreakWidth float32
}

// textLayoutEntry caches the primitive-level result of shaping a string. The
// primitives are kept in layout-local space; paint and transform are
// re-stamped at every use, and the atlas placement offset is applied only at
// flush.
type textLayoutEntry struct {
	// lastFrame is the frame the layout was last rendered in. If that is
	// not the frame being flushed, the entry is pruned: a string must be
	// rendered every frame to stay cached.
	lastFrame uint64

	prims []Primitive
}

// Text renders a single line of text at the current transform. The layout is
// cached; rendering the same string with the same size and alignment again
// reuses the shaped primitives without invoking the shaper.
func (ctx *Context) Text(text string, size float32, align Align, paint PaintIndex) {
	ctx.renderText(TextLayoutKey{
		Text:       text,
		Size:       size,
		Align:      align,
		BreakWidth: NoWrap,
	}, paint)
}

// TextBox renders text wrapped to breakWidth. Wrapped layouts are laid out
// flush left; alignment participates in the cache key but the vertical flags
// still apply to the first line's bounds.
func (ctx *Context) TextBox(text string, breakWidth, size float32, align Align, paint PaintIndex) {
	if breakWidth < 0 {
		breakWidth = 0
	}
	ctx.renderText(TextLayoutKey{
		Text:       text,
		Size:       size,
		Align:      align,
		BreakWidth: breakWidth,
	}, paint)
}

func (ctx *Context) renderText(key TextLayoutKey, paint PaintIndex) {
	if ctx.shaper == nil || ctx.atlas == nil {
		return
	}

	s := ctx.scene()
	xf := s.AddXform(ctx.top())

	if ctx.renderCachedText(key, paint, xf) {
		return
	}

	// Miss: shape, place glyphs in the atlas, and remember a copy of
	// every primitive for reuse. A shaper that produces no glyphs still
	// yields a valid (empty) cache entry.
	entry := &textLayoutEntry{lastFrame: ctx.frame}
	glyphs := ctx.shaper.Shape(key.Text, key.Size, key.BreakWidth)
	offset := ctx.alignOffset(key)
	scale := ctx.devicePxRatio

	for _, g := range glyphs {
		region, ok := ctx.atlas.GlyphRegion(g.GID, key.Size*scale)
		if !ok {
			continue
		}
		r := ctx.atlas.Rect(region)
		w := r.Width()
		h := r.Height()

		quad := Rect{
			Min: offset.Add(g.Pos).Add(g.Bounds.Min),
			Max: offset.Add(g.Pos).Add(g.Bounds.Max),
		}

		prim := Primitive{
			Kind:   PrimGlyph,
			Paint:  paint,
			Xform:  xf,
			Region: region,
			CVs:    [4]Point{quad.Min, quad.Max},
			Verts:  quad.Corners(),
			// Texcoords stay region-local until flush. Baking the
			// placement in here would go stale if the atlas
			// repacks before the layout is reused.
			Texcoords: [4]Point{{0, 0}, {w, 0}, {0, h}, {w, h}},
		}
		s.Add(prim)
		entry.prims = append(entry.prims, prim)
	}

	ctx.textCache[key] = entry
}

// renderCachedText replays a cached layout, re-stamping the caller's paint
// and transform onto every primitive. Returns false on cache miss.
func (ctx *Context) renderCachedText(key TextLayoutKey, paint PaintIndex, xf XformIndex) bool {
	entry, ok := ctx.textCache[key]
	if !ok {
		return false
	}
	s := ctx.scene()
	for _, prim := range entry.prims {
		prim.Paint = paint
		prim.Xform = xf
		s.Add(prim)
	}
	entry.lastFrame = ctx.frame
	return true
}

// alignOffset converts the key's alignment flags into a layout-local offset
// using the shaper's line bounds.
func (ctx *Context) alignOffset(key TextLayoutKey) Point {
	if key.Align == AlignLeft {
		return Point{}
	}
	bmin, bmax := ctx.shaper.LineBounds(key.Text, key.Size)
	var off Point
	switch {
	case key.Align&AlignCenter != 0:
		off.X = -(bmin.X + bmax.X) / 2
	case key.Align&AlignRight != 0:
		off.X = -bmax.X
	}
	switch {
	case key.Align&AlignTop != 0:
		off.Y = -bmin.Y
	case key.Align&AlignMiddle != 0:
		off.Y = -(bmin.Y + bmax.Y) / 2
	case key.Align&AlignBottom != 0:
		off.Y = -bmax.Y
	}
	return off
}

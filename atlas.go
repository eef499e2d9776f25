package vgr

// Atlas places glyph images in a shared texture. The engine only depends on
// the placement contract: region references are stable for a region's
// lifetime, but the rectangle a region occupies may move when the atlas
// repacks. Glyph primitives therefore store region-local texcoords and the
// region's current placement origin is added once, at flush.
type Atlas interface {
	// GlyphRegion returns the region holding the glyph rendered at the
	// given pixel size, allocating it on first use. ok is false when the
	// glyph cannot be placed (no outline, or the atlas is full).
	GlyphRegion(gid GlyphID, size float32) (region RegionIndex, ok bool)

	// Rect returns the region's current placement rectangle in atlas
	// pixels. The result may differ between calls if the atlas repacked.
	Rect(region RegionIndex) Rect

	// Texture returns the atlas texture for backend upload.
	Texture() TextureData
}

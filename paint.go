package vgr

// ImageIndex identifies a user texture registered with CreateTexture.
type ImageIndex int32

// NoImage marks a paint that samples no texture.
const NoImage ImageIndex = -1

// Paint describes how a primitive is colored. Paints are stored by value in
// an index-addressed per-frame pool; primitives reference them by PaintIndex.
type Paint struct {
	// Xform maps world space into the paint's evaluation space. For
	// gradients that is the space where the gradient runs from x=0 to
	// x=1; for image patterns it is unit image space.
	Xform Matrix

	// InnerColor and OuterColor are the two ends of the paint. Solid
	// paints set both to the same color.
	InnerColor RGBA
	OuterColor RGBA

	// Image is the texture sampled by pattern paints, or NoImage.
	Image ImageIndex
}

// Solid returns a paint with a single uniform color.
func Solid(color RGBA) Paint {
	return Paint{
		Xform:      Identity(),
		InnerColor: color,
		OuterColor: color,
		Image:      NoImage,
	}
}

// LinearGradient returns a paint that interpolates from inner at start to
// outer at end. The paint transform maps the start->end segment onto the unit
// x axis so the shader evaluates the gradient with a single coordinate
// lookup.
//
// A degenerate segment (length below 1e-4) falls back to the vertical unit
// direction instead of producing a singular transform.
func LinearGradient(start, end Point, inner, outer RGBA) Paint {
	d := end.Sub(start)
	if d.Length() < 1e-4 {
		d = Point{X: 0, Y: 1}
	}

	// Gradient space to world: basis d, perp(d), origin start. The paint
	// carries the inverse, mapping start to (0,0) and end to (1,0).
	m := Matrix{
		A: d.X, B: -d.Y, C: start.X,
		D: d.Y, E: d.X, F: start.Y,
		G: 0, H: 0, I: 1,
	}

	return Paint{
		Xform:      m.Invert(),
		InnerColor: inner,
		OuterColor: outer,
		Image:      NoImage,
	}
}

// ImagePattern returns a paint that samples the given texture. The pattern
// covers the rectangle at origin with the given size, rotated by angle
// radians around origin. Color channels are forced to white at the given
// alpha so the shader multiplies only by the texture sample.
func ImagePattern(origin, size Point, angle float32, image ImageIndex, alpha float32) Paint {
	m := Translation(origin.X, origin.Y).
		Multiply(Rotation(angle)).
		Multiply(Scaling(size.X, size.Y))

	white := RGBA{R: 1, G: 1, B: 1, A: alpha}
	return Paint{
		Xform:      m.Invert(),
		InnerColor: white,
		OuterColor: white,
		Image:      image,
	}
}

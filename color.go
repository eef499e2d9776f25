package vgr

// RGBA is a non-premultiplied color with float32 components in [0, 1],
// matching the layout paints are uploaded in.
type RGBA struct {
	R, G, B, A float32
}

// Common colors.
var (
	Transparent = RGBA{0, 0, 0, 0}
	Black       = RGBA{0, 0, 0, 1}
	White       = RGBA{1, 1, 1, 1}
	Red         = RGBA{1, 0, 0, 1}
	Green       = RGBA{0, 1, 0, 1}
	Blue        = RGBA{0, 0, 1, 1}
)

// WithAlpha returns the color with its alpha replaced by a.
func (c RGBA) WithAlpha(a float32) RGBA {
	c.A = a
	return c
}

package vgr

import "github.com/gogpu/gputypes"

// textureFormat is the pixel format of every texture the engine produces.
const textureFormat = gputypes.TextureFormatRGBA8Unorm

// TextureData is a CPU-side texture the backend uploads: user pattern
// textures and the glyph atlas travel to the backend in this form.
type TextureData struct {
	Format gputypes.TextureFormat
	Width  uint32
	Height uint32
	Pixels []byte
}

// Frame is one finished frame of geometry handed to the backend at flush:
// the primitive buffer plus the pools its entries index into. The slices
// alias the scene's buffers; the backend must be done reading them before
// the buffer rotation returns to this scene, BufferCount-1 frames later.
type Frame struct {
	Prims  []Primitive
	CVs    []Point
	Xforms []Matrix
	Paints []Paint

	// Textures are the user textures referenced by pattern paints, in
	// ImageIndex order.
	Textures []TextureData

	// GlyphAtlas is the atlas texture sampled by glyph primitives.
	GlyphAtlas TextureData

	// WindowSize is the window size in points, for NDC conversion.
	WindowSize Point

	// DevicePixelRatio is the content scale factor.
	DevicePixelRatio float32
}

// Backend consumes finished frames for GPU submission. The engine treats it
// as fire-and-forget: a render error is logged, never propagated to draw
// calls.
type Backend interface {
	Render(frame *Frame) error
}

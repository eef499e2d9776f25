// Package vgr is an immediate-mode 2D vector graphics front end.
//
// vgr turns a stream of drawing calls (shapes, curves, text) into a compact,
// GPU-consumable primitive stream. Primitives reference their control points,
// transforms and paints by index into flat per-frame pools, so a frame of
// geometry is a handful of contiguous buffers a rendering backend can upload
// directly.
//
// The engine cycles through three scenes so a backend can still be consuming
// the previous frame's buffers while the next frame is being built. Curve
// primitives are decomposed into a 2x2 grid of tiles to bound per-pixel
// signed-distance evaluation cost on the GPU. Text layout results are cached
// per frame: a string rendered with the same size, alignment and wrap width
// reuses its shaped primitives instead of invoking the shaper again.
//
// Scene construction is single-threaded: one goroutine issues all draw calls
// for a frame between BeginFrame and Flush. Text shaping and glyph atlas
// placement are pluggable; see the Shaper and Atlas interfaces and the
// shaper/gotext and atlas subpackages.
package vgr

package vgr

// Context is the engine's main state object: the rotating scene buffers, the
// transform stack, the text layout cache and the monotonic frame counter.
//
// Scene construction is single-threaded cooperative: one goroutine issues
// all draw calls for a frame between BeginFrame and Flush. There is no
// internal locking because there is no concurrent writer; concurrency exists
// only across frames via the BufferCount-way scene rotation.
type Context struct {
	opts Options

	// scenes rotate so the backend can consume previous frames while the
	// current one is written.
	scenes [BufferCount]*Scene
	cur    int

	// stack is the transform stack; the bottom entry is always identity.
	stack []Matrix

	windowSize    Point
	devicePxRatio float32

	// frame is the monotonic frame counter used for text cache
	// coherency. It starts at 1 and is never reset.
	frame uint64

	shaper Shaper
	atlas  Atlas

	textCache map[TextLayoutKey]*textLayoutEntry
	textures  []TextureData

	// Scratch space reused across draw calls.
	scanner pathScanner
	quads   []Point
}

// New creates a Context with the given pool capacities. shaper and atlas may
// be nil, in which case text rendering is a no-op.
func New(opts Options, shaper Shaper, atlas Atlas) *Context {
	opts = opts.withDefaults()
	ctx := &Context{
		opts:          opts,
		stack:         []Matrix{Identity()},
		devicePxRatio: 1,
		frame:         1,
		shaper:        shaper,
		atlas:         atlas,
		textCache:     make(map[TextLayoutKey]*textLayoutEntry),
	}
	for i := range ctx.scenes {
		ctx.scenes[i] = newScene(opts)
	}
	return ctx
}

// scene returns the scene currently being written.
func (ctx *Context) scene() *Scene {
	return ctx.scenes[ctx.cur]
}

// Scene returns the scene currently being written. Most callers go through
// the draw helpers; direct access is for advanced use such as pre-building
// paints.
func (ctx *Context) Scene() *Scene {
	return ctx.scene()
}

// FrameNumber returns the monotonic frame counter.
func (ctx *Context) FrameNumber() uint64 {
	return ctx.frame
}

// BeginFrame rotates to the next scene buffer, resets its write cursors and
// the transform stack, and records the window size for NDC conversion.
//
// The buffer being rotated to was handed to the backend BufferCount frames
// ago; the backend must be done reading it by now. BeginFrame never blocks
// or checks.
func (ctx *Context) BeginFrame(windowSize Point, devicePixelRatio float32) {
	ctx.cur = (ctx.cur + 1) % BufferCount
	ctx.scene().reset()
	ctx.stack = append(ctx.stack[:0], Identity())
	ctx.windowSize = windowSize
	if devicePixelRatio <= 0 {
		devicePixelRatio = 1
	}
	ctx.devicePxRatio = devicePixelRatio
}

// Flush finishes the current frame: it prunes text layouts not used this
// frame, patches glyph texcoords with the atlas's current placement
// rectangles, hands the frame to the backend, and increments the frame
// counter.
func (ctx *Context) Flush(backend Backend) {
	s := ctx.scene()

	// The text cache is strictly frame-coherent: an entry survives only
	// if it was rendered in the frame being flushed.
	for key, entry := range ctx.textCache {
		if entry.lastFrame != ctx.frame {
			delete(ctx.textCache, key)
		}
	}

	// Glyph texcoords were stored region-local; apply the region's
	// placement now, so a repack between caching and reuse cannot leave
	// stale offsets baked in.
	if ctx.atlas != nil {
		for i := range s.Prims[:s.PrimCount] {
			p := &s.Prims[i]
			if p.Kind != PrimGlyph || p.Region == NoRegion {
				continue
			}
			r := ctx.atlas.Rect(p.Region)
			for j := range p.Texcoords {
				p.Texcoords[j].X += r.Min.X
				p.Texcoords[j].Y += r.Min.Y
			}
		}
	}

	frame := &Frame{
		Prims:            s.Prims[:s.PrimCount],
		CVs:              s.CVs[:s.CVCount],
		Xforms:           s.Xforms[:s.XformCount],
		Paints:           s.Paints[:s.PaintCount],
		Textures:         ctx.textures,
		WindowSize:       ctx.windowSize,
		DevicePixelRatio: ctx.devicePxRatio,
	}
	if ctx.atlas != nil {
		frame.GlyphAtlas = ctx.atlas.Texture()
	}

	if backend != nil {
		if err := backend.Render(frame); err != nil {
			Logger().Warn("vgr: backend render failed", "err", err)
		}
	}

	Logger().Debug("vgr: flush",
		"frame", ctx.frame,
		"prims", s.PrimCount,
		"cvs", s.CVCount,
		"xforms", s.XformCount,
		"paints", s.PaintCount,
		"cachedLayouts", len(ctx.textCache))

	ctx.frame++
}

// Save pushes a copy of the current transform onto the stack.
func (ctx *Context) Save() {
	ctx.stack = append(ctx.stack, ctx.top())
}

// Restore pops the transform stack. Popping the base transform is a
// programmer error; Restore panics with ErrStackUnderflow rather than
// silently corrupting the stack.
func (ctx *Context) Restore() {
	if len(ctx.stack) <= 1 {
		panic(ErrStackUnderflow)
	}
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
}

// Translate composes a translation into the current transform.
func (ctx *Context) Translate(dx, dy float32) {
	top := &ctx.stack[len(ctx.stack)-1]
	*top = top.Multiply(Translation(dx, dy))
}

// Scale composes a scale into the current transform.
func (ctx *Context) Scale(sx, sy float32) {
	top := &ctx.stack[len(ctx.stack)-1]
	*top = top.Multiply(Scaling(sx, sy))
}

// Rotate composes a rotation (radians) into the current transform.
func (ctx *Context) Rotate(angle float32) {
	top := &ctx.stack[len(ctx.stack)-1]
	*top = top.Multiply(Rotation(angle))
}

// CurrentTransform returns the transform at the top of the stack.
func (ctx *Context) CurrentTransform() Matrix {
	return ctx.top()
}

// TransformPoint applies the current transform to a point.
func (ctx *Context) TransformPoint(p Point) Point {
	return ctx.top().TransformPoint(p)
}

func (ctx *Context) top() Matrix {
	return ctx.stack[len(ctx.stack)-1]
}

// AddPaint inserts a paint into the current frame's paint pool and returns
// its index. Paint indices are only valid for the frame they were created
// in.
func (ctx *Context) AddPaint(p Paint) PaintIndex {
	return ctx.scene().AddPaint(p)
}

// CreateTexture registers an RGBA8 texture for use by pattern paints and
// returns its image index. Textures persist across frames.
func (ctx *Context) CreateTexture(pixels []byte, width, height int) ImageIndex {
	ctx.textures = append(ctx.textures, TextureData{
		Format: textureFormat,
		Width:  uint32(width),
		Height: uint32(height),
		Pixels: pixels,
	})
	return ImageIndex(len(ctx.textures) - 1)
}

// Render stamps the current transform onto the primitive and appends it to
// the current scene, applying curve tiling.
func (ctx *Context) Render(prim Primitive) {
	s := ctx.scene()
	prim.Xform = s.AddXform(ctx.top())
	s.Add(prim)
}

// FillRect fills an axis-aligned rectangle; a positive radius rounds its
// corners.
func (ctx *Context) FillRect(min, max Point, radius float32, paint PaintIndex) {
	kind := PrimRect
	if radius > 0 {
		kind = PrimRoundRect
	}
	ctx.Render(Primitive{
		Kind:   kind,
		Paint:  paint,
		Region: NoRegion,
		Radius: radius,
		CVs:    [4]Point{min, max},
	})
}

// FillCircle fills a circle.
func (ctx *Context) FillCircle(center Point, radius float32, paint PaintIndex) {
	ctx.Render(Primitive{
		Kind:   PrimCircle,
		Paint:  paint,
		Region: NoRegion,
		Radius: radius,
		CVs:    [4]Point{center},
	})
}

// StrokeSegment strokes a line segment.
func (ctx *Context) StrokeSegment(a, b Point, width float32, paint PaintIndex) {
	ctx.Render(Primitive{
		Kind:   PrimSegment,
		Paint:  paint,
		Region: NoRegion,
		Width:  width,
		CVs:    [4]Point{a, b},
	})
}

// StrokeBezier strokes a quadratic bezier curve.
func (ctx *Context) StrokeBezier(a, b, c Point, width float32, paint PaintIndex) {
	ctx.Render(Primitive{
		Kind:   PrimCurve,
		Paint:  paint,
		Region: NoRegion,
		Width:  width,
		CVs:    [4]Point{a, b, c},
	})
}

// StrokeCubic strokes a cubic bezier curve.
func (ctx *Context) StrokeCubic(a, b, c, d Point, width float32, paint PaintIndex) {
	ctx.Render(Primitive{
		Kind:   PrimCubicCurve,
		Paint:  paint,
		Region: NoRegion,
		Width:  width,
		CVs:    [4]Point{a, b, c, d},
	})
}

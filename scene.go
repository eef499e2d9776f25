package vgr

// Scene is one of the rotating per-frame buffers: flat, capacity-bounded
// pools for primitives, control points, transforms and paints. Primitives
// reference pool entries by integer index, never by pointer, so the pools
// are plain arrays reused every frame.
//
// Every write path saturates: once a pool is full, further writes are
// silently dropped. This is a deliberate backpressure policy favoring
// graceful degradation (missing geometry) over crashing or blocking.
// Overflow is not surfaced; callers can only detect it indirectly.
type Scene struct {
	// Prims holds the primitive buffer; PrimCount entries are valid.
	Prims     []Primitive
	PrimCount int

	// CVs holds the control-point pool referenced by PrimPathFill.
	CVs     []Point
	CVCount int

	// Xforms holds the transform pool referenced by Primitive.Xform.
	Xforms     []Matrix
	XformCount int

	// Paints holds the paint pool referenced by Primitive.Paint.
	Paints     []Paint
	PaintCount int
}

// newScene allocates a scene with the configured pool capacities. The pools
// are allocated once and reused; per-frame construction does not allocate.
func newScene(opts Options) *Scene {
	return &Scene{
		Prims:  make([]Primitive, opts.MaxPrims),
		CVs:    make([]Point, opts.MaxCVs),
		Xforms: make([]Matrix, opts.MaxXforms),
		Paints: make([]Paint, opts.MaxPaints),
	}
}

// reset rewinds all write cursors. Old entries are overwritten lazily as the
// new frame is built.
func (s *Scene) reset() {
	s.PrimCount = 0
	s.CVCount = 0
	s.XformCount = 0
	s.PaintCount = 0
}

// AddCV appends a control point to the CV pool. Saturates silently at
// capacity.
func (s *Scene) AddCV(p Point) {
	if s.CVCount < len(s.CVs) {
		s.CVs[s.CVCount] = p
		s.CVCount++
	}
}

// AddXform appends a transform to the transform pool and returns its index.
// At capacity the transform is dropped and index 0 is returned.
func (s *Scene) AddXform(m Matrix) XformIndex {
	if s.XformCount < len(s.Xforms) {
		s.Xforms[s.XformCount] = m
		s.XformCount++
		return XformIndex(s.XformCount - 1)
	}
	return 0
}

// AddPaint appends a paint to the paint pool and returns its index.
// At capacity the paint is dropped and index 0 is returned.
func (s *Scene) AddPaint(p Paint) PaintIndex {
	if s.PaintCount < len(s.Paints) {
		s.Paints[s.PaintCount] = p
		s.PaintCount++
		return PaintIndex(s.PaintCount - 1)
	}
	return 0
}

// Add appends a finished primitive to the primitive buffer.
//
// Shape primitives get their bound computed, expanded by the antialiasing
// margin, and turned into output quads: curve kinds are decomposed into a
// 2x2 grid of tile primitives, each covering a quarter of the bound, so the
// shader evaluates each curve's distance field over four small quads instead
// of one large one. Other shapes emit a single quad covering the bound.
//
// Glyph primitives arrive pre-quaded from the text layer and are pushed
// as-is.
func (s *Scene) Add(prim Primitive) {
	if prim.Kind == PrimGlyph {
		s.push(prim)
		return
	}
	s.addBound(prim, prim.localBound(s.CVs[:s.CVCount]))
}

// addBound emits prim's output quads for the given local-space bound.
func (s *Scene) addBound(prim Primitive, bound Rect) {
	bound = bound.Expand(boundMargin)

	if !prim.Kind.tiled() {
		prim.Texcoords = bound.Corners()
		prim.Verts = prim.Texcoords
		s.push(prim)
		return
	}

	// Tile corner coordinates are computed from the same expressions for
	// adjacent tiles, so the grid has no gaps or overlaps.
	tw := bound.Width() / tileCols
	th := bound.Height() / tileRows
	for row := 0; row < tileRows; row++ {
		for col := 0; col < tileCols; col++ {
			tile := Rect{
				Min: Point{
					X: bound.Min.X + float32(col)*tw,
					Y: bound.Min.Y + float32(row)*th,
				},
				Max: Point{
					X: bound.Min.X + float32(col+1)*tw,
					Y: bound.Min.Y + float32(row+1)*th,
				},
			}
			prim.Texcoords = tile.Corners()
			prim.Verts = prim.Texcoords
			s.push(prim)
		}
	}
}

// push writes a primitive to the next buffer slot. Saturates silently at
// capacity.
func (s *Scene) push(prim Primitive) {
	if s.PrimCount < len(s.Prims) {
		s.Prims[s.PrimCount] = prim
		s.PrimCount++
	}
}

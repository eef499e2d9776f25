package vgr

import "math"

// FillPath fills the closed polygon described by points with the given
// paint. A path with fewer than 3 points is rejected without emitting
// primitives.
//
// When scan is true the path is first run through a scanline structure that
// buckets its edges by the y ranges they span, and one fill primitive is
// emitted per horizontal band carrying only the band's edges. This keeps the
// shader's winding-number queries cheap for paths with self-intersections or
// holes. When scan is false the path is assumed simple and a single fill
// primitive covers it.
func (ctx *Context) FillPath(points []Point, paint PaintIndex, scan bool) {
	if len(points) < 3 {
		Logger().Debug("vgr: rejecting degenerate path", "points", len(points))
		return
	}

	// Chain the polygon edges as quadratics; each edge contributes its
	// midpoint as the collinear control point.
	q := append(ctx.quads[:0], points[0])
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		q = append(q, a.Mid(b), b)
	}
	ctx.quads = q

	ctx.fillQuads(q, paint, scan)
}

// FillCubicPath fills a closed path of chained cubic beziers: points holds
// 3n+1 control points where consecutive cubics share their endpoints. Each
// cubic is split in half and each half approximated by one quadratic before
// scanning. A path that is not 3n+1 points long (n >= 1) is rejected without
// emitting primitives.
func (ctx *Context) FillCubicPath(points []Point, paint PaintIndex, scan bool) {
	if len(points) < 4 || (len(points)-1)%3 != 0 {
		Logger().Debug("vgr: rejecting malformed cubic path", "points", len(points))
		return
	}

	q := append(ctx.quads[:0], points[0])
	for i := 0; i+3 < len(points); i += 3 {
		c := [4]Point{points[i], points[i+1], points[i+2], points[i+3]}
		l, r := splitCubic(c)
		q = append(q, quadControl(l), l[3], quadControl(r), r[3])
	}
	ctx.quads = q

	ctx.fillQuads(q, paint, scan)
}

// fillQuads emits fill primitives for a chained quadratic path. The control
// points land in the scene's CV pool; each primitive references its run by
// Start/Count.
func (ctx *Context) fillQuads(cvs []Point, paint PaintIndex, scan bool) {
	s := ctx.scene()
	xf := s.AddXform(ctx.top())

	if !scan {
		prim := Primitive{
			Kind:   PrimPathFill,
			Paint:  paint,
			Xform:  xf,
			Region: NoRegion,
			Start:  uint32(s.CVCount),
		}
		for _, p := range cvs {
			s.AddCV(p)
		}
		prim.Count = uint32(s.CVCount) - prim.Start
		if prim.Count == 0 {
			return
		}
		s.addBound(prim, boundOf(s.CVs[prim.Start:s.CVCount]))
		return
	}

	ctx.scanner.begin(cvs)
	for ctx.scanner.next() {
		prim := Primitive{
			Kind:   PrimPathFill,
			Paint:  paint,
			Xform:  xf,
			Region: NoRegion,
			Start:  uint32(s.CVCount),
		}
		xmin := float32(math.Inf(1))
		xmax := float32(math.Inf(-1))
		for _, idx := range ctx.scanner.active {
			for _, p := range ctx.scanner.segs[idx].cvs {
				s.AddCV(p)
				xmin = min(xmin, p.X)
				xmax = max(xmax, p.X)
			}
		}
		prim.Count = uint32(s.CVCount) - prim.Start
		if prim.Count == 0 {
			continue
		}
		band := Rect{
			Min: Point{X: xmin, Y: ctx.scanner.y0},
			Max: Point{X: xmax, Y: ctx.scanner.y1},
		}
		s.addBound(prim, band)
	}
}

// splitCubic subdivides a cubic bezier at t=0.5 by de Casteljau.
func splitCubic(c [4]Point) (left, right [4]Point) {
	ab := c[0].Mid(c[1])
	bc := c[1].Mid(c[2])
	cd := c[2].Mid(c[3])
	abc := ab.Mid(bc)
	bcd := bc.Mid(cd)
	mid := abc.Mid(bcd)
	left = [4]Point{c[0], ab, abc, mid}
	right = [4]Point{mid, bcd, cd, c[3]}
	return left, right
}

// quadControl returns the control point of the quadratic that best
// approximates a cubic with the same endpoints: (3(p1+p2) - p0 - p3) / 4.
func quadControl(c [4]Point) Point {
	return Point{
		X: (3*(c[1].X+c[2].X) - c[0].X - c[3].X) / 4,
		Y: (3*(c[1].Y+c[2].Y) - c[0].Y - c[3].Y) / 4,
	}
}

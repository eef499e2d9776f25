package vgr

// PrimKind discriminates the primitive variants the backend's shader knows
// how to evaluate.
type PrimKind uint32

const (
	// PrimRect is a filled axis-aligned rectangle: CVs[0] = min,
	// CVs[1] = max.
	PrimRect PrimKind = iota

	// PrimRoundRect is a filled rounded rectangle: CVs like PrimRect,
	// corner radius in Radius.
	PrimRoundRect

	// PrimCircle is a filled circle: CVs[0] = center, radius in Radius.
	PrimCircle

	// PrimSegment is a stroked line segment: CVs[0..1], stroke width in
	// Width.
	PrimSegment

	// PrimCurve is a stroked quadratic bezier: CVs[0..2], stroke width in
	// Width.
	PrimCurve

	// PrimCubicCurve is a stroked cubic bezier: CVs[0..3], stroke width
	// in Width.
	PrimCubicCurve

	// PrimGlyph is a textured quad sampling the glyph atlas. Verts and
	// Texcoords are set by the text layer; Region identifies the atlas
	// region whose placement offset is added at flush.
	PrimGlyph

	// PrimPathFill is a generic bezier fill: Start/Count reference a run
	// of chained quadratic control points in the scene's CV pool.
	PrimPathFill
)

// String returns a human-readable name for the primitive kind.
func (k PrimKind) String() string {
	switch k {
	case PrimRect:
		return "Rect"
	case PrimRoundRect:
		return "RoundRect"
	case PrimCircle:
		return "Circle"
	case PrimSegment:
		return "Segment"
	case PrimCurve:
		return "Curve"
	case PrimCubicCurve:
		return "CubicCurve"
	case PrimGlyph:
		return "Glyph"
	case PrimPathFill:
		return "PathFill"
	default:
		return "Unknown"
	}
}

// tiled reports whether primitives of this kind are decomposed into a 2x2
// tile grid. These are the kinds whose distance evaluation cost scales with
// curve complexity.
func (k PrimKind) tiled() bool {
	switch k {
	case PrimCurve, PrimCubicCurve, PrimPathFill:
		return true
	default:
		return false
	}
}

// XformIndex references a transform in the scene's transform pool.
type XformIndex uint32

// PaintIndex references a paint in the scene's paint pool.
type PaintIndex uint32

// RegionIndex is an opaque handle identifying where a glyph lives in the
// atlas texture. It stays stable for the region's lifetime even when the
// atlas repacks.
type RegionIndex int32

// NoRegion marks a primitive that references no atlas region.
const NoRegion RegionIndex = -1

// Primitive is one drawable unit consumed by the rendering backend. It is a
// closed variant over the PrimKind shapes with the superset of fields the
// kinds need. Primitives are owned by a scene buffer slot and immutable once
// written, except for the glyph texcoord patch applied at flush.
type Primitive struct {
	// Kind discriminates the variant.
	Kind PrimKind

	// Paint and Xform index into the scene's pools.
	Paint PaintIndex
	Xform XformIndex

	// Start and Count reference a run of control points in the scene's
	// CV pool (PrimPathFill only).
	Start uint32
	Count uint32

	// Region is the atlas region sampled by PrimGlyph, or NoRegion.
	Region RegionIndex

	// Width is the stroke width for stroked kinds.
	Width float32

	// Radius is the corner or circle radius.
	Radius float32

	// CVs are up to four control points in local space.
	CVs [4]Point

	// Verts are the four output vertex corners, in triangle-strip order.
	Verts [4]Point

	// Texcoords locate the quad in bound space (shape kinds, where they
	// equal Verts) or in atlas-region space (PrimGlyph, patched with the
	// region's placement origin at flush).
	Texcoords [4]Point
}

// localBound returns the primitive's axis-aligned bound in local space,
// before the antialiasing margin. cvPool is the scene's control-point pool,
// consulted for PrimPathFill.
func (p *Primitive) localBound(cvPool []Point) Rect {
	switch p.Kind {
	case PrimRect, PrimRoundRect:
		return Rect{Min: p.CVs[0], Max: p.CVs[1]}
	case PrimCircle:
		r := p.Radius
		return Rect{
			Min: Point{X: p.CVs[0].X - r, Y: p.CVs[0].Y - r},
			Max: Point{X: p.CVs[0].X + r, Y: p.CVs[0].Y + r},
		}
	case PrimSegment:
		return boundOf(p.CVs[:2]).Expand(p.Width / 2)
	case PrimCurve:
		return boundOf(p.CVs[:3]).Expand(p.Width / 2)
	case PrimCubicCurve:
		return boundOf(p.CVs[:4]).Expand(p.Width / 2)
	case PrimPathFill:
		lo := min(int(p.Start), len(cvPool))
		hi := min(int(p.Start+p.Count), len(cvPool))
		return boundOf(cvPool[lo:hi])
	default:
		return boundOf(p.CVs[:])
	}
}

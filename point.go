package vgr

import "math"

// Point is a 2D point or displacement in float32, the precision the GPU
// buffers use throughout the engine.
type Point struct {
	X, Y float32
}

// P is a convenience function to create a Point.
func P(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Mid returns the midpoint between two points.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Length returns the distance of the point from the origin.
func (p Point) Length() float32 {
	return float32(math.Hypot(float64(p.X), float64(p.Y)))
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min, Max Point
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

// Expand returns the rectangle grown by m on every side.
func (r Rect) Expand(m float32) Rect {
	return Rect{
		Min: Point{X: r.Min.X - m, Y: r.Min.Y - m},
		Max: Point{X: r.Max.X + m, Y: r.Max.Y + m},
	}
}

// Corners returns the four corners of the rectangle in triangle-strip order:
// min, (max.X, min.Y), (min.X, max.Y), max.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Min.X, Y: r.Max.Y},
		r.Max,
	}
}

// boundOf returns the axis-aligned bound of a set of points.
// Returns the zero Rect for an empty slice.
func boundOf(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	b := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b.Min.X = min(b.Min.X, p.X)
		b.Min.Y = min(b.Min.Y, p.Y)
		b.Max.X = max(b.Max.X, p.X)
		b.Max.Y = max(b.Max.Y, p.Y)
	}
	return b
}

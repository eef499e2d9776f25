package vgr

import "math"

// Matrix represents a 2D homogeneous transformation matrix.
// It uses a 3x3 matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//	| G  H  I |
//
// Affine transforms keep the bottom row at (0, 0, 1); the full homogeneous
// form is carried so TransformPoint can perspective-divide uniformly.
type Matrix struct {
	A, B, C float32
	D, E, F float32
	G, H, I float32
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
		G: 0, H: 0, I: 1,
	}
}

// Translation creates a translation matrix.
func Translation(x, y float32) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
		G: 0, H: 0, I: 1,
	}
}

// Scaling creates a scaling matrix.
func Scaling(x, y float32) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
		G: 0, H: 0, I: 1,
	}
}

// Rotation creates a rotation matrix (angle in radians).
func Rotation(angle float32) Matrix {
	cos := float32(math.Cos(float64(angle)))
	sin := float32(math.Sin(float64(angle)))
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
		G: 0, H: 0, I: 1,
	}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D + m.C*other.G,
		B: m.A*other.B + m.B*other.E + m.C*other.H,
		C: m.A*other.C + m.B*other.F + m.C*other.I,
		D: m.D*other.A + m.E*other.D + m.F*other.G,
		E: m.D*other.B + m.E*other.E + m.F*other.H,
		F: m.D*other.C + m.E*other.F + m.F*other.I,
		G: m.G*other.A + m.H*other.D + m.I*other.G,
		H: m.G*other.B + m.H*other.E + m.I*other.H,
		I: m.G*other.C + m.H*other.F + m.I*other.I,
	}
}

// TransformPoint applies the transformation to a point, dividing by the
// homogeneous w coordinate. Affine matrices keep w at 1 so the divide is a
// no-op for them.
func (m Matrix) TransformPoint(p Point) Point {
	x := m.A*p.X + m.B*p.Y + m.C
	y := m.D*p.X + m.E*p.Y + m.F
	w := m.G*p.X + m.H*p.Y + m.I
	if w != 0 && w != 1 {
		x /= w
		y /= w
	}
	return Point{X: x, Y: y}
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.A*(m.E*m.I-m.F*m.H) -
		m.B*(m.D*m.I-m.F*m.G) +
		m.C*(m.D*m.H-m.E*m.G)
	if math.Abs(float64(det)) < 1e-10 {
		return Identity()
	}

	invDet := 1 / det
	return Matrix{
		A: (m.E*m.I - m.F*m.H) * invDet,
		B: (m.C*m.H - m.B*m.I) * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: (m.F*m.G - m.D*m.I) * invDet,
		E: (m.A*m.I - m.C*m.G) * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
		G: (m.D*m.H - m.E*m.G) * invDet,
		H: (m.B*m.G - m.A*m.H) * invDet,
		I: (m.A*m.E - m.B*m.D) * invDet,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

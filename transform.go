package pebble

import "math"

// Affine is a 2D affine matrix [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine [6]float64

// IdentityAffine is the identity matrix.
var IdentityAffine = Affine{1, 0, 0, 1, 0, 0}

// Multiply returns m * c (c is applied first).
func (m Affine) Multiply(c Affine) Affine {
	return Affine{
		m[0]*c[0] + m[2]*c[1],
		m[1]*c[0] + m[3]*c[1],
		m[0]*c[2] + m[2]*c[3],
		m[1]*c[2] + m[3]*c[3],
		m[0]*c[4] + m[2]*c[5] + m[4],
		m[1]*c[4] + m[3]*c[5] + m[5],
	}
}

// Translate returns m * Translate(x, y).
func (m Affine) Translate(x, y float64) Affine {
	return m.Multiply(Affine{1, 0, 0, 1, x, y})
}

// Rotate returns m * Rotate(angle). Positive angles turn clockwise on a
// y-down surface.
func (m Affine) Rotate(angle float64) Affine {
	if angle == 0 {
		return m
	}
	sin, cos := math.Sincos(angle)
	return m.Multiply(Affine{cos, sin, -sin, cos, 0, 0})
}

// Scale returns m * Scale(sx, sy).
func (m Affine) Scale(sx, sy float64) Affine {
	return m.Multiply(Affine{sx, 0, 0, sy, 0, 0})
}

// Invert computes the inverse matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func (m Affine) Invert() Affine {
	det := m.Det()
	if det > -1e-12 && det < 1e-12 {
		return IdentityAffine
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Affine{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Det returns the determinant of the linear part.
func (m Affine) Det() float64 {
	return m[0]*m[3] - m[2]*m[1]
}

// Apply transforms the point (x, y).
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// ScaleFactor returns the geometric mean of the axis scales, used to size
// strokes and arc tessellation in device space.
func (m Affine) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m.Det()))
}

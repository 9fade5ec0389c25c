package colorspace

import (
	"errors"
	"math"
)

// Mat3 is a row-major 3x3 matrix applied to linear (R, G, B) triplets.
type Mat3 [3][3]float32

// Apply multiplies the matrix with the column vector (r, g, b).
func (m *Mat3) Apply(r, g, b float32) (float32, float32, float32) {
	return m[0][0]*r + m[0][1]*g + m[0][2]*b,
		m[1][0]*r + m[1][1]*g + m[1][2]*b,
		m[2][0]*r + m[2][1]*g + m[2][2]*b
}

var errSingularMatrix = errors.New("matrix is singular")

// Inverse returns the analytic inverse of the matrix. The arithmetic runs in
// float64 so derived inverses round-trip within float32 precision.
func (m *Mat3) Inverse() (Mat3, error) {
	a, b, c := float64(m[0][0]), float64(m[0][1]), float64(m[0][2])
	d, e, f := float64(m[1][0]), float64(m[1][1]), float64(m[1][2])
	g, h, i := float64(m[2][0]), float64(m[2][1]), float64(m[2][2])

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	if math.Abs(det) < 1e-12 {
		return Mat3{}, errSingularMatrix
	}
	invDet := 1 / det

	return Mat3{
		{float32((e*i - f*h) * invDet), float32((c*h - b*i) * invDet), float32((b*f - c*e) * invDet)},
		{float32((f*g - d*i) * invDet), float32((a*i - c*g) * invDet), float32((c*d - a*f) * invDet)},
		{float32((d*h - e*g) * invDet), float32((g*b - a*h) * invDet), float32((a*e - b*d) * invDet)},
	}, nil
}

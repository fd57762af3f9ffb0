// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

import (
	"fmt"
	"math"

	"cogentcore.org/tint/base/errors"
)

// ErrSingular is returned when a matrix that must be inverted has
// a (numerically) zero determinant.
var ErrSingular = errors.New("math64: matrix is singular")

// singularTol is the relative determinant threshold below which a
// matrix is considered singular.
const singularTol = 1e-14

// Matrix3 is a 3x3 matrix stored in row-major order:
//
//	| m[0] m[1] m[2] |
//	| m[3] m[4] m[5] |
//	| m[6] m[7] m[8] |
//
// It multiplies column vectors from the left.
type Matrix3 [9]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mat3FromRows returns a new [Matrix3] with the given rows.
func Mat3FromRows(r0, r1, r2 Vector3) Matrix3 {
	return Matrix3{
		r0.X, r0.Y, r0.Z,
		r1.X, r1.Y, r1.Z,
		r2.X, r2.Y, r2.Z,
	}
}

// Mat3FromColumns returns a new [Matrix3] with the given columns.
func Mat3FromColumns(c0, c1, c2 Vector3) Matrix3 {
	return Matrix3{
		c0.X, c1.X, c2.X,
		c0.Y, c1.Y, c2.Y,
		c0.Z, c1.Z, c2.Z,
	}
}

// Diagonal3 returns a diagonal matrix with the components of v on the diagonal.
func Diagonal3(v Vector3) Matrix3 {
	return Matrix3{
		v.X, 0, 0,
		0, v.Y, 0,
		0, 0, v.Z,
	}
}

// String implements the [fmt.Stringer] interface.
func (m Matrix3) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g; %g %g %g]", m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// Row returns the given row (0-2) of the matrix.
func (m Matrix3) Row(i int) Vector3 {
	return Vector3{m[3*i], m[3*i+1], m[3*i+2]}
}

// Column returns the given column (0-2) of the matrix.
func (m Matrix3) Column(j int) Vector3 {
	return Vector3{m[j], m[3+j], m[6+j]}
}

// MulVector3 returns the product m·v of the matrix with the column vector v.
func (m Matrix3) MulVector3(v Vector3) Vector3 {
	return Vector3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Mul returns the matrix product m·other.
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	var c Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[3*i+j] = m[3*i]*other[j] + m[3*i+1]*other[3+j] + m[3*i+2]*other[6+j]
		}
	}
	return c
}

// MulScalar returns the matrix with each element multiplied by s.
func (m Matrix3) MulScalar(s float64) Matrix3 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Transpose returns the transpose of the matrix.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant returns the determinant of the matrix, expanded along the first row.
func (m Matrix3) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Cofactors returns the matrix of cofactors of m.
func (m Matrix3) Cofactors() Matrix3 {
	return Matrix3{
		+(m[4]*m[8] - m[5]*m[7]),
		-(m[3]*m[8] - m[5]*m[6]),
		+(m[3]*m[7] - m[4]*m[6]),

		-(m[1]*m[8] - m[2]*m[7]),
		+(m[0]*m[8] - m[2]*m[6]),
		-(m[0]*m[7] - m[1]*m[6]),

		+(m[1]*m[5] - m[2]*m[4]),
		-(m[0]*m[5] - m[2]*m[3]),
		+(m[0]*m[4] - m[1]*m[3]),
	}
}

// Adjugate returns the adjugate (transposed cofactor matrix) of m.
func (m Matrix3) Adjugate() Matrix3 {
	return m.Cofactors().Transpose()
}

// Inverse returns the inverse of the matrix, computed in closed form as
// the adjugate divided by the determinant. The result carries the full
// precision of float64: no iterative refinement or tabulated constants
// are involved. It returns an error wrapping [ErrSingular] if the
// determinant is zero relative to the magnitude of the entries, or not finite.
func (m Matrix3) Inverse() (Matrix3, error) {
	adj := m.Adjugate()
	// expansion along row 0
	det := m[0]*adj[0] + m[1]*adj[3] + m[2]*adj[6]
	scale := m.MaxAbs()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) || math.Abs(det) <= singularTol*scale*scale*scale {
		return Matrix3{}, fmt.Errorf("%w: %v (determinant %g)", ErrSingular, m, det)
	}
	for i := range adj {
		adj[i] /= det
	}
	return adj, nil
}

// MaxAbs returns the largest absolute value of the matrix elements.
func (m Matrix3) MaxAbs() float64 {
	mx := 0.0
	for _, v := range m {
		mx = math.Max(mx, math.Abs(v))
	}
	return mx
}

// IsEqualTol returns whether every element of m is within tol of
// the corresponding element of other.
func (m Matrix3) IsEqualTol(other Matrix3, tol float64) bool {
	for i := range m {
		if math.Abs(m[i]-other[i]) > tol {
			return false
		}
	}
	return true
}

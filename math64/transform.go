// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

// Transform is an immutable linear map between two 3D coordinate
// systems. It always carries both the forward matrix and its exact
// inverse, so that mapping a vector forward and back again only
// accumulates floating point rounding error. The zero value is not
// valid; use [NewTransform].
type Transform struct {
	fwd Matrix3
	inv Matrix3
}

// NewTransform returns a new [Transform] with the given forward matrix.
// The inverse is computed with [Matrix3.Inverse]; an error wrapping
// [ErrSingular] is returned if the matrix cannot be inverted.
func NewTransform(m Matrix3) (Transform, error) {
	inv, err := m.Inverse()
	if err != nil {
		return Transform{}, err
	}
	return Transform{fwd: m, inv: inv}, nil
}

// IdentityTransform returns the transform that maps every vector to itself.
func IdentityTransform() Transform {
	return Transform{fwd: Identity3(), inv: Identity3()}
}

// Matrix returns the forward matrix.
func (t Transform) Matrix() Matrix3 {
	return t.fwd
}

// InverseMatrix returns the inverse matrix.
func (t Transform) InverseMatrix() Matrix3 {
	return t.inv
}

// Apply maps v through the forward matrix.
func (t Transform) Apply(v Vector3) Vector3 {
	return t.fwd.MulVector3(v)
}

// ApplyInverse maps v through the inverse matrix.
func (t Transform) ApplyInverse(v Vector3) Vector3 {
	return t.inv.MulVector3(v)
}

// Inverse returns the transform going the other way.
func (t Transform) Inverse() Transform {
	return Transform{fwd: t.inv, inv: t.fwd}
}

// Then returns the transform that applies t first and next afterwards.
// The inverse of the composition is the product of the exact inverses
// in reverse order, so no new inversion is performed.
func (t Transform) Then(next Transform) Transform {
	return Transform{fwd: next.fwd.Mul(t.fwd), inv: t.inv.Mul(next.inv)}
}

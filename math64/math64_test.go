// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

import (
	"math"
	"testing"

	"cogentcore.org/tint/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector3(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(0.5, -1, 4)
	assert.Equal(t, Vec3(1.5, 1, 7), a.Add(b))
	assert.Equal(t, Vec3(0.5, 3, -1), a.Sub(b))
	assert.Equal(t, Vec3(2, 4, 6), a.MulScalar(2))
	assert.Equal(t, Vec3(0.5, 1, 1.5), a.DivScalar(2))
	assert.Equal(t, 10.5, a.Dot(b))
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, Vec3(0.75, 0.5, 3.5), a.Lerp(b, 0.5))
	assert.Equal(t, a, a.Lerp(a, 0.3))
	tolassert.Equal(t, 3.0, Vec3(1, 2, 2).Length())
	tolassert.Equal(t, 3.0, Vec3(0, 0, 0).DistanceTo(Vec3(2, 1, 2)))
	assert.Equal(t, Vec3(0, 1, 1), Vec3(-1, 0.5, 2).Clamp(Vec3(0, 0, 0), Vec3(1, 1, 1)).Max(Vec3(0, 1, 0)))
	assert.Equal(t, [3]float64{1, 2, 3}, a.Array())
	assert.Equal(t, a, Vector3FromArray(a.Array()))
	assert.Equal(t, 2.0, a.Dim(1))
	assert.Panics(t, func() { a.Dim(3) })

	assert.True(t, a.IsFinite())
	assert.False(t, Vec3(1, math.NaN(), 0).IsFinite())
	assert.False(t, Vec3(0, 0, math.Inf(-1)).IsFinite())
}

func TestVector3Compare(t *testing.T) {
	assert.Equal(t, 0, Vec3(1, 2, 3).Compare(Vec3(1, 2, 3)))
	assert.Equal(t, -1, Vec3(1, 2, 3).Compare(Vec3(2, 0, 0)))
	assert.Equal(t, 1, Vec3(1, 2, 3).Compare(Vec3(1, 1, 9)))
	assert.Equal(t, -1, Vec3(1, 2, 3).Compare(Vec3(1, 2, 4)))
}

func TestMatrix3(t *testing.T) {
	m := Matrix3{
		1, 2, 3,
		0, 1, 4,
		5, 6, 0,
	}
	assert.Equal(t, 1.0, m.Determinant())
	assert.Equal(t, m, m.Mul(Identity3()))
	assert.Equal(t, m, Identity3().Mul(m))
	assert.Equal(t, Vec3(14, 14, 17), m.MulVector3(Vec3(1, 2, 3)))
	assert.Equal(t, m, Mat3FromRows(m.Row(0), m.Row(1), m.Row(2)))
	assert.Equal(t, m, Mat3FromColumns(m.Column(0), m.Column(1), m.Column(2)))
	assert.Equal(t, m, m.Transpose().Transpose())

	inv, err := m.Inverse()
	require.NoError(t, err)
	want := Matrix3{
		-24, 18, 5,
		20, -15, -4,
		-5, 4, 1,
	}
	assert.True(t, want.IsEqualTol(inv, 1e-12), "%v", inv)
	// the determinant is 1, so the adjugate is the inverse
	assert.Equal(t, want, m.Adjugate())
	assert.True(t, Identity3().IsEqualTol(m.Mul(inv), 1e-12))
	assert.True(t, Identity3().IsEqualTol(inv.Mul(m), 1e-12))
}

func TestMatrix3InverseSRGB(t *testing.T) {
	// forward sRGB matrix as commonly published (rounded to 4 places)
	m := Matrix3{
		0.4124, 0.3576, 0.1805,
		0.2126, 0.7152, 0.0722,
		0.0193, 0.1192, 0.9505,
	}
	inv, err := m.Inverse()
	require.NoError(t, err)
	prod := m.Mul(inv)
	id := Identity3()
	for i := range prod {
		tolassert.Equal(t, id[i], prod[i])
	}
	v := Vec3(0.25, 0.5, 0.75)
	for range 500 {
		v = inv.MulVector3(m.MulVector3(v))
	}
	assert.True(t, v.IsEqualTol(Vec3(0.25, 0.5, 0.75), 1e-10), "%v", v)
}

func TestMatrix3Singular(t *testing.T) {
	_, err := Matrix3{
		1, 2, 3,
		2, 4, 6,
		0, 1, 1,
	}.Inverse()
	assert.ErrorIs(t, err, ErrSingular)

	_, err = Matrix3{}.Inverse()
	assert.ErrorIs(t, err, ErrSingular)

	_, err = NewTransform(Matrix3{1, 1, 1, 1, 1, 1, 1, 1, 1})
	assert.ErrorIs(t, err, ErrSingular)
}

func TestTransform(t *testing.T) {
	a, err := NewTransform(Matrix3{
		2, 0, 0,
		0, 4, 0,
		1, 0, 1,
	})
	require.NoError(t, err)
	b, err := NewTransform(Diagonal3(Vec3(1, 0.5, 0.25)))
	require.NoError(t, err)

	v := Vec3(0.3, -0.2, 0.9)
	assert.True(t, v.IsEqualTol(a.ApplyInverse(a.Apply(v)), 1e-15))
	assert.Equal(t, a.Apply(v), a.Inverse().ApplyInverse(v))

	ab := a.Then(b)
	assert.True(t, b.Apply(a.Apply(v)).IsEqualTol(ab.Apply(v), 1e-15))
	assert.True(t, v.IsEqualTol(ab.ApplyInverse(ab.Apply(v)), 1e-15))
	assert.True(t, Identity3().IsEqualTol(ab.Matrix().Mul(ab.InverseMatrix()), 1e-15))

	id := IdentityTransform()
	assert.Equal(t, v, id.Apply(v))
}

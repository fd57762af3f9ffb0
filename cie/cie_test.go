// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"math"
	"sync"
	"testing"

	"cogentcore.org/tint/base/tolassert"
	"cogentcore.org/tint/math64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhitePoints(t *testing.T) {
	for _, il := range Standards() {
		wp := il.WhitePoint()
		assert.Equal(t, 1.0, wp.Y, il.String())
		assert.Greater(t, wp.X, 0.0, il.String())
		assert.Greater(t, wp.Z, 0.0, il.String())
		assert.False(t, il.IsCustom())
		assert.Greater(t, il.CCT(), 0.0)
	}
	assert.Equal(t, math64.Vec3(0.95047, 1, 1.08883), D65.WhitePoint())
	assert.Equal(t, D50, Illuminant{})
	assert.Equal(t, "D65", D65.String())
	assert.Equal(t, "F11", KindF11.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestCustom(t *testing.T) {
	il, err := Custom(2856)
	require.NoError(t, err)
	assert.True(t, il.IsCustom())
	assert.Equal(t, KindCustom, il.Kind())
	assert.Equal(t, 2856.0, il.CCT())
	assert.Equal(t, "2856K", il.String())

	// the Planckian locus at 2856K is illuminant A
	x, y := WhitePointXYZ(il).Chromaticity()
	tolassert.EqualTol(t, 0.44757, x, 0.002)
	tolassert.EqualTol(t, 0.40745, y, 0.002)
	assert.Equal(t, 1.0, il.WhitePoint().Y)

	again, err := Custom(2856)
	require.NoError(t, err)
	assert.Equal(t, il, again)

	for _, cct := range []float64{MinCCT, 2222, 4000, 6504, 10000, MaxCCT} {
		il, err := Custom(cct)
		require.NoError(t, err, cct)
		wp := il.WhitePoint()
		assert.Greater(t, wp.X, 0.0)
		assert.Greater(t, wp.Z, 0.0)
		tolassert.Equal(t, 1.0, wp.Y)
	}

	for _, cct := range []float64{0, -5000, 1000, 1666, 25001, 40000, math.NaN(), math.Inf(1)} {
		_, err := Custom(cct)
		assert.ErrorIs(t, err, ErrOutOfRange, cct)
	}
}

func TestUnmarshalText(t *testing.T) {
	var il Illuminant
	require.NoError(t, il.UnmarshalText([]byte("d65")))
	assert.Equal(t, D65, il)
	require.NoError(t, il.UnmarshalText([]byte(" F2 ")))
	assert.Equal(t, F2, il)
	require.NoError(t, il.UnmarshalText([]byte("5000K")))
	assert.Equal(t, 5000.0, il.CCT())
	assert.True(t, il.IsCustom())

	b, err := il.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "5000K", string(b))

	assert.Error(t, il.UnmarshalText([]byte("bogus")))
	assert.ErrorIs(t, il.UnmarshalText([]byte("500K")), ErrOutOfRange)
}

func TestAdaptIdentity(t *testing.T) {
	v := math64.Vec3(0.4, 0.6, 0.2)
	assert.Equal(t, v, Adapt(v, D65, D65))
	xyz := NewXYZ(0.4, 0.6, 0.2, D65)
	assert.Equal(t, xyz, xyz.Adapt(D65))

	white := WhitePointXYZ(D65)
	assert.Equal(t, white, white.Adapt(D65))
	assert.Equal(t, math64.Identity3(), AdaptationMatrix(A, A))

	il, err := Custom(4500)
	require.NoError(t, err)
	assert.Equal(t, v, Adapt(v, il, il))
}

func TestAdaptWhite(t *testing.T) {
	for _, from := range Standards() {
		for _, to := range Standards() {
			got := WhitePointXYZ(from).Adapt(to)
			assert.Equal(t, to, got.Illuminant)
			assert.True(t, to.WhitePoint().IsEqualTol(got.Vector3(), 1e-12), "%v -> %v: %v", from, to, got)
		}
	}
}

func TestAdaptRoundTrip(t *testing.T) {
	c1 := NewXYZ(0.5, 0.75, 0.6, D65)
	c2 := c1.Adapt(D50).Adapt(D55)
	c3 := c1.Adapt(D75).Adapt(D55)
	assert.True(t, c2.Vector3().IsEqualTol(c3.Vector3(), 1e-12))
	assert.True(t, c1.Vector3().IsEqualTol(c2.Adapt(D65).Vector3(), 1e-12))

	v := c1.Vector3()
	for range 500 {
		v = Adapt(Adapt(v, D65, A), A, D65)
	}
	assert.True(t, c1.Vector3().IsEqualTol(v, 1e-10), "%v", v)

	m := AdaptationMatrix(D65, D50)
	assert.True(t, m.MulVector3(c1.Vector3()).IsEqualTol(c1.Adapt(D50).Vector3(), 1e-14))
}

func TestBradford(t *testing.T) {
	br := Bradford()
	assert.Equal(t, BradfordMatrix, br.Matrix())
	prod := br.Matrix().Mul(br.InverseMatrix())
	id := math64.Identity3()
	for i := range prod {
		tolassert.Equal(t, id[i], prod[i])
	}
}

func TestAdaptInvalidWhite(t *testing.T) {
	broken := Illuminant{kind: KindCustom, cct: 1}
	assert.Panics(t, func() {
		Adapt(math64.Vec3(0.2, 0.3, 0.4), D65, broken)
	})
	nan := Illuminant{kind: KindCustom, cct: 5000, wp: math64.Vec3(math.NaN(), 1, 1)}
	assert.Panics(t, func() {
		AdaptationMatrix(D65, nan)
	})
}

func TestAdaptConcurrent(t *testing.T) {
	want := Adapt(math64.Vec3(0.2, 0.3, 0.4), D65, D50)
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, Adapt(math64.Vec3(0.2, 0.3, 0.4), D65, D50))
		}()
	}
	wg.Wait()
}

func TestXYZApprox(t *testing.T) {
	d65 := WhitePointXYZ(D65)
	d50 := WhitePointXYZ(D50)
	assert.False(t, d65.ApproxEqual(d50))
	assert.True(t, d65.ApproxVisuallyEqual(d50))
	assert.True(t, d65.ApproxEqual(NewXYZ(0.9509, 0.9995, 1.0885, D50)))

	assert.Equal(t, d65, d50.FromXYZ(d65))
	assert.Equal(t, D65, d65.Reference())
	assert.Equal(t, d65.Adapt(A), d65.ToXYZ(A))
	assert.Equal(t, d65, d65.FromCoord(d65.Coord()))
	assert.Equal(t, d65.Adapt(D50), d50.Align(d65))
	assert.Contains(t, d65.String(), "D65")
}

func TestChromaticity(t *testing.T) {
	x, y := XYZToChromaticity(math64.Vec3(0, 0, 0))
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
	assert.Equal(t, math64.Vector3{}, ChromaticityToXYZ(0.3, 0, 1))

	x, y = WhitePointXYZ(D65).Chromaticity()
	tolassert.EqualTol(t, 0.3127, x, 1e-4)
	tolassert.EqualTol(t, 0.3290, y, 1e-4)
	v := ChromaticityToXYZ(x, y, 1)
	assert.True(t, D65.WhitePoint().IsEqualTol(v, 1e-12))
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"slices"
	"testing"

	"cogentcore.org/tint/base/tolassert"
	"cogentcore.org/tint/cie"
	"cogentcore.org/tint/math64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMix(t *testing.T) {
	a := Lab{50, 20, -30}
	b := Lab{70, -10, 40}
	assert.Equal(t, a, Mix(a, b, 0))
	assert.Equal(t, b, Mix(a, b, 1))
	assertCoord(t, math64.Vec3(60, 5, 5), Mix(a, b, 0.5).Coord(), 1e-12)

	for _, f := range []float64{0, 0.1, 0.37, 0.5, 0.9, 1, -2, 3} {
		assert.Equal(t, a, Mix(a, a, f))
		c := SRGB{0.2, 0.4, 0.6}
		assert.Equal(t, c, Mix(c, c, f))
	}
}

func TestMixXYZ(t *testing.T) {
	d65 := cie.WhitePointXYZ(cie.D65)
	d50 := cie.WhitePointXYZ(cie.D50)

	// the same white under two illuminants is the same color
	m := Mix(d65, d50, 0.5)
	assert.Equal(t, cie.D65, m.Illuminant)
	assertCoord(t, d65.Vector3(), m.Vector3(), 1e-12)
	tolassert.EqualTol(t, 0, Distance(d65, d50), 1e-12)

	black := cie.NewXYZ(0, 0, 0, cie.A)
	m = Mix(d65, black, 0.5)
	assert.Equal(t, cie.D65, m.Illuminant)
	assertCoord(t, d65.Vector3().MulScalar(0.5), m.Vector3(), 1e-12)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(Lab{50, 0, 0}, Lab{53, 4, 0}))
	assert.Equal(t, 0.0, Distance(OKLab{0.5, 0.1, 0.1}, OKLab{0.5, 0.1, 0.1}))
	assert.Equal(t, Distance(SRGB{0, 0, 0}, SRGB{1, 1, 1}), Distance(SRGB{1, 1, 1}, SRGB{0, 0, 0}))
}

func TestGradient(t *testing.T) {
	a := OKLab{0.3, 0.1, -0.1}
	b := OKLab{0.8, -0.05, 0.12}

	got := slices.Collect(Gradient(a, b, 5))
	require.Len(t, got, 5)
	assert.Equal(t, a, got[0])
	assert.Equal(t, b, got[4])
	step := Distance(a, b) / 4
	for i := 1; i < len(got); i++ {
		tolassert.EqualTol(t, step, Distance(got[i-1], got[i]), 1e-12)
	}

	// restartable
	assert.Equal(t, got, slices.Collect(Gradient(a, b, 5)))

	assert.Equal(t, []OKLab{a, b}, slices.Collect(Gradient(a, b, 2)))
	assert.Equal(t, []OKLab{a}, slices.Collect(Gradient(a, b, 1)))
	assert.Empty(t, slices.Collect(Gradient(a, b, 0)))
	assert.Empty(t, slices.Collect(Gradient(a, b, -3)))

	n := 0
	for c := range Gradient(a, b, 100) {
		n++
		if n == 3 {
			assert.Equal(t, Mix(a, b, 2.0/99), c)
			break
		}
	}
	assert.Equal(t, 3, n)

	// the last XYZ color keeps its own illuminant
	xa := cie.NewXYZ(0.2, 0.3, 0.4, cie.D65)
	xb := cie.NewXYZ(0.5, 0.5, 0.5, cie.D50)
	xg := slices.Collect(Gradient(xa, xb, 3))
	assert.Equal(t, xa, xg[0])
	assert.Equal(t, cie.D65, xg[1].Illuminant)
	assert.Equal(t, xb, xg[2])
}

func TestNearestInGamutBox(t *testing.T) {
	cube := UnitCube[SRGB]()
	in := SRGB{0.2, 0.5, 0.8}
	got, ok := NearestInGamut(in, cube)
	assert.True(t, ok)
	assert.Equal(t, in, got)

	got, ok = NearestInGamut(SRGB{1.2, -0.1, 0.5}, cube)
	assert.True(t, ok)
	assert.Equal(t, SRGB{1, 0, 0.5}, got)
	assert.True(t, got.InGamut())
}

func TestNearestInGamutSearch(t *testing.T) {
	bounds := Box[LinearSRGB]{Min: math64.Vector3Scalar(-2), Max: math64.Vector3Scalar(2)}

	// two equally near members: the lexicographically smaller wins
	shell := FuncGamut[LinearSRGB]{Min: bounds.Min, Max: bounds.Max, Func: func(c LinearSRGB) bool {
		return c.R <= -1 || c.R >= 1
	}}
	got, ok := NearestInGamut(LinearSRGB{}, shell)
	assert.True(t, ok)
	assert.Equal(t, LinearSRGB{-1, 0, 0}, got)

	ball := FuncGamut[LinearSRGB]{Min: bounds.Min, Max: bounds.Max, Func: func(c LinearSRGB) bool {
		return c.Coord().Length() <= 1
	}}
	c := LinearSRGB{1.5, 1.5, 0.3}
	got, ok = NearestInGamut(c, ball)
	assert.True(t, ok)
	assert.True(t, ball.Contains(got))
	assertCoord(t, c.Coord().DivScalar(c.Coord().Length()), got.Coord(), 1e-3)

	again, _ := NearestInGamut(c, ball)
	assert.Equal(t, got, again)

	empty := FuncGamut[LinearSRGB]{Min: bounds.Min, Max: bounds.Max, Func: func(c LinearSRGB) bool { return false }}
	got, ok = NearestInGamut(c, empty)
	assert.False(t, ok)
	assert.Equal(t, c, got)
}

func TestGamutOf(t *testing.T) {
	g := GamutOf(UnitCube[SRGB](), LabBounds)
	assert.True(t, g.Contains(Lab{50, 10, 10}))

	c := Lab{50, 100, 0}
	assert.False(t, g.Contains(c))
	got, ok := NearestInGamut(c, g)
	assert.True(t, ok)
	assert.True(t, Convert[SRGB](got).InGamut())
	assert.Less(t, Distance(c, got), Distance(c, Lab{50, 0, 0}))
}

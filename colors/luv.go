// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"math"

	"cogentcore.org/tint/cie"
	"cogentcore.org/tint/math64"
)

// uvPrime returns the CIE 1976 u'v' chromaticity of the given tristimulus
// value. Black returns 0, 0.
func uvPrime(v math64.Vector3) (u, w float64) {
	d := v.X + 15*v.Y + 3*v.Z
	if d == 0 {
		return 0, 0
	}
	return 4 * v.X / d, 9 * v.Y / d
}

// Luv is a color in the CIE 1976 L*u*v* space, relative to [cie.D50].
// L is the lightness, nominally 0-100, and U and V are chromaticity
// coordinates scaled by lightness.
type Luv struct {
	L, U, V float64
}

func (c Luv) String() string {
	return fmt.Sprintf("Luv(%g, %g, %g)", c.L, c.U, c.V)
}

// ToXYZ implements [Color].
func (c Luv) ToXYZ(il cie.Illuminant) cie.XYZ {
	if c.L == 0 {
		return toXYZ(math64.Vector3{}, cie.D50, il)
	}
	wp := cie.D50.WhitePoint()
	un, vn := uvPrime(wp)
	u := c.U/(13*c.L) + un
	v := c.V/(13*c.L) + vn
	y := labFInv((c.L+16)/116) * wp.Y
	if v == 0 {
		return toXYZ(math64.Vec3(0, y, 0), cie.D50, il)
	}
	x := y * 9 * u / (4 * v)
	z := y * (12 - 3*u - 20*v) / (4 * v)
	return toXYZ(math64.Vec3(x, y, z), cie.D50, il)
}

// FromXYZ implements [Space].
func (c Luv) FromXYZ(x cie.XYZ) Luv {
	wp := cie.D50.WhitePoint()
	v := fromXYZ(x, cie.D50)
	l := 116*labF(v.Y/wp.Y) - 16
	up, vp := uvPrime(v)
	if up == 0 && vp == 0 {
		return Luv{L: l}
	}
	un, vn := uvPrime(wp)
	return Luv{L: l, U: 13 * l * (up - un), V: 13 * l * (vp - vn)}
}

// Reference implements [Color]; it is [cie.D50].
func (c Luv) Reference() cie.Illuminant {
	return cie.D50
}

// Coord implements [Point].
func (c Luv) Coord() math64.Vector3 {
	return math64.Vec3(c.L, c.U, c.V)
}

// FromCoord implements [Point].
func (c Luv) FromCoord(v math64.Vector3) Luv {
	return Luv{v.X, v.Y, v.Z}
}

// LCH returns the color in cylindrical form.
func (c Luv) LCH() LCHuv {
	return LCHuv{L: c.L, C: math.Hypot(c.U, c.V), H: hueDegrees(c.U, c.V)}
}

// LCHuv is the cylindrical form of [Luv]: lightness, chroma, and hue
// in degrees. Its reference is [cie.D50].
type LCHuv struct {
	L, C, H float64
}

func (c LCHuv) String() string {
	return fmt.Sprintf("LCHuv(%g, %g, %g)", c.L, c.C, c.H)
}

// Luv returns the color in rectangular form.
func (c LCHuv) Luv() Luv {
	u, v := polarToRect(c.C, c.H)
	return Luv{L: c.L, U: u, V: v}
}

// ToXYZ implements [Color].
func (c LCHuv) ToXYZ(il cie.Illuminant) cie.XYZ {
	return c.Luv().ToXYZ(il)
}

// FromXYZ implements [Space].
func (c LCHuv) FromXYZ(x cie.XYZ) LCHuv {
	return Luv{}.FromXYZ(x).LCH()
}

// Reference implements [Color]; it is [cie.D50].
func (c LCHuv) Reference() cie.Illuminant {
	return cie.D50
}

// Coord implements [Point].
func (c LCHuv) Coord() math64.Vector3 {
	return math64.Vec3(c.L, c.C, c.H)
}

// FromCoord implements [Point].
func (c LCHuv) FromCoord(v math64.Vector3) LCHuv {
	return LCHuv{v.X, v.Y, v.Z}
}

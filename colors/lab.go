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

// The exact CIE constants for the L* function, as rationals rather than
// the rounded 0.008856 and 903.3 of the 1976 publication.
const (
	labEpsilon = 216.0 / 24389
	labKappa   = 24389.0 / 27
)

// labF is the nonlinearity of L*a*b* and L*u*v* applied to a
// component relative to the white point.
func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// labFInv is the inverse of [labF].
func labFInv(f float64) float64 {
	if f3 := f * f * f; f3 > labEpsilon {
		return f3
	}
	return (116*f - 16) / labKappa
}

// Lab is a color in the CIE 1976 L*a*b* space, relative to [cie.D50].
// L is the lightness, nominally 0-100, and A and B are the green-red and
// blue-yellow opponent axes, nominally within ±128 for real colors.
type Lab struct {
	L, A, B float64
}

func (c Lab) String() string {
	return fmt.Sprintf("Lab(%g, %g, %g)", c.L, c.A, c.B)
}

// ToXYZ implements [Color].
func (c Lab) ToXYZ(il cie.Illuminant) cie.XYZ {
	fy := (c.L + 16) / 116
	fx := fy + c.A/500
	fz := fy - c.B/200
	rel := math64.Vec3(labFInv(fx), labFInv(fy), labFInv(fz))
	return toXYZ(rel.Mul(cie.D50.WhitePoint()), cie.D50, il)
}

// FromXYZ implements [Space].
func (c Lab) FromXYZ(x cie.XYZ) Lab {
	rel := fromXYZ(x, cie.D50).Div(cie.D50.WhitePoint())
	fx, fy, fz := labF(rel.X), labF(rel.Y), labF(rel.Z)
	return Lab{L: 116*fy - 16, A: 500 * (fx - fy), B: 200 * (fy - fz)}
}

// Reference implements [Color]; it is [cie.D50].
func (c Lab) Reference() cie.Illuminant {
	return cie.D50
}

// Coord implements [Point].
func (c Lab) Coord() math64.Vector3 {
	return math64.Vec3(c.L, c.A, c.B)
}

// FromCoord implements [Point].
func (c Lab) FromCoord(v math64.Vector3) Lab {
	return Lab{v.X, v.Y, v.Z}
}

// Chroma returns the distance of the color from the neutral axis.
func (c Lab) Chroma() float64 {
	return math.Hypot(c.A, c.B)
}

// Hue returns the hue angle of the color in degrees, 0-360.
func (c Lab) Hue() float64 {
	return hueDegrees(c.A, c.B)
}

// LCH returns the color in cylindrical form.
func (c Lab) LCH() LCHab {
	return LCHab{L: c.L, C: c.Chroma(), H: c.Hue()}
}

// LCHab is the cylindrical form of [Lab]: lightness, chroma, and hue
// in degrees. Its reference is [cie.D50].
type LCHab struct {
	L, C, H float64
}

func (c LCHab) String() string {
	return fmt.Sprintf("LCHab(%g, %g, %g)", c.L, c.C, c.H)
}

// Lab returns the color in rectangular form.
func (c LCHab) Lab() Lab {
	a, b := polarToRect(c.C, c.H)
	return Lab{L: c.L, A: a, B: b}
}

// ToXYZ implements [Color].
func (c LCHab) ToXYZ(il cie.Illuminant) cie.XYZ {
	return c.Lab().ToXYZ(il)
}

// FromXYZ implements [Space].
func (c LCHab) FromXYZ(x cie.XYZ) LCHab {
	return Lab{}.FromXYZ(x).LCH()
}

// Reference implements [Color]; it is [cie.D50].
func (c LCHab) Reference() cie.Illuminant {
	return cie.D50
}

// Coord implements [Point].
func (c LCHab) Coord() math64.Vector3 {
	return math64.Vec3(c.L, c.C, c.H)
}

// FromCoord implements [Point].
func (c LCHab) FromCoord(v math64.Vector3) LCHab {
	return LCHab{v.X, v.Y, v.Z}
}

// hueDegrees returns the angle of (a, b) in degrees, 0-360.
// The neutral axis (0, 0) has hue 0.
func hueDegrees(a, b float64) float64 {
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}
	return h
}

// polarToRect returns the rectangular components of the given
// chroma and hue in degrees.
func polarToRect(c, h float64) (a, b float64) {
	s, co := math.Sincos(h * math.Pi / 180)
	return c * co, c * s
}

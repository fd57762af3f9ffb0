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

// HSL is a color in the hue, saturation, lightness form of [SRGB].
// H is in degrees, 0-360, and S and L are 0-1 within the sRGB gamut.
type HSL struct {
	H, S, L float64
}

// HSLFromSRGB returns the given sRGB color in HSL form.
func HSLFromSRGB(c SRGB) HSL {
	h, max, d := rgbHue(c)
	l := max - d/2
	s := 0.0
	if den := 1 - math.Abs(2*l-1); d != 0 && den != 0 {
		s = d / den
	}
	return HSL{H: h, S: s, L: l}
}

func (c HSL) String() string {
	return fmt.Sprintf("HSL(%g, %g, %g)", c.H, c.S, c.L)
}

// SRGB returns the color in sRGB.
func (c HSL) SRGB() SRGB {
	chroma := (1 - math.Abs(2*c.L-1)) * c.S
	return hueToRGB(c.H, chroma, c.L-chroma/2)
}

// ToXYZ implements [Color].
func (c HSL) ToXYZ(il cie.Illuminant) cie.XYZ {
	return c.SRGB().ToXYZ(il)
}

// FromXYZ implements [Space].
func (c HSL) FromXYZ(x cie.XYZ) HSL {
	return HSLFromSRGB(SRGB{}.FromXYZ(x))
}

// Reference implements [Color]; it is [cie.D65].
func (c HSL) Reference() cie.Illuminant {
	return cie.D65
}

// Coord implements [Point].
func (c HSL) Coord() math64.Vector3 {
	return math64.Vec3(c.H, c.S, c.L)
}

// FromCoord implements [Point].
func (c HSL) FromCoord(v math64.Vector3) HSL {
	return HSL{v.X, v.Y, v.Z}
}

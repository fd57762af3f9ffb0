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

// rgbHue returns the hue in degrees, the maximum component and the
// spread (maximum minus minimum) of the given RGB value.
func rgbHue(c SRGB) (h, max, d float64) {
	max = math.Max(c.R, math.Max(c.G, c.B))
	min := math.Min(c.R, math.Min(c.G, c.B))
	d = max - min
	switch {
	case d == 0:
		h = 0
	case max == c.R:
		h = math.Mod((c.G-c.B)/d, 6)
	case max == c.G:
		h = (c.B-c.R)/d + 2
	default:
		h = (c.R-c.G)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	// a tiny negative hue rounds up to exactly 360
	if h >= 360 {
		h -= 360
	}
	return
}

// hueToRGB returns the RGB value of the given hue in degrees and chroma,
// offset by m in every component.
func hueToRGB(h, chroma, m float64) SRGB {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	hp := h / 60
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = chroma, x, 0
	case hp < 2:
		r, g, b = x, chroma, 0
	case hp < 3:
		r, g, b = 0, chroma, x
	case hp < 4:
		r, g, b = 0, x, chroma
	case hp < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return SRGB{r + m, g + m, b + m}
}

// HSV is a color in the hue, saturation, value form of [SRGB].
// H is in degrees, 0-360, and S and V are 0-1 within the sRGB gamut.
type HSV struct {
	H, S, V float64
}

// HSVFromSRGB returns the given sRGB color in HSV form.
func HSVFromSRGB(c SRGB) HSV {
	h, max, d := rgbHue(c)
	s := 0.0
	if max != 0 {
		s = d / max
	}
	return HSV{H: h, S: s, V: max}
}

func (c HSV) String() string {
	return fmt.Sprintf("HSV(%g, %g, %g)", c.H, c.S, c.V)
}

// SRGB returns the color in sRGB.
func (c HSV) SRGB() SRGB {
	chroma := c.V * c.S
	return hueToRGB(c.H, chroma, c.V-chroma)
}

// ToXYZ implements [Color].
func (c HSV) ToXYZ(il cie.Illuminant) cie.XYZ {
	return c.SRGB().ToXYZ(il)
}

// FromXYZ implements [Space].
func (c HSV) FromXYZ(x cie.XYZ) HSV {
	return HSVFromSRGB(SRGB{}.FromXYZ(x))
}

// Reference implements [Color]; it is [cie.D65].
func (c HSV) Reference() cie.Illuminant {
	return cie.D65
}

// Coord implements [Point].
func (c HSV) Coord() math64.Vector3 {
	return math64.Vec3(c.H, c.S, c.V)
}

// FromCoord implements [Point].
func (c HSV) FromCoord(v math64.Vector3) HSV {
	return HSV{v.X, v.Y, v.Z}
}

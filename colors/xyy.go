// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"

	"cogentcore.org/tint/cie"
	"cogentcore.org/tint/math64"
)

// XYY is a color in the CIE xyY space, relative to [cie.D50]: the xy
// chromaticity of the color together with its luminance Y.
type XYY struct {

	// X and Y are the chromaticity coordinates.
	X, Y float64

	// Lum is the luminance, the Y of [cie.XYZ].
	Lum float64
}

func (c XYY) String() string {
	return fmt.Sprintf("xyY(%g, %g, %g)", c.X, c.Y, c.Lum)
}

// ToXYZ implements [Color].
func (c XYY) ToXYZ(il cie.Illuminant) cie.XYZ {
	return toXYZ(cie.ChromaticityToXYZ(c.X, c.Y, c.Lum), cie.D50, il)
}

// FromXYZ implements [Space]. Black is given the chromaticity of the
// white point so that it lies on the neutral axis.
func (c XYY) FromXYZ(x cie.XYZ) XYY {
	v := fromXYZ(x, cie.D50)
	if v.X+v.Y+v.Z == 0 {
		cx, cy := cie.XYZToChromaticity(cie.D50.WhitePoint())
		return XYY{X: cx, Y: cy}
	}
	cx, cy := cie.XYZToChromaticity(v)
	return XYY{X: cx, Y: cy, Lum: v.Y}
}

// Reference implements [Color]; it is [cie.D50].
func (c XYY) Reference() cie.Illuminant {
	return cie.D50
}

// Coord implements [Point].
func (c XYY) Coord() math64.Vector3 {
	return math64.Vec3(c.X, c.Y, c.Lum)
}

// FromCoord implements [Point].
func (c XYY) FromCoord(v math64.Vector3) XYY {
	return XYY{v.X, v.Y, v.Z}
}

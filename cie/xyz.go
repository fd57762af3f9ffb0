// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"
	"math"

	"cogentcore.org/tint/math64"
)

// ApproxTol is the per-component tolerance used by [XYZ.ApproxEqual].
const ApproxTol = 0.001

// XYZ is a point in the CIE 1931 XYZ color space, the master space that
// every other color space converts through. Values are normalized so that
// Y = 1 is the reference white of the associated [Illuminant]. Components
// may be negative or exceed the white point for out of gamut and imaginary
// colors; no clamping is done.
type XYZ struct {

	// X roughly represents the response of the long wavelength (red) cones.
	X float64

	// Y is the luminance, and roughly represents the response of the
	// medium wavelength (green) cones.
	Y float64

	// Z roughly represents the response of the short wavelength (blue) cones.
	Z float64

	// Illuminant is the lighting environment the color is seen under.
	// The zero value is [D50].
	Illuminant Illuminant
}

// NewXYZ returns a new [XYZ] value under the given illuminant.
func NewXYZ(x, y, z float64, il Illuminant) XYZ {
	return XYZ{X: x, Y: y, Z: z, Illuminant: il}
}

// XYZFromVector3 returns a new [XYZ] value from the given vector under the given illuminant.
func XYZFromVector3(v math64.Vector3, il Illuminant) XYZ {
	return XYZ{X: v.X, Y: v.Y, Z: v.Z, Illuminant: il}
}

// WhitePointXYZ returns pure white in the given lighting environment.
func WhitePointXYZ(il Illuminant) XYZ {
	return XYZFromVector3(il.WhitePoint(), il)
}

// String implements the [fmt.Stringer] interface.
func (c XYZ) String() string {
	return fmt.Sprintf("XYZ(%g, %g, %g; %v)", c.X, c.Y, c.Z, c.Illuminant)
}

// Vector3 returns the tristimulus components as a vector.
func (c XYZ) Vector3() math64.Vector3 {
	return math64.Vec3(c.X, c.Y, c.Z)
}

// Adapt returns this color as it would appear under the given illuminant.
// See [Adapt] for the algorithm; the same illuminant returns c unchanged.
func (c XYZ) Adapt(il Illuminant) XYZ {
	if c.Illuminant == il {
		return c
	}
	return XYZFromVector3(Adapt(c.Vector3(), c.Illuminant, il), il)
}

// Chromaticity returns the xy chromaticity of the color.
func (c XYZ) Chromaticity() (x, y float64) {
	return XYZToChromaticity(c.Vector3())
}

// ApproxEqual returns whether all components of the two colors are within
// [ApproxTol] of each other. Illuminants are not compared; see
// [XYZ.ApproxVisuallyEqual].
func (c XYZ) ApproxEqual(o XYZ) bool {
	return math.Abs(c.X-o.X) <= ApproxTol &&
		math.Abs(c.Y-o.Y) <= ApproxTol &&
		math.Abs(c.Z-o.Z) <= ApproxTol
}

// ApproxVisuallyEqual returns whether the other color, once adapted to
// this color's illuminant, is [XYZ.ApproxEqual] to this color.
func (c XYZ) ApproxVisuallyEqual(o XYZ) bool {
	return c.ApproxEqual(o.Adapt(c.Illuminant))
}

// ToXYZ returns the color adapted to the given illuminant.
// Together with [XYZ.FromXYZ] and [XYZ.Reference], it makes
// XYZ a color space like any other.
func (c XYZ) ToXYZ(il Illuminant) XYZ {
	return c.Adapt(il)
}

// FromXYZ returns the given value unchanged: XYZ is the master space.
func (c XYZ) FromXYZ(o XYZ) XYZ {
	return o
}

// Reference returns the illuminant of the color.
func (c XYZ) Reference() Illuminant {
	return c.Illuminant
}

// Coord returns the tristimulus components as a vector for geometric operations.
func (c XYZ) Coord() math64.Vector3 {
	return c.Vector3()
}

// FromCoord returns a new color at the given tristimulus coordinates
// under the illuminant of c.
func (c XYZ) FromCoord(v math64.Vector3) XYZ {
	return XYZFromVector3(v, c.Illuminant)
}

// Align returns o adapted to the illuminant of c, so that the two can be
// combined geometrically. Mixing XYZ colors under different illuminants
// without this would not be meaningful.
func (c XYZ) Align(o XYZ) XYZ {
	return o.Adapt(c.Illuminant)
}

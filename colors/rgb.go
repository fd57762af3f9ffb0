// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"sync"

	"cogentcore.org/tint/base/errors"
	"cogentcore.org/tint/cie"
	"cogentcore.org/tint/math64"
)

// The predefined RGB spaces. They are built on first use, and a failure
// to build one is a defect in its definition, so it panics.
var (
	// SRGBSpace is the IEC 61966-2-1 sRGB space.
	SRGBSpace = sync.OnceValue(func() *RGBSpace {
		return errors.Must1(NewRGBSpace("sRGB", Chromaticity{0.64, 0.33}, Chromaticity{0.30, 0.60}, Chromaticity{0.15, 0.06}, cie.D65, SRGBTransfer))
	})

	// LinearSRGBSpace is the sRGB space without its transfer function.
	LinearSRGBSpace = sync.OnceValue(func() *RGBSpace {
		return errors.Must1(NewRGBSpace("linear sRGB", Chromaticity{0.64, 0.33}, Chromaticity{0.30, 0.60}, Chromaticity{0.15, 0.06}, cie.D65, LinearTransfer))
	})

	// AdobeRGBSpace is the Adobe RGB (1998) space.
	AdobeRGBSpace = sync.OnceValue(func() *RGBSpace {
		return errors.Must1(NewRGBSpace("Adobe RGB", Chromaticity{0.64, 0.33}, Chromaticity{0.21, 0.71}, Chromaticity{0.15, 0.06}, cie.D65, GammaTransfer(563.0/256)))
	})

	// DisplayP3Space is the Display P3 space: DCI-P3 primaries
	// with a D65 white and the sRGB transfer function.
	DisplayP3Space = sync.OnceValue(func() *RGBSpace {
		return errors.Must1(NewRGBSpace("Display P3", Chromaticity{0.680, 0.320}, Chromaticity{0.265, 0.690}, Chromaticity{0.150, 0.060}, cie.D65, SRGBTransfer))
	})

	// Rec2020Space is the ITU-R BT.2020 space.
	Rec2020Space = sync.OnceValue(func() *RGBSpace {
		return errors.Must1(NewRGBSpace("Rec. 2020", Chromaticity{0.708, 0.292}, Chromaticity{0.170, 0.797}, Chromaticity{0.131, 0.046}, cie.D65, Rec2020Transfer))
	})

	// ProPhotoRGBSpace is the ROMM RGB (ProPhoto) space.
	ProPhotoRGBSpace = sync.OnceValue(func() *RGBSpace {
		return errors.Must1(NewRGBSpace("ProPhoto RGB", Chromaticity{0.7347, 0.2653}, Chromaticity{0.1596, 0.8404}, Chromaticity{0.0366, 0.0001}, cie.D50, ProPhotoTransfer))
	})
)

// SRGB is a color in the standard sRGB space, with gamma encoded
// components that are 0-1 for colors within the gamut of the space.
// Components outside that range are preserved for out of gamut colors.
type SRGB struct {
	R, G, B float64
}

func (c SRGB) String() string {
	return fmt.Sprintf("sRGB(%g, %g, %g)", c.R, c.G, c.B)
}

// ToXYZ implements [Color].
func (c SRGB) ToXYZ(il cie.Illuminant) cie.XYZ {
	return SRGBSpace().toXYZ(c.Coord(), il)
}

// FromXYZ implements [Space].
func (c SRGB) FromXYZ(x cie.XYZ) SRGB {
	return c.FromCoord(SRGBSpace().fromXYZ(x))
}

// Reference implements [Color]; it is [cie.D65].
func (c SRGB) Reference() cie.Illuminant {
	return cie.D65
}

// Coord implements [Point].
func (c SRGB) Coord() math64.Vector3 {
	return math64.Vec3(c.R, c.G, c.B)
}

// FromCoord implements [Point].
func (c SRGB) FromCoord(v math64.Vector3) SRGB {
	return SRGB{v.X, v.Y, v.Z}
}

// Linear returns the color in the linear sRGB space.
func (c SRGB) Linear() LinearSRGB {
	return LinearSRGB{}.FromCoord(SRGBSpace().Decode(c.Coord()))
}

// LinearSRGB is a color in the sRGB space without gamma encoding,
// so that components are proportional to light intensity.
type LinearSRGB struct {
	R, G, B float64
}

func (c LinearSRGB) String() string {
	return fmt.Sprintf("linear sRGB(%g, %g, %g)", c.R, c.G, c.B)
}

// ToXYZ implements [Color].
func (c LinearSRGB) ToXYZ(il cie.Illuminant) cie.XYZ {
	return LinearSRGBSpace().toXYZ(c.Coord(), il)
}

// FromXYZ implements [Space].
func (c LinearSRGB) FromXYZ(x cie.XYZ) LinearSRGB {
	return c.FromCoord(LinearSRGBSpace().fromXYZ(x))
}

// Reference implements [Color]; it is [cie.D65].
func (c LinearSRGB) Reference() cie.Illuminant {
	return cie.D65
}

// Coord implements [Point].
func (c LinearSRGB) Coord() math64.Vector3 {
	return math64.Vec3(c.R, c.G, c.B)
}

// FromCoord implements [Point].
func (c LinearSRGB) FromCoord(v math64.Vector3) LinearSRGB {
	return LinearSRGB{v.X, v.Y, v.Z}
}

// Encoded returns the color in the gamma encoded sRGB space.
func (c LinearSRGB) Encoded() SRGB {
	return SRGB{}.FromCoord(SRGBSpace().Encode(c.Coord()))
}

// AdobeRGB is a color in the Adobe RGB (1998) space.
type AdobeRGB struct {
	R, G, B float64
}

func (c AdobeRGB) String() string {
	return fmt.Sprintf("Adobe RGB(%g, %g, %g)", c.R, c.G, c.B)
}

// ToXYZ implements [Color].
func (c AdobeRGB) ToXYZ(il cie.Illuminant) cie.XYZ {
	return AdobeRGBSpace().toXYZ(c.Coord(), il)
}

// FromXYZ implements [Space].
func (c AdobeRGB) FromXYZ(x cie.XYZ) AdobeRGB {
	return c.FromCoord(AdobeRGBSpace().fromXYZ(x))
}

// Reference implements [Color]; it is [cie.D65].
func (c AdobeRGB) Reference() cie.Illuminant {
	return cie.D65
}

// Coord implements [Point].
func (c AdobeRGB) Coord() math64.Vector3 {
	return math64.Vec3(c.R, c.G, c.B)
}

// FromCoord implements [Point].
func (c AdobeRGB) FromCoord(v math64.Vector3) AdobeRGB {
	return AdobeRGB{v.X, v.Y, v.Z}
}

// DisplayP3 is a color in the Display P3 space used by wide gamut displays.
type DisplayP3 struct {
	R, G, B float64
}

func (c DisplayP3) String() string {
	return fmt.Sprintf("Display P3(%g, %g, %g)", c.R, c.G, c.B)
}

// ToXYZ implements [Color].
func (c DisplayP3) ToXYZ(il cie.Illuminant) cie.XYZ {
	return DisplayP3Space().toXYZ(c.Coord(), il)
}

// FromXYZ implements [Space].
func (c DisplayP3) FromXYZ(x cie.XYZ) DisplayP3 {
	return c.FromCoord(DisplayP3Space().fromXYZ(x))
}

// Reference implements [Color]; it is [cie.D65].
func (c DisplayP3) Reference() cie.Illuminant {
	return cie.D65
}

// Coord implements [Point].
func (c DisplayP3) Coord() math64.Vector3 {
	return math64.Vec3(c.R, c.G, c.B)
}

// FromCoord implements [Point].
func (c DisplayP3) FromCoord(v math64.Vector3) DisplayP3 {
	return DisplayP3{v.X, v.Y, v.Z}
}

// Rec2020 is a color in the ITU-R BT.2020 space used for ultra high definition video.
type Rec2020 struct {
	R, G, B float64
}

func (c Rec2020) String() string {
	return fmt.Sprintf("Rec. 2020(%g, %g, %g)", c.R, c.G, c.B)
}

// ToXYZ implements [Color].
func (c Rec2020) ToXYZ(il cie.Illuminant) cie.XYZ {
	return Rec2020Space().toXYZ(c.Coord(), il)
}

// FromXYZ implements [Space].
func (c Rec2020) FromXYZ(x cie.XYZ) Rec2020 {
	return c.FromCoord(Rec2020Space().fromXYZ(x))
}

// Reference implements [Color]; it is [cie.D65].
func (c Rec2020) Reference() cie.Illuminant {
	return cie.D65
}

// Coord implements [Point].
func (c Rec2020) Coord() math64.Vector3 {
	return math64.Vec3(c.R, c.G, c.B)
}

// FromCoord implements [Point].
func (c Rec2020) FromCoord(v math64.Vector3) Rec2020 {
	return Rec2020{v.X, v.Y, v.Z}
}

// ProPhotoRGB is a color in the ROMM RGB (ProPhoto) space, which has a
// very wide gamut including imaginary colors. Its reference is [cie.D50].
type ProPhotoRGB struct {
	R, G, B float64
}

func (c ProPhotoRGB) String() string {
	return fmt.Sprintf("ProPhoto RGB(%g, %g, %g)", c.R, c.G, c.B)
}

// ToXYZ implements [Color].
func (c ProPhotoRGB) ToXYZ(il cie.Illuminant) cie.XYZ {
	return ProPhotoRGBSpace().toXYZ(c.Coord(), il)
}

// FromXYZ implements [Space].
func (c ProPhotoRGB) FromXYZ(x cie.XYZ) ProPhotoRGB {
	return c.FromCoord(ProPhotoRGBSpace().fromXYZ(x))
}

// Reference implements [Color]; it is [cie.D50].
func (c ProPhotoRGB) Reference() cie.Illuminant {
	return cie.D50
}

// Coord implements [Point].
func (c ProPhotoRGB) Coord() math64.Vector3 {
	return math64.Vec3(c.R, c.G, c.B)
}

// FromCoord implements [Point].
func (c ProPhotoRGB) FromCoord(v math64.Vector3) ProPhotoRGB {
	return ProPhotoRGB{v.X, v.Y, v.Z}
}

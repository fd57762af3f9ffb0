// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"math"

	"cogentcore.org/tint/base/errors"
	"cogentcore.org/tint/cie"
	"cogentcore.org/tint/math64"
)

// ErrConfig is returned when a color space is defined with parameters
// that do not describe a valid space, such as collinear primaries.
var ErrConfig = errors.New("colors: invalid color space configuration")

// Chromaticity is a CIE 1931 xy chromaticity coordinate.
type Chromaticity struct {
	X, Y float64
}

// Transfer is the pair of transfer functions of an RGB space, mapping
// between encoded (gamma corrected) and linear light component values.
// Both must be defined over all reals, including negative values for
// out of gamut colors.
type Transfer struct {

	// Decode maps an encoded component value to linear light.
	Decode func(v float64) float64

	// Encode maps a linear light component value to its encoding.
	Encode func(v float64) float64
}

// LinearTransfer is the identity [Transfer].
var LinearTransfer = Transfer{
	Decode: func(v float64) float64 { return v },
	Encode: func(v float64) float64 { return v },
}

// RGBSpace is an RGB color space defined by the chromaticities of its
// three primaries, its reference white and its transfer functions. The
// RGB to XYZ matrix is derived from these and is exactly invertible.
// Use [NewRGBSpace] to make one.
type RGBSpace struct {

	// Name is the name of the space, such as "sRGB".
	Name string

	// Red, Green and Blue are the chromaticities of the primaries.
	Red, Green, Blue Chromaticity

	// White is the reference illuminant of the space.
	White cie.Illuminant

	// Transfer are the transfer functions of the space.
	Transfer Transfer

	// transform maps linear RGB to XYZ under White.
	transform math64.Transform
}

// NewRGBSpace returns a new [RGBSpace] with the given primaries, white point
// and transfer functions. It returns an error wrapping [ErrConfig] if the
// primaries do not span a space (wrapping [math64.ErrSingular] too in that
// case), or if a chromaticity or the white point is not valid.
func NewRGBSpace(name string, red, green, blue Chromaticity, white cie.Illuminant, tr Transfer) (*RGBSpace, error) {
	for _, p := range []Chromaticity{red, green, blue} {
		if !(p.Y > 0) || math.IsInf(p.X, 0) || math.IsNaN(p.X) || math.IsInf(p.Y, 0) {
			return nil, fmt.Errorf("%w: %s: invalid primary chromaticity %v", ErrConfig, name, p)
		}
	}
	wp := white.WhitePoint()
	if !(wp.X > 0 && wp.Y > 0 && wp.Z > 0) {
		return nil, fmt.Errorf("%w: %s: invalid white point %v", ErrConfig, name, wp)
	}
	if tr.Decode == nil || tr.Encode == nil {
		return nil, fmt.Errorf("%w: %s: missing transfer function", ErrConfig, name)
	}
	// columns are the primaries at unit luminance
	prim := math64.Mat3FromColumns(
		cie.ChromaticityToXYZ(red.X, red.Y, 1),
		cie.ChromaticityToXYZ(green.X, green.Y, 1),
		cie.ChromaticityToXYZ(blue.X, blue.Y, 1),
	)
	primInv, err := prim.Inverse()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: primaries are collinear: %w", ErrConfig, name, err)
	}
	// scale each primary so that RGB (1, 1, 1) is the white point
	scale := primInv.MulVector3(wp)
	tf, err := math64.NewTransform(prim.Mul(math64.Diagonal3(scale)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, name, err)
	}
	return &RGBSpace{Name: name, Red: red, Green: green, Blue: blue, White: white, Transfer: tr, transform: tf}, nil
}

// String returns the name of the space.
func (rs *RGBSpace) String() string {
	return rs.Name
}

// Matrix returns the matrix mapping linear RGB to XYZ.
func (rs *RGBSpace) Matrix() math64.Matrix3 {
	return rs.transform.Matrix()
}

// InverseMatrix returns the matrix mapping XYZ to linear RGB.
func (rs *RGBSpace) InverseMatrix() math64.Matrix3 {
	return rs.transform.InverseMatrix()
}

// Decode returns the given encoded RGB value in linear light.
func (rs *RGBSpace) Decode(v math64.Vector3) math64.Vector3 {
	f := rs.Transfer.Decode
	return math64.Vec3(f(v.X), f(v.Y), f(v.Z))
}

// Encode returns the given linear light RGB value encoded.
func (rs *RGBSpace) Encode(v math64.Vector3) math64.Vector3 {
	f := rs.Transfer.Encode
	return math64.Vec3(f(v.X), f(v.Y), f(v.Z))
}

// ToXYZ returns the given encoded RGB value in XYZ under [RGBSpace.White].
func (rs *RGBSpace) ToXYZ(rgb math64.Vector3) math64.Vector3 {
	return rs.transform.Apply(rs.Decode(rgb))
}

// FromXYZ returns the encoded RGB value of the given XYZ value, which
// must be under [RGBSpace.White].
func (rs *RGBSpace) FromXYZ(xyz math64.Vector3) math64.Vector3 {
	return rs.Encode(rs.transform.ApplyInverse(xyz))
}

// toXYZ converts an encoded value to XYZ adapted to il.
func (rs *RGBSpace) toXYZ(rgb math64.Vector3, il cie.Illuminant) cie.XYZ {
	return toXYZ(rs.ToXYZ(rgb), rs.White, il)
}

// fromXYZ converts an XYZ color under any illuminant to an encoded value.
func (rs *RGBSpace) fromXYZ(c cie.XYZ) math64.Vector3 {
	return rs.FromXYZ(fromXYZ(c, rs.White))
}

// signed applies f to the magnitude of v and restores the sign,
// so that transfer functions are symmetric about zero.
func signed(v float64, f func(a float64) float64) float64 {
	if v < 0 {
		return -f(-v)
	}
	return f(v)
}

const srgbToe = 0.04045

// SRGBTransfer is the IEC 61966-2-1 sRGB transfer function pair,
// extended to negative values by symmetry.
var SRGBTransfer = Transfer{
	Decode: func(v float64) float64 {
		return signed(v, func(a float64) float64 {
			if a <= srgbToe {
				return a / 12.92
			}
			return math.Pow((a+0.055)/1.055, 2.4)
		})
	},
	Encode: func(v float64) float64 {
		return signed(v, func(a float64) float64 {
			if a <= srgbToe/12.92 {
				return a * 12.92
			}
			return 1.055*math.Pow(a, 1/2.4) - 0.055
		})
	},
}

// GammaTransfer returns a pure power law [Transfer] with the given
// gamma, extended to negative values by symmetry.
func GammaTransfer(gamma float64) Transfer {
	return Transfer{
		Decode: func(v float64) float64 {
			return signed(v, func(a float64) float64 { return math.Pow(a, gamma) })
		},
		Encode: func(v float64) float64 {
			return signed(v, func(a float64) float64 { return math.Pow(a, 1/gamma) })
		},
	}
}

// Rec. 2020 transfer constants, at full precision for 12 bit systems.
const (
	rec2020Alpha = 1.09929682680944
	rec2020Beta  = 0.018053968510807
)

// Rec2020Transfer is the ITU-R BT.2020 transfer function pair.
var Rec2020Transfer = Transfer{
	Decode: func(v float64) float64 {
		return signed(v, func(a float64) float64 {
			if a < 4.5*rec2020Beta {
				return a / 4.5
			}
			return math.Pow((a+rec2020Alpha-1)/rec2020Alpha, 1/0.45)
		})
	},
	Encode: func(v float64) float64 {
		return signed(v, func(a float64) float64 {
			if a < rec2020Beta {
				return 4.5 * a
			}
			return rec2020Alpha*math.Pow(a, 0.45) - (rec2020Alpha - 1)
		})
	},
}

const proPhotoToe = 1.0 / 512

// ProPhotoTransfer is the ROMM RGB transfer function pair:
// gamma 1.8 with a linear segment near black.
var ProPhotoTransfer = Transfer{
	Decode: func(v float64) float64 {
		return signed(v, func(a float64) float64 {
			if a < 16*proPhotoToe {
				return a / 16
			}
			return math.Pow(a, 1.8)
		})
	},
	Encode: func(v float64) float64 {
		return signed(v, func(a float64) float64 {
			if a < proPhotoToe {
				return 16 * a
			}
			return math.Pow(a, 1/1.8)
		})
	},
}

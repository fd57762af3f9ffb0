// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"
	"math"

	"cogentcore.org/tint/math64"
)

// The range of correlated color temperatures, in kelvin, for which
// [PlanckianWhitePoint] is valid.
const (
	MinCCT = 1667.0
	MaxCCT = 25000.0
)

// PlanckianChromaticity returns the CIE 1931 xy chromaticity of the
// Planckian (black body) locus at the given temperature in kelvin, using
// the cubic spline approximation of Kim et al. (2002). It returns an error
// wrapping [ErrOutOfRange] for temperatures outside [MinCCT, MaxCCT] or
// that are not finite.
func PlanckianChromaticity(cct float64) (x, y float64, err error) {
	if math.IsNaN(cct) || cct < MinCCT || cct > MaxCCT {
		return 0, 0, fmt.Errorf("%w: correlated color temperature %gK not in [%g, %g]", ErrOutOfRange, cct, MinCCT, MaxCCT)
	}
	t := 1e3 / cct
	t2 := t * t
	t3 := t2 * t
	if cct <= 4000 {
		x = -0.2661239*t3 - 0.2343589*t2 + 0.8776956*t + 0.179910
	} else {
		x = -3.0258469*t3 + 2.1070379*t2 + 0.2226347*t + 0.240390
	}
	x2 := x * x
	x3 := x2 * x
	switch {
	case cct <= 2222:
		y = -1.1063814*x3 - 1.34811020*x2 + 2.18555832*x - 0.20219683
	case cct <= 4000:
		y = -0.9549476*x3 - 1.37418593*x2 + 2.09137015*x - 0.16748867
	default:
		y = 3.0817580*x3 - 5.87338670*x2 + 3.75112997*x - 0.37001483
	}
	return x, y, nil
}

// PlanckianWhitePoint returns the white point, normalized to Y = 1, of
// the Planckian locus at the given temperature in kelvin.
// See [PlanckianChromaticity] for the valid range.
func PlanckianWhitePoint(cct float64) (math64.Vector3, error) {
	x, y, err := PlanckianChromaticity(cct)
	if err != nil {
		return math64.Vector3{}, err
	}
	wp := ChromaticityToXYZ(x, y, 1)
	if wp.X <= 0 || wp.Z <= 0 {
		return math64.Vector3{}, fmt.Errorf("%w: non-positive white point %v at %gK", ErrOutOfRange, wp, cct)
	}
	return wp, nil
}

// ChromaticityToXYZ returns the tristimulus value with the given
// xy chromaticity and luminance Y.
func ChromaticityToXYZ(x, y, lum float64) math64.Vector3 {
	if y == 0 {
		return math64.Vector3{}
	}
	return math64.Vec3(x*lum/y, lum, (1-x-y)*lum/y)
}

// XYZToChromaticity returns the xy chromaticity of the given tristimulus
// value. Black (X+Y+Z = 0) returns 0, 0.
func XYZToChromaticity(v math64.Vector3) (x, y float64) {
	sum := v.X + v.Y + v.Z
	if sum == 0 {
		return 0, 0
	}
	return v.X / sum, v.Y / sum
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the CIE 1931 XYZ master color space, the standard
// illuminants and their white points, and chromatic adaptation between
// illuminants using the Bradford transform.
package cie

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/tint/base/errors"
	"cogentcore.org/tint/math64"
)

// ErrOutOfRange is returned when an input to a formula-based computation,
// such as the correlated color temperature of a custom illuminant, lies
// outside the domain in which the formula is valid.
var ErrOutOfRange = errors.New("cie: value out of range")

// Kind is the kind of an [Illuminant]: one of the CIE standard
// illuminants, or [KindCustom] for an illuminant derived from a
// correlated color temperature.
type Kind int32

const (
	// KindD50 is horizon light, the reference of ICC profile connection spaces.
	KindD50 Kind = iota

	// KindD55 is mid-morning / mid-afternoon daylight.
	KindD55

	// KindD65 is noon daylight, the reference of sRGB and most display spaces.
	KindD65

	// KindD75 is north sky daylight.
	KindD75

	// KindA is incandescent / tungsten light.
	KindA

	// KindB is obsolete direct sunlight at noon.
	KindB

	// KindC is obsolete average / north sky daylight.
	KindC

	// KindE is the equal energy illuminant.
	KindE

	// KindF2 is cool white fluorescent.
	KindF2

	// KindF7 is D65 simulator fluorescent.
	KindF7

	// KindF11 is narrow band white fluorescent.
	KindF11

	// KindCustom is an illuminant derived from a correlated color temperature.
	KindCustom
)

var kindNames = [...]string{"D50", "D55", "D65", "D75", "A", "B", "C", "E", "F2", "F7", "F11", "Custom"}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// whitePoints are the CIE 1931 2° white points of the standard
// illuminants, normalized so that Y = 1, indexed by [Kind].
var whitePoints = [...]math64.Vector3{
	KindD50: {X: 0.96422, Y: 1, Z: 0.82521},
	KindD55: {X: 0.95682, Y: 1, Z: 0.92149},
	KindD65: {X: 0.95047, Y: 1, Z: 1.08883},
	KindD75: {X: 0.94972, Y: 1, Z: 1.22638},
	KindA:   {X: 1.09850, Y: 1, Z: 0.35585},
	KindB:   {X: 0.99072, Y: 1, Z: 0.85223},
	KindC:   {X: 0.98074, Y: 1, Z: 1.18232},
	KindE:   {X: 1, Y: 1, Z: 1},
	KindF2:  {X: 0.99186, Y: 1, Z: 0.67393},
	KindF7:  {X: 0.95041, Y: 1, Z: 1.08747},
	KindF11: {X: 1.00962, Y: 1, Z: 0.64350},
}

// nominalCCTs are the nominal correlated color temperatures of the
// standard illuminants in kelvin, indexed by [Kind].
var nominalCCTs = [...]float64{
	KindD50: 5003,
	KindD55: 5503,
	KindD65: 6504,
	KindD75: 7504,
	KindA:   2856,
	KindB:   4874,
	KindC:   6774,
	KindE:   5454,
	KindF2:  4230,
	KindF7:  6500,
	KindF11: 4000,
}

// Illuminant describes the lighting environment a color is seen under,
// by way of the tristimulus white point it assigns to a perfect
// reflecting diffuser. It is either one of the standard illuminants
// (see [D50], [D65], etc.) or a custom illuminant returned by [Custom].
// The zero value is [D50]. Illuminants are comparable values.
type Illuminant struct {
	kind Kind
	cct  float64

	// white point, only set for custom illuminants
	wp math64.Vector3
}

// The CIE standard illuminants.
var (
	D50 = Illuminant{kind: KindD50}
	D55 = Illuminant{kind: KindD55}
	D65 = Illuminant{kind: KindD65}
	D75 = Illuminant{kind: KindD75}
	A   = Illuminant{kind: KindA}
	B   = Illuminant{kind: KindB}
	C   = Illuminant{kind: KindC}
	E   = Illuminant{kind: KindE}
	F2  = Illuminant{kind: KindF2}
	F7  = Illuminant{kind: KindF7}
	F11 = Illuminant{kind: KindF11}
)

// Standards returns all of the standard illuminants.
func Standards() []Illuminant {
	return []Illuminant{D50, D55, D65, D75, A, B, C, E, F2, F7, F11}
}

// Custom returns a custom illuminant with the given correlated color
// temperature in kelvin. The white point is the point on the Planckian
// locus at that temperature; see [PlanckianWhitePoint]. It returns an
// error wrapping [ErrOutOfRange] if the temperature is not within
// [MinCCT, MaxCCT].
func Custom(cct float64) (Illuminant, error) {
	wp, err := PlanckianWhitePoint(cct)
	if err != nil {
		return Illuminant{}, err
	}
	return Illuminant{kind: KindCustom, cct: cct, wp: wp}, nil
}

// Kind returns the kind of the illuminant.
func (il Illuminant) Kind() Kind {
	return il.kind
}

// IsCustom returns whether this is a custom illuminant made with [Custom].
func (il Illuminant) IsCustom() bool {
	return il.kind == KindCustom
}

// CCT returns the correlated color temperature of the illuminant in kelvin.
// For standard illuminants this is the nominal temperature.
func (il Illuminant) CCT() float64 {
	if il.kind == KindCustom {
		return il.cct
	}
	return nominalCCTs[il.kind]
}

// WhitePoint returns the white point of the illuminant as X, Y, Z with Y = 1.
// Standard illuminants are a table lookup; custom illuminants return the
// white point computed once by [Custom].
func (il Illuminant) WhitePoint() math64.Vector3 {
	if il.kind == KindCustom {
		return il.wp
	}
	return whitePoints[il.kind]
}

// String returns the name of the illuminant, such as "D65",
// or the temperature of a custom one, such as "5000K".
func (il Illuminant) String() string {
	if il.kind == KindCustom {
		return strconv.FormatFloat(il.cct, 'g', -1, 64) + "K"
	}
	return il.kind.String()
}

// MarshalText implements [encoding.TextMarshaler].
func (il Illuminant) MarshalText() ([]byte, error) {
	return []byte(il.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. It accepts the
// name of a standard illuminant (case insensitive) or a correlated color
// temperature with an optional K suffix, such as "5000K".
func (il *Illuminant) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	for k := KindD50; k < KindCustom; k++ {
		if strings.EqualFold(s, k.String()) {
			*il = Illuminant{kind: k}
			return nil
		}
	}
	num := strings.TrimSuffix(strings.TrimSuffix(s, "K"), "k")
	cct, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return fmt.Errorf("cie: unknown illuminant %q", s)
	}
	c, err := Custom(cct)
	if err != nil {
		return err
	}
	*il = c
	return nil
}

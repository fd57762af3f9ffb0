// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color spaces built on the [cie.XYZ] master space,
// generic conversion between any two of them, and geometric operations
// (mixing, distance, gradients, and gamut mapping) on spaces that embed
// in three dimensions.
package colors

import (
	"cogentcore.org/tint/cie"
	"cogentcore.org/tint/math64"
)

// Color is the capability every color space implements: expressing a value
// in the master [cie.XYZ] space. All conversion between spaces is routed
// through XYZ, so no space needs to know about any other.
type Color interface {

	// ToXYZ returns the color in the XYZ space, adapted to the given illuminant.
	ToXYZ(il cie.Illuminant) cie.XYZ

	// Reference returns the illuminant the color space is defined under.
	Reference() cie.Illuminant
}

// Space is a [Color] of type T that can also be constructed from the
// master space. FromXYZ adapts its argument to the reference illuminant
// of the space as needed, and must not depend on the value of the receiver
// other than its type (it is called on the zero value by [Convert]).
// The one exception is [cie.XYZ], whose Reference is its own illuminant.
type Space[T any] interface {
	Color

	// FromXYZ returns the given XYZ color expressed in this space.
	FromXYZ(c cie.XYZ) T
}

// Convert returns the given color expressed in the color space T.
// The color is converted to XYZ under the reference illuminant of T, so
// that at most one chromatic adaptation takes place, and then converted
// into T. A color that is already of type T is returned unchanged.
//
//	lab := colors.Convert[colors.Lab](colors.SRGB{R: 1, G: 0.5, B: 0})
func Convert[T Space[T]](c Color) T {
	if v, ok := c.(T); ok {
		return v
	}
	var zero T
	return zero.FromXYZ(c.ToXYZ(zero.Reference()))
}

// ToXYZ returns the given color in the XYZ space under the given
// illuminant. It is a convenience for c.ToXYZ(il) that reads well next
// to [Convert], which uses [cie.D50] for a [cie.XYZ] destination.
func ToXYZ(c Color, il cie.Illuminant) cie.XYZ {
	return c.ToXYZ(il)
}

// toXYZ returns the XYZ color with components v under the reference
// illuminant ref, adapted to the requested illuminant il.
func toXYZ(v math64.Vector3, ref, il cie.Illuminant) cie.XYZ {
	return cie.XYZFromVector3(v, ref).Adapt(il)
}

// fromXYZ returns the components of c adapted to the reference illuminant ref.
func fromXYZ(c cie.XYZ, ref cie.Illuminant) math64.Vector3 {
	return c.Adapt(ref).Vector3()
}

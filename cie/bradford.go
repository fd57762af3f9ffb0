// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"
	"sync"

	"cogentcore.org/tint/base/errors"
	"cogentcore.org/tint/math64"
)

// BradfordMatrix is the Bradford transform from XYZ into its
// sharpened cone response (LMS) domain. Only this forward matrix
// is a reference constant; its inverse is always computed.
var BradfordMatrix = math64.Matrix3{
	0.8951, 0.2664, -0.1614,
	-0.7502, 1.7135, 0.0367,
	0.0389, -0.0685, 1.0296,
}

// bradford is the Bradford transform paired with its exact inverse.
var bradford = sync.OnceValue(func() math64.Transform {
	return errors.Must1(math64.NewTransform(BradfordMatrix))
})

// Bradford returns the Bradford transform between XYZ and the cone
// response domain, together with its exact inverse.
func Bradford() math64.Transform {
	return bradford()
}

// coneWhite returns the white point of the given illuminant in the
// Bradford cone response domain. A white point with a non-positive
// component means the illuminant table is broken, so it panics.
func coneWhite(il Illuminant) math64.Vector3 {
	wp := il.WhitePoint()
	if !wp.IsFinite() || wp.X <= 0 || wp.Y <= 0 || wp.Z <= 0 {
		panic(fmt.Sprintf("cie: illuminant %v has invalid white point %v", il, wp))
	}
	lms := Bradford().Apply(wp)
	if lms.X <= 0 || lms.Y <= 0 || lms.Z <= 0 {
		panic(fmt.Sprintf("cie: illuminant %v has invalid cone response %v", il, lms))
	}
	return lms
}

// Adapt returns the tristimulus value v, seen under illuminant from,
// as it would appear under illuminant to, using the Bradford chromatic
// adaptation transform with full adaptation:
//  1. v and both white points are mapped into the cone response domain.
//  2. each cone response of v is scaled by the ratio of the target
//     white to the source white.
//  3. the result is mapped back to XYZ with the inverse Bradford matrix.
//
// If from and to are the same illuminant, v is returned unchanged.
func Adapt(v math64.Vector3, from, to Illuminant) math64.Vector3 {
	if from == to {
		return v
	}
	br := Bradford()
	scale := coneWhite(to).Div(coneWhite(from))
	return br.ApplyInverse(br.Apply(v).Mul(scale))
}

// AdaptationMatrix returns the single matrix that performs [Adapt] from
// one illuminant to another, for use when many values are adapted
// between the same pair. It is the identity if from == to.
func AdaptationMatrix(from, to Illuminant) math64.Matrix3 {
	if from == to {
		return math64.Identity3()
	}
	br := Bradford()
	scale := coneWhite(to).Div(coneWhite(from))
	return br.InverseMatrix().Mul(math64.Diagonal3(scale).Mul(br.Matrix()))
}

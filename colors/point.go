// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"iter"

	"cogentcore.org/tint/math64"
)

// Point is a [Space] whose values embed in three dimensional space,
// so that they can be mixed and measured geometrically. Every space
// in this package is a Point, as is [cie.XYZ].
type Point[T any] interface {
	Space[T]

	// Coord returns the coordinates of the color.
	Coord() math64.Vector3

	// FromCoord returns a new color of the same space, and any other
	// state of the receiver such as its illuminant, at the given coordinates.
	FromCoord(v math64.Vector3) T
}

// aligner is implemented by spaces whose values carry state beyond their
// coordinates, such as [cie.XYZ] and its illuminant. Align returns o
// expressed with the same state as the receiver.
type aligner[T any] interface {
	Align(o T) T
}

// align returns b aligned to a if the space needs it.
func align[T Point[T]](a, b T) T {
	if al, ok := any(a).(aligner[T]); ok {
		return al.Align(b)
	}
	return b
}

// Mix returns the color at the fraction t between a (t = 0) and b (t = 1),
// interpolating componentwise in the coordinates of the space of a and b.
// For [cie.XYZ], b is first adapted to the illuminant of a. Mixing two
// identical colors returns that color for any t.
func Mix[T Point[T]](a, b T, t float64) T {
	b = align(a, b)
	ca, cb := a.Coord(), b.Coord()
	if ca == cb || t == 0 {
		return a
	}
	if t == 1 {
		return b
	}
	return a.FromCoord(ca.Lerp(cb, t))
}

// Distance returns the Euclidean distance between the coordinates of the
// two colors in their space. It is only a perceptual difference to the
// extent that the space is perceptually uniform; see [DeltaE] for that.
func Distance[T Point[T]](a, b T) float64 {
	return a.Coord().DistanceTo(align(a, b).Coord())
}

// Gradient returns a sequence of n colors evenly spaced in the space of
// a and b, starting with a and ending with b exactly. If n is 1 the
// sequence is just a, and if n is less than 1 it is empty. The sequence
// can be iterated any number of times.
func Gradient[T Point[T]](a, b T, n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range n {
			var c T
			switch i {
			case 0:
				c = a
			case n - 1:
				c = b
			default:
				c = Mix(a, b, float64(i)/float64(n-1))
			}
			if !yield(c) {
				return
			}
		}
	}
}

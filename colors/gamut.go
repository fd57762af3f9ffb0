// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"cogentcore.org/tint/math64"
)

// Gamut is a set of colors of type T, such as the colors that a device
// can display. Bounds returns a box in the coordinates of T that contains
// every member of the gamut; it is the domain searched by [NearestInGamut].
type Gamut[T any] interface {

	// Contains returns whether the given color is in the gamut.
	Contains(c T) bool

	// Bounds returns the minimum and maximum coordinates of the gamut.
	Bounds() (min, max math64.Vector3)
}

// Projector is a [Gamut] that can compute the nearest member
// to any color directly, without a search.
type Projector[T any] interface {
	Gamut[T]

	// Project returns the member of the gamut nearest to c.
	Project(c T) T
}

// Box is the [Gamut] of colors whose coordinates are all within
// the given minimum and maximum, inclusive.
type Box[T Point[T]] struct {
	Min, Max math64.Vector3
}

// UnitCube returns the [Box] with all coordinates 0-1, which is
// the gamut of the RGB spaces.
func UnitCube[T Point[T]]() Box[T] {
	return Box[T]{Max: math64.Vector3Scalar(1)}
}

// Contains implements [Gamut].
func (b Box[T]) Contains(c T) bool {
	v := c.Coord()
	return v.X >= b.Min.X && v.X <= b.Max.X &&
		v.Y >= b.Min.Y && v.Y <= b.Max.Y &&
		v.Z >= b.Min.Z && v.Z <= b.Max.Z
}

// Bounds implements [Gamut].
func (b Box[T]) Bounds() (min, max math64.Vector3) {
	return b.Min, b.Max
}

// Project implements [Projector] by clamping each coordinate.
func (b Box[T]) Project(c T) T {
	return c.FromCoord(c.Coord().Clamp(b.Min, b.Max))
}

// FuncGamut is a [Gamut] defined by a membership function,
// within the box from Min to Max.
type FuncGamut[T Point[T]] struct {
	Min, Max math64.Vector3
	Func     func(c T) bool
}

// Contains implements [Gamut].
func (g FuncGamut[T]) Contains(c T) bool {
	return Box[T]{g.Min, g.Max}.Contains(c) && g.Func(c)
}

// Bounds implements [Gamut].
func (g FuncGamut[T]) Bounds() (min, max math64.Vector3) {
	return g.Min, g.Max
}

// GamutOf returns the gamut of colors of type T whose conversion to the
// space S is within the given box of S, such as the colors in [Lab] that
// are displayable in [SRGB]. The bounds are the region of T to search.
//
//	g := colors.GamutOf[colors.Lab](colors.UnitCube[colors.SRGB](), colors.LabBounds)
func GamutOf[T Point[T], S Point[S]](box Box[S], bounds Box[T]) FuncGamut[T] {
	return FuncGamut[T]{
		Min: bounds.Min,
		Max: bounds.Max,
		Func: func(c T) bool {
			return box.Contains(Convert[S](c))
		},
	}
}

// Bounding boxes that contain all real colors in the given spaces.
var (
	LabBounds   = Box[Lab]{Min: math64.Vec3(0, -128, -128), Max: math64.Vec3(100, 128, 128)}
	LuvBounds   = Box[Luv]{Min: math64.Vec3(0, -200, -200), Max: math64.Vec3(100, 200, 200)}
	OKLabBounds = Box[OKLab]{Min: math64.Vec3(0, -0.5, -0.5), Max: math64.Vec3(1, 0.5, 0.5)}
)

// Parameters of the search done by [NearestInGamut]: the number of grid
// steps per axis, the number of steps per axis and the number of passes
// of the refinement, and the number of bisections to find the boundary.
const (
	gamutGridSteps   = 32
	gamutRefineSteps = 4
	gamutRefinements = 32
	gamutBisections  = 32
)

// NearestInGamut returns the member of the gamut nearest to c by [Distance]
// in the space of c, and whether one was found. A color in the gamut is
// returned unchanged. A [Projector] gamut is projected directly.
//
// For other gamuts, a grid over the bounds is searched for the nearest
// member. It is then refined by searching shrinking neighborhoods of the
// best candidate, moving each member found toward c up to the boundary
// of the gamut. The result is exact only to the resolution of the search.
// Equally distant candidates are decided by the lexicographic order of
// their coordinates, so the result is deterministic.
func NearestInGamut[T Point[T], G Gamut[T]](c T, g G) (T, bool) {
	if g.Contains(c) {
		return c, true
	}
	if p, ok := any(g).(Projector[T]); ok {
		return p.Project(c), true
	}
	lo, hi := g.Bounds()
	target := c.Coord()
	contains := func(v math64.Vector3) bool {
		if v.X < lo.X || v.X > hi.X || v.Y < lo.Y || v.Y > hi.Y || v.Z < lo.Z || v.Z > hi.Z {
			return false
		}
		return g.Contains(c.FromCoord(v))
	}
	// better returns whether v is nearer than w at distance wd, or as near and before it
	better := func(v, w math64.Vector3, wd float64) bool {
		d := v.DistanceToSquared(target)
		return wd < 0 || d < wd || (d == wd && v.Compare(w) < 0)
	}
	// toBoundary moves the member v toward the target while it stays in the gamut
	toBoundary := func(v math64.Vector3) math64.Vector3 {
		in, out := 0.0, 1.0
		for range gamutBisections {
			m := (in + out) / 2
			if contains(v.Lerp(target, m)) {
				in = m
			} else {
				out = m
			}
		}
		if in == 0 {
			return v
		}
		return v.Lerp(target, in)
	}

	var best math64.Vector3
	bestDist := -1.0
	span := hi.Sub(lo)
	for i := range gamutGridSteps + 1 {
		for j := range gamutGridSteps + 1 {
			for k := range gamutGridSteps + 1 {
				v := lo.Add(span.Mul(math64.Vec3(float64(i), float64(j), float64(k)).DivScalar(gamutGridSteps)))
				if better(v, best, bestDist) && contains(v) {
					best, bestDist = v, v.DistanceToSquared(target)
				}
			}
		}
	}
	if bestDist < 0 {
		return c, false
	}
	if v := toBoundary(best); v.DistanceToSquared(target) < bestDist {
		best, bestDist = v, v.DistanceToSquared(target)
	}

	// a pass only moves to a strictly nearer candidate
	cell := span.DivScalar(gamutGridSteps)
	for range gamutRefinements {
		var next math64.Vector3
		nextDist := -1.0
		for i := range gamutRefineSteps + 1 {
			for j := range gamutRefineSteps + 1 {
				for k := range gamutRefineSteps + 1 {
					off := math64.Vec3(refineOffset(i), refineOffset(j), refineOffset(k))
					v := best.Add(cell.Mul(off))
					if !contains(v) {
						continue
					}
					v = toBoundary(v)
					if d := v.DistanceToSquared(target); d < bestDist && better(v, next, nextDist) {
						next, nextDist = v, d
					}
				}
			}
		}
		if nextDist >= 0 {
			best, bestDist = next, nextDist
		}
		cell = cell.MulScalar(0.5)
	}
	return c.FromCoord(best), true
}

// refineOffset returns the offset of refinement step i, from -1 to 1,
// which is exactly 0 in the middle.
func refineOffset(i int) float64 {
	return float64(2*i-gamutRefineSteps) / gamutRefineSteps
}

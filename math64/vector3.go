// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math64 provides the float64 vector and matrix types that
// back color coordinates and color space transforms.
package math64

import (
	"fmt"
	"math"
)

// Vector3 is a 3D vector/point with X, Y and Z float64 components.
// It is the geometric backing for any color that embeds in 3-space:
// X, Y and Z are the first, second and third components of the color
// (for example L*, a* and b* for CIELAB).
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Vector3Scalar returns a new [Vector3] with all components set to the given scalar value.
func Vector3Scalar(s float64) Vector3 {
	return Vector3{X: s, Y: s, Z: s}
}

// Vector3FromArray returns a new [Vector3] from the given array.
func Vector3FromArray(a [3]float64) Vector3 {
	return Vector3{X: a[0], Y: a[1], Z: a[2]}
}

// String implements the [fmt.Stringer] interface.
func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Array returns the components of the vector as an array.
func (v Vector3) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// Dim returns the component at the given index (0, 1 or 2).
func (v Vector3) Dim(dim int) float64 {
	switch dim {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic("math64: dim is out of range")
	}
}

///////////////////////////////////////////////////////////////////////
//  Basic math operations

// Add adds other vector to this one and returns result in a new vector.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector3) MulScalar(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
func (v Vector3) DivScalar(s float64) Vector3 {
	return Vector3{v.X / s, v.Y / s, v.Z / s}
}

// Mul multiplies each component of this vector by the corresponding one
// from other vector and returns resulting vector.
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vector3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Div divides each component of this vector by the corresponding one
// from other vector and returns resulting vector.
func (v Vector3) Div(other Vector3) Vector3 {
	return Vector3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// Min returns the componentwise minimum of this vector and other.
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{math.Min(v.X, other.X), math.Min(v.Y, other.Y), math.Min(v.Z, other.Z)}
}

// Max returns the componentwise maximum of this vector and other.
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{math.Max(v.X, other.X), math.Max(v.Y, other.Y), math.Max(v.Z, other.Z)}
}

// Clamp sets this vector's components to be no less than the corresponding
// components of min and not greater than the corresponding component of max.
// Assumes min < max; if this assumption isn't true, it will not operate correctly.
func (v Vector3) Clamp(min, max Vector3) Vector3 {
	return v.Max(min).Min(max)
}

// Dot returns the dot product of this vector with the given other vector.
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors.
func (v Vector3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the length of this vector.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// DistanceTo returns the distance of this point to other.
func (v Vector3) DistanceTo(other Vector3) float64 {
	return math.Sqrt(v.DistanceToSquared(other))
}

// DistanceToSquared returns the distance squared of this point to other.
func (v Vector3) DistanceToSquared(other Vector3) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return dx*dx + dy*dy + dz*dz
}

// Lerp returns vector with each components as the linear interpolated value of
// alpha between itself and the corresponding other component.
// Lerp of equal vectors returns the vector unchanged for any alpha.
func (v Vector3) Lerp(other Vector3, alpha float64) Vector3 {
	return Vector3{v.X + (other.X-v.X)*alpha, v.Y + (other.Y-v.Y)*alpha, v.Z + (other.Z-v.Z)*alpha}
}

// Compare returns -1, 0 or +1 comparing this vector to other in
// componentwise lexicographic order (X first, then Y, then Z).
func (v Vector3) Compare(other Vector3) int {
	switch {
	case v.X < other.X:
		return -1
	case v.X > other.X:
		return 1
	case v.Y < other.Y:
		return -1
	case v.Y > other.Y:
		return 1
	case v.Z < other.Z:
		return -1
	case v.Z > other.Z:
		return 1
	}
	return 0
}

// IsFinite returns whether all components are neither infinite nor NaN.
func (v Vector3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// IsEqualTol returns whether each component of this vector is within
// tol of the corresponding component of other.
func (v Vector3) IsEqualTol(other Vector3, tol float64) bool {
	return math.Abs(v.X-other.X) <= tol &&
		math.Abs(v.Y-other.Y) <= tol &&
		math.Abs(v.Z-other.Z) <= tol
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"math"
	"sync"

	"cogentcore.org/tint/base/errors"
	"cogentcore.org/tint/cie"
	"cogentcore.org/tint/math64"
)

// OKLabM1 maps XYZ under [cie.D65] to the approximate cone responses of
// OKLab, and OKLabM2 maps the cube roots of those responses to L, a, b.
// Only these forward matrices are reference constants.
var (
	OKLabM1 = math64.Matrix3{
		0.8189330101, 0.3618667424, -0.1288597137,
		0.0329845436, 0.9293118715, 0.0361456387,
		0.0482003018, 0.2643662691, 0.6338517070,
	}
	OKLabM2 = math64.Matrix3{
		0.2104542553, 0.7936177850, -0.0040720468,
		1.9779984951, -2.4285922050, 0.4505937099,
		0.0259040371, 0.7827717662, -0.8086757660,
	}
)

var oklabTransforms = sync.OnceValues(func() (m1, m2 math64.Transform) {
	return errors.Must1(math64.NewTransform(OKLabM1)), errors.Must1(math64.NewTransform(OKLabM2))
})

// OKLab is a color in Björn Ottosson's OKLab perceptual space, relative
// to [cie.D65]. L is the lightness, 0-1, and A and B are the green-red
// and blue-yellow opponent axes.
type OKLab struct {
	L, A, B float64
}

func (c OKLab) String() string {
	return fmt.Sprintf("OKLab(%g, %g, %g)", c.L, c.A, c.B)
}

// ToXYZ implements [Color].
func (c OKLab) ToXYZ(il cie.Illuminant) cie.XYZ {
	m1, m2 := oklabTransforms()
	lms := m2.ApplyInverse(c.Coord())
	lms = lms.Mul(lms).Mul(lms)
	return toXYZ(m1.ApplyInverse(lms), cie.D65, il)
}

// FromXYZ implements [Space].
func (c OKLab) FromXYZ(x cie.XYZ) OKLab {
	m1, m2 := oklabTransforms()
	lms := m1.Apply(fromXYZ(x, cie.D65))
	lms = math64.Vec3(math.Cbrt(lms.X), math.Cbrt(lms.Y), math.Cbrt(lms.Z))
	return c.FromCoord(m2.Apply(lms))
}

// Reference implements [Color]; it is [cie.D65].
func (c OKLab) Reference() cie.Illuminant {
	return cie.D65
}

// Coord implements [Point].
func (c OKLab) Coord() math64.Vector3 {
	return math64.Vec3(c.L, c.A, c.B)
}

// FromCoord implements [Point].
func (c OKLab) FromCoord(v math64.Vector3) OKLab {
	return OKLab{v.X, v.Y, v.Z}
}

// LCH returns the color in cylindrical form.
func (c OKLab) LCH() OKLCH {
	return OKLCH{L: c.L, C: math.Hypot(c.A, c.B), H: hueDegrees(c.A, c.B)}
}

// OKLCH is the cylindrical form of [OKLab]: lightness, chroma, and hue
// in degrees. Its reference is [cie.D65].
type OKLCH struct {
	L, C, H float64
}

func (c OKLCH) String() string {
	return fmt.Sprintf("OKLCH(%g, %g, %g)", c.L, c.C, c.H)
}

// OKLab returns the color in rectangular form.
func (c OKLCH) OKLab() OKLab {
	a, b := polarToRect(c.C, c.H)
	return OKLab{L: c.L, A: a, B: b}
}

// ToXYZ implements [Color].
func (c OKLCH) ToXYZ(il cie.Illuminant) cie.XYZ {
	return c.OKLab().ToXYZ(il)
}

// FromXYZ implements [Space].
func (c OKLCH) FromXYZ(x cie.XYZ) OKLCH {
	return OKLab{}.FromXYZ(x).LCH()
}

// Reference implements [Color]; it is [cie.D65].
func (c OKLCH) Reference() cie.Illuminant {
	return cie.D65
}

// Coord implements [Point].
func (c OKLCH) Coord() math64.Vector3 {
	return math64.Vec3(c.L, c.C, c.H)
}

// FromCoord implements [Point].
func (c OKLCH) FromCoord(v math64.Vector3) OKLCH {
	return OKLCH{v.X, v.Y, v.Z}
}

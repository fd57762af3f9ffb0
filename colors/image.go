// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image"
	"image/color"

	"cogentcore.org/tint/cie"
	"cogentcore.org/tint/math64"
	"github.com/anthonynsimon/bild/adjust"
)

// FromColor returns the given standard [color.Color] as an [SRGB] color,
// undoing the premultiplication by alpha. A fully transparent color is black.
func FromColor(c color.Color) SRGB {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return SRGB{}
	}
	fa := float64(a)
	return SRGB{float64(r) / fa, float64(g) / fa, float64(b) / fa}
}

// SRGBModel is the standard [color.Model] that converts colors to [SRGB].
var SRGBModel = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if s, ok := c.(SRGB); ok {
		return s
	}
	return FromColor(c)
}

// clamp01 returns v limited to 0-1.
func clamp01(v float64) float64 {
	return max(0, min(1, v))
}

// RGBA implements the [color.Color] interface. The color is fully opaque,
// and components outside 0-1 are clamped.
func (c SRGB) RGBA() (r, g, b, a uint32) {
	r = uint32(clamp01(c.R)*65535.0 + 0.5)
	g = uint32(clamp01(c.G)*65535.0 + 0.5)
	b = uint32(clamp01(c.B)*65535.0 + 0.5)
	a = 0xffff
	return
}

// AsRGBA returns a standard [color.RGBA] type, clamped to the gamut.
func (c SRGB) AsRGBA() color.RGBA {
	return color.RGBA{uint8(clamp01(c.R)*255.0 + 0.5), uint8(clamp01(c.G)*255.0 + 0.5), uint8(clamp01(c.B)*255.0 + 0.5), 255}
}

// InGamut returns whether all components are within 0-1.
func (c SRGB) InGamut() bool {
	return UnitCube[SRGB]().Contains(c)
}

// AdaptImage returns a copy of the given sRGB image as it would appear
// if the scene had been lit by the illuminant to instead of from, using
// the Bradford transform. Alpha is preserved and out of gamut results
// are clamped.
func AdaptImage(img image.Image, from, to cie.Illuminant) *image.RGBA {
	m := cie.AdaptationMatrix(from, to)
	sp := SRGBSpace()
	return adjust.Apply(img, func(c color.RGBA) color.RGBA {
		if c.A == 0 || from == to {
			return c
		}
		fa := float64(c.A) / 255
		v := math64.Vec3(float64(c.R), float64(c.G), float64(c.B)).DivScalar(255 * fa)
		v = sp.FromXYZ(m.MulVector3(sp.ToXYZ(v)))
		v = v.Clamp(math64.Vector3{}, math64.Vector3Scalar(1)).MulScalar(255 * fa)
		return color.RGBA{uint8(v.X + 0.5), uint8(v.Y + 0.5), uint8(v.Z + 0.5), c.A}
	})
}

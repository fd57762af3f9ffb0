// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/tint/base/tolassert"
	"cogentcore.org/tint/cie"
	"github.com/stretchr/testify/assert"
)

func TestFromColor(t *testing.T) {
	c := FromColor(color.RGBA{255, 128, 0, 255})
	tolassert.Equal(t, 1, c.R)
	tolassert.Equal(t, 128.0/255, c.G)
	tolassert.Equal(t, 0, c.B)
	assert.Equal(t, color.RGBA{255, 128, 0, 255}, c.AsRGBA())

	// premultiplied
	c = FromColor(color.RGBA{64, 64, 64, 128})
	tolassert.Equal(t, 0.5, c.R)

	assert.Equal(t, SRGB{}, FromColor(color.Transparent))
	assert.Equal(t, SRGB{1, 1, 1}, SRGBModel.Convert(color.White))
	assert.Equal(t, SRGB{0.1, 0.2, 0.3}, SRGBModel.Convert(SRGB{0.1, 0.2, 0.3}))

	r, g, b, a := SRGB{1.5, -0.5, 0.5}.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0x8000), b)
	assert.Equal(t, uint32(0xffff), a)
	assert.False(t, SRGB{1.5, -0.5, 0.5}.InGamut())
	assert.True(t, SRGB{1, 0, 0.5}.InGamut())
}

func TestAdaptImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.SetRGBA(0, 0, color.RGBA{255, 255, 255, 255})
	img.SetRGBA(1, 0, color.RGBA{40, 80, 120, 128})
	img.SetRGBA(2, 0, color.RGBA{})

	same := AdaptImage(img, cie.D65, cie.D65)
	assert.Equal(t, img.Pix, same.Pix)

	warm := AdaptImage(img, cie.D65, cie.A)
	white := warm.RGBAAt(0, 0)
	assert.Equal(t, uint8(255), white.R)
	assert.Less(t, white.B, white.G)
	assert.Equal(t, uint8(255), white.A)

	half := warm.RGBAAt(1, 0)
	assert.Equal(t, uint8(128), half.A)
	assert.Greater(t, half.R, uint8(40))
	assert.Less(t, half.B, uint8(120))

	assert.Equal(t, color.RGBA{}, warm.RGBAAt(2, 0))

	// and back again, within rounding for colors that stay in gamut
	gray := image.NewRGBA(image.Rect(0, 0, 1, 1))
	gray.SetRGBA(0, 0, color.RGBA{100, 110, 120, 255})
	back := AdaptImage(AdaptImage(gray, cie.D65, cie.D50), cie.D50, cie.D65).RGBAAt(0, 0)
	assert.InDelta(t, 100, int(back.R), 1)
	assert.InDelta(t, 110, int(back.G), 1)
	assert.InDelta(t, 120, int(back.B), 1)
}

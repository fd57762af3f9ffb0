// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"math"
)

// DeltaE returns the perceptual difference between two colors in any
// spaces, as the CIEDE2000 difference of their [Lab] values. A difference
// of about 1 is the smallest that is noticeable.
func DeltaE(a, b Color) float64 {
	return DeltaE2000(Convert[Lab](a), Convert[Lab](b))
}

// DeltaE76 returns the CIE 1976 color difference, the Euclidean
// distance in [Lab].
func DeltaE76(a, b Lab) float64 {
	return Distance(a, b)
}

// DeltaE94 returns the CIE 1994 color difference, with the weights
// for graphic arts. It is not symmetric: a is the reference color.
func DeltaE94(a, b Lab) float64 {
	const (
		k1 = 0.045
		k2 = 0.015
	)
	c1 := a.Chroma()
	c2 := b.Chroma()
	dl := a.L - b.L
	dc := c1 - c2
	da := a.A - b.A
	db := a.B - b.B
	dh2 := math.Max(da*da+db*db-dc*dc, 0)
	sc := 1 + k1*c1
	sh := 1 + k2*c1
	return math.Sqrt(dl*dl + (dc/sc)*(dc/sc) + dh2/(sh*sh))
}

// DeltaE2000 returns the CIEDE2000 color difference, following
// Sharma, Wu and Dalal (2005), with unit weighting factors.
func DeltaE2000(a, b Lab) float64 {
	const pow257 = 6103515625 // 25^7
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	cbar := (a.Chroma() + b.Chroma()) / 2
	cbar7 := math.Pow(cbar, 7)
	g := 0.5 * (1 - math.Sqrt(cbar7/(cbar7+pow257)))

	a1 := (1 + g) * a.A
	a2 := (1 + g) * b.A
	c1 := math.Hypot(a1, a.B)
	c2 := math.Hypot(a2, b.B)
	h1 := 0.0
	if c1 != 0 {
		h1 = hueDegrees(a1, a.B)
	}
	h2 := 0.0
	if c2 != 0 {
		h2 = hueDegrees(a2, b.B)
	}

	dL := b.L - a.L
	dC := c2 - c1
	dh := 0.0
	if c1*c2 != 0 {
		dh = h2 - h1
		switch {
		case dh > 180:
			dh -= 360
		case dh < -180:
			dh += 360
		}
	}
	dH := 2 * math.Sqrt(c1*c2) * math.Sin(rad(dh/2))

	lbar := (a.L + b.L) / 2
	cbarp := (c1 + c2) / 2
	hbar := h1 + h2
	if c1*c2 != 0 {
		switch {
		case math.Abs(h1-h2) <= 180:
			hbar /= 2
		case hbar < 360:
			hbar = (hbar + 360) / 2
		default:
			hbar = (hbar - 360) / 2
		}
	}

	t := 1 - 0.17*math.Cos(rad(hbar-30)) +
		0.24*math.Cos(rad(2*hbar)) +
		0.32*math.Cos(rad(3*hbar+6)) -
		0.20*math.Cos(rad(4*hbar-63))
	dTheta := 30 * math.Exp(-((hbar-275)/25)*((hbar-275)/25))
	cbarp7 := math.Pow(cbarp, 7)
	rc := 2 * math.Sqrt(cbarp7/(cbarp7+pow257))
	l50 := (lbar - 50) * (lbar - 50)
	sl := 1 + 0.015*l50/math.Sqrt(20+l50)
	sc := 1 + 0.045*cbarp
	sh := 1 + 0.015*cbarp*t
	rt := -math.Sin(rad(2*dTheta)) * rc

	tl := dL / sl
	tc := dC / sc
	th := dH / sh
	return math.Sqrt(tl*tl + tc*tc + th*th + rt*tc*th)
}

// DeltaEOK returns the Euclidean distance in [OKLab], a simple
// perceptual difference where 0.02 is about noticeable.
func DeltaEOK(a, b OKLab) float64 {
	return Distance(a, b)
}

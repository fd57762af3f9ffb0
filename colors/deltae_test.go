// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"testing"

	"cogentcore.org/tint/base/tolassert"
	"cogentcore.org/tint/cie"
	"github.com/stretchr/testify/assert"
)

// sharmaPairs are test data from Sharma, Wu and Dalal (2005),
// "The CIEDE2000 Color-Difference Formula: Implementation Notes,
// Supplementary Test Data, and Mathematical Observations".
var sharmaPairs = []struct {
	a, b Lab
	de   float64
}{
	{Lab{50, 2.6772, -79.7751}, Lab{50, 0, -82.7485}, 2.0425},
	{Lab{50, 3.1571, -77.2803}, Lab{50, 0, -82.7485}, 2.8615},
	{Lab{50, 2.8361, -74.0200}, Lab{50, 0, -82.7485}, 3.4412},
	{Lab{50, -1.3802, -84.2814}, Lab{50, 0, -82.7485}, 1.0000},
	{Lab{50, -1.1848, -84.8006}, Lab{50, 0, -82.7485}, 1.0000},
	{Lab{50, -0.9009, -85.5211}, Lab{50, 0, -82.7485}, 1.0000},
	{Lab{50, 0, 0}, Lab{50, -1, 2}, 2.3669},
	{Lab{50, -1, 2}, Lab{50, 0, 0}, 2.3669},
	{Lab{50, 2.4900, -0.0010}, Lab{50, -2.4900, 0.0009}, 7.1792},
	{Lab{50, 2.4900, -0.0010}, Lab{50, -2.4900, 0.0010}, 7.1792},
	{Lab{50, 2.4900, -0.0010}, Lab{50, -2.4900, 0.0011}, 7.2195},
	{Lab{50, 2.4900, -0.0010}, Lab{50, -2.4900, 0.0012}, 7.2195},
	{Lab{50, -0.0010, 2.4900}, Lab{50, 0.0009, -2.4900}, 4.8045},
	{Lab{50, 2.5, 0}, Lab{73, 25, -18}, 27.1492},
	{Lab{50, 2.5, 0}, Lab{61, -5, 29}, 22.8977},
	{Lab{50, 2.5, 0}, Lab{56, -27, -3}, 31.9030},
	{Lab{50, 2.5, 0}, Lab{58, 24, 15}, 19.4535},
	{Lab{50, 2.5, 0}, Lab{50, 3.1736, 0.5854}, 1.0000},
	{Lab{60.2574, -34.0099, 36.2677}, Lab{60.4626, -34.1751, 39.4387}, 1.2644},
	{Lab{63.0109, -31.0961, -5.8663}, Lab{62.8187, -29.7946, -4.0864}, 1.2630},
	{Lab{90.8027, -2.0831, 1.4410}, Lab{91.1528, -1.6435, 0.0447}, 1.4441},
	{Lab{90.9257, -0.5406, -0.9208}, Lab{88.6381, -0.8985, -0.7239}, 1.5381},
}

func TestDeltaE2000(t *testing.T) {
	for _, p := range sharmaPairs {
		tolassert.EqualTol(t, p.de, DeltaE2000(p.a, p.b), 1e-4, "%v %v", p.a, p.b)
		tolassert.EqualTol(t, DeltaE2000(p.a, p.b), DeltaE2000(p.b, p.a), 1e-12)
	}
	assert.Equal(t, 0.0, DeltaE2000(Lab{40, 10, -5}, Lab{40, 10, -5}))
	assert.Equal(t, 0.0, DeltaE2000(Lab{}, Lab{}))
}

func TestDeltaE(t *testing.T) {
	assert.Equal(t, 5.0, DeltaE76(Lab{50, 0, 0}, Lab{53, 4, 0}))
	assert.Equal(t, 0.0, DeltaE94(Lab{50, 10, 10}, Lab{50, 10, 10}))
	// only lightness differs
	assert.Equal(t, 3.0, DeltaE94(Lab{50, 10, 10}, Lab{53, 10, 10}))
	// only chroma differs: 5 / (1 + 0.045*5)
	tolassert.Equal(t, 5/1.225, DeltaE94(Lab{50, 3, 4}, Lab{50, 0, 0}))
	tolassert.EqualTol(t, 0.1, DeltaEOK(OKLab{0.5, 0, 0}, OKLab{0.6, 0, 0}), 1e-15)

	// the same color in different spaces and illuminants
	tolassert.EqualTol(t, 0, DeltaE(SRGB{1, 1, 1}, cie.WhitePointXYZ(cie.D65)), 1e-6)
	tolassert.EqualTol(t, 0, DeltaE(SRGB{0.2, 0.5, 0.8}, Convert[OKLCH](SRGB{0.2, 0.5, 0.8})), 1e-9)
	assert.Greater(t, DeltaE(SRGB{1, 0, 0}, SRGB{0, 1, 0}), 50.0)
	tolassert.EqualTol(t, DeltaE2000(Lab{50, 20, 0}, Lab{52, 21, 3}), DeltaE(Lab{50, 20, 0}, Lab{52, 21, 3}), 1e-15)
}

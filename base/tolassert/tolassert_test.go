// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockT struct {
	failed bool
}

func (m *mockT) Errorf(format string, args ...any) {
	m.failed = true
}

func TestEqual(t *testing.T) {
	Equal(t, 0.3, 0.1+0.2)
	EqualTol(t, float32(1), float32(1.0004), 1e-3)
	EqualTolSlice(t, []float64{1, 2, 3}, []float64{1 + 1e-12, 2, 3 - 1e-12}, 1e-10)

	mt := &mockT{}
	assert.False(t, EqualTol(mt, 1.0, 1.1, 0.01))
	assert.True(t, mt.failed)

	mt = &mockT{}
	assert.False(t, EqualTolSlice(mt, []float64{1, 2}, []float64{1}, 0.01))
	assert.True(t, mt.failed)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTest = New("test error")

func failing() (int, error) {
	return 3, fmt.Errorf("wrapped: %w", errTest)
}

func succeeding() (int, error) {
	return 7, nil
}

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := Log(errTest)
	assert.ErrorIs(t, err, errTest)
	assert.Equal(t, 3, Log1(failing()))
	assert.Equal(t, 7, Log1(succeeding()))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(errTest) })
	assert.Equal(t, 7, Must1(succeeding()))
	assert.Panics(t, func() { Must1(failing()) })
	assert.Equal(t, 3, Ignore1(failing()))
}

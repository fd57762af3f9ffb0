// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// with tolerance (in other words, it checks whether numbers are about equal).
package tolassert

import (
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

// DefaultTol is the default tolerance used by [Equal]. It is small enough
// that only floating point rounding noise passes.
const DefaultTol = 1.0e-10

// Equal asserts that the given two numbers are about equal to each other,
// using a default tolerance of [DefaultTol].
func Equal[T constraints.Float](t assert.TestingT, expected, actual T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return EqualTol(t, expected, actual, T(DefaultTol), msgAndArgs...)
}

// EqualTol asserts that the given two numbers are about equal to each other,
// using the given tolerance value.
func EqualTol[T constraints.Float](t assert.TestingT, expected, actual, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.InDelta(t, float64(expected), float64(actual), float64(tolerance), msgAndArgs...)
}

// EqualTolSlice asserts that the given two slices of numbers are about equal
// to each other, using the given tolerance value.
func EqualTolSlice[T constraints.Float](t assert.TestingT, expected, actual []T, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	ok := true
	for i := range expected {
		if !assert.InDelta(t, float64(expected[i]), float64(actual[i]), float64(tolerance), append([]any{"index %d", i}, msgAndArgs...)...) {
			ok = false
		}
	}
	return ok
}

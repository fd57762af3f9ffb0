// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error helper functions that
// complement the standard library errors package, which it also
// re-exports so that it can be used as a drop-in replacement.
package errors

import (
	"errors"
	"log/slog"
	"runtime"
	"strconv"
)

// New is the standard library [errors.New] function.
var New = errors.New

// Is is the standard library [errors.Is] function.
var Is = errors.Is

// As is the standard library [errors.As] function.
var As = errors.As

// Join is the standard library [errors.Join] function.
var Join = errors.Join

// Unwrap is the standard library [errors.Unwrap] function.
var Unwrap = errors.Unwrap

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + callerInfo())
	}
	return err
}

// Log1 takes the given value and error and returns the value if
// the error is nil, and logs the error and returns a zero value
// if the error is non-nil. The intended usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + callerInfo())
	}
	return v
}

// Must takes the given error and panics if it is non-nil.
// The intended usage is:
//
//	errors.Must(MyFunc(v))
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 takes the given value and error and returns the value if
// the error is nil, and panics if the error is non-nil. The intended usage is:
//
//	a := errors.Must1(MyFunc(v))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Ignore1 ignores an error return value for a function returning
// a value and an error, allowing direct usage of the value.
// The intended usage is:
//
//	a := errors.Ignore1(MyFunc(v))
func Ignore1[T any](v T, err error) T {
	return v
}

// callerInfo returns string information about the caller
// of the function that called callerInfo.
func callerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name() + " " + file + ":" + strconv.Itoa(line)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default slog logger configuration
// used by the tint command line tools.
package logx

import (
	"io"
	"log/slog"
	"os"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through [LevelFromFlags] to the value of -debug, -verbose,
// and -quiet flags.
var UserLevel = slog.LevelWarn

// SetDefaultLogger sets the default logger to a text handler
// writing to [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(NewLogger(os.Stderr))
}

// NewLogger returns a new text logger writing to the given writer
// that shows messages at or above [UserLevel].
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: UserLevel}))
}

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags are evaluated in the following order:
//   - if debug is true, it returns [slog.LevelDebug].
//   - if verbose is true, it returns [slog.LevelInfo].
//   - if quiet is true, it returns [slog.LevelError].
//   - otherwise, it returns [slog.LevelWarn].
func LevelFromFlags(debug, verbose, quiet bool) slog.Level {
	switch {
	case debug:
		return slog.LevelDebug
	case verbose:
		return slog.LevelInfo
	case quiet:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

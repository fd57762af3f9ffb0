// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestNewLogger(t *testing.T) {
	prev := UserLevel
	defer func() { UserLevel = prev }()

	UserLevel = slog.LevelInfo
	var buf bytes.Buffer
	l := NewLogger(&buf)
	l.Debug("hidden")
	l.Info("shown", "space", "lab")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "space=lab")
}

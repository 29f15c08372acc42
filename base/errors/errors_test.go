// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	buf := &bytes.Buffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return buf
}

func TestLog(t *testing.T) {
	buf := captureLog(t)
	assert.NoError(t, Log(nil))
	assert.Empty(t, buf.String())

	err := New("bad seed")
	assert.Equal(t, err, Log(err))
	assert.Contains(t, buf.String(), "bad seed")
}

func TestLog1(t *testing.T) {
	buf := captureLog(t)
	assert.Equal(t, 3, Log1(3, nil))
	assert.Empty(t, buf.String())

	assert.Equal(t, 0, Log1(0, fmt.Errorf("wrapped: %w", New("inner"))))
	assert.Contains(t, buf.String(), "wrapped: inner")
}

func TestIs(t *testing.T) {
	base := New("base")
	err := fmt.Errorf("ctx: %w", base)
	assert.True(t, Is(err, base))
	assert.False(t, Is(New("base"), base))
}

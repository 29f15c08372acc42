// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsv

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRGB(t *testing.T) {
	tests := []struct {
		r, g, b float64
		h, s, v float64
	}{
		{1, 0, 0, 0, 1, 1},
		{0, 1, 0, 120, 1, 1},
		{0, 0, 1, 240, 1, 1},
		{1, 1, 0, 60, 1, 1},
		{1, 0, 1, 300, 1, 1},
		{0.5, 0.5, 0.5, 0, 0, 0.5},
		{0, 0, 0, 0, 0, 0},
		{1, 0, 0.5, 330, 1, 1},
	}
	for _, tt := range tests {
		h, s, v := FromRGB(tt.r, tt.g, tt.b)
		assert.InDelta(t, tt.h, h, 1e-9, "hue of %v", tt)
		assert.InDelta(t, tt.s, s, 1e-9, "saturation of %v", tt)
		assert.InDelta(t, tt.v, v, 1e-9, "value of %v", tt)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, hex := range []string{"ff0000", "00cc00", "336699", "e50066", "808080", "000000", "ffffff"} {
		r, g, b, err := ParseHex(hex)
		require.NoError(t, err)
		assert.Equal(t, hex, FormatHex(ToRGB(FromRGB(r, g, b))))
	}
}

func TestParseHex(t *testing.T) {
	r, g, b, err := ParseHex("FF8000")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-9)
	assert.InDelta(t, 128.0/255, g, 1e-9)
	assert.Equal(t, 0.0, b)

	for _, bad := range []string{"GGGGGG", "invalid", "#ff0000", "fff", "ff00000", ""} {
		_, _, _, err := ParseHex(bad)
		assert.ErrorIs(t, err, ErrInvalidHex, bad)
	}
}

func TestShiftSaturation(t *testing.T) {
	gray, err := ShiftSaturation("ff0000", -1)
	require.NoError(t, err)
	assert.Equal(t, "ffffff", gray)

	full, err := ShiftSaturation("ff8080", 1)
	require.NoError(t, err)
	assert.Equal(t, "ff0000", full)

	same, err := ShiftSaturation("336699", 0)
	require.NoError(t, err)
	assert.Equal(t, "336699", same)

	_, err = ShiftSaturation("zz0000", 0.5)
	assert.ErrorIs(t, err, ErrInvalidHex)
}

func ExampleShiftSaturation() {
	fmt.Println(ShiftSaturation("cc3333", -0.5))
	// Output: cc9999 <nil>
}

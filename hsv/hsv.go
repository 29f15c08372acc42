// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsv provides conversions between sRGB and the
// HSV (hue, saturation, value) color model, along with
// parsing and formatting of bare six digit hex colors.
package hsv

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned when a string is not exactly
// six hexadecimal digits.
var ErrInvalidHex = errors.New("hsv: invalid hex color")

var hexPattern = regexp.MustCompile(`^(?i:[0-9a-f]{6})$`)

// FromRGB converts 0-1 normalized sRGB values into hue (0-360),
// saturation (0-1) and value (0-1). Achromatic colors have a hue
// and saturation of 0.
func FromRGB(r, g, b float64) (h, s, v float64) {
	return colorful.Color{R: r, G: g, B: b}.Hsv()
}

// ToRGB converts hue (0-360), saturation (0-1) and value (0-1)
// into 0-1 normalized sRGB values.
func ToRGB(h, s, v float64) (r, g, b float64) {
	c := colorful.Hsv(h, s, v)
	return c.R, c.G, c.B
}

// ParseHex parses six hex digits (case-insensitive, no leading #)
// into 0-1 normalized sRGB values.
func ParseHex(hex string) (r, g, b float64, err error) {
	if !hexPattern.MatchString(hex) {
		return 0, 0, 0, fmt.Errorf("%w: %q must be in the form RRGGBB", ErrInvalidHex, hex)
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}
	return c.R, c.G, c.B, nil
}

// FormatHex formats 0-1 normalized sRGB values as six
// lowercase hex digits, without a leading #.
func FormatHex(r, g, b float64) string {
	return colorful.Color{R: r, G: g, B: b}.Clamped().Hex()[1:]
}

// ShiftSaturation returns the given hex color with its HSV
// saturation shifted by amount and clamped to [0, 1].
func ShiftSaturation(hex string, amount float64) (string, error) {
	r, g, b, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	h, s, v := FromRGB(r, g, b)
	s = min(max(s+amount, 0), 1)
	return FormatHex(ToRGB(h, s, v)), nil
}

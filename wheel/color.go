// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wheel provides the calibrated color wheel and the
// per-hue tone model used to render the four tonal variations
// of one palette color.
package wheel

import (
	"fmt"
	"image/color"
	"math"

	"cogentcore.org/harmony/base/randx"
)

// Variations is the number of tonal variations of each [Color].
const Variations = 4

// Variant holds the raw saturation and value parameters of one tonal
// variation. A negative parameter is scaled by the magnitude against the
// base saturation or value of the color; a non-negative one is used
// directly as an absolute fraction. Both resolve into [0, 1] when read.
type Variant struct {
	Saturation float64
	Value      float64
}

// Preset contains the saturation and value parameters of all
// four variations, in the order s0, v0, s1, v1, s2, v2, s3, v3.
type Preset [2 * Variations]float64

// DefaultPreset is the preset a new [Color] starts with.
var DefaultPreset = Preset{-1, -1, 1, -0.7, 0.25, 1, 0.5, 1}

// PresetFromSV returns the preset derived from a single saturation
// and value, as used for colors seeded from an RGB value:
// the color itself, a darker accent, a light tint and a pale highlight.
func PresetFromSV(s, v float64) Preset {
	return Preset{s, v, s, v * 0.7, s * 0.25, 1, s * 0.5, 1}
}

// Color is one palette color: a hue on the calibrated wheel,
// the base RGB values interpolated from the [Table] at that hue,
// and four tonal [Variant]s.
type Color struct {

	// Hue is the hue in integer degrees, in [0, 360).
	Hue int

	// BaseRed, BaseGreen, BaseBlue are the 0-255 channel values
	// interpolated from the calibration table at Hue.
	BaseRed, BaseGreen, BaseBlue int

	// BaseSaturation is the interpolated saturation scale, 0-1.
	BaseSaturation float64

	// BaseValue is the interpolated brightness scale, 0-1.
	BaseValue float64

	// Variants are the raw parameters of the tonal variations.
	Variants [Variations]Variant
}

// New returns a new [Color] at the given hue with the [DefaultPreset].
func New(hue float64) *Color {
	c := &Color{}
	c.SetHue(hue)
	c.SetPreset(DefaultPreset)
	return c
}

// NewRandom returns a new [Color] at a random hue drawn from
// the given source, with the [DefaultPreset].
func NewRandom(rnd randx.Rand) *Color {
	return New(randx.Hue(rnd))
}

// SetHue sets the hue, rounded to whole degrees and wrapped into
// [0, 360), and recomputes the base values by interpolating between
// the two calibration entries that bracket it.
func (c *Color) SetHue(h float64) {
	hue := int(math.Mod(round(h), 360))
	if hue < 0 {
		hue += 360
	}
	c.Hue = hue
	d := hue % Step
	k := float64(d) / Step
	a := Lookup(float64(hue - d))
	b := Lookup(float64((hue - d + Step) % 360))
	c.BaseRed = lerp(a.R, b.R, k)
	c.BaseGreen = lerp(a.G, b.G, k)
	c.BaseBlue = lerp(a.B, b.B, k)
	c.BaseSaturation = float64(lerp(a.Saturation, b.Saturation, k)) / 100
	c.BaseValue = float64(lerp(a.Value, b.Value, k)) / 100
}

// Rotate rotates the hue by the given angle in degrees.
func (c *Color) Rotate(angle float64) {
	c.SetHue(float64(c.Hue) + angle)
}

// Saturation returns the resolved saturation of the given variation, 0-1.
func (c *Color) Saturation(variation int) float64 {
	return resolve(c.Variants[variation].Saturation, c.BaseSaturation)
}

// Value returns the resolved value (brightness) of the given variation, 0-1.
func (c *Color) Value(variation int) float64 {
	return resolve(c.Variants[variation].Value, c.BaseValue)
}

func resolve(x, base float64) float64 {
	if x < 0 {
		x = -x * base
	}
	return min(max(x, 0), 1)
}

// SetVariant sets the raw parameters of the given variation.
// They are not clamped until read.
func (c *Color) SetVariant(variation int, s, v float64) {
	c.Variants[variation] = Variant{Saturation: s, Value: v}
}

// SetPreset sets all variations from the given [Preset].
func (c *Color) SetPreset(p Preset) {
	for i := 0; i < Variations; i++ {
		c.SetVariant(i, p[2*i], p[2*i+1])
	}
}

// RGBA returns the rendered color of the given variation. A negative
// variation renders the base saturation and value of the color.
// If webSafe is on, every channel is snapped to the nearest multiple
// of 51.
func (c *Color) RGBA(webSafe bool, variation int) color.RGBA {
	s, v := c.BaseSaturation, c.BaseValue
	if variation >= 0 {
		s, v = c.Saturation(variation), c.Value(variation)
	}
	v *= 255
	mx := max(c.BaseRed, c.BaseGreen, c.BaseBlue)
	k := 0.0
	if mx > 0 {
		k = v / float64(mx)
	}
	channel := func(base int) uint8 {
		ch := min(max(round(v-(v-float64(base)*k)*s), 0), 255)
		if webSafe {
			ch = round(ch/51) * 51
		}
		return uint8(ch)
	}
	return color.RGBA{channel(c.BaseRed), channel(c.BaseGreen), channel(c.BaseBlue), 255}
}

// Hex returns [Color.RGBA] as six lowercase hex digits, without a leading #.
func (c *Color) Hex(webSafe bool, variation int) string {
	rgb := c.RGBA(webSafe, variation)
	return fmt.Sprintf("%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

func (c *Color) String() string {
	return fmt.Sprintf("wheel.Color(%d, %s)", c.Hue, c.Hex(false, -1))
}

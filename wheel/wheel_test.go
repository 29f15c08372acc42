// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wheel

import (
	"fmt"
	"image/color"
	"testing"

	"cogentcore.org/harmony/base/randx"
	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	for i, e := range Table {
		assert.Equal(t, i*Step, e.Hue)
		assert.Equal(t, 100, e.Saturation)
	}
}

func TestLookup(t *testing.T) {
	assert.Equal(t, 210, Lookup(210).Hue)
	assert.Equal(t, 0, Lookup(360).Hue)
	assert.Equal(t, 345, Lookup(-15).Hue)
	assert.Equal(t, 0, Lookup(359).Hue)
	assert.Equal(t, 0, Lookup(7.5).Hue)
	assert.Equal(t, 15, Lookup(8).Hue)
}

func TestHues(t *testing.T) {
	hs := Hues()
	assert.Len(t, hs, len(Table))
	assert.InDelta(t, 0, hs[0], 1e-9)
	assert.InDelta(t, 60, hs[8], 1e-9)
	assert.InDelta(t, 120, hs[12], 1e-9)
	assert.InDelta(t, 180, hs[14], 1e-9)
	assert.InDelta(t, 280, hs[20], 1e-9)
	for i := 1; i < len(hs); i++ {
		assert.Greater(t, hs[i], hs[i-1])
	}
	hs[0] = 5
	assert.InDelta(t, 0, Hues()[0], 1e-9)
}

func TestSetHue(t *testing.T) {
	c := New(0)
	assert.Equal(t, 0, c.Hue)
	assert.Equal(t, []int{255, 0, 0}, []int{c.BaseRed, c.BaseGreen, c.BaseBlue})
	assert.Equal(t, 1.0, c.BaseValue)
	assert.Equal(t, 1.0, c.BaseSaturation)

	c.SetHue(7)
	assert.Equal(t, 24, c.BaseGreen)

	c.SetHue(352)
	assert.Equal(t, 352, c.Hue)
	assert.Equal(t, []int{241, 0, 54}, []int{c.BaseRed, c.BaseGreen, c.BaseBlue})
	assert.Equal(t, 0.95, c.BaseValue)
	assert.Equal(t, 1.0, c.BaseSaturation)

	c.SetHue(-30)
	assert.Equal(t, 330, c.Hue)
	c.SetHue(359.6)
	assert.Equal(t, 0, c.Hue)
	c.SetHue(720.4)
	assert.Equal(t, 0, c.Hue)
	c.SetHue(44.5)
	assert.Equal(t, 45, c.Hue)
}

func TestSetHueAll(t *testing.T) {
	c := New(0)
	for h := 0; h < 360; h++ {
		c.SetHue(float64(h))
		assert.Equal(t, h, c.Hue)
		assert.Equal(t, 1.0, c.BaseSaturation)
		assert.GreaterOrEqual(t, c.BaseValue, 0.6)
		assert.LessOrEqual(t, c.BaseValue, 1.0)
		for _, ch := range []int{c.BaseRed, c.BaseGreen, c.BaseBlue} {
			assert.GreaterOrEqual(t, ch, 0)
			assert.LessOrEqual(t, ch, 255)
		}
	}
}

func TestRotate(t *testing.T) {
	c := New(120)
	c.Rotate(180)
	assert.Equal(t, 300, c.Hue)
	c.Rotate(90)
	assert.Equal(t, 30, c.Hue)
	c.Rotate(-45)
	assert.Equal(t, 345, c.Hue)
}

func TestVariants(t *testing.T) {
	c := New(180)
	assert.Equal(t, 0.8, c.BaseValue)

	c.SetVariant(0, 1.5, -2)
	assert.Equal(t, 1.0, c.Saturation(0))
	assert.Equal(t, 1.0, c.Value(0))

	c.SetVariant(1, -0.5, -0.5)
	assert.Equal(t, 0.5, c.Saturation(1))
	assert.InDelta(t, 0.4, c.Value(1), 1e-9)

	c.SetVariant(2, -0.0, 0)
	assert.Equal(t, 0.0, c.Saturation(2))
	assert.Equal(t, 0.0, c.Value(2))

	c.SetPreset(PresetFromSV(0.5, 0.8))
	assert.Equal(t, Variant{0.5, 0.8}, c.Variants[0])
	assert.Equal(t, 0.5, c.Variants[1].Saturation)
	assert.InDelta(t, 0.56, c.Variants[1].Value, 1e-9)
	assert.Equal(t, Variant{0.125, 1}, c.Variants[2])
	assert.Equal(t, Variant{0.25, 1}, c.Variants[3])
}

func TestHex(t *testing.T) {
	c := New(0)
	assert.Equal(t, "ff0000", c.Hex(false, 0))
	assert.Equal(t, "b30000", c.Hex(false, 1))
	assert.Equal(t, "ffbfbf", c.Hex(false, 2))
	assert.Equal(t, "ff8080", c.Hex(false, 3))
	assert.Equal(t, "ff0000", c.Hex(false, -1))

	assert.Equal(t, "cc0000", c.Hex(true, 1))
	assert.Equal(t, "ffcccc", c.Hex(true, 2))

	c.SetHue(180)
	assert.Equal(t, "00cc00", c.Hex(false, -1))
	assert.Equal(t, color.RGBA{0, 204, 0, 255}, c.RGBA(false, -1))
}

func TestWebSafe(t *testing.T) {
	c := New(0)
	safe := map[uint8]bool{0: true, 51: true, 102: true, 153: true, 204: true, 255: true}
	for h := 0; h < 360; h += 7 {
		c.SetHue(float64(h))
		for v := 0; v < Variations; v++ {
			rgb := c.RGBA(true, v)
			assert.True(t, safe[rgb.R] && safe[rgb.G] && safe[rgb.B], "hue %d variation %d: %v", h, v, rgb)
		}
	}
}

func TestNewRandom(t *testing.T) {
	a := NewRandom(randx.NewSysRand(1))
	b := NewRandom(randx.NewSysRand(1))
	assert.Equal(t, a, b)
	assert.Equal(t, DefaultPreset[0], a.Variants[0].Saturation)
}

func ExampleColor_Hex() {
	c := New(0)
	for v := 0; v < Variations; v++ {
		fmt.Println(c.Hex(false, v))
	}
	// Output:
	// ff0000
	// b30000
	// ffbfbf
	// ff8080
}

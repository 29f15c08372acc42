// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette builds harmonious multi-color palettes from a single
// seed hue or hex color, using classic color wheel relationships and a
// few seeded procedural schemes.
//
// A [Palette] holds one [wheel.Color] per slot. Every call to
// [Palette.Render] recomputes all slots from the hue of the first one,
// so the same configuration and seed always produce the same output.
package palette

import (
	"fmt"
	"math"

	"cogentcore.org/harmony/base/errors"
	"cogentcore.org/harmony/base/randx"
	"cogentcore.org/harmony/hsv"
	"cogentcore.org/harmony/wheel"
	"github.com/jinzhu/copier"
)

const (
	// MinColors is the smallest number of colors in a [Palette].
	MinColors = 2

	// MaxColors is the largest number of colors in a [Palette].
	MaxColors = 16

	// DefaultDistance is the distance a new [Palette] starts with.
	DefaultDistance = 0.5
)

// Palette is a set of colors derived from one seed hue through a [Schemes]
// relationship. Each color renders four tonal variations, configured by
// the palette [Variations] preset.
//
// A Palette is not safe for concurrent use, but separate
// palettes share no mutable state.
type Palette struct {
	colors        []*wheel.Color
	scheme        Schemes
	preset        wheel.Preset
	distance      float64
	webSafe       bool
	addComplement bool
	saturation    float64
	seed          int64
	rand          randx.Rand
}

// New returns a new [Palette] with the given number of colors, clamped
// to [MinColors, MaxColors]. The colors start at random hues; the scheme
// is [Mono], the preset is [Default] and the seed is derived from the
// current time.
func New(count int) *Palette {
	p := &Palette{
		scheme:   Mono,
		preset:   wheel.DefaultPreset,
		distance: DefaultDistance,
		seed:     randx.TimeSeed(),
		rand:     randx.NewGlobalRand(),
	}
	return p.SetColorCount(count)
}

// SetRand sets the random source used for new colors and
// [Palette.FromRandomHue]. A nil source uses the global one.
func (p *Palette) SetRand(rnd randx.Rand) *Palette {
	if rnd == nil {
		rnd = randx.NewGlobalRand()
	}
	p.rand = rnd
	return p
}

// SetColorCount sets the number of colors, clamped to [MinColors, MaxColors].
// Growing appends colors at random hues with the default preset;
// shrinking drops trailing colors.
func (p *Palette) SetColorCount(n int) *Palette {
	n = min(max(n, MinColors), MaxColors)
	for len(p.colors) < n {
		p.colors = append(p.colors, wheel.NewRandom(p.rand))
	}
	clear(p.colors[n:])
	p.colors = p.colors[:n]
	return p
}

// ColorCount returns the number of colors.
func (p *Palette) ColorCount() int {
	return len(p.colors)
}

// Color returns the color in slot i. It is owned by the palette
// and is overwritten by the next [Palette.Render].
func (p *Palette) Color(i int) *wheel.Color {
	return p.colors[i]
}

// SetScheme sets the scheme. It returns an error wrapping
// [ErrInvalidArgument] if the scheme is not valid.
func (p *Palette) SetScheme(s Schemes) error {
	if !s.IsValid() {
		return fmt.Errorf("setting scheme %v: %w", s, ErrInvalidArgument)
	}
	p.scheme = s
	return nil
}

// Scheme returns the scheme.
func (p *Palette) Scheme() Schemes {
	return p.scheme
}

// SetVariation sets the tonal preset applied to every color.
// It returns an error wrapping [ErrInvalidArgument] if the
// variation is not valid.
func (p *Palette) SetVariation(v Variations) error {
	if !v.IsValid() {
		return fmt.Errorf("setting variation %v: %w", v, ErrInvalidArgument)
	}
	p.SetPreset(v.Preset())
	return nil
}

// SetPreset sets the raw tonal preset applied to every color.
func (p *Palette) SetPreset(preset wheel.Preset) *Palette {
	p.preset = preset
	for _, c := range p.colors {
		c.SetPreset(preset)
	}
	return p
}

// Preset returns the tonal preset applied to every color.
func (p *Palette) Preset() wheel.Preset {
	return p.preset
}

// SetDistance sets the angular spread of the distance-sensitive schemes.
// It returns an error wrapping [ErrInvalidArgument] if d is not in [0, 1].
func (p *Palette) SetDistance(d float64) error {
	if math.IsNaN(d) || d < 0 || d > 1 {
		return fmt.Errorf("distance %g must be in [0, 1]: %w", d, ErrInvalidArgument)
	}
	p.distance = d
	return nil
}

// Distance returns the angular spread of the distance-sensitive schemes.
func (p *Palette) Distance() float64 {
	return p.distance
}

// SetWebSafe sets whether rendered channels are snapped
// to the six level web-safe grid.
func (p *Palette) SetWebSafe(webSafe bool) *Palette {
	p.webSafe = webSafe
	return p
}

// WebSafe returns whether rendered channels are web-safe.
func (p *Palette) WebSafe() bool {
	return p.webSafe
}

// SetAddComplement sets whether the [Analogic] scheme
// adds the complement of the seed hue.
func (p *Palette) SetAddComplement(add bool) *Palette {
	p.addComplement = add
	return p
}

// AddComplement returns whether the [Analogic] scheme
// adds the complement of the seed hue.
func (p *Palette) AddComplement() bool {
	return p.addComplement
}

// SetSeed sets the seed of the [Chaos] and [Perlin] schemes.
func (p *Palette) SetSeed(seed int64) *Palette {
	p.seed = seed
	return p
}

// Seed returns the seed of the [Chaos] and [Perlin] schemes.
func (p *Palette) Seed() int64 {
	return p.seed
}

// AdjustSaturation sets the amount added to the HSV saturation of every
// rendered color, clamped to [-1, 1]. Zero disables the adjustment.
func (p *Palette) AdjustSaturation(amount float64) *Palette {
	if math.IsNaN(amount) {
		amount = 0
	}
	p.saturation = min(max(amount, -1), 1)
	return p
}

// Desaturate is [Palette.AdjustSaturation] with the
// negated absolute value of amount.
func (p *Palette) Desaturate(amount float64) *Palette {
	return p.AdjustSaturation(-math.Abs(amount))
}

// Saturate is [Palette.AdjustSaturation] with the
// absolute value of amount.
func (p *Palette) Saturate(amount float64) *Palette {
	return p.AdjustSaturation(math.Abs(amount))
}

// SaturationAdjustment returns the amount added to the
// saturation of every rendered color.
func (p *Palette) SaturationAdjustment() float64 {
	return p.saturation
}

// FromHue sets the seed hue in degrees.
func (p *Palette) FromHue(h float64) *Palette {
	p.colors[0].SetHue(h)
	return p
}

// FromRandomHue sets the seed hue to a random hue.
func (p *Palette) FromRandomHue() *Palette {
	return p.FromHue(randx.Hue(p.rand))
}

// Hue returns the seed hue in degrees.
func (p *Palette) Hue() int {
	return p.colors[0].Hue
}

// FromHex sets the seed hue from a color given as six hex digits,
// case-insensitive and without a leading #. The HSV hue of the color is
// mapped back onto the calibrated wheel, and the preset of every color
// is derived from its own saturation and value. It returns an error
// wrapping [ErrInvalidArgument] if hex is malformed.
func (p *Palette) FromHex(hex string) error {
	r, g, b, err := hsv.ParseHex(hex)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	h0, s, v := hsv.FromRGB(r, g, b)

	// closest calibration hues below and above h0,
	// with the wheel angles they are calibrated at
	h1, h2 := 0.0, 1000.0
	i1, i2 := 0.0, 0.0
	for i, h := range wheel.Hues() {
		angle := float64(wheel.Table[i].Hue)
		if h >= h1 && h <= h0 {
			h1, i1 = h, angle
		}
		if h <= h2 && h >= h0 {
			h2, i2 = h, angle
		}
	}
	if h2 == 0 || h2 > 360 {
		h2, i2 = 360, 360
	}
	k := 0.0
	if h2 != h1 {
		k = (h0 - h1) / (h2 - h1)
	}
	p.FromHue(i1 + k*(i2-i1))
	p.SetPreset(wheel.PresetFromSV(s, v))
	return nil
}

// Clone returns a deep copy of the palette. The copy shares
// the random source but no colors.
func (p *Palette) Clone() *Palette {
	cp := *p
	cp.colors = nil
	errors.Log(copier.CopyWithOption(&cp.colors, &p.colors, copier.Option{DeepCopy: true}))
	return &cp
}

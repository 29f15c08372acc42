// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"math"

	"cogentcore.org/harmony/noise"
	"cogentcore.org/harmony/wheel"
	"github.com/chewxy/math32"
)

// GoldenAngle is the hue step of the [Phi] scheme in degrees.
const GoldenAngle = 137.5

var (
	shadePreset = [8]float64{0.9, 0.8, 0.7, 0.6, 0.5, 0.4, 0.3, 0.2}
	tintPreset  = [8]float64{0.3, 0.95, 0.5, 0.9, 0.7, 0.85, 0.9, 0.8}

	// spring, summer, fall, winter
	seasonHues       = [4]float64{90, 60, 30, 210}
	seasonSaturation = [4]float64{0.6, 0.7, 0.8, 0.5}
	seasonValue      = [4]float64{0.9, 0.95, 0.7, 0.6}
)

// assign sets the hues and variants of the colors claimed by the
// scheme, relative to the seed hue h, and returns how many colors
// it claimed, always starting from the first one.
func (p *Palette) assign(h int) (int, error) {
	n := len(p.colors)
	hf := float64(h)
	switch p.scheme {
	case Mono, Monochromatic:
		for _, c := range p.colors {
			c.SetHue(hf)
		}
		return n, nil

	case Contrast:
		return p.rotated(hf, 180), nil

	case Triade:
		dif := 60 * p.distance
		return p.rotated(hf, 180-dif, 180+dif), nil

	case Tetrade:
		dif := 90 * p.distance
		return p.rotated(hf, 180, 180+dif, dif), nil

	case Analogic:
		dif := 60 * p.distance
		if p.addComplement {
			return p.rotated(hf, dif, 360-dif, 180), nil
		}
		return p.rotated(hf, dif, 360-dif), nil

	case SplitComplement:
		dif := 30 * p.distance
		return p.rotated(hf, 180-dif, 180+dif), nil

	case Square:
		return p.rotated(hf, 90, 180, 270), nil

	case Phi:
		used := min(n, 5)
		for i := 1; i < used; i++ {
			p.colors[i].SetHue(hf + GoldenAngle*float64(i))
		}
		return used, nil

	case Shades:
		used := min(n, 5)
		for i, c := range p.colors[:used] {
			c.SetHue(hf)
			for j := 0; j < wheel.Variations; j++ {
				c.SetVariant(j, 0.9, shadePreset[j]*(1-0.15*float64(i)))
			}
		}
		return used, nil

	case Tints:
		used := min(n, 5)
		for i, c := range p.colors[:used] {
			c.SetHue(hf)
			for j := 0; j < wheel.Variations; j++ {
				c.SetVariant(j, tintPreset[j]*(0.9-0.15*float64(i)), tintPreset[j+1])
			}
		}
		return used, nil

	case Chaos:
		for i, c := range p.colors {
			hashed := noise.Hash(p.seed, i, h)
			c.SetHue(hf + float64(int(hashed%240)-120))
			sk := 0.5 + float64(hashed%100)/200
			vk := 0.5 + float64(hashed%150)/300
			for j, v := range c.Variants {
				c.SetVariant(j, v.Saturation*sk, v.Value*vk)
			}
		}
		return n, nil

	case Seasons:
		used := min(n, 4)
		shift := math.Floor(hf/30) * 10
		for i, c := range p.colors[:used] {
			c.SetHue(seasonHues[i] + shift)
			c.SetPreset(wheel.PresetFromSV(seasonSaturation[i], seasonValue[i]))
		}
		return used, nil

	case Gradient:
		end := math.Mod(hf+90+math.Mod(hf, 90), 360)
		diff := end - hf
		if diff > 180 {
			diff -= 360
		} else if diff < -180 {
			diff += 360
		}
		for i, c := range p.colors {
			f := float64(i) / float64(n-1)
			c.SetHue(hf + diff*f)
			c.SetPreset(wheel.PresetFromSV(0.7+0.2*f, 0.8-0.2*f))
		}
		return n, nil

	case Perlin:
		for i, c := range p.colors {
			a := 2 * math32.Pi * float32(i) / float32(n)
			x, y := math32.Cos(a)*1.5, math32.Sin(a)*1.5
			nh := noise.Value2D(x, y, p.seed)
			ns := noise.Value2D(x+10, y+10, p.seed)
			nv := noise.Value2D(x+20, y+20, p.seed)
			c.SetHue(hf + float64(nh*120-60))
			c.SetPreset(wheel.PresetFromSV(float64(0.5+ns*0.5), float64(0.6+nv*0.4)))
		}
		return n, nil
	}
	return 0, fmt.Errorf("no hue assignment for scheme %v: %w", p.scheme, ErrInvalidState)
}

// rotated sets the colors after the first to the seed hue h rotated
// by each of the given angles in turn, as far as there are colors,
// and returns the number of colors used.
func (p *Palette) rotated(h float64, angles ...float64) int {
	used := min(len(angles)+1, len(p.colors))
	for i := 1; i < used; i++ {
		p.colors[i].SetHue(h)
		p.colors[i].Rotate(angles[i-1])
	}
	return used
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"

	"cogentcore.org/harmony/hsv"
	"cogentcore.org/harmony/wheel"
)

// Render computes the palette and returns the four tonal variations
// of every color in slot order, as six lowercase hex digits without
// a leading #. The result has 4 * [Palette.ColorCount] entries.
//
// Every color is recomputed from the seed hue, so rendering
// twice without changing the palette returns the same result.
func (p *Palette) Render() ([]string, error) {
	if !p.scheme.IsValid() {
		return nil, fmt.Errorf("rendering scheme %v: %w", p.scheme, ErrInvalidState)
	}
	h := p.colors[0].Hue
	defer p.colors[0].SetHue(float64(h))

	for _, c := range p.colors {
		c.SetPreset(p.preset)
	}
	used, err := p.assign(h)
	if err != nil {
		return nil, err
	}
	n := len(p.colors)
	for i := used; i < n; i++ {
		p.colors[i].SetHue(float64(h))
		p.colors[i].Rotate(360 / float64(n-used) * float64(i-used+1))
	}

	out := make([]string, 0, n*wheel.Variations)
	for _, c := range p.colors {
		for j := 0; j < wheel.Variations; j++ {
			out = append(out, c.Hex(p.webSafe, j))
		}
	}
	if p.saturation == 0 {
		return out, nil
	}
	for i, hex := range out {
		out[i], err = hsv.ShiftSaturation(hex, p.saturation)
		if err != nil {
			return nil, fmt.Errorf("adjusting saturation of %q: %w", hex, err)
		}
	}
	return out, nil
}

// RenderGrouped is [Palette.Render] with the result split
// into one group of four variations per color.
func (p *Palette) RenderGrouped() ([][]string, error) {
	out, err := p.Render()
	if err != nil {
		return nil, err
	}
	var groups [][]string
	for i := 0; i < len(out); i += wheel.Variations {
		end := min(i+wheel.Variations, len(out))
		groups = append(groups, out[i:end:end])
	}
	return groups, nil
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"strconv"

	"cogentcore.org/harmony/wheel"
)

// Variations are the named tonal presets applied to every
// color of a [Palette].
type Variations int32

const (
	// Default is a saturated primary, a deeper accent,
	// a light tint and a soft highlight.
	Default Variations = iota

	// Pastel is light and desaturated.
	Pastel

	// Soft is between [Default] and [Pastel].
	Soft

	// Light is bright with moderate saturation.
	Light

	// Hard is fully saturated with deep accents.
	Hard

	// Pale is nearly neutral.
	Pale

	// Vibrant is fully saturated and bright.
	Vibrant

	// Muted is low in saturation and value.
	Muted

	// VariationsN is the number of [Variations].
	VariationsN
)

var variationNames = []string{
	"default", "pastel", "soft", "light", "hard", "pale", "vibrant", "muted",
}

var variationPresets = [VariationsN]wheel.Preset{
	Default: wheel.DefaultPreset,
	Pastel:  {0.5, -0.9, 0.5, 0.5, 0.1, 0.9, 0.75, 0.75},
	Soft:    {0.3, -0.8, 0.3, 0.5, 0.1, 0.9, 0.5, 0.75},
	Light:   {0.25, 1, 0.5, 0.75, 0.1, 1, 0.5, 1},
	Hard:    {1, -1, 1, -0.6, 0.1, 1, 0.6, 1},
	Pale:    {0.1, -0.85, 0.1, 0.5, 0.1, 1, 0.1, 0.75},
	Vibrant: {1, 1, 1, 0.8, 0.3, 1, 0.7, 1},
	Muted:   {0.2, -0.8, 0.2, 0.4, 0.1, 0.8, 0.3, 0.7},
}

// ParseVariation returns the [Variations] value with the given name.
func ParseVariation(name string) (Variations, error) {
	i, err := parseName("variation", name, variationNames)
	return Variations(i), err
}

// Preset returns the saturation and value parameters of the variation.
// An invalid variation returns [wheel.DefaultPreset].
func (v Variations) Preset() wheel.Preset {
	if !v.IsValid() {
		return wheel.DefaultPreset
	}
	return variationPresets[v]
}

func (v Variations) String() string {
	if !v.IsValid() {
		return "Variations(" + strconv.Itoa(int(v)) + ")"
	}
	return variationNames[v]
}

// SetString sets the variation from its name.
func (v *Variations) SetString(name string) error {
	p, err := ParseVariation(name)
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// Title returns the name of the variation in title case.
func (v Variations) Title() string {
	return title(v.String())
}

// IsValid returns whether the value is a valid variation.
func (v Variations) IsValid() bool {
	return v >= 0 && v < VariationsN
}

// Values returns all of the variations in order.
func (v Variations) Values() []Variations {
	vs := make([]Variations, VariationsN)
	for i := range vs {
		vs[i] = Variations(i)
	}
	return vs
}

// MarshalText implements [encoding.TextMarshaler].
func (v Variations) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *Variations) UnmarshalText(text []byte) error {
	return v.SetString(string(text))
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import "strconv"

// Schemes are the hue relationships a [Palette] can be built from.
type Schemes int32

const (
	// Mono keeps every color on the seed hue.
	Mono Schemes = iota

	// Monochromatic is the same as [Mono].
	Monochromatic

	// Contrast pairs the seed hue with its complement.
	Contrast

	// Triade adds the two hues on either side of the complement,
	// spread by 60 degrees times the distance.
	Triade

	// Tetrade forms a rectangle on the wheel: the complement plus
	// a pair offset by 90 degrees times the distance.
	Tetrade

	// Analogic uses the neighbors of the seed hue, spread by 60 degrees
	// times the distance, optionally adding the complement.
	Analogic

	// SplitComplement uses the two hues beside the complement,
	// spread by 30 degrees times the distance.
	SplitComplement

	// Square uses four hues 90 degrees apart.
	Square

	// Phi steps up to five hues around the wheel by the golden angle.
	Phi

	// Shades keeps the seed hue and darkens each successive color.
	Shades

	// Tints keeps the seed hue and lightens each successive color.
	Tints

	// Chaos jitters hue, saturation and value of every color
	// pseudo-randomly from the seed.
	Chaos

	// Seasons uses fixed spring, summer, fall and winter hues
	// shifted by the seed hue.
	Seasons

	// Gradient interpolates along the shortest arc from the seed hue
	// to a hue about a quarter turn away.
	Gradient

	// Perlin samples coherent noise around a circle to offset
	// hue, saturation and value of every color.
	Perlin

	// SchemesN is the number of [Schemes].
	SchemesN
)

var schemeNames = []string{
	"mono", "monochromatic", "contrast", "triade", "tetrade", "analogic",
	"splitComplement", "square", "phi", "shades", "tints", "chaos",
	"seasons", "gradient", "perlin",
}

var schemeDescs = []string{
	"every color on the seed hue",
	"every color on the seed hue",
	"the seed hue and its complement",
	"the seed hue and two hues around its complement",
	"two pairs of complementary hues",
	"neighboring hues, optionally with the complement",
	"the seed hue and the two hues beside its complement",
	"four hues at right angles",
	"hues stepped by the golden angle",
	"successively darker shades of the seed hue",
	"successively lighter tints of the seed hue",
	"seeded random jitter of hue, saturation and value",
	"spring, summer, fall and winter hues",
	"a quarter turn gradient from the seed hue",
	"coherent noise offsets around the wheel",
}

// ParseScheme returns the [Schemes] value with the given name.
// Names are case-sensitive, for example "splitComplement".
func ParseScheme(name string) (Schemes, error) {
	i, err := parseName("scheme", name, schemeNames)
	return Schemes(i), err
}

// String returns the name of the scheme.
func (s Schemes) String() string {
	if !s.IsValid() {
		return "Schemes(" + strconv.Itoa(int(s)) + ")"
	}
	return schemeNames[s]
}

// SetString sets the scheme from its name.
func (s *Schemes) SetString(name string) error {
	v, err := ParseScheme(name)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Desc returns a short description of the scheme.
func (s Schemes) Desc() string {
	if !s.IsValid() {
		return ""
	}
	return schemeDescs[s]
}

// Title returns the name of the scheme in title case,
// for example "Split Complement".
func (s Schemes) Title() string {
	return title(s.String())
}

// IsValid returns whether the value is a valid scheme.
func (s Schemes) IsValid() bool {
	return s >= 0 && s < SchemesN
}

// Values returns all of the schemes in order.
func (s Schemes) Values() []Schemes {
	vs := make([]Schemes, SchemesN)
	for i := range vs {
		vs[i] = Schemes(i)
	}
	return vs
}

// MarshalText implements [encoding.TextMarshaler].
func (s Schemes) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Schemes) UnmarshalText(text []byte) error {
	return s.SetString(string(text))
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the palette configuration
// read from TOML files and command line flags.
package config

import (
	"fmt"
	"os"
	"strings"

	"cogentcore.org/harmony/export"
	"cogentcore.org/harmony/palette"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
)

// Config is the configuration of one palette and its output.
type Config struct {

	// Hue is the seed hue in degrees, used when neither
	// Hex nor Color is set.
	Hue float64 `toml:"hue"`

	// Hex is the seed color as six hex digits, with or without a leading #.
	Hex string `toml:"hex,omitempty"`

	// Color is the seed color as an SVG color name, such as "steelblue".
	Color string `toml:"color,omitempty"`

	// Scheme is the hue relationship of the palette.
	Scheme palette.Schemes `toml:"scheme"`

	// Variation is the tonal preset of every color. A Hex or Color
	// seed derives its own preset unless Variation is set to
	// something other than the default.
	Variation palette.Variations `toml:"variation"`

	// Distance is the angular spread of the distance-sensitive schemes, 0-1.
	Distance float64 `toml:"distance"`

	// WebSafe snaps every channel to the web-safe grid.
	WebSafe bool `toml:"webSafe"`

	// Complement adds the complement to the analogic scheme.
	Complement bool `toml:"complement"`

	// Count is the number of colors, 2-16.
	Count int `toml:"count"`

	// Saturation is added to the saturation of every color, -1 to 1.
	Saturation float64 `toml:"saturation"`

	// Seed is the seed of the procedural schemes.
	// Zero uses a seed derived from the current time.
	Seed int64 `toml:"seed"`

	// Format is the output format.
	Format export.Formats `toml:"format"`

	// Output is the output file. Empty writes to standard output.
	Output string `toml:"output,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Scheme:    palette.Mono,
		Variation: palette.Default,
		Distance:  palette.DefaultDistance,
		Count:     4,
		Format:    export.Text,
	}
}

// Open reads the TOML file at the given path over the defaults.
// Unknown keys are an error.
func Open(filename string) (*Config, error) {
	c := Default()
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(c); err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", filename, err)
	}
	return c, nil
}

// Save writes the configuration as TOML to the given path.
func (c *Config) Save(filename string) error {
	b, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

// SeedHex returns the seed color as bare hex digits, from Hex or from
// the named Color, or "" if the seed is the Hue.
func (c *Config) SeedHex() (string, error) {
	if c.Hex != "" {
		return strings.TrimPrefix(c.Hex, "#"), nil
	}
	if c.Color == "" {
		return "", nil
	}
	rgb, ok := colornames.Map[strings.ToLower(c.Color)]
	if !ok {
		return "", fmt.Errorf("config: unknown color name %q: %w", c.Color, palette.ErrInvalidArgument)
	}
	return fmt.Sprintf("%02x%02x%02x", rgb.R, rgb.G, rgb.B), nil
}

// Palette returns a new palette built from the configuration.
func (c *Config) Palette() (*palette.Palette, error) {
	p := palette.New(c.Count).
		SetWebSafe(c.WebSafe).
		SetAddComplement(c.Complement).
		AdjustSaturation(c.Saturation)
	if c.Seed != 0 {
		p.SetSeed(c.Seed)
	}
	if err := p.SetScheme(c.Scheme); err != nil {
		return nil, err
	}
	if err := p.SetDistance(c.Distance); err != nil {
		return nil, err
	}
	hex, err := c.SeedHex()
	if err != nil {
		return nil, err
	}
	if hex == "" {
		p.FromHue(c.Hue)
	} else if err := p.FromHex(hex); err != nil {
		return nil, err
	}
	if hex == "" || c.Variation != palette.Default {
		if err := p.SetVariation(c.Variation); err != nil {
			return nil, err
		}
	}
	return p, nil
}

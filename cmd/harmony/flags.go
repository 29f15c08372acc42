// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/harmony/config"
	"github.com/spf13/pflag"
)

// stringSetter is implemented by the named enums.
type stringSetter interface {
	String() string
	SetString(s string) error
}

// enumValue is a [pflag.Value] for a named enum.
type enumValue struct {
	v   stringSetter
	typ string
}

func (e enumValue) String() string     { return e.v.String() }
func (e enumValue) Set(s string) error { return e.v.SetString(s) }
func (e enumValue) Type() string       { return e.typ }

// paletteFlags binds the flags of every palette option to c.
func paletteFlags(fs *pflag.FlagSet, c *config.Config) {
	fs.StringP("config", "c", "", "TOML config file; flags override its values")
	fs.Float64Var(&c.Hue, "hue", c.Hue, "seed hue in degrees")
	fs.StringVar(&c.Hex, "hex", c.Hex, "seed color as six hex digits")
	fs.StringVar(&c.Color, "color", c.Color, "seed color as an SVG color name")
	fs.VarP(enumValue{&c.Scheme, "scheme"}, "scheme", "s", "hue relationship (see harmony schemes)")
	fs.Var(enumValue{&c.Variation, "variation"}, "variation", "tonal preset (see harmony variations)")
	fs.Float64VarP(&c.Distance, "distance", "d", c.Distance, "angular spread of the distance-sensitive schemes, 0-1")
	fs.BoolVar(&c.WebSafe, "websafe", c.WebSafe, "snap colors to the web-safe grid")
	fs.BoolVar(&c.Complement, "complement", c.Complement, "add the complement to the analogic scheme")
	fs.IntVarP(&c.Count, "count", "n", c.Count, "number of colors, 2-16")
	fs.Float64Var(&c.Saturation, "saturation", c.Saturation, "amount added to the saturation of every color, -1 to 1")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed of the procedural schemes (0 uses the time)")
	fs.VarP(enumValue{&c.Format, "format"}, "format", "f", "output format: text, json, yaml, toml, terminal, image")
	fs.StringVarP(&c.Output, "output", "o", c.Output, "output file, with the format taken from its extension unless --format is given")
}

// loadConfig returns the config file named by the config flag with
// every changed flag applied over it, or flags itself if there is no file.
func loadConfig(fs *pflag.FlagSet, flags *config.Config) (*config.Config, error) {
	filename, err := fs.GetString("config")
	if err != nil || filename == "" {
		return flags, err
	}
	c, err := config.Open(filename)
	if err != nil {
		return nil, err
	}
	overlay(c, flags, fs)
	return c, nil
}

// overlay copies the fields of src whose flags were changed to dst.
func overlay(dst, src *config.Config, fs *pflag.FlagSet) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "hue":
			dst.Hue = src.Hue
			if src.Hex == "" && src.Color == "" {
				dst.Hex, dst.Color = "", ""
			}
		case "hex":
			dst.Hex, dst.Color = src.Hex, ""
		case "color":
			dst.Color, dst.Hex = src.Color, ""
		case "scheme":
			dst.Scheme = src.Scheme
		case "variation":
			dst.Variation = src.Variation
		case "distance":
			dst.Distance = src.Distance
		case "websafe":
			dst.WebSafe = src.WebSafe
		case "complement":
			dst.Complement = src.Complement
		case "count":
			dst.Count = src.Count
		case "saturation":
			dst.Saturation = src.Saturation
		case "seed":
			dst.Seed = src.Seed
		case "format":
			dst.Format = src.Format
		case "output":
			dst.Output = src.Output
		}
	})
}

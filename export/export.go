// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export writes rendered palettes as plain text, JSON, YAML,
// TOML, colored terminal swatches or a swatch sheet image.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/harmony/base/iox/imagex"
	"cogentcore.org/harmony/palette"
	"github.com/muesli/termenv"
)

// Formats are the output formats of a rendered palette.
type Formats int32

const (
	// Text is one line per color with its four variations.
	Text Formats = iota

	// JSON is an indented JSON [Document].
	JSON

	// YAML is a YAML [Document].
	YAML

	// TOML is a TOML [Document].
	TOML

	// Terminal is one line per color of colored swatches
	// followed by their hex values.
	Terminal

	// Image is a swatch sheet with one row per color
	// and one column per variation.
	Image

	// FormatsN is the number of [Formats].
	FormatsN
)

var formatNames = []string{"text", "json", "yaml", "toml", "terminal", "image"}

func (f Formats) String() string {
	if f < 0 || f >= FormatsN {
		return fmt.Sprintf("Formats(%d)", f)
	}
	return formatNames[f]
}

// SetString sets the format from its name.
func (f *Formats) SetString(s string) error {
	for i, n := range formatNames {
		if n == s {
			*f = Formats(i)
			return nil
		}
	}
	return fmt.Errorf("export: unknown format %q, must be one of %s", s, strings.Join(formatNames, ", "))
}

// MarshalText implements [encoding.TextMarshaler].
func (f Formats) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Formats) UnmarshalText(text []byte) error {
	return f.SetString(string(text))
}

// FormatFromFilename returns the format implied by the extension
// of the given filename. Unknown extensions are [Text].
func FormatFromFilename(filename string) Formats {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	case ".toml":
		return TOML
	}
	if _, err := imagex.ExtToFormat(ext); err == nil {
		return Image
	}
	return Text
}

// Document is the serialized form of a rendered palette.
type Document struct {

	// Scheme is the name of the scheme the palette was built with.
	Scheme palette.Schemes `json:"scheme" yaml:"scheme" toml:"scheme"`

	// Hue is the seed hue in degrees.
	Hue int `json:"hue" yaml:"hue" toml:"hue"`

	// Seed is the seed of the procedural schemes.
	Seed int64 `json:"seed" yaml:"seed" toml:"seed"`

	// WebSafe is whether the colors are snapped to the web-safe grid.
	WebSafe bool `json:"webSafe" yaml:"webSafe" toml:"webSafe"`

	// Colors has one group of four hex variations per palette color.
	Colors [][]string `json:"colors" yaml:"colors" toml:"colors"`
}

// NewDocument renders the given palette into a new [Document].
func NewDocument(p *palette.Palette) (*Document, error) {
	groups, err := p.RenderGrouped()
	if err != nil {
		return nil, err
	}
	return &Document{
		Scheme:  p.Scheme(),
		Hue:     p.Hue(),
		Seed:    p.Seed(),
		WebSafe: p.WebSafe(),
		Colors:  groups,
	}, nil
}

// Options are the settings of the terminal and image formats.
type Options struct {

	// Profile is the color profile of [Terminal] output.
	Profile termenv.Profile

	// Swatch is the side of one swatch of [Image] output in pixels.
	Swatch int

	// ImageFormat is the encoding of [Image] output.
	ImageFormat imagex.Formats
}

// DefaultOptions returns the default [Options], with the terminal
// profile detected from the environment.
func DefaultOptions() Options {
	return Options{
		Profile:     termenv.EnvColorProfile(),
		Swatch:      32,
		ImageFormat: imagex.PNG,
	}
}

// Write writes the document to w in the given format.
func Write(w io.Writer, d *Document, f Formats, opts Options) error {
	switch f {
	case Text:
		return WriteText(w, d)
	case JSON:
		return WriteJSON(w, d)
	case YAML:
		return WriteYAML(w, d)
	case TOML:
		return WriteTOML(w, d)
	case Terminal:
		return WriteTerminal(w, d, opts.Profile)
	case Image:
		return imagex.Write(Swatches(d, opts.Swatch), w, opts.ImageFormat)
	}
	return fmt.Errorf("export: unknown format %v", f)
}

// Save writes the document to the named file, with the format
// and image encoding inferred from its extension.
func Save(filename string, d *Document, opts Options) error {
	return SaveFormat(filename, d, FormatFromFilename(filename), opts)
}

// SaveFormat writes the document to the named file in the given format.
// For [Image], a writable image extension selects the encoding, and
// opts.ImageFormat is used otherwise. The file is removed if writing fails.
func SaveFormat(filename string, d *Document, f Formats, opts Options) error {
	if f == Image {
		if imf, err := imagex.ExtToFormat(filepath.Ext(filename)); err == nil {
			opts.ImageFormat = imf
		}
		if !opts.ImageFormat.Writable() {
			return fmt.Errorf("export: cannot encode %s images: %s", opts.ImageFormat, filename)
		}
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	err = Write(file, d, f, opts)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(filename)
	}
	return err
}

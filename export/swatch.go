// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bufio"
	"image"
	"image/color"
	"io"

	"github.com/anthonynsimon/bild/transform"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// rgba parses six hex digits into an opaque color.
func rgba(hex string) (color.RGBA, bool) {
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return color.RGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, true
}

// WriteTerminal writes one line per color: a swatch of each
// variation in the given color profile, then their hex values.
// With the [termenv.Ascii] profile only the hex values are written.
func WriteTerminal(w io.Writer, d *Document, profile termenv.Profile) error {
	bw := bufio.NewWriter(w)
	o := termenv.NewOutput(bw, termenv.WithProfile(profile))
	for _, g := range d.Colors {
		if profile != termenv.Ascii {
			for _, hex := range g {
				bw.WriteString(o.String("    ").Background(o.Color("#" + hex)).String())
			}
			bw.WriteByte(' ')
		}
		for i, hex := range g {
			if i > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(hex)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Swatches returns a swatch sheet of the document with one row per
// color and one column per variation, each swatch size pixels square.
// Malformed hex values are left transparent.
func Swatches(d *Document, size int) *image.RGBA {
	cols := 0
	for _, g := range d.Colors {
		cols = max(cols, len(g))
	}
	rows := len(d.Colors)
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for y, g := range d.Colors {
		for x, hex := range g {
			if c, ok := rgba(hex); ok {
				img.SetRGBA(x, y, c)
			}
		}
	}
	if size <= 1 || rows == 0 || cols == 0 {
		return img
	}
	return transform.Resize(img, cols*size, rows*size, transform.NearestNeighbor)
}

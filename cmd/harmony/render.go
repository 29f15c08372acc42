// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"log/slog"

	"cogentcore.org/harmony/config"
	"cogentcore.org/harmony/export"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	flags := config.Default()
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a palette",
		Long: `Render a palette and write it in the chosen format.

The seed is taken from --hex, then --color, then --hue.
With --output, the format follows the file extension unless
--format is given.

Examples:
  harmony render --hue 30 --scheme contrast
  harmony render --hex ff6600 --scheme tetrade --distance 0.25 --format json
  harmony render --config harmony.toml --count 8 -o palette.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd.Flags(), flags)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), c, cmd.Flags().Changed("format"))
		},
	}
	paletteFlags(cmd.Flags(), flags)
	return cmd
}

// render builds the palette of c and writes it to c.Output,
// or to w if there is none. An output file takes its format from
// its extension unless the format is not text or formatSet is true.
func render(w io.Writer, c *config.Config, formatSet bool) error {
	p, err := c.Palette()
	if err != nil {
		return err
	}
	slog.Debug("rendering palette", "scheme", p.Scheme(), "hue", p.Hue(), "count", p.ColorCount(), "seed", p.Seed())
	d, err := export.NewDocument(p)
	if err != nil {
		return err
	}
	opts := export.DefaultOptions()
	if c.Output == "" {
		return export.Write(w, d, c.Format, opts)
	}
	f := c.Format
	if f == export.Text && !formatSet {
		f = export.FormatFromFilename(c.Output)
	}
	if err := export.SaveFormat(c.Output, d, f, opts); err != nil {
		return err
	}
	slog.Info("wrote palette", "file", c.Output, "format", f)
	return nil
}

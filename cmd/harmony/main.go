// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command harmony renders color palettes from a seed hue or color.
//
// Examples:
//
//	harmony render --hue 210 --scheme triade --count 5
//	harmony render --hex 336699 --format terminal
//	harmony render --color steelblue --scheme perlin --seed 7 -o palette.png
//	harmony watch --config harmony.toml
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd returns the harmony command with all of its subcommands.
func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "harmony",
		Short: "Generate harmonious color palettes",
		Long: `harmony generates color palettes from a single seed hue or color,
using classic color wheel relationships and seeded procedural schemes.

The same seed, scheme and options always produce the same palette.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newWatchCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newSchemesCmd())
	root.AddCommand(newVariationsCmd())
	return root
}

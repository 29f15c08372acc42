// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/harmony/base/errors"
	"cogentcore.org/harmony/config"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	flags := config.Default()
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Render a palette every time its config file changes",
		Long: `Render the palette of a config file, then render it again every
time the file is saved, until interrupted. Flags override the file.
A file that does not exist yet is rendered once it is created.

Example:
  harmony watch --config harmony.toml --format terminal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := errors.Log1(cmd.Flags().GetString("config"))
			if filename == "" {
				return errors.New("watch needs a --config file")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watch(ctx, cmd, filename, flags)
		},
	}
	paletteFlags(cmd.Flags(), flags)
	return cmd
}

func watch(ctx context.Context, cmd *cobra.Command, filename string, flags *config.Config) error {
	w := cmd.OutOrStdout()
	return config.Watch(ctx, filename, func(c *config.Config, err error) {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("waiting for config file", "file", filename)
			return
		}
		if errors.Log(err) != nil {
			return
		}
		overlay(c, flags, cmd.Flags())
		errors.Log(render(w, c, cmd.Flags().Changed("format")))
		fmt.Fprintln(w)
	})
}

func newInitCmd() *cobra.Command {
	flags := config.Default()
	cmd := &cobra.Command{
		Use:   "init <file>",
		Short: "Write a config file with the default options",
		Long: `Write a TOML config file with the default options, overridden by
any palette flags given.

Example:
  harmony init harmony.toml --scheme analogic --complement`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); err == nil {
				return fmt.Errorf("%s already exists", args[0])
			}
			return flags.Save(args[0])
		},
	}
	paletteFlags(cmd.Flags(), flags)
	return cmd
}

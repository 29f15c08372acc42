// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"cogentcore.org/harmony/palette"
	"github.com/spf13/cobra"
)

func newSchemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List the palette schemes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, s := range palette.Mono.Values() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", s, s.Title(), s.Desc())
			}
			return tw.Flush()
		},
	}
}

func newVariationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variations",
		Short: "List the tonal presets and their saturation and value parameters",
		Long: `List the tonal presets. Each has the saturation and value of the
four variations of every color; negative values are relative to the
hue's own saturation or value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, v := range palette.Default.Values() {
				p := v.Preset()
				pairs := make([]string, len(p)/2)
				for i := range pairs {
					pairs[i] = fmt.Sprintf("%g/%g", p[2*i], p[2*i+1])
				}
				fmt.Fprintf(tw, "%s\t%s\n", v, strings.Join(pairs, "\t"))
			}
			return tw.Flush()
		},
	}
}

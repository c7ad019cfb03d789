package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mandala/mandala"
	"github.com/katalvlaran/mandala/palette"
)

func init() {
	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "List generator presets and curated palettes",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			heading := color.New(color.FgCyan, color.Bold)

			heading.Fprintln(out, "Presets")
			for _, name := range mandala.Presets() {
				fmt.Fprintf(out, "  %s\n", name)
			}

			heading.Fprintln(out, "Palettes")
			for _, name := range palette.Names() {
				swatch, _ := palette.Get(name, 3)
				fmt.Fprintf(out, "  %-14s", name)
				for _, c := range swatch {
					color.RGB(int(c[0]), int(c[1]), int(c[2])).Fprint(out, "██")
				}
				fmt.Fprintln(out)
			}
		},
	}
	rootCmd.AddCommand(presetsCmd)
}

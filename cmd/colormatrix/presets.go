package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	colormatrix "github.com/noellered/color-matrix-visualizer"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List named matrices",
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	title := cases.Title(language.English)
	for _, name := range colormatrix.PresetNames() {
		m, _ := colormatrix.Preset(name)
		fmt.Fprintf(w, "%-10s %-10s %s\n", name, title.String(name), m)
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	colormatrix "github.com/noellered/color-matrix-visualizer"
)

// addMatrixFlags registers the flags that select a matrix.
func addMatrixFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("matrix", "m", "", "Matrix text, 20 comma-separated values (brackets and whitespace ignored)")
	cmd.Flags().StringP("preset", "p", "", "Named preset (see 'colormatrix presets')")
	cmd.MarkFlagsMutuallyExclusive("matrix", "preset")
}

// matrixFromFlags resolves --matrix or --preset, defaulting to the
// default matrix when neither is set.
func matrixFromFlags(cmd *cobra.Command) (colormatrix.ColorMatrix, error) {
	text, _ := cmd.Flags().GetString("matrix")
	name, _ := cmd.Flags().GetString("preset")

	switch {
	case text != "":
		return colormatrix.Parse(text)
	case name != "":
		m, ok := colormatrix.Preset(name)
		if !ok {
			return colormatrix.ColorMatrix{}, fmt.Errorf("unknown preset %q", name)
		}
		return m, nil
	default:
		return colormatrix.Default(), nil
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	colormatrix "github.com/noellered/color-matrix-visualizer"
)

var validateCmd = &cobra.Command{
	Use:   "validate TEXT...",
	Short: "Check matrix texts and print their normalized form",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	invalid := 0
	for _, text := range args {
		m, err := colormatrix.Parse(text)
		if err != nil {
			invalid++
			fmt.Fprintf(w, "invalid: %v\n", err)
			continue
		}
		fmt.Fprintf(w, "valid: %s\n", m)
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d matrices invalid", invalid, len(args))
	}
	return nil
}

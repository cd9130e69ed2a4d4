package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	colormatrix "github.com/noellered/color-matrix-visualizer"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print every coefficient of a matrix with its label",
	Args:  cobra.NoArgs,
	RunE:  runDescribe,
}

func init() {
	addMatrixFlags(describeCmd)
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	m, err := matrixFromFlags(cmd)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for i, v := range m {
		fmt.Fprintf(tw, "%d\t%s\t%g\n", i, colormatrix.Descriptions[i], v)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), m)
	return nil
}

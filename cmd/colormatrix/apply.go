package main

import (
	"fmt"

	"github.com/spf13/cobra"

	colormatrix "github.com/noellered/color-matrix-visualizer"
	"github.com/noellered/color-matrix-visualizer/internal/imageio"
	"github.com/noellered/color-matrix-visualizer/internal/preview"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a color matrix to an image file",
	RunE:  runApply,
}

func init() {
	applyCmd.Flags().StringP("input", "i", "", "Input image (PNG, JPEG, GIF, BMP, TIFF, WebP)")
	applyCmd.Flags().StringP("output", "o", "", "Output image (PNG, JPEG, GIF, BMP, TIFF)")
	applyCmd.Flags().Int("max-height", 0, fmt.Sprintf("Scale output to this height (the interactive preview uses %d); 0 keeps full size", preview.MaxPreviewHeight))
	applyCmd.Flags().Int("workers", 1, "Goroutines per transform (0 = all CPUs)")
	applyCmd.Flags().Int("quality", imageio.DefaultJPEGQuality, "JPEG quality (1-100)")
	addMatrixFlags(applyCmd)
	_ = applyCmd.MarkFlagRequired("input")
	_ = applyCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	maxHeight, _ := cmd.Flags().GetInt("max-height")
	workers, _ := cmd.Flags().GetInt("workers")
	quality, _ := cmd.Flags().GetInt("quality")

	m, err := matrixFromFlags(cmd)
	if err != nil {
		return err
	}

	src, format, err := imageio.Load(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	tr := colormatrix.NewTransformer(colormatrix.WithWorkers(workers))
	defer tr.Close()

	session := preview.NewSession(tr, preview.WithPreviewHeight(maxHeight))
	session.SetMatrix(m)
	session.Load(src)

	var out *colormatrix.Pixmap
	if maxHeight > 0 {
		out, err = session.Render()
	} else {
		out, err = session.RenderFull()
	}
	if err != nil {
		return fmt.Errorf("transform: %w", err)
	}

	if err := imageio.Save(outputPath, out, quality); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Matrix: %s\n", session.MatrixText())
	fmt.Fprintf(w, "Input:  %s (%s, %dx%d)\n", inputPath, format, src.Width(), src.Height())
	fmt.Fprintf(w, "Output: %s (%dx%d)\n", outputPath, out.Width(), out.Height())
	return nil
}

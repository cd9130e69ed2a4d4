package imageio

import (
	"image"

	"golang.org/x/image/draw"

	colormatrix "github.com/noellered/color-matrix-visualizer"
)

// FitHeight returns pm resampled to the given height, keeping the aspect
// ratio. The width is truncated to a whole pixel and is at least 1.
// A pixmap already at that height, or a non-positive height, yields a clone.
func FitHeight(pm *colormatrix.Pixmap, height int) *colormatrix.Pixmap {
	if height <= 0 || pm.Height() == height {
		return pm.Clone()
	}

	width := int(float64(pm.Width()) * float64(height) / float64(pm.Height()))
	if width < 1 {
		width = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Rect, pm.ToImage(), pm.Bounds(), draw.Src, nil)

	return colormatrix.FromImage(dst)
}

// Package imageio loads, saves and scales the images a color matrix is
// previewed on.
//
// Decoding supports PNG, JPEG and GIF from the standard library plus BMP,
// TIFF and WebP from golang.org/x/image. Everything is converted to a
// non-premultiplied colormatrix.Pixmap.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder

	colormatrix "github.com/noellered/color-matrix-visualizer"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyImage is returned when a decoded image has no pixels.
	ErrEmptyImage = errors.New("imageio: empty image")
)

// Format identifies an encoding.
type Format string

// Supported output formats.
const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	GIF  Format = "gif"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// DefaultJPEGQuality is used when Save is given a quality outside [1, 100].
const DefaultJPEGQuality = 90

// FormatFromPath picks an output format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".gif":
		return GIF, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load decodes the image file at path, auto-detecting the format.
func Load(path string) (*colormatrix.Pixmap, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from r, auto-detecting the format. It returns the
// pixmap and the registered format name ("png", "jpeg", "webp", ...).
func Decode(r io.Reader) (*colormatrix.Pixmap, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("imageio: decode: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, format, ErrEmptyImage
	}

	pm := colormatrix.FromImage(img)
	colormatrix.Logger().Debug("imageio: decoded image",
		"format", format, "width", pm.Width(), "height", pm.Height())
	return pm, format, nil
}

// Save encodes pm to path in the format implied by its extension.
// quality only affects JPEG output.
func Save(path string, pm *colormatrix.Pixmap, quality int) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := Encode(f, pm, format, quality); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes pm to w in the given format.
func Encode(w io.Writer, pm *colormatrix.Pixmap, format Format, quality int) error {
	img := pm.ToImage()

	var err error
	switch format {
	case PNG:
		err = png.Encode(w, img)
	case JPEG:
		if quality < 1 || quality > 100 {
			quality = DefaultJPEGQuality
		}
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case GIF:
		err = gif.Encode(w, img, nil)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", format, err)
	}
	return nil
}

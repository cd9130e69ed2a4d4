package imageio

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	colormatrix "github.com/noellered/color-matrix-visualizer"
)

// opaqueTestPixmap returns a small opaque pixmap with distinct pixels.
func opaqueTestPixmap() *colormatrix.Pixmap {
	pm := colormatrix.NewPixmap(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			pm.SetPixel(x, y, uint8(x*60), uint8(y*100), uint8(x*y*20), 255)
		}
	}
	return pm
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"out.png", PNG, false},
		{"OUT.PNG", PNG, false},
		{"photo.jpg", JPEG, false},
		{"photo.jpeg", JPEG, false},
		{"anim.gif", GIF, false},
		{"legacy.bmp", BMP, false},
		{"scan.tif", TIFF, false},
		{"scan.tiff", TIFF, false},
		{"image.webp", "", true},
		{"noext", "", true},
	}

	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("FormatFromPath(%q) error = %v, want ErrUnsupportedFormat", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestEncodeDecodeLossless(t *testing.T) {
	src := opaqueTestPixmap()

	for _, format := range []Format{PNG, BMP, TIFF} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, format, 0); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			got, name, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if name != string(format) {
				t.Errorf("format = %q, want %q", name, format)
			}
			if diff := cmp.Diff(src.Data(), got.Data()); diff != "" {
				t.Errorf("pixels mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeDecodeLossy(t *testing.T) {
	src := opaqueTestPixmap()

	for _, format := range []Format{JPEG, GIF} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, format, 95); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			got, _, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got.Width() != src.Width() || got.Height() != src.Height() {
				t.Errorf("size = %dx%d, want %dx%d", got.Width(), got.Height(), src.Width(), src.Height())
			}
		})
	}
}

func TestEncodeUnsupported(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, opaqueTestPixmap(), Format("webp"), 0)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(webp) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, _, err := Decode(bytes.NewReader([]byte("definitely not an image")))
	if err == nil {
		t.Error("Decode(garbage) should fail")
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	src := opaqueTestPixmap()
	path := filepath.Join(dir, "out.png")

	if err := Save(path, src, 0); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, format, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if diff := cmp.Diff(src.Data(), got.Data()); diff != "" {
		t.Errorf("pixels mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xyz")
	if err := Save(path, opaqueTestPixmap(), 0); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(.xyz) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Load(missing) should fail")
	}
}

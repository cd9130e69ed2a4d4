package preview

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	colormatrix "github.com/noellered/color-matrix-visualizer"
)

// solidPixmap returns a w x h pixmap filled with one color.
func solidPixmap(w, h int, r, g, b, a uint8) *colormatrix.Pixmap {
	pm := colormatrix.NewPixmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pm.SetPixel(x, y, r, g, b, a)
		}
	}
	return pm
}

func newTestSession(t *testing.T, opts ...SessionOption) *Session {
	t.Helper()
	tr := colormatrix.NewTransformer()
	t.Cleanup(tr.Close)
	return NewSession(tr, opts...)
}

func TestNewSessionStartsFromDefault(t *testing.T) {
	s := newTestSession(t)

	if s.Matrix() != colormatrix.Default() {
		t.Errorf("Matrix() = %v, want Default()", s.Matrix())
	}
	if s.MatrixText() != colormatrix.Default().String() {
		t.Errorf("MatrixText() = %q", s.MatrixText())
	}
	if _, err := s.Render(); !errors.Is(err, ErrNoImage) {
		t.Errorf("Render() before Load error = %v, want ErrNoImage", err)
	}
	if _, err := s.RenderFull(); !errors.Is(err, ErrNoImage) {
		t.Errorf("RenderFull() before Load error = %v, want ErrNoImage", err)
	}
}

func TestSessionLoadScalesPreview(t *testing.T) {
	s := newTestSession(t)
	src := solidPixmap(120, 60, 10, 20, 30, 255)
	s.Load(src)

	if s.Source() != src {
		t.Error("Source() should return the loaded pixmap")
	}

	out, err := s.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out.Width() != 600 || out.Height() != MaxPreviewHeight {
		t.Errorf("preview size = %dx%d, want 600x%d", out.Width(), out.Height(), MaxPreviewHeight)
	}

	full, err := s.RenderFull()
	if err != nil {
		t.Fatalf("RenderFull() error = %v", err)
	}
	if full.Width() != 120 || full.Height() != 60 {
		t.Errorf("full size = %dx%d, want 120x60", full.Width(), full.Height())
	}
}

func TestSessionRenderUsesActiveMatrix(t *testing.T) {
	s := newTestSession(t, WithPreviewHeight(0))
	s.Load(solidPixmap(2, 2, 200, 100, 50, 255))

	s.SetMatrix(colormatrix.Invert())
	out, err := s.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	r, g, b, a := out.GetPixel(1, 1)
	if r != 55 || g != 155 || b != 205 || a != 255 {
		t.Errorf("pixel = (%d, %d, %d, %d), want (55, 155, 205, 255)", r, g, b, a)
	}
}

func TestSessionSetCoefficient(t *testing.T) {
	s := newTestSession(t)

	if err := s.SetCoefficient(4, "12.5"); err != nil {
		t.Fatalf("SetCoefficient() error = %v", err)
	}
	if got := s.Matrix()[4]; got != 12.5 {
		t.Errorf("Matrix()[4] = %v, want 12.5", got)
	}

	before := s.Matrix()
	if err := s.SetCoefficient(4, "oops"); err == nil {
		t.Error("SetCoefficient(\"oops\") should fail")
	}
	if err := s.SetCoefficient(25, "1"); err == nil {
		t.Error("SetCoefficient(25) should fail")
	}
	if s.Matrix() != before {
		t.Error("failed edits changed the matrix")
	}
}

func TestSessionReset(t *testing.T) {
	s := newTestSession(t)
	s.SetMatrix(colormatrix.Sepia())
	s.Reset()

	if s.Matrix() != colormatrix.Default() {
		t.Errorf("Matrix() after Reset = %v, want Default()", s.Matrix())
	}
}

func TestSessionApplyCustom(t *testing.T) {
	identityText := " [1, 0, 0, 0, 0,\n 0, 1, 0, 0, 0,\n 0, 0, 1, 0, 0,\n 0, 0, 0, 1, 0] "

	tests := []struct {
		name    string
		text    string
		applied bool
		want    colormatrix.ColorMatrix
	}{
		{"empty", "", false, colormatrix.Default()},
		{"too_short", "1,2,3", false, colormatrix.Default()},
		{"malformed", "[1..2, 0]", false, colormatrix.Default()},
		{"identity", identityText, true, colormatrix.Identity()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			s.SetCustomText(tt.text)

			if s.CustomText() != tt.text {
				t.Errorf("CustomText() = %q, want %q", s.CustomText(), tt.text)
			}
			if got := s.ApplyCustom(); got != tt.applied {
				t.Errorf("ApplyCustom() = %v, want %v", got, tt.applied)
			}
			if diff := cmp.Diff(tt.want, s.Matrix()); diff != "" {
				t.Errorf("Matrix() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSessionCopyTextReapplies(t *testing.T) {
	s := newTestSession(t)
	s.SetMatrix(colormatrix.Sepia())

	// The copied text feeds straight back into the custom field.
	s.SetCustomText(s.MatrixText())
	if !s.ApplyCustom() {
		t.Fatalf("ApplyCustom(%q) = false", s.MatrixText())
	}

	got := s.Matrix()
	sepia := colormatrix.Sepia()
	for i := range got {
		if d := got[i] - sepia[i]; d < -0.05 || d > 0.05 {
			t.Errorf("coefficient %d = %v, want within 0.05 of %v", i, got[i], sepia[i])
		}
	}
}

// Package preview holds the state behind an interactive color matrix
// preview: the loaded image, the active matrix and the custom-matrix text a
// user is editing.
package preview

import (
	"errors"

	colormatrix "github.com/noellered/color-matrix-visualizer"
	"github.com/noellered/color-matrix-visualizer/internal/imageio"
)

// MaxPreviewHeight is the height the transformed preview is scaled to.
const MaxPreviewHeight = 300

// ErrNoImage is returned by Render before an image has been loaded.
var ErrNoImage = errors.New("preview: no image loaded")

// Session is the presentation-layer state of one preview.
//
// The active matrix is a value owned by the Session and copied into the
// Transformer on every Render. Session is not safe for concurrent use; the
// Transformer it wraps is.
type Session struct {
	transformer *colormatrix.Transformer
	height      int

	matrix  colormatrix.ColorMatrix
	custom  string
	source  *colormatrix.Pixmap
	preview *colormatrix.Pixmap
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithPreviewHeight overrides MaxPreviewHeight. Non-positive values keep
// the source height.
func WithPreviewHeight(h int) SessionOption {
	return func(s *Session) {
		s.height = h
	}
}

// NewSession creates a session starting from colormatrix.Default().
func NewSession(t *colormatrix.Transformer, opts ...SessionOption) *Session {
	s := &Session{
		transformer: t,
		height:      MaxPreviewHeight,
		matrix:      colormatrix.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the source image. The preview copy is scaled to the
// session's preview height, keeping the aspect ratio.
func (s *Session) Load(pm *colormatrix.Pixmap) {
	s.source = pm
	s.preview = imageio.FitHeight(pm, s.height)
	colormatrix.Logger().Info("preview: image loaded",
		"width", pm.Width(), "height", pm.Height(),
		"previewWidth", s.preview.Width(), "previewHeight", s.preview.Height())
}

// Source returns the unscaled image, or nil.
func (s *Session) Source() *colormatrix.Pixmap {
	return s.source
}

// Matrix returns a copy of the active matrix.
func (s *Session) Matrix() colormatrix.ColorMatrix {
	return s.matrix
}

// MatrixText returns the one-decimal text form of the active matrix, as
// shown next to the copy button.
func (s *Session) MatrixText() string {
	return s.matrix.String()
}

// SetMatrix replaces the active matrix.
func (s *Session) SetMatrix(m colormatrix.ColorMatrix) {
	s.matrix = m
}

// SetCoefficient applies an edit of one coefficient field. Invalid text
// leaves the matrix unchanged.
func (s *Session) SetCoefficient(i int, text string) error {
	m, err := s.matrix.WithField(i, text)
	if err != nil {
		return err
	}
	s.matrix = m
	return nil
}

// Reset restores the default matrix.
func (s *Session) Reset() {
	s.matrix = colormatrix.Default()
	colormatrix.Logger().Info("preview: matrix reset")
}

// SetCustomText stores the contents of the custom-matrix text field.
func (s *Session) SetCustomText(text string) {
	s.custom = text
}

// CustomText returns the contents of the custom-matrix text field.
func (s *Session) CustomText() string {
	return s.custom
}

// ApplyCustom replaces the active matrix with the custom text if it
// validates, and reports whether it did. Empty or malformed text leaves the
// active matrix untouched.
func (s *Session) ApplyCustom() bool {
	if s.custom == "" || !colormatrix.Validate(s.custom) {
		return false
	}
	s.matrix = colormatrix.ParseUnchecked(s.custom)
	return true
}

// Render transforms the scaled preview with the active matrix.
func (s *Session) Render() (*colormatrix.Pixmap, error) {
	if s.preview == nil {
		return nil, ErrNoImage
	}
	return s.transformer.Apply(s.preview, s.matrix)
}

// RenderFull transforms the unscaled source with the active matrix.
func (s *Session) RenderFull() (*colormatrix.Pixmap, error) {
	if s.source == nil {
		return nil, ErrNoImage
	}
	return s.transformer.Apply(s.source, s.matrix)
}

// Package colormatrix previews 4x5 color matrix transforms on RGBA8 images.
//
// # Overview
//
// The package has two halves:
//   - Parsing: Validate, Parse and ParseUnchecked turn user-edited text such
//     as "[1, 0, 0, 0, 0, ...]" into a ColorMatrix of 20 coefficients.
//   - Transforming: Apply and ApplyTo run a ColorMatrix over a flat RGBA8
//     buffer, clamping every channel to [0, 255].
//
// # Quick Start
//
//	m, err := colormatrix.Parse(text)
//	if err != nil {
//	    return err // keep the previous matrix
//	}
//	out, err := colormatrix.Apply(pixels, m)
//
// # Check, Then Parse
//
// Interactive callers that only need a yes/no answer use Validate and, on
// true, ParseUnchecked. Parse combines both and reports why text was
// rejected. Either way a rejected text must leave the caller's current
// matrix in place.
//
// # Rounding
//
// Channel sums are computed in float64, clamped to [0, 255] and rounded to
// the nearest integer, halves up. The identity matrix is therefore an exact
// no-op.
//
// # Architecture
//
//   - Public API: ColorMatrix, Pixmap, Transformer, presets
//   - internal/parallel: worker pool for splitting large images
//   - internal/imageio: file decoding, encoding and preview scaling
//   - internal/preview: the state behind an interactive preview
//   - cmd/colormatrix: command-line front end
package colormatrix

// Version is the current version of the library.
const Version = "0.1.0"

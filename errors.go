package colormatrix

import "errors"

// Engine errors.
var (
	// ErrMalformedMatrixText is returned by Parse when the text fails the
	// grammar, does not hold exactly 20 values, or holds a non-finite value.
	ErrMalformedMatrixText = errors.New("colormatrix: malformed matrix text")

	// ErrBufferLength is returned when a pixel buffer is not a whole number
	// of RGBA pixels, or when source and destination lengths differ.
	ErrBufferLength = errors.New("colormatrix: invalid pixel buffer length")

	// ErrIndexOutOfRange is returned when a coefficient index is not in [0, 20).
	ErrIndexOutOfRange = errors.New("colormatrix: coefficient index out of range")

	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("colormatrix: invalid dimensions")
)

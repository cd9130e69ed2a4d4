package colormatrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Size is the number of coefficients in a ColorMatrix.
const Size = 20

// ColorMatrix is a 4x5 color transformation matrix in row-major order:
//
//	[R']   [m0  m1  m2  m3  m4 ]   [R]
//	[G'] = [m5  m6  m7  m8  m9 ] * [G]
//	[B']   [m10 m11 m12 m13 m14]   [B]
//	[A']   [m15 m16 m17 m18 m19]   [A]
//	                               [1]
//
// The fifth column is the bias added to each output channel. Channel values
// are in the [0, 255] range during transformation. Coefficients may be
// negative or exceed 1.
//
// ColorMatrix is a value type: passing it to Apply copies it, so callers can
// keep editing their own copy while a transform runs.
type ColorMatrix [Size]float64

// Descriptions labels each coefficient, indexed like ColorMatrix.
var Descriptions = [Size]string{
	"Red from Red", "Red from Green", "Red from Blue", "Red from Alpha", "Red Bias",
	"Green from Red", "Green from Green", "Green from Blue", "Green from Alpha", "Green Bias",
	"Blue from Red", "Blue from Green", "Blue from Blue", "Blue from Alpha", "Blue Bias",
	"Alpha from Red", "Alpha from Green", "Alpha from Blue", "Alpha from Alpha", "Alpha Bias",
}

// Identity returns the matrix that leaves every pixel unchanged.
func Identity() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0, // R
		0, 1, 0, 0, 0, // G
		0, 0, 1, 0, 0, // B
		0, 0, 0, 1, 0, // A
	}
}

// Default returns the matrix a new preview session starts from: a mild
// saturation and warmth boost with alpha passed through.
func Default() ColorMatrix {
	return ColorMatrix{
		1.5, 0.1, 0.1, 0.0, 0.0,
		0.2, 1.2, 0.2, 0.0, 0.0,
		0.3, 0.3, 1.2, 0.0, 0.0,
		0.0, 0.0, 0.0, 1.0, 0.0,
	}
}

// With returns a copy of m with coefficient i replaced by v.
// Returns ErrIndexOutOfRange (and m unchanged) if i is not in [0, Size).
func (m ColorMatrix) With(i int, v float64) (ColorMatrix, error) {
	if i < 0 || i >= Size {
		return m, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	m[i] = v
	return m, nil
}

// WithField returns a copy of m with coefficient i set from the edited text
// of a single input field. Surrounding whitespace is ignored. Text that is
// not a finite number leaves m unchanged and returns an error.
func (m ColorMatrix) WithField(i int, text string) (ColorMatrix, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return m, fmt.Errorf("colormatrix: field %d: %w", i, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return m, fmt.Errorf("colormatrix: field %d: %q is not finite", i, text)
	}
	return m.With(i, v)
}

// Row returns output-channel row r (0=R, 1=G, 2=B, 3=A): four channel
// weights followed by the bias.
func (m ColorMatrix) Row(r int) [5]float64 {
	var row [5]float64
	copy(row[:], m[r*5:r*5+5])
	return row
}

// IsIdentity returns true if m is the identity matrix.
func (m ColorMatrix) IsIdentity() bool {
	return m == Identity()
}

// Then returns the matrix equivalent to applying m first and next second,
// ignoring the clamp between the two steps.
func (m ColorMatrix) Then(next ColorMatrix) ColorMatrix {
	var r ColorMatrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 5; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += next[row*5+k] * m[k*5+col]
			}
			r[row*5+col] = sum
		}
		// Bias column also picks up next's own bias.
		r[row*5+4] += next[row*5+4]
	}
	return r
}

// String formats m as "[v0, v1, ..., v19]" with one decimal place per value.
// This is a display projection: Parse(m.String()) recovers m only to within
// 0.05 per coefficient.
func (m ColorMatrix) String() string {
	var sb strings.Builder
	sb.Grow(Size * 6)
	sb.WriteByte('[')
	for i, v := range m {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(v, 'f', 1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}

package colormatrix

import "fmt"

// Apply transforms every pixel of the RGBA8 buffer src by m and returns the
// result in a newly allocated buffer of the same length. src is not modified.
//
// For each pixel the four output channels are computed from the same input
// (r, g, b, a):
//
//	r' = clamp(m[0]*r  + m[1]*g  + m[2]*b  + m[3]*a  + m[4])
//	g' = clamp(m[5]*r  + m[6]*g  + m[7]*b  + m[8]*a  + m[9])
//	b' = clamp(m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14])
//	a' = clamp(m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19])
//
// Sums are taken in float64, clamped to [0, 255] and then rounded to the
// nearest integer (halves round up). A NaN sum, possible only with NaN
// coefficients, yields 0.
//
// Returns ErrBufferLength if len(src) is not a multiple of 4.
func Apply(src []uint8, m ColorMatrix) ([]uint8, error) {
	if len(src)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of pixels", ErrBufferLength, len(src))
	}
	dst := make([]uint8, len(src))
	transformPixels(dst, src, &m)
	return dst, nil
}

// ApplyTo is like Apply but writes into dst, which must have the same length
// as src. dst may be src itself for an in-place transform. On error nothing
// is written.
func ApplyTo(dst, src []uint8, m ColorMatrix) error {
	if len(src)%4 != 0 {
		return fmt.Errorf("%w: %d bytes is not a whole number of pixels", ErrBufferLength, len(src))
	}
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst has %d bytes, src has %d", ErrBufferLength, len(dst), len(src))
	}
	transformPixels(dst, src, &m)
	return nil
}

// transformPixels is the per-pixel kernel. dst and src have equal lengths,
// a multiple of 4, and are either disjoint or identical.
func transformPixels(dst, src []uint8, m *ColorMatrix) {
	for i := 0; i+3 < len(src); i += 4 {
		// Snapshot the pixel before any write so in-place use is safe.
		r := float64(src[i+0])
		g := float64(src[i+1])
		b := float64(src[i+2])
		a := float64(src[i+3])

		nr := m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4]
		ng := m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9]
		nb := m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14]
		na := m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19]

		dst[i+0] = clampUint8(nr)
		dst[i+1] = clampUint8(ng)
		dst[i+2] = clampUint8(nb)
		dst[i+3] = clampUint8(na)
	}
}

// clampUint8 clamps v to [0, 255] and rounds to the nearest integer.
// NaN fails both comparisons below and falls through to 0.
func clampUint8(v float64) uint8 {
	if v >= 255 {
		return 255
	}
	if v > 0 {
		return uint8(v + 0.5)
	}
	return 0
}

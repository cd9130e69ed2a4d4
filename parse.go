package colormatrix

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// matrixGrammar matches a comma-separated list of plain decimal literals:
// optional sign, digits with an optional point ("5", "5.", "5.5") or a point
// followed by digits (".5"). No exponents, no empty fields.
var matrixGrammar = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)(,[+-]?(\d+\.?\d*|\.\d+))*$`)

// Normalize strips every '[' and ']' and every whitespace rune from text.
// Validate, Parse and ParseUnchecked all operate on the normalized form, so
// " [ 1 , 2 ] " and "1,2" are equivalent.
func Normalize(text string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if r == '[' || r == ']' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text))
}

// Validate reports whether text describes a well-formed ColorMatrix.
//
// Malformed text is an expected outcome, not an error: Validate returns
// false and logs the failing check at debug level. Callers that get false
// must keep their current matrix.
func Validate(text string) bool {
	_, err := check(text)
	return err == nil
}

// Parse converts text into a ColorMatrix, running the same checks as
// Validate. On failure it returns the zero matrix and an error wrapping
// ErrMalformedMatrixText that names the failing check.
func Parse(text string) (ColorMatrix, error) {
	return check(text)
}

// ParseUnchecked converts text into a ColorMatrix without validation.
// Fields that do not parse become NaN; fields past the twentieth are ignored
// and missing fields stay zero. The result is only meaningful when
// Validate(text) is true.
func ParseUnchecked(text string) ColorMatrix {
	var m ColorMatrix
	for i, field := range strings.Split(Normalize(text), ",") {
		if i >= Size {
			break
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			v = math.NaN()
		}
		m[i] = v
	}
	return m
}

// check runs every validation step in order and returns the parsed matrix
// when all of them pass.
func check(text string) (ColorMatrix, error) {
	cleaned := Normalize(text)
	log := Logger()

	if !matrixGrammar.MatchString(cleaned) {
		log.Debug("matrix text rejected", "text", cleaned, "check", "grammar")
		return ColorMatrix{}, fmt.Errorf("%w: %q is not a comma-separated list of numbers", ErrMalformedMatrixText, cleaned)
	}

	fields := strings.Split(cleaned, ",")
	if len(fields) != Size {
		log.Debug("matrix text rejected", "text", cleaned, "check", "count", "values", len(fields))
		return ColorMatrix{}, fmt.Errorf("%w: got %d values, want %d", ErrMalformedMatrixText, len(fields), Size)
	}

	var m ColorMatrix
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			log.Debug("matrix text rejected", "text", cleaned, "check", "number", "field", field)
			return ColorMatrix{}, fmt.Errorf("%w: value %d (%q) is not a finite number", ErrMalformedMatrixText, i, field)
		}
		m[i] = v
	}
	return m, nil
}

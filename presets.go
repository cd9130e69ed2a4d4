package colormatrix

import (
	"math"
	"sort"
)

// Brightness scales the color channels.
// factor: 0.0 = black, 1.0 = unchanged, 2.0 = twice as bright
func Brightness(factor float64) ColorMatrix {
	return ColorMatrix{
		factor, 0, 0, 0, 0,
		0, factor, 0, 0, 0,
		0, 0, factor, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Contrast stretches the color channels around mid-gray.
// factor: 0.0 = gray, 1.0 = unchanged, 2.0 = high contrast
func Contrast(factor float64) ColorMatrix {
	// (color - 128) * factor + 128
	offset := 128 * (1 - factor)
	return ColorMatrix{
		factor, 0, 0, 0, offset,
		0, factor, 0, 0, offset,
		0, 0, factor, 0, offset,
		0, 0, 0, 1, 0,
	}
}

// Saturation blends between luminance and the original color.
// factor: 0.0 = grayscale, 1.0 = unchanged, 2.0 = oversaturated
func Saturation(factor float64) ColorMatrix {
	// Rec. 709 luminance weights
	const (
		lumR = 0.2126
		lumG = 0.7152
		lumB = 0.0722
	)
	inv := 1 - factor
	return ColorMatrix{
		lumR*inv + factor, lumG * inv, lumB * inv, 0, 0,
		lumR * inv, lumG*inv + factor, lumB * inv, 0, 0,
		lumR * inv, lumG * inv, lumB*inv + factor, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Grayscale converts to Rec. 709 luminance.
func Grayscale() ColorMatrix {
	return Saturation(0)
}

// Sepia applies a sepia tone.
func Sepia() ColorMatrix {
	return ColorMatrix{
		0.393, 0.769, 0.189, 0, 0,
		0.349, 0.686, 0.168, 0, 0,
		0.272, 0.534, 0.131, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Invert inverts the color channels and keeps alpha.
func Invert() ColorMatrix {
	return ColorMatrix{
		-1, 0, 0, 0, 255,
		0, -1, 0, 0, 255,
		0, 0, -1, 0, 255,
		0, 0, 0, 1, 0,
	}
}

// HueRotate rotates hue by the given angle in degrees.
func HueRotate(degrees float64) ColorMatrix {
	rad := degrees * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)

	const (
		lumR = 0.213
		lumG = 0.715
		lumB = 0.072
	)

	return ColorMatrix{
		lumR + cos*(1-lumR) - sin*lumR, lumG - cos*lumG - sin*lumG, lumB - cos*lumB + sin*(1-lumB), 0, 0,
		lumR - cos*lumR + sin*0.143, lumG + cos*(1-lumG) + sin*0.140, lumB - cos*lumB - sin*0.283, 0, 0,
		lumR - cos*lumR - sin*(1-lumR), lumG - cos*lumG + sin*lumG, lumB + cos*(1-lumB) + sin*lumB, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Opacity multiplies alpha by factor.
// factor: 0.0 = fully transparent, 1.0 = unchanged
func Opacity(factor float64) ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, factor, 0,
	}
}

// Tint blends the image toward the color (r, g, b), each in [0, 1], with
// weight a.
func Tint(r, g, b, a float64) ColorMatrix {
	inv := 1 - a
	return ColorMatrix{
		inv, 0, 0, 0, r * 255 * a,
		0, inv, 0, 0, g * 255 * a,
		0, 0, inv, 0, b * 255 * a,
		0, 0, 0, 1, 0,
	}
}

// presets holds the fixed, parameterless matrices addressable by name.
var presets = map[string]func() ColorMatrix{
	"identity":  Identity,
	"default":   Default,
	"grayscale": Grayscale,
	"sepia":     Sepia,
	"invert":    Invert,
}

// PresetNames returns the names accepted by Preset, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns the named fixed matrix.
func Preset(name string) (ColorMatrix, bool) {
	fn, ok := presets[name]
	if !ok {
		return ColorMatrix{}, false
	}
	return fn(), true
}

package accessibility

import (
	"math"

	"github.com/jmylchreest/icv/internal/colour"
)

// DefaultMinRatio is the contrast target used for text in accessible mode.
const DefaultMinRatio = 6.0

// ContrastOptions tunes EnsureContrastWith.
type ContrastOptions struct {
	// Step is the HSL lightness change per attempt, on a 0-1 scale.
	Step float64
	// MaxAttempts bounds the search.
	MaxAttempts int
	// Saturation (HSL percent) every candidate is rebuilt with. The input
	// saturation is discarded; only the hue is kept.
	Saturation float64
}

// DefaultContrastOptions returns the options used by EnsureContrast.
func DefaultContrastOptions() ContrastOptions {
	return ContrastOptions{
		Step:        0.05,
		MaxAttempts: 20,
		Saturation:  30,
	}
}

// EnsureContrast steps the lightness of foreground away from background until
// their contrast reaches minRatio, using DefaultContrastOptions.
func EnsureContrast(backgroundHex, foregroundHex string, minRatio float64) string {
	return EnsureContrastWith(backgroundHex, foregroundHex, minRatio, DefaultContrastOptions())
}

// EnsureContrastWith is EnsureContrast with explicit options.
//
// If the pair already meets minRatio the foreground is returned unchanged.
// Otherwise the foreground is darkened on light backgrounds (HSL L > 50) and
// lightened on dark ones, one step per attempt, until minRatio is met or
// MaxAttempts is exhausted. The result is best effort: callers must not assume
// the returned colour meets minRatio.
func EnsureContrastWith(backgroundHex, foregroundHex string, minRatio float64, opts ContrastOptions) string {
	ratio := colour.ContrastRatio(backgroundHex, foregroundHex)
	if ratio >= minRatio {
		return foregroundHex
	}

	darken := colour.SampleOf(backgroundHex).L > 50
	fg := colour.SampleOf(foregroundHex)
	_, _, lightness := colour.RGBToHSL(fg.RGB())

	result := foregroundHex
	for attempt := 0; ratio < minRatio && attempt < opts.MaxAttempts; attempt++ {
		if darken {
			lightness = math.Max(0, lightness-opts.Step)
		} else {
			lightness = math.Min(1, lightness+opts.Step)
		}

		result = colour.HSLToRGB(float64(fg.H), opts.Saturation, lightness*100).Hex()
		ratio = colour.ContrastRatio(backgroundHex, result)
	}

	return result
}

// Package icv computes the Visual Load Index (ICV), a 0-100 heuristic of the
// eye strain a background/foreground pair is likely to cause.
package icv

import (
	"math"

	"github.com/jmylchreest/icv/internal/colour"
)

// Term weights. They sum to 1 so the weighted score stays within 0-100.
const (
	WeightSaturation = 0.4
	WeightContrast   = 0.3
	WeightBrightness = 0.2
	WeightHue        = 0.1
)

// Terms holds the raw (unweighted) inputs of the score.
type Terms struct {
	// Saturation is the background HSV saturation (0-100).
	Saturation int `json:"saturation"`
	// Contrast is the bucketed contrast penalty: 100 (<3:1), 60 (<4.5:1),
	// 30 (>18:1, halation) or 10.
	Contrast int `json:"contrast"`
	// Brightness is 40 for near-white or near-black backgrounds, else 15.
	Brightness int `json:"brightness"`
	// Hue is 30 for saturated blue backgrounds, else 0.
	Hue int `json:"hue"`
	// ContrastRatio is the WCAG ratio the contrast bucket was derived from.
	ContrastRatio float64 `json:"contrast_ratio"`
}

// Weighted returns the weighted sum of the terms clamped to [0,100], unrounded.
func (t Terms) Weighted() float64 {
	sum := float64(t.Saturation)*WeightSaturation +
		float64(t.Contrast)*WeightContrast +
		float64(t.Brightness)*WeightBrightness +
		float64(t.Hue)*WeightHue
	return math.Min(100, math.Max(0, sum))
}

// ComputeTerms derives the score terms for foreground text on background.
func ComputeTerms(backgroundHex, foregroundHex string) Terms {
	bg := colour.SampleOf(backgroundHex)
	ratio := colour.ContrastRatio(foregroundHex, backgroundHex)

	return Terms{
		Saturation:    bg.S,
		Contrast:      contrastPenalty(ratio),
		Brightness:    brightnessPenalty(bg),
		Hue:           huePenalty(bg),
		ContrastRatio: ratio,
	}
}

// Calculate returns the base ICV score for foreground text on background.
func Calculate(backgroundHex, foregroundHex string) int {
	return int(math.Round(ComputeTerms(backgroundHex, foregroundHex).Weighted()))
}

// Scale applies a mode multiplier to a base score. The multiplier is applied to
// the already rounded base score and the product is rounded again, then
// clamped to [0,100].
func Scale(base int, multiplier float64) int {
	scaled := math.Round(float64(base) * multiplier)
	return int(math.Min(100, math.Max(0, scaled)))
}

func contrastPenalty(ratio float64) int {
	switch {
	case ratio < 3:
		return 100
	case ratio < 4.5:
		return 60
	case ratio > 18:
		return 30
	default:
		return 10
	}
}

func brightnessPenalty(bg colour.Sample) int {
	if bg.V > 95 || bg.V < 5 {
		return 40
	}
	return 15
}

func huePenalty(bg colour.Sample) int {
	if bg.H > 190 && bg.H < 270 && bg.S > 20 {
		return 30
	}
	return 0
}

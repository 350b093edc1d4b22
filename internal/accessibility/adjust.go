// Package accessibility adjusts UI palettes toward lower visual load: it
// replaces pure black and white, desaturates, and steps text lightness until a
// minimum contrast ratio is reached.
package accessibility

import (
	"math"

	"github.com/jmylchreest/icv/internal/colour"
)

// Replacement colours for the extremes of the lightness range.
const (
	NearBlack = "#111827"
	NearWhite = "#f5f7fa"
)

// Lightness bounds (HSL, percent) outside which a colour is replaced.
const (
	minLightness = 5
	maxLightness = 98
)

// ClampBrightness replaces near-pure black with NearBlack and near-pure white
// with NearWhite. Any other colour is returned exactly as given.
func ClampBrightness(hex string) string {
	s := colour.SampleOf(hex)
	switch {
	case s.L < minLightness:
		return NearBlack
	case s.L > maxLightness:
		return NearWhite
	default:
		return hex
	}
}

// ReduceSaturation scales the HSL saturation of hex by (1-factor) and returns
// the re-encoded colour. factor is clamped to [0,1]: 0 keeps the colour, 1
// yields its grey of equal lightness.
func ReduceSaturation(hex string, factor float64) string {
	factor = math.Min(1, math.Max(0, factor))

	h, s, l := colour.RGBToHSL(colour.HexToRGB(hex))
	s = math.Max(0, s*(1-factor))

	return colour.HSLToRGB(h, s*100, l*100).Hex()
}

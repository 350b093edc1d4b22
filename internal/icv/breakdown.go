package icv

import (
	"math"

	"github.com/jmylchreest/icv/internal/colour"
)

// Breakdown is a per-factor view of the load a pair produces, each axis
// normalised so that 100 is the highest load.
type Breakdown struct {
	Saturation        float64 `json:"saturation"`
	ExtremeBrightness float64 `json:"extreme_brightness"`
	InverseContrast   float64 `json:"inverse_contrast"`
	BlueTone          float64 `json:"blue_tone"`
}

// ComputeBreakdown derives the breakdown for foreground text on background.
func ComputeBreakdown(backgroundHex, foregroundHex string) Breakdown {
	bg := colour.SampleOf(backgroundHex)
	ratio := colour.ContrastRatio(backgroundHex, foregroundHex)

	blue := 10.0
	if bg.H > 200 && bg.H < 260 {
		blue = 80
	}

	return Breakdown{
		Saturation:        float64(bg.S),
		ExtremeBrightness: math.Abs(float64(bg.V)-50) * 2,
		InverseContrast:   clamp(math.Max(0, 21-ratio)*4, 0, 100),
		BlueTone:          blue,
	}
}

// ElementHeat estimates how much strain an element with colour backgroundHex
// and content foregroundHex causes, from 0 (none) to 1.
func ElementHeat(backgroundHex, foregroundHex string) float64 {
	bg := colour.SampleOf(backgroundHex)
	ratio := colour.ContrastRatio(backgroundHex, foregroundHex)

	heat := float64(bg.S) / 100 * 0.5
	if ratio < 3 {
		heat += 0.4
	}
	if ratio > 18 {
		heat += 0.3
	}
	if bg.H > 200 && bg.H < 250 && bg.S > 50 {
		heat += 0.3
	}

	return math.Min(1, heat)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

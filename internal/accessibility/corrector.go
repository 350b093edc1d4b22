package accessibility

import (
	"github.com/jmylchreest/icv/internal/colour"
)

// Factors are the per-role saturation reductions applied by a Corrector.
type Factors struct {
	Background float64 `json:"background"`
	Text       float64 `json:"text"`
	Primary    float64 `json:"primary"`
	Secondary  float64 `json:"secondary"`
}

// DefaultFactors returns the standard reductions: 20% for background, text
// and secondary, 30% for the primary accent.
func DefaultFactors() Factors {
	return Factors{Background: 0.2, Text: 0.2, Primary: 0.3, Secondary: 0.2}
}

// Corrector runs the accessible-mode correction pipeline over a palette.
type Corrector struct {
	Factors  Factors
	MinRatio float64
	Contrast ContrastOptions
}

// NewCorrector creates a Corrector with the default factors, a 6:1 text
// target and default contrast options.
func NewCorrector() *Corrector {
	return &Corrector{
		Factors:  DefaultFactors(),
		MinRatio: DefaultMinRatio,
		Contrast: DefaultContrastOptions(),
	}
}

// Correct returns the corrected copy of p:
//  1. background and text brightness are clamped away from pure black/white;
//  2. all four colours are desaturated by their factor;
//  3. text is stepped until it reaches MinRatio against the new background.
//
// Primary and secondary never go through contrast enforcement.
func (c *Corrector) Correct(p colour.Palette) colour.Palette {
	bg := ClampBrightness(p.Background)
	text := ClampBrightness(p.Text)

	out := colour.Palette{
		Background: ReduceSaturation(bg, c.Factors.Background),
		Text:       ReduceSaturation(text, c.Factors.Text),
		Primary:    ReduceSaturation(p.Primary, c.Factors.Primary),
		Secondary:  ReduceSaturation(p.Secondary, c.Factors.Secondary),
	}
	out.Text = EnsureContrastWith(out.Background, out.Text, c.MinRatio, c.Contrast)

	return out
}

package colour

import (
	"math"
)

// Sample is the derived view of a single hex colour used by the scorer.
// S is the HSV saturation, not the HSL one: it tracks perceived colour
// intensity, which is what the visual load heuristic penalises.
type Sample struct {
	Hex string `json:"hex"`
	R   uint8  `json:"r"`
	G   uint8  `json:"g"`
	B   uint8  `json:"b"`
	H   int    `json:"h"` // 0-359
	S   int    `json:"s"` // HSV saturation, 0-100
	L   int    `json:"l"` // HSL lightness, 0-100
	V   int    `json:"v"` // HSV value, 0-100
}

// RGB returns the sample's channels.
func (s Sample) RGB() RGB {
	return RGB{R: s.R, G: s.G, B: s.B}
}

// SampleOf derives a Sample from hex. Malformed input yields the black sample.
func SampleOf(hex string) Sample {
	return sampleFromRGB(hex, HexToRGB(hex))
}

func sampleFromRGB(hex string, rgb RGB) Sample {
	hsx := RGBToHSLHSV(rgb)
	return Sample{
		Hex: hex,
		R:   rgb.R,
		G:   rgb.G,
		B:   rgb.B,
		H:   hsx.H,
		S:   hsx.SHSV,
		L:   hsx.L,
		V:   hsx.V,
	}
}

// HSLHSV holds the rounded HSL and HSV components of a colour.
type HSLHSV struct {
	H    int `json:"h"`
	SHSL int `json:"s_hsl"`
	L    int `json:"l"`
	V    int `json:"v"`
	SHSV int `json:"s_hsv"`
}

// RGBToHSLHSV converts RGB to hue (degrees), HSL saturation and lightness and
// HSV saturation and value (percent), all rounded to the nearest integer.
func RGBToHSLHSV(rgb RGB) HSLHSV {
	h, sHSL, l := RGBToHSL(rgb)

	maxVal := float64(max(rgb.R, rgb.G, rgb.B)) / 255.0
	minVal := float64(min(rgb.R, rgb.G, rgb.B)) / 255.0

	sHSV := 0.0
	if maxVal != 0 {
		sHSV = (maxVal - minVal) / maxVal
	}

	hue := int(math.Round(h))
	if hue >= 360 {
		hue -= 360
	}

	return HSLHSV{
		H:    hue,
		SHSL: int(math.Round(sHSL * 100)),
		L:    int(math.Round(l * 100)),
		V:    int(math.Round(maxVal * 100)),
		SHSV: int(math.Round(sHSV * 100)),
	}
}

// RGBToHSL converts RGB to HSL colour space without rounding.
// Returns hue (0-360), saturation (0-1), lightness (0-1).
func RGBToHSL(rgb RGB) (h, s, l float64) {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	// Lightness.
	l = (maxVal + minVal) / 2.0

	// Achromatic colours have no hue or saturation.
	if delta == 0 {
		return 0, 0, l
	}

	if l > 0.5 {
		s = delta / (2.0 - maxVal - minVal)
	} else {
		s = delta / (maxVal + minVal)
	}

	// Hue.
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	// Normalise to [0,1) before scaling to degrees; scaling the sextant by 60
	// directly rounds differently at .5 ties.
	h /= 6
	h *= 360
	return h, s, l
}

// HSLToRGB converts HSL to RGB colour space.
// h is hue in degrees, s and l are percentages (0-100). Rounding happens only
// on the final 8-bit channels.
func HSLToRGB(h, s, l float64) RGB {
	h /= 360
	s /= 100
	l /= 100

	var r, g, b float64
	if s == 0 {
		// Achromatic (grey).
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q

		r = hueToRGB(p, q, h+1.0/3)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3)
	}

	return RGB{R: toChannel(r), G: toChannel(g), B: toChannel(b)}
}

// hueToRGB is a helper for HSL to RGB conversion; t is a hue fraction.
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func toChannel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// RelativeLuminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(rgb RGB) float64 {
	r := gammaCorrect(float64(rgb.R) / 255.0)
	g := gammaCorrect(float64(rgb.G) / 255.0)
	b := gammaCorrect(float64(rgb.B) / 255.0)

	// ITU-R BT.709 coefficients.
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect decodes an sRGB channel to linear light.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatioRGB calculates the WCAG 2.0 contrast ratio between two colours.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatioRGB(c1, c2 RGB) float64 {
	l1 := RelativeLuminance(c1)
	l2 := RelativeLuminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastRatio is ContrastRatioRGB over hex strings. Malformed input is
// treated as black.
func ContrastRatio(hexA, hexB string) float64 {
	return ContrastRatioRGB(HexToRGB(hexA), HexToRGB(hexB))
}

package colour

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRGBToHSLHSV(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want HSLHSV
	}{
		{name: "black", rgb: RGB{}, want: HSLHSV{}},
		{name: "white", rgb: RGB{255, 255, 255}, want: HSLHSV{L: 100, V: 100}},
		{name: "red", rgb: RGB{255, 0, 0}, want: HSLHSV{H: 0, SHSL: 100, L: 50, V: 100, SHSV: 100}},
		{name: "green", rgb: RGB{0, 255, 0}, want: HSLHSV{H: 120, SHSL: 100, L: 50, V: 100, SHSV: 100}},
		{name: "blue", rgb: RGB{0, 0, 255}, want: HSLHSV{H: 240, SHSL: 100, L: 50, V: 100, SHSV: 100}},
		{name: "grey", rgb: RGB{128, 128, 128}, want: HSLHSV{L: 50, V: 50}},
		{name: "tailwind blue", rgb: RGB{59, 130, 246}, want: HSLHSV{H: 217, SHSL: 91, L: 60, V: 96, SHSV: 76}},
		{name: "hue near 360 wraps", rgb: RGB{255, 0, 1}, want: HSLHSV{H: 0, SHSL: 100, L: 50, V: 100, SHSV: 100}},
		{name: "hue tie rounds up", rgb: RGB{46, 190, 184}, want: HSLHSV{H: 178, SHSL: 61, L: 46, V: 75, SHSV: 76}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, RGBToHSLHSV(tt.rgb)); diff != "" {
				t.Errorf("RGBToHSLHSV(%v) mismatch (-want +got):\n%s", tt.rgb, diff)
			}
		})
	}
}

func TestSampleOfUsesHSVSaturation(t *testing.T) {
	// #f8fafc has HSL saturation ~33% but HSV saturation ~2%.
	got := SampleOf("#f8fafc")
	want := Sample{Hex: "#f8fafc", R: 248, G: 250, B: 252, H: 210, S: 2, L: 98, V: 99}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SampleOf mismatch (-want +got):\n%s", diff)
	}
}

func TestSampleHueTie(t *testing.T) {
	// The fractional hue of #2ebeb8 is exactly 177.5 degrees once normalised.
	if got := SampleOf("#2ebeb8").H; got != 178 {
		t.Errorf("SampleOf(#2ebeb8).H = %d, want 178", got)
	}
}

func TestSampleRanges(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 51 {
			for b := 0; b < 256; b += 85 {
				s := SampleOf(RGB{uint8(r), uint8(g), uint8(b)}.Hex())
				if s.H < 0 || s.H >= 360 {
					t.Fatalf("%s: hue %d out of range", s.Hex, s.H)
				}
				for _, v := range []int{s.S, s.L, s.V} {
					if v < 0 || v > 100 {
						t.Fatalf("%s: component %d out of range", s.Hex, v)
					}
				}
			}
		}
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    RGB
	}{
		{name: "red", h: 0, s: 100, l: 50, want: RGB{255, 0, 0}},
		{name: "green", h: 120, s: 100, l: 50, want: RGB{0, 255, 0}},
		{name: "blue", h: 240, s: 100, l: 50, want: RGB{0, 0, 255}},
		{name: "mid grey rounds half up", h: 0, s: 0, l: 50, want: RGB{128, 128, 128}},
		{name: "black", h: 200, s: 40, l: 0, want: RGB{}},
		{name: "white", h: 200, s: 40, l: 100, want: RGB{255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSLToRGB(tt.h, tt.s, tt.l); got != tt.want {
				t.Errorf("HSLToRGB(%v, %v, %v) = %+v, want %+v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestHSLRoundTrip(t *testing.T) {
	for _, hex := range []string{"#3b82f6", "#e2e8f0", "#0f172a", "#808080", "#60a5fa", "#1e293b", "#ff7f11"} {
		h, s, l := RGBToHSL(HexToRGB(hex))
		if got := HSLToRGB(h, s*100, l*100).Hex(); got != hex {
			t.Errorf("HSL round trip of %s = %s", hex, got)
		}
	}
}

func TestRelativeLuminance(t *testing.T) {
	if got := RelativeLuminance(RGB{}); got != 0 {
		t.Errorf("black luminance = %v, want 0", got)
	}
	if got := RelativeLuminance(RGB{255, 255, 255}); math.Abs(got-1) > 1e-9 {
		t.Errorf("white luminance = %v, want 1", got)
	}
	// Green dominates the BT.709 weighting.
	if RelativeLuminance(RGB{0, 255, 0}) <= RelativeLuminance(RGB{255, 0, 0}) {
		t.Error("green should be brighter than red")
	}
}

func TestContrastRatio(t *testing.T) {
	if got := ContrastRatio("#000000", "#ffffff"); math.Abs(got-21) > 1e-9 {
		t.Errorf("black/white contrast = %v, want 21", got)
	}

	got := ContrastRatio("#f8fafc", "#0f172a")
	if got < 16.5 || got > 17.5 {
		t.Errorf("slate contrast = %v, want ~17", got)
	}

	pairs := [][2]string{
		{"#f8fafc", "#0f172a"},
		{"#3b82f6", "#ffffff"},
		{"#e2e8f0", "#1e293b"},
		{"#123456", "bogus"},
	}
	for _, p := range pairs {
		ab := ContrastRatio(p[0], p[1])
		ba := ContrastRatio(p[1], p[0])
		if ab != ba {
			t.Errorf("ContrastRatio(%s, %s) = %v but reversed = %v", p[0], p[1], ab, ba)
		}
		if ab < 1 {
			t.Errorf("ContrastRatio(%s, %s) = %v, below 1", p[0], p[1], ab)
		}
	}

	for _, hex := range []string{"#000000", "#ffffff", "#3b82f6", "#abcdef"} {
		if got := ContrastRatio(hex, hex); got != 1 {
			t.Errorf("ContrastRatio(%s, %s) = %v, want 1", hex, hex, got)
		}
	}
}

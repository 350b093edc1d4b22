package colour

import (
	"errors"
	"strings"
	"testing"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGB
	}{
		{name: "with hash", hex: "#1a2b3c", want: RGB{R: 26, G: 43, B: 60}},
		{name: "without hash", hex: "1a2b3c", want: RGB{R: 26, G: 43, B: 60}},
		{name: "upper case", hex: "#1A2B3C", want: RGB{R: 26, G: 43, B: 60}},
		{name: "white", hex: "#ffffff", want: RGB{R: 255, G: 255, B: 255}},
		{name: "shorthand is black", hex: "#abc", want: RGB{}},
		{name: "alpha is black", hex: "#1a2b3c4d", want: RGB{}},
		{name: "non hex is black", hex: "#zzzzzz", want: RGB{}},
		{name: "signed digits are black", hex: "#+1+2+3", want: RGB{}},
		{name: "empty is black", hex: "", want: RGB{}},
		{name: "double hash is black", hex: "##12345", want: RGB{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HexToRGB(tt.hex); got != tt.want {
				t.Errorf("HexToRGB(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	inputs := []string{"#000000", "#FFFFFF", "0f172a", "#3B82F6", "e2e8f0", "#010203", "#fedcba"}
	for _, in := range inputs {
		want := strings.ToLower(in)
		if !strings.HasPrefix(want, "#") {
			want = "#" + want
		}
		if got := HexToRGB(in).Hex(); got != want {
			t.Errorf("HexToRGB(%q).Hex() = %q, want %q", in, got, want)
		}
	}
}

func TestParseHexStrict(t *testing.T) {
	if _, err := ParseHex("#0f172a"); err != nil {
		t.Fatalf("ParseHex valid input: unexpected error %v", err)
	}

	_, err := ParseHex("#12345g")
	if err == nil {
		t.Fatal("ParseHex(#12345g) expected error")
	}
	if !errors.Is(err, ErrInvalidColorFormat) {
		t.Errorf("error %v does not wrap ErrInvalidColorFormat", err)
	}
	var invalid *InvalidColorError
	if !errors.As(err, &invalid) {
		t.Fatalf("error %v is not *InvalidColorError", err)
	}
	if invalid.Input != "#12345g" {
		t.Errorf("InvalidColorError.Input = %q, want %q", invalid.Input, "#12345g")
	}
}

func TestParseResult(t *testing.T) {
	res := Parse("not-a-colour")
	if res.Valid {
		t.Fatal("Parse(not-a-colour) reported valid")
	}
	if res.Raw != "not-a-colour" {
		t.Errorf("Raw = %q", res.Raw)
	}
	if res.Sample.RGB() != (RGB{}) {
		t.Errorf("invalid input should carry the black sample, got %+v", res.Sample)
	}

	res = Parse("#808080")
	if !res.Valid || res.Err != nil {
		t.Fatalf("Parse(#808080) = %+v, want valid", res)
	}
	if res.Sample.L != 50 {
		t.Errorf("Parse(#808080).Sample.L = %d, want 50", res.Sample.L)
	}
}

func TestDecodePolicy(t *testing.T) {
	sample, err := Decode("oops", SubstituteBlack)
	if err != nil {
		t.Fatalf("SubstituteBlack returned error: %v", err)
	}
	if sample.RGB() != (RGB{}) {
		t.Errorf("SubstituteBlack sample = %+v, want black", sample)
	}

	if _, err := Decode("oops", RejectInvalid); !errors.Is(err, ErrInvalidColorFormat) {
		t.Errorf("RejectInvalid error = %v, want ErrInvalidColorFormat", err)
	}

	if _, err := Decode("#f8fafc", RejectInvalid); err != nil {
		t.Errorf("RejectInvalid on valid input: %v", err)
	}
}

func TestResolveName(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{in: "SlateGray", want: "#708090", wantOK: true},
		{in: "white", want: "#ffffff", wantOK: true},
		{in: "#123456", want: "#123456", wantOK: false},
		{in: "notacolour", want: "notacolour", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ResolveName(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ResolveName(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestInvalidPolicyString(t *testing.T) {
	if got := SubstituteBlack.String(); got != "substitute-black" {
		t.Errorf("SubstituteBlack.String() = %q", got)
	}
	if got := RejectInvalid.String(); got != "reject" {
		t.Errorf("RejectInvalid.String() = %q", got)
	}
}

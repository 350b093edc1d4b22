package colour

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat is returned by strict parsing when the input is not a
// six digit hex colour.
var ErrInvalidColorFormat = errors.New("invalid colour format")

// InvalidColorError records the raw input that failed to parse.
type InvalidColorError struct {
	Input  string
	Reason string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid colour %q: %s", e.Input, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidColorFormat).
func (e *InvalidColorError) Unwrap() error {
	return ErrInvalidColorFormat
}

// InvalidPolicy selects how malformed hex input is handled.
type InvalidPolicy int

const (
	// SubstituteBlack silently replaces malformed input with #000000.
	SubstituteBlack InvalidPolicy = iota
	// RejectInvalid reports malformed input as an *InvalidColorError.
	RejectInvalid
)

// String returns the policy name.
func (p InvalidPolicy) String() string {
	if p == RejectInvalid {
		return "reject"
	}
	return "substitute-black"
}

// ParseHex parses a six digit hex colour with an optional leading '#'.
// Digits are case-insensitive. Shorthand (#abc) and alpha forms are rejected.
func ParseHex(hex string) (RGB, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return RGB{}, &InvalidColorError{
			Input:  hex,
			Reason: fmt.Sprintf("expected 6 hex digits, got %d", len(digits)),
		}
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, &InvalidColorError{Input: hex, Reason: "non-hex digit"}
		}
		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// HexToRGB parses hex leniently: anything ParseHex rejects becomes black.
func HexToRGB(hex string) RGB {
	rgb, err := ParseHex(hex)
	if err != nil {
		return RGB{}
	}
	return rgb
}

// Result is the outcome of parsing a colour: either a parsed sample or the
// raw invalid input together with the black sample substituted for it.
type Result struct {
	Raw    string
	Sample Sample
	Valid  bool
	Err    error
}

// Parse parses hex and derives its sample without discarding validity.
func Parse(hex string) Result {
	rgb, err := ParseHex(hex)
	return Result{
		Raw:    hex,
		Sample: sampleFromRGB(hex, rgb),
		Valid:  err == nil,
		Err:    err,
	}
}

// Decode parses hex according to policy. Under SubstituteBlack the returned
// error is always nil.
func Decode(hex string, policy InvalidPolicy) (Sample, error) {
	res := Parse(hex)
	if !res.Valid && policy == RejectInvalid {
		return Sample{}, res.Err
	}
	return res.Sample, nil
}

// Package colour provides colour space conversion, WCAG contrast computation and
// the four-colour UI palette used by the visual load scorer.
package colour

import (
	"fmt"
)

// RGB represents a color in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Role names one of the four fixed slots of a Palette.
type Role string

const (
	RoleBackground Role = "background"
	RoleText       Role = "text"
	RolePrimary    Role = "primary"
	RoleSecondary  Role = "secondary"
)

// Roles returns the palette roles in display order.
func Roles() []Role {
	return []Role{RoleBackground, RoleText, RolePrimary, RoleSecondary}
}

// Palette is a UI colour scheme with exactly four named colours.
// Values are hex strings as supplied by the caller; they are only parsed when
// a sample, score or correction is computed.
type Palette struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
}

// LightPalette returns the default light scheme (slate background, dark text).
func LightPalette() Palette {
	return Palette{
		Background: "#f8fafc",
		Text:       "#0f172a",
		Primary:    "#3b82f6",
		Secondary:  "#e2e8f0",
	}
}

// DarkPalette returns the default dark scheme.
func DarkPalette() Palette {
	return Palette{
		Background: "#0f172a",
		Text:       "#f8fafc",
		Primary:    "#60a5fa",
		Secondary:  "#1e293b",
	}
}

// Get returns the hex value stored for role.
func (p Palette) Get(role Role) string {
	switch role {
	case RoleBackground:
		return p.Background
	case RoleText:
		return p.Text
	case RolePrimary:
		return p.Primary
	case RoleSecondary:
		return p.Secondary
	default:
		return ""
	}
}

// With returns a copy of the palette with role set to hex.
func (p Palette) With(role Role, hex string) Palette {
	switch role {
	case RoleBackground:
		p.Background = hex
	case RoleText:
		p.Text = hex
	case RolePrimary:
		p.Primary = hex
	case RoleSecondary:
		p.Secondary = hex
	}
	return p
}

// Samples derives a Sample for every role.
func (p Palette) Samples() map[Role]Sample {
	samples := make(map[Role]Sample, 4)
	for _, role := range Roles() {
		samples[role] = SampleOf(p.Get(role))
	}
	return samples
}

// Validate checks every colour against the given policy.
// With SubstituteBlack it never fails.
func (p Palette) Validate(policy InvalidPolicy) error {
	for _, role := range Roles() {
		if _, err := Decode(p.Get(role), policy); err != nil {
			return fmt.Errorf("%s: %w", role, err)
		}
	}
	return nil
}

package icv

import (
	"fmt"
	"strings"
)

// Mode is a viewing profile. Each mode scales the base score, and the
// accessible mode additionally corrects the palette before scoring.
type Mode string

const (
	ModeNormal      Mode = "normal"
	ModeAstigmatism Mode = "astigmatism"
	ModeMyopia      Mode = "myopia"
	ModeAccessible  Mode = "accessible"
)

// Modes returns every supported mode.
func Modes() []Mode {
	return []Mode{ModeNormal, ModeAstigmatism, ModeMyopia, ModeAccessible}
}

// ParseMode converts a mode name into a Mode. An empty name is normal.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "normal":
		return ModeNormal, nil
	case "astigmatism":
		return ModeAstigmatism, nil
	case "myopia", "miopia":
		return ModeMyopia, nil
	case "accessible":
		return ModeAccessible, nil
	default:
		return "", fmt.Errorf("unknown mode: %q (valid modes: %v)", name, Modes())
	}
}

// Multiplier returns the factor applied to the base score.
func (m Mode) Multiplier() float64 {
	switch m {
	case ModeAstigmatism:
		return 1.2
	case ModeMyopia:
		return 1.3
	case ModeAccessible:
		return 0.8
	default:
		return 1.0
	}
}

// Corrects reports whether the palette is run through accessibility
// correction before scoring.
func (m Mode) Corrects() bool {
	return m == ModeAccessible
}

// String implements pflag.Value.
func (m *Mode) String() string {
	if m == nil || *m == "" {
		return string(ModeNormal)
	}
	return string(*m)
}

// Set implements pflag.Value.
func (m *Mode) Set(value string) error {
	parsed, err := ParseMode(value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string {
	return "mode"
}

// Settings pairs a mode with the multiplier actually applied. The multiplier
// defaults to the mode's own but may be overridden.
type Settings struct {
	Mode       Mode    `json:"mode"`
	Multiplier float64 `json:"multiplier"`
}

// SettingsFor returns the default settings of m.
func SettingsFor(m Mode) Settings {
	return Settings{Mode: m, Multiplier: m.Multiplier()}
}

package icv

import (
	"fmt"

	"github.com/jmylchreest/icv/internal/colour"
)

// FindingLevel grades a diagnostic finding.
type FindingLevel string

const (
	FindingInfo     FindingLevel = "info"
	FindingWarning  FindingLevel = "warning"
	FindingCritical FindingLevel = "critical"
)

// Finding is one line of the quick diagnosis for a palette.
type Finding struct {
	Code    string       `json:"code"`
	Level   FindingLevel `json:"level"`
	Message string       `json:"message"`
}

// Diagnostic thresholds.
const (
	ChromaticFatigueSaturation = 70
	CriticalContrast           = 3.0
	HalationContrast           = 15.0
	AAContrast                 = 4.5
)

// Diagnose returns the findings for foreground text on background under mode.
// The profile modes (astigmatism, myopia) replace the contrast and chroma
// readouts with profile specific recommendations.
func Diagnose(mode Mode, backgroundHex, foregroundHex string) []Finding {
	bg := colour.SampleOf(backgroundHex)
	ratio := colour.ContrastRatio(backgroundHex, foregroundHex)

	var findings []Finding
	switch mode {
	case ModeAstigmatism:
		findings = append(findings,
			Finding{Code: "mode-astigmatism", Level: FindingWarning, Message: "Astigmatism mode active"},
			Finding{Code: "avoid-pure-white", Level: FindingInfo, Message: "Avoid pure white backgrounds (use #f8fafc or similar)"},
			Finding{Code: "heavier-weight", Level: FindingInfo, Message: "Use heavier text (font-weight 500+)"},
			Finding{Code: "min-contrast", Level: FindingInfo, Message: "Raise minimum contrast to 6:1"},
		)
	case ModeMyopia:
		findings = append(findings,
			Finding{Code: "mode-myopia", Level: FindingWarning, Message: "Myopia mode active"},
			Finding{Code: "avoid-thin-text", Level: FindingInfo, Message: "Avoid very thin text (use semibold)"},
			Finding{Code: "min-contrast", Level: FindingInfo, Message: "Raise minimum contrast to 6.5:1"},
			Finding{Code: "larger-text", Level: FindingInfo, Message: "Increase font size by 10-15%"},
		)
	default:
		level := FindingInfo
		if ratio < AAContrast {
			level = FindingWarning
		}
		findings = append(findings, Finding{
			Code:    "text-contrast",
			Level:   level,
			Message: fmt.Sprintf("Text/background contrast %.2f:1", ratio),
		})

		if bg.S > ChromaticFatigueSaturation {
			findings = append(findings, Finding{Code: "chromatic-fatigue", Level: FindingWarning, Message: "High chromatic fatigue (saturated background)"})
		} else {
			findings = append(findings, Finding{Code: "chromatic-fatigue", Level: FindingInfo, Message: "Low chromatic fatigue"})
		}
	}

	switch {
	case ratio < CriticalContrast:
		findings = append(findings, Finding{Code: "contrast-critical", Level: FindingCritical, Message: "Insufficient contrast: increase the brightness difference"})
	case ratio > HalationContrast:
		findings = append(findings, Finding{Code: "contrast-halation", Level: FindingWarning, Message: "Very high contrast can cause halos (astigmatism)"})
	default:
		findings = append(findings, Finding{Code: "contrast-ergonomic", Level: FindingInfo, Message: "Contrast is within the ergonomic range"})
	}

	return findings
}

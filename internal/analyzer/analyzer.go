// Package analyzer ties the colour, scoring and correction packages together:
// it corrects a palette when the mode asks for it, scores the active palette
// and assembles a report.
package analyzer

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/icv/internal/accessibility"
	"github.com/jmylchreest/icv/internal/colour"
	"github.com/jmylchreest/icv/internal/config"
	"github.com/jmylchreest/icv/internal/icv"
)

// PrimaryContent is the content colour assumed on primary elements (buttons,
// avatars) when estimating their heat.
const PrimaryContent = "#ffffff"

// HeaderHeatFactor scales background heat for the header region.
const HeaderHeatFactor = 0.5

// RoleSample pairs a palette role with its derived sample.
type RoleSample struct {
	Role   colour.Role   `json:"role"`
	Sample colour.Sample `json:"sample"`
}

// Heatmap is the estimated strain (0-1) of the main interface regions.
type Heatmap struct {
	Background float64 `json:"background"`
	Header     float64 `json:"header"`
	Primary    float64 `json:"primary"`
	Secondary  float64 `json:"secondary"`
}

// Report is the full analysis of one palette.
type Report struct {
	Mode       icv.Mode       `json:"mode"`
	Multiplier float64        `json:"multiplier"`
	Input      colour.Palette `json:"input"`
	Active     colour.Palette `json:"active"`
	Corrected  bool           `json:"corrected"`
	BaseScore  int            `json:"base_score"`
	Score      int            `json:"score"`
	Rating     icv.Rating     `json:"rating"`
	Terms      icv.Terms      `json:"terms"`
	Breakdown  icv.Breakdown  `json:"breakdown"`
	Heat       Heatmap        `json:"heat"`
	Findings   []icv.Finding  `json:"findings"`
	Samples    []RoleSample   `json:"samples"`
}

// Analyzer scores palettes under a fixed configuration. It holds no state
// between calls and is safe for concurrent use.
type Analyzer struct {
	config    config.Config
	corrector *accessibility.Corrector
	logger    hclog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithConfig sets the analysis configuration.
func WithConfig(c config.Config) Option {
	return func(a *Analyzer) {
		a.config = c
	}
}

// WithLogger sets the logger used for trace output.
func WithLogger(l hclog.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// New creates an Analyzer. Without options it uses config.Default() and
// discards log output.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		config: config.Default(),
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.corrector = a.config.Corrector()
	return a
}

// Analyze scores p under the configured mode.
func (a *Analyzer) Analyze(p colour.Palette) (*Report, error) {
	return a.AnalyzeWith(p, a.config.Settings())
}

// AnalyzeWith scores p under explicit mode settings.
func (a *Analyzer) AnalyzeWith(p colour.Palette, settings icv.Settings) (*Report, error) {
	if err := p.Validate(a.config.Policy()); err != nil {
		return nil, fmt.Errorf("invalid palette: %w", err)
	}

	active := p
	if settings.Mode.Corrects() {
		active = a.corrector.Correct(p)
		a.logger.Debug("palette corrected",
			"background", active.Background,
			"text", active.Text,
			"primary", active.Primary,
			"secondary", active.Secondary,
		)
	}

	terms := icv.ComputeTerms(active.Background, active.Text)
	base := icv.Calculate(active.Background, active.Text)
	score := icv.Scale(base, settings.Multiplier)

	a.logger.Debug("palette scored",
		"mode", settings.Mode,
		"base", base,
		"multiplier", settings.Multiplier,
		"score", score,
	)

	bySample := active.Samples()
	samples := make([]RoleSample, 0, len(bySample))
	for _, role := range colour.Roles() {
		samples = append(samples, RoleSample{Role: role, Sample: bySample[role]})
	}

	return &Report{
		Mode:       settings.Mode,
		Multiplier: settings.Multiplier,
		Input:      p,
		Active:     active,
		Corrected:  settings.Mode.Corrects(),
		BaseScore:  base,
		Score:      score,
		Rating:     icv.Rate(score),
		Terms:      terms,
		Breakdown:  icv.ComputeBreakdown(active.Background, active.Text),
		Heat:       heatmap(active),
		Findings:   icv.Diagnose(settings.Mode, active.Background, active.Text),
		Samples:    samples,
	}, nil
}

func heatmap(p colour.Palette) Heatmap {
	bg := icv.ElementHeat(p.Background, p.Text)
	return Heatmap{
		Background: bg,
		Header:     bg * HeaderHeatFactor,
		Primary:    icv.ElementHeat(p.Primary, PrimaryContent),
		Secondary:  icv.ElementHeat(p.Secondary, p.Text),
	}
}

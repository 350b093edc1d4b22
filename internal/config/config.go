// Package config holds analysis settings and loads them from the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/jmylchreest/icv/internal/accessibility"
	"github.com/jmylchreest/icv/internal/colour"
	"github.com/jmylchreest/icv/internal/icv"
)

// EnvPrefix prefixes every environment variable read by WithEnv.
const EnvPrefix = "ICV_"

// Config controls how palettes are parsed, corrected and scored.
type Config struct {
	// Mode selects the viewing profile (normal, astigmatism, myopia, accessible).
	Mode icv.Mode `mapstructure:"mode" json:"mode"`

	// Multiplier overrides the mode's score multiplier when non-zero.
	Multiplier float64 `mapstructure:"multiplier" json:"multiplier,omitempty"`

	// MinContrast is the text contrast target in accessible mode.
	MinContrast float64 `mapstructure:"min_contrast" json:"min_contrast"`

	// Strict rejects malformed hex colours instead of reading them as black.
	Strict bool `mapstructure:"strict" json:"strict"`

	// CorrectionSaturation is the HSL saturation (percent) text is rebuilt
	// with while its contrast is being enforced.
	CorrectionSaturation float64 `mapstructure:"correction_saturation" json:"correction_saturation"`

	// MaxAttempts bounds the contrast enforcement search.
	MaxAttempts int `mapstructure:"max_attempts" json:"max_attempts"`

	// Preview forces ANSI colour swatches on or off in text output.
	// Nil means auto-detect.
	Preview *bool `mapstructure:"preview" json:"preview,omitempty"`
}

// Default returns the default configuration.
func Default() Config {
	opts := accessibility.DefaultContrastOptions()
	return Config{
		Mode:                 icv.ModeNormal,
		MinContrast:          accessibility.DefaultMinRatio,
		CorrectionSaturation: opts.Saturation,
		MaxAttempts:          opts.MaxAttempts,
	}
}

// Validate checks the configuration for out-of-range values.
func (c Config) Validate() error {
	if _, err := icv.ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if c.Multiplier < 0 {
		return fmt.Errorf("multiplier must not be negative, got %v", c.Multiplier)
	}
	if c.MinContrast < 1 || c.MinContrast > 21 {
		return fmt.Errorf("min contrast must be between 1 and 21, got %v", c.MinContrast)
	}
	if c.CorrectionSaturation < 0 || c.CorrectionSaturation > 100 {
		return fmt.Errorf("correction saturation must be between 0 and 100, got %v", c.CorrectionSaturation)
	}
	if c.MaxAttempts < 0 || c.MaxAttempts > 1000 {
		return fmt.Errorf("max attempts must be between 0 and 1000, got %d", c.MaxAttempts)
	}
	return nil
}

// Settings returns the mode and effective multiplier.
func (c Config) Settings() icv.Settings {
	s := icv.SettingsFor(c.Mode)
	if c.Multiplier > 0 {
		s.Multiplier = c.Multiplier
	}
	return s
}

// Policy returns the invalid-colour policy implied by Strict.
func (c Config) Policy() colour.InvalidPolicy {
	if c.Strict {
		return colour.RejectInvalid
	}
	return colour.SubstituteBlack
}

// Corrector builds the accessibility corrector configured by c.
func (c Config) Corrector() *accessibility.Corrector {
	corrector := accessibility.NewCorrector()
	corrector.MinRatio = c.MinContrast
	corrector.Contrast.Saturation = c.CorrectionSaturation
	corrector.Contrast.MaxAttempts = c.MaxAttempts
	return corrector
}

// Builder provides a fluent interface for constructing a Config.
type Builder struct {
	config Config
	env    func() []string
	useEnv bool
}

// NewBuilder creates a Builder starting from Default().
func NewBuilder() *Builder {
	return &Builder{
		config: Default(),
		env:    os.Environ,
	}
}

// WithConfig replaces the base configuration.
func (b *Builder) WithConfig(config Config) *Builder {
	b.config = config
	return b
}

// WithEnv overlays ICV_* environment variables (ICV_MODE, ICV_MULTIPLIER,
// ICV_MIN_CONTRAST, ICV_STRICT, ICV_CORRECTION_SATURATION, ICV_MAX_ATTEMPTS,
// ICV_PREVIEW).
func (b *Builder) WithEnv() *Builder {
	b.useEnv = true
	return b
}

// WithEnviron sets the environment source, in os.Environ format (for tests).
func (b *Builder) WithEnviron(environ func() []string) *Builder {
	b.env = environ
	return b
}

// Build constructs and validates the configuration.
func (b *Builder) Build() (Config, error) {
	config := b.config

	if b.useEnv {
		values := envValues(b.env(), EnvPrefix)
		if len(values) > 0 {
			decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
				WeaklyTypedInput: true,
				Result:           &config,
				DecodeHook:       modeHook,
			})
			if err != nil {
				return Config{}, fmt.Errorf("failed to create config decoder: %w", err)
			}
			if err := decoder.Decode(values); err != nil {
				return Config{}, fmt.Errorf("invalid environment configuration: %w", err)
			}
		}
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// envValues collects PREFIX_KEY=value pairs as lower-case keys without the prefix.
func envValues(environ []string, prefix string) map[string]any {
	values := make(map[string]any)
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, prefix) || value == "" {
			continue
		}
		values[strings.ToLower(strings.TrimPrefix(key, prefix))] = value
	}
	return values
}

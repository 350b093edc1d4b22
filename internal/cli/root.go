// Package cli provides the command-line interface for icv.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/icv/internal/analyzer"
	"github.com/jmylchreest/icv/internal/config"
	"github.com/jmylchreest/icv/internal/icv"
	"github.com/jmylchreest/icv/internal/version"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	verbose bool
	quiet   bool
	mode    icv.Mode
	strict  bool
	format  string
	preview bool

	config config.Config
	logger hclog.Logger
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{
		mode:   icv.ModeNormal,
		format: FormatText,
		logger: hclog.NewNullLogger(),
	}

	rootCmd := &cobra.Command{
		Use:   "icv",
		Short: "Visual load index for UI colour palettes",
		Long: `icv scores the ergonomic visual load (ICV, 0-100) of a four colour UI
palette made of a background, text, primary and secondary colour, and
corrects palettes toward accessible contrast targets.

Lower scores mean less visual strain. Scores up to 30 are ergonomic,
up to 60 tolerable and anything above is high risk.

Colours accept six digit hex (#0f172a) or CSS colour names (navy).`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: opts.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	flags.VarP(&opts.mode, "mode", "m", "viewing mode (normal, astigmatism, myopia, accessible)")
	flags.BoolVar(&opts.strict, "strict", false, "reject malformed colours instead of reading them as black")
	flags.StringVarP(&opts.format, "format", "f", FormatText, "output format (text, json)")
	flags.BoolVar(&opts.preview, "preview", false, "show colour previews (default: when stdout is a terminal)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newScoreCmd(opts))
	rootCmd.AddCommand(newCorrectCmd(opts))
	rootCmd.AddCommand(newCompareCmd(opts))
	rootCmd.AddCommand(newContrastCmd(opts))
	rootCmd.AddCommand(newInspectCmd(opts))
	rootCmd.AddCommand(newRateCmd(opts))
	rootCmd.AddCommand(newHeatmapCmd(opts))
	rootCmd.AddCommand(newSchemaCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup configures logging and merges environment configuration with the
// flags given on the command line. Flags win over the environment.
func (o *rootOptions) setup(cmd *cobra.Command, _ []string) error {
	if o.verbose && o.quiet {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}
	if o.format != FormatText && o.format != FormatJSON {
		return fmt.Errorf("invalid format: %s (valid: %s, %s)", o.format, FormatText, FormatJSON)
	}

	level := hclog.Info
	switch {
	case o.verbose:
		level = hclog.Debug
	case o.quiet:
		level = hclog.Off
	}
	o.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "icv",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})

	cfg, err := config.NewBuilder().WithEnv().Build()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = o.mode
	}
	if flags.Changed("strict") {
		cfg.Strict = o.strict
	}
	if flags.Changed("preview") {
		preview := o.preview
		cfg.Preview = &preview
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	o.config = cfg
	o.logger.Debug("configuration loaded",
		"mode", cfg.Mode,
		"min_contrast", cfg.MinContrast,
		"policy", cfg.Policy().String(),
	)
	return nil
}

// analyzer returns an analyzer bound to the resolved configuration.
func (o *rootOptions) analyzer() *analyzer.Analyzer {
	return analyzer.New(
		analyzer.WithConfig(o.config),
		analyzer.WithLogger(o.logger.Named("analyzer")),
	)
}

// showPreview reports whether ANSI swatches should be written to w.
func (o *rootOptions) showPreview(w io.Writer) bool {
	if o.config.Preview != nil {
		return *o.config.Preview
	}
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

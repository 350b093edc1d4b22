package cli

import (
	"github.com/spf13/cobra"
)

func newScoreCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score the visual load of a palette",
		Long: `Score the visual load (ICV) of a palette.

The palette starts from a preset and any colour can be overridden. In
accessible mode the palette is corrected before it is scored and both the
original and corrected colours are shown.

Examples:
  # Score the default light palette
  icv score

  # Score a custom dark palette in myopia mode
  icv score --preset dark --primary "#f97316" -m myopia

  # Score named colours and output JSON
  icv score --bg white --text black -f json`,
		Args: cobra.NoArgs,
	}
	pf := addPaletteFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		p, err := pf.palette()
		if err != nil {
			return err
		}

		report, err := opts.analyzer().Analyze(p)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if opts.format == FormatJSON {
			return writeJSON(w, report)
		}
		renderReport(w, report, opts.showPreview(w))
		return nil
	}
	return cmd
}

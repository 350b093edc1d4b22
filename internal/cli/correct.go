package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/icv/internal/colour"
	"github.com/jmylchreest/icv/internal/icv"
)

// correction is the JSON form of the correct command output.
type correction struct {
	Input          colour.Palette `json:"input"`
	Corrected      colour.Palette `json:"corrected"`
	ContrastBefore float64        `json:"contrast_before"`
	ContrastAfter  float64        `json:"contrast_after"`
	ScoreBefore    int            `json:"score_before"`
	ScoreAfter     int            `json:"score_after"`
}

func newCorrectCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "correct",
		Short: "Correct a palette toward accessible contrast",
		Long: `Run the accessibility correction over a palette regardless of mode.

Background and text are pulled away from pure black and white, every colour
is desaturated and the text colour is stepped until it reaches the minimum
contrast ratio against the background (ICV_MIN_CONTRAST, default 6:1).

Scores are base scores, before any mode multiplier.

Examples:
  # Correct a harsh pure white palette
  icv correct --bg "#ffffff" --text "#000000" --primary red --secondary lime`,
		Args: cobra.NoArgs,
	}
	pf := addPaletteFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		p, err := pf.palette()
		if err != nil {
			return err
		}
		if err := p.Validate(opts.config.Policy()); err != nil {
			return fmt.Errorf("invalid palette: %w", err)
		}

		corrected := opts.config.Corrector().Correct(p)
		result := correction{
			Input:          p,
			Corrected:      corrected,
			ContrastBefore: colour.ContrastRatio(p.Background, p.Text),
			ContrastAfter:  colour.ContrastRatio(corrected.Background, corrected.Text),
			ScoreBefore:    icv.Calculate(p.Background, p.Text),
			ScoreAfter:     icv.Calculate(corrected.Background, corrected.Text),
		}
		opts.logger.Debug("palette corrected", "before", result.ScoreBefore, "after", result.ScoreAfter)

		w := cmd.OutOrStdout()
		if opts.format == FormatJSON {
			return writeJSON(w, result)
		}

		fmt.Fprint(w, paletteTable(corrected, &p, opts.showPreview(w)))
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Contrast:  %.2f:1 -> %.2f:1\n", result.ContrastBefore, result.ContrastAfter)
		fmt.Fprintf(w, "ICV:       %d -> %d (%s)\n", result.ScoreBefore, result.ScoreAfter, icv.Rate(result.ScoreAfter).Label)
		return nil
	}
	return cmd
}

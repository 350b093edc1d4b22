package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/icv/internal/colour"
)

// WCAG 2.0 contrast thresholds for normal text.
const (
	wcagAA  = 4.5
	wcagAAA = 7.0
)

type contrastResult struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Ratio float64 `json:"ratio"`
	AA    bool    `json:"aa"`
	AAA   bool    `json:"aaa"`
}

func newContrastCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <colour> <colour>",
		Short: "Print the WCAG contrast ratio of two colours",
		Long: `Print the WCAG 2.0 contrast ratio between two colours and whether it
meets the AA (4.5:1) and AAA (7:1) thresholds for normal text.

Examples:
  icv contrast "#0f172a" "#f8fafc"
  icv contrast navy white -f json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b := resolveColour(args[0]), resolveColour(args[1])
			policy := opts.config.Policy()
			for _, hex := range []string{a, b} {
				if _, err := colour.Decode(hex, policy); err != nil {
					return err
				}
			}

			ratio := colour.ContrastRatio(a, b)
			result := contrastResult{A: a, B: b, Ratio: ratio, AA: ratio >= wcagAA, AAA: ratio >= wcagAAA}

			w := cmd.OutOrStdout()
			if opts.format == FormatJSON {
				return writeJSON(w, result)
			}

			if opts.showPreview(w) {
				fmt.Fprintln(w, colour.PreviewPair(colour.HexToRGB(a), colour.HexToRGB(b), "Aa", 12))
			}
			fmt.Fprintf(w, "Contrast: %.2f:1\n", ratio)
			fmt.Fprintf(w, "AA:       %s\n", passFail(result.AA))
			fmt.Fprintf(w, "AAA:      %s\n", passFail(result.AAA))
			return nil
		},
	}
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}

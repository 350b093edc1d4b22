package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/icv/internal/colour"
)

type inspection struct {
	Input  string        `json:"input"`
	Sample colour.Sample `json:"sample"`
	HSL    colour.HSLHSV `json:"hsl_hsv"`
}

func newInspectCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <colour>",
		Short: "Show the colour space breakdown of a colour",
		Long: `Show the RGB, HSL and HSV components of a colour together with its WCAG
relative luminance.

Examples:
  icv inspect "#3b82f6"
  icv inspect slategray`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex := resolveColour(args[0])
			sample, err := colour.Decode(hex, opts.config.Policy())
			if err != nil {
				return err
			}
			result := inspection{
				Input:  args[0],
				Sample: sample,
				HSL:    colour.RGBToHSLHSV(sample.RGB()),
			}

			w := cmd.OutOrStdout()
			if opts.format == FormatJSON {
				return writeJSON(w, result)
			}

			if opts.showPreview(w) {
				fmt.Fprintln(w, colour.FormatWithPreview(sample.RGB(), previewWidth))
			}
			table := NewTable([]string{"Space", "Value"})
			table.AddRow([]string{"hex", sample.RGB().Hex()})
			table.AddRow([]string{"rgb", sample.RGB().String()})
			table.AddRow([]string{"hsl", fmt.Sprintf("hsl(%d, %d%%, %d%%)", result.HSL.H, result.HSL.SHSL, result.HSL.L)})
			table.AddRow([]string{"hsv", fmt.Sprintf("hsv(%d, %d%%, %d%%)", result.HSL.H, result.HSL.SHSV, result.HSL.V)})
			table.AddRow([]string{"luminance", fmt.Sprintf("%.4f", colour.RelativeLuminance(sample.RGB()))})
			fmt.Fprint(w, table.Render())
			return nil
		},
	}
}

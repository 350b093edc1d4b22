package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/icv/internal/analyzer"
	"github.com/jmylchreest/icv/internal/icv"
)

func newCompareCmd(opts *rootOptions) *cobra.Command {
	var leftMode, rightMode icv.Mode

	cmd := &cobra.Command{
		Use:   "compare <palette> <palette>",
		Short: "Compare the visual load of two palettes",
		Long: `Compare two palettes and report which one carries less visual load.

A palette is a preset name (light, dark) or four comma separated colours in
the order background,text,primary,secondary. Prefix it with "name=" to label
it. Each side may use its own mode; otherwise the global --mode applies.

Examples:
  # Compare the built in presets
  icv compare light dark

  # Compare a custom palette in accessible mode against the dark preset
  icv compare "mine=#ffffff,#000000,red,lime" dark --left-mode accessible`,
		Args: cobra.ExactArgs(2),
	}
	cmd.Flags().Var(&leftMode, "left-mode", "mode for the first palette (default: --mode)")
	cmd.Flags().Var(&rightMode, "right-mode", "mode for the second palette (default: --mode)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		var entries [2]analyzer.Entry
		modes := [2]icv.Mode{leftMode, rightMode}
		for i, arg := range args {
			name, p, err := parsePaletteArg(arg)
			if err != nil {
				return err
			}
			entries[i] = analyzer.Entry{Name: name, Palette: p, Mode: modes[i]}
		}
		if entries[0].Name == entries[1].Name {
			entries[0].Name += " (left)"
			entries[1].Name += " (right)"
		}

		result, err := opts.analyzer().Compare(cmd.Context(), entries[0], entries[1])
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if opts.format == FormatJSON {
			return writeJSON(w, result)
		}

		preview := opts.showPreview(w)
		headers := []string{"Palette", "Mode", "Background", "Text", "Contrast", "ICV", "Rating"}
		if preview {
			headers = append(headers, "Preview")
		}
		table := NewTable(headers)
		for _, side := range []struct {
			name   string
			report *analyzer.Report
		}{{result.NameA, result.A}, {result.NameB, result.B}} {
			r := side.report
			row := []string{
				side.name,
				string(r.Mode),
				r.Active.Background,
				r.Active.Text,
				fmt.Sprintf("%.2f:1", r.Terms.ContrastRatio),
				fmt.Sprintf("%d", r.Score),
				r.Rating.Label,
			}
			if preview {
				row = append(row, swatch(r.Active.Background, true)+swatch(r.Active.Text, true))
			}
			table.AddRow(row)
		}

		fmt.Fprint(w, table.Render())
		fmt.Fprintln(w)
		fmt.Fprintln(w, result.Summary())
		return nil
	}
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/icv/internal/analyzer"
	"github.com/jmylchreest/icv/internal/icv"
)

type heatmapResult struct {
	Heat      analyzer.Heatmap `json:"heat"`
	Breakdown icv.Breakdown    `json:"breakdown"`
}

func newHeatmapCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Estimate the strain of each interface region",
		Long: `Estimate how much strain each region of an interface built from the
palette causes (0 none, 1 maximum), and show the per-factor load breakdown.

Regions: background, header (half the background load), primary elements
carrying white content and secondary surfaces carrying text.`,
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
		result := heatmapResult{Heat: report.Heat, Breakdown: report.Breakdown}

		w := cmd.OutOrStdout()
		if opts.format == FormatJSON {
			return writeJSON(w, result)
		}

		regions := NewTable([]string{"Region", "Heat", ""})
		for _, r := range []struct {
			name string
			heat float64
		}{
			{"background", result.Heat.Background},
			{"header", result.Heat.Header},
			{"primary", result.Heat.Primary},
			{"secondary", result.Heat.Secondary},
		} {
			regions.AddRow([]string{r.name, fmt.Sprintf("%.2f", r.heat), bar(r.heat)})
		}
		fmt.Fprint(w, regions.Render())
		fmt.Fprintln(w)

		factors := NewTable([]string{"Factor", "Load", ""})
		for _, f := range []struct {
			name string
			load float64
		}{
			{"saturation", result.Breakdown.Saturation},
			{"extreme brightness", result.Breakdown.ExtremeBrightness},
			{"inverse contrast", result.Breakdown.InverseContrast},
			{"blue tone", result.Breakdown.BlueTone},
		} {
			factors.AddRow([]string{f.name, fmt.Sprintf("%.0f", f.load), bar(f.load / 100)})
		}
		fmt.Fprint(w, factors.Render())
		return nil
	}
	return cmd
}

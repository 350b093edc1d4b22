package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jmylchreest/icv/internal/analyzer"
	"github.com/jmylchreest/icv/internal/colour"
	"github.com/jmylchreest/icv/internal/icv"
)

const (
	previewWidth = 6
	barWidth     = 20
)

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// swatch returns a preview block for hex, or an empty string when previews are
// disabled.
func swatch(hex string, preview bool) string {
	if !preview {
		return ""
	}
	return colour.Preview(colour.HexToRGB(hex), previewWidth)
}

// paletteTable renders one row per role. When before is non-nil a second
// column shows the original colour next to the active one.
func paletteTable(active colour.Palette, before *colour.Palette, preview bool) string {
	headers := []string{"Role"}
	if before != nil {
		headers = append(headers, "Before")
	}
	headers = append(headers, "Hex", "HSL", "HSV")
	if preview {
		headers = append(headers, "Preview")
	}

	table := NewTable(headers)
	for _, role := range colour.Roles() {
		hex := active.Get(role)
		sample := colour.SampleOf(hex)
		hsx := colour.RGBToHSLHSV(sample.RGB())

		row := []string{string(role)}
		if before != nil {
			row = append(row, before.Get(role))
		}
		row = append(row,
			hex,
			fmt.Sprintf("%d %d%% %d%%", hsx.H, hsx.SHSL, hsx.L),
			fmt.Sprintf("%d %d%% %d%%", hsx.H, hsx.SHSV, hsx.V),
		)
		if preview {
			if before != nil {
				row = append(row, swatch(before.Get(role), true)+" "+swatch(hex, true))
			} else {
				row = append(row, swatch(hex, true))
			}
		}
		table.AddRow(row)
	}
	return table.Render()
}

// findingsTable renders diagnostic findings.
func findingsTable(findings []icv.Finding) string {
	table := NewTable([]string{"Level", "Code", "Message"})
	table.SetColumnMaxWidth(2, 60)
	for _, f := range findings {
		table.AddRow([]string{string(f.Level), f.Code, f.Message})
	}
	return table.Render()
}

// scoreLine summarises a score and its rating on one line.
func scoreLine(score int, rating icv.Rating) string {
	return fmt.Sprintf("ICV %d/100  %s (%s)", score, rating.Label, rating.Description)
}

// bar renders v in [0,1] as a fixed width gauge.
func bar(v float64) string {
	filled := int(math.Round(math.Max(0, math.Min(1, v)) * barWidth))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled) + "]"
}

// renderReport writes the text form of a report.
func renderReport(w io.Writer, r *analyzer.Report, preview bool) {
	var before *colour.Palette
	if r.Corrected {
		before = &r.Input
	}

	fmt.Fprint(w, paletteTable(r.Active, before, preview))
	fmt.Fprintln(w)
	if preview {
		fmt.Fprintln(w, colour.PreviewPair(colour.HexToRGB(r.Active.Background), colour.HexToRGB(r.Active.Text), "Sample text", 24))
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Mode:      %s (x%.1f)\n", r.Mode, r.Multiplier)
	fmt.Fprintf(w, "Contrast:  %.2f:1\n", r.Terms.ContrastRatio)
	if r.BaseScore != r.Score {
		fmt.Fprintf(w, "Base:      %d\n", r.BaseScore)
	}
	fmt.Fprintln(w, scoreLine(r.Score, r.Rating))
	fmt.Fprintln(w)
	fmt.Fprint(w, findingsTable(r.Findings))
}

package analyzer

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jmylchreest/icv/internal/colour"
	"github.com/jmylchreest/icv/internal/icv"
)

// Entry is one side of a comparison. Each entry carries its own mode; an
// empty mode uses the analyzer's configured settings.
type Entry struct {
	Name    string         `json:"name"`
	Palette colour.Palette `json:"palette"`
	Mode    icv.Mode       `json:"mode,omitempty"`
}

// Comparison is the outcome of comparing two palettes. The palette with the
// lower score carries less visual load and wins; Winner is empty on a tie.
type Comparison struct {
	A      *Report `json:"a"`
	B      *Report `json:"b"`
	NameA  string  `json:"name_a"`
	NameB  string  `json:"name_b"`
	Winner string  `json:"winner,omitempty"`
	Delta  int     `json:"delta"`
}

// Summary describes the comparison in one sentence.
func (c *Comparison) Summary() string {
	if c.Winner == "" {
		return "Both palettes carry the same visual load."
	}
	return fmt.Sprintf("%s is more ergonomic (%d points less visual load).", c.Winner, c.Delta)
}

// Compare analyses both entries concurrently and ranks them.
func (a *Analyzer) Compare(ctx context.Context, first, second Entry) (*Comparison, error) {
	entries := [2]Entry{first, second}
	reports := [2]*Report{}

	g, ctx := errgroup.WithContext(ctx)
	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			settings := a.config.Settings()
			if entry.Mode != "" {
				settings = icv.SettingsFor(entry.Mode)
			}
			report, err := a.AnalyzeWith(entry.Palette, settings)
			if err != nil {
				return fmt.Errorf("palette %s: %w", entry.Name, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := &Comparison{
		A:     reports[0],
		B:     reports[1],
		NameA: first.Name,
		NameB: second.Name,
	}
	switch {
	case c.A.Score < c.B.Score:
		c.Winner = first.Name
		c.Delta = c.B.Score - c.A.Score
	case c.B.Score < c.A.Score:
		c.Winner = second.Name
		c.Delta = c.A.Score - c.B.Score
	}

	a.logger.Debug("palettes compared", "a", c.A.Score, "b", c.B.Score, "winner", c.Winner)
	return c, nil
}

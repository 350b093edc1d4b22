package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/icv/internal/icv"
)

func newRateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <score>",
		Short: "Print the rating band of an ICV score",
		Long: `Print the rating band of an ICV score: up to 30 is ergonomic, up to 60
tolerable and anything higher is high risk.

Examples:
  icv rate 45`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid score %q: %w", args[0], err)
			}
			if score < 0 || score > 100 {
				return fmt.Errorf("score must be between 0 and 100, got %d", score)
			}

			rating := icv.Rate(score)
			w := cmd.OutOrStdout()
			if opts.format == FormatJSON {
				return writeJSON(w, rating)
			}
			fmt.Fprintln(w, scoreLine(score, rating))
			return nil
		},
	}
}

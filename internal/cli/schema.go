package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/icv/internal/analyzer"
)

func newSchemaCmd(_ *rootOptions) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the JSON output",
		Long: `Print the JSON schema describing the output of "score -f json"
(--type report) or "compare -f json" (--type comparison).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				data []byte
				err  error
			)
			switch kind {
			case "report":
				data, err = analyzer.Schema()
			case "comparison":
				data, err = analyzer.ComparisonSchema()
			default:
				return fmt.Errorf("invalid schema type: %s (valid: report, comparison)", kind)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "type", "report", "schema to print (report, comparison)")
	return cmd
}

package cmd

import (
	"github.com/lodlab/chartbench/core"
	"github.com/lodlab/chartbench/internal/contract"
	"github.com/spf13/cobra"
)

// generateCmd materializes a series set and reports per-series statistics.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a seeded series set and show per-series statistics.",
	Long: `Generate a deterministic series set from a profile and seed, then
summarize each series (point count, min, max, mean).

The same profile, seed, series and points always produce identical data,
which makes generated sets reproducible across machines and runs.

Available profiles: walk, sine, pulse, gradient, sparse

Examples:
  # Generate the default random-walk set
  chartbench generate

  # A smaller sine set with a custom seed
  chartbench generate --profile sine --series 2 --points 5000 --seed 7

  # Irregularly sampled data with timestamps
  chartbench generate --profile sparse

  # Export the summary as JSON
  chartbench generate --output json --output-file summary.json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGenerate(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot generate series set", err)
		}
	},
}

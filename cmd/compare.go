package cmd

import (
	"errors"

	"github.com/lodlab/chartbench/core"
	"github.com/lodlab/chartbench/internal/contract"
	"github.com/spf13/cobra"
)

// compareCmd benchmarks two profiles and reports the deltas.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare benchmark results between two generation profiles.",
	Long: `Run the same viewport scenario against two profiles and compare the
per-kind latency, bin and staleness totals side by side.

Useful for:
- Quantifying how data shape affects query cost (dense vs sparse)
- Validating that aggregated queries stay flat as raw cost grows
- Tracking regressions when tuning the engine

Both runs share the scenario, seed, series, points and step count, so
the only variable is the profile itself.

Examples:
  # Dense walk vs irregular sparse data
  chartbench compare --base-profile walk --target-profile sparse

  # Smooth vs bursty signals under a zoom workload
  chartbench compare --base-profile sine --target-profile pulse --scenario zoom

  # Export the comparison to CSV
  chartbench compare --base-profile walk --target-profile gradient --output csv --output-file delta.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.BaseProfile == "" || cfg.TargetProfile == "" {
			contract.LogFatal("Cannot run comparison", errors.New("base and target profiles must be provided"))
		}
		if err := core.ExecuteCompare(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run comparison", err)
		}
	},
}

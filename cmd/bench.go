package cmd

import (
	"github.com/lodlab/chartbench/core"
	"github.com/lodlab/chartbench/internal/contract"
	"github.com/spf13/cobra"
)

// benchCmd drives the query engine through a viewport scenario.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the query engine under a viewport scenario.",
	Long: `Simulate a user panning and zooming a chart and measure how the query
engine behaves at each viewport step.

Each step derives a query from the current viewport (range from the
viewport bounds, LOD from range/display-width), issues it through the
store, and records latency, bin counts and staleness. Results that
arrive after a newer query completes are marked stale, mirroring what a
renderer would discard.

Available scenarios:
  pan       - scroll right through the data at fixed width
  zoom      - zoom in then back out around the center
  mixed     - alternate zooming and panning
  sparsepan - pan through timestamped data (requires a sparse profile)

When run tracking is enabled, each benchmark run and its per-step
results are persisted for later inspection via 'chartbench results'.

Examples:
  # Default pan scenario over a random walk
  chartbench bench

  # Zoom scenario with more steps and workers
  chartbench bench --scenario zoom --steps 64 --workers 8

  # Timestamped panning over sparse data
  chartbench bench --scenario sparsepan --profile sparse

  # Export per-step results for analytics
  chartbench bench --output parquet --output-file bench-steps.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteBench(rootCtx, cfg, runManager); err != nil {
			contract.LogFatal("Cannot run benchmark", err)
		}
	},
}

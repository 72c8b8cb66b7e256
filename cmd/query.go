package cmd

import (
	"github.com/lodlab/chartbench/core"
	"github.com/lodlab/chartbench/internal/contract"
	"github.com/spf13/cobra"
)

// queryCmd runs a one-shot LOD query against a generated series set.
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run a single level-of-detail query against a generated set.",
	Long: `Generate a series set and run one query against it at the requested
range and level of detail.

At LOD 1 the engine returns raw samples. At higher LODs it returns
interleaved [min, max] pairs per bin, the same reduction a renderer
would use to draw millions of points into a narrow viewport.

For timestamped profiles (sparse) the range is interpreted in
milliseconds and bins are aligned to the LOD grid. Empty bins come back
as (0, 0) placeholders so the time axis stays contiguous.

Examples:
  # Raw samples for the first 200 points
  chartbench query --range-start 0 --range-end 200

  # Min/max bins, 50 points per bin
  chartbench query --range-start 0 --range-end 100000 --lod 50

  # Timestamped query over sparse data
  chartbench query --profile sparse --range-start 0 --range-end 5000 --lod 100

  # Force raw mode on sparse data with a sample-rate hint
  chartbench query --profile sparse --range-start 0 --range-end 500 --lod 5 --sample-rate 10`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteQuery(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run query", err)
		}
	},
}

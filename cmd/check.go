package cmd

import (
	"github.com/lodlab/chartbench/core"
	"github.com/lodlab/chartbench/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd runs the engine self-checks.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run engine self-checks (fails with non-zero exit on violations)",
	Long: `Exercise the query engine against known-answer cases and fail if any
invariant is violated.

The checks cover determinism (same seed, same data), raw query windows,
min/max bin envelopes, sparse grid alignment and viewport clamping.

Designed for CI pipelines - returns a non-zero exit code when a check
fails, so regressions are caught before release.

Examples:
  # Run all checks
  chartbench check

  # Machine-readable check report
  chartbench check --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCheck(rootCtx, cfg); err != nil {
			contract.LogFatal("Engine check failed", err)
		}
	},
}

package cmd

import (
	"github.com/lodlab/chartbench/core"
	"github.com/lodlab/chartbench/internal/contract"
	"github.com/spf13/cobra"
)

// profilesCmd lists the available generation profiles.
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List available generation profiles and their characteristics.",
	Long: `Show every generation profile with its shape, sampling behavior and
typical use in benchmarks.

Examples:
  # Human-readable profile table
  chartbench profiles

  # JSON for tooling
  chartbench profiles --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteProfiles(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list profiles", err)
		}
	},
}

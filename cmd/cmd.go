// Package cmd defines the command-line interface for chartbench.
package cmd

import (
	"github.com/lodlab/chartbench/internal/contract"
	"github.com/lodlab/chartbench/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the results subcommands to the parent results command
	resultsCmd.AddCommand(resultsStatusCmd)
	resultsCmd.AddCommand(resultsClearCmd)
	resultsCmd.AddCommand(resultsExportCmd)
	resultsCmd.AddCommand(resultsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("profile", "p", string(schema.WalkProfile), "Generation profile: walk, sine, pulse, gradient, sparse")
	rootCmd.PersistentFlags().Int("series", contract.DefaultNumSeries, "Number of series to generate")
	rootCmd.PersistentFlags().Int("points", contract.DefaultNumPoints, "Number of points per series")
	rootCmd.PersistentFlags().Int64("seed", contract.DefaultSeed, "Seed for deterministic data generation")
	rootCmd.PersistentFlags().String("latency", contract.DefaultLatency, "Simulated per-query service latency (e.g. 100ms, 0 to disable)")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of rows to display in tables")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent benchmark workers")
	rootCmd.PersistentFlags().String("run-backend", string(schema.SQLiteBackend), "Run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("run-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("pprof", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of queryCmd to Viper
	queryCmd.Flags().Float64("range-start", 0, "Start of the query range (index or timestamp)")
	queryCmd.Flags().Float64("range-end", float64(contract.DefaultDisplayWidth), "End of the query range (index or timestamp)")
	queryCmd.Flags().Float64("lod", 1, "Level of detail (points per bin, 1 = raw)")
	queryCmd.Flags().Float64("sample-rate", 0, "Sample rate hint in ms for timestamped queries (0 = use the set's own rate)")
	if err := viper.BindPFlags(queryCmd.Flags()); err != nil {
		contract.LogFatal("Error binding query flags", err)
	}

	// Bind all flags of benchCmd to Viper
	benchCmd.Flags().String("scenario", string(schema.PanScenario), "Benchmark scenario: pan, zoom, mixed, sparsepan")
	benchCmd.Flags().Int("steps", contract.DefaultSteps, "Number of viewport steps to simulate")
	benchCmd.Flags().Int("display-width", contract.DefaultDisplayWidth, "Viewport width in pixels used to derive LOD")
	if err := viper.BindPFlags(benchCmd.Flags()); err != nil {
		contract.LogFatal("Error binding bench flags", err)
	}

	// Bind all flags of compareCmd to Viper
	compareCmd.Flags().String("base-profile", "", "Profile for the BEFORE benchmark run")
	compareCmd.Flags().String("target-profile", "", "Profile for the AFTER benchmark run")
	if err := viper.BindPFlags(compareCmd.Flags()); err != nil {
		contract.LogFatal("Error binding compare flags", err)
	}

	// Bind all flags of resultsMigrateCmd to Viper
	resultsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(resultsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding results migrate flags", err)
	}
}

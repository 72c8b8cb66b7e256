package cmd

import (
	"fmt"

	"github.com/lodlab/chartbench/internal/contract"
	"github.com/lodlab/chartbench/internal/runstore"
	"github.com/lodlab/chartbench/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// resultsSetup loads minimal configuration needed for run-history operations.
// This is used by commands that need run-store access without full shared setup.
func resultsSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get run-tracking config values
	backendStr := viper.GetString("run-backend")
	connStr := viper.GetString("run-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize the run store with the loaded config
	if err := runstore.InitStores(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize run tracking: %w", err)
	}

	cfg.RunBackend = backend
	cfg.RunDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// resultsSetupWrapper wraps resultsSetup to provide PreRunE for results commands.
func resultsSetupWrapper(_ *cobra.Command, _ []string) error {
	return resultsSetup()
}

// resultsMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func resultsMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backendStr := viper.GetString("run-backend")
	connStr := viper.GetString("run-db-connect")

	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = runstore.GetRunDBFilePath()
	}

	cfg.RunBackend = backend
	cfg.RunDBConnect = connStr

	return nil
}

// resultsMigrateSetupWrapper wraps resultsMigrateSetup to provide PreRunE for migrate command.
func resultsMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return resultsMigrateSetup()
}

// resultsCmd focused on benchmark run-history management.
//
// Note: Results subcommands use minimal initialization (resultsSetup) instead of
// the full sharedSetup used by benchmark commands. This avoids engine config
// processing for simple run-history operations.
var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Manage historical benchmark run tracking and exports",
	Long: `Manage historical benchmark data used for trend tracking and reporting.

When enabled, chartbench tracks every benchmark run, storing:
- Run metadata (timestamp, profile, scenario, seed, duration)
- Per-step query results (kind, range, LOD, bins, latency, staleness)

This enables longitudinal analysis, regression detection, and data
export for BI tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show run tracking statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all tracked runs
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  chartbench results status

  # Export for analysis in pandas/DuckDB
  chartbench results export --output-file bench-history.parquet`,
}

// resultsStatusCmd shows run-store status.
var resultsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run tracking statistics and connection details",
	Long: `Show detailed information about historical benchmark run tracking.

Displays:
- Backend type and connection status
- Total number of benchmark runs stored
- Last and oldest run timestamps
- Total queries recorded across all runs
- Database table sizes

Examples:
  # Check run tracking status
  chartbench results status`,
	PreRunE: resultsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := runstore.Manager.GetRunStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get run tracking status", err)
		}
		runstore.PrintRunStoreStatus(status)
	},
}

// resultsClearCmd clears the run history.
var resultsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all historical benchmark run data",
	Long: `Delete all stored benchmark runs and per-step results.

Use this when:
- Resetting trend tracking
- Database storage is full
- Starting fresh benchmark history

Examples:
  # Export before clearing
  chartbench results export --output-file backup.parquet
  chartbench results clear`,
	PreRunE: resultsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runstore.Manager.GetRunStore().Clear(); err != nil {
			contract.LogFatal("Failed to clear run history", err)
		}
		fmt.Println("Run history cleared successfully.")
	},
}

// resultsExportCmd exports run history to Parquet files.
var resultsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export run history to Parquet for BI tools and analytics",
	Long: `Export all stored benchmark data to Parquet format for use with
analytics tools.

Exports two datasets:
- Benchmark runs - metadata about each run
- Step results - per-query latency, bins and staleness

Requires: --output-file parameter

Examples:
  # Export all data
  chartbench results export --output-file bench-history.parquet

  # Use with DuckDB for analysis
  chartbench results export --output-file data.parquet
  duckdb -c "SELECT * FROM read_parquet('data.parquet.steps.parquet') LIMIT 10"`,
	PreRunE: resultsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runstore.ExecuteRunExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export run history", err)
		}
	},
}

// resultsMigrateCmd runs database migrations for the run store.
var resultsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run tracking store.

Migrations allow:
- Upgrading to new schema versions when chartbench is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  chartbench results migrate

  # Migrate to specific version
  chartbench results migrate --target-version 1

  # Rollback to initial state
  chartbench results migrate --target-version 0`,
	PreRunE: resultsMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := runstore.MigrateRuns(cfg.RunBackend, cfg.RunDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}

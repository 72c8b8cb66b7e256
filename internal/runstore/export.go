package runstore

import (
	"errors"
	"fmt"

	"github.com/lodlab/chartbench/internal/parquet"
)

// ExecuteRunExport performs the actual export of run history to Parquet files.
func ExecuteRunExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the run store
	store := Manager.GetRunStore()
	if store == nil {
		return errors.New("run tracking is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get run store status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total benchmark runs: %d\n", status.TotalRuns)
	fmt.Printf("Total step records: %d\n", status.TableSizes[benchStepsTable])

	// Retrieve all benchmark runs
	runs, err := store.GetRuns(0)
	if err != nil {
		return fmt.Errorf("failed to retrieve benchmark runs: %w", err)
	}

	// Retrieve the steps of every run
	var steps []parquet.BenchStep
	for _, run := range runs {
		runSteps, err := store.GetSteps(run.RunID)
		if err != nil {
			return fmt.Errorf("failed to retrieve steps for run %d: %w", run.RunID, err)
		}
		steps = append(steps, parquet.ConvertBenchStepRecords(runSteps)...)
	}

	// Convert runs to Parquet format
	parquetRuns := parquet.ConvertBenchRunRecords(runs)

	// Write benchmark runs to Parquet
	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteBenchRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write benchmark runs: %w", err)
	}
	fmt.Printf("Exported %d benchmark runs to: %s\n", len(parquetRuns), runsFile)

	// Write benchmark steps to Parquet
	stepsFile := outputFile + ".steps.parquet"
	if err := parquet.WriteBenchStepsParquet(steps, stepsFile); err != nil {
		return fmt.Errorf("failed to write benchmark steps: %w", err)
	}
	fmt.Printf("Exported %d step records to: %s\n", len(steps), stepsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}

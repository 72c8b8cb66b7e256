// Package parquet provides data structures and functions for exporting
// benchmark run data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/lodlab/chartbench/schema"
	"github.com/parquet-go/parquet-go"
)

// BenchRun represents a single benchmark run with metadata.
// This struct maps to the chartbench_runs database table.
type BenchRun struct {
	// RunID is the unique identifier for this benchmark run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// Profile is the generation profile the run was driven against
	Profile string `parquet:"profile,snappy"`

	// Scenario is the viewport scenario the run replayed
	Scenario string `parquet:"scenario,snappy"`

	// NumSeries is the number of series in the generated set
	NumSeries int32 `parquet:"num_series,snappy"`

	// NumPoints is the number of points per series
	NumPoints int32 `parquet:"num_points,snappy"`

	// Seed is the generation seed, kept so a run can be replayed
	Seed int64 `parquet:"seed,snappy"`

	// TotalQueries is the number of queries issued during the run
	TotalQueries int32 `parquet:"total_queries,snappy"`

	// ConfigParams contains the JSON-encoded run parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// BenchStep represents a single query step within a benchmark run.
// This struct maps to the chartbench_steps database table.
type BenchStep struct {
	// RunID references the parent benchmark run
	RunID int64 `parquet:"run_id,snappy"`

	// Step is the zero-based position of the query in the scenario
	Step int32 `parquet:"step,snappy"`

	// Kind is the result kind returned by the engine
	Kind string `parquet:"kind,snappy"`

	// RangeStart is the lower bound of the queried range
	RangeStart float64 `parquet:"range_start,snappy"`

	// RangeEnd is the upper bound of the queried range
	RangeEnd float64 `parquet:"range_end,snappy"`

	// LOD is the level of detail the query was issued at
	LOD float64 `parquet:"lod,snappy"`

	// Bins is the number of aggregated bins in the result
	Bins int32 `parquet:"bins,snappy"`

	// Samples is the number of raw samples in the result
	Samples int32 `parquet:"samples,snappy"`

	// LatencyMs is the observed query latency in milliseconds
	LatencyMs float64 `parquet:"latency_ms,snappy"`

	// Stale indicates the result was superseded before it arrived
	Stale bool `parquet:"stale,snappy"`
}

// WriteBenchRunsParquet writes a slice of BenchRun structs to a Parquet file.
func WriteBenchRunsParquet(data []BenchRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the BenchRun struct tags
	writer := parquet.NewGenericWriter[BenchRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteBenchStepsParquet writes a slice of BenchStep structs to a Parquet file.
func WriteBenchStepsParquet(data []BenchStep, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the BenchStep struct tags
	writer := parquet.NewGenericWriter[BenchStep](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// MockFetchBenchRuns generates sample BenchRun data for demonstration.
func MockFetchBenchRuns() []BenchRun {
	now := time.Now()
	startTime1 := now.Add(-2 * time.Hour)
	endTime1 := now.Add(-1*time.Hour - 30*time.Minute)
	durationMs1 := int32(endTime1.Sub(startTime1).Milliseconds())
	configParams1 := `{"latency":"100ms","display_width":1200,"steps":32,"workers":4}`

	startTime2 := now.Add(-24 * time.Hour)
	endTime2 := now.Add(-23 * time.Hour)
	durationMs2 := int32(endTime2.Sub(startTime2).Milliseconds())
	configParams2 := `{"latency":"50ms","display_width":800,"steps":64,"workers":8}`

	startTime3 := now.Add(-10 * time.Minute)
	// Note: endTime3, durationMs3, configParams3 are nil to demonstrate nullable fields

	return []BenchRun{
		{
			RunID:         1,
			StartTime:     startTime1,
			EndTime:       &endTime1,
			RunDurationMs: &durationMs1,
			Profile:       "walk",
			Scenario:      "pan",
			NumSeries:     4,
			NumPoints:     100000,
			Seed:          42,
			TotalQueries:  32,
			ConfigParams:  &configParams1,
		},
		{
			RunID:         2,
			StartTime:     startTime2,
			EndTime:       &endTime2,
			RunDurationMs: &durationMs2,
			Profile:       "sparse",
			Scenario:      "zoom",
			NumSeries:     2,
			NumPoints:     50000,
			Seed:          7,
			TotalQueries:  64,
			ConfigParams:  &configParams2,
		},
		{
			RunID:         3,
			StartTime:     startTime3,
			EndTime:       nil, // Still running - nullable field
			RunDurationMs: nil, // Not yet calculated - nullable field
			Profile:       "pulse",
			Scenario:      "mixed",
			NumSeries:     4,
			NumPoints:     100000,
			Seed:          42,
			TotalQueries:  0,
			ConfigParams:  nil, // No config stored - nullable field
		},
	}
}

// MockFetchBenchSteps generates sample BenchStep data for demonstration.
func MockFetchBenchSteps() []BenchStep {
	return []BenchStep{
		{
			RunID:      1,
			Step:       0,
			Kind:       "aggregated",
			RangeStart: 0,
			RangeEnd:   10000,
			LOD:        8.3,
			Bins:       1200,
			Samples:    0,
			LatencyMs:  104.2,
			Stale:      false,
		},
		{
			RunID:      1,
			Step:       1,
			Kind:       "raw",
			RangeStart: 5000,
			RangeEnd:   5800,
			LOD:        1,
			Bins:       0,
			Samples:    800,
			LatencyMs:  101.7,
			Stale:      true,
		},
		{
			RunID:      2,
			Step:       0,
			Kind:       "sparse_aggregated",
			RangeStart: 0,
			RangeEnd:   500000,
			LOD:        416.6,
			Bins:       1201,
			Samples:    0,
			LatencyMs:  52.9,
			Stale:      false,
		},
	}
}

// ConvertBenchRunRecords converts schema.BenchRunRecord to BenchRun for Parquet export.
func ConvertBenchRunRecords(records []schema.BenchRunRecord) []BenchRun {
	result := make([]BenchRun, len(records))
	for i, record := range records {
		result[i] = BenchRun{
			RunID:         record.RunID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			Profile:       record.Profile,
			Scenario:      record.Scenario,
			NumSeries:     record.NumSeries,
			NumPoints:     record.NumPoints,
			Seed:          record.Seed,
			TotalQueries:  record.TotalQueries,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertBenchStepRecords converts schema.BenchStepRecord to BenchStep for Parquet export.
func ConvertBenchStepRecords(records []schema.BenchStepRecord) []BenchStep {
	result := make([]BenchStep, len(records))
	for i, record := range records {
		result[i] = BenchStep{
			RunID:      record.RunID,
			Step:       record.Step,
			Kind:       record.Kind,
			RangeStart: record.RangeStart,
			RangeEnd:   record.RangeEnd,
			LOD:        record.LOD,
			Bins:       record.Bins,
			Samples:    record.Samples,
			LatencyMs:  record.LatencyMs,
			Stale:      record.Stale,
		}
	}
	return result
}

// ConvertBenchPoints converts in-memory schema.BenchPoint results to BenchStep
// records, for exporting a run that never reached a database backend.
func ConvertBenchPoints(runID int64, points []schema.BenchPoint) []BenchStep {
	result := make([]BenchStep, len(points))
	for i, point := range points {
		result[i] = BenchStep{
			RunID:      runID,
			Step:       int32(point.Step),
			Kind:       string(point.Kind),
			RangeStart: point.Start,
			RangeEnd:   point.End,
			LOD:        point.LOD,
			Bins:       int32(point.Bins),
			Samples:    int32(point.Samples),
			LatencyMs:  float64(point.Latency) / float64(time.Millisecond),
			Stale:      point.Stale,
		}
	}
	return result
}

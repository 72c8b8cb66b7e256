package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lodlab/chartbench/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenchRunStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	schema := parquet.SchemaOf(new(BenchRun))
	require.NotNil(t, schema)

	// Check that all expected columns exist
	expectedColumns := []string{
		"run_id",
		"start_time",
		"end_time",
		"run_duration_ms",
		"profile",
		"scenario",
		"num_series",
		"num_points",
		"seed",
		"total_queries",
		"config_params",
	}

	for _, colName := range expectedColumns {
		col, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestBenchStepStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	schema := parquet.SchemaOf(new(BenchStep))
	require.NotNil(t, schema)

	// Check that all expected columns exist
	expectedColumns := []string{
		"run_id",
		"step",
		"kind",
		"range_start",
		"range_end",
		"lod",
		"bins",
		"samples",
		"latency_ms",
		"stale",
	}

	for _, colName := range expectedColumns {
		col, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteBenchRunsParquet(t *testing.T) {
	// Create temporary directory for test output
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "chartbench_runs.parquet")

	// Get mock data
	data := MockFetchBenchRuns()
	require.NotEmpty(t, data, "Mock data should not be empty")

	// Write data to Parquet file
	err := WriteBenchRunsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	// Verify file was created
	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[BenchRun](file)
	defer reader.Close()

	// Read all rows
	readData := make([]BenchRun, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	// Verify data integrity
	for i := 0; i < len(data); i++ {
		assert.Equal(t, data[i].RunID, readData[i].RunID, "RunID should match")
		assert.Equal(t, data[i].Profile, readData[i].Profile, "Profile should match")
		assert.Equal(t, data[i].Scenario, readData[i].Scenario, "Scenario should match")
		assert.Equal(t, data[i].NumSeries, readData[i].NumSeries, "NumSeries should match")
		assert.Equal(t, data[i].NumPoints, readData[i].NumPoints, "NumPoints should match")
		assert.Equal(t, data[i].Seed, readData[i].Seed, "Seed should match")
		assert.Equal(t, data[i].TotalQueries, readData[i].TotalQueries, "TotalQueries should match")

		// Check nullable fields
		if data[i].EndTime == nil {
			assert.Nil(t, readData[i].EndTime, "EndTime should be nil")
		} else {
			require.NotNil(t, readData[i].EndTime, "EndTime should not be nil")
			assert.WithinDuration(t, *data[i].EndTime, *readData[i].EndTime, time.Nanosecond, "EndTime should match within nanosecond precision")
		}

		if data[i].RunDurationMs == nil {
			assert.Nil(t, readData[i].RunDurationMs, "RunDurationMs should be nil")
		} else {
			require.NotNil(t, readData[i].RunDurationMs, "RunDurationMs should not be nil")
			assert.Equal(t, *data[i].RunDurationMs, *readData[i].RunDurationMs, "RunDurationMs should match")
		}

		if data[i].ConfigParams == nil {
			assert.Nil(t, readData[i].ConfigParams, "ConfigParams should be nil")
		} else {
			require.NotNil(t, readData[i].ConfigParams, "ConfigParams should not be nil")
			assert.Equal(t, *data[i].ConfigParams, *readData[i].ConfigParams, "ConfigParams should match")
		}
	}
}

func TestWriteBenchStepsParquet(t *testing.T) {
	// Create temporary directory for test output
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "chartbench_steps.parquet")

	// Get mock data
	data := MockFetchBenchSteps()
	require.NotEmpty(t, data, "Mock data should not be empty")

	// Write data to Parquet file
	err := WriteBenchStepsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	// Verify file was created
	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[BenchStep](file)
	defer reader.Close()

	// Read all rows
	readData := make([]BenchStep, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	// Verify data integrity
	for i := 0; i < len(data); i++ {
		assert.Equal(t, data[i].RunID, readData[i].RunID, "RunID should match")
		assert.Equal(t, data[i].Step, readData[i].Step, "Step should match")
		assert.Equal(t, data[i].Kind, readData[i].Kind, "Kind should match")
		assert.InDelta(t, data[i].RangeStart, readData[i].RangeStart, 0.001, "RangeStart should match")
		assert.InDelta(t, data[i].RangeEnd, readData[i].RangeEnd, 0.001, "RangeEnd should match")
		assert.InDelta(t, data[i].LOD, readData[i].LOD, 0.001, "LOD should match")
		assert.Equal(t, data[i].Bins, readData[i].Bins, "Bins should match")
		assert.Equal(t, data[i].Samples, readData[i].Samples, "Samples should match")
		assert.InDelta(t, data[i].LatencyMs, readData[i].LatencyMs, 0.001, "LatencyMs should match")
		assert.Equal(t, data[i].Stale, readData[i].Stale, "Stale should match")
	}
}

func TestWriteBenchRunsParquet_EmptyData(t *testing.T) {
	// Create temporary directory for test output
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "empty_chartbench_runs.parquet")

	// Write empty data
	err := WriteBenchRunsParquet([]BenchRun{}, outputPath)
	require.NoError(t, err, "Writing empty data should not produce error")

	// Verify file was created
	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Even empty Parquet files have metadata")
}

func TestWriteBenchStepsParquet_InvalidPath(t *testing.T) {
	// Attempt to write to an invalid path
	err := WriteBenchStepsParquet(MockFetchBenchSteps(), "/nonexistent/dir/steps.parquet")
	require.Error(t, err, "Writing to invalid path should produce error")
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestConvertBenchRunRecords(t *testing.T) {
	now := time.Now()
	end := now.Add(30 * time.Second)
	durationMs := int32(30000)
	configParams := `{"latency":"100ms"}`

	records := []schema.BenchRunRecord{
		{
			RunID:         7,
			StartTime:     now,
			EndTime:       &end,
			RunDurationMs: &durationMs,
			Profile:       "walk",
			Scenario:      "pan",
			NumSeries:     4,
			NumPoints:     100000,
			Seed:          42,
			TotalQueries:  32,
			ConfigParams:  &configParams,
		},
		{RunID: 8, StartTime: now, Profile: "sine", Scenario: "zoom"},
	}

	converted := ConvertBenchRunRecords(records)
	require.Len(t, converted, 2)

	assert.Equal(t, int64(7), converted[0].RunID)
	assert.Equal(t, "walk", converted[0].Profile)
	assert.Equal(t, "pan", converted[0].Scenario)
	assert.Equal(t, int32(32), converted[0].TotalQueries)
	require.NotNil(t, converted[0].EndTime)
	assert.Equal(t, end, *converted[0].EndTime)
	require.NotNil(t, converted[0].ConfigParams)
	assert.Equal(t, configParams, *converted[0].ConfigParams)

	assert.Equal(t, int64(8), converted[1].RunID)
	assert.Nil(t, converted[1].EndTime)
	assert.Nil(t, converted[1].RunDurationMs)
	assert.Nil(t, converted[1].ConfigParams)
}

func TestConvertBenchStepRecords(t *testing.T) {
	records := []schema.BenchStepRecord{
		{
			RunID:      7,
			Step:       3,
			Kind:       "aggregated",
			RangeStart: 100,
			RangeEnd:   900,
			LOD:        4.5,
			Bins:       178,
			Samples:    0,
			LatencyMs:  102.5,
			Stale:      true,
		},
	}

	converted := ConvertBenchStepRecords(records)
	require.Len(t, converted, 1)
	assert.Equal(t, int64(7), converted[0].RunID)
	assert.Equal(t, int32(3), converted[0].Step)
	assert.Equal(t, "aggregated", converted[0].Kind)
	assert.InDelta(t, 4.5, converted[0].LOD, 0.001)
	assert.Equal(t, int32(178), converted[0].Bins)
	assert.InDelta(t, 102.5, converted[0].LatencyMs, 0.001)
	assert.True(t, converted[0].Stale)
}

func TestConvertBenchPoints(t *testing.T) {
	points := []schema.BenchPoint{
		{
			Step:     0,
			Scenario: schema.PanScenario,
			Kind:     schema.RawKind,
			Start:    0,
			End:      800,
			LOD:      1,
			Bins:     0,
			Samples:  1600,
			Latency:  104*time.Millisecond + 500*time.Microsecond,
			Stale:    false,
		},
		{
			Step:     1,
			Scenario: schema.PanScenario,
			Kind:     schema.AggregatedKind,
			Start:    400,
			End:      1200,
			LOD:      2,
			Bins:     400,
			Samples:  0,
			Latency:  99 * time.Millisecond,
			Stale:    true,
		},
	}

	converted := ConvertBenchPoints(9, points)
	require.Len(t, converted, 2)

	assert.Equal(t, int64(9), converted[0].RunID)
	assert.Equal(t, int32(0), converted[0].Step)
	assert.Equal(t, "raw", converted[0].Kind)
	assert.Equal(t, int32(1600), converted[0].Samples)
	assert.InDelta(t, 104.5, converted[0].LatencyMs, 0.001)
	assert.False(t, converted[0].Stale)

	assert.Equal(t, int64(9), converted[1].RunID)
	assert.Equal(t, "aggregated", converted[1].Kind)
	assert.Equal(t, int32(400), converted[1].Bins)
	assert.InDelta(t, 99.0, converted[1].LatencyMs, 0.001)
	assert.True(t, converted[1].Stale)
}

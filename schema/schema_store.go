package schema

import "time"

// BenchRunRecord represents a row from the chartbench_runs table.
type BenchRunRecord struct {
	RunID         int64
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	Profile       string
	Scenario      string
	NumSeries     int32
	NumPoints     int32
	Seed          int64
	TotalQueries  int32
	ConfigParams  *string
}

// BenchStepRecord represents a row from the chartbench_run_steps table.
type BenchStepRecord struct {
	RunID      int64
	Step       int32
	Kind       string
	RangeStart float64
	RangeEnd   float64
	LOD        float64
	Bins       int32
	Samples    int32
	LatencyMs  float64
	Stale      bool
}

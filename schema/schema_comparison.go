package schema

// ComparisonDetail holds one metric from the base run, the target run, and
// their delta.
type ComparisonDetail struct {
	Metric string  `json:"metric"`
	Unit   string  `json:"unit,omitempty"`
	Before float64 `json:"before"` // Value from the base configuration's run
	After  float64 `json:"after"`  // Value from the target configuration's run
	Delta  float64 `json:"delta"`  // After - Before (positive means the target did more/took longer)
}

// ComparisonSummary has high-level deltas between the two runs.
type ComparisonSummary struct {
	NetLatencyDeltaMs float64 `json:"net_latency_delta_ms"`
	NetBinsDelta      int     `json:"net_bins_delta"`
	NetStaleDelta     int     `json:"net_stale_delta"`
}

// ComparisonResult holds the comparison details and summary of two benchmark
// runs executed with the same scenario against different engine configurations.
type ComparisonResult struct {
	BaseProfile   Profile            `json:"base_profile"`
	TargetProfile Profile            `json:"target_profile"`
	Scenario      Scenario           `json:"scenario"`
	Details       []ComparisonDetail `json:"details"`
	Summary       ComparisonSummary  `json:"summary"`
}

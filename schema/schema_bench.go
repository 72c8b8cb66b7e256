package schema

import "time"

// BenchPoint represents a single query issued by a benchmark scenario.
type BenchPoint struct {
	Step     int           `json:"step"`
	Scenario Scenario      `json:"scenario"`
	Kind     ResultKind    `json:"kind"`
	Start    float64       `json:"start"`
	End      float64       `json:"end"`
	LOD      float64       `json:"lod"`
	Bins     int           `json:"bins"`    // Min/max bins per series, zero for raw kinds
	Samples  int           `json:"samples"` // Total payload values across all series
	Latency  time.Duration `json:"latency"` // Wall time from issue to result
	Stale    bool          `json:"stale"`   // Result superseded by a newer request before it resolved
}

// BenchTotals aggregates a benchmark run.
type BenchTotals struct {
	Queries    int                `json:"queries"`
	Stale      int                `json:"stale"`
	Bins       int                `json:"bins"`
	Samples    int                `json:"samples"`
	KindCounts map[ResultKind]int `json:"kind_counts"`
	AvgLatency time.Duration      `json:"avg_latency"`
	MaxLatency time.Duration      `json:"max_latency"`
	Elapsed    time.Duration      `json:"elapsed"`
}

// BenchResult holds the full outcome of one benchmark run.
type BenchResult struct {
	Profile   Profile      `json:"profile"`
	Scenario  Scenario     `json:"scenario"`
	NumSeries int          `json:"num_series"`
	NumPoints int          `json:"num_points"`
	Seed      int64        `json:"seed"`
	Workers   int          `json:"workers"`
	Points    []BenchPoint `json:"points"`
	Totals    BenchTotals  `json:"totals"`
}

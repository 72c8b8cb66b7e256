package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodlab/chartbench/schema"
)

func TestCompareBenchResults(t *testing.T) {
	base := &schema.BenchResult{
		Profile:  schema.WalkProfile,
		Scenario: schema.PanScenario,
		Totals: schema.BenchTotals{
			Queries:    32,
			Stale:      2,
			Bins:       1000,
			Samples:    5000,
			AvgLatency: 100 * time.Millisecond,
			MaxLatency: 150 * time.Millisecond,
		},
	}
	target := &schema.BenchResult{
		Profile:  schema.SparseProfile,
		Scenario: schema.PanScenario,
		Totals: schema.BenchTotals{
			Queries:    32,
			Stale:      5,
			Bins:       1400,
			Samples:    4000,
			AvgLatency: 120 * time.Millisecond,
			MaxLatency: 140 * time.Millisecond,
		},
	}

	result := CompareBenchResults(base, target)

	assert.Equal(t, schema.WalkProfile, result.BaseProfile)
	assert.Equal(t, schema.SparseProfile, result.TargetProfile)
	assert.Equal(t, schema.PanScenario, result.Scenario)

	byMetric := make(map[string]schema.ComparisonDetail)
	for _, d := range result.Details {
		byMetric[d.Metric] = d
	}

	queries, ok := byMetric["queries"]
	require.True(t, ok)
	assert.Zero(t, queries.Delta)

	stale := byMetric["stale_results"]
	assert.Equal(t, 3.0, stale.Delta)

	bins := byMetric["bins"]
	assert.Equal(t, 400.0, bins.Delta)

	samples := byMetric["samples"]
	assert.Equal(t, -1000.0, samples.Delta)

	avg := byMetric["avg_latency"]
	assert.Equal(t, "ms", avg.Unit)
	assert.InDelta(t, 20.0, avg.Delta, 1e-9)

	max := byMetric["max_latency"]
	assert.InDelta(t, -10.0, max.Delta, 1e-9)

	assert.InDelta(t, 20.0, result.Summary.NetLatencyDeltaMs, 1e-9)
	assert.Equal(t, 400, result.Summary.NetBinsDelta)
	assert.Equal(t, 3, result.Summary.NetStaleDelta)
}

func TestCompareBenchResultsIdentical(t *testing.T) {
	run := &schema.BenchResult{
		Profile:  schema.SineProfile,
		Scenario: schema.ZoomScenario,
		Totals: schema.BenchTotals{
			Queries:    10,
			Bins:       200,
			Samples:    400,
			AvgLatency: 50 * time.Millisecond,
			MaxLatency: 60 * time.Millisecond,
		},
	}

	result := CompareBenchResults(run, run)
	for _, d := range result.Details {
		assert.Zero(t, d.Delta, "metric %s", d.Metric)
	}
	assert.Zero(t, result.Summary.NetLatencyDeltaMs)
	assert.Zero(t, result.Summary.NetBinsDelta)
	assert.Zero(t, result.Summary.NetStaleDelta)
}

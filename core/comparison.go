package core

import "github.com/lodlab/chartbench/schema"

// CompareBenchResults computes per-metric deltas between two benchmark runs
// executed with the same scenario against different engine configurations.
func CompareBenchResults(base, target *schema.BenchResult) schema.ComparisonResult {
	baseAvg := schema.DurationMs(base.Totals.AvgLatency)
	targetAvg := schema.DurationMs(target.Totals.AvgLatency)
	baseMax := schema.DurationMs(base.Totals.MaxLatency)
	targetMax := schema.DurationMs(target.Totals.MaxLatency)

	details := []schema.ComparisonDetail{
		newDetail("queries", "", float64(base.Totals.Queries), float64(target.Totals.Queries)),
		newDetail("stale_results", "", float64(base.Totals.Stale), float64(target.Totals.Stale)),
		newDetail("bins", "", float64(base.Totals.Bins), float64(target.Totals.Bins)),
		newDetail("samples", "", float64(base.Totals.Samples), float64(target.Totals.Samples)),
		newDetail("avg_latency", "ms", baseAvg, targetAvg),
		newDetail("max_latency", "ms", baseMax, targetMax),
	}

	return schema.ComparisonResult{
		BaseProfile:   base.Profile,
		TargetProfile: target.Profile,
		Scenario:      base.Scenario,
		Details:       details,
		Summary: schema.ComparisonSummary{
			NetLatencyDeltaMs: targetAvg - baseAvg,
			NetBinsDelta:      target.Totals.Bins - base.Totals.Bins,
			NetStaleDelta:     target.Totals.Stale - base.Totals.Stale,
		},
	}
}

func newDetail(metric, unit string, before, after float64) schema.ComparisonDetail {
	return schema.ComparisonDetail{
		Metric: metric,
		Unit:   unit,
		Before: before,
		After:  after,
		Delta:  after - before,
	}
}

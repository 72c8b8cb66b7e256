package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lodlab/chartbench/internal/contract"
	"github.com/lodlab/chartbench/internal/outwriter"
	"github.com/lodlab/chartbench/schema"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// GetGenerateResults generates a series set and summarizes it per series.
func GetGenerateResults(cfg *contract.Config) (*schema.GenerateResult, error) {
	set, err := GenerateSeriesSet(cfg.Profile, cfg.NumSeries, cfg.NumPoints, cfg.Seed)
	if err != nil {
		return nil, err
	}
	return BuildGenerateResult(set), nil
}

// ExecuteGenerate generates a series set and prints per-series summary stats.
// It serves as the main entry point for the 'generate' command.
func ExecuteGenerate(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	result, err := GetGenerateResults(cfg)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintGenerateResult(result, cfg, duration)
}

// GetQueryResults generates a series set and runs a single range query
// against it.
func GetQueryResults(ctx context.Context, cfg *contract.Config) (*schema.QueryResult, error) {
	store := NewStore(cfg.Latency)
	if _, err := store.Generate(cfg.Profile, cfg.NumSeries, cfg.NumPoints, cfg.Seed); err != nil {
		return nil, err
	}
	return store.Query(ctx, schema.QueryRequest{
		Start:          cfg.RangeStart,
		End:            cfg.RangeEnd,
		LOD:            cfg.LOD,
		SampleRateHint: cfg.SampleRate,
	})
}

// ExecuteQuery generates a series set, runs a single range query against it
// and prints the result. It serves as the main entry point for the 'query'
// command.
func ExecuteQuery(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	res, err := GetQueryResults(ctx, cfg)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintQueryResult(res, cfg, duration)
}

// GetBenchResults runs the benchmark scenario against a fresh store and
// persists the run when a run store is configured.
func GetBenchResults(ctx context.Context, cfg *contract.Config, mgr contract.RunManager) (*schema.BenchResult, error) {
	start := time.Now()
	store := NewStore(cfg.Latency)
	result, err := RunBench(ctx, cfg, store)
	if err != nil {
		return nil, err
	}
	persistBenchRun(mgr, cfg, result, start)
	return result, nil
}

// ExecuteBench runs the benchmark scenario against the store, persists the
// run when a run store is configured, and prints per-step and total stats.
// It serves as the main entry point for the 'bench' command.
func ExecuteBench(ctx context.Context, cfg *contract.Config, mgr contract.RunManager) error {
	start := time.Now()
	outwriter.LogBenchHeader(cfg)

	result, err := GetBenchResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintBenchResults(result, cfg, duration)
}

// GetCompareResults runs the same benchmark scenario against the base and
// target profiles and computes the delta results.
func GetCompareResults(ctx context.Context, cfg *contract.Config) (schema.ComparisonResult, error) {
	if cfg.BaseProfile == "" || cfg.TargetProfile == "" {
		return schema.ComparisonResult{}, errors.New("compare requires both --base-profile and --target-profile")
	}

	baseStore := NewStore(cfg.Latency)
	baseResult, err := runBenchForProfile(ctx, cfg, baseStore, cfg.BaseProfile)
	if err != nil {
		return schema.ComparisonResult{}, fmt.Errorf("benchmark failed for base profile %s: %w", cfg.BaseProfile, err)
	}
	targetStore := NewStore(cfg.Latency)
	targetResult, err := runBenchForProfile(ctx, cfg, targetStore, cfg.TargetProfile)
	if err != nil {
		return schema.ComparisonResult{}, fmt.Errorf("benchmark failed for target profile %s: %w", cfg.TargetProfile, err)
	}

	return CompareBenchResults(baseResult, targetResult), nil
}

// ExecuteCompare runs the same benchmark scenario twice, against the base and
// target profiles, and computes the delta results. It serves as the main
// entry point for the 'compare' command.
func ExecuteCompare(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()

	if cfg.BaseProfile == "" || cfg.TargetProfile == "" {
		return errors.New("compare requires both --base-profile and --target-profile")
	}

	// Print single header for the comparison
	outwriter.LogCompareHeader(cfg)

	comparisonResult, err := GetCompareResults(ctx, cfg)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintComparisonResults(comparisonResult, cfg, duration)
}

// ExecuteCheck runs the engine self-checks and prints the findings. A non-nil
// error is returned when any check fails, so the process exits non-zero.
func ExecuteCheck(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	result := RunEngineChecks()
	duration := time.Since(start)
	if err := outwriter.PrintCheckResults(result, cfg, duration); err != nil {
		return err
	}
	if !result.Passed {
		return fmt.Errorf("%d of %d checks failed", result.Failed, result.Total)
	}
	return nil
}

// ExecuteProfiles prints the generation profile definitions. It serves as the
// main entry point for the 'profiles' command.
func ExecuteProfiles(ctx context.Context, cfg *contract.Config) error {
	model := BuildProfilesModel()
	return outwriter.PrintProfiles(model, cfg)
}

// BuildGenerateResult summarizes a generated set for display.
func BuildGenerateResult(set *schema.SeriesSet) *schema.GenerateResult {
	result := &schema.GenerateResult{
		Profile:    set.Profile,
		Seed:       set.Seed,
		NumSeries:  set.NumSeries,
		NumPoints:  set.NumPoints,
		Sparse:     set.Sparse(),
		SampleRate: set.SampleRate,
		DomainMax:  set.DomainMax(),
		Stats:      make([]schema.SeriesStat, set.NumSeries),
	}
	for i, values := range set.Values {
		stat := schema.SeriesStat{Index: i, Count: len(values)}
		if len(values) > 0 {
			stat.First = float64(values[0])
			stat.Last = float64(values[len(values)-1])
			stat.Min = float64(values[0])
			stat.Max = float64(values[0])
			var sum float64
			for _, v := range values {
				f := float64(v)
				sum += f
				if f < stat.Min {
					stat.Min = f
				}
				if f > stat.Max {
					stat.Max = f
				}
			}
			stat.Mean = sum / float64(len(values))
		}
		result.Stats[i] = stat
	}
	return result
}

// persistBenchRun records the benchmark run and its steps in the run store.
// Persistence failures are warnings, not errors: the benchmark already ran
// and its results should still be printed.
func persistBenchRun(mgr contract.RunManager, cfg *contract.Config, result *schema.BenchResult, startTime time.Time) {
	if mgr == nil {
		return
	}
	store := mgr.GetRunStore()
	if store == nil {
		return
	}

	configParams := map[string]any{
		"latency":       cfg.Latency.String(),
		"display_width": cfg.DisplayWidth,
		"steps":         cfg.Steps,
		"workers":       cfg.Workers,
	}
	var paramsJSON *string
	if raw, err := json.Marshal(configParams); err == nil {
		s := string(raw)
		paramsJSON = &s
	}

	runID, err := store.BeginRun(startTime, schema.BenchRunRecord{
		StartTime:    startTime,
		Profile:      string(result.Profile),
		Scenario:     string(result.Scenario),
		NumSeries:    int32(result.NumSeries),
		NumPoints:    int32(result.NumPoints),
		Seed:         result.Seed,
		ConfigParams: paramsJSON,
	})
	if err != nil {
		contract.LogWarn("Run tracking initialization failed", err)
		return
	}

	for _, p := range result.Points {
		step := schema.BenchStepRecord{
			RunID:      runID,
			Step:       int32(p.Step),
			Kind:       string(p.Kind),
			RangeStart: p.Start,
			RangeEnd:   p.End,
			LOD:        p.LOD,
			Bins:       int32(p.Bins),
			Samples:    int32(p.Samples),
			LatencyMs:  float64(p.Latency) / float64(time.Millisecond),
			Stale:      p.Stale,
		}
		if err := store.RecordStep(runID, step); err != nil {
			contract.LogWarn("Failed to record benchmark step", err)
			return
		}
	}

	if err := store.EndRun(runID, time.Now(), result.Totals.Queries); err != nil {
		contract.LogWarn("Failed to finalize run tracking", err)
	}
}

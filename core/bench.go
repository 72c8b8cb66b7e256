package core

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lodlab/chartbench/internal/contract"
	"github.com/lodlab/chartbench/schema"
)

// buildScenarioRequests drives a viewport through the navigation pattern of
// the scenario and captures one query request per successful viewport change,
// the way a chart controller would: read the visible range, derive the target
// resolution from the display width, and issue a range query.
func buildScenarioRequests(scenario schema.Scenario, set *schema.SeriesSet, displayWidth, steps int) []schema.QueryRequest {
	vp := NewViewport(0, set.DomainMax())
	var reqs []schema.QueryRequest
	vp.OnChange(func(r schema.Range) {
		lod := r.Width / float64(displayWidth)
		if lod < 1 {
			lod = 1
		}
		reqs = append(reqs, schema.QueryRequest{
			Start:          r.Start,
			End:            r.End,
			LOD:            lod,
			SampleRateHint: set.SampleRate,
		})
	})

	domain := set.DomainMax()
	switch scenario {
	case schema.ZoomScenario:
		vp.SetRange(0, domain)
		for i := 1; i < steps; i++ {
			if i < steps/2 {
				vp.Zoom(0.5, 0.5)
			} else {
				vp.Zoom(2, 0.5)
			}
		}
	case schema.MixedScenario:
		width := domain / 10
		vp.SetRange(0, width)
		for i := 1; i < steps; i++ {
			if i%2 == 0 {
				vp.Zoom(0.8, 0.5)
			} else {
				vp.Pan(width / 2)
			}
		}
	default: // PanScenario, SparsePanScenario
		width := domain / 10
		vp.SetRange(0, width)
		for i := 1; i < steps; i++ {
			vp.Pan(width / 2)
		}
	}
	return reqs
}

// RunBench generates a series set per the config, replays the scenario's
// query stream against the store and collects per-step stats. Workers > 1
// issues that many queries concurrently; results completing after a
// later-tagged request has already resolved are marked stale, mirroring the
// request-counter discipline a caller needs during rapid panning.
func RunBench(ctx context.Context, cfg *contract.Config, store *Store) (*schema.BenchResult, error) {
	return runBenchForProfile(ctx, cfg, store, cfg.Profile)
}

func runBenchForProfile(ctx context.Context, cfg *contract.Config, store *Store, profile schema.Profile) (*schema.BenchResult, error) {
	set, err := store.Generate(profile, cfg.NumSeries, cfg.NumPoints, cfg.Seed)
	if err != nil {
		return nil, err
	}
	reqs := buildScenarioRequests(cfg.Scenario, set, cfg.DisplayWidth, cfg.Steps)

	points := make([]schema.BenchPoint, len(reqs))
	errs := make([]error, len(reqs))
	var latest atomic.Int64
	latest.Store(-1)

	benchStart := time.Now()
	sem := make(chan struct{}, cfg.Workers)
	var wg sync.WaitGroup
	for idx, req := range reqs {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int, req schema.QueryRequest) {
			defer wg.Done()
			defer func() { <-sem }()
			start := time.Now()
			res, err := store.Query(ctx, req)
			if err != nil {
				errs[idx] = err
				return
			}
			stale := false
			for {
				cur := latest.Load()
				if int64(idx) < cur {
					// A later request already resolved; this result would be
					// discarded by a real controller.
					stale = true
					break
				}
				if latest.CompareAndSwap(cur, int64(idx)) {
					break
				}
			}
			points[idx] = schema.BenchPoint{
				Step:     idx,
				Scenario: cfg.Scenario,
				Kind:     res.Kind,
				Start:    res.Start,
				End:      res.End,
				LOD:      req.LOD,
				Bins:     res.BinCount(),
				Samples:  res.SampleCount(),
				Latency:  time.Since(start),
				Stale:    stale,
			}
		}(idx, req)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return &schema.BenchResult{
		Profile:   profile,
		Scenario:  cfg.Scenario,
		NumSeries: cfg.NumSeries,
		NumPoints: cfg.NumPoints,
		Seed:      cfg.Seed,
		Workers:   cfg.Workers,
		Points:    points,
		Totals:    computeBenchTotals(points, time.Since(benchStart)),
	}, nil
}

// computeBenchTotals aggregates per-step stats into run totals.
func computeBenchTotals(points []schema.BenchPoint, elapsed time.Duration) schema.BenchTotals {
	totals := schema.BenchTotals{
		Queries:    len(points),
		KindCounts: make(map[schema.ResultKind]int),
		Elapsed:    elapsed,
	}
	var latencySum time.Duration
	for _, p := range points {
		totals.Bins += p.Bins
		totals.Samples += p.Samples
		totals.KindCounts[p.Kind]++
		if p.Stale {
			totals.Stale++
		}
		latencySum += p.Latency
		if p.Latency > totals.MaxLatency {
			totals.MaxLatency = p.Latency
		}
	}
	if len(points) > 0 {
		totals.AvgLatency = latencySum / time.Duration(len(points))
	}
	return totals
}

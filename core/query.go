package core

import (
	"errors"
	"math"
	"sort"

	"github.com/chewxy/math32"
	"github.com/lodlab/chartbench/schema"
)

// Sentinel errors for invalid query arguments.
var (
	ErrInvalidLOD     = errors.New("lod must be a positive finite number")
	ErrInvalidRange   = errors.New("range bounds must be finite numbers")
	ErrUnknownProfile = errors.New("unknown generation profile")
	ErrNoSeriesSet    = errors.New("no series set has been generated")
)

// validateRequest rejects invalid-argument inputs. Out-of-domain ranges are
// not errors; they are clamped by the dense and sparse paths.
func validateRequest(req schema.QueryRequest) error {
	if math.IsNaN(req.LOD) || math.IsInf(req.LOD, 0) || req.LOD <= 0 {
		return ErrInvalidLOD
	}
	if math.IsNaN(req.Start) || math.IsInf(req.Start, 0) ||
		math.IsNaN(req.End) || math.IsInf(req.End, 0) {
		return ErrInvalidRange
	}
	return nil
}

// queryDense answers a request against a dense set. Start and End are index
// positions, clamped to [0, NumPoints].
func queryDense(set *schema.SeriesSet, req schema.QueryRequest) *schema.QueryResult {
	lo := int(math.Floor(req.Start))
	hi := int(math.Ceil(req.End))
	if lo < 0 {
		lo = 0
	}
	if hi > set.NumPoints {
		hi = set.NumPoints
	}
	if hi < lo {
		hi = lo
	}
	if req.LOD > 1 {
		width := hi - lo
		if req.LOD < float64(width) {
			width = int(math.Floor(req.LOD))
		}
		if width < 1 {
			width = 1
		}
		return denseBinned(set, lo, hi, width)
	}
	return denseRaw(set, lo, hi)
}

// denseRaw copies the value slice over [lo, hi) for each series.
func denseRaw(set *schema.SeriesSet, lo, hi int) *schema.QueryResult {
	series := make([][]float32, set.NumSeries)
	for i := range series {
		series[i] = append([]float32(nil), set.Values[i][lo:hi]...)
	}
	return &schema.QueryResult{
		Kind:   schema.RawKind,
		Start:  float64(lo),
		End:    float64(hi),
		Series: series,
	}
}

// denseBinned partitions [lo, hi) into consecutive chunks of width indices
// and emits interleaved (min, max) pairs per chunk.
func denseBinned(set *schema.SeriesSet, lo, hi, width int) *schema.QueryResult {
	binCount := 0
	if hi > lo {
		binCount = (hi - lo + width - 1) / width
	}
	series := make([][]float32, set.NumSeries)
	for i := range series {
		values := set.Values[i]
		bins := make([]float32, 0, binCount*2)
		for b := lo; b < hi; b += width {
			end := b + width
			if end > hi {
				end = hi
			}
			mn, mx := values[b], values[b]
			for _, v := range values[b+1 : end] {
				mn = math32.Min(mn, v)
				mx = math32.Max(mx, v)
			}
			bins = append(bins, mn, mx)
		}
		series[i] = bins
	}
	return &schema.QueryResult{
		Kind:     schema.AggregatedKind,
		Start:    float64(lo),
		End:      float64(hi),
		Series:   series,
		BinWidth: float64(width),
	}
}

// lowerBound returns the leftmost insertion point for target in ts: the
// smallest index such that every element before it is < target.
func lowerBound(ts []float64, target float64) int {
	return sort.SearchFloat64s(ts, target)
}

// querySparse answers a request against a timestamped set. Start and End are
// timestamps in the same unit as the series' timestamps.
func querySparse(set *schema.SeriesSet, req schema.QueryRequest) *schema.QueryResult {
	hint := req.SampleRateHint
	if hint <= 0 {
		hint = set.SampleRate
	}
	// The escape to raw prevents blocky aggregation when the requested bin
	// width is finer than the data's own sampling interval.
	if req.LOD == 1 || req.LOD < hint {
		return sparseRaw(set, req, hint)
	}
	return sparseBinned(set, req, hint)
}

// sparseRaw slices value and timestamp arrays over the index range covering
// the request, padded by one index on each side so line segments crossing the
// viewport boundary still render continuously.
func sparseRaw(set *schema.SeriesSet, req schema.QueryRequest, hint float64) *schema.QueryResult {
	// Index bounds come from the first series' timestamps; all series in a
	// sparse set share indexing semantics.
	master := set.Timestamps[0]
	lo, hi := 0, 0
	if req.End > req.Start {
		lo = lowerBound(master, req.Start)
		hi = lowerBound(master, req.End)
		if lo > 0 {
			lo--
		}
		if hi < len(master) {
			hi++
		}
	}
	series := make([][]float32, set.NumSeries)
	timestamps := make([][]float64, set.NumSeries)
	for i := range series {
		l, h := lo, hi
		if n := set.Len(i); h > n {
			h = n
			if l > n {
				l = n
			}
		}
		series[i] = append([]float32(nil), set.Values[i][l:h]...)
		timestamps[i] = append([]float64(nil), set.Timestamps[i][l:h]...)
	}
	return &schema.QueryResult{
		Kind:       schema.SparseRawKind,
		Start:      req.Start,
		End:        req.End,
		Series:     series,
		Timestamps: timestamps,
		SampleRate: hint,
	}
}

// sparseBinned aggregates a timestamped range into bins of LOD width. The
// first bin's start is aligned down to the nearest multiple of the bin width
// so bin boundaries do not shift as the viewport pans.
func sparseBinned(set *schema.SeriesSet, req schema.QueryRequest, hint float64) *schema.QueryResult {
	width := req.LOD
	alignedStart := math.Floor(req.Start/width) * width
	binCount := 0
	if req.End > alignedStart {
		binCount = int(math.Ceil((req.End - alignedStart) / width))
	}
	series := make([][]float32, set.NumSeries)
	for i := range series {
		series[i] = binSparseSeries(set.Values[i], set.Timestamps[i], alignedStart, width, binCount, hint)
	}
	return &schema.QueryResult{
		Kind:       schema.SparseAggregatedKind,
		Start:      alignedStart,
		End:        alignedStart + float64(binCount)*width,
		Series:     series,
		BinWidth:   width,
		SampleRate: hint,
	}
}

// binSparseSeries scans one series with a monotonically advancing cursor,
// never re-scanning from the start. Empty bins emit the (0, 0) sentinel; bins
// whose internal inter-sample gap exceeds the sample rate hint are clamped to
// include zero as a visual signal that the bin is not fully populated.
func binSparseSeries(values []float32, timestamps []float64, alignedStart, width float64, binCount int, hint float64) []float32 {
	bins := make([]float32, 0, binCount*2)
	cursor := lowerBound(timestamps, alignedStart)
	for b := 0; b < binCount; b++ {
		binEnd := alignedStart + float64(b+1)*width
		var mn, mx float32
		var prev float64
		var maxGap float64
		count := 0
		for cursor < len(timestamps) && timestamps[cursor] < binEnd {
			v := values[cursor]
			if count == 0 {
				mn, mx = v, v
			} else {
				mn = math32.Min(mn, v)
				mx = math32.Max(mx, v)
				if gap := timestamps[cursor] - prev; gap > maxGap {
					maxGap = gap
				}
			}
			prev = timestamps[cursor]
			count++
			cursor++
		}
		if count == 0 {
			bins = append(bins, 0, 0)
			continue
		}
		if maxGap > hint {
			mn = math32.Min(mn, 0)
			mx = math32.Max(mx, 0)
		}
		bins = append(bins, mn, mx)
	}
	return bins
}

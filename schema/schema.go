// Package schema has configs, models and shared types for all parts of chartbench.
package schema

// SeriesSet holds the full-resolution sample buffers for one generation.
// A set is built completely before it is published and must never be mutated
// afterwards; queries read it concurrently without locking.
type SeriesSet struct {
	Profile    Profile     // Generation profile that produced this set
	Seed       int64       // PRNG seed used for the generation
	NumSeries  int         // Number of independent series in the set
	NumPoints  int         // Samples per series (dense), or nominal sample count (sparse)
	SampleRate float64     // Nominal inter-sample spacing in ms; zero for dense sets
	Values     [][]float32 // Per-series ordered sample values
	Timestamps [][]float64 // Per-series non-decreasing timestamps in ms; nil for dense sets
}

// Sparse reports whether the set carries explicit timestamps.
func (s *SeriesSet) Sparse() bool {
	return len(s.Timestamps) > 0
}

// Len returns the sample count of series i.
func (s *SeriesSet) Len(i int) int {
	if i < 0 || i >= len(s.Values) {
		return 0
	}
	return len(s.Values[i])
}

// DomainMax returns the upper bound of the addressable range: the sample
// count for dense sets, or the last timestamp of the first series for
// sparse sets.
func (s *SeriesSet) DomainMax() float64 {
	if !s.Sparse() {
		return float64(s.NumPoints)
	}
	ts := s.Timestamps[0]
	if len(ts) == 0 {
		return 0
	}
	return ts[len(ts)-1]
}

// QueryRequest is the input contract of the range query engine. Start and End
// are index positions for dense sets and timestamps in ms for sparse sets.
type QueryRequest struct {
	Start          float64 `json:"start"`
	End            float64 `json:"end"`
	LOD            float64 `json:"lod"`
	SampleRateHint float64 `json:"sample_rate_hint,omitempty"`
}

// Range is a read-only snapshot of a viewport's visible sub-range.
type Range struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Width float64 `json:"width"`
}

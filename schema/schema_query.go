package schema

// QueryResult is the value object returned per range query. The payload shape
// depends on Kind:
//   - RawKind: Series holds per-series value slices.
//   - AggregatedKind: Series holds interleaved [min0,max0,min1,max1,...] bins
//     and BinWidth is the index width of one bin.
//   - SparseRawKind: Series holds per-series value slices, Timestamps the
//     matching timestamp slices, and SampleRate echoes the hint.
//   - SparseAggregatedKind: Series holds interleaved min/max bins, BinWidth is
//     the bin width in ms, Start is grid-aligned, and SampleRate echoes the
//     hint used for gap detection.
//
// Payloads are independent copies; a result stays valid after the next
// generation replaces the underlying SeriesSet.
type QueryResult struct {
	Kind       ResultKind  `json:"kind"`
	Start      float64     `json:"start"`
	End        float64     `json:"end"`
	Series     [][]float32 `json:"series"`
	Timestamps [][]float64 `json:"timestamps,omitempty"`
	BinWidth   float64     `json:"bin_width,omitempty"`
	SampleRate float64     `json:"sample_rate,omitempty"`
}

// Aggregated reports whether the payload is interleaved min/max bins.
func (r *QueryResult) Aggregated() bool {
	return r.Kind == AggregatedKind || r.Kind == SparseAggregatedKind
}

// BinCount returns the number of min/max bins per series, or zero for raw kinds.
func (r *QueryResult) BinCount() int {
	if !r.Aggregated() || len(r.Series) == 0 {
		return 0
	}
	return len(r.Series[0]) / 2
}

// SampleCount returns the total number of payload values across all series.
func (r *QueryResult) SampleCount() int {
	total := 0
	for _, s := range r.Series {
		total += len(s)
	}
	return total
}

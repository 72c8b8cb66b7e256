package schema

// EnrichedBenchPoint adds presentation data to a BenchPoint.
type EnrichedBenchPoint struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	BenchPoint
}

// GetPlainLabel returns a plain text label describing the payload shape of a
// query result kind.
func GetPlainLabel(kind ResultKind) string {
	switch kind {
	case RawKind:
		return "Raw"
	case AggregatedKind:
		return "Binned"
	case SparseRawKind:
		return "SparseRaw"
	case SparseAggregatedKind:
		return "SparseBinned"
	default:
		return "Unknown"
	}
}

// EnrichBenchPoints adds index and label to a list of bench points.
func EnrichBenchPoints(points []BenchPoint) []EnrichedBenchPoint {
	output := make([]EnrichedBenchPoint, len(points))
	for i, p := range points {
		output[i] = EnrichedBenchPoint{
			Index:      i + 1,
			Label:      GetPlainLabel(p.Kind),
			BenchPoint: p,
		}
	}
	return output
}

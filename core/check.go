package core

import (
	"fmt"
	"math"

	"github.com/lodlab/chartbench/schema"
)

// RunEngineChecks exercises the engine's own invariants with fixed seeds and
// reports one finding per invariant. It is the doctor command behind
// `chartbench check`.
func RunEngineChecks() schema.CheckResult {
	findings := []schema.CheckFinding{
		checkDeterminism(),
		checkRawAggregatedConsistency(),
		checkGridAlignment(),
		checkZoomFloor(),
		checkClamping(),
		checkEmptyRange(),
	}
	result := schema.CheckResult{Passed: true, Total: len(findings), Findings: findings}
	for _, f := range findings {
		if !f.Passed {
			result.Passed = false
			result.Failed++
		}
	}
	return result
}

// checkDeterminism verifies that re-seeding makes generation bit-reproducible,
// including after switching profiles and switching back.
func checkDeterminism() schema.CheckFinding {
	finding := schema.CheckFinding{Name: "generation determinism", Passed: true}
	first, err := GenerateSeriesSet(schema.WalkProfile, 3, 512, 99)
	if err != nil {
		return failFinding(finding, err.Error())
	}
	if _, err := GenerateSeriesSet(schema.SineProfile, 3, 512, 99); err != nil {
		return failFinding(finding, err.Error())
	}
	second, err := GenerateSeriesSet(schema.WalkProfile, 3, 512, 99)
	if err != nil {
		return failFinding(finding, err.Error())
	}
	for i := range first.Values {
		for j := range first.Values[i] {
			if first.Values[i][j] != second.Values[i][j] {
				return failFinding(finding, fmt.Sprintf("series %d diverges at index %d", i, j))
			}
		}
	}
	return finding
}

// checkRawAggregatedConsistency verifies that aggregated bins never disagree
// with the min/max computed directly over the corresponding raw slice.
func checkRawAggregatedConsistency() schema.CheckFinding {
	finding := schema.CheckFinding{Name: "raw/aggregated consistency", Passed: true}
	set, err := GenerateSeriesSet(schema.WalkProfile, 2, 1000, 7)
	if err != nil {
		return failFinding(finding, err.Error())
	}
	for _, tc := range []struct{ start, end, lod float64 }{
		{0, 100, 2},
		{37, 411, 5},
		{500, 1000, 25},
	} {
		agg := queryDense(set, schema.QueryRequest{Start: tc.start, End: tc.end, LOD: tc.lod})
		raw := queryDense(set, schema.QueryRequest{Start: tc.start, End: tc.end, LOD: 1})
		width := int(tc.lod)
		for i := range agg.Series {
			for b := 0; b < agg.BinCount(); b++ {
				lo := b * width
				hi := lo + width
				if hi > len(raw.Series[i]) {
					hi = len(raw.Series[i])
				}
				mn, mx := raw.Series[i][lo], raw.Series[i][lo]
				for _, v := range raw.Series[i][lo:hi] {
					if v < mn {
						mn = v
					}
					if v > mx {
						mx = v
					}
				}
				if agg.Series[i][b*2] != mn || agg.Series[i][b*2+1] != mx {
					return failFinding(finding, fmt.Sprintf("bin %d of series %d disagrees with raw slice", b, i))
				}
			}
		}
	}
	return finding
}

// checkGridAlignment verifies that bin starts are a function of the bin width
// and the domain origin only, not of the raw request start.
func checkGridAlignment() schema.CheckFinding {
	finding := schema.CheckFinding{Name: "grid alignment stability", Passed: true}
	set, err := GenerateSeriesSet(schema.SparseProfile, 1, 2000, 13)
	if err != nil {
		return failFinding(finding, err.Error())
	}
	const lod = 200.0
	a := querySparse(set, schema.QueryRequest{Start: 1005, End: 5005, LOD: lod})
	b := querySparse(set, schema.QueryRequest{Start: 1006, End: 5006, LOD: lod})
	if a.Start != b.Start {
		return failFinding(finding, fmt.Sprintf("aligned starts differ: %v vs %v", a.Start, b.Start))
	}
	if math.Mod(a.Start, lod) != 0 {
		return failFinding(finding, fmt.Sprintf("start %v is not grid-aligned to %v", a.Start, lod))
	}
	shared := len(a.Series[0])
	if len(b.Series[0]) < shared {
		shared = len(b.Series[0])
	}
	for i := 0; i < shared; i++ {
		if a.Series[0][i] != b.Series[0][i] {
			return failFinding(finding, fmt.Sprintf("shared bin value %d shifted under a 1ms pan", i))
		}
	}
	return finding
}

// checkZoomFloor verifies that repeated zoom-in converges on the minimum
// width and then stops changing the range.
func checkZoomFloor() schema.CheckFinding {
	finding := schema.CheckFinding{Name: "zoom floor", Passed: true}
	vp := NewViewport(0, 1000)
	for i := 0; i < 50; i++ {
		vp.Zoom(0.1, 0.5)
	}
	settled := vp.Range()
	if settled.Width < DefaultMinViewportWidth {
		return failFinding(finding, fmt.Sprintf("width %v fell below the floor", settled.Width))
	}
	vp.Zoom(0.1, 0.5)
	if vp.Range() != settled {
		return failFinding(finding, "zoom below the floor still changed the range")
	}
	return finding
}

// checkClamping verifies that out-of-domain range sets are clamped, never
// surfaced as errors.
func checkClamping() schema.CheckFinding {
	finding := schema.CheckFinding{Name: "viewport clamping", Passed: true}
	vp := NewViewport(0, 1000)
	vp.SetRange(-50, 10)
	if r := vp.Range(); r.Start != 0 || r.End != 10 {
		return failFinding(finding, fmt.Sprintf("SetRange(-50, 10) produced [%v, %v]", r.Start, r.End))
	}
	vp.SetRange(10, 5000)
	if r := vp.Range(); r.Start != 10 || r.End != 1000 {
		return failFinding(finding, fmt.Sprintf("SetRange(10, 5000) produced [%v, %v]", r.Start, r.End))
	}
	return finding
}

// checkEmptyRange verifies that an empty query range yields zero bins and
// zero-length slices, not an error.
func checkEmptyRange() schema.CheckFinding {
	finding := schema.CheckFinding{Name: "empty range", Passed: true}
	set, err := GenerateSeriesSet(schema.WalkProfile, 1, 100, 3)
	if err != nil {
		return failFinding(finding, err.Error())
	}
	raw := queryDense(set, schema.QueryRequest{Start: 50, End: 50, LOD: 1})
	if len(raw.Series[0]) != 0 {
		return failFinding(finding, "empty raw range returned samples")
	}
	agg := queryDense(set, schema.QueryRequest{Start: 80, End: 20, LOD: 4})
	if agg.BinCount() != 0 {
		return failFinding(finding, "reversed range returned bins")
	}
	return finding
}

func failFinding(finding schema.CheckFinding, detail string) schema.CheckFinding {
	finding.Passed = false
	finding.Detail = detail
	return finding
}

package core

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lodlab/chartbench/schema"
)

// Generation tuning constants. Changing any of these changes the generated
// bitstream, so they are fixed rather than configurable.
const (
	sineSegments = 8   // segments per series in the sine profile
	pulseRegion  = 64  // samples per volatile/calm region in the pulse profile
	sparseMeanMs = 10  // nominal inter-sample spacing for the sparse profile
	sparseGapSz  = 500 // size of an injected large gap, in ms
)

// sparseGapChance is the independent per-sample probability of an injected
// large gap in the sparse profile.
const sparseGapChance = 0.005

// GenerateSeriesSet builds a SeriesSet deterministically from a named profile
// and a single integer seed. The PRNG stream is re-seeded at the start of
// every generation, so switching profiles and switching back reproduces
// bit-identical output.
func GenerateSeriesSet(profile schema.Profile, nSeries, nPoints int, seed int64) (*schema.SeriesSet, error) {
	if _, ok := schema.ValidProfiles[profile]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, profile)
	}
	if nSeries < 0 || nPoints < 0 {
		return nil, fmt.Errorf("series and point counts must be non-negative, got %d and %d", nSeries, nPoints)
	}

	rng := rand.New(rand.NewSource(seed))
	set := &schema.SeriesSet{
		Profile:   profile,
		Seed:      seed,
		NumSeries: nSeries,
		NumPoints: nPoints,
		Values:    make([][]float32, nSeries),
	}

	switch profile {
	case schema.WalkProfile:
		generateWalk(rng, set)
	case schema.SineProfile:
		generateSine(rng, set)
	case schema.PulseProfile:
		generatePulse(rng, set)
	case schema.GradientProfile:
		generateGradient(rng, set)
	case schema.SparseProfile:
		generateSparse(rng, set)
	}
	return set, nil
}

// generateWalk fills each series with a random walk: the cumulative sum of
// uniform steps in [-1, 1).
func generateWalk(rng *rand.Rand, set *schema.SeriesSet) {
	for i := range set.Values {
		values := make([]float32, set.NumPoints)
		var acc float32
		for j := range values {
			acc += rng.Float32()*2 - 1
			values[j] = acc
		}
		set.Values[i] = values
	}
}

// generateSine splits each series into fixed segments with distinct
// frequency and amplitude. Even segments carry fixed parameters so every
// generation shares recognizable landmarks; odd segments are randomized.
func generateSine(rng *rand.Rand, set *schema.SeriesSet) {
	segLen := set.NumPoints / sineSegments
	if segLen < 1 {
		segLen = 1
	}
	for i := range set.Values {
		// Draw per-segment parameters up front. Even segments are fixed so
		// every generation shares recognizable landmarks.
		freqs := make([]float64, sineSegments)
		amps := make([]float64, sineSegments)
		for seg := 0; seg < sineSegments; seg++ {
			if seg%2 == 0 {
				freqs[seg] = 0.02 * float64(seg+1)
				amps[seg] = 40
			} else {
				freqs[seg] = 0.005 + rng.Float64()*0.045
				amps[seg] = 10 + rng.Float64()*50
			}
		}
		values := make([]float32, set.NumPoints)
		for j := range values {
			seg := j / segLen
			if seg >= sineSegments {
				seg = sineSegments - 1
			}
			values[j] = float32(amps[seg] * math.Sin(2*math.Pi*freqs[seg]*float64(j)))
		}
		set.Values[i] = values
	}
}

// generatePulse alternates volatile spike regions and calm smooth regions.
func generatePulse(rng *rand.Rand, set *schema.SeriesSet) {
	for i := range set.Values {
		values := make([]float32, set.NumPoints)
		for j := range values {
			if (j/pulseRegion)%2 == 0 {
				// Calm region: low-amplitude smooth signal.
				values[j] = float32(5 * math.Sin(2*math.Pi*0.01*float64(j)))
			} else {
				// Volatile region: uniform spikes.
				values[j] = (rng.Float32()*2 - 1) * 50
			}
		}
		set.Values[i] = values
	}
}

// generateGradient scales amplitude, frequency and noise linearly across the
// series index and injects spikes with a probability that grows with it.
func generateGradient(rng *rand.Rand, set *schema.SeriesSet) {
	for i := range set.Values {
		amp := 10 + 5*float64(i)
		freq := 0.01 * float64(i+1)
		noise := 0.5 * float64(i+1)
		spikeChance := 0.002 * float64(i+1)
		values := make([]float32, set.NumPoints)
		for j := range values {
			v := amp*math.Sin(2*math.Pi*freq*float64(j)) + noise*(rng.Float64()*2-1)
			if rng.Float64() < spikeChance {
				v *= 3
			}
			values[j] = float32(v)
		}
		set.Values[i] = values
	}
}

// generateSparse jitters inter-sample spacing around a nominal mean and adds
// an occasional large gap, producing per-series timestamp arrays used to
// exercise the sparse query path.
func generateSparse(rng *rand.Rand, set *schema.SeriesSet) {
	set.SampleRate = sparseMeanMs
	set.Timestamps = make([][]float64, set.NumSeries)
	for i := range set.Values {
		values := make([]float32, set.NumPoints)
		timestamps := make([]float64, set.NumPoints)
		var t float64
		var acc float32
		for j := range values {
			t += sparseMeanMs * (0.5 + rng.Float64())
			if rng.Float64() < sparseGapChance {
				t += sparseGapSz
			}
			timestamps[j] = t
			acc += rng.Float32()*2 - 1
			values[j] = acc
		}
		set.Values[i] = values
		set.Timestamps[i] = timestamps
	}
}

package core

import "github.com/lodlab/chartbench/schema"

// BuildProfilesModel returns the display model describing every generation
// profile: what the data looks like and which query paths it exercises.
func BuildProfilesModel() schema.ProfilesRenderModel {
	return schema.ProfilesRenderModel{
		Title:       "Generation Profiles",
		Description: "Deterministic seeded profiles for generating benchmark series.",
		Profiles: []schema.ProfileInfo{
			{
				Name:    string(schema.WalkProfile),
				Purpose: "Random walk with uniform increments, the baseline dense workload.",
				Factors: []string{"cumulative sum", "uniform [-1, 1) steps"},
			},
			{
				Name:    string(schema.SineProfile),
				Purpose: "Piecewise sine waves whose frequency and amplitude change per segment.",
				Factors: []string{"8 segments", "fixed params on even segments", "randomized on odd"},
			},
			{
				Name:    string(schema.PulseProfile),
				Purpose: "Calm regions alternating with high-amplitude spike regions.",
				Factors: []string{"64-sample regions", "uniform ±50 spikes"},
			},
			{
				Name:    string(schema.GradientProfile),
				Purpose: "Per-series amplitude, noise and spike chance that grow with the series index.",
				Factors: []string{"amplitude 10+5i", "noise 0.5(i+1)", "spike chance 0.2%(i+1)"},
			},
			{
				Name:    string(schema.SparseProfile),
				Purpose: "Irregularly timestamped walk with occasional large gaps, for the sparse query path.",
				Factors: []string{"~10ms mean spacing", "0.5% gap chance", "500x gap size"},
				Sparse:  true,
			},
		},
	}
}

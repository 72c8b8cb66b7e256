package schema

// SeriesStat summarizes one generated series for display.
type SeriesStat struct {
	Index int     `json:"index"`
	Count int     `json:"count"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	First float64 `json:"first"`
	Last  float64 `json:"last"`
}

// GenerateResult summarizes a generation for display.
type GenerateResult struct {
	Profile    Profile      `json:"profile"`
	Seed       int64        `json:"seed"`
	NumSeries  int          `json:"num_series"`
	NumPoints  int          `json:"num_points"`
	Sparse     bool         `json:"sparse"`
	SampleRate float64      `json:"sample_rate,omitempty"`
	DomainMax  float64      `json:"domain_max"`
	Stats      []SeriesStat `json:"stats"`
}

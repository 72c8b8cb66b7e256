package schema

// CheckFinding represents the outcome of one engine invariant check.
type CheckFinding struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"` // Populated on failure with the observed divergence
}

// CheckResult holds the results of an engine self-check.
type CheckResult struct {
	Passed   bool           `json:"passed"`
	Total    int            `json:"total"`
	Failed   int            `json:"failed"`
	Findings []CheckFinding `json:"findings"`
}

// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/lodlab/chartbench/internal/contract"
	"github.com/lodlab/chartbench/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteGenerate prints generation summary stats using the configured output format.
func (ow *OutWriter) WriteGenerate(result *schema.GenerateResult, cfg *contract.Config, duration time.Duration) error {
	return PrintGenerateResult(result, cfg, duration)
}

// WriteQuery prints a single query result using the configured output format.
func (ow *OutWriter) WriteQuery(result *schema.QueryResult, cfg *contract.Config, duration time.Duration) error {
	return PrintQueryResult(result, cfg, duration)
}

// WriteBench prints benchmark results using the configured output format.
func (ow *OutWriter) WriteBench(result *schema.BenchResult, cfg *contract.Config, duration time.Duration) error {
	return PrintBenchResults(result, cfg, duration)
}

// WriteComparison prints comparison results using the configured output format.
func (ow *OutWriter) WriteComparison(result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	return PrintComparisonResults(result, cfg, duration)
}

// WriteCheck prints engine check findings using the configured output format.
func (ow *OutWriter) WriteCheck(result schema.CheckResult, cfg *contract.Config, duration time.Duration) error {
	return PrintCheckResults(result, cfg, duration)
}

// WriteProfiles prints profile definitions using the configured output format.
func (ow *OutWriter) WriteProfiles(model schema.ProfilesRenderModel, cfg *contract.Config) error {
	return PrintProfiles(model, cfg)
}

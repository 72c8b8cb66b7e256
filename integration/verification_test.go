//go:build integration

// Package integration contains integration tests for chartbench.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags integration ./integration
// Or use: make test-integration
package integration

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// queryOutput mirrors the JSON payload the query command writes.
type queryOutput struct {
	Kind     string      `json:"kind"`
	Start    float64     `json:"start"`
	End      float64     `json:"end"`
	Series   [][]float32 `json:"series"`
	BinWidth float64     `json:"bin_width"`
}

// buildChartbench builds the chartbench binary into dir and returns its path.
func buildChartbench(t *testing.T, dir string) string {
	binPath := filepath.Join(dir, "chartbench")
	buildCmd := exec.Command("go", "build", "-o", binPath, ".")
	buildCmd.Dir = ".." // Project root
	out, err := buildCmd.CombinedOutput()
	require.NoError(t, err, "build failed: %s", string(out))
	return binPath
}

// runQueryToFile runs a query with JSON output into the given file.
func runQueryToFile(t *testing.T, binPath, outFile string, extra ...string) {
	args := []string{
		"query",
		"--output", "json",
		"--output-file", outFile,
		"--latency", "0",
		"--run-backend", "none",
	}
	args = append(args, extra...)
	cmd := exec.Command(binPath, args...)
	cmd.Dir = ".."
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "query failed: %s", string(out))
}

// TestQueryDeterminismVerification runs the same query twice and verifies the
// engine produces byte-identical JSON output for a fixed seed.
func TestQueryDeterminismVerification(t *testing.T) {
	dir := t.TempDir()
	binPath := buildChartbench(t, dir)

	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")

	queryArgs := []string{
		"--profile", "walk",
		"--seed", "1234",
		"--series", "3",
		"--points", "20000",
		"--range-start", "0",
		"--range-end", "20000",
		"--lod", "50",
	}
	runQueryToFile(t, binPath, first, queryArgs...)
	runQueryToFile(t, binPath, second, queryArgs...)

	firstData, err := os.ReadFile(first)
	require.NoError(t, err)
	secondData, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, firstData, secondData, "same seed must produce identical output")

	var result queryOutput
	require.NoError(t, json.Unmarshal(firstData, &result))
	assert.Equal(t, "aggregated", result.Kind)
	require.Len(t, result.Series, 3)
	// 20000 points at 50 per bin gives 400 bins, stored as min/max pairs.
	for _, values := range result.Series {
		assert.Len(t, values, 800)
	}
}

// TestRawQueryVerification verifies a raw query returns one value per index
// in the requested window.
func TestRawQueryVerification(t *testing.T) {
	dir := t.TempDir()
	binPath := buildChartbench(t, dir)

	outFile := filepath.Join(dir, "raw.json")
	runQueryToFile(t, binPath, outFile,
		"--profile", "sine",
		"--seed", "7",
		"--series", "2",
		"--points", "5000",
		"--range-start", "100",
		"--range-end", "350",
		"--lod", "1",
	)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)

	var result queryOutput
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, "raw", result.Kind)
	require.Len(t, result.Series, 2)
	for _, values := range result.Series {
		assert.Len(t, values, 250)
	}
}

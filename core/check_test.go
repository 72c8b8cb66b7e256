package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodlab/chartbench/schema"
)

func TestRunEngineChecks(t *testing.T) {
	result := RunEngineChecks()

	assert.True(t, result.Passed)
	assert.Zero(t, result.Failed)
	assert.Equal(t, len(result.Findings), result.Total)
	require.NotEmpty(t, result.Findings)

	names := make(map[string]bool)
	for _, f := range result.Findings {
		assert.True(t, f.Passed, "check %q failed: %s", f.Name, f.Detail)
		assert.Empty(t, f.Detail)
		assert.False(t, names[f.Name], "duplicate check name %q", f.Name)
		names[f.Name] = true
	}
}

func TestFailFinding(t *testing.T) {
	f := failFinding(schema.CheckFinding{Name: "sample", Passed: true}, "observed divergence")
	assert.False(t, f.Passed)
	assert.Equal(t, "observed divergence", f.Detail)
}

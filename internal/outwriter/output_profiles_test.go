package outwriter

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodlab/chartbench/internal/contract"
	"github.com/lodlab/chartbench/schema"
)

func profilesModelFixture() schema.ProfilesRenderModel {
	return schema.ProfilesRenderModel{
		Title:       "Generation Profiles",
		Description: "Deterministic seeded profiles.",
		Profiles: []schema.ProfileInfo{
			{Name: "walk", Purpose: "Random walk", Factors: []string{"cumulative sum"}},
			{Name: "sparse", Purpose: "Irregular timestamps", Factors: []string{"gaps"}, Sparse: true},
		},
	}
}

func TestWriteProfilesCSVRows(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	require.NoError(t, writeProfilesCSVRows(w, profilesModelFixture()))
	w.Flush()

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"walk", "Random walk", "cumulative sum", "false"}, records[0])
	assert.Equal(t, "true", records[1][3])
}

func TestWriteProfilesTable(t *testing.T) {
	cfg := &contract.Config{Output: schema.TextOut, Width: 120}

	var buf bytes.Buffer
	require.NoError(t, writeProfilesTable(profilesModelFixture(), cfg, &buf))

	out := buf.String()
	assert.Contains(t, out, "Generation Profiles")
	assert.Contains(t, out, "walk")
	assert.Contains(t, out, "sparse")
}

func TestWriteProfilesTableEmojis(t *testing.T) {
	cfg := &contract.Config{Output: schema.TextOut, Width: 120, UseEmojis: true}

	var buf bytes.Buffer
	require.NoError(t, writeProfilesTable(profilesModelFixture(), cfg, &buf))
	assert.Contains(t, buf.String(), "WALK")
}

func TestGetDisplayNameForProfile(t *testing.T) {
	assert.Contains(t, getDisplayNameForProfile("walk"), "WALK")
	assert.Contains(t, getDisplayNameForProfile("pulse"), "PULSE")
	assert.Equal(t, "UNKNOWN", getDisplayNameForProfile("unknown"))
}

func TestWriteCheckTable(t *testing.T) {
	cfg := &contract.Config{Output: schema.TextOut, Width: 120}
	result := schema.CheckResult{
		Passed: false,
		Total:  2,
		Failed: 1,
		Findings: []schema.CheckFinding{
			{Name: "generation determinism", Passed: true},
			{Name: "grid alignment stability", Passed: false, Detail: "aligned starts differ"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeCheckTable(result, cfg, time.Millisecond, &buf))

	out := buf.String()
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "aligned starts differ")
	assert.Contains(t, out, "1 of 2 checks failed")
}

func TestWriteGenerateTable(t *testing.T) {
	fmtFloat, _ := createFormatters(1)
	cfg := &contract.Config{Output: schema.TextOut, Precision: 1, Width: 120}
	result := &schema.GenerateResult{
		Profile:   schema.WalkProfile,
		Seed:      42,
		NumSeries: 1,
		NumPoints: 100,
		DomainMax: 100,
		Stats: []schema.SeriesStat{
			{Index: 0, Count: 100, Min: -5.5, Max: 8.25, Mean: 1.5, First: 0.5, Last: 2},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeGenerateTable(result, cfg, fmtFloat, time.Millisecond, &buf))

	out := buf.String()
	assert.Contains(t, out, "-5.5")
	assert.Contains(t, out, "8.2")
	assert.Contains(t, out, "seed 42")
	assert.Contains(t, out, "dense")
}

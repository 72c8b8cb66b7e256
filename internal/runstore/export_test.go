package runstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lodlab/chartbench/internal/contract"
	"github.com/lodlab/chartbench/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withManagerStore swaps the global manager's store for the duration of a test.
func withManagerStore(t *testing.T, store contract.RunStore) {
	t.Helper()
	Manager.Lock()
	prev := Manager.runs
	Manager.runs = store
	Manager.Unlock()
	t.Cleanup(func() {
		Manager.Lock()
		Manager.runs = prev
		Manager.Unlock()
	})
}

func TestExecuteRunExport_RequiresOutputFile(t *testing.T) {
	err := ExecuteRunExport("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output-file is required")
}

func TestExecuteRunExport_NoStore(t *testing.T) {
	withManagerStore(t, nil)

	err := ExecuteRunExport("out")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestExecuteRunExport_NoData(t *testing.T) {
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	withManagerStore(t, store)

	err = ExecuteRunExport(filepath.Join(t.TempDir(), "out"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no run history found")
}

func TestExecuteRunExport_WritesParquetFiles(t *testing.T) {
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	withManagerStore(t, store)

	// Seed a completed run with steps
	runID, err := store.BeginRun(time.Now(), sampleRunRecord())
	require.NoError(t, err)
	for i := int32(0); i < 3; i++ {
		require.NoError(t, store.RecordStep(runID, sampleStepRecord(i)))
	}
	require.NoError(t, store.EndRun(runID, time.Now(), 3))

	outputFile := filepath.Join(t.TempDir(), "export")
	require.NoError(t, ExecuteRunExport(outputFile))

	// Both Parquet files should exist and be non-empty
	for _, suffix := range []string{".runs.parquet", ".steps.parquet"} {
		info, err := os.Stat(outputFile + suffix)
		require.NoError(t, err, "expected %s to exist", suffix)
		assert.Greater(t, info.Size(), int64(0))
	}
}

// Package contract provides interfaces and shared utilities for the chartbench CLI's internal architecture.
package contract

import (
	"time"

	"github.com/lodlab/chartbench/schema"
)

// RunStore defines the interface for benchmark run history storage.
// This allows mocking the store for testing.
type RunStore interface {
	// BeginRun creates a new run record and returns its unique ID.
	BeginRun(startTime time.Time, run schema.BenchRunRecord) (int64, error)

	// EndRun updates the run record with completion data.
	EndRun(runID int64, endTime time.Time, totalQueries int) error

	// RecordStep stores the stats of one benchmark query.
	RecordStep(runID int64, step schema.BenchStepRecord) error

	// GetRuns returns the most recent run records, newest first.
	GetRuns(limit int) ([]schema.BenchRunRecord, error)

	// GetSteps returns the step records of one run, in step order.
	GetSteps(runID int64) ([]schema.BenchStepRecord, error)

	// GetStatus returns status information about the run store.
	GetStatus() (schema.RunStoreStatus, error)

	// Clear removes all run history.
	Clear() error

	// Close releases the underlying database handle.
	Close() error
}

// RunManager defines the interface for managing the run store.
// This allows the persistence layer to be mocked for testing.
type RunManager interface {
	GetRunStore() RunStore
}

package runstore

import (
	"time"

	"github.com/lodlab/chartbench/internal/contract"
	"github.com/lodlab/chartbench/schema"
	"github.com/stretchr/testify/mock"
)

// MockRunManager is a mock implementation of RunManager for testing.
type MockRunManager struct {
	mock.Mock
}

var _ contract.RunManager = &MockRunManager{} // Compile-time check

// GetRunStore implements the RunManager interface.
func (m *MockRunManager) GetRunStore() contract.RunStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.RunStore)
	return store
}

// MockRunStore is a mock implementation of RunStore for testing.
type MockRunStore struct {
	mock.Mock
}

var _ contract.RunStore = &MockRunStore{} // Compile-time check

// BeginRun implements the RunStore interface.
func (m *MockRunStore) BeginRun(startTime time.Time, run schema.BenchRunRecord) (int64, error) {
	args := m.Called(startTime, run)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the RunStore interface.
func (m *MockRunStore) EndRun(runID int64, endTime time.Time, totalQueries int) error {
	args := m.Called(runID, endTime, totalQueries)
	return args.Error(0)
}

// RecordStep implements the RunStore interface.
func (m *MockRunStore) RecordStep(runID int64, step schema.BenchStepRecord) error {
	args := m.Called(runID, step)
	return args.Error(0)
}

// GetRuns implements the RunStore interface.
func (m *MockRunStore) GetRuns(limit int) ([]schema.BenchRunRecord, error) {
	args := m.Called(limit)
	runs, _ := args.Get(0).([]schema.BenchRunRecord)
	return runs, args.Error(1)
}

// GetSteps implements the RunStore interface.
func (m *MockRunStore) GetSteps(runID int64) ([]schema.BenchStepRecord, error) {
	args := m.Called(runID)
	steps, _ := args.Get(0).([]schema.BenchStepRecord)
	return steps, args.Error(1)
}

// GetStatus implements the RunStore interface.
func (m *MockRunStore) GetStatus() (schema.RunStoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.RunStoreStatus), args.Error(1)
}

// Clear implements the RunStore interface.
func (m *MockRunStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// Close implements the RunStore interface.
func (m *MockRunStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

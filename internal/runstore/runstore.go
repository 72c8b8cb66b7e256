// Package runstore persists benchmark run history to a database backend.
package runstore

import (
	"sync"

	"github.com/lodlab/chartbench/internal/contract"
)

// RunStoreManager manages the RunStore instance used by commands.
type RunStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	runs         contract.RunStore
}

var _ contract.RunManager = &RunStoreManager{} // Compile-time check

// GetRunStore returns the run history RunStore.
func (mgr *RunStoreManager) GetRunStore() contract.RunStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.runs
}

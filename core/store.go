package core

import (
	"context"
	"sync"
	"time"

	"github.com/lodlab/chartbench/schema"
)

// DefaultQueryLatency is the simulated service latency each query suspends
// for before resolving.
const DefaultQueryLatency = 100 * time.Millisecond

// Store owns the published SeriesSet and answers range queries against it.
// Generation builds a full new set before publishing it, so queries already
// in flight keep reading the previous snapshot safely.
type Store struct {
	mu      sync.RWMutex // Protects the set pointer during publish
	set     *schema.SeriesSet
	latency time.Duration
}

// NewStore creates a store that simulates the given service latency per
// query. A zero latency disables the simulation, which tests rely on.
func NewStore(latency time.Duration) *Store {
	return &Store{latency: latency}
}

// Generate replaces the published SeriesSet wholesale. The previous set is
// unreferenced by the store afterwards but stays valid for queries that
// snapshotted it before the swap.
func (s *Store) Generate(profile schema.Profile, nSeries, nPoints int, seed int64) (*schema.SeriesSet, error) {
	set, err := GenerateSeriesSet(profile, nSeries, nPoints, seed)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.set = set
	s.mu.Unlock()
	return set, nil
}

// Set returns the currently published snapshot, or nil before the first
// generation.
func (s *Store) Set() *schema.SeriesSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set
}

// Query answers a range query at the requested resolution, asynchronously
// with respect to other queries. The call suspends for the configured
// simulated latency without blocking concurrent queries; ctx cancels the
// wait. The result payload is an independent copy safe to retain after the
// next generation.
func (s *Store) Query(ctx context.Context, req schema.QueryRequest) (*schema.QueryResult, error) {
	set := s.Set()
	if set == nil {
		return nil, ErrNoSeriesSet
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	if set.Sparse() {
		return querySparse(set, req), nil
	}
	return queryDense(set, req), nil
}

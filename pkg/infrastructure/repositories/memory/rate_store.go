package memory

import (
	"sync/atomic"

	"github.com/vsinha/bbqplan/pkg/domain/entities"
	"github.com/vsinha/bbqplan/pkg/domain/repositories"
)

// RateStore holds the active rate table. Readers get an immutable snapshot;
// Swap replaces it whole.
type RateStore struct {
	current atomic.Pointer[entities.RateTable]
}

// NewRateStore creates a store holding the given table
func NewRateStore(rates *entities.RateTable) *RateStore {
	s := &RateStore{}
	s.current.Store(rates)
	return s
}

// Verify interface compliance
var _ repositories.RateRepository = (*RateStore)(nil)

// Current returns the active snapshot
func (s *RateStore) Current() *entities.RateTable {
	return s.current.Load()
}

// Swap installs a new snapshot and returns the previous one
func (s *RateStore) Swap(rates *entities.RateTable) *entities.RateTable {
	return s.current.Swap(rates)
}

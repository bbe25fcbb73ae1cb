package records

import (
	"context"
	"sync"

	"fundtrack/internal/core"
)

// MemoryStore holds a fixed record set in memory. It backs the memory
// data backend and the handler tests.
type MemoryStore struct {
	mu   sync.Mutex
	recs []core.FundingRecord
}

func NewMemoryStore(recs ...core.FundingRecord) *MemoryStore {
	return &MemoryStore{recs: recs}
}

// LoadRecords implements Source, returning a sorted copy of the held set.
func (s *MemoryStore) LoadRecords(_ context.Context) ([]core.FundingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]core.FundingRecord(nil), s.recs...)
	SortByDateDesc(out)
	return out, nil
}

// Add appends records to the held set.
func (s *MemoryStore) Add(recs ...core.FundingRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs = append(s.recs, recs...)
}

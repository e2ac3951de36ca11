package quota

import "sync"

// MemoryStore is an in-memory Store, mainly for tests and dry runs.
type MemoryStore struct {
	mu     sync.Mutex
	record Record

	// FailWith, when set, is returned by every store operation.
	FailWith error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Usage() (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWith != nil {
		return Record{}, s.FailWith
	}
	return s.record, nil
}

func (s *MemoryStore) SetUsage(r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWith != nil {
		return s.FailWith
	}
	s.record = r
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

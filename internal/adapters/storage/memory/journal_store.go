package memory

import (
	"sync"

	"github.com/mindflow-labs/mindflow-agent/internal/domain"
)

// JournalStore is a simple in-memory implementation of domain.JournalStore.
// It is NOT persistent and is only suitable for development / local mode.
type JournalStore struct {
	mu      sync.RWMutex
	entries []*domain.JournalEntry
}

func NewJournalStore() *JournalStore {
	return &JournalStore{}
}

func (s *JournalStore) AppendEntry(entry *domain.JournalEntry) error {
	if entry == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	return nil
}

// ListEntries returns the last `limit` entries in append order.
// If limit <= 0, returns all.
func (s *JournalStore) ListEntries(limit int) ([]*domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.entries) {
		limit = len(s.entries)
	}

	start := len(s.entries) - limit
	out := make([]*domain.JournalEntry, 0, limit)
	out = append(out, s.entries[start:]...)
	return out, nil
}

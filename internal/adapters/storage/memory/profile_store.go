package memory

import (
	"sync"

	"github.com/mindflow-labs/mindflow-agent/internal/domain"
)

// ProfileStore keeps the single user profile in memory.
type ProfileStore struct {
	mu      sync.RWMutex
	profile domain.Profile
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{}
}

func (s *ProfileStore) LoadProfile() (*domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.profile
	return &p, nil
}

func (s *ProfileStore) SaveProfile(p *domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = *p
	return nil
}

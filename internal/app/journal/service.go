package journal

import (
	"context"

	"github.com/mindflow-labs/mindflow-agent/internal/domain"
)

// Service holds the read side of the dashboard: recent journal entries and
// the current plan.
type Service struct {
	journal domain.JournalStore
	profile domain.ProfileStore
}

func NewService(journal domain.JournalStore, profile domain.ProfileStore) *Service {
	return &Service{journal: journal, profile: profile}
}

// GetEntries returns the last `limit` journal entries.
// If limit <= 0, a reasonable default value is used.
func (s *Service) GetEntries(ctx context.Context, limit int) ([]*domain.JournalEntry, error) {
	if s.journal == nil {
		return []*domain.JournalEntry{}, nil
	}
	if limit <= 0 {
		limit = 20
	}
	return s.journal.ListEntries(limit)
}

// GetPlan returns the saved profile; an empty profile means onboarding is
// incomplete.
func (s *Service) GetPlan(ctx context.Context) (*domain.Profile, error) {
	if s.profile == nil {
		return &domain.Profile{}, nil
	}
	return s.profile.LoadProfile()
}

// SetPlan replaces the profile directly (the HTTP surface, not a tool call).
func (s *Service) SetPlan(ctx context.Context, p *domain.Profile) error {
	return s.profile.SaveProfile(p)
}

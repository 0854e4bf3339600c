package domain

import "time"

// JournalEntry is one logged check-in: how the user felt, their self-rated
// energy, and what happened. Entries are append-only and never edited.
type JournalEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Mood      string    `json:"mood"`
	Energy    int       `json:"energy"` // 1-10
	Note      string    `json:"note"`
}

// Profile holds the user's long-horizon plan: the outcome they want (vision)
// and the daily system that gets them there.
type Profile struct {
	Vision string `json:"vision"`
	System string `json:"system"`
}

// Onboarded reports whether the user has set a vision yet. The greeting
// logic uses this to tell first-time users from returning ones.
func (p *Profile) Onboarded() bool {
	return p != nil && p.Vision != ""
}

// JournalStore defines the minimum operations to persist the journal.
type JournalStore interface {
	AppendEntry(entry *JournalEntry) error
	ListEntries(limit int) ([]*JournalEntry, error)
}

// ProfileStore persists the user's plan. Load returns an empty Profile
// (not an error) when nothing has been saved yet.
type ProfileStore interface {
	LoadProfile() (*Profile, error)
	SaveProfile(p *Profile) error
}

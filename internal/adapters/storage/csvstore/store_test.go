package csvstore

import (
	"testing"
	"time"

	"github.com/mindflow-labs/mindflow-agent/internal/domain"
)

func TestJournalAppendAndList(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	entries := []*domain.JournalEntry{
		{Timestamp: time.Date(2026, 8, 20, 19, 30, 0, 0, time.Local), Mood: "Anxious", Energy: 3, Note: "rough start"},
		{Timestamp: time.Date(2026, 8, 21, 20, 15, 0, 0, time.Local), Mood: "Flowing", Energy: 7, Note: "deep work, 300 words"},
	}
	for _, e := range entries {
		if err := store.AppendEntry(e); err != nil {
			t.Fatalf("AppendEntry failed: %v", err)
		}
	}

	got, err := store.ListEntries(0)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Mood != "Anxious" || got[0].Energy != 3 {
		t.Fatalf("first entry mismatch: %+v", got[0])
	}
	if got[1].Note != "deep work, 300 words" {
		t.Fatalf("second entry mismatch: %+v", got[1])
	}
	if !got[1].Timestamp.Equal(entries[1].Timestamp.Truncate(time.Minute)) {
		t.Fatalf("timestamp not preserved to the minute: %v", got[1].Timestamp)
	}
}

func TestJournalListLimit(t *testing.T) {
	store, _ := NewStore(t.TempDir())

	for i := 1; i <= 5; i++ {
		_ = store.AppendEntry(&domain.JournalEntry{
			Timestamp: time.Now(),
			Mood:      "Motivated",
			Energy:    i,
			Note:      "entry",
		})
	}

	got, err := store.ListEntries(2)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Energy != 4 || got[1].Energy != 5 {
		t.Fatalf("expected the last two entries, got %+v", got)
	}
}

func TestListEntriesEmpty(t *testing.T) {
	store, _ := NewStore(t.TempDir())

	got, err := store.ListEntries(10)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no entries, got %d", len(got))
	}
}

func TestProfileRoundtrip(t *testing.T) {
	store, _ := NewStore(t.TempDir())

	p, err := store.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if p.Onboarded() {
		t.Fatal("expected empty profile before save")
	}

	if err := store.SaveProfile(&domain.Profile{
		Vision: "Lose 6kg of fat in 12 weeks",
		System: "Do 30 push-ups every day",
	}); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	// A later save replaces the plan.
	if err := store.SaveProfile(&domain.Profile{
		Vision: "Run a 10k in 12 weeks",
		System: "Run every other morning",
	}); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	p, err = store.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if p.Vision != "Run a 10k in 12 weeks" {
		t.Fatalf("expected latest plan, got %+v", p)
	}
}

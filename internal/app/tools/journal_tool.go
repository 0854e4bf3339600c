package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mindflow-labs/mindflow-agent/internal/domain"
)

// JournalTool persists one session check-in through a domain.JournalStore.
// The Architect is required to call it on every invocation.
type JournalTool struct {
	store domain.JournalStore
	now   func() time.Time
}

// NewJournalTool creates the save_journal_entry tool.
// store can be an in-memory, CSV, or Firestore implementation.
func NewJournalTool(store domain.JournalStore) *JournalTool {
	return &JournalTool{
		store: store,
		now:   time.Now,
	}
}

func (t *JournalTool) Name() string {
	return "save_journal_entry"
}

func (t *JournalTool) Spec() domain.ToolSpec {
	return domain.ToolSpec{
		Name:        t.Name(),
		Description: "Save the user's state to the journal database.",
		Params: []domain.ToolParam{
			{Name: "mood", Type: domain.ParamString, Description: "Mood keyword (e.g. Anxious, Flowing, Stuck)", Required: true},
			{Name: "energy", Type: domain.ParamInteger, Description: "Self-rated energy index, 1-10", Required: true},
			{Name: "note", Type: domain.ParamString, Description: "Short summary of the conversation or action taken", Required: true},
		},
	}
}

// Call expects an input of the shape:
//
//	{"mood": "Stuck", "energy": 4, "note": "skipped workout"}
//
// The append must complete (or fail deterministically) before the result is
// valid; there are no partial writes at single-entry granularity.
func (t *JournalTool) Call(ctx context.Context, tctx ToolContext, input map[string]any) (string, error) {
	mood := getString(input, "mood")
	if mood == "" {
		return "", fmt.Errorf("save_journal_entry: mood is required")
	}

	energy, ok := getInt(input, "energy")
	if !ok {
		return "", fmt.Errorf("save_journal_entry: energy is required")
	}
	if energy < 1 || energy > 10 {
		return "", fmt.Errorf("save_journal_entry: energy %d out of range 1-10", energy)
	}

	entry := &domain.JournalEntry{
		Timestamp: t.now(),
		Mood:      mood,
		Energy:    energy,
		Note:      getString(input, "note"),
	}

	if err := t.store.AppendEntry(entry); err != nil {
		return "", &domain.PersistError{Op: "journal append", Err: err}
	}

	return fmt.Sprintf("Logged: Mood=%s, Energy=%d", mood, energy), nil
}

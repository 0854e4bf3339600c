package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mindflow-labs/mindflow-agent/internal/domain"
)

// profileDocID: a deployment serves one user profile per store; the profile
// lives in a single well-known document.
const profileDocID = "default"

// Store implements all four persistence ports on Firestore.
type Store struct {
	client *firestore.Client
}

// NewStore creates a Firestore store for the given project
// (MINDFLOW_GCP_PROJECT).
func NewStore(ctx context.Context, projectID string) (*Store, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID is required for Firestore store")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	return &Store{client: client}, nil
}

// ─────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────

func (s *Store) sessionsCol() *firestore.CollectionRef {
	return s.client.Collection("sessions")
}

func (s *Store) sessionDoc(id domain.SessionID) *firestore.DocumentRef {
	return s.sessionsCol().Doc(string(id))
}

func (s *Store) messagesCol(sessionID domain.SessionID) *firestore.CollectionRef {
	return s.sessionDoc(sessionID).Collection("messages")
}

func (s *Store) journalCol() *firestore.CollectionRef {
	return s.client.Collection("journal_entries")
}

func (s *Store) profileDoc() *firestore.DocumentRef {
	return s.client.Collection("profiles").Doc(profileDocID)
}

// ─────────────────────────────────────────
// Firestore Types
// ─────────────────────────────────────────

type sessionDoc struct {
	UserID    string    `firestore:"user_id"`
	Title     string    `firestore:"title"`
	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

type toolCallDoc struct {
	ID   string         `firestore:"id"`
	Name string         `firestore:"name"`
	Args map[string]any `firestore:"args"`
}

type messageDoc struct {
	SessionID  string        `firestore:"session_id"`
	Role       string        `firestore:"role"`
	Text       string        `firestore:"text"`
	Persona    string        `firestore:"persona"`
	ToolCalls  []toolCallDoc `firestore:"tool_calls"`
	ToolCallID string        `firestore:"tool_call_id"`
	CreatedAt  time.Time     `firestore:"created_at"`
}

type journalEntryDoc struct {
	Timestamp time.Time `firestore:"timestamp"`
	Mood      string    `firestore:"mood"`
	Energy    int       `firestore:"energy"`
	Note      string    `firestore:"note"`
}

type profileDocBody struct {
	Vision    string    `firestore:"vision"`
	System    string    `firestore:"system"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

// ─────────────────────────────────────────
// SessionStore implementation
// ─────────────────────────────────────────

func (s *Store) CreateSession(session *domain.Session) error {
	ctx := context.Background()

	doc := sessionDoc{
		UserID:    string(session.UserID),
		Title:     session.Title,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}

	if _, err := s.sessionDoc(session.ID).Create(ctx, doc); err != nil {
		return fmt.Errorf("firestore CreateSession: %w", err)
	}
	return nil
}

func (s *Store) UpdateSession(session *domain.Session) error {
	ctx := context.Background()

	doc := map[string]interface{}{
		"user_id":    string(session.UserID),
		"title":      session.Title,
		"created_at": session.CreatedAt,
		"updated_at": session.UpdatedAt,
	}

	if _, err := s.sessionDoc(session.ID).Set(ctx, doc, firestore.MergeAll); err != nil {
		return fmt.Errorf("firestore UpdateSession: %w", err)
	}
	return nil
}

func (s *Store) GetSession(id domain.SessionID) (*domain.Session, error) {
	ctx := context.Background()

	snap, err := s.sessionDoc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("firestore GetSession: %w", err)
	}

	var doc sessionDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("firestore GetSession decode: %w", err)
	}

	return &domain.Session{
		ID:        id,
		UserID:    domain.UserID(doc.UserID),
		Title:     doc.Title,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

func (s *Store) ListSessionsByUser(userID domain.UserID, limit int) ([]*domain.Session, error) {
	ctx := context.Background()

	q := s.sessionsCol().Where("user_id", "==", string(userID)).OrderBy("created_at", firestore.Desc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []*domain.Session
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("firestore ListSessionsByUser: %w", err)
		}

		var doc sessionDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode sessionDoc: %w", err)
		}

		out = append(out, &domain.Session{
			ID:        domain.SessionID(snap.Ref.ID),
			UserID:    domain.UserID(doc.UserID),
			Title:     doc.Title,
			CreatedAt: doc.CreatedAt,
			UpdatedAt: doc.UpdatedAt,
		})
	}
	return out, nil
}

// ─────────────────────────────────────────
// MessageStore implementation
// ─────────────────────────────────────────

func (s *Store) AppendMessage(msg *domain.Message) error {
	ctx := context.Background()

	calls := make([]toolCallDoc, 0, len(msg.ToolCalls))
	for _, c := range msg.ToolCalls {
		calls = append(calls, toolCallDoc{ID: c.ID, Name: c.Name, Args: c.Args})
	}

	doc := messageDoc{
		SessionID:  string(msg.SessionID),
		Role:       string(msg.Role),
		Text:       msg.Text,
		Persona:    msg.Persona,
		ToolCalls:  calls,
		ToolCallID: msg.ToolCallID,
		CreatedAt:  msg.CreatedAt,
	}

	if _, err := s.messagesCol(msg.SessionID).Doc(string(msg.ID)).Set(ctx, doc); err != nil {
		return fmt.Errorf("firestore AppendMessage: %w", err)
	}
	return nil
}

func (s *Store) GetMessagesBySession(sessionID domain.SessionID, limit int) ([]*domain.Message, error) {
	ctx := context.Background()

	q := s.messagesCol(sessionID).OrderBy("created_at", firestore.Asc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []*domain.Message
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("firestore GetMessagesBySession: %w", err)
		}

		var doc messageDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode messageDoc: %w", err)
		}

		var calls []domain.ToolCall
		for _, c := range doc.ToolCalls {
			calls = append(calls, domain.ToolCall{ID: c.ID, Name: c.Name, Args: c.Args})
		}

		out = append(out, &domain.Message{
			ID:         domain.MessageID(snap.Ref.ID),
			SessionID:  sessionID,
			Role:       domain.Role(doc.Role),
			Text:       doc.Text,
			Persona:    doc.Persona,
			ToolCalls:  calls,
			ToolCallID: doc.ToolCallID,
			CreatedAt:  doc.CreatedAt,
		})
	}
	return out, nil
}

// ─────────────────────────────────────────
// JournalStore implementation
// ─────────────────────────────────────────

func (s *Store) AppendEntry(entry *domain.JournalEntry) error {
	ctx := context.Background()

	doc := journalEntryDoc{
		Timestamp: entry.Timestamp,
		Mood:      entry.Mood,
		Energy:    entry.Energy,
		Note:      entry.Note,
	}

	if _, _, err := s.journalCol().Add(ctx, doc); err != nil {
		return fmt.Errorf("firestore AppendEntry: %w", err)
	}
	return nil
}

func (s *Store) ListEntries(limit int) ([]*domain.JournalEntry, error) {
	ctx := context.Background()

	q := s.journalCol().OrderBy("timestamp", firestore.Asc)
	if limit > 0 {
		q = s.journalCol().OrderBy("timestamp", firestore.Desc).Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []*domain.JournalEntry
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("firestore ListEntries: %w", err)
		}

		var doc journalEntryDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode journalEntryDoc: %w", err)
		}

		out = append(out, &domain.JournalEntry{
			Timestamp: doc.Timestamp,
			Mood:      doc.Mood,
			Energy:    doc.Energy,
			Note:      doc.Note,
		})
	}

	// Descending query above; flip back to append order.
	if limit > 0 {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}

// ─────────────────────────────────────────
// ProfileStore implementation
// ─────────────────────────────────────────

func (s *Store) LoadProfile() (*domain.Profile, error) {
	ctx := context.Background()

	snap, err := s.profileDoc().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &domain.Profile{}, nil
		}
		return nil, fmt.Errorf("firestore LoadProfile: %w", err)
	}

	var doc profileDocBody
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("firestore LoadProfile decode: %w", err)
	}

	return &domain.Profile{Vision: doc.Vision, System: doc.System}, nil
}

func (s *Store) SaveProfile(p *domain.Profile) error {
	ctx := context.Background()

	doc := profileDocBody{
		Vision:    p.Vision,
		System:    p.System,
		UpdatedAt: time.Now(),
	}

	if _, err := s.profileDoc().Set(ctx, doc); err != nil {
		return fmt.Errorf("firestore SaveProfile: %w", err)
	}
	return nil
}

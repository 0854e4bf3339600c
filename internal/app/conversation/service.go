package conversation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mindflow-labs/mindflow-agent/internal/app/orchestrator"
	"github.com/mindflow-labs/mindflow-agent/internal/app/tools"
	"github.com/mindflow-labs/mindflow-agent/internal/domain"
	"github.com/mindflow-labs/mindflow-agent/internal/observability"
)

// historyWindow caps how much context is sent to the provider per turn.
const historyWindow = 20

// Service owns session lifecycle and turn submission. Turns on one session
// are expected to be serialized by the caller; the service never runs two
// turns of the same session concurrently on its own.
type Service struct {
	sessionStore domain.SessionStore
	messageStore domain.MessageStore
	profileStore domain.ProfileStore
	orchestrator *orchestrator.Orchestrator
	now          func() time.Time
}

func NewService(
	orch *orchestrator.Orchestrator,
	sessionStore domain.SessionStore,
	messageStore domain.MessageStore,
	profileStore domain.ProfileStore,
) *Service {
	return &Service{
		sessionStore: sessionStore,
		messageStore: messageStore,
		profileStore: profileStore,
		orchestrator: orch,
		now:          time.Now,
	}
}

type StartSessionInput struct {
	UserID domain.UserID
	Title  string
}

type StartSessionOutput struct {
	Session  *domain.Session
	Greeting *domain.Message
}

func (s *Service) StartSession(ctx context.Context, in StartSessionInput) (*StartSessionOutput, error) {
	now := s.now()

	log := observability.LoggerFromContext(ctx).With("user_id", in.UserID)
	log.Info("starting new session")

	session := &domain.Session{
		ID:        domain.SessionID(uuid.NewString()),
		UserID:    in.UserID,
		CreatedAt: now,
		UpdatedAt: now,
		Title:     in.Title,
	}

	if err := s.sessionStore.CreateSession(session); err != nil {
		log.Error("failed to create session", "error", err)
		return nil, err
	}

	greeting := &domain.Message{
		ID:        domain.MessageID(uuid.NewString()),
		SessionID: session.ID,
		Role:      domain.RoleAssistant,
		Text:      s.greetingText(now),
		CreatedAt: now,
	}

	if err := s.messageStore.AppendMessage(greeting); err != nil {
		log.Error("failed to append greeting", "error", err)
		return nil, err
	}

	log.Info("session started", "session_id", session.ID)

	return &StartSessionOutput{Session: session, Greeting: greeting}, nil
}

// greetingText picks between the onboarding greeting (no plan saved yet) and
// the returning-user greeting for the current time of day.
func (s *Service) greetingText(now time.Time) string {
	profile, err := s.profileStore.LoadProfile()
	if err != nil || !profile.Onboarded() {
		return "Welcome to Mind Flow. Before anything else: what is the one outcome " +
			"you want in the next 12 weeks? The Strategist can help you pin it down."
	}

	switch hour := now.Hour(); {
	case hour >= 5 && hour < 12:
		return "Good morning. A new day. Do you want to set today's core goal first (Strategist), " +
			"or are you feeling a bit low on drive (Healer)?"
	case hour >= 12 && hour < 18:
		return "Good afternoon. How is the day going? If you are stuck, we can adjust the goal anytime."
	default:
		return "Good evening. You made it through the day. Want to take 2 minutes to log " +
			"today's state (Architect)?"
	}
}

type SendMessageInput struct {
	SessionID domain.SessionID
	UserID    domain.UserID
	Text      string
}

type SendMessageOutput struct {
	UserMessage *domain.Message
	// Replies holds the assistant message plus any tool-result messages,
	// in append order.
	Replies []*domain.Message
	Persona string
	Blocked bool
	// ToolsFired is the side channel for the presentation layer: which
	// tools executed this turn (notification, plan-card refresh).
	ToolsFired []string
	// PersistFailure is set when the reply was generated but a journal or
	// plan write failed; callers should show the reply and flag the
	// failure separately.
	PersistFailure error
}

func (s *Service) SendMessage(ctx context.Context, in SendMessageInput) (*SendMessageOutput, error) {
	session, err := s.sessionStore.GetSession(in.SessionID)
	if err != nil {
		return nil, err
	}

	log := observability.LoggerFromContext(ctx).With(
		"session_id", session.ID,
		"user_id", session.UserID,
	)
	log.Info("sending message")

	userMsg := &domain.Message{
		ID:        domain.MessageID(uuid.NewString()),
		SessionID: session.ID,
		Role:      domain.RoleUser,
		Text:      in.Text,
		CreatedAt: s.now(),
	}

	if err := s.messageStore.AppendMessage(userMsg); err != nil {
		log.Error("failed to append user message", "error", err)
		return nil, err
	}

	history, err := s.messageStore.GetMessagesBySession(session.ID, historyWindow)
	if err != nil {
		log.Error("failed to load history", "error", err)
		return nil, err
	}

	tctx := tools.ToolContext{
		UserID:    string(session.UserID),
		SessionID: string(session.ID),
		RequestID: observability.RequestIDFromContext(ctx),
	}

	result, err := s.orchestrator.Run(ctx, tctx, history)
	if err != nil {
		// The user message is already persisted, so a provider failure
		// loses nothing: the turn can be resubmitted.
		log.Error("turn failed", "error", err)
		return nil, err
	}

	for _, msg := range result.Messages {
		if err := s.messageStore.AppendMessage(msg); err != nil {
			log.Error("failed to append reply message", "error", err)
			return nil, err
		}
	}

	session.UpdatedAt = s.now()
	if err := s.sessionStore.UpdateSession(session); err != nil {
		log.Error("failed to update session", "error", err)
		return nil, err
	}

	if fail := result.PersistFailure(); fail != nil {
		log.Warn("turn completed with persistence failure", "error", fail)
	}

	log.Info("turn completed", "persona", result.Persona, "tools_fired", result.ToolsFired())

	return &SendMessageOutput{
		UserMessage:    userMsg,
		Replies:        result.Messages,
		Persona:        string(result.Persona),
		Blocked:        result.Blocked,
		ToolsFired:     result.ToolsFired(),
		PersistFailure: result.PersistFailure(),
	}, nil
}

func (s *Service) GetSessionTimeline(
	ctx context.Context,
	sessionID domain.SessionID,
	limit int,
) (*domain.Session, []*domain.Message, error) {

	log := observability.LoggerFromContext(ctx).With(
		"session_id", sessionID,
		"limit", limit,
	)

	session, err := s.sessionStore.GetSession(sessionID)
	if err != nil {
		log.Error("failed to get session", "error", err)
		return nil, nil, err
	}

	msgs, err := s.messageStore.GetMessagesBySession(sessionID, limit)
	if err != nil {
		log.Error("failed to get messages", "error", err)
		return nil, nil, err
	}

	return session, msgs, nil
}

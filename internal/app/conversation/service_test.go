package conversation_test

import (
	"context"
	"strings"
	"testing"

	"github.com/mindflow-labs/mindflow-agent/internal/adapters/llm"
	"github.com/mindflow-labs/mindflow-agent/internal/adapters/storage/memory"
	"github.com/mindflow-labs/mindflow-agent/internal/app/conversation"
	"github.com/mindflow-labs/mindflow-agent/internal/app/orchestrator"
	"github.com/mindflow-labs/mindflow-agent/internal/app/router"
	"github.com/mindflow-labs/mindflow-agent/internal/app/tools"
	"github.com/mindflow-labs/mindflow-agent/internal/domain"
)

func newTestService(mock *llm.MockClient, profile *memory.ProfileStore) *conversation.Service {
	journal := memory.NewJournalStore()
	registry := tools.NewRegistry(
		tools.NewJournalTool(journal),
		tools.NewPlanTool(profile),
	)
	orch := orchestrator.New(mock, router.New(mock), registry)
	return conversation.NewService(orch, memory.NewSessionStore(), memory.NewMessageStore(), profile)
}

func TestStartSessionAndSendMessage(t *testing.T) {
	ctx := context.Background()

	mock := llm.NewMockClient()
	svc := newTestService(mock, memory.NewProfileStore())

	out, err := svc.StartSession(ctx, conversation.StartSessionInput{
		UserID: domain.UserID("test-user"),
		Title:  "Test session",
	})
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}

	if out.Session.ID == "" {
		t.Fatalf("expected session id, got empty")
	}
	if out.Greeting == nil || out.Greeting.Text == "" {
		t.Fatalf("expected a greeting message")
	}

	mock.EnqueueText("HEALER")
	mock.EnqueueText("We can take this one step at a time.")

	reply, err := svc.SendMessage(ctx, conversation.SendMessageInput{
		SessionID: out.Session.ID,
		UserID:    out.Session.UserID,
		Text:      "I feel overwhelmed",
	})
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	if len(reply.Replies) != 1 || reply.Replies[0].Text == "" {
		t.Fatalf("expected one non-empty agent reply, got %+v", reply.Replies)
	}
	if reply.Persona != "healer" {
		t.Fatalf("expected healer persona, got %q", reply.Persona)
	}

	// Timeline holds greeting, user message, and the reply in order.
	_, msgs, err := svc.GetSessionTimeline(ctx, out.Session.ID, 0)
	if err != nil {
		t.Fatalf("GetSessionTimeline failed: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages in timeline, got %d", len(msgs))
	}
}

func TestOnboardingGreeting(t *testing.T) {
	ctx := context.Background()

	svc := newTestService(llm.NewMockClient(), memory.NewProfileStore())

	out, err := svc.StartSession(ctx, conversation.StartSessionInput{UserID: "new-user"})
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}

	// No plan saved yet: the greeting invites onboarding.
	if !strings.Contains(out.Greeting.Text, "12 weeks") {
		t.Fatalf("expected onboarding greeting, got %q", out.Greeting.Text)
	}
}

func TestReturningUserGreeting(t *testing.T) {
	ctx := context.Background()

	profile := memory.NewProfileStore()
	if err := profile.SaveProfile(&domain.Profile{
		Vision: "Lose 6kg of fat in 12 weeks",
		System: "Do 30 push-ups every day",
	}); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	svc := newTestService(llm.NewMockClient(), profile)

	out, err := svc.StartSession(ctx, conversation.StartSessionInput{UserID: "returning"})
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}

	// Time-of-day greeting, not the onboarding one.
	if strings.Contains(out.Greeting.Text, "Welcome to Mind Flow") {
		t.Fatalf("expected returning-user greeting, got %q", out.Greeting.Text)
	}
	if !strings.HasPrefix(out.Greeting.Text, "Good ") {
		t.Fatalf("expected a time-of-day greeting, got %q", out.Greeting.Text)
	}
}

func TestSendMessageUnknownSession(t *testing.T) {
	svc := newTestService(llm.NewMockClient(), memory.NewProfileStore())

	_, err := svc.SendMessage(context.Background(), conversation.SendMessageInput{
		SessionID: "nope",
		UserID:    "u",
		Text:      "hello",
	})
	if err == nil {
		t.Fatal("expected error for unknown session")
	}
}

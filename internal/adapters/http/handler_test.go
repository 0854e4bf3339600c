package httpadapter_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpadapter "github.com/mindflow-labs/mindflow-agent/internal/adapters/http"
	"github.com/mindflow-labs/mindflow-agent/internal/adapters/llm"
	"github.com/mindflow-labs/mindflow-agent/internal/adapters/storage/memory"
	"github.com/mindflow-labs/mindflow-agent/internal/app/conversation"
	journalapp "github.com/mindflow-labs/mindflow-agent/internal/app/journal"
	"github.com/mindflow-labs/mindflow-agent/internal/app/orchestrator"
	"github.com/mindflow-labs/mindflow-agent/internal/app/router"
	"github.com/mindflow-labs/mindflow-agent/internal/app/tools"
)

func newTestServer(t *testing.T, mock *llm.MockClient) http.Handler {
	t.Helper()

	journalStore := memory.NewJournalStore()
	profileStore := memory.NewProfileStore()

	registry := tools.NewRegistry(
		tools.NewJournalTool(journalStore),
		tools.NewPlanTool(profileStore),
	)

	orch := orchestrator.New(mock, router.New(mock), registry)
	convSvc := conversation.NewService(orch, memory.NewSessionStore(), memory.NewMessageStore(), profileStore)
	journalSvc := journalapp.NewService(journalStore, profileStore)

	return httpadapter.NewServer(convSvc, journalSvc)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, llm.NewMockClient())
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestCreateSessionAndSendMessage(t *testing.T) {
	mock := llm.NewMockClient()
	srv := newTestServer(t, mock)

	// Create session
	body := []byte(`{"user_id":"test-user","title":"Test"}`)
	req := httptest.NewRequest(http.MethodPost, "/sessions", bytes.NewReader(body))
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d, body=%s", w.Code, w.Body.String())
	}

	var created struct {
		Session struct {
			ID string `json:"id"`
		} `json:"session"`
		Greeting *struct {
			Text string `json:"text"`
		} `json:"greeting"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding create response: %v", err)
	}
	if created.Session.ID == "" {
		t.Fatal("expected session id")
	}
	if created.Greeting == nil || created.Greeting.Text == "" {
		t.Fatal("expected greeting message")
	}

	// Send message
	mock.EnqueueText("HEALER")
	mock.EnqueueText("That sounds hard. We can take it slowly.")

	body = []byte(`{"user_id":"test-user","text":"I feel stuck"}`)
	req = httptest.NewRequest(http.MethodPost, "/sessions/"+created.Session.ID+"/messages", bytes.NewReader(body))
	w = httptest.NewRecorder()

	srv.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var sent struct {
		Replies []struct {
			Text string `json:"text"`
		} `json:"replies"`
		Persona string `json:"persona"`
		Blocked bool   `json:"blocked"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &sent); err != nil {
		t.Fatalf("decoding send response: %v", err)
	}
	if len(sent.Replies) != 1 || sent.Replies[0].Text == "" {
		t.Fatalf("expected one reply, got %+v", sent.Replies)
	}
	if sent.Persona != "healer" {
		t.Fatalf("expected healer, got %q", sent.Persona)
	}
}

func TestSendMessageUnknownSession(t *testing.T) {
	srv := newTestServer(t, llm.NewMockClient())

	body := []byte(`{"user_id":"u","text":"hi"}`)
	req := httptest.NewRequest(http.MethodPost, "/sessions/missing/messages", bytes.NewReader(body))
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPlanRoundtrip(t *testing.T) {
	srv := newTestServer(t, llm.NewMockClient())

	body := []byte(`{"vision":"Lose 6kg of fat in 12 weeks","system":"Do 30 push-ups every day"}`)
	req := httptest.NewRequest(http.MethodPut, "/plan", bytes.NewReader(body))
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/plan", nil)
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var plan struct {
		Vision string `json:"vision"`
		System string `json:"system"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &plan); err != nil {
		t.Fatalf("decoding plan: %v", err)
	}
	if plan.Vision != "Lose 6kg of fat in 12 weeks" {
		t.Fatalf("unexpected plan: %+v", plan)
	}
}

func TestJournalEndpoint(t *testing.T) {
	srv := newTestServer(t, llm.NewMockClient())

	req := httptest.NewRequest(http.MethodGet, "/journal?limit=5", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Entries []any `json:"entries"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding journal: %v", err)
	}
	if len(resp.Entries) != 0 {
		t.Fatalf("expected empty journal, got %d entries", len(resp.Entries))
	}
}

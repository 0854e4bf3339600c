package llm

import (
	"context"
	"sync"

	"github.com/mindflow-labs/mindflow-agent/internal/domain"
)

// RecordedCall captures one provider invocation for assertions in tests.
type RecordedCall struct {
	SystemPrompt string
	History      []*domain.Message
	Tools        []domain.ToolSpec
}

// MockClient is a deterministic, scriptable stand-in for a real provider.
// Replies are consumed from the queue in order; once the queue is empty the
// default reply is returned, so long conversations stay usable in dev mode.
type MockClient struct {
	mu      sync.Mutex
	queue   []*domain.Message
	calls   []RecordedCall
	err     error
	Default *domain.Message
}

func NewMockClient() *MockClient {
	return &MockClient{
		Default: &domain.Message{
			Role: domain.RoleAssistant,
			Text: "I hear you. Tell me a bit more about how that feels.",
		},
	}
}

// Enqueue scripts the next replies, in order.
func (m *MockClient) Enqueue(replies ...*domain.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, replies...)
}

// EnqueueText scripts a plain text reply.
func (m *MockClient) EnqueueText(texts ...string) {
	for _, t := range texts {
		m.Enqueue(&domain.Message{Role: domain.RoleAssistant, Text: t})
	}
}

// Fail makes every subsequent call return err.
func (m *MockClient) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns everything recorded so far.
func (m *MockClient) Calls() []RecordedCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]RecordedCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount reports how many times Complete ran.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Complete implements domain.CompletionClient.
func (m *MockClient) Complete(
	ctx context.Context,
	systemPrompt string,
	history []*domain.Message,
	tools []domain.ToolSpec,
) (*domain.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, RecordedCall{
		SystemPrompt: systemPrompt,
		History:      history,
		Tools:        tools,
	})

	if m.err != nil {
		return nil, &domain.ProviderError{Provider: "mock", Err: m.err}
	}

	if len(m.queue) > 0 {
		next := m.queue[0]
		m.queue = m.queue[1:]
		return next, nil
	}

	return m.Default, nil
}

package domain

import "context"

// ParamType is the declared type of a tool parameter.
type ParamType string

const (
	ParamString  ParamType = "string"
	ParamInteger ParamType = "integer"
)

// ToolParam describes one parameter of a tool declaration.
type ToolParam struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
}

// ToolSpec is the provider-facing declaration of a tool. Adapters translate
// it into whatever schema their API expects.
type ToolSpec struct {
	Name        string
	Description string
	Params      []ToolParam
}

// CompletionClient defines how the core application talks to an LLM service.
// tools may be nil; when non-nil the provider is allowed to answer with tool
// calls instead of (or alongside) text.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt string, history []*Message, tools []ToolSpec) (*Message, error)
}

// SessionStore defines session persistence.
type SessionStore interface {
	CreateSession(session *Session) error
	UpdateSession(session *Session) error
	GetSession(id SessionID) (*Session, error)
	ListSessionsByUser(userID UserID, limit int) ([]*Session, error)
}

// MessageStore defines message persistence.
type MessageStore interface {
	AppendMessage(msg *Message) error
	GetMessagesBySession(sessionID SessionID, limit int) ([]*Message, error)
}

package domain

// ToolCall is a structured side-effect request emitted by the completion
// provider inside an assistant message.
type ToolCall struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

// ToolResult is the outcome of executing one ToolCall. CallID always matches
// the ID of a preceding ToolCall within the same turn.
type ToolResult struct {
	CallID  string `json:"call_id"`
	Content string `json:"content"`
}

// Message represents any message in a session timeline. Messages are
// immutable once created; the sequence per session is append-only.
type Message struct {
	ID        MessageID
	SessionID SessionID
	Role      Role
	Text      string
	CreatedAt Timestamp

	// ToolCalls is only ever non-empty on assistant messages.
	ToolCalls []ToolCall

	// ToolCallID links a RoleTool message back to the call it answers.
	ToolCallID string

	// Persona names the specialist that produced an assistant message.
	Persona string
}

// Session represents one linear conversation between a user and the agent.
type Session struct {
	ID        SessionID
	UserID    UserID
	CreatedAt Timestamp
	UpdatedAt Timestamp
	Title     string
}

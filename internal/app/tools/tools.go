package tools

import (
	"context"

	"github.com/mindflow-labs/mindflow-agent/internal/domain"
)

// ToolContext brings metadata of the call to the tool.
type ToolContext struct {
	UserID    string
	SessionID string
	RequestID string
}

// Tool represents a tool the Architect can invoke. Input is a generic map to
// stay close to what providers return; Spec declares the schema providers
// are shown.
type Tool interface {
	Name() string
	Spec() domain.ToolSpec
	Call(ctx context.Context, tctx ToolContext, input map[string]any) (string, error)
}

// --- shared input helpers --- //

func getString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// getInt tolerates the numeric types providers actually send: JSON decoding
// yields float64, the genai SDK may hand over ints directly.
func getInt(m map[string]any, key string) (int, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case float32:
		return int(v), true
	default:
		return 0, false
	}
}

package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/mindflow-labs/mindflow-agent/internal/domain"
)

// ErrUnknownTool is returned when the provider requests a tool that was
// never registered. With a fixed tool set this path is only reachable via
// provider misbehavior; it is reported as a warning, not a turn failure.
var ErrUnknownTool = errors.New("unknown tool")

// Registry maps tool names to callables.
type Registry struct {
	tools map[string]Tool
	order []string
}

func NewRegistry(ts ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool)}
	for _, t := range ts {
		r.Register(t)
	}
	return r
}

func (r *Registry) Register(t Tool) {
	if _, exists := r.tools[t.Name()]; !exists {
		r.order = append(r.order, t.Name())
	}
	r.tools[t.Name()] = t
}

// Specs returns the declarations for every registered tool, in registration
// order, for passing to a provider call.
func (r *Registry) Specs() []domain.ToolSpec {
	out := make([]domain.ToolSpec, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name].Spec())
	}
	return out
}

// Execute resolves one tool call. The returned ToolResult always carries the
// call's ID so callers can keep the call/result pairing intact even when the
// tool itself failed.
func (r *Registry) Execute(ctx context.Context, tctx ToolContext, call domain.ToolCall) (domain.ToolResult, error) {
	t, ok := r.tools[call.Name]
	if !ok {
		return domain.ToolResult{
			CallID:  call.ID,
			Content: fmt.Sprintf("tool %q is not available", call.Name),
		}, fmt.Errorf("%w: %s", ErrUnknownTool, call.Name)
	}

	content, err := t.Call(ctx, tctx, call.Args)
	if err != nil {
		return domain.ToolResult{
			CallID:  call.ID,
			Content: fmt.Sprintf("tool %s failed: %v", call.Name, err),
		}, err
	}

	return domain.ToolResult{CallID: call.ID, Content: content}, nil
}

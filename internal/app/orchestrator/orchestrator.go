// Package orchestrator sequences one conversation turn:
//
//	Start → SafetyCheck → {BlockedEnd | Routing} → PersonaExecution →
//	{Done | ToolExecution} → Done
//
// Each turn is a single pass; there is no loop-back from tool execution to
// routing. All steps run strictly sequentially.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mindflow-labs/mindflow-agent/internal/app/personas"
	"github.com/mindflow-labs/mindflow-agent/internal/app/router"
	"github.com/mindflow-labs/mindflow-agent/internal/app/safety"
	"github.com/mindflow-labs/mindflow-agent/internal/app/tools"
	"github.com/mindflow-labs/mindflow-agent/internal/domain"
	"github.com/mindflow-labs/mindflow-agent/internal/observability"
)

// ToolEffect describes one tool execution that happened during a turn, for
// the caller to surface (notification, plan-card refresh) without the
// orchestrator knowing anything about presentation.
type ToolEffect struct {
	CallID string
	Name   string
	Args   map[string]any
	Err    error
}

// TurnResult is everything one pass through the machine produced. Messages
// holds only the messages created this turn, in append order.
type TurnResult struct {
	Messages []*domain.Message
	Persona  personas.Persona
	Blocked  bool
	Effects  []ToolEffect
}

// ToolsFired lists the names of tools that executed successfully.
func (r *TurnResult) ToolsFired() []string {
	var names []string
	for _, e := range r.Effects {
		if e.Err == nil {
			names = append(names, e.Name)
		}
	}
	return names
}

// PersistFailure returns the first persistence error among the effects, or
// nil. It is reported separately from provider errors: the assistant text
// was already generated and should still be shown.
func (r *TurnResult) PersistFailure() error {
	for _, e := range r.Effects {
		var pe *domain.PersistError
		if errors.As(e.Err, &pe) {
			return pe
		}
	}
	return nil
}

// Orchestrator owns the turn state machine. It holds no session state; the
// caller owns the history and appends the new user message before Run.
type Orchestrator struct {
	llm      domain.CompletionClient
	gate     *safety.Gate
	router   *router.Router
	registry *tools.Registry
	now      func() time.Time
}

func New(llm domain.CompletionClient, rt *router.Router, registry *tools.Registry) *Orchestrator {
	return &Orchestrator{
		llm:      llm,
		gate:     safety.NewGate(),
		router:   rt,
		registry: registry,
		now:      time.Now,
	}
}

// Run executes one turn. history must already end with the new user message.
func (o *Orchestrator) Run(ctx context.Context, tctx tools.ToolContext, history []*domain.Message) (*TurnResult, error) {
	if len(history) == 0 {
		return nil, fmt.Errorf("empty history")
	}

	log := observability.LoggerFromContext(ctx).With(
		"session_id", tctx.SessionID,
		"user_id", tctx.UserID,
	)

	userMsg := history[len(history)-1]

	// SafetyCheck: on a hit, emit the fixed reply and never touch the
	// provider this turn.
	if v := o.gate.Check(userMsg.Text); v.Blocked {
		log.Warn("safety gate blocked turn")
		return &TurnResult{
			Messages: []*domain.Message{o.assistantMessage(userMsg.SessionID, v.Reply, "", nil)},
			Blocked:  true,
		}, nil
	}

	// Routing.
	persona, err := o.router.Route(ctx, history)
	if err != nil {
		return nil, err
	}
	spec := personas.Get(persona)
	log.Info("routed turn", "persona", persona)

	// PersonaExecution. The tool set is passed explicitly and only for the
	// Architect; for the other three, tool calls cannot surface.
	var boundTools []domain.ToolSpec
	if spec.BindsTools && o.registry != nil {
		boundTools = o.registry.Specs()
	}

	start := o.now()
	reply, err := o.llm.Complete(ctx, spec.Prompt, history, boundTools)
	if err != nil {
		log.Error("persona call failed", "persona", persona, "error", err)
		return nil, fmt.Errorf("persona %s: %w", persona, err)
	}
	log.Info("persona replied", "persona", persona, "elapsed_ms", time.Since(start).Milliseconds())

	// With no tools bound, any hallucinated calls are dropped here rather
	// than stored, so they can never surface downstream.
	calls := reply.ToolCalls
	if boundTools == nil {
		calls = nil
	}

	result := &TurnResult{Persona: persona}
	result.Messages = append(result.Messages, o.assistantMessage(userMsg.SessionID, reply.Text, string(persona), calls))

	if len(calls) == 0 {
		return result, nil
	}

	// ToolExecution: resolve each call in order, pairing every call with
	// exactly one result message before the turn completes.
	for _, call := range calls {
		res, execErr := o.registry.Execute(ctx, tctx, call)
		if execErr != nil {
			if errors.Is(execErr, tools.ErrUnknownTool) {
				log.Warn("provider requested unknown tool", "tool", call.Name)
			} else {
				log.Error("tool execution failed", "tool", call.Name, "error", execErr)
			}
		}

		result.Effects = append(result.Effects, ToolEffect{
			CallID: call.ID,
			Name:   call.Name,
			Args:   call.Args,
			Err:    execErr,
		})

		result.Messages = append(result.Messages, &domain.Message{
			ID:         domain.MessageID(uuid.NewString()),
			SessionID:  userMsg.SessionID,
			Role:       domain.RoleTool,
			Text:       res.Content,
			ToolCallID: res.CallID,
			CreatedAt:  o.now(),
		})
	}

	return result, nil
}

func (o *Orchestrator) assistantMessage(sessionID domain.SessionID, text, persona string, calls []domain.ToolCall) *domain.Message {
	return &domain.Message{
		ID:        domain.MessageID(uuid.NewString()),
		SessionID: sessionID,
		Role:      domain.RoleAssistant,
		Text:      text,
		Persona:   persona,
		ToolCalls: calls,
		CreatedAt: o.now(),
	}
}

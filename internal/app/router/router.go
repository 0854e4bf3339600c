// Package router implements the supervisor step: one classification call to
// the completion provider, parsed into a persona choice.
package router

import (
	"context"
	"fmt"
	"strings"

	"github.com/mindflow-labs/mindflow-agent/internal/app/personas"
	"github.com/mindflow-labs/mindflow-agent/internal/domain"
	"github.com/mindflow-labs/mindflow-agent/internal/observability"
)

const supervisorPrompt = `Analyze the user's latest message and Intent. Route to the best specialist:

1. 'STRATEGIST': User wants to set goals, plan, or is confused about what to do.
2. 'HEALER': User is sad, anxious, tired, stuck, guilt-ridden, or venting.
3. 'STARTER': User is emotionally okay but lazy/procrastinating, or ready to act.
4. 'ARCHITECT': User has finished a task, wants to log progress, or says "I did it".

Return ONLY the word: STRATEGIST, HEALER, STARTER, or ARCHITECT.`

// ErrUnrecognizedLabel is returned in strict mode when the provider reply
// contains none of the four labels.
var ErrUnrecognizedLabel = fmt.Errorf("supervisor reply contains no persona label")

type Router struct {
	llm domain.CompletionClient

	// Strict turns an unparseable classification into an error instead of
	// silently falling back to the Healer.
	Strict bool
}

func New(llm domain.CompletionClient) *Router {
	return &Router{llm: llm}
}

// Route sends the classification prompt plus the conversation so far and
// parses the single-word label from the reply. Label names are matched by
// uppercase substring containment in priority order; first match wins. A
// reply with no label resolves to the Healer (best-effort classification,
// no retry) unless Strict is set.
func (r *Router) Route(ctx context.Context, history []*domain.Message) (personas.Persona, error) {
	reply, err := r.llm.Complete(ctx, supervisorPrompt, history, nil)
	if err != nil {
		return "", fmt.Errorf("supervisor classification: %w", err)
	}

	label := strings.ToUpper(reply.Text)
	for _, p := range personas.All {
		if strings.Contains(label, strings.ToUpper(string(p))) {
			return p, nil
		}
	}

	if r.Strict {
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedLabel, reply.Text)
	}

	observability.LoggerFromContext(ctx).Warn("unrecognized supervisor label, defaulting to healer",
		"reply", reply.Text)
	return personas.Healer, nil
}

package llm

import (
	"context"
	"encoding/json"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mindflow-labs/mindflow-agent/internal/domain"
)

var errNoChoices = errors.New("empty choices in response")

// OpenAIClient implements domain.CompletionClient against any
// OpenAI-compatible chat API (including OpenRouter via a base URL override).
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, baseURL, model string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Complete implements domain.CompletionClient.
func (c *OpenAIClient) Complete(
	ctx context.Context,
	systemPrompt string,
	history []*domain.Message,
	tools []domain.ToolSpec,
) (*domain.Message, error) {

	msgs := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
	}
	for _, m := range history {
		switch m.Role {
		case domain.RoleAssistant:
			msgs = append(msgs, openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleAssistant,
				Content: m.Text,
			})
		case domain.RoleTool:
			msgs = append(msgs, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    m.Text,
				ToolCallID: m.ToolCallID,
			})
		default:
			msgs = append(msgs, openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleUser,
				Content: m.Text,
			})
		}
	}

	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: msgs,
	}

	if len(tools) > 0 {
		var oaTools []openai.Tool
		for _, spec := range tools {
			oaTools = append(oaTools, openai.Tool{
				Type: openai.ToolTypeFunction,
				Function: &openai.FunctionDefinition{
					Name:        spec.Name,
					Description: spec.Description,
					Parameters:  toJSONSchema(spec),
				},
			})
		}
		req.Tools = oaTools
		req.ToolChoice = "auto"
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, &domain.ProviderError{Provider: "openai", Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &domain.ProviderError{Provider: "openai", Err: errNoChoices}
	}

	choice := resp.Choices[0].Message
	reply := &domain.Message{
		Role: domain.RoleAssistant,
		Text: choice.Content,
	}

	for _, tc := range choice.ToolCalls {
		reply.ToolCalls = append(reply.ToolCalls, domain.ToolCall{
			ID:   tc.ID,
			Name: tc.Function.Name,
			Args: parseJSONArgs(tc.Function.Arguments),
		})
	}

	return reply, nil
}

// toJSONSchema renders a tool spec as the JSON-schema object the chat API
// expects.
func toJSONSchema(spec domain.ToolSpec) map[string]any {
	props := make(map[string]any, len(spec.Params))
	required := []string{}
	for _, p := range spec.Params {
		props[p.Name] = map[string]any{
			"type":        string(p.Type),
			"description": p.Description,
		}
		if p.Required {
			required = append(required, p.Name)
		}
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

// parseJSONArgs decodes the function arguments from their JSON string form.
func parseJSONArgs(args string) map[string]any {
	var result map[string]any
	if err := json.Unmarshal([]byte(args), &result); err != nil {
		return map[string]any{}
	}
	return result
}

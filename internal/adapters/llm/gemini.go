package llm

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/mindflow-labs/mindflow-agent/internal/domain"
)

// GeminiClient implements domain.CompletionClient on top of the Gemini API
// (or Vertex AI when a project is configured).
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// GeminiOptions selects between API-key and Vertex backends.
type GeminiOptions struct {
	APIKey    string
	Project   string
	Location  string
	ModelName string
}

func NewGeminiClient(ctx context.Context, opts GeminiOptions) (*GeminiClient, error) {
	cc := &genai.ClientConfig{}
	switch {
	case opts.Project != "":
		cc.Project = opts.Project
		cc.Location = opts.Location
		cc.Backend = genai.BackendVertexAI
	case opts.APIKey != "":
		cc.APIKey = opts.APIKey
		cc.Backend = genai.BackendGeminiAPI
	default:
		return nil, fmt.Errorf("gemini client needs an API key or a GCP project")
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	model := opts.ModelName
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &GeminiClient{client: client, modelName: model}, nil
}

// Complete implements domain.CompletionClient.
func (g *GeminiClient) Complete(
	ctx context.Context,
	systemPrompt string,
	history []*domain.Message,
	tools []domain.ToolSpec,
) (*domain.Message, error) {

	var contents []*genai.Content
	for _, m := range history {
		switch m.Role {
		case domain.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Text, genai.RoleModel))
		case domain.RoleTool:
			// Single-pass turns never feed results back for another
			// provider round, so prior tool results read as plain
			// context.
			contents = append(contents, genai.NewContentFromText("Tool result: "+m.Text, genai.RoleUser))
		default:
			contents = append(contents, genai.NewContentFromText(m.Text, genai.RoleUser))
		}
	}

	temp := float32(0.7)
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       &temp,
	}

	if len(tools) > 0 {
		decls := make([]*genai.FunctionDeclaration, 0, len(tools))
		for _, t := range tools {
			decls = append(decls, toFunctionDeclaration(t))
		}
		cfg.Tools = []*genai.Tool{{FunctionDeclarations: decls}}
	}

	res, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, cfg)
	if err != nil {
		return nil, &domain.ProviderError{Provider: "gemini", Err: err}
	}

	reply := &domain.Message{
		Role: domain.RoleAssistant,
		Text: res.Text(),
	}

	for _, fc := range res.FunctionCalls() {
		id := fc.ID
		if id == "" {
			// Gemini may omit call ids; assign one so the
			// call/result pairing holds regardless.
			id = uuid.NewString()
		}
		reply.ToolCalls = append(reply.ToolCalls, domain.ToolCall{
			ID:   id,
			Name: fc.Name,
			Args: fc.Args,
		})
	}

	if reply.Text == "" && len(reply.ToolCalls) == 0 {
		return nil, &domain.ProviderError{Provider: "gemini", Err: fmt.Errorf("empty response")}
	}

	return reply, nil
}

func toFunctionDeclaration(spec domain.ToolSpec) *genai.FunctionDeclaration {
	props := make(map[string]*genai.Schema, len(spec.Params))
	var required []string
	for _, p := range spec.Params {
		schema := &genai.Schema{Description: p.Description}
		switch p.Type {
		case domain.ParamInteger:
			schema.Type = genai.TypeInteger
		default:
			schema.Type = genai.TypeString
		}
		props[p.Name] = schema
		if p.Required {
			required = append(required, p.Name)
		}
	}

	return &genai.FunctionDeclaration{
		Name:        spec.Name,
		Description: spec.Description,
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: props,
			Required:   required,
		},
	}
}

package llm

import (
	"context"
	"fmt"

	"github.com/mindflow-labs/mindflow-agent/internal/config"
	"github.com/mindflow-labs/mindflow-agent/internal/domain"
)

// NewClient builds the configured completion client.
func NewClient(ctx context.Context, cfg *config.Config) (domain.CompletionClient, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGeminiClient(ctx, GeminiOptions{
			APIKey:    cfg.GoogleAPIKey,
			Project:   cfg.GCPProject,
			Location:  cfg.GCPLocation,
			ModelName: cfg.ModelName,
		})
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBase, cfg.OpenAIModel), nil
	case config.ProviderMock:
		return NewMockClient(), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}

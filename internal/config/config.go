package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderGemini LLMProvider = "gemini"
	ProviderOpenAI LLMProvider = "openai"
	ProviderMock   LLMProvider = "mock"
)

type StorageBackend string

const (
	StorageMemory    StorageBackend = "memory"
	StorageCSV       StorageBackend = "csv"
	StorageFirestore StorageBackend = "firestore"
)

type Config struct {
	Port string `env:"MINDFLOW_PORT" envDefault:"8080"`

	// LLM settings
	Provider     LLMProvider `env:"MINDFLOW_LLM_PROVIDER" envDefault:"mock"`
	GoogleAPIKey string      `env:"GOOGLE_API_KEY"`
	ModelName    string      `env:"MINDFLOW_MODEL_NAME" envDefault:"gemini-2.0-flash"`
	OpenAIAPIKey string      `env:"OPENAI_API_KEY"`
	OpenAIBase   string      `env:"OPENAI_BASE_URL"`
	OpenAIModel  string      `env:"MINDFLOW_OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// Routing policy: when true an unrecognized supervisor label is an
	// error instead of falling back to the Healer.
	StrictRouting bool `env:"MINDFLOW_STRICT_ROUTING" envDefault:"false"`

	// Storage
	Backend     StorageBackend `env:"MINDFLOW_STORAGE_BACKEND" envDefault:"memory"`
	DataDir     string         `env:"MINDFLOW_DATA_DIR" envDefault:"data"`
	GCPProject  string         `env:"MINDFLOW_GCP_PROJECT"`
	GCPLocation string         `env:"MINDFLOW_GCP_LOCATION" envDefault:"us-central1"`
}

// Load reads all env vars and builds the config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GoogleAPIKey == "" && cfg.GCPProject == "" {
			return nil, fmt.Errorf("GOOGLE_API_KEY or MINDFLOW_GCP_PROJECT must be set for the gemini provider")
		}
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY must be set for the openai provider")
		}
	}

	if cfg.Backend == StorageFirestore && cfg.GCPProject == "" {
		return nil, fmt.Errorf("MINDFLOW_GCP_PROJECT must be set for the firestore backend")
	}

	return cfg, nil
}

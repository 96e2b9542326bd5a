package ai

import (
	"context"
	"fmt"

	"resume-builder/pkg/ai/chat"
	"resume-builder/pkg/ai/gemini"
	"resume-builder/pkg/ai/llm"
	"resume-builder/pkg/ai/openrouter"
)

// ProviderConfig selects and configures a text generation backend.
type ProviderConfig struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

// NewGenerator builds the backend named by cfg.Provider. "none" or an empty
// provider yields llm.Unavailable.
func NewGenerator(ctx context.Context, cfg ProviderConfig) (llm.Generator, error) {
	switch cfg.Provider {
	case "gemini":
		return gemini.NewGenerator(ctx, cfg.APIKey, cfg.Model)
	case "openrouter":
		return openrouter.NewGenerator(cfg.APIKey, cfg.Model, cfg.BaseURL)
	case "chat":
		return chat.NewGenerator(cfg.BaseURL), nil
	case "none", "":
		return llm.Unavailable{}, nil
	default:
		return nil, fmt.Errorf("unknown ai provider %q", cfg.Provider)
	}
}

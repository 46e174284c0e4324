package factory

import (
	"context"
	"fmt"
	"time"

	"guruvela-be/internal/constant"
	"guruvela-be/pkg/llm"
	"guruvela-be/pkg/llm/gemini"
	"guruvela-be/pkg/llm/ollama"
)

const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
	ProviderNone   = "none"
)

// Settings selects and configures a provider.
type Settings struct {
	Provider      string
	Model         string
	GeminiAPIKey  string
	OllamaBaseURL string
	Timeout       time.Duration
}

// NewLLMProvider returns nil, nil when generation is switched off or a
// Gemini key is missing, so callers treat the feature as unconfigured.
func NewLLMProvider(ctx context.Context, s Settings) (llm.LLMProvider, error) {
	switch s.Provider {
	case "", ProviderNone:
		return nil, nil
	case ProviderGemini:
		if s.GeminiAPIKey == "" {
			return nil, nil
		}
		model := s.Model
		if model == "" {
			model = constant.GeminiDefaultModel
		}
		p, err := gemini.NewGeminiProvider(ctx, s.GeminiAPIKey, model)
		if err != nil {
			return nil, err
		}
		return p, nil
	case ProviderOllama:
		return ollama.NewOllamaProvider(s.OllamaBaseURL, s.Model, s.Timeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", s.Provider)
	}
}

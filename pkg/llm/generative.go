package llm

import (
	"context"
	"fmt"
	"time"

	"guruvela-be/internal/constant"
	"guruvela-be/internal/pkg/logger"
)

const generativeLogModule = "generative"

// Generative wraps an optional provider as a fallback answerer. A nil
// provider means the feature is not configured.
type Generative struct {
	provider  LLMProvider
	maxTokens int
	log       logger.ILogger
}

func NewGenerative(provider LLMProvider, maxTokens int, log logger.ILogger) *Generative {
	if maxTokens <= 0 {
		maxTokens = constant.GeminiMaxOutputTokens
	}
	return &Generative{provider: provider, maxTokens: maxTokens, log: log}
}

// IsAvailable reports whether a provider is configured.
func (g *Generative) IsAvailable() bool {
	return g != nil && g.provider != nil
}

// Generate answers prompt in language. It never returns an error: an
// unconfigured provider or a failed call yields localized user-safe text.
func (g *Generative) Generate(ctx context.Context, prompt, language string) string {
	texts := constant.TextsFor(language)
	if !g.IsAvailable() {
		return texts.GenerativeUnavailable
	}

	full := fmt.Sprintf(constant.GenerativeSystemPrompt, constant.LanguageHint(language), prompt)

	start := time.Now()
	out, err := g.provider.Generate(ctx, full, WithMaxTokens(g.maxTokens))
	elapsed := time.Since(start)

	if err != nil {
		g.log.Error(generativeLogModule, "generate failed", map[string]interface{}{
			"error":       err.Error(),
			"language":    language,
			"duration_ms": elapsed.Milliseconds(),
		})
		return texts.GenerativeError
	}
	if out == "" {
		return texts.GenerativeError
	}

	g.log.Info(generativeLogModule, "generated answer", map[string]interface{}{
		"language":     language,
		"prompt_chars": len(prompt),
		"answer_chars": len(out),
		"duration_ms":  elapsed.Milliseconds(),
	})
	return out
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Anujnegi157/evalease-screens/internal/config"
)

// TextGenerator sends one system and one user message to a chat-completion
// style model and returns the raw text of the reply.
type TextGenerator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

var ErrTextGenNotConfigured = errors.New("text generation is not configured")

type unconfiguredGenerator struct{}

func (unconfiguredGenerator) Generate(context.Context, string, string) (string, error) {
	return "", ErrTextGenNotConfigured
}

// NewTextGenerator builds the provider selected in cfg. A provider without
// credentials yields a generator that always fails, so generation degrades
// to the keyword fallback instead of refusing to start.
func NewTextGenerator(ctx context.Context, cfg config.TextGenConfig, gemini config.GeminiConfig) (TextGenerator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		if gemini.APIKey == "" {
			log.Println("⚠️  GEMINI_API_KEY not set, generation will use keyword fallback")
			return unconfiguredGenerator{}, nil
		}
		return NewGeminiService(ctx, gemini.APIKey, gemini.Model)
	case config.ProviderAzureOpenAI, "":
		if cfg.Endpoint == "" || cfg.APIKey == "" {
			log.Println("⚠️  TEXTGEN_ENDPOINT or TEXTGEN_API_KEY not set, generation will use keyword fallback")
			return unconfiguredGenerator{}, nil
		}
		return NewAzureOpenAIService(cfg), nil
	default:
		return nil, fmt.Errorf("unknown text generation provider %q", cfg.Provider)
	}
}

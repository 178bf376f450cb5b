package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/luna/internal/config"
	"github.com/terraincognita07/luna/internal/logger"
)

var (
	ErrNotConfigured = errors.New("generation provider not configured")
	ErrEmptyResponse = errors.New("generation returned no text")
)

type Request struct {
	SystemPrompt string
	UserText     string
	MaxTokens    int
}

type Generator interface {
	Generate(ctx context.Context, request Request) (string, error)
}

// Provider is a Generator that holds a connection to release on shutdown.
type Provider interface {
	Generator
	Name() string
	Close() error
}

// New builds the provider selected in cfg. Credentials stay on the server.
func New(ctx context.Context, cfg config.Config, log *logger.Logger) (Provider, error) {
	if log == nil {
		log = logger.Nop()
	}
	switch cfg.GenerationProvider {
	case config.ProviderOpenAI:
		if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
			return nil, fmt.Errorf("%w: OPENAI_API_KEY is empty", ErrNotConfigured)
		}
		return NewOpenAIClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, log), nil
	case config.ProviderGemini:
		if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
			return nil, fmt.Errorf("%w: GEMINI_API_KEY is empty", ErrNotConfigured)
		}
		return NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, log)
	default:
		return Unavailable{}, nil
	}
}

// Unavailable always fails, which sends chat replies down the fallback path.
type Unavailable struct{}

func (Unavailable) Generate(context.Context, Request) (string, error) {
	return "", ErrNotConfigured
}

func (Unavailable) Name() string {
	return config.ProviderNone
}

func (Unavailable) Close() error {
	return nil
}

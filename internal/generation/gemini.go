package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/terraincognita07/luna/internal/config"
	"github.com/terraincognita07/luna/internal/logger"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	log       *logger.Logger
	client    *genai.Client
	modelName string
}

func NewGeminiClient(ctx context.Context, apiKey string, modelName string, log *logger.Logger) (*GeminiClient, error) {
	if log == nil {
		log = logger.Nop()
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiClient{
		log:       log.With("service", "GeminiClient"),
		client:    client,
		modelName: modelName,
	}, nil
}

func (c *GeminiClient) Name() string {
	return config.ProviderGemini
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func (c *GeminiClient) Generate(ctx context.Context, request Request) (string, error) {
	model := c.client.GenerativeModel(c.modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(request.SystemPrompt)},
	}
	if request.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(request.MaxTokens))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(request.UserText))
	if err != nil {
		return "", fmt.Errorf("gemini GenerateContent failed: %w", err)
	}
	return joinCandidateText(resp)
}

func joinCandidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if value, ok := part.(genai.Text); ok {
			text.WriteString(string(value))
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", ErrEmptyResponse
	}
	return text.String(), nil
}

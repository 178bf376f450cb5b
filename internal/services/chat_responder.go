package services

import (
	"context"
	"errors"
	"strings"

	"github.com/terraincognita07/luna/internal/generation"
	"github.com/terraincognita07/luna/internal/logger"
	"github.com/terraincognita07/luna/internal/models"
)

var ErrEmptyChatMessage = errors.New("empty chat message")

type ResponseSource string

const (
	SourceExact     ResponseSource = "exact"
	SourcePartial   ResponseSource = "partial"
	SourceKeyword   ResponseSource = "keyword"
	SourceGenerated ResponseSource = "generated"
	SourceFallback  ResponseSource = "fallback"
)

type ChatReply struct {
	Answer  string               `json:"answer"`
	Source  ResponseSource       `json:"source"`
	History []models.ChatMessage `json:"history"`
}

type ChatResponder struct {
	knowledge []KnowledgeEntry
	keywords  []KnowledgeEntry
	generator generation.Generator
	log       *logger.Logger
}

func NewChatResponder(generator generation.Generator, log *logger.Logger) *ChatResponder {
	if generator == nil {
		generator = generation.Unavailable{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ChatResponder{
		knowledge: KnowledgeTable,
		keywords:  KeywordTable,
		generator: generator,
		log:       log,
	}
}

// Match runs the static cascade only: exact, then substring in either
// direction, then keyword containment, each in table order.
func (responder *ChatResponder) Match(text string) (string, ResponseSource, bool) {
	question := strings.ToLower(strings.TrimSpace(text))
	if question == "" {
		return "", "", false
	}

	for _, entry := range responder.knowledge {
		if question == entry.Pattern {
			return entry.Answer, SourceExact, true
		}
	}
	for _, entry := range responder.knowledge {
		if strings.Contains(question, entry.Pattern) || strings.Contains(entry.Pattern, question) {
			return entry.Answer, SourcePartial, true
		}
	}
	for _, entry := range responder.keywords {
		if strings.Contains(question, entry.Pattern) {
			return entry.Answer, SourceKeyword, true
		}
	}
	return "", "", false
}

// Respond appends the user turn and one assistant turn to a copy of history.
// A failed generation call yields the fixed fallback message and no error.
func (responder *ChatResponder) Respond(ctx context.Context, text string, history []models.ChatMessage) (ChatReply, error) {
	if strings.TrimSpace(text) == "" {
		return ChatReply{}, ErrEmptyChatMessage
	}

	answer, source, matched := responder.Match(text)
	if !matched {
		generated, err := responder.generator.Generate(ctx, generation.Request{
			SystemPrompt: chatSystemPrompt,
			UserText:     text,
			MaxTokens:    chatMaxTokens,
		})
		if err != nil {
			responder.log.Warn("chat generation failed", "error", err.Error())
			answer, source = ChatFallbackMessage, SourceFallback
		} else {
			answer, source = generated, SourceGenerated
		}
	}

	updated := make([]models.ChatMessage, 0, len(history)+2)
	updated = append(updated, history...)
	updated = append(updated,
		models.ChatMessage{Role: models.ChatRoleUser, Content: text},
		models.ChatMessage{Role: models.ChatRoleAssistant, Content: answer},
	)
	return ChatReply{Answer: answer, Source: source, History: updated}, nil
}

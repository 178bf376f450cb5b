package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/luna/internal/chatstore"
	"github.com/terraincognita07/luna/internal/logger"
	"github.com/terraincognita07/luna/internal/models"
)

var (
	ErrChatSessionNotFound = errors.New("chat session not found")
	ErrChatSessionBusy     = errors.New("chat session is awaiting a reply")
)

// chatReplyHold bounds how long a crashed request can keep a session locked.
const chatReplyHold = 2 * time.Minute

type ChatService struct {
	sessions  chatstore.Store
	responder *ChatResponder
	log       *logger.Logger
	now       func() time.Time
}

func NewChatService(sessions chatstore.Store, responder *ChatResponder, log *logger.Logger) *ChatService {
	if log == nil {
		log = logger.Nop()
	}
	return &ChatService{sessions: sessions, responder: responder, log: log, now: time.Now}
}

func (service *ChatService) Start(ctx context.Context, userID uint) (models.ChatSession, error) {
	now := service.now()
	session := models.ChatSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		State:     models.ChatIdle,
		Messages:  []models.ChatMessage{{Role: models.ChatRoleAssistant, Content: ChatWelcomeMessage}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := service.sessions.Save(ctx, session); err != nil {
		return models.ChatSession{}, err
	}
	return session, nil
}

func (service *ChatService) Get(ctx context.Context, userID uint, sessionID string) (models.ChatSession, error) {
	session, err := service.sessions.Load(ctx, strings.TrimSpace(sessionID))
	if errors.Is(err, chatstore.ErrSessionNotFound) || (err == nil && session.UserID != userID) {
		return models.ChatSession{}, ErrChatSessionNotFound
	}
	if err != nil {
		return models.ChatSession{}, err
	}
	return session, nil
}

// Send moves the session to awaiting, resolves one reply and returns it to
// idle. A second Send while the first is unresolved fails with
// ErrChatSessionBusy, so replies are appended in submission order. The
// session is read again after the lock is taken so a reply that finished in
// between is never overwritten.
func (service *ChatService) Send(ctx context.Context, userID uint, sessionID string, text string) (models.ChatSession, ChatReply, error) {
	if strings.TrimSpace(text) == "" {
		return models.ChatSession{}, ChatReply{}, ErrEmptyChatMessage
	}

	owned, err := service.Get(ctx, userID, sessionID)
	if err != nil {
		return models.ChatSession{}, ChatReply{}, err
	}

	token, acquired, err := service.sessions.Acquire(ctx, owned.ID, chatReplyHold)
	if err != nil {
		return models.ChatSession{}, ChatReply{}, fmt.Errorf("lock chat session: %w", err)
	}
	if !acquired {
		return models.ChatSession{}, ChatReply{}, ErrChatSessionBusy
	}
	defer func() {
		if err := service.sessions.Release(context.WithoutCancel(ctx), owned.ID, token); err != nil {
			service.log.Warn("release chat session failed", "session_id", owned.ID, "error", err.Error())
		}
	}()

	session, err := service.Get(ctx, userID, owned.ID)
	if err != nil {
		return models.ChatSession{}, ChatReply{}, err
	}

	session.State = models.ChatAwaiting
	if err := service.sessions.Save(ctx, session); err != nil {
		return models.ChatSession{}, ChatReply{}, err
	}

	reply, err := service.responder.Respond(ctx, text, session.Messages)
	if err != nil {
		service.restoreIdle(ctx, session)
		return models.ChatSession{}, ChatReply{}, err
	}

	resolved := session
	resolved.State = models.ChatIdle
	resolved.Messages = reply.History
	resolved.UpdatedAt = service.now()
	if err := service.sessions.Save(context.WithoutCancel(ctx), resolved); err != nil {
		service.restoreIdle(ctx, session)
		return models.ChatSession{}, ChatReply{}, err
	}
	return resolved, reply, nil
}

// restoreIdle puts a session whose reply failed back to idle with its
// previous messages.
func (service *ChatService) restoreIdle(ctx context.Context, session models.ChatSession) {
	session.State = models.ChatIdle
	if err := service.sessions.Save(context.WithoutCancel(ctx), session); err != nil {
		service.log.Warn("restore idle chat session failed", "session_id", session.ID, "error", err.Error())
	}
}

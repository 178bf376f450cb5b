package chatstore

import (
	"context"
	"errors"
	"time"

	"github.com/terraincognita07/luna/internal/models"
)

var ErrSessionNotFound = errors.New("chat session not found")

// Store keeps chat sessions for a limited time. Acquire is the per-session
// lock that keeps at most one reply in flight. It returns an owner token;
// Release only frees the lock while that token still holds it.
type Store interface {
	Save(ctx context.Context, session models.ChatSession) error
	Load(ctx context.Context, id string) (models.ChatSession, error)
	Delete(ctx context.Context, id string) error
	Acquire(ctx context.Context, id string, hold time.Duration) (string, bool, error)
	Release(ctx context.Context, id string, token string) error
	Close() error
}

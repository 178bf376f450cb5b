package chatstore

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/luna/internal/models"
)

type memoryEntry struct {
	session   models.ChatSession
	expiresAt time.Time
}

type memoryLock struct {
	token string
	until time.Time
}

type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
	locks   map[string]memoryLock
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
		locks:   make(map[string]memoryLock),
	}
}

func (store *MemoryStore) Save(_ context.Context, session models.ChatSession) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.pruneLocked(store.now())
	session.Messages = slices.Clone(session.Messages)
	store.entries[session.ID] = memoryEntry{session: session, expiresAt: store.now().Add(store.ttl)}
	return nil
}

func (store *MemoryStore) Load(_ context.Context, id string) (models.ChatSession, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	entry, ok := store.entries[id]
	if !ok || !store.now().Before(entry.expiresAt) {
		delete(store.entries, id)
		return models.ChatSession{}, ErrSessionNotFound
	}
	session := entry.session
	session.Messages = slices.Clone(session.Messages)
	return session, nil
}

func (store *MemoryStore) Delete(_ context.Context, id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	delete(store.entries, id)
	delete(store.locks, id)
	return nil
}

func (store *MemoryStore) Acquire(_ context.Context, id string, hold time.Duration) (string, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	now := store.now()
	if lock, held := store.locks[id]; held && now.Before(lock.until) {
		return "", false, nil
	}
	token := uuid.NewString()
	store.locks[id] = memoryLock{token: token, until: now.Add(hold)}
	return token, true, nil
}

func (store *MemoryStore) Release(_ context.Context, id string, token string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if lock, held := store.locks[id]; held && lock.token == token {
		delete(store.locks, id)
	}
	return nil
}

func (store *MemoryStore) Close() error {
	return nil
}

func (store *MemoryStore) pruneLocked(now time.Time) {
	for id, entry := range store.entries {
		if !now.Before(entry.expiresAt) {
			delete(store.entries, id)
		}
	}
	for id, lock := range store.locks {
		if !now.Before(lock.until) {
			delete(store.locks, id)
		}
	}
}

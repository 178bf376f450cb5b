package chatstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/terraincognita07/luna/internal/logger"
	"github.com/terraincognita07/luna/internal/models"
)

const (
	sessionKeyPrefix = "luna:chat:session:"
	lockKeyPrefix    = "luna:chat:lock:"
)

// releaseScript deletes the lock only while it still carries the caller's token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisStore struct {
	log *logger.Logger
	rdb goredis.UniversalClient
	ttl time.Duration
}

// NewRedisStore connects to rawURL (redis://...) and pings it before returning.
func NewRedisStore(ctx context.Context, rawURL string, ttl time.Duration, log *logger.Logger) (*RedisStore, error) {
	if log == nil {
		log = logger.Nop()
	}
	options, err := goredis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	options.DialTimeout = 5 * time.Second

	rdb := goredis.NewClient(options)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedisStoreWithClient(rdb, ttl, log), nil
}

func NewRedisStoreWithClient(rdb goredis.UniversalClient, ttl time.Duration, log *logger.Logger) *RedisStore {
	if log == nil {
		log = logger.Nop()
	}
	return &RedisStore{log: log.With("service", "RedisChatStore"), rdb: rdb, ttl: ttl}
}

func (store *RedisStore) Save(ctx context.Context, session models.ChatSession) error {
	raw, err := json.Marshal(redisSession{ChatSession: session, UserID: session.UserID})
	if err != nil {
		return err
	}
	return store.rdb.Set(ctx, sessionKeyPrefix+session.ID, raw, store.ttl).Err()
}

func (store *RedisStore) Load(ctx context.Context, id string) (models.ChatSession, error) {
	raw, err := store.rdb.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, goredis.Nil) {
		return models.ChatSession{}, ErrSessionNotFound
	}
	if err != nil {
		return models.ChatSession{}, err
	}

	var decoded redisSession
	if err := json.Unmarshal(raw, &decoded); err != nil {
		store.log.Warn("discarding unreadable chat session", "session_id", id, "error", err.Error())
		return models.ChatSession{}, ErrSessionNotFound
	}
	decoded.ChatSession.UserID = decoded.UserID
	return decoded.ChatSession, nil
}

func (store *RedisStore) Delete(ctx context.Context, id string) error {
	return store.rdb.Del(ctx, sessionKeyPrefix+id, lockKeyPrefix+id).Err()
}

func (store *RedisStore) Acquire(ctx context.Context, id string, hold time.Duration) (string, bool, error) {
	token := uuid.NewString()
	acquired, err := store.rdb.SetNX(ctx, lockKeyPrefix+id, token, hold).Result()
	if err != nil || !acquired {
		return "", false, err
	}
	return token, true, nil
}

func (store *RedisStore) Release(ctx context.Context, id string, token string) error {
	return releaseScript.Run(ctx, store.rdb, []string{lockKeyPrefix + id}, token).Err()
}

func (store *RedisStore) Close() error {
	return store.rdb.Close()
}

// redisSession carries the owner id, which the API representation hides.
type redisSession struct {
	models.ChatSession
	UserID uint `json:"user_id"`
}

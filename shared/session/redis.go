package session

import (
	"context"
	"deportur/shared"
	"deportur/shared/cache"
	"encoding/base64"
	"errors"
	"fmt"
	"time"
)

const cacheKeySession = "session"

// sessionKey encodes the session id so it can hold neither the key separator nor glob
// characters, which keeps Clear from matching keys of other sessions.
func sessionKey(sessionID string, key ...string) string {
	parts := append([]string{cacheKeySession, base64.RawURLEncoding.EncodeToString([]byte(sessionID))}, key...)

	return shared.BuildCacheKey(parts...)
}

// RedisStore keeps session values in redis through the shared cache.
type RedisStore struct {
	cache cache.RedisCache
	ttl   time.Duration
}

func NewRedisStore(redisCache cache.RedisCache, ttl time.Duration) *RedisStore {
	return &RedisStore{
		cache: redisCache,
		ttl:   ttl,
	}
}

func (r *RedisStore) Load(ctx context.Context, sessionID, key string, dest any) (bool, error) {
	err := r.cache.Get(ctx, sessionKey(sessionID, key), dest)
	if errors.Is(err, cache.Nil) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to load session value: %w", err)
	}

	return true, nil
}

func (r *RedisStore) Save(ctx context.Context, sessionID, key string, value any) error {
	if err := r.cache.Save(ctx, sessionKey(sessionID, key), value, int(r.ttl.Seconds())); err != nil {
		return fmt.Errorf("failed to save session value: %w", err)
	}

	return nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionID, key string) error {
	if err := r.cache.Delete(ctx, sessionKey(sessionID, key)); err != nil {
		return fmt.Errorf("failed to delete session value: %w", err)
	}

	return nil
}

func (r *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := r.cache.Clear(ctx, sessionKey(sessionID)+":*"); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}

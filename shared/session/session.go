// Package session keeps per-operator screen and wizard state between requests.
package session

//go:generate go run go.uber.org/mock/mockgen -source=./session.go -destination=./mocks/session_mock.go -package=mocks

import (
	"context"
	"deportur/config"
	"deportur/shared/cache"
	"deportur/shared/constant"
	"errors"
	"regexp"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	ErrMissingSession   = errors.New("missing session id")
	ErrInvalidSessionID = errors.New("session id may only contain letters, digits, '-' and '_' (max 64)")
)

const tabSeparator = "#"

var tabPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Store persists JSON-encodable values under a session id and a key.
type Store interface {
	Load(ctx context.Context, sessionID, key string, dest any) (found bool, err error)
	Save(ctx context.Context, sessionID, key string, value any) error
	Delete(ctx context.Context, sessionID, key string) error
	Clear(ctx context.Context, sessionID string) error
}

// New picks the configured store. Redis is used only when a cache client is available.
func New(cfg *config.Config, redisCache cache.RedisCache) Store {
	ttl := time.Duration(cfg.App.Session.TTLMinutes) * time.Minute

	if cfg.App.Session.Store == constant.SessionStoreRedis {
		if redisCache != nil {
			log.Info().Dur("ttl", ttl).Msg("Using redis session store")

			return NewRedisStore(redisCache, ttl)
		}

		log.Warn().Msg("Redis session store requested but no cache is configured, falling back to memory")
	}

	log.Info().Dur("ttl", ttl).Msg("Using in-memory session store")

	return NewMemoryStore(ttl)
}

// Scoped binds a client supplied tab id to the token subject, so an operator can keep
// several tabs apart but never reach another operator's state. An empty tab is the
// subject's default session.
func Scoped(subject, tab string) (string, error) {
	if subject == constant.Empty {
		return constant.Empty, ErrMissingSession
	}

	if tab == constant.Empty {
		return subject, nil
	}

	if !tabPattern.MatchString(tab) {
		return constant.Empty, ErrInvalidSessionID
	}

	return subject + tabSeparator + tab, nil
}

// ID returns the operator session id carried by ctx.
func ID(ctx context.Context) (string, error) {
	id, _ := ctx.Value(constant.ContextKeySessionID).(string)
	if id == constant.Empty {
		return constant.Empty, ErrMissingSession
	}

	return id, nil
}

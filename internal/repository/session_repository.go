package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dainakamiko/quiz/internal/cache"
	"github.com/dainakamiko/quiz/internal/domain"
	"github.com/dainakamiko/quiz/internal/logger"

	"go.uber.org/zap"
)

// cacheSessionRepository implements domain.SessionRepository on top of the
// generic cache port. Sessions are stored as JSON under an opaque token with
// a TTL; expiry is the only cleanup mechanism.
type cacheSessionRepository struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewCacheSessionRepository creates a new session repository backed by the
// given cache. ttl bounds the lifetime of an idle session.
func NewCacheSessionRepository(c domain.Cache, ttl time.Duration) domain.SessionRepository {
	return &cacheSessionRepository{
		cache: c,
		ttl:   ttl,
	}
}

func (r *cacheSessionRepository) generateKey(sessionID string) string {
	return cache.GenerateCacheKey("quiz", "session", sessionID)
}

// Save stores or replaces the session under the given token, refreshing its TTL.
func (r *cacheSessionRepository) Save(ctx context.Context, sessionID string, session *domain.Session) error {
	if session == nil {
		return domain.NewInvalidInputError("cannot save nil session")
	}

	key := r.generateKey(sessionID)
	dataBytes, err := json.Marshal(session)
	if err != nil {
		logger.Get().Error("Failed to marshal session", zap.Error(err), zap.String("sessionID", sessionID))
		return domain.NewInternalError("failed to marshal session", err)
	}

	if err := r.cache.Set(ctx, key, string(dataBytes), r.ttl); err != nil {
		logger.Get().Error("Failed to store session", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to store session for key %s", key), err)
	}
	logger.Get().Debug("Session saved", zap.String("key", key), zap.Duration("ttl", r.ttl))
	return nil
}

// Get loads a session by token. An unknown or expired token yields a
// SESSION_NOT_FOUND domain error.
func (r *cacheSessionRepository) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	key := r.generateKey(sessionID)
	dataString, err := r.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewSessionNotFoundError(sessionID)
		}
		logger.Get().Error("Failed to load session", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to load session for key %s", key), err)
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(dataString), &session); err != nil {
		logger.Get().Error("Failed to unmarshal stored session", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError("failed to unmarshal stored session", err)
	}
	return &session, nil
}

// Delete removes a session. Deleting an unknown token is not an error.
func (r *cacheSessionRepository) Delete(ctx context.Context, sessionID string) error {
	key := r.generateKey(sessionID)
	if err := r.cache.Delete(ctx, key); err != nil {
		logger.Get().Error("Failed to delete session", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to delete session for key %s", key), err)
	}
	return nil
}

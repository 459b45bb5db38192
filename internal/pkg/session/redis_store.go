package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/yigit/tutordesk/internal/pkg/apperrors"
)

const keyPrefix = "session:"

// redisClient is the subset of *redis.Client used by RedisStore
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore keeps sessions server-side under "session:<token>" with a TTL.
type RedisStore struct {
	client redisClient
	ttl    time.Duration
}

// NewRedisStore creates a redis-backed session store
func NewRedisStore(client redisClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Load returns the username stored for token
func (s *RedisStore) Load(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", apperrors.ErrSessionNotFound
	}

	username, err := s.client.Get(ctx, keyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperrors.ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load session: %w", err)
	}
	return username, nil
}

// Save stores username under token, minting a new token when none is given.
// An existing token is updated in place, which keeps a renamed tutor logged in.
func (s *RedisStore) Save(ctx context.Context, token, username string) (string, error) {
	if token == "" {
		token = uuid.New().String()
	}

	if err := s.client.Set(ctx, keyPrefix+token, username, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}
	return token, nil
}

// Destroy deletes the session key
func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/tutordesk/internal/pkg/apperrors"
	"github.com/yigit/tutordesk/internal/pkg/auth"
)

type fakeRedis struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value.(string)
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	store := NewRedisStore(client, 30*time.Minute)

	_, err := store.Load(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)

	token, err := store.Save(ctx, "", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, 30*time.Minute, client.ttls[keyPrefix+token])

	username, err := store.Load(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)

	// rename keeps the same token
	renamed, err := store.Save(ctx, token, "alice2")
	require.NoError(t, err)
	assert.Equal(t, token, renamed)
	username, err = store.Load(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice2", username)

	require.NoError(t, store.Destroy(ctx, token))
	_, err = store.Load(ctx, token)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)

	assert.NoError(t, store.Destroy(ctx, "unknown"))
}

func TestJWTStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewJWTStore(auth.NewJWTService(auth.JWTConfig{SecretKey: "k", TokenExp: time.Hour, TokenIssuer: "tutordesk"}))

	token, err := store.Save(ctx, "", "bob")
	require.NoError(t, err)

	username, err := store.Load(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "bob", username)

	_, err = store.Load(ctx, "tampered"+token)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)

	assert.NoError(t, store.Destroy(ctx, token))
}

package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	BcryptCost = bcrypt.MinCost

	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "S3cret"))
	assert.False(t, CheckPassword("", "s3cret"))
}

func TestJWTServiceRoundTrip(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "test-secret", TokenExp: time.Hour, TokenIssuer: "tutordesk"})

	token, expiry, err := svc.GenerateToken("alice")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiry, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
}

func TestJWTServiceRejectsBadTokens(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "test-secret", TokenExp: time.Hour, TokenIssuer: "tutordesk"})
	other := NewJWTService(JWTConfig{SecretKey: "other-secret", TokenExp: time.Hour, TokenIssuer: "tutordesk"})
	expired := NewJWTService(JWTConfig{SecretKey: "test-secret", TokenExp: -time.Minute, TokenIssuer: "tutordesk"})

	foreign, _, err := other.GenerateToken("alice")
	require.NoError(t, err)
	stale, _, err := expired.GenerateToken("alice")
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"empty", "", ErrInvalidToken},
		{"garbage", "not.a.token", ErrInvalidToken},
		{"wrong secret", foreign, ErrInvalidToken},
		{"expired", stale, ErrExpiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

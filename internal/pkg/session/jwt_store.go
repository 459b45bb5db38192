package session

import (
	"context"
	"fmt"

	"github.com/yigit/tutordesk/internal/pkg/apperrors"
	"github.com/yigit/tutordesk/internal/pkg/auth"
)

// JWTStore keeps the identity inside a signed token, so the server holds no state.
// Destroy cannot revoke a token that was copied elsewhere before logout.
type JWTStore struct {
	jwt *auth.JWTService
}

// NewJWTStore creates a cookie-only session store
func NewJWTStore(jwtService *auth.JWTService) *JWTStore {
	return &JWTStore{jwt: jwtService}
}

// Load validates token and returns its username claim
func (s *JWTStore) Load(_ context.Context, token string) (string, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrSessionNotFound, err)
	}
	return claims.Username, nil
}

// Save issues a fresh token for username
func (s *JWTStore) Save(_ context.Context, _ string, username string) (string, error) {
	token, _, err := s.jwt.GenerateToken(username)
	if err != nil {
		return "", err
	}
	return token, nil
}

// Destroy is a no-op; the caller clears the cookie
func (s *JWTStore) Destroy(_ context.Context, _ string) error {
	return nil
}

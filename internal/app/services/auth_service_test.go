package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/tutordesk/internal/app/models/dto"
	"github.com/yigit/tutordesk/internal/pkg/apperrors"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	err := f.auth.Register(ctx, &dto.RegisterRequest{Username: "alice", Email: "a@x", Password: "pw"}, photoHeader(t, "alice.png"))
	require.NoError(t, err)

	tutor, err := f.store.Tutors().GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "a@x", tutor.Email)
	assert.NotEqual(t, "pw", tutor.Password)
	require.NotEmpty(t, tutor.Photo)
	assert.True(t, fileExists(t, f.storage.BasePath(), tutor.Photo))
}

func TestRegisterDuplicateStoresNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	f.register(t, "alice")

	err := f.auth.Register(ctx, &dto.RegisterRequest{Username: "alice", Email: "other@x", Password: "pw2"}, photoHeader(t, "dup.png"))
	assert.ErrorIs(t, err, apperrors.ErrDuplicateUsername)

	tutor, err := f.store.Tutors().GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", tutor.Email)
	assert.Empty(t, f.storedFiles(t))
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	f.register(t, "alice")

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "valid credentials", username: "alice", password: "alice-pw"},
		{name: "wrong password", username: "alice", password: "nope", wantErr: apperrors.ErrInvalidCredentials},
		{name: "unknown username", username: "mallory", password: "alice-pw", wantErr: apperrors.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tutor, err := f.auth.Login(ctx, &dto.LoginRequest{Username: tt.username, Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, tutor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.username, tutor.Username)
		})
	}
}

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yigit/tutordesk/internal/app/models"
	"github.com/yigit/tutordesk/internal/pkg/apperrors"
)

func TestRequireSession(t *testing.T) {
	_, err := RequireSession("")
	assert.ErrorIs(t, err, apperrors.ErrSessionRequired)

	identity, err := RequireSession("alice")
	assert.NoError(t, err)
	assert.Equal(t, "alice", identity)
}

func TestValidateStudentOwnership(t *testing.T) {
	student := &models.Student{ID: "1", Tutor: "alice"}

	tests := []struct {
		name    string
		enforce bool
		actor   string
		wantErr error
	}{
		{name: "owner, not enforced", enforce: false, actor: "alice"},
		{name: "foreign, not enforced", enforce: false, actor: "bob"},
		{name: "owner, enforced", enforce: true, actor: "alice"},
		{name: "foreign, enforced", enforce: true, actor: "bob", wantErr: apperrors.ErrPermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthorizationService(tt.enforce)
			assert.Equal(t, tt.enforce, svc.EnforcesStudentOwnership())

			err := svc.ValidateStudentOwnership(student, tt.actor)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

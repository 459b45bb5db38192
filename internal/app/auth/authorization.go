package auth

import (
	"github.com/yigit/tutordesk/internal/app/models"
	"github.com/yigit/tutordesk/internal/pkg/apperrors"
)

// RequireSession returns the identity of an authenticated request, or
// apperrors.ErrSessionRequired when the request carries none.
// It does not check that the tutor still exists.
func RequireSession(identity string) (string, error) {
	if identity == "" {
		return "", apperrors.ErrSessionRequired
	}
	return identity, nil
}

// AuthorizationService decides whether a tutor may touch a student record
type AuthorizationService struct {
	enforceStudentOwnership bool
}

// NewAuthorizationService creates a new AuthorizationService. With
// enforceStudentOwnership off, any authenticated tutor may modify any student.
func NewAuthorizationService(enforceStudentOwnership bool) *AuthorizationService {
	return &AuthorizationService{enforceStudentOwnership: enforceStudentOwnership}
}

// EnforcesStudentOwnership reports whether ownership checks are active
func (s *AuthorizationService) EnforcesStudentOwnership() bool {
	return s.enforceStudentOwnership
}

// ValidateStudentOwnership returns apperrors.ErrPermissionDenied when ownership is
// enforced and student does not belong to username
func (s *AuthorizationService) ValidateStudentOwnership(student *models.Student, username string) error {
	if !s.enforceStudentOwnership {
		return nil
	}
	if student.Tutor != username {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

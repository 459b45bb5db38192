package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/yigit/tutordesk/internal/app/models"
	"github.com/yigit/tutordesk/internal/app/models/dto"
	"github.com/yigit/tutordesk/internal/app/repositories"
	"github.com/yigit/tutordesk/internal/pkg/apperrors"
	"github.com/yigit/tutordesk/internal/pkg/auth"
	"github.com/yigit/tutordesk/internal/pkg/filestorage"
)

// authServiceImpl implements AuthService
type authServiceImpl struct {
	store   repositories.Store
	storage filestorage.FileStorage
	logger  zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(store repositories.Store, storage filestorage.FileStorage, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		store:   store,
		storage: storage,
		logger:  logger,
	}
}

// Register creates a tutor. A taken username stores nothing, not even the photo.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest, photo *multipart.FileHeader) error {
	exists, err := s.store.Tutors().UsernameExists(ctx, req.Username)
	if err != nil {
		return fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return apperrors.ErrDuplicateUsername
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	photoRef, err := s.storage.SaveFile(photo)
	if err != nil {
		return fmt.Errorf("error saving photo: %w", err)
	}

	tutor := &models.Tutor{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
		Photo:    photoRef,
	}

	if err := s.store.Tutors().Create(ctx, tutor); err != nil {
		// a concurrent registration may have won the username after the check above
		discardPhoto(s.storage, s.logger, photoRef)
		if errors.Is(err, apperrors.ErrDuplicateUsername) {
			return apperrors.ErrDuplicateUsername
		}
		return fmt.Errorf("error creating tutor: %w", err)
	}

	s.logger.Info().Str("username", tutor.Username).Msg("Tutor registered")
	return nil
}

// Login checks the credentials and returns the tutor.
// Unknown usernames and wrong passwords both yield apperrors.ErrInvalidCredentials.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*models.Tutor, error) {
	tutor, err := s.store.Tutors().GetByUsername(ctx, req.Username)
	if errors.Is(err, apperrors.ErrTutorNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("error getting tutor: %w", err)
	}

	if !auth.CheckPassword(tutor.Password, req.Password) {
		s.logger.Debug().Str("username", req.Username).Msg("Password mismatch")
		return nil, apperrors.ErrInvalidCredentials
	}

	return tutor, nil
}

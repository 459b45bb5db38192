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

// tutorServiceImpl implements TutorService
type tutorServiceImpl struct {
	store   repositories.Store
	storage filestorage.FileStorage
	logger  zerolog.Logger
}

// NewTutorService creates a new TutorService
func NewTutorService(store repositories.Store, storage filestorage.FileStorage, logger zerolog.Logger) TutorService {
	return &tutorServiceImpl{
		store:   store,
		storage: storage,
		logger:  logger,
	}
}

// GetProfile returns the tutor behind username
func (s *tutorServiceImpl) GetProfile(ctx context.Context, username string) (*models.Tutor, error) {
	tutor, err := s.store.Tutors().GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrTutorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error getting tutor: %w", err)
	}
	return tutor, nil
}

// UpdateProfile updates the tutor named username. Username and email are always
// written; password and photo only when given. A rename moves every student of
// the tutor to the new username in the same transaction as the tutor update.
func (s *tutorServiceImpl) UpdateProfile(ctx context.Context, username string, req *dto.UpdateProfileRequest, photo *multipart.FileHeader) (string, error) {
	renamed := req.Username != username

	if renamed {
		exists, err := s.store.Tutors().UsernameExists(ctx, req.Username)
		if err != nil {
			return "", fmt.Errorf("error checking username: %w", err)
		}
		if exists {
			return "", apperrors.ErrDuplicateUsername
		}
	}

	upd := models.TutorUpdate{
		Username: req.Username,
		Email:    req.Email,
	}

	if req.Password != "" {
		hashedPassword, err := auth.HashPassword(req.Password)
		if err != nil {
			return "", fmt.Errorf("error hashing password: %w", err)
		}
		upd.Password = &hashedPassword
	}

	photoRef, err := s.storage.SaveFile(photo)
	if err != nil {
		return "", fmt.Errorf("error saving photo: %w", err)
	}
	if photoRef != "" {
		upd.Photo = &photoRef
	}

	var moved int64
	err = s.store.WithTransaction(ctx, func(ctx context.Context, tx repositories.Store) error {
		if err := tx.Tutors().Update(ctx, username, upd); err != nil {
			return err
		}
		if !renamed {
			return nil
		}
		n, err := tx.Students().ReassignTutor(ctx, username, req.Username)
		if err != nil {
			return err
		}
		moved = n
		return nil
	})
	if err != nil {
		discardPhoto(s.storage, s.logger, photoRef)
		if errors.Is(err, apperrors.ErrDuplicateUsername) {
			return "", apperrors.ErrDuplicateUsername
		}
		return "", fmt.Errorf("error updating profile: %w", err)
	}

	if renamed {
		s.logger.Info().Str("from", username).Str("to", req.Username).Int64("students", moved).Msg("Tutor renamed")
	}
	return req.Username, nil
}

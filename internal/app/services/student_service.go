package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"

	appAuth "github.com/yigit/tutordesk/internal/app/auth"
	"github.com/yigit/tutordesk/internal/app/models"
	"github.com/yigit/tutordesk/internal/app/models/dto"
	"github.com/yigit/tutordesk/internal/app/repositories"
	"github.com/yigit/tutordesk/internal/pkg/apperrors"
	"github.com/yigit/tutordesk/internal/pkg/filestorage"
)

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	store        repositories.Store
	storage      filestorage.FileStorage
	authzService *appAuth.AuthorizationService
	logger       zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	store repositories.Store,
	storage filestorage.FileStorage,
	authzService *appAuth.AuthorizationService,
	logger zerolog.Logger,
) StudentService {
	return &studentServiceImpl{
		store:        store,
		storage:      storage,
		authzService: authzService,
		logger:       logger,
	}
}

// Dashboard returns the tutor behind username and the students it owns.
// The tutor is nil when the session outlived the account.
func (s *studentServiceImpl) Dashboard(ctx context.Context, username string) (*models.Tutor, []*models.Student, error) {
	tutor, err := s.store.Tutors().GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, apperrors.ErrTutorNotFound) {
		return nil, nil, fmt.Errorf("error getting tutor: %w", err)
	}

	students, err := s.store.Students().ListByTutor(ctx, username)
	if err != nil {
		return nil, nil, fmt.Errorf("error listing students: %w", err)
	}

	return tutor, students, nil
}

// GetStudent returns a student for editing
func (s *studentServiceImpl) GetStudent(ctx context.Context, username, id string) (*models.Student, error) {
	student, err := s.store.Students().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authzService.ValidateStudentOwnership(student, username); err != nil {
		return nil, err
	}
	return student, nil
}

// AddStudent creates a student owned by username
func (s *studentServiceImpl) AddStudent(ctx context.Context, username string, req *dto.StudentRequest, photo *multipart.FileHeader) (*models.Student, error) {
	photoRef, err := s.storage.SaveFile(photo)
	if err != nil {
		return nil, fmt.Errorf("error saving photo: %w", err)
	}

	student := &models.Student{
		Tutor:   username,
		Name:    req.Name,
		RollNo:  req.RollNo,
		Year:    req.Year,
		CGPA:    req.CGPA,
		Details: req.Details,
		Photo:   photoRef,
	}

	if err := s.store.Students().Create(ctx, student); err != nil {
		discardPhoto(s.storage, s.logger, photoRef)
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	s.logger.Info().Str("tutor", username).Str("studentID", student.ID).Msg("Student added")
	return student, nil
}

// UpdateStudent replaces the fields of a student; the photo only when one is uploaded
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, username, id string, req *dto.StudentRequest, photo *multipart.FileHeader) error {
	student, err := s.store.Students().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authzService.ValidateStudentOwnership(student, username); err != nil {
		s.logger.Warn().Str("tutor", username).Str("studentID", id).Msg("Update of a foreign student rejected")
		return err
	}

	upd := models.StudentUpdate{
		Name:    req.Name,
		RollNo:  req.RollNo,
		Year:    req.Year,
		CGPA:    req.CGPA,
		Details: req.Details,
	}

	photoRef, err := s.storage.SaveFile(photo)
	if err != nil {
		return fmt.Errorf("error saving photo: %w", err)
	}
	if photoRef != "" {
		upd.Photo = &photoRef
	}

	if err := s.store.Students().Update(ctx, id, upd); err != nil {
		discardPhoto(s.storage, s.logger, photoRef)
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return err
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if student.Tutor != username {
		s.logger.Info().Str("tutor", username).Str("owner", student.Tutor).Str("studentID", id).Msg("Student of another tutor updated")
	}
	return nil
}

// DeleteStudent removes a student. Unknown ids are not an error.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, username, id string) error {
	if s.authzService.EnforcesStudentOwnership() {
		student, err := s.store.Students().GetByID(ctx, id)
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("error getting student: %w", err)
		}
		if err := s.authzService.ValidateStudentOwnership(student, username); err != nil {
			s.logger.Warn().Str("tutor", username).Str("studentID", id).Msg("Delete of a foreign student rejected")
			return err
		}
	}

	if err := s.store.Students().Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}

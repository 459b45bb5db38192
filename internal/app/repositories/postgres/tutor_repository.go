package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yigit/tutordesk/internal/app/models"
	"github.com/yigit/tutordesk/internal/pkg/apperrors"
	"github.com/yigit/tutordesk/internal/pkg/dberrors"
)

const tutorsUsernameKey = "tutors_username_key"

// TutorRepository handles tutor database operations
type TutorRepository struct {
	q querier
}

// GetByUsername retrieves a tutor by username
func (r *TutorRepository) GetByUsername(ctx context.Context, username string) (*models.Tutor, error) {
	tutor := &models.Tutor{}
	err := r.q.QueryRow(ctx, `
		SELECT username, email, password, photo
		FROM tutors
		WHERE username = $1`,
		username).Scan(&tutor.Username, &tutor.Email, &tutor.Password, &tutor.Photo)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrTutorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting tutor: %w", err)
	}
	return tutor, nil
}

// UsernameExists checks if a username is taken
func (r *TutorRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM tutors WHERE username = $1)`,
		username).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking username: %w", err)
	}
	return exists, nil
}

// Create inserts a new tutor
func (r *TutorRepository) Create(ctx context.Context, tutor *models.Tutor) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO tutors (username, email, password, photo)
		VALUES ($1, $2, $3, $4)`,
		tutor.Username, tutor.Email, tutor.Password, tutor.Photo)

	if dberrors.IsDuplicateConstraintError(err, tutorsUsernameKey) {
		return apperrors.ErrDuplicateUsername
	}
	if err != nil {
		return fmt.Errorf("error creating tutor: %w", err)
	}
	return nil
}

// Update applies a partial update to the tutor named username.
// NULL parameters keep the stored password and photo.
func (r *TutorRepository) Update(ctx context.Context, username string, upd models.TutorUpdate) error {
	_, err := r.q.Exec(ctx, `
		UPDATE tutors
		SET username = $1,
			email = $2,
			password = COALESCE($3, password),
			photo = COALESCE($4, photo),
			updated_at = NOW()
		WHERE username = $5`,
		upd.Username, upd.Email, upd.Password, upd.Photo, username)

	if dberrors.IsDuplicateConstraintError(err, tutorsUsernameKey) {
		return apperrors.ErrDuplicateUsername
	}
	if err != nil {
		return fmt.Errorf("error updating tutor: %w", err)
	}
	return nil
}

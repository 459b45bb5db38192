package repositories

import (
	"context"

	"github.com/yigit/tutordesk/internal/app/models"
)

// TutorRepository defines the data access operations on tutors
type TutorRepository interface {
	// GetByUsername returns apperrors.ErrTutorNotFound when no tutor has the username
	GetByUsername(ctx context.Context, username string) (*models.Tutor, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	// Create returns apperrors.ErrDuplicateUsername when the username is taken
	Create(ctx context.Context, tutor *models.Tutor) error
	// Update applies upd to the tutor currently named username.
	// No matching tutor is a no-op; a rename onto a taken username returns apperrors.ErrDuplicateUsername.
	Update(ctx context.Context, username string, upd models.TutorUpdate) error
}

// StudentRepository defines the data access operations on students
type StudentRepository interface {
	ListByTutor(ctx context.Context, tutor string) ([]*models.Student, error)
	// GetByID returns apperrors.ErrStudentNotFound for unknown or malformed ids
	GetByID(ctx context.Context, id string) (*models.Student, error)
	// Create assigns student.ID
	Create(ctx context.Context, student *models.Student) error
	// Update returns apperrors.ErrStudentNotFound when no student has the id
	Update(ctx context.Context, id string, upd models.StudentUpdate) error
	// Delete is idempotent: unknown or malformed ids are not an error
	Delete(ctx context.Context, id string) error
	// ReassignTutor moves every student owned by from to to and returns how many moved
	ReassignTutor(ctx context.Context, from, to string) (int64, error)
}

// TxFn is run by Store.WithTransaction with a store bound to the transaction
type TxFn func(ctx context.Context, tx Store) error

// Store is the record store holding tutors and students
type Store interface {
	Tutors() TutorRepository
	Students() StudentRepository
	// WithTransaction runs fn atomically: if fn returns an error nothing it wrote is kept.
	// Repositories must be taken from tx, and ctx must be passed through.
	WithTransaction(ctx context.Context, fn TxFn) error
}

package memory

import (
	"context"

	"github.com/yigit/tutordesk/internal/app/models"
	"github.com/yigit/tutordesk/internal/pkg/apperrors"
)

type tutorRepository struct {
	store *Store
}

func (repo *tutorRepository) GetByUsername(ctx context.Context, username string) (*models.Tutor, error) {
	defer repo.store.rlock()()

	if tutor, ok := repo.store.db.tutors[username]; ok {
		found := *tutor
		return &found, nil
	}
	return nil, apperrors.ErrTutorNotFound
}

func (repo *tutorRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	defer repo.store.rlock()()

	_, ok := repo.store.db.tutors[username]
	return ok, nil
}

func (repo *tutorRepository) Create(ctx context.Context, tutor *models.Tutor) error {
	defer repo.store.lock()()

	if _, ok := repo.store.db.tutors[tutor.Username]; ok {
		return apperrors.ErrDuplicateUsername
	}
	stored := *tutor
	repo.store.db.tutors[tutor.Username] = &stored
	return nil
}

func (repo *tutorRepository) Update(ctx context.Context, username string, upd models.TutorUpdate) error {
	defer repo.store.lock()()

	tutor, ok := repo.store.db.tutors[username]
	if !ok {
		return nil
	}
	if upd.Username != username {
		if _, taken := repo.store.db.tutors[upd.Username]; taken {
			return apperrors.ErrDuplicateUsername
		}
	}

	upd.Apply(tutor)
	if tutor.Username != username {
		delete(repo.store.db.tutors, username)
		repo.store.db.tutors[tutor.Username] = tutor
	}
	return nil
}

package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/yigit/tutordesk/internal/app/models"
	"github.com/yigit/tutordesk/internal/pkg/apperrors"
)

type studentRepository struct {
	store *Store
}

func (repo *studentRepository) find(id string) (int, *models.Student) {
	for i, s := range repo.store.db.students {
		if s.ID == id {
			return i, s
		}
	}
	return -1, nil
}

func (repo *studentRepository) ListByTutor(ctx context.Context, tutor string) ([]*models.Student, error) {
	defer repo.store.rlock()()

	students := make([]*models.Student, 0)
	for _, s := range repo.store.db.students {
		if s.Tutor == tutor {
			student := *s
			students = append(students, &student)
		}
	}
	return students, nil
}

func (repo *studentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	defer repo.store.rlock()()

	if _, s := repo.find(id); s != nil {
		student := *s
		return &student, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (repo *studentRepository) Create(ctx context.Context, student *models.Student) error {
	defer repo.store.lock()()

	student.ID = uuid.New().String()
	stored := *student
	repo.store.db.students = append(repo.store.db.students, &stored)
	return nil
}

func (repo *studentRepository) Update(ctx context.Context, id string, upd models.StudentUpdate) error {
	defer repo.store.lock()()

	_, s := repo.find(id)
	if s == nil {
		return apperrors.ErrStudentNotFound
	}
	upd.Apply(s)
	return nil
}

func (repo *studentRepository) Delete(ctx context.Context, id string) error {
	defer repo.store.lock()()

	i, _ := repo.find(id)
	if i < 0 {
		return nil
	}
	students := repo.store.db.students
	repo.store.db.students = append(students[:i:i], students[i+1:]...)
	return nil
}

func (repo *studentRepository) ReassignTutor(ctx context.Context, from, to string) (int64, error) {
	defer repo.store.lock()()

	var moved int64
	for _, s := range repo.store.db.students {
		if s.Tutor == from {
			s.Tutor = to
			moved++
		}
	}
	return moved, nil
}

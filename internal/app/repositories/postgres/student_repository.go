package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/tutordesk/internal/app/models"
	"github.com/yigit/tutordesk/internal/pkg/apperrors"
)

const studentColumns = `id::text, tutor, name, rollno, year, cgpa, details, photo`

// StudentRepository handles student database operations
type StudentRepository struct {
	q querier
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(&s.ID, &s.Tutor, &s.Name, &s.RollNo, &s.Year, &s.CGPA, &s.Details, &s.Photo)
	return s, err
}

// validID reports whether id can be a students primary key
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// ListByTutor retrieves the students owned by tutor in creation order
func (r *StudentRepository) ListByTutor(ctx context.Context, tutor string) ([]*models.Student, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE tutor = $1
		ORDER BY created_at, id`,
		tutor)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating students: %w", err)
	}
	return students, nil
}

// GetByID retrieves a student by id
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	if !validID(id) {
		return nil, apperrors.ErrStudentNotFound
	}

	s, err := scanStudent(r.q.QueryRow(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE id = $1`,
		id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting student: %w", err)
	}
	return s, nil
}

// Create inserts a student under a fresh id
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	id := uuid.New().String()
	_, err := r.q.Exec(ctx, `
		INSERT INTO students (id, tutor, name, rollno, year, cgpa, details, photo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, student.Tutor, student.Name, student.RollNo, student.Year, student.CGPA, student.Details, student.Photo)
	if err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	student.ID = id
	return nil
}

// Update replaces the editable fields of a student; a NULL photo keeps the stored one
func (r *StudentRepository) Update(ctx context.Context, id string, upd models.StudentUpdate) error {
	if !validID(id) {
		return apperrors.ErrStudentNotFound
	}

	tag, err := r.q.Exec(ctx, `
		UPDATE students
		SET name = $1,
			rollno = $2,
			year = $3,
			cgpa = $4,
			details = $5,
			photo = COALESCE($6, photo),
			updated_at = NOW()
		WHERE id = $7`,
		upd.Name, upd.RollNo, upd.Year, upd.CGPA, upd.Details, upd.Photo, id)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete removes a student; unknown ids are ignored
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}

	if _, err := r.q.Exec(ctx, `DELETE FROM students WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}

// ReassignTutor moves every student of from to to
func (r *StudentRepository) ReassignTutor(ctx context.Context, from, to string) (int64, error) {
	tag, err := r.q.Exec(ctx, `
		UPDATE students
		SET tutor = $1, updated_at = NOW()
		WHERE tutor = $2`,
		to, from)
	if err != nil {
		return 0, fmt.Errorf("error reassigning students: %w", err)
	}
	return tag.RowsAffected(), nil
}

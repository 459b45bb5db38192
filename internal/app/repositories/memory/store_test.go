package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/tutordesk/internal/app/models"
	"github.com/yigit/tutordesk/internal/app/repositories"
	"github.com/yigit/tutordesk/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func TestTutorRepository(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	tutors := store.Tutors()

	require.NoError(t, tutors.Create(ctx, &models.Tutor{Username: "alice", Email: "a@x", Password: "h1"}))
	require.NoError(t, tutors.Create(ctx, &models.Tutor{Username: "bob", Email: "b@x", Password: "h2"}))

	err := tutors.Create(ctx, &models.Tutor{Username: "alice"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateUsername)

	exists, err := tutors.UsernameExists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = tutors.GetByUsername(ctx, "carol")
	assert.ErrorIs(t, err, apperrors.ErrTutorNotFound)

	t.Run("rename onto a taken username", func(t *testing.T) {
		err := tutors.Update(ctx, "alice", models.TutorUpdate{Username: "bob", Email: "a@x"})
		assert.ErrorIs(t, err, apperrors.ErrDuplicateUsername)
	})

	t.Run("partial update keeps password and photo", func(t *testing.T) {
		require.NoError(t, tutors.Update(ctx, "alice", models.TutorUpdate{Username: "alice2", Email: "new@x"}))

		_, err := tutors.GetByUsername(ctx, "alice")
		assert.ErrorIs(t, err, apperrors.ErrTutorNotFound)

		tutor, err := tutors.GetByUsername(ctx, "alice2")
		require.NoError(t, err)
		assert.Equal(t, "new@x", tutor.Email)
		assert.Equal(t, "h1", tutor.Password)
	})

	t.Run("password and photo replaced when given", func(t *testing.T) {
		require.NoError(t, tutors.Update(ctx, "bob", models.TutorUpdate{
			Username: "bob", Email: "b@x", Password: strPtr("h3"), Photo: strPtr("p.png"),
		}))
		tutor, err := tutors.GetByUsername(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, "h3", tutor.Password)
		assert.Equal(t, "p.png", tutor.Photo)
	})

	t.Run("unknown tutor is a no-op", func(t *testing.T) {
		assert.NoError(t, tutors.Update(ctx, "ghost", models.TutorUpdate{Username: "ghost2"}))
		exists, err := tutors.UsernameExists(ctx, "ghost2")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestStudentRepository(t *testing.T) {
	ctx := context.Background()
	students := NewStore().Students()

	s1 := &models.Student{Tutor: "alice", Name: "S1", Photo: "s1.png"}
	s2 := &models.Student{Tutor: "alice", Name: "S2"}
	s3 := &models.Student{Tutor: "bob", Name: "S3"}
	for _, s := range []*models.Student{s1, s2, s3} {
		require.NoError(t, students.Create(ctx, s))
		require.NotEmpty(t, s.ID)
	}

	list, err := students.ListByTutor(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "S1", list[0].Name)
	assert.Equal(t, "S2", list[1].Name)

	require.NoError(t, students.Update(ctx, s1.ID, models.StudentUpdate{Name: "S1b", RollNo: "7"}))
	got, err := students.GetByID(ctx, s1.ID)
	require.NoError(t, err)
	assert.Equal(t, "S1b", got.Name)
	assert.Equal(t, "s1.png", got.Photo)

	assert.ErrorIs(t, students.Update(ctx, "missing", models.StudentUpdate{}), apperrors.ErrStudentNotFound)

	moved, err := students.ReassignTutor(ctx, "alice", "alice2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), moved)

	list, err = students.ListByTutor(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, students.Delete(ctx, s2.ID))
	require.NoError(t, students.Delete(ctx, s2.ID))
	require.NoError(t, students.Delete(ctx, "not-an-id"))

	_, err = students.GetByID(ctx, s2.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	list, err = students.ListByTutor(ctx, "alice2")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, s1.ID, list[0].ID)
}

func TestWithTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	require.NoError(t, store.Tutors().Create(ctx, &models.Tutor{Username: "alice", Email: "a@x"}))
	student := &models.Student{Tutor: "alice", Name: "S1"}
	require.NoError(t, store.Students().Create(ctx, student))

	boom := errors.New("boom")
	err := store.WithTransaction(ctx, func(ctx context.Context, tx repositories.Store) error {
		if err := tx.Tutors().Update(ctx, "alice", models.TutorUpdate{Username: "alice2", Email: "a@x"}); err != nil {
			return err
		}
		if _, err := tx.Students().ReassignTutor(ctx, "alice", "alice2"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = store.Tutors().GetByUsername(ctx, "alice")
	assert.NoError(t, err)
	got, err := store.Students().GetByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Tutor)
}

func TestWithTransactionCommits(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	require.NoError(t, store.Tutors().Create(ctx, &models.Tutor{Username: "alice"}))

	err := store.WithTransaction(ctx, func(ctx context.Context, tx repositories.Store) error {
		return tx.Tutors().Update(ctx, "alice", models.TutorUpdate{Username: "alice2"})
	})
	require.NoError(t, err)

	exists, err := store.Tutors().UsernameExists(ctx, "alice2")
	require.NoError(t, err)
	assert.True(t, exists)
}

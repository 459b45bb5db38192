package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/tutordesk/internal/app/models/dto"
	"github.com/yigit/tutordesk/internal/pkg/apperrors"
)

func TestDashboardIsScopedToTheTutor(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	f.register(t, "alice")
	f.register(t, "bob")

	s1 := f.addStudent(t, "alice", "S1")
	s2 := f.addStudent(t, "alice", "S2")
	s3 := f.addStudent(t, "bob", "S3")

	tutor, students, err := f.students.Dashboard(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, tutor)
	assert.Equal(t, "alice", tutor.Username)
	require.Len(t, students, 2)
	assert.Equal(t, s1, students[0].ID)
	assert.Equal(t, s2, students[1].ID)

	_, students, err = f.students.Dashboard(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, s3, students[0].ID)
}

func TestDashboardWithStaleIdentity(t *testing.T) {
	f := newFixture(t, false)

	tutor, students, err := f.students.Dashboard(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, tutor)
	assert.Empty(t, students)
}

func TestAddStudentWithPhoto(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	f.register(t, "alice")

	student, err := f.students.AddStudent(ctx, "alice", &dto.StudentRequest{
		Name: "S1", RollNo: "42", Year: "3", CGPA: "9.0", Details: "top",
	}, photoHeader(t, "s1.jpg"))
	require.NoError(t, err)
	assert.NotEmpty(t, student.ID)
	assert.Equal(t, "alice", student.Tutor)
	assert.True(t, fileExists(t, f.storage.BasePath(), student.Photo))

	stored, err := f.students.GetStudent(ctx, "alice", student.ID)
	require.NoError(t, err)
	assert.Equal(t, "42", stored.RollNo)
}

func TestUpdateStudent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	id := f.addStudent(t, "alice", "S1")

	req := &dto.StudentRequest{Name: "S1b", RollNo: "9", Year: "4", CGPA: "7.0", Details: "moved"}
	require.NoError(t, f.students.UpdateStudent(ctx, "alice", id, req, nil))

	student, err := f.students.GetStudent(ctx, "alice", id)
	require.NoError(t, err)
	assert.Equal(t, "S1b", student.Name)
	assert.Empty(t, student.Photo)

	require.NoError(t, f.students.UpdateStudent(ctx, "alice", id, req, photoHeader(t, "new.png")))
	student, err = f.students.GetStudent(ctx, "alice", id)
	require.NoError(t, err)
	assert.NotEmpty(t, student.Photo)

	// no new upload keeps the stored photo
	require.NoError(t, f.students.UpdateStudent(ctx, "alice", id, req, nil))
	kept, err := f.students.GetStudent(ctx, "alice", id)
	require.NoError(t, err)
	assert.Equal(t, student.Photo, kept.Photo)
}

func TestUpdateMissingStudent(t *testing.T) {
	f := newFixture(t, false)

	err := f.students.UpdateStudent(context.Background(), "alice", "missing",
		&dto.StudentRequest{Name: "x", RollNo: "x", Year: "x", CGPA: "x", Details: "x"}, photoHeader(t, "x.png"))
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.Empty(t, f.storedFiles(t))
}

func TestDeleteStudent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	keep := f.addStudent(t, "alice", "S1")
	gone := f.addStudent(t, "alice", "S2")

	require.NoError(t, f.students.DeleteStudent(ctx, "alice", gone))
	require.NoError(t, f.students.DeleteStudent(ctx, "alice", gone))
	require.NoError(t, f.students.DeleteStudent(ctx, "alice", "does-not-exist"))

	_, students, err := f.students.Dashboard(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, keep, students[0].ID)
}

func TestForeignStudentAccess(t *testing.T) {
	req := &dto.StudentRequest{Name: "hijacked", RollNo: "0", Year: "0", CGPA: "0", Details: "x"}

	t.Run("ownership not enforced", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t, false)
		id := f.addStudent(t, "alice", "S1")

		require.NoError(t, f.students.UpdateStudent(ctx, "bob", id, req, nil))
		student, err := f.students.GetStudent(ctx, "alice", id)
		require.NoError(t, err)
		assert.Equal(t, "hijacked", student.Name)
		assert.Equal(t, "alice", student.Tutor)

		require.NoError(t, f.students.DeleteStudent(ctx, "bob", id))
		_, err = f.students.GetStudent(ctx, "alice", id)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})

	t.Run("ownership enforced", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t, true)
		id := f.addStudent(t, "alice", "S1")

		assert.ErrorIs(t, f.students.UpdateStudent(ctx, "bob", id, req, nil), apperrors.ErrPermissionDenied)
		assert.ErrorIs(t, f.students.DeleteStudent(ctx, "bob", id), apperrors.ErrPermissionDenied)
		_, err := f.students.GetStudent(ctx, "bob", id)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

		student, err := f.students.GetStudent(ctx, "alice", id)
		require.NoError(t, err)
		assert.Equal(t, "S1", student.Name)

		// missing students are still a no-op
		assert.NoError(t, f.students.DeleteStudent(ctx, "bob", "missing"))
		// the owner may delete
		assert.NoError(t, f.students.DeleteStudent(ctx, "alice", id))
	})
}

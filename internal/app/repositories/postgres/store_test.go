package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/yigit/tutordesk/internal/app/models"
	"github.com/yigit/tutordesk/internal/app/repositories"
	"github.com/yigit/tutordesk/internal/pkg/apperrors"
)

var _ repositories.Store = (*Store)(nil)

func TestValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{id: uuid.New().String(), want: true},
		{id: "", want: false},
		{id: "507f1f77bcf86cd799439011", want: false},
		{id: "'; DROP TABLE students; --", want: false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, validID(tt.id), tt.id)
	}
}

func TestMalformedIDsSkipTheDatabase(t *testing.T) {
	// a nil querier would panic if any of these reached it
	repo := &StudentRepository{}
	ctx := context.Background()

	assert.NoError(t, repo.Delete(ctx, "nope"))

	_, err := repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	assert.ErrorIs(t, repo.Update(ctx, "nope", models.StudentUpdate{Name: "x"}), apperrors.ErrStudentNotFound)
}

func TestNestedTransactionReusesStore(t *testing.T) {
	tx := &Store{}
	called := false
	err := tx.WithTransaction(context.Background(), func(ctx context.Context, inner repositories.Store) error {
		called = true
		assert.Same(t, tx, inner)
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)
}

package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yigit/tutordesk/internal/app/models"
	"github.com/yigit/tutordesk/internal/pkg/apperrors"
	"github.com/yigit/tutordesk/internal/pkg/dberrors"
)

// TutorRepository handles the tutors collection
type TutorRepository struct {
	collection *mongo.Collection
}

// GetByUsername retrieves a tutor by username
func (r *TutorRepository) GetByUsername(ctx context.Context, username string) (*models.Tutor, error) {
	var doc tutorDocument
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrTutorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting tutor: %w", err)
	}
	return doc.model(), nil
}

// UsernameExists checks if a username is taken
func (r *TutorRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"username": username})
	if err != nil {
		return false, fmt.Errorf("error checking username: %w", err)
	}
	return count > 0, nil
}

// Create inserts a new tutor
func (r *TutorRepository) Create(ctx context.Context, tutor *models.Tutor) error {
	_, err := r.collection.InsertOne(ctx, newTutorDocument(tutor))
	if dberrors.IsDuplicateKeyError(err) {
		return apperrors.ErrDuplicateUsername
	}
	if err != nil {
		return fmt.Errorf("error creating tutor: %w", err)
	}
	return nil
}

// Update applies a partial update to the tutor named username
func (r *TutorRepository) Update(ctx context.Context, username string, upd models.TutorUpdate) error {
	set := bson.M{
		"username": upd.Username,
		"email":    upd.Email,
	}
	if upd.Password != nil {
		set["password"] = *upd.Password
	}
	if upd.Photo != nil {
		set["photo"] = *upd.Photo
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"username": username}, bson.M{"$set": set})
	if dberrors.IsDuplicateKeyError(err) {
		return apperrors.ErrDuplicateUsername
	}
	if err != nil {
		return fmt.Errorf("error updating tutor: %w", err)
	}
	return nil
}

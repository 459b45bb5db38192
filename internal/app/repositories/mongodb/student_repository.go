package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yigit/tutordesk/internal/app/models"
	"github.com/yigit/tutordesk/internal/pkg/apperrors"
)

// StudentRepository handles the students collection
type StudentRepository struct {
	collection *mongo.Collection
}

// ListByTutor retrieves the students owned by tutor, oldest first
func (r *StudentRepository) ListByTutor(ctx context.Context, tutor string) ([]*models.Student, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"tutor": tutor}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer cursor.Close(ctx)

	students := make([]*models.Student, 0)
	for cursor.Next(ctx) {
		var doc studentDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding student: %w", err)
		}
		students = append(students, doc.model())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating students: %w", err)
	}
	return students, nil
}

// GetByID retrieves a student by its ObjectID hex
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrStudentNotFound
	}

	var doc studentDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting student: %w", err)
	}
	return doc.model(), nil
}

// Create inserts a student and sets its id
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	doc := newStudentDocument(student)
	doc.ID = primitive.NewObjectID()

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}
	student.ID = doc.ID.Hex()
	return nil
}

// Update replaces the editable fields of a student
func (r *StudentRepository) Update(ctx context.Context, id string, upd models.StudentUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrStudentNotFound
	}

	set := bson.M{
		"name":    upd.Name,
		"rollno":  upd.RollNo,
		"year":    upd.Year,
		"cgpa":    upd.CGPA,
		"details": upd.Details,
	}
	if upd.Photo != nil {
		set["photo"] = *upd.Photo
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete removes a student; unknown or malformed ids are ignored
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}

// ReassignTutor moves every student of from to to
func (r *StudentRepository) ReassignTutor(ctx context.Context, from, to string) (int64, error) {
	result, err := r.collection.UpdateMany(ctx, bson.M{"tutor": from}, bson.M{"$set": bson.M{"tutor": to}})
	if err != nil {
		return 0, fmt.Errorf("error reassigning students: %w", err)
	}
	return result.ModifiedCount, nil
}

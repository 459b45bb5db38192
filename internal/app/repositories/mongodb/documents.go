package mongodb

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yigit/tutordesk/internal/app/models"
)

const (
	tutorsCollection   = "tutors"
	studentsCollection = "students"
)

type tutorDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
	Photo    string             `bson:"photo,omitempty"`
}

func (d *tutorDocument) model() *models.Tutor {
	return &models.Tutor{
		Username: d.Username,
		Email:    d.Email,
		Password: d.Password,
		Photo:    d.Photo,
	}
}

func newTutorDocument(t *models.Tutor) *tutorDocument {
	return &tutorDocument{
		Username: t.Username,
		Email:    t.Email,
		Password: t.Password,
		Photo:    t.Photo,
	}
}

type studentDocument struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Tutor   string             `bson:"tutor"`
	Name    string             `bson:"name"`
	RollNo  string             `bson:"rollno"`
	Year    string             `bson:"year"`
	CGPA    string             `bson:"cgpa"`
	Details string             `bson:"details"`
	Photo   string             `bson:"photo,omitempty"`
}

func (d *studentDocument) model() *models.Student {
	return &models.Student{
		ID:      d.ID.Hex(),
		Tutor:   d.Tutor,
		Name:    d.Name,
		RollNo:  d.RollNo,
		Year:    d.Year,
		CGPA:    d.CGPA,
		Details: d.Details,
		Photo:   d.Photo,
	}
}

func newStudentDocument(s *models.Student) *studentDocument {
	return &studentDocument{
		Tutor:   s.Tutor,
		Name:    s.Name,
		RollNo:  s.RollNo,
		Year:    s.Year,
		CGPA:    s.CGPA,
		Details: s.Details,
		Photo:   s.Photo,
	}
}

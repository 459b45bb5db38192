package services

import (
	"context"
	"mime/multipart"

	"github.com/yigit/tutordesk/internal/app/models"
	"github.com/yigit/tutordesk/internal/app/models/dto"
)

// Services defined in this package:
// - AuthService: registration and login of tutors
// - StudentService: the student roster of the logged-in tutor
// - TutorService: the tutor profile, including the rename cascade
//
// Every call on behalf of a logged-in tutor takes its username explicitly.

// AuthService handles registration and login
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest, photo *multipart.FileHeader) error
	Login(ctx context.Context, req *dto.LoginRequest) (*models.Tutor, error)
}

// StudentService handles the students of a tutor
type StudentService interface {
	Dashboard(ctx context.Context, username string) (*models.Tutor, []*models.Student, error)
	GetStudent(ctx context.Context, username, id string) (*models.Student, error)
	AddStudent(ctx context.Context, username string, req *dto.StudentRequest, photo *multipart.FileHeader) (*models.Student, error)
	UpdateStudent(ctx context.Context, username, id string, req *dto.StudentRequest, photo *multipart.FileHeader) error
	DeleteStudent(ctx context.Context, username, id string) error
}

// TutorService handles the profile of the logged-in tutor
type TutorService interface {
	GetProfile(ctx context.Context, username string) (*models.Tutor, error)
	// UpdateProfile returns the username the tutor has after the update
	UpdateProfile(ctx context.Context, username string, req *dto.UpdateProfileRequest, photo *multipart.FileHeader) (string, error)
}

package dto

import "github.com/yigit/tutordesk/internal/app/models"

// StudentForm is the add / update student form as posted. Every field must be
// sent, empty values included. The optional photo arrives as the "photo" file field.
type StudentForm struct {
	Name    *string `form:"name" binding:"required"`
	RollNo  *string `form:"rollno" binding:"required"`
	Year    *string `form:"year" binding:"required"`
	CGPA    *string `form:"cgpa" binding:"required"`
	Details *string `form:"details" binding:"required"`
}

// Request returns the bound values
func (f *StudentForm) Request() *StudentRequest {
	return &StudentRequest{
		Name:    value(f.Name),
		RollNo:  value(f.RollNo),
		Year:    value(f.Year),
		CGPA:    value(f.CGPA),
		Details: value(f.Details),
	}
}

// StudentRequest holds the editable fields of a student
type StudentRequest struct {
	Name    string
	RollNo  string
	Year    string
	CGPA    string
	Details string
}

// StudentResponse is the public view of a student
type StudentResponse struct {
	ID       string `json:"id"`
	Tutor    string `json:"tutor"`
	Name     string `json:"name"`
	RollNo   string `json:"rollno"`
	Year     string `json:"year"`
	CGPA     string `json:"cgpa"`
	Details  string `json:"details"`
	Photo    string `json:"photo,omitempty"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

// DashboardResponse lists the students of the logged-in tutor.
// Tutor is null when the session names a tutor that no longer exists.
type DashboardResponse struct {
	Tutor    *TutorResponse    `json:"tutor"`
	Students []StudentResponse `json:"students"`
}

// NewStudentResponse builds the view of s
func NewStudentResponse(s *models.Student, photoURL func(string) string) StudentResponse {
	resp := StudentResponse{
		ID:      s.ID,
		Tutor:   s.Tutor,
		Name:    s.Name,
		RollNo:  s.RollNo,
		Year:    s.Year,
		CGPA:    s.CGPA,
		Details: s.Details,
		Photo:   s.Photo,
	}
	if photoURL != nil {
		resp.PhotoURL = photoURL(s.Photo)
	}
	return resp
}

// NewStudentListResponse builds the view of a student list, never returning nil
func NewStudentListResponse(students []*models.Student, photoURL func(string) string) []StudentResponse {
	list := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		list = append(list, NewStudentResponse(s, photoURL))
	}
	return list
}

// AddStudentPageResponse is the add student page: the acting tutor and the form
type AddStudentPageResponse struct {
	Tutor *TutorResponse `json:"tutor"`
	Form  FormPage       `json:"form"`
}

// UpdateStudentPageResponse is the update student page
type UpdateStudentPageResponse struct {
	Student StudentResponse `json:"student"`
	Form    FormPage        `json:"form"`
}

package dto

import "github.com/yigit/tutordesk/internal/app/models"

// ProfileForm is the profile form as posted. Username and email must be sent;
// the password may be left out.
type ProfileForm struct {
	Username *string `form:"username" binding:"required"`
	Email    *string `form:"email" binding:"required"`
	Password string  `form:"password"`
}

// Request returns the bound values
func (f *ProfileForm) Request() *UpdateProfileRequest {
	return &UpdateProfileRequest{
		Username: value(f.Username),
		Email:    value(f.Email),
		Password: f.Password,
	}
}

// UpdateProfileRequest is a profile update. An empty password keeps the current one.
type UpdateProfileRequest struct {
	Username string
	Email    string
	Password string
}

// TutorResponse is the public view of a tutor
type TutorResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Photo    string `json:"photo,omitempty"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

// NewTutorResponse builds the view of t; photoURL maps a stored photo to its public URL.
// Returns nil for a nil tutor.
func NewTutorResponse(t *models.Tutor, photoURL func(string) string) *TutorResponse {
	if t == nil {
		return nil
	}
	resp := &TutorResponse{
		Username: t.Username,
		Email:    t.Email,
		Photo:    t.Photo,
	}
	if photoURL != nil {
		resp.PhotoURL = photoURL(t.Photo)
	}
	return resp
}

// ProfilePageResponse is the profile page
type ProfilePageResponse struct {
	Tutor *TutorResponse `json:"tutor"`
	Form  FormPage       `json:"form"`
}

package dto

// Form structs bind into *string so that "required" only checks that the
// field was sent; an empty value is accepted.

// RegisterForm is the registration form as posted. The optional photo arrives as the "photo" file field.
type RegisterForm struct {
	Username *string `form:"username" binding:"required"`
	Email    *string `form:"email" binding:"required"`
	Password *string `form:"password" binding:"required"`
}

// Request returns the bound values
func (f *RegisterForm) Request() *RegisterRequest {
	return &RegisterRequest{
		Username: value(f.Username),
		Email:    value(f.Email),
		Password: value(f.Password),
	}
}

// RegisterRequest is a registration
type RegisterRequest struct {
	Username string
	Email    string
	Password string
}

// LoginForm is the login form as posted
type LoginForm struct {
	Username *string `form:"username" binding:"required"`
	Password *string `form:"password" binding:"required"`
}

// Request returns the bound values
func (f *LoginForm) Request() *LoginRequest {
	return &LoginRequest{
		Username: value(f.Username),
		Password: value(f.Password),
	}
}

// LoginRequest is a login attempt
type LoginRequest struct {
	Username string
	Password string
}

// FormPage describes a form page: where it posts and which fields it expects
type FormPage struct {
	Action string   `json:"action"`
	Fields []string `json:"fields"`
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package apperrors

import "errors"

// Session errors
var (
	// ErrSessionRequired means the request carries no authenticated identity.
	ErrSessionRequired = errors.New("session required")
	// ErrSessionNotFound is returned by session stores for unknown or expired tokens.
	ErrSessionNotFound = errors.New("session not found")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Authorization errors
var (
	ErrPermissionDenied = errors.New("permission denied")
)

// Tutor errors
var (
	ErrTutorNotFound     = errors.New("tutor not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
)

// Is returns whether err matches target or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError carries a user-facing message on top of a sentinel error
type CustomError struct {
	Err     error
	Message string
	Field   string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError reports a failed field check
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

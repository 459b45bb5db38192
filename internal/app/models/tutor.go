package models

// Tutor defines the tutor account stored in the 'tutors' table / collection
type Tutor struct {
	// Unique login name, mutable through the profile page
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
	// bcrypt hash (excluded from JSON)
	Password string `json:"-" db:"password"`
	// Stored file name, empty when no photo
	Photo string `json:"photo,omitempty" db:"photo"`
}

// TutorUpdate is a partial update of a tutor.
// Username and Email are always written; nil pointers leave the stored value alone.
type TutorUpdate struct {
	Username string
	Email    string
	Password *string // already hashed
	Photo    *string
}

// Apply copies the update onto t
func (u TutorUpdate) Apply(t *Tutor) {
	t.Username = u.Username
	t.Email = u.Email
	if u.Password != nil {
		t.Password = *u.Password
	}
	if u.Photo != nil {
		t.Photo = *u.Photo
	}
}

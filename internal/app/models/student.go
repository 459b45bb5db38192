package models

// Student defines a student record owned by a tutor
type Student struct {
	ID      string `json:"id" db:"id"`
	Tutor   string `json:"tutor" db:"tutor"` // Username of the owning tutor
	Name    string `json:"name" db:"name"`
	RollNo  string `json:"rollno" db:"rollno"`
	Year    string `json:"year" db:"year"`
	CGPA    string `json:"cgpa" db:"cgpa"`
	Details string `json:"details" db:"details"`
	Photo   string `json:"photo,omitempty" db:"photo"`
}

// StudentUpdate replaces the editable fields of a student.
// Photo is only written when non-nil.
type StudentUpdate struct {
	Name    string
	RollNo  string
	Year    string
	CGPA    string
	Details string
	Photo   *string
}

// Apply copies the update onto s
func (u StudentUpdate) Apply(s *Student) {
	s.Name = u.Name
	s.RollNo = u.RollNo
	s.Year = u.Year
	s.CGPA = u.CGPA
	s.Details = u.Details
	if u.Photo != nil {
		s.Photo = *u.Photo
	}
}

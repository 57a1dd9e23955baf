package model

import "strings"

// Gender represents the student's gender.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

// ParseGender normalizes s and reports whether it is a known gender.
func ParseGender(s string) (Gender, bool) {
	g := Gender(strings.ToUpper(strings.TrimSpace(s)))
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return g, true
	}
	return "", false
}

// Student represents an enrolled or prospective student.
type Student struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	GradeID     *string `json:"grade_id"`
	DateOfBirth string  `json:"dob"`
	Gender      Gender  `json:"gender"`
	Phone       string  `json:"phone"`
}

// CurrentGrade returns the student's grade id or "" when unset.
func (s Student) CurrentGrade() string {
	if s.GradeID == nil {
		return ""
	}
	return *s.GradeID
}

// CreateStudentRequest is the payload for creating a new student.
// IDs are digits only. GradeID is optional; an unknown grade leaves the
// student unenrolled.
type CreateStudentRequest struct {
	ID          string `json:"id" validate:"required,number"`
	Name        string `json:"name" validate:"notblank"`
	GradeID     string `json:"grade_id"`
	DateOfBirth string `json:"dob" validate:"notblank"`
	Gender      string `json:"gender" validate:"required,oneof=M F O"`
	Phone       string `json:"phone" validate:"notblank"`
}

// UpdateStudentRequest carries the fields to change; nil fields are left alone.
type UpdateStudentRequest struct {
	Name        *string
	DateOfBirth *string
	Gender      *string
	Phone       *string
	GradeID     *string
}

// CreateStudentResult reports what happened to the optional enrollment.
type CreateStudentResult struct {
	Student  Student
	Enrolled bool
	Notices  []string
}

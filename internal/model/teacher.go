package model

// Teacher represents a member of the teaching staff.
// AssignedGrades is only populated in persisted snapshots.
type Teacher struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Qualification  string   `json:"qualification"`
	SubjectIDs     []string `json:"subject_ids"`
	Phone          string   `json:"phone"`
	AssignedGrades []string `json:"assigned_grades,omitempty"`
}

// CreateTeacherRequest is the payload for creating a teacher.
type CreateTeacherRequest struct {
	ID            string   `json:"id" validate:"notblank"`
	Name          string   `json:"name" validate:"notblank"`
	Qualification string   `json:"qualification" validate:"notblank"`
	SubjectIDs    []string `json:"subject_ids"`
	Phone         string   `json:"phone" validate:"notblank"`
}

// UpdateTeacherRequest carries the fields to change; nil fields are left alone.
type UpdateTeacherRequest struct {
	Name          *string
	Qualification *string
	Phone         *string
	SubjectIDs    *[]string
}

// TeacherOverview is a teacher with subject and assigned grade names resolved.
type TeacherOverview struct {
	Teacher      Teacher  `json:"teacher"`
	SubjectNames []string `json:"subject_names"`
	GradeNames   []string `json:"grade_names"`
}

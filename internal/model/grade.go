package model

// Grade represents a class or year level (a cohort, not a score).
// AssignedSubjects is only populated in persisted snapshots.
type Grade struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	AssignedSubjects []string `json:"assigned_subjects,omitempty"`
}

// CreateGradeRequest is the payload for creating a grade.
type CreateGradeRequest struct {
	ID   string `json:"id" validate:"notblank"`
	Name string `json:"name" validate:"notblank"`
}

// UpdateGradeRequest is the payload for renaming a grade.
type UpdateGradeRequest struct {
	Name *string
}

// GradeRoster lists the names of the students currently in a grade.
type GradeRoster struct {
	Grade        Grade    `json:"grade"`
	StudentNames []string `json:"student_names"`
}

// HistoryEntry is one step in a student's enrollment history.
type HistoryEntry struct {
	GradeID   string `json:"grade_id"`
	GradeName string `json:"grade_name"`
}

// EnrollResult describes the outcome of an enrollment.
type EnrollResult struct {
	GradeID        string
	AddedToHistory bool
	Notice         string
}

// AssignmentResult reports which ids were stored and which were skipped.
type AssignmentResult struct {
	Assigned []string
	Invalid  []string
}

package model

// Subject represents an academic course or subject.
type Subject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateSubjectRequest is the payload for creating a subject.
type CreateSubjectRequest struct {
	ID   string `json:"id" validate:"notblank"`
	Name string `json:"name" validate:"notblank"`
}

// UpdateSubjectRequest is the payload for renaming a subject.
type UpdateSubjectRequest struct {
	Name *string
}

// SubjectOverview lists the grades a subject is assigned to.
type SubjectOverview struct {
	Subject    Subject  `json:"subject"`
	GradeNames []string `json:"grade_names"`
}

// SubjectDeletePolicy decides what happens to references when a subject is deleted.
type SubjectDeletePolicy string

const (
	// SubjectDeletePermissive leaves teacher, grade and score references in place.
	SubjectDeletePermissive SubjectDeletePolicy = "permissive"
	// SubjectDeleteCascade strips the subject from teachers, grades and scores.
	SubjectDeleteCascade SubjectDeletePolicy = "cascade"
)

// ParseSubjectDeletePolicy falls back to permissive for unknown values.
func ParseSubjectDeletePolicy(s string) SubjectDeletePolicy {
	if SubjectDeletePolicy(s) == SubjectDeleteCascade {
		return SubjectDeleteCascade
	}
	return SubjectDeletePermissive
}

package service

import (
	"context"
	"strings"

	"github.com/stemsi/school-records/internal/model"
	"github.com/stemsi/school-records/internal/repository"
)

// UnknownGradeName labels history entries whose grade no longer exists.
const UnknownGradeName = "UNKNOWN"

// EnrollmentService handles enrollment business logic.
type EnrollmentService struct {
	repo *repository.SchoolRepository
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(repo *repository.SchoolRepository) *EnrollmentService {
	return &EnrollmentService{repo: repo}
}

// Enroll moves a student into a grade.
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, gradeID string, overwrite bool) (model.EnrollResult, error) {
	return s.repo.Enroll(ctx, strings.TrimSpace(studentID), strings.TrimSpace(gradeID), overwrite)
}

// History returns the student's grades oldest first with their names.
func (s *EnrollmentService) History(ctx context.Context, studentID string) ([]model.HistoryEntry, error) {
	ids, err := s.repo.History(ctx, strings.TrimSpace(studentID))
	if err != nil {
		return nil, err
	}
	entries := make([]model.HistoryEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, model.HistoryEntry{
			GradeID:   id,
			GradeName: gradeName(ctx, s.repo, id, UnknownGradeName),
		})
	}
	return entries, nil
}

package service

import (
	"context"
	"iter"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/school-records/internal/model"
	"github.com/stemsi/school-records/internal/repository"
	"github.com/stemsi/school-records/internal/response"
	"github.com/stemsi/school-records/internal/validator"
)

// GradeService handles grade (class) business logic.
type GradeService struct {
	repo *repository.SchoolRepository
	log  zerolog.Logger
}

// NewGradeService creates a new GradeService.
func NewGradeService(repo *repository.SchoolRepository, log zerolog.Logger) *GradeService {
	return &GradeService{
		repo: repo,
		log:  log.With().Str("component", "grade_service").Logger(),
	}
}

// GetByID retrieves a grade by its ID.
func (s *GradeService) GetByID(ctx context.Context, id string) (model.Grade, error) {
	return s.repo.GetGrade(ctx, strings.TrimSpace(id))
}

// List yields all grades.
func (s *GradeService) List(ctx context.Context) iter.Seq[model.Grade] {
	return s.repo.ListGrades(ctx)
}

// Create creates a new grade.
func (s *GradeService) Create(ctx context.Context, req model.CreateGradeRequest) error {
	req.ID = strings.TrimSpace(req.ID)
	req.Name = strings.TrimSpace(req.Name)
	if fields := validator.Struct(req); fields != nil {
		return response.Validation(fields)
	}
	return s.repo.CreateGrade(ctx, model.Grade{ID: req.ID, Name: req.Name})
}

// Update renames a grade.
func (s *GradeService) Update(ctx context.Context, id string, req model.UpdateGradeRequest) (model.UpdateResult, error) {
	var res model.UpdateResult
	current, err := s.repo.GetGrade(ctx, strings.TrimSpace(id))
	if err != nil {
		return res, err
	}
	next := current
	applyText(&res, "name", req.Name, &next.Name)
	if !res.HasChanges() {
		return res, nil
	}
	return res, s.repo.UpdateGrade(ctx, next)
}

// Delete removes a grade and cleans every reference to it once confirm accepts.
func (s *GradeService) Delete(ctx context.Context, id string, confirm ConfirmFunc[model.Grade]) error {
	grade, err := s.repo.GetGrade(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if err := confirmDelete(grade, confirm, repository.EntityGrade, grade.ID); err != nil {
		return err
	}
	if err := s.repo.DeleteGrade(ctx, grade.ID); err != nil {
		return err
	}
	s.log.Debug().Str("grade_id", grade.ID).Msg("grade deleted with related data")
	return nil
}

// AssignSubjects replaces the grade's subject set with the existing ids.
func (s *GradeService) AssignSubjects(ctx context.Context, gradeID string, subjectIDs []string) (model.AssignmentResult, error) {
	return s.repo.AssignSubjectsToGrade(ctx, strings.TrimSpace(gradeID), subjectIDs)
}

// Subjects returns the subject ids assigned to a grade.
func (s *GradeService) Subjects(ctx context.Context, gradeID string) []string {
	return s.repo.GradeSubjects(ctx, strings.TrimSpace(gradeID))
}

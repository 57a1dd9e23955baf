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

// SubjectService handles subject business logic.
type SubjectService struct {
	repo *repository.SchoolRepository
	log  zerolog.Logger
}

// NewSubjectService creates a new SubjectService.
func NewSubjectService(repo *repository.SchoolRepository, log zerolog.Logger) *SubjectService {
	return &SubjectService{
		repo: repo,
		log:  log.With().Str("component", "subject_service").Logger(),
	}
}

// GetByID retrieves a subject by its ID.
func (s *SubjectService) GetByID(ctx context.Context, id string) (model.Subject, error) {
	return s.repo.GetSubject(ctx, strings.TrimSpace(id))
}

// List yields all subjects.
func (s *SubjectService) List(ctx context.Context) iter.Seq[model.Subject] {
	return s.repo.ListSubjects(ctx)
}

// Create creates a new subject.
func (s *SubjectService) Create(ctx context.Context, req model.CreateSubjectRequest) error {
	req.ID = strings.TrimSpace(req.ID)
	req.Name = strings.TrimSpace(req.Name)
	if fields := validator.Struct(req); fields != nil {
		return response.Validation(fields)
	}
	return s.repo.CreateSubject(ctx, model.Subject{ID: req.ID, Name: req.Name})
}

// Update renames a subject.
func (s *SubjectService) Update(ctx context.Context, id string, req model.UpdateSubjectRequest) (model.UpdateResult, error) {
	var res model.UpdateResult
	current, err := s.repo.GetSubject(ctx, strings.TrimSpace(id))
	if err != nil {
		return res, err
	}
	next := current
	applyText(&res, "name", req.Name, &next.Name)
	if !res.HasChanges() {
		return res, nil
	}
	return res, s.repo.UpdateSubject(ctx, next)
}

// Delete removes a subject once confirm accepts. What happens to references
// depends on the repository's subject delete policy.
func (s *SubjectService) Delete(ctx context.Context, id string, confirm ConfirmFunc[model.Subject]) error {
	subject, err := s.repo.GetSubject(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if err := confirmDelete(subject, confirm, repository.EntitySubject, subject.ID); err != nil {
		return err
	}
	return s.repo.DeleteSubject(ctx, subject.ID)
}

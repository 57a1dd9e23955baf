package service

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/school-records/internal/model"
	"github.com/stemsi/school-records/internal/repository"
	"github.com/stemsi/school-records/internal/response"
	"github.com/stemsi/school-records/internal/validator"
)

// TeacherService handles teacher business logic.
type TeacherService struct {
	repo *repository.SchoolRepository
	log  zerolog.Logger
}

// NewTeacherService creates a new TeacherService.
func NewTeacherService(repo *repository.SchoolRepository, log zerolog.Logger) *TeacherService {
	return &TeacherService{
		repo: repo,
		log:  log.With().Str("component", "teacher_service").Logger(),
	}
}

// GetByID retrieves a teacher by ID.
func (s *TeacherService) GetByID(ctx context.Context, id string) (model.Teacher, error) {
	return s.repo.GetTeacher(ctx, strings.TrimSpace(id))
}

// List yields all teachers.
func (s *TeacherService) List(ctx context.Context) iter.Seq[model.Teacher] {
	return s.repo.ListTeachers(ctx)
}

// Create validates and inserts a teacher. Subject ids that do not exist are
// not stored and are returned.
func (s *TeacherService) Create(ctx context.Context, req model.CreateTeacherRequest) (invalidSubjects []string, err error) {
	req.ID = strings.TrimSpace(req.ID)
	req.Name = strings.TrimSpace(req.Name)
	req.Qualification = strings.TrimSpace(req.Qualification)
	req.Phone = strings.TrimSpace(req.Phone)

	if fields := validator.Struct(req); fields != nil {
		return nil, response.Validation(fields)
	}

	invalidSubjects, err = s.repo.CreateTeacher(ctx, model.Teacher{
		ID:            req.ID,
		Name:          req.Name,
		Qualification: req.Qualification,
		SubjectIDs:    trimAll(req.SubjectIDs),
		Phone:         req.Phone,
	})
	if response.CodeOf(err) != "" && response.CodeOf(err) != response.ErrPersistence {
		return nil, err
	}
	if len(invalidSubjects) > 0 {
		s.log.Warn().Str("teacher_id", req.ID).Strs("invalid", invalidSubjects).Msg("unknown subject ids skipped")
	}
	return invalidSubjects, err
}

// Update applies each supplied field independently.
func (s *TeacherService) Update(ctx context.Context, id string, req model.UpdateTeacherRequest) (model.UpdateResult, error) {
	var res model.UpdateResult

	current, err := s.repo.GetTeacher(ctx, strings.TrimSpace(id))
	if err != nil {
		return res, err
	}
	next := current

	applyText(&res, "name", req.Name, &next.Name)
	applyText(&res, "qualification", req.Qualification, &next.Qualification)
	applyText(&res, "phone", req.Phone, &next.Phone)

	if req.SubjectIDs != nil {
		next.SubjectIDs = trimAll(*req.SubjectIDs)
		res.Changed = append(res.Changed, "subject_ids")
	}

	if !res.HasChanges() {
		return res, nil
	}
	invalid, err := s.repo.UpdateTeacher(ctx, next)
	if len(invalid) > 0 {
		res.Notices = append(res.Notices, fmt.Sprintf(
			"The following Subject IDs are invalid or do not exist and were skipped: %s", strings.Join(invalid, ", ")))
	}
	return res, err
}

// Delete removes a teacher and their grade assignments once confirm accepts.
func (s *TeacherService) Delete(ctx context.Context, id string, confirm ConfirmFunc[model.Teacher]) error {
	teacher, err := s.repo.GetTeacher(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if err := confirmDelete(teacher, confirm, repository.EntityTeacher, teacher.ID); err != nil {
		return err
	}
	return s.repo.DeleteTeacher(ctx, teacher.ID)
}

// AssignGrades replaces the teacher's grade set with the existing ids.
func (s *TeacherService) AssignGrades(ctx context.Context, teacherID string, gradeIDs []string) (model.AssignmentResult, error) {
	return s.repo.AssignTeacherToGrades(ctx, strings.TrimSpace(teacherID), gradeIDs)
}

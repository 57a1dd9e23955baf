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

// StudentService handles student business logic.
type StudentService struct {
	repo *repository.SchoolRepository
	log  zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(repo *repository.SchoolRepository, log zerolog.Logger) *StudentService {
	return &StudentService{
		repo: repo,
		log:  log.With().Str("component", "student_service").Logger(),
	}
}

// GetByID retrieves a student by ID.
func (s *StudentService) GetByID(ctx context.Context, id string) (model.Student, error) {
	return s.repo.GetStudent(ctx, strings.TrimSpace(id))
}

// List yields all students in the order they were added.
func (s *StudentService) List(ctx context.Context) iter.Seq[model.Student] {
	return s.repo.ListStudents(ctx)
}

// Search finds students by name fragment or exact ID.
func (s *StudentService) Search(ctx context.Context, query string) []model.Student {
	return s.repo.SearchStudents(ctx, query)
}

// Create validates and inserts a new student, enrolling them when the
// requested grade exists. An unknown grade is reported as a notice.
func (s *StudentService) Create(ctx context.Context, req model.CreateStudentRequest) (model.CreateStudentResult, error) {
	req.ID = strings.TrimSpace(req.ID)
	req.Name = strings.TrimSpace(req.Name)
	req.GradeID = strings.TrimSpace(req.GradeID)
	req.DateOfBirth = strings.TrimSpace(req.DateOfBirth)
	req.Gender = strings.ToUpper(strings.TrimSpace(req.Gender))
	req.Phone = strings.TrimSpace(req.Phone)

	if fields := validator.Struct(req); fields != nil {
		return model.CreateStudentResult{}, response.Validation(fields)
	}

	student := model.Student{
		ID:          req.ID,
		Name:        req.Name,
		DateOfBirth: req.DateOfBirth,
		Gender:      model.Gender(req.Gender),
		Phone:       req.Phone,
	}
	if req.GradeID != "" {
		gradeID := req.GradeID
		student.GradeID = &gradeID
	}

	enrolled, err := s.repo.CreateStudent(ctx, student)
	res := model.CreateStudentResult{Student: student, Enrolled: enrolled}
	if response.CodeOf(err) != "" && response.CodeOf(err) != response.ErrPersistence {
		return model.CreateStudentResult{}, err
	}
	if !enrolled {
		res.Student.GradeID = nil
		if req.GradeID != "" {
			res.Notices = append(res.Notices, fmt.Sprintf(
				"Grade ID %s not found. Student added, but not enrolled.", req.GradeID))
		}
	}

	s.log.Debug().Str("student_id", student.ID).Bool("enrolled", enrolled).Msg("student created")
	return res, err
}

// Update applies each supplied field independently. Invalid fields keep their
// previous value and are listed in the result; a new grade enrolls the
// student with overwrite semantics.
func (s *StudentService) Update(ctx context.Context, id string, req model.UpdateStudentRequest) (model.UpdateResult, error) {
	var res model.UpdateResult

	current, err := s.repo.GetStudent(ctx, strings.TrimSpace(id))
	if err != nil {
		return res, err
	}
	next := current

	applyText(&res, "name", req.Name, &next.Name)
	applyText(&res, "dob", req.DateOfBirth, &next.DateOfBirth)
	applyText(&res, "phone", req.Phone, &next.Phone)

	if req.Gender != nil {
		if g, ok := model.ParseGender(*req.Gender); ok {
			next.Gender = g
			res.Changed = append(res.Changed, "gender")
		} else {
			res.Reject("gender", "gender must be one of [M F O]")
		}
	}

	if req.GradeID != nil {
		gradeID := strings.TrimSpace(*req.GradeID)
		switch {
		case gradeID == "":
			res.Reject("grade_id", "grade_id must not be blank")
		case !s.repo.HasGrade(ctx, gradeID):
			res.Reject("grade_id", fmt.Sprintf("Grade ID %s not found. Grade ID not updated.", gradeID))
		default:
			next.GradeID = &gradeID
			res.Changed = append(res.Changed, "grade_id")
			if gradeID != current.CurrentGrade() {
				res.Notices = append(res.Notices, fmt.Sprintf("Enrollment updated to Grade ID: %s", gradeID))
			}
		}
	}

	if !res.HasChanges() {
		return res, nil
	}
	if err := s.repo.UpdateStudent(ctx, next); err != nil {
		return res, err
	}
	s.log.Debug().Str("student_id", current.ID).Strs("changed", res.Changed).Msg("student updated")
	return res, nil
}

// Delete removes a student with their enrollment history and scores once
// confirm accepts the record.
func (s *StudentService) Delete(ctx context.Context, id string, confirm ConfirmFunc[model.Student]) error {
	student, err := s.repo.GetStudent(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if err := confirmDelete(student, confirm, repository.EntityStudent, student.ID); err != nil {
		return err
	}
	return s.repo.DeleteStudent(ctx, student.ID)
}

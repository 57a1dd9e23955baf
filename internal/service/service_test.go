package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stemsi/school-records/internal/model"
	"github.com/stemsi/school-records/internal/repository"
	"github.com/stemsi/school-records/internal/store"
	"github.com/stretchr/testify/require"
)

type services struct {
	repo        *repository.SchoolRepository
	store       *store.MemoryStore
	students    *StudentService
	teachers    *TeacherService
	subjects    *SubjectService
	grades      *GradeService
	enrollments *EnrollmentService
	scores      *ScoreService
	reports     *ReportService
	sheets      *SpreadsheetService
}

func newServices(t *testing.T) *services {
	t.Helper()
	log := zerolog.Nop()
	ms := store.NewMemoryStore()
	repo := repository.NewSchoolRepository(ms, model.SubjectDeletePermissive, log)

	s := &services{
		repo:        repo,
		store:       ms,
		students:    NewStudentService(repo, log),
		teachers:    NewTeacherService(repo, log),
		subjects:    NewSubjectService(repo, log),
		grades:      NewGradeService(repo, log),
		enrollments: NewEnrollmentService(repo),
		scores:      NewScoreService(repo, log),
		reports:     NewReportService(repo, NewPlaceholderRand(7), log),
	}
	s.sheets = NewSpreadsheetService(s.students, s.scores, s.reports, log)
	return s
}

// withSchool adds grade 10 "Grade 10", subject 101 "Math" and student 5001 in grade 10.
func (s *services) withSchool(t *testing.T) *services {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.grades.Create(ctx, model.CreateGradeRequest{ID: "10", Name: "Grade 10"}))
	require.NoError(t, s.subjects.Create(ctx, model.CreateSubjectRequest{ID: "101", Name: "Math"}))
	res, err := s.students.Create(ctx, model.CreateStudentRequest{
		ID: "5001", Name: "Ann Lee", GradeID: "10", DateOfBirth: "2010-01-01", Gender: "F", Phone: "555-0101",
	})
	require.NoError(t, err)
	require.True(t, res.Enrolled)
	return s
}

func strPtr(s string) *string { return &s }

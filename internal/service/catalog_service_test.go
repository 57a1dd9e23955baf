package service

import (
	"context"
	"slices"
	"testing"

	"github.com/stemsi/school-records/internal/model"
	"github.com/stemsi/school-records/internal/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeacherService_CreateAndUpdate(t *testing.T) {
	s := newServices(t).withSchool(t)
	ctx := context.Background()

	invalid, err := s.teachers.Create(ctx, model.CreateTeacherRequest{
		ID: "7", Name: "Ms. Ada", Qualification: "MSc", SubjectIDs: []string{"101", "999", " "}, Phone: "555",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"999"}, invalid)

	_, err = s.teachers.Create(ctx, model.CreateTeacherRequest{ID: "8"})
	assert.Equal(t, response.ErrValidation, response.CodeOf(err))

	res, err := s.teachers.Update(ctx, "7", model.UpdateTeacherRequest{
		Qualification: strPtr("PhD"),
		SubjectIDs:    &[]string{"101", "404"},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"qualification", "subject_ids"}, res.Changed)
	require.Len(t, res.Notices, 1)
	assert.Contains(t, res.Notices[0], "404")

	got, err := s.teachers.GetByID(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, "PhD", got.Qualification)
	assert.Equal(t, []string{"101"}, got.SubjectIDs)
}

func TestTeacherService_AssignAndDelete(t *testing.T) {
	s := newServices(t).withSchool(t)
	ctx := context.Background()
	_, err := s.teachers.Create(ctx, model.CreateTeacherRequest{ID: "7", Name: "Ada", Qualification: "MSc", Phone: "1"})
	require.NoError(t, err)

	res, err := s.teachers.AssignGrades(ctx, "7", []string{"10", "12"})
	require.NoError(t, err)
	assert.Equal(t, []string{"10"}, res.Assigned)
	assert.Equal(t, []string{"12"}, res.Invalid)

	err = s.teachers.Delete(ctx, "7", func(model.Teacher) bool { return false })
	assert.Equal(t, response.ErrCancelled, response.CodeOf(err))

	require.NoError(t, s.teachers.Delete(ctx, "7", nil))
	assert.Empty(t, slices.Collect(s.teachers.List(ctx)))
}

func TestGradeService_DeleteCascades(t *testing.T) {
	s := newServices(t).withSchool(t)
	ctx := context.Background()

	require.NoError(t, s.grades.Delete(ctx, "10", func(g model.Grade) bool { return g.Name == "Grade 10" }))

	st, err := s.students.GetByID(ctx, "5001")
	require.NoError(t, err)
	assert.Nil(t, st.GradeID)
	history, err := s.enrollments.History(ctx, "5001")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestGradeService_UpdateAndAssign(t *testing.T) {
	s := newServices(t).withSchool(t)
	ctx := context.Background()

	res, err := s.grades.Update(ctx, "10", model.UpdateGradeRequest{Name: strPtr("Tenth")})
	require.NoError(t, err)
	assert.True(t, res.HasChanges())
	g, _ := s.grades.GetByID(ctx, "10")
	assert.Equal(t, "Tenth", g.Name)

	res, err = s.grades.Update(ctx, "10", model.UpdateGradeRequest{Name: strPtr("")})
	require.NoError(t, err)
	assert.False(t, res.HasChanges())
	assert.Contains(t, res.Rejected, "name")

	assigned, err := s.grades.AssignSubjects(ctx, "10", []string{"1", "99", "101"})
	require.NoError(t, err)
	assert.Equal(t, []string{"101"}, assigned.Assigned)
	assert.Equal(t, []string{"1", "99"}, assigned.Invalid)
	assert.Equal(t, []string{"101"}, s.grades.Subjects(ctx, "10"))
}

func TestSubjectService(t *testing.T) {
	s := newServices(t).withSchool(t)
	ctx := context.Background()

	err := s.subjects.Create(ctx, model.CreateSubjectRequest{ID: "101", Name: "Again"})
	assert.Equal(t, response.ErrDuplicateID, response.CodeOf(err))

	_, err = s.subjects.Update(ctx, "101", model.UpdateSubjectRequest{Name: strPtr("Mathematics")})
	require.NoError(t, err)
	got, _ := s.subjects.GetByID(ctx, "101")
	assert.Equal(t, "Mathematics", got.Name)

	require.NoError(t, s.subjects.Delete(ctx, "101", nil))
	_, err = s.subjects.GetByID(ctx, "101")
	assert.Equal(t, response.ErrNotFound, response.CodeOf(err))
}

func TestEnrollmentService(t *testing.T) {
	s := newServices(t).withSchool(t)
	ctx := context.Background()

	res, err := s.enrollments.Enroll(ctx, " 5001 ", "10", false)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Notice)

	_, err = s.enrollments.Enroll(ctx, "5001", "99", false)
	assert.Equal(t, response.ErrNotFound, response.CodeOf(err))

	_, err = s.enrollments.History(ctx, "99")
	assert.Equal(t, response.ErrNotFound, response.CodeOf(err))
}

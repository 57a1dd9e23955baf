package service

import (
	"context"
	"testing"

	"github.com/stemsi/school-records/internal/model"
	"github.com/stemsi/school-records/internal/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentService_CreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		req    model.CreateStudentRequest
		fields []string
	}{
		{
			name:   "blank name",
			req:    model.CreateStudentRequest{ID: "1", Name: "  ", DateOfBirth: "2010", Gender: "M", Phone: "1"},
			fields: []string{"name"},
		},
		{
			name:   "bad gender",
			req:    model.CreateStudentRequest{ID: "1", Name: "A", DateOfBirth: "2010", Gender: "X", Phone: "1"},
			fields: []string{"gender"},
		},
		{
			name:   "missing everything",
			req:    model.CreateStudentRequest{},
			fields: []string{"id", "name", "dob", "gender", "phone"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServices(t)
			_, err := s.students.Create(context.Background(), tt.req)

			var e *response.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, response.ErrValidation, e.Code)
			for _, f := range tt.fields {
				assert.Contains(t, e.Fields, f)
			}
			assert.Zero(t, s.reports.Summary(context.Background()).Students)
		})
	}
}

func TestStudentService_CreateNormalizesInput(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	res, err := s.students.Create(ctx, model.CreateStudentRequest{
		ID: " 7 ", Name: " Cy ", DateOfBirth: "2012-03-03", Gender: "o", Phone: " 9 ",
	})
	require.NoError(t, err)
	assert.False(t, res.Enrolled)
	assert.Empty(t, res.Notices)

	got, err := s.students.GetByID(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, model.Student{ID: "7", Name: "Cy", DateOfBirth: "2012-03-03", Gender: model.GenderOther, Phone: "9"}, got)
}

func TestStudentService_CreateWithUnknownGrade(t *testing.T) {
	s := newServices(t)

	res, err := s.students.Create(context.Background(), model.CreateStudentRequest{
		ID: "1", Name: "A", GradeID: "99", DateOfBirth: "2010", Gender: "M", Phone: "1",
	})
	require.NoError(t, err)
	assert.False(t, res.Enrolled)
	assert.Nil(t, res.Student.GradeID)
	require.Len(t, res.Notices, 1)
	assert.Contains(t, res.Notices[0], "99")
}

func TestStudentService_CreateDuplicate(t *testing.T) {
	s := newServices(t).withSchool(t)

	_, err := s.students.Create(context.Background(), model.CreateStudentRequest{
		ID: "5001", Name: "Other", DateOfBirth: "2010", Gender: "M", Phone: "1",
	})
	assert.Equal(t, response.ErrDuplicateID, response.CodeOf(err))
}

func TestStudentService_UpdateFieldByField(t *testing.T) {
	s := newServices(t).withSchool(t)
	ctx := context.Background()
	require.NoError(t, s.grades.Create(ctx, model.CreateGradeRequest{ID: "11", Name: "Grade 11"}))

	res, err := s.students.Update(ctx, "5001", model.UpdateStudentRequest{
		Name:    strPtr("Ann Marie"),
		Phone:   strPtr("   "),
		Gender:  strPtr("Q"),
		GradeID: strPtr("11"),
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"name", "grade_id"}, res.Changed)
	assert.Contains(t, res.Rejected, "phone")
	assert.Contains(t, res.Rejected, "gender")

	got, _ := s.students.GetByID(ctx, "5001")
	assert.Equal(t, "Ann Marie", got.Name)
	assert.Equal(t, "555-0101", got.Phone)
	assert.Equal(t, model.GenderFemale, got.Gender)
	assert.Equal(t, "11", got.CurrentGrade())

	history, err := s.enrollments.History(ctx, "5001")
	require.NoError(t, err)
	assert.Equal(t, []model.HistoryEntry{
		{GradeID: "10", GradeName: "Grade 10"},
		{GradeID: "11", GradeName: "Grade 11"},
	}, history)
}

func TestStudentService_UpdateUnknownGradeKeepsOldGrade(t *testing.T) {
	s := newServices(t).withSchool(t)
	ctx := context.Background()
	saves := s.store.Saves

	res, err := s.students.Update(ctx, "5001", model.UpdateStudentRequest{GradeID: strPtr("99")})
	require.NoError(t, err)
	assert.False(t, res.HasChanges())
	assert.Contains(t, res.Rejected, "grade_id")
	assert.Equal(t, saves, s.store.Saves)

	got, _ := s.students.GetByID(ctx, "5001")
	assert.Equal(t, "10", got.CurrentGrade())

	_, err = s.students.Update(ctx, "404", model.UpdateStudentRequest{Name: strPtr("x")})
	assert.Equal(t, response.ErrNotFound, response.CodeOf(err))
}

func TestStudentService_DeleteAsksForConfirmation(t *testing.T) {
	s := newServices(t).withSchool(t)
	ctx := context.Background()

	var asked model.Student
	err := s.students.Delete(ctx, "5001", func(st model.Student) bool {
		asked = st
		return false
	})
	assert.Equal(t, response.ErrCancelled, response.CodeOf(err))
	assert.Equal(t, "Ann Lee", asked.Name)
	_, err = s.students.GetByID(ctx, "5001")
	require.NoError(t, err)

	require.NoError(t, s.students.Delete(ctx, "5001", func(model.Student) bool { return true }))
	_, err = s.students.GetByID(ctx, "5001")
	assert.Equal(t, response.ErrNotFound, response.CodeOf(err))

	err = s.students.Delete(ctx, "5001", nil)
	assert.Equal(t, response.ErrNotFound, response.CodeOf(err))
}

func TestStudentService_Search(t *testing.T) {
	s := newServices(t).withSchool(t)

	found := s.students.Search(context.Background(), "lee")
	require.Len(t, found, 1)
	assert.Equal(t, "5001", found[0].ID)
}

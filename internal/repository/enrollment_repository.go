package repository

import (
	"context"
	"slices"

	"github.com/stemsi/school-records/internal/model"
	"github.com/stemsi/school-records/internal/response"
)

// NoticeAlreadyEnrolled is set on an EnrollResult when the grade was already
// in the history and overwrite was false.
const NoticeAlreadyEnrolled = "already enrolled (history)"

// enroll appends gradeID to the history if absent and sets the current grade.
// It reports whether the history grew.
func (st *state) enroll(studentID, gradeID string) bool {
	history, _ := st.snap.Enrollments.Get(studentID)
	added := false
	if !slices.Contains(history, gradeID) {
		history = append(slices.Clone(history), gradeID)
		st.snap.Enrollments.Set(studentID, history)
		added = true
	}
	s, _ := st.snap.Students.Get(studentID)
	g := gradeID
	s.GradeID = &g
	st.snap.Students.Set(studentID, s)
	return added
}

// Enroll moves a student into a grade and records it in the history.
func (r *SchoolRepository) Enroll(ctx context.Context, studentID, gradeID string, overwrite bool) (model.EnrollResult, error) {
	res := model.EnrollResult{GradeID: gradeID}
	err := r.mutate(ctx, "enroll", func(st *state) error {
		if !st.snap.Students.Has(studentID) {
			return response.NotFound(EntityStudent, studentID)
		}
		if !st.snap.Grades.Has(gradeID) {
			return response.NotFound(EntityGrade, gradeID)
		}
		res.AddedToHistory = st.enroll(studentID, gradeID)
		if !res.AddedToHistory && !overwrite {
			res.Notice = NoticeAlreadyEnrolled
		}
		return nil
	})
	return res, err
}

// History returns the grade ids a student has been enrolled in, oldest first.
func (r *SchoolRepository) History(_ context.Context, studentID string) ([]string, error) {
	if !r.state.snap.Students.Has(studentID) {
		return nil, response.NotFound(EntityStudent, studentID)
	}
	history, _ := r.state.snap.Enrollments.Get(studentID)
	return slices.Clone(history), nil
}

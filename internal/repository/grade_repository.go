package repository

import (
	"context"
	"iter"
	"slices"

	"github.com/stemsi/school-records/internal/model"
	"github.com/stemsi/school-records/internal/response"
	"github.com/stemsi/school-records/internal/store"
)

// GetGrade retrieves a grade by ID.
func (r *SchoolRepository) GetGrade(_ context.Context, id string) (model.Grade, error) {
	g, ok := r.state.snap.Grades.Get(id)
	if !ok {
		return model.Grade{}, response.NotFound(EntityGrade, id)
	}
	return store.CloneGrade(g), nil
}

// HasGrade reports whether a grade exists.
func (r *SchoolRepository) HasGrade(_ context.Context, id string) bool {
	return r.state.snap.Grades.Has(id)
}

// ListGrades yields grades in insertion order.
func (r *SchoolRepository) ListGrades(_ context.Context) iter.Seq[model.Grade] {
	return r.state.snap.Grades.Values()
}

// GradeSubjects returns the subject ids assigned to a grade.
func (r *SchoolRepository) GradeSubjects(_ context.Context, gradeID string) []string {
	subjects, _ := r.state.gradeSubjects.Get(gradeID)
	return slices.Clone(subjects)
}

// CreateGrade inserts a grade.
func (r *SchoolRepository) CreateGrade(ctx context.Context, grade model.Grade) error {
	return r.mutate(ctx, "create_grade", func(st *state) error {
		if st.snap.Grades.Has(grade.ID) {
			return response.DuplicateID(EntityGrade, grade.ID)
		}
		grade.AssignedSubjects = nil
		st.snap.Grades.Set(grade.ID, grade)
		return nil
	})
}

// UpdateGrade replaces a grade's name.
func (r *SchoolRepository) UpdateGrade(ctx context.Context, grade model.Grade) error {
	return r.mutate(ctx, "update_grade", func(st *state) error {
		if !st.snap.Grades.Has(grade.ID) {
			return response.NotFound(EntityGrade, grade.ID)
		}
		grade.AssignedSubjects = nil
		st.snap.Grades.Set(grade.ID, grade)
		return nil
	})
}

// DeleteGrade removes a grade and every reference to it: student grade ids,
// enrollment histories, its subject set and teacher assignments. Histories
// and assignment sets left empty are dropped.
func (r *SchoolRepository) DeleteGrade(ctx context.Context, id string) error {
	return r.mutate(ctx, "delete_grade", func(st *state) error {
		if !st.snap.Grades.Delete(id) {
			return response.NotFound(EntityGrade, id)
		}
		for _, sid := range st.snap.Students.IDs() {
			s, _ := st.snap.Students.Get(sid)
			if s.CurrentGrade() == id {
				s.GradeID = nil
				st.snap.Students.Set(sid, s)
			}
		}
		removeFrom(st.snap.Enrollments, id)
		st.gradeSubjects.Delete(id)
		removeFrom(st.teacherGrades, id)
		return nil
	})
}

// AssignSubjectsToGrade replaces a grade's subject set with the ids that exist.
func (r *SchoolRepository) AssignSubjectsToGrade(ctx context.Context, gradeID string, subjectIDs []string) (model.AssignmentResult, error) {
	var res model.AssignmentResult
	err := r.mutate(ctx, "assign_grade_subjects", func(st *state) error {
		if !st.snap.Grades.Has(gradeID) {
			return response.NotFound(EntityGrade, gradeID)
		}
		res.Assigned, res.Invalid = partition(subjectIDs, st.snap.Subjects.Has)
		if len(res.Assigned) == 0 {
			st.gradeSubjects.Delete(gradeID)
			return nil
		}
		st.gradeSubjects.Set(gradeID, slices.Clone(res.Assigned))
		return nil
	})
	return res, err
}

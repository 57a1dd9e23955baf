package repository

import (
	"context"
	"iter"
	"slices"

	"github.com/stemsi/school-records/internal/model"
	"github.com/stemsi/school-records/internal/response"
	"github.com/stemsi/school-records/internal/store"
)

// GetTeacher retrieves a teacher by ID.
func (r *SchoolRepository) GetTeacher(_ context.Context, id string) (model.Teacher, error) {
	t, ok := r.state.snap.Teachers.Get(id)
	if !ok {
		return model.Teacher{}, response.NotFound(EntityTeacher, id)
	}
	return store.CloneTeacher(t), nil
}

// ListTeachers yields teachers in insertion order.
func (r *SchoolRepository) ListTeachers(_ context.Context) iter.Seq[model.Teacher] {
	teachers := r.state.snap.Teachers
	return func(yield func(model.Teacher) bool) {
		for t := range teachers.Values() {
			if !yield(store.CloneTeacher(t)) {
				return
			}
		}
	}
}

// TeacherGrades returns the grade ids assigned to a teacher.
func (r *SchoolRepository) TeacherGrades(_ context.Context, teacherID string) []string {
	grades, _ := r.state.teacherGrades.Get(teacherID)
	return slices.Clone(grades)
}

// CreateTeacher inserts a teacher. Subject ids that do not exist are dropped
// and returned.
func (r *SchoolRepository) CreateTeacher(ctx context.Context, teacher model.Teacher) (invalid []string, err error) {
	err = r.mutate(ctx, "create_teacher", func(st *state) error {
		if st.snap.Teachers.Has(teacher.ID) {
			return response.DuplicateID(EntityTeacher, teacher.ID)
		}
		teacher.SubjectIDs, invalid = partition(teacher.SubjectIDs, st.snap.Subjects.Has)
		teacher.AssignedGrades = nil
		st.snap.Teachers.Set(teacher.ID, teacher)
		return nil
	})
	return invalid, err
}

// UpdateTeacher replaces a teacher's fields with the same subject id rules
// as CreateTeacher.
func (r *SchoolRepository) UpdateTeacher(ctx context.Context, teacher model.Teacher) (invalid []string, err error) {
	err = r.mutate(ctx, "update_teacher", func(st *state) error {
		if !st.snap.Teachers.Has(teacher.ID) {
			return response.NotFound(EntityTeacher, teacher.ID)
		}
		teacher.SubjectIDs, invalid = partition(teacher.SubjectIDs, st.snap.Subjects.Has)
		teacher.AssignedGrades = nil
		st.snap.Teachers.Set(teacher.ID, teacher)
		return nil
	})
	return invalid, err
}

// DeleteTeacher removes a teacher and its grade assignments.
func (r *SchoolRepository) DeleteTeacher(ctx context.Context, id string) error {
	return r.mutate(ctx, "delete_teacher", func(st *state) error {
		if !st.snap.Teachers.Delete(id) {
			return response.NotFound(EntityTeacher, id)
		}
		st.teacherGrades.Delete(id)
		return nil
	})
}

// AssignTeacherToGrades replaces a teacher's grade set with the ids that exist.
func (r *SchoolRepository) AssignTeacherToGrades(ctx context.Context, teacherID string, gradeIDs []string) (model.AssignmentResult, error) {
	var res model.AssignmentResult
	err := r.mutate(ctx, "assign_teacher_grades", func(st *state) error {
		if !st.snap.Teachers.Has(teacherID) {
			return response.NotFound(EntityTeacher, teacherID)
		}
		res.Assigned, res.Invalid = partition(gradeIDs, st.snap.Grades.Has)
		if len(res.Assigned) == 0 {
			st.teacherGrades.Delete(teacherID)
			return nil
		}
		st.teacherGrades.Set(teacherID, slices.Clone(res.Assigned))
		return nil
	})
	return res, err
}

package repository

import (
	"context"
	"iter"
	"strings"

	"github.com/stemsi/school-records/internal/model"
	"github.com/stemsi/school-records/internal/response"
	"github.com/stemsi/school-records/internal/store"
)

// GetStudent retrieves a student by ID.
func (r *SchoolRepository) GetStudent(_ context.Context, id string) (model.Student, error) {
	st, ok := r.state.snap.Students.Get(id)
	if !ok {
		return model.Student{}, response.NotFound(EntityStudent, id)
	}
	return store.CloneStudent(st), nil
}

// HasStudent reports whether a student exists.
func (r *SchoolRepository) HasStudent(_ context.Context, id string) bool {
	return r.state.snap.Students.Has(id)
}

// ListStudents yields students in insertion order.
func (r *SchoolRepository) ListStudents(_ context.Context) iter.Seq[model.Student] {
	students := r.state.snap.Students
	return func(yield func(model.Student) bool) {
		for st := range students.Values() {
			if !yield(store.CloneStudent(st)) {
				return
			}
		}
	}
}

// SearchStudents returns students whose name contains query (case-insensitive)
// or whose id equals query.
func (r *SchoolRepository) SearchStudents(ctx context.Context, query string) []model.Student {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []model.Student
	for st := range r.ListStudents(ctx) {
		if st.ID == strings.TrimSpace(query) || (q != "" && strings.Contains(strings.ToLower(st.Name), q)) {
			out = append(out, st)
		}
	}
	return out
}

// CreateStudent inserts a student. When GradeID names an existing grade the
// student is enrolled in the same mutation; an unknown grade leaves the
// student without one and enrolled is false.
func (r *SchoolRepository) CreateStudent(ctx context.Context, student model.Student) (enrolled bool, err error) {
	err = r.mutate(ctx, "create_student", func(st *state) error {
		if st.snap.Students.Has(student.ID) {
			return response.DuplicateID(EntityStudent, student.ID)
		}
		gradeID := student.CurrentGrade()
		student.GradeID = nil
		st.snap.Students.Set(student.ID, store.CloneStudent(student))

		if gradeID != "" && st.snap.Grades.Has(gradeID) {
			st.enroll(student.ID, gradeID)
			enrolled = true
		}
		return nil
	})
	return enrolled, err
}

// UpdateStudent replaces a student's fields. A changed grade is enrolled with
// overwrite semantics and must exist.
func (r *SchoolRepository) UpdateStudent(ctx context.Context, student model.Student) error {
	return r.mutate(ctx, "update_student", func(st *state) error {
		current, ok := st.snap.Students.Get(student.ID)
		if !ok {
			return response.NotFound(EntityStudent, student.ID)
		}
		newGrade := student.CurrentGrade()
		student.GradeID = current.GradeID
		st.snap.Students.Set(student.ID, store.CloneStudent(student))

		if newGrade != "" && newGrade != current.CurrentGrade() {
			if !st.snap.Grades.Has(newGrade) {
				return response.ReferenceMissing(EntityGrade, newGrade)
			}
			st.enroll(student.ID, newGrade)
		}
		return nil
	})
}

// DeleteStudent removes a student with its enrollment history and scores.
func (r *SchoolRepository) DeleteStudent(ctx context.Context, id string) error {
	return r.mutate(ctx, "delete_student", func(st *state) error {
		if !st.snap.Students.Delete(id) {
			return response.NotFound(EntityStudent, id)
		}
		st.snap.Enrollments.Delete(id)
		st.snap.Scores.Delete(id)
		return nil
	})
}

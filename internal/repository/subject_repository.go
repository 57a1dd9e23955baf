package repository

import (
	"context"
	"iter"
	"slices"

	"github.com/stemsi/school-records/internal/model"
	"github.com/stemsi/school-records/internal/response"
)

// GetSubject retrieves a subject by ID.
func (r *SchoolRepository) GetSubject(_ context.Context, id string) (model.Subject, error) {
	s, ok := r.state.snap.Subjects.Get(id)
	if !ok {
		return model.Subject{}, response.NotFound(EntitySubject, id)
	}
	return s, nil
}

// HasSubject reports whether a subject exists.
func (r *SchoolRepository) HasSubject(_ context.Context, id string) bool {
	return r.state.snap.Subjects.Has(id)
}

// ListSubjects yields subjects in insertion order.
func (r *SchoolRepository) ListSubjects(_ context.Context) iter.Seq[model.Subject] {
	return r.state.snap.Subjects.Values()
}

// CreateSubject inserts a subject.
func (r *SchoolRepository) CreateSubject(ctx context.Context, subject model.Subject) error {
	return r.mutate(ctx, "create_subject", func(st *state) error {
		if st.snap.Subjects.Has(subject.ID) {
			return response.DuplicateID(EntitySubject, subject.ID)
		}
		st.snap.Subjects.Set(subject.ID, subject)
		return nil
	})
}

// UpdateSubject replaces a subject's name.
func (r *SchoolRepository) UpdateSubject(ctx context.Context, subject model.Subject) error {
	return r.mutate(ctx, "update_subject", func(st *state) error {
		if !st.snap.Subjects.Has(subject.ID) {
			return response.NotFound(EntitySubject, subject.ID)
		}
		st.snap.Subjects.Set(subject.ID, subject)
		return nil
	})
}

// DeleteSubject removes a subject. Under the cascade policy the subject is
// also removed from teachers, grade subject sets and score records; the
// permissive policy leaves those references in place.
func (r *SchoolRepository) DeleteSubject(ctx context.Context, id string) error {
	return r.mutate(ctx, "delete_subject", func(st *state) error {
		if !st.snap.Subjects.Delete(id) {
			return response.NotFound(EntitySubject, id)
		}
		if r.policy != model.SubjectDeleteCascade {
			return nil
		}

		for _, tid := range st.snap.Teachers.IDs() {
			t, _ := st.snap.Teachers.Get(tid)
			if i := slices.Index(t.SubjectIDs, id); i >= 0 {
				t.SubjectIDs = slices.Delete(t.SubjectIDs, i, i+1)
				st.snap.Teachers.Set(tid, t)
			}
		}
		removeFrom(st.gradeSubjects, id)
		for _, sid := range st.snap.Scores.IDs() {
			rec, _ := st.snap.Scores.Get(sid)
			if rec.Delete(id) && rec.Len() == 0 {
				st.snap.Scores.Delete(sid)
			}
		}
		return nil
	})
}

package repository

import (
	"context"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/school-records/internal/collection"
	"github.com/stemsi/school-records/internal/model"
	"github.com/stemsi/school-records/internal/response"
	"github.com/stemsi/school-records/internal/store"
)

// Entity names used in errors and logs.
const (
	EntityStudent = "student"
	EntityTeacher = "teacher"
	EntitySubject = "subject"
	EntityGrade   = "grade"
)

// SchoolRepository is the single owner of every collection and relation.
// Each mutation runs against a clone of the state and replaces it only when
// the whole operation succeeds, then the full snapshot is saved.
type SchoolRepository struct {
	store  store.Store
	state  *state
	policy model.SubjectDeletePolicy
	log    zerolog.Logger
}

// state is the in-memory model. Teacher.AssignedGrades and
// Grade.AssignedSubjects are always empty here; the relations live in the
// two derived collections and are embedded only when saving.
type state struct {
	snap          *store.Snapshot
	teacherGrades *collection.Collection[[]string]
	gradeSubjects *collection.Collection[[]string]
}

func newState() *state {
	return &state{
		snap:          store.NewSnapshot(),
		teacherGrades: collection.New[[]string](),
		gradeSubjects: collection.New[[]string](),
	}
}

func (st *state) clone() *state {
	return &state{
		snap:          st.snap.Clone(),
		teacherGrades: st.teacherGrades.Clone(slices.Clone[[]string]),
		gradeSubjects: st.gradeSubjects.Clone(slices.Clone[[]string]),
	}
}

// NewSchoolRepository creates a repository with empty state. Call Load to
// read the persisted collections.
func NewSchoolRepository(s store.Store, policy model.SubjectDeletePolicy, log zerolog.Logger) *SchoolRepository {
	return &SchoolRepository{
		store:  s,
		state:  newState(),
		policy: policy,
		log:    log.With().Str("component", "school_repository").Logger(),
	}
}

// Load replaces the in-memory state with the stored snapshot. When the store
// fails or holds malformed data the state is reset to empty and a LoadFailed
// error is returned; the repository stays usable.
func (r *SchoolRepository) Load(ctx context.Context) error {
	snap, err := r.store.Load(ctx)
	if err != nil {
		r.state = newState()
		r.log.Warn().Err(err).Msg("load failed, starting with empty records")
		return response.LoadFailed(err)
	}
	r.state = stateFromSnapshot(snap, r.policy)
	r.log.Debug().
		Int("students", snap.Students.Len()).
		Int("teachers", snap.Teachers.Len()).
		Int("subjects", snap.Subjects.Len()).
		Int("grades", snap.Grades.Len()).
		Msg("records loaded")
	return nil
}

// Save writes the current state to the store.
func (r *SchoolRepository) Save(ctx context.Context) error {
	if err := r.store.Save(ctx, r.state.toSnapshot()); err != nil {
		r.log.Error().Err(err).Msg("save failed")
		return response.Persistence(err)
	}
	return nil
}

// mutate applies fn to a clone of the state and commits it on success. A
// failed save keeps the committed state and returns a Persistence error.
func (r *SchoolRepository) mutate(ctx context.Context, op string, fn func(st *state) error) error {
	next := r.state.clone()
	if err := fn(next); err != nil {
		r.log.Debug().Err(err).Str("op", op).Msg("mutation rejected")
		return err
	}
	r.state = next
	r.log.Debug().Str("op", op).Msg("mutation committed")
	return r.Save(ctx)
}

// stateFromSnapshot moves the embedded relation lists into the derived
// collections, dropping grade ids that no longer resolve. Unknown subject ids
// are dropped only under the cascade policy; permissive deletes leave them in
// place, like teacher subject_ids.
func stateFromSnapshot(snap *store.Snapshot, policy model.SubjectDeletePolicy) *state {
	st := &state{
		snap:          snap,
		teacherGrades: collection.New[[]string](),
		gradeSubjects: collection.New[[]string](),
	}
	for _, id := range snap.Teachers.IDs() {
		t, _ := snap.Teachers.Get(id)
		if valid, _ := partition(t.AssignedGrades, snap.Grades.Has); len(valid) > 0 {
			st.teacherGrades.Set(id, valid)
		}
		t.AssignedGrades = nil
		snap.Teachers.Set(id, t)
	}
	subjectKnown := snap.Subjects.Has
	if policy != model.SubjectDeleteCascade {
		subjectKnown = func(string) bool { return true }
	}
	for _, id := range snap.Grades.IDs() {
		g, _ := snap.Grades.Get(id)
		if valid, _ := partition(g.AssignedSubjects, subjectKnown); len(valid) > 0 {
			st.gradeSubjects.Set(id, valid)
		}
		g.AssignedSubjects = nil
		snap.Grades.Set(id, g)
	}
	for id, rec := range snap.Scores.All() {
		if rec == nil {
			snap.Scores.Set(id, collection.New[int]())
		}
	}
	return st
}

// toSnapshot returns a copy of the state with relations embedded.
func (st *state) toSnapshot() *store.Snapshot {
	snap := st.snap.Clone()
	for id, grades := range st.teacherGrades.All() {
		if t, ok := snap.Teachers.Get(id); ok {
			t.AssignedGrades = slices.Clone(grades)
			snap.Teachers.Set(id, t)
		}
	}
	for id, subjects := range st.gradeSubjects.All() {
		if g, ok := snap.Grades.Get(id); ok {
			g.AssignedSubjects = slices.Clone(subjects)
			snap.Grades.Set(id, g)
		}
	}
	return snap
}

// partition trims ids, drops blanks and duplicates, and splits them into those
// accepted by exists and the rest. Order is kept.
func partition(ids []string, exists func(string) bool) (valid, invalid []string) {
	valid = make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		if exists(id) {
			valid = append(valid, id)
		} else {
			invalid = append(invalid, id)
		}
	}
	return valid, invalid
}

// removeFrom deletes value from every list in c, dropping lists that become
// empty.
func removeFrom(c *collection.Collection[[]string], value string) {
	for _, id := range c.IDs() {
		list, _ := c.Get(id)
		i := slices.Index(list, value)
		if i < 0 {
			continue
		}
		list = slices.Delete(list, i, i+1)
		if len(list) == 0 {
			c.Delete(id)
			continue
		}
		c.Set(id, list)
	}
}

// Summary returns the size of each collection.
func (r *SchoolRepository) Summary(_ context.Context) model.Summary {
	return model.Summary{
		Students: r.state.snap.Students.Len(),
		Teachers: r.state.snap.Teachers.Len(),
		Subjects: r.state.snap.Subjects.Len(),
		Grades:   r.state.snap.Grades.Len(),
	}
}

// Snapshot returns a copy of the state in its persisted form.
func (r *SchoolRepository) Snapshot(_ context.Context) *store.Snapshot {
	return r.state.toSnapshot()
}

// Package store persists the six school collections as one snapshot.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/stemsi/school-records/internal/collection"
	"github.com/stemsi/school-records/internal/model"
)

// Collection names, also used as file stems, Redis key suffixes and table rows.
const (
	Students    = "students"
	Teachers    = "teachers"
	Subjects    = "subjects"
	Grades      = "grades"
	Enrollments = "enrollments"
	Scores      = "scores"
)

// Names lists the collections in save order.
var Names = []string{Students, Teachers, Subjects, Grades, Enrollments, Scores}

// ScoreRecord maps subject ids to scores for a single student.
type ScoreRecord = collection.Collection[int]

// Store loads and saves whole snapshots.
//
// Load treats a missing collection as empty and fails on a malformed one.
type Store interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, s *Snapshot) error
}

// Snapshot is the serialisable state of every collection.
type Snapshot struct {
	Students    *collection.Collection[model.Student]
	Teachers    *collection.Collection[model.Teacher]
	Subjects    *collection.Collection[model.Subject]
	Grades      *collection.Collection[model.Grade]
	Enrollments *collection.Collection[[]string]
	Scores      *collection.Collection[*ScoreRecord]
}

// NewSnapshot returns a snapshot with every collection empty.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Students:    collection.New[model.Student](),
		Teachers:    collection.New[model.Teacher](),
		Subjects:    collection.New[model.Subject](),
		Grades:      collection.New[model.Grade](),
		Enrollments: collection.New[[]string](),
		Scores:      collection.New[*ScoreRecord](),
	}
}

// Clone returns a deep copy.
func (s *Snapshot) Clone() *Snapshot {
	return &Snapshot{
		Students:    s.Students.Clone(CloneStudent),
		Teachers:    s.Teachers.Clone(CloneTeacher),
		Subjects:    s.Subjects.Clone(nil),
		Grades:      s.Grades.Clone(CloneGrade),
		Enrollments: s.Enrollments.Clone(slices.Clone[[]string]),
		Scores: s.Scores.Clone(func(r *ScoreRecord) *ScoreRecord {
			return r.Clone(nil)
		}),
	}
}

type codec interface {
	json.Marshaler
	json.Unmarshaler
}

func (s *Snapshot) codecs() map[string]codec {
	return map[string]codec{
		Students:    s.Students,
		Teachers:    s.Teachers,
		Subjects:    s.Subjects,
		Grades:      s.Grades,
		Enrollments: s.Enrollments,
		Scores:      s.Scores,
	}
}

// Encode renders one collection as a 4-space indented JSON object in
// insertion order.
func (s *Snapshot) Encode(name string) ([]byte, error) {
	c, ok := s.codecs()[name]
	if !ok {
		return nil, fmt.Errorf("unknown collection %q", name)
	}
	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", name, err)
	}
	return data, nil
}

// Decode replaces one collection with the contents of data.
func (s *Snapshot) Decode(name string, data []byte) error {
	c, ok := s.codecs()[name]
	if !ok {
		return fmt.Errorf("unknown collection %q", name)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// EncodeAll renders every collection, keyed by name.
func (s *Snapshot) EncodeAll() (map[string][]byte, error) {
	out := make(map[string][]byte, len(Names))
	for _, name := range Names {
		data, err := s.Encode(name)
		if err != nil {
			return nil, err
		}
		out[name] = data
	}
	return out, nil
}

// DecodeAll builds a snapshot from raw collections. Missing names stay empty.
func DecodeAll(raw map[string][]byte) (*Snapshot, error) {
	s := NewSnapshot()
	for _, name := range slices.Sorted(maps.Keys(raw)) {
		if err := s.Decode(name, raw[name]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// CloneStudent copies the grade pointer.
func CloneStudent(st model.Student) model.Student {
	if st.GradeID != nil {
		g := *st.GradeID
		st.GradeID = &g
	}
	return st
}

// CloneTeacher copies the id slices.
func CloneTeacher(t model.Teacher) model.Teacher {
	t.SubjectIDs = slices.Clone(t.SubjectIDs)
	t.AssignedGrades = slices.Clone(t.AssignedGrades)
	return t
}

// CloneGrade copies the subject slice.
func CloneGrade(g model.Grade) model.Grade {
	g.AssignedSubjects = slices.Clone(g.AssignedSubjects)
	return g
}

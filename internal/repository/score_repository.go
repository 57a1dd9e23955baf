package repository

import (
	"context"
	"iter"

	"github.com/stemsi/school-records/internal/collection"
	"github.com/stemsi/school-records/internal/model"
	"github.com/stemsi/school-records/internal/response"
)

// SetScore records a score for a student in a subject, replacing any previous
// value.
func (r *SchoolRepository) SetScore(ctx context.Context, studentID, subjectID string, score int) error {
	return r.mutate(ctx, "set_score", func(st *state) error {
		if !st.snap.Students.Has(studentID) {
			return response.NotFound(EntityStudent, studentID)
		}
		if !st.snap.Subjects.Has(subjectID) {
			return response.NotFound(EntitySubject, subjectID)
		}
		if score < model.MinScore || score > model.MaxScore {
			return response.OutOfRange(score)
		}
		rec, ok := st.snap.Scores.Get(studentID)
		if !ok {
			rec = collection.New[int]()
			st.snap.Scores.Set(studentID, rec)
		}
		rec.Set(subjectID, score)
		return nil
	})
}

// Scores yields a student's subject scores in the order they were first set.
// A student without scores yields nothing.
func (r *SchoolRepository) Scores(_ context.Context, studentID string) (iter.Seq2[string, int], error) {
	if !r.state.snap.Students.Has(studentID) {
		return nil, response.NotFound(EntityStudent, studentID)
	}
	rec, _ := r.state.snap.Scores.Get(studentID)
	return rec.Clone(nil).All(), nil
}

// Average returns the mean of a student's scores; ok is false when there are none.
func (r *SchoolRepository) Average(ctx context.Context, studentID string) (avg float64, ok bool, err error) {
	scores, err := r.Scores(ctx, studentID)
	if err != nil {
		return 0, false, err
	}
	total, n := 0, 0
	for _, v := range scores {
		total += v
		n++
	}
	if n == 0 {
		return 0, false, nil
	}
	return float64(total) / float64(n), true, nil
}

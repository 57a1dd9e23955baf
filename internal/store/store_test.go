package store

import (
	"testing"

	"github.com/stemsi/school-records/internal/collection"
	"github.com/stemsi/school-records/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

// sampleSnapshot builds a small state whose ids are deliberately not sorted.
func sampleSnapshot() *Snapshot {
	s := NewSnapshot()
	s.Grades.Set("10", model.Grade{ID: "10", Name: "Grade 10", AssignedSubjects: []string{"101"}})
	s.Grades.Set("9", model.Grade{ID: "9", Name: "Grade 9"})
	s.Subjects.Set("101", model.Subject{ID: "101", Name: "Math"})
	s.Subjects.Set("100", model.Subject{ID: "100", Name: "Art"})
	s.Teachers.Set("7", model.Teacher{ID: "7", Name: "Ms. Ada", Qualification: "MSc", SubjectIDs: []string{"101"}, Phone: "555", AssignedGrades: []string{"10"}})
	s.Students.Set("5001", model.Student{ID: "5001", Name: "Ann", GradeID: ptr("10"), DateOfBirth: "2010-01-01", Gender: model.GenderFemale, Phone: "1"})
	s.Students.Set("42", model.Student{ID: "42", Name: "Bob", DateOfBirth: "2011-02-02", Gender: model.GenderMale, Phone: "2"})
	s.Enrollments.Set("5001", []string{"9", "10"})
	rec := collection.New[int]()
	rec.Set("101", 92)
	rec.Set("100", 70)
	s.Scores.Set("5001", rec)
	return s
}

func TestSnapshot_EncodeUsesOriginalKeysAndIndent(t *testing.T) {
	data, err := sampleSnapshot().Encode(Students)
	require.NoError(t, err)

	want := `{
    "5001": {
        "id": "5001",
        "name": "Ann",
        "grade_id": "10",
        "dob": "2010-01-01",
        "gender": "F",
        "phone": "1"
    },
    "42": {
        "id": "42",
        "name": "Bob",
        "grade_id": null,
        "dob": "2011-02-02",
        "gender": "M",
        "phone": "2"
    }
}`
	assert.Equal(t, want, string(data))
}

func TestSnapshot_RoundTripKeepsOrder(t *testing.T) {
	src := sampleSnapshot()
	raw, err := src.EncodeAll()
	require.NoError(t, err)
	assert.Len(t, raw, len(Names))

	got, err := DecodeAll(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"5001", "42"}, got.Students.IDs())
	assert.Equal(t, []string{"10", "9"}, got.Grades.IDs())
	assert.Equal(t, []string{"101", "100"}, got.Subjects.IDs())

	rec, ok := got.Scores.Get("5001")
	require.True(t, ok)
	assert.Equal(t, []string{"101", "100"}, rec.IDs())

	history, _ := got.Enrollments.Get("5001")
	assert.Equal(t, []string{"9", "10"}, history)

	teacher, _ := got.Teachers.Get("7")
	assert.Equal(t, []string{"10"}, teacher.AssignedGrades)

	again, err := got.EncodeAll()
	require.NoError(t, err)
	assert.Equal(t, raw, again)
}

func TestSnapshot_CloneIsDeep(t *testing.T) {
	src := sampleSnapshot()
	cp := src.Clone()

	st, _ := cp.Students.Get("5001")
	*st.GradeID = "9"
	rec, _ := cp.Scores.Get("5001")
	rec.Set("101", 10)
	h, _ := cp.Enrollments.Get("5001")
	h[0] = "x"
	cp.Grades.Delete("9")

	orig, _ := src.Students.Get("5001")
	assert.Equal(t, "10", *orig.GradeID)
	origRec, _ := src.Scores.Get("5001")
	score, _ := origRec.Get("101")
	assert.Equal(t, 92, score)
	origHistory, _ := src.Enrollments.Get("5001")
	assert.Equal(t, "9", origHistory[0])
	assert.True(t, src.Grades.Has("9"))
}

func TestDecodeAll_Malformed(t *testing.T) {
	_, err := DecodeAll(map[string][]byte{Students: []byte(`[1,2]`)})
	assert.ErrorContains(t, err, "decode students")

	_, err = DecodeAll(map[string][]byte{Scores: []byte(`{"1": {"101": "high"}}`)})
	assert.Error(t, err)
}

func TestSnapshot_UnknownCollection(t *testing.T) {
	_, err := NewSnapshot().Encode("parents")
	assert.Error(t, err)
	assert.Error(t, NewSnapshot().Decode("parents", []byte(`{}`)))
}

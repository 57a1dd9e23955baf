package model

const (
	MinScore = 0
	MaxScore = 100

	// Placeholder scores on report cards are drawn from this range.
	MinPlaceholderScore = 50
	MaxPlaceholderScore = 100
)

// LetterGrade maps a score or an average to a letter.
func LetterGrade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// ScoreLine is one subject score with its letter grade.
type ScoreLine struct {
	SubjectID   string `json:"subject_id"`
	SubjectName string `json:"subject_name"`
	Score       int    `json:"score"`
	Letter      string `json:"letter"`
}

// ScoreSheet is every recorded score of one student.
type ScoreSheet struct {
	StudentID   string      `json:"student_id"`
	StudentName string      `json:"student_name"`
	Lines       []ScoreLine `json:"lines"`
	Average     float64     `json:"average"`
	HasAverage  bool        `json:"has_average"`
}

// ReportCard is the printable summary of a student's results.
// Placeholder marks cards whose lines were synthesized rather than recorded.
type ReportCard struct {
	Student       Student     `json:"student"`
	GradeName     string      `json:"grade_name"`
	Lines         []ScoreLine `json:"lines"`
	Average       float64     `json:"average"`
	HasAverage    bool        `json:"has_average"`
	AverageLetter string      `json:"average_letter"`
	Placeholder   bool        `json:"placeholder"`
}

// GradeScores groups the recorded scores of the students currently in a grade.
type GradeScores struct {
	Grade Grade             `json:"grade"`
	Rows  []StudentScoreRow `json:"rows"`
	// HasStudents is false when nobody is currently in the grade.
	HasStudents bool `json:"has_students"`
}

// StudentScoreRow is a flattened score used in per-grade listings.
type StudentScoreRow struct {
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	SubjectName string `json:"subject_name"`
	Score       int    `json:"score"`
}

// Summary holds the size of each top-level collection.
type Summary struct {
	Students int `json:"students"`
	Teachers int `json:"teachers"`
	Subjects int `json:"subjects"`
	Grades   int `json:"grades"`
}

package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/school-records/internal/model"
	"github.com/stemsi/school-records/internal/repository"
)

// ScoreService handles score recording and listings.
type ScoreService struct {
	repo *repository.SchoolRepository
	log  zerolog.Logger
}

// NewScoreService creates a new ScoreService.
func NewScoreService(repo *repository.SchoolRepository, log zerolog.Logger) *ScoreService {
	return &ScoreService{
		repo: repo,
		log:  log.With().Str("component", "score_service").Logger(),
	}
}

// SetScore records or replaces a score.
func (s *ScoreService) SetScore(ctx context.Context, studentID, subjectID string, score int) error {
	studentID, subjectID = strings.TrimSpace(studentID), strings.TrimSpace(subjectID)
	if err := s.repo.SetScore(ctx, studentID, subjectID, score); err != nil {
		return err
	}
	s.log.Debug().Str("student_id", studentID).Str("subject_id", subjectID).Int("score", score).Msg("score recorded")
	return nil
}

// Average returns the mean score; ok is false when nothing is recorded.
func (s *ScoreService) Average(ctx context.Context, studentID string) (avg float64, ok bool, err error) {
	return s.repo.Average(ctx, strings.TrimSpace(studentID))
}

// StudentScores lists one student's scores with the average.
func (s *ScoreService) StudentScores(ctx context.Context, studentID string) (model.ScoreSheet, error) {
	student, err := s.repo.GetStudent(ctx, strings.TrimSpace(studentID))
	if err != nil {
		return model.ScoreSheet{}, err
	}
	return s.sheet(ctx, student)
}

// AllScores lists every student's scores in insertion order.
func (s *ScoreService) AllScores(ctx context.Context) ([]model.ScoreSheet, error) {
	var sheets []model.ScoreSheet
	for student := range s.repo.ListStudents(ctx) {
		sheet, err := s.sheet(ctx, student)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

func (s *ScoreService) sheet(ctx context.Context, student model.Student) (model.ScoreSheet, error) {
	sheet := model.ScoreSheet{StudentID: student.ID, StudentName: student.Name}
	scores, err := s.repo.Scores(ctx, student.ID)
	if err != nil {
		return sheet, err
	}
	for subjectID, score := range scores {
		sheet.Lines = append(sheet.Lines, model.ScoreLine{
			SubjectID:   subjectID,
			SubjectName: subjectName(ctx, s.repo, subjectID),
			Score:       score,
			Letter:      model.LetterGrade(float64(score)),
		})
	}
	sheet.Average, sheet.HasAverage = average(sheet.Lines)
	return sheet, nil
}

// TeacherGradeScores lists, for each grade assigned to the teacher, the
// scores of the students currently in it.
func (s *ScoreService) TeacherGradeScores(ctx context.Context, teacherID string) ([]model.GradeScores, error) {
	teacher, err := s.repo.GetTeacher(ctx, strings.TrimSpace(teacherID))
	if err != nil {
		return nil, err
	}

	var out []model.GradeScores
	for _, gradeID := range s.repo.TeacherGrades(ctx, teacher.ID) {
		grade, err := s.repo.GetGrade(ctx, gradeID)
		if err != nil {
			continue
		}
		gs := model.GradeScores{Grade: grade}
		for student := range s.repo.ListStudents(ctx) {
			if student.CurrentGrade() != gradeID {
				continue
			}
			gs.HasStudents = true
			scores, err := s.repo.Scores(ctx, student.ID)
			if err != nil {
				return nil, err
			}
			for subjectID, score := range scores {
				gs.Rows = append(gs.Rows, model.StudentScoreRow{
					StudentID:   student.ID,
					StudentName: student.Name,
					SubjectName: subjectName(ctx, s.repo, subjectID),
					Score:       score,
				})
			}
		}
		out = append(out, gs)
	}
	return out, nil
}

func average(lines []model.ScoreLine) (float64, bool) {
	if len(lines) == 0 {
		return 0, false
	}
	total := 0
	for _, l := range lines {
		total += l.Score
	}
	return float64(total) / float64(len(lines)), true
}

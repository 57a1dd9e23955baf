package service

import (
	"context"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/school-records/internal/model"
	"github.com/stemsi/school-records/internal/repository"
)

// NotAvailable is shown where a grade or assignment is missing.
const NotAvailable = "N/A"

// ReportService builds read-only reports. It never writes to the repository.
type ReportService struct {
	repo *repository.SchoolRepository
	rng  *rand.Rand
	log  zerolog.Logger
}

// NewReportService creates a new ReportService. rng supplies placeholder
// report card scores.
func NewReportService(repo *repository.SchoolRepository, rng *rand.Rand, log zerolog.Logger) *ReportService {
	return &ReportService{
		repo: repo,
		rng:  rng,
		log:  log.With().Str("component", "report_service").Logger(),
	}
}

// NewPlaceholderRand returns a deterministic source for a non-zero seed and a
// time-seeded one otherwise.
func NewPlaceholderRand(seed int64) *rand.Rand {
	s := uint64(seed)
	if seed == 0 {
		s = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// PlaceholderScores draws one score per subject uniformly from
// [MinPlaceholderScore, MaxPlaceholderScore].
func PlaceholderScores(subjectIDs []string, rng *rand.Rand) []int {
	scores := make([]int, len(subjectIDs))
	span := model.MaxPlaceholderScore - model.MinPlaceholderScore + 1
	for i := range subjectIDs {
		scores[i] = model.MinPlaceholderScore + rng.IntN(span)
	}
	return scores
}

// Summary counts the records of each kind.
func (s *ReportService) Summary(ctx context.Context) model.Summary {
	return s.repo.Summary(ctx)
}

// StudentsByGrade lists every grade with the sorted names of its current students.
func (s *ReportService) StudentsByGrade(ctx context.Context) []model.GradeRoster {
	var rosters []model.GradeRoster
	for grade := range s.repo.ListGrades(ctx) {
		roster := model.GradeRoster{Grade: grade, StudentNames: []string{}}
		for student := range s.repo.ListStudents(ctx) {
			if student.CurrentGrade() == grade.ID {
				roster.StudentNames = append(roster.StudentNames, student.Name)
			}
		}
		slices.Sort(roster.StudentNames)
		rosters = append(rosters, roster)
	}
	return rosters
}

// ReportCard builds a student's report card. When the student has no scores
// but their grade has assigned subjects, placeholder scores are generated for
// display only and the card is marked as such.
func (s *ReportService) ReportCard(ctx context.Context, studentID string) (model.ReportCard, error) {
	student, err := s.repo.GetStudent(ctx, strings.TrimSpace(studentID))
	if err != nil {
		return model.ReportCard{}, err
	}

	card := model.ReportCard{
		Student:   student,
		GradeName: gradeName(ctx, s.repo, student.CurrentGrade(), NotAvailable),
	}

	scores, err := s.repo.Scores(ctx, student.ID)
	if err != nil {
		return model.ReportCard{}, err
	}
	for subjectID, score := range scores {
		card.Lines = append(card.Lines, s.line(ctx, subjectID, score))
	}

	if len(card.Lines) == 0 && student.CurrentGrade() != "" {
		subjectIDs := s.repo.GradeSubjects(ctx, student.CurrentGrade())
		if len(subjectIDs) > 0 {
			for i, score := range PlaceholderScores(subjectIDs, s.rng) {
				card.Lines = append(card.Lines, s.line(ctx, subjectIDs[i], score))
			}
			card.Placeholder = true
			s.log.Debug().Str("student_id", student.ID).Msg("report card uses placeholder scores")
		}
	}

	card.Average, card.HasAverage = average(card.Lines)
	if card.HasAverage {
		card.AverageLetter = model.LetterGrade(card.Average)
	}
	return card, nil
}

func (s *ReportService) line(ctx context.Context, subjectID string, score int) model.ScoreLine {
	return model.ScoreLine{
		SubjectID:   subjectID,
		SubjectName: subjectName(ctx, s.repo, subjectID),
		Score:       score,
		Letter:      model.LetterGrade(float64(score)),
	}
}

// TeacherOverview lists teachers with resolved subject and grade names.
func (s *ReportService) TeacherOverview(ctx context.Context) []model.TeacherOverview {
	var out []model.TeacherOverview
	for teacher := range s.repo.ListTeachers(ctx) {
		ov := model.TeacherOverview{Teacher: teacher, SubjectNames: []string{}, GradeNames: []string{}}
		for _, id := range teacher.SubjectIDs {
			ov.SubjectNames = append(ov.SubjectNames, subjectName(ctx, s.repo, id))
		}
		for _, id := range s.repo.TeacherGrades(ctx, teacher.ID) {
			ov.GradeNames = append(ov.GradeNames, gradeName(ctx, s.repo, id, id))
		}
		out = append(out, ov)
	}
	return out
}

// SubjectOverview lists subjects with the names of grades they are assigned
// to, or N/A when unassigned.
func (s *ReportService) SubjectOverview(ctx context.Context) []model.SubjectOverview {
	var out []model.SubjectOverview
	for subject := range s.repo.ListSubjects(ctx) {
		ov := model.SubjectOverview{Subject: subject}
		for grade := range s.repo.ListGrades(ctx) {
			if slices.Contains(s.repo.GradeSubjects(ctx, grade.ID), subject.ID) {
				ov.GradeNames = append(ov.GradeNames, grade.Name)
			}
		}
		if len(ov.GradeNames) == 0 {
			ov.GradeNames = []string{NotAvailable}
		}
		out = append(out, ov)
	}
	return out
}

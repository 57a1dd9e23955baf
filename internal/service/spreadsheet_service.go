package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/school-records/internal/model"
	"github.com/stemsi/school-records/internal/response"
	"github.com/xuri/excelize/v2"
)

// Sheet names written by ExportWorkbook.
const (
	SheetSummary  = "Summary"
	SheetStudents = "Students"
	SheetRoster   = "Roster"
	SheetScores   = "Scores"
)

// ImportResult reports how many rows were added and why others were skipped.
type ImportResult struct {
	Imported int
	Notices  []string
}

// SpreadsheetService imports students from and exports reports to xlsx workbooks.
type SpreadsheetService struct {
	students *StudentService
	scores   *ScoreService
	reports  *ReportService
	log      zerolog.Logger
}

// NewSpreadsheetService creates a new SpreadsheetService.
func NewSpreadsheetService(students *StudentService, scores *ScoreService, reports *ReportService, log zerolog.Logger) *SpreadsheetService {
	return &SpreadsheetService{
		students: students,
		scores:   scores,
		reports:  reports,
		log:      log.With().Str("component", "spreadsheet_service").Logger(),
	}
}

// ImportStudents reads the first sheet of an xlsx workbook. Row 1 is a header;
// columns A-E hold id, name, dob, gender and phone. Each row goes through the
// normal create path, enrolling into gradeID when it is not empty.
func (s *SpreadsheetService) ImportStudents(ctx context.Context, r io.Reader, gradeID string) (ImportResult, error) {
	var res ImportResult

	f, err := excelize.OpenReader(r)
	if err != nil {
		return res, fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			s.log.Warn().Err(err).Msg("close workbook")
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return res, errors.New("workbook does not contain any sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return res, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	for i, row := range rows {
		if i == 0 {
			continue
		}
		cell := func(col int) string {
			if col < len(row) {
				return strings.TrimSpace(row[col])
			}
			return ""
		}
		req := model.CreateStudentRequest{
			ID:          cell(0),
			Name:        cell(1),
			DateOfBirth: cell(2),
			Gender:      cell(3),
			Phone:       cell(4),
			GradeID:     gradeID,
		}
		if req.ID == "" && req.Name == "" {
			continue
		}
		if req.ID == "" || req.Name == "" {
			res.Notices = append(res.Notices, fmt.Sprintf("row %d: missing id or name, skipped", i+1))
			continue
		}

		created, err := s.students.Create(ctx, req)
		switch response.CodeOf(err) {
		case "":
		case response.ErrPersistence:
			res.Imported++
			return res, err
		default:
			res.Notices = append(res.Notices, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		res.Imported++
		for _, n := range created.Notices {
			res.Notices = append(res.Notices, fmt.Sprintf("row %d: %s", i+1, n))
		}
	}

	s.log.Info().Int("imported", res.Imported).Int("notices", len(res.Notices)).Msg("students imported")
	return res, nil
}

// ExportWorkbook writes the Summary, Students, Roster and Scores sheets to w.
func (s *SpreadsheetService) ExportWorkbook(ctx context.Context, w io.Writer) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.log.Warn().Err(err).Msg("close workbook")
		}
	}()

	// The default sheet becomes Summary so the workbook has no empty first tab.
	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return err
	}
	for _, name := range []string{SheetStudents, SheetRoster, SheetScores} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	summary := s.reports.Summary(ctx)
	if err := writeRows(f, SheetSummary, []string{"Entity", "Count"}, [][]any{
		{"Students", summary.Students},
		{"Teachers", summary.Teachers},
		{"Subjects", summary.Subjects},
		{"Grades/Classes", summary.Grades},
	}); err != nil {
		return err
	}

	var students [][]any
	for st := range s.students.List(ctx) {
		students = append(students, []any{st.ID, st.Name, st.CurrentGrade(), st.DateOfBirth, string(st.Gender), st.Phone})
	}
	if err := writeRows(f, SheetStudents, []string{"ID", "Name", "Grade ID", "DOB", "Gender", "Phone"}, students); err != nil {
		return err
	}

	var roster [][]any
	for _, r := range s.reports.StudentsByGrade(ctx) {
		roster = append(roster, []any{r.Grade.ID, r.Grade.Name, len(r.StudentNames), strings.Join(r.StudentNames, ", ")})
	}
	if err := writeRows(f, SheetRoster, []string{"Grade ID", "Grade", "Total", "Students"}, roster); err != nil {
		return err
	}

	sheets, err := s.scores.AllScores(ctx)
	if err != nil {
		return err
	}
	var scores [][]any
	for _, sh := range sheets {
		for _, l := range sh.Lines {
			scores = append(scores, []any{sh.StudentID, sh.StudentName, l.SubjectName, l.Score, l.Letter})
		}
	}
	if err := writeRows(f, SheetScores, []string{"Student ID", "Student", "Subject", "Score", "Grade"}, scores); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, headers []string, rows [][]any) error {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("%s header: %w", sheet, err)
		}
	}
	for r, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, r+2, err)
		}
	}
	return nil
}

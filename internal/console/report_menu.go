package console

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

func (c *Console) reportMenu(ctx context.Context) {
	c.runMenu(ctx, "Reports and Summaries Menu", []menuItem{
		{"View Total Students, Teachers, and Subjects (Summary)", c.viewSummary},
		{"Generate List of Students by Grade", c.viewStudentsByGrade},
		{"Generate Student Report Card (with placeholder scores if none exist)", c.viewReportCard},
		{"Export Workbook (.xlsx)", c.exportWorkbook},
	}, "Return to Main Menu")
}

func (c *Console) viewSummary(ctx context.Context) {
	s := c.svc.Reports.Summary(ctx)
	c.heading("\n---System Summary ---")
	c.table([]string{"Entity", "Count"}, [][]string{
		{"Students", strconv.Itoa(s.Students)},
		{"Teachers", strconv.Itoa(s.Teachers)},
		{"Subjects", strconv.Itoa(s.Subjects)},
		{"Grades/Classes", strconv.Itoa(s.Grades)},
	})
}

func (c *Console) viewStudentsByGrade(ctx context.Context) {
	c.heading("\n---Students by Grade Report ---")
	rosters := c.svc.Reports.StudentsByGrade(ctx)
	if len(rosters) == 0 {
		c.say("No grades registered to generate report.")
		return
	}
	for _, r := range rosters {
		c.say(fmt.Sprintf("\n%s (ID: %s) - Total: %d Students", r.Grade.Name, r.Grade.ID, len(r.StudentNames)))
		if len(r.StudentNames) == 0 {
			c.say("No students currently enrolled.")
			continue
		}
		c.say(strings.Join(r.StudentNames, ", "))
	}
}

func (c *Console) viewReportCard(ctx context.Context) {
	studentID, ok := c.askID("\nEnter Student ID for Report Card: ")
	if !ok {
		return
	}
	card, err := c.svc.Reports.ReportCard(ctx, studentID)
	if err != nil {
		c.fail(err)
		return
	}

	rule := strings.Repeat("=", 50)
	c.say("\n" + rule)
	c.heading("       REPORT CARD - " + strings.ToUpper(card.Student.Name))
	c.say(rule)
	c.say(fmt.Sprintf("ID: %-10s | Grade: %s", card.Student.ID, card.GradeName))
	c.say(fmt.Sprintf("DOB: %-8s | Phone: %s", card.Student.DateOfBirth, card.Student.Phone))
	c.say(strings.Repeat("-", 50))
	if card.Placeholder {
		c.say("No scores found. Showing PLACEHOLDER scores (not saved).")
	}

	rows := make([][]string, 0, len(card.Lines)+1)
	for _, l := range card.Lines {
		rows = append(rows, []string{l.SubjectName, strconv.Itoa(l.Score), l.Letter})
	}
	if card.HasAverage {
		rows = append(rows, []string{"TOTAL AVERAGE", fmt.Sprintf("%.2f", card.Average), card.AverageLetter})
	}
	c.table([]string{"SUBJECT", "SCORE (0-100)", "GRADE"}, rows)
	if !card.HasAverage {
		c.say("No subjects or scores available.")
	}
	c.say(rule)
}

func (c *Console) exportWorkbook(ctx context.Context) {
	if err := os.MkdirAll(c.exportDir, 0o755); err != nil {
		c.fail(err)
		return
	}
	path := filepath.Join(c.exportDir, fmt.Sprintf("school_report_%s.xlsx", time.Now().Format("20060102_150405")))
	f, err := os.Create(path)
	if err != nil {
		c.fail(err)
		return
	}

	err = c.svc.Sheets.ExportWorkbook(ctx, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		c.fail(err)
		return
	}
	c.log.Info().Str("path", path).Msg("workbook exported")
	c.say("Workbook exported to " + path)
}

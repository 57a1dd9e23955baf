package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/stemsi/school-records/internal/model"
)

func (c *Console) scoreMenu(ctx context.Context) {
	c.runMenu(ctx, "Score Management Menu", []menuItem{
		{"Add/Update Student Score", c.setScore},
		{"View All Scores (All Students)", c.viewAllScores},
		{"View Scores for a Single Student", c.viewStudentScores},
		{"View All Scores for a Given Teacher's Assigned Grades", c.viewTeacherScores},
	}, "Return to Main Menu")
}

func (c *Console) setScore(ctx context.Context) {
	c.heading("\n---Add/Update Student Score ---")
	studentID, ok := c.askID("Enter Student ID: ")
	if !ok {
		return
	}
	if _, err := c.svc.Students.GetByID(ctx, studentID); err != nil {
		c.fail(err)
		return
	}
	c.viewSubjects(ctx)
	subjectID, ok := c.askID("Enter Subject ID for Score: ")
	if !ok {
		return
	}
	subject, err := c.svc.Subjects.GetByID(ctx, subjectID)
	if err != nil {
		c.fail(err)
		return
	}
	raw, ok := c.askValid("Enter Score (0-100): ", func(v string) string {
		n, err := strconv.Atoi(v)
		if err != nil || n < model.MinScore || n > model.MaxScore {
			return "Score must be a number between 0 and 100."
		}
		return ""
	})
	if !ok {
		return
	}
	score, _ := strconv.Atoi(raw)

	if !c.committed(c.svc.Scores.SetScore(ctx, studentID, subjectID, score)) {
		return
	}
	c.say(fmt.Sprintf("Score %d recorded for Student %s in %s.", score, studentID, subject.Name))
}

func (c *Console) printSheet(sheet model.ScoreSheet) {
	rows := make([][]string, 0, len(sheet.Lines)+1)
	for _, l := range sheet.Lines {
		rows = append(rows, []string{l.SubjectName, strconv.Itoa(l.Score)})
	}
	if sheet.HasAverage {
		rows = append(rows, []string{"Average Score", fmt.Sprintf("%.2f", sheet.Average)})
	}
	c.table([]string{"Subject", "Score"}, rows)
}

func (c *Console) viewAllScores(ctx context.Context) {
	c.heading("\n---All Scores for All Students ---")
	sheets, err := c.svc.Scores.AllScores(ctx)
	if err != nil {
		c.fail(err)
		return
	}
	printed := 0
	for _, sheet := range sheets {
		if len(sheet.Lines) == 0 {
			continue
		}
		printed++
		c.say(fmt.Sprintf("\nStudent: %s (ID: %s)", sheet.StudentName, sheet.StudentID))
		c.printSheet(sheet)
	}
	if printed == 0 {
		c.say("No scores recorded.")
	}
}

func (c *Console) viewStudentScores(ctx context.Context) {
	studentID, ok := c.askID("\nEnter Student ID to view scores: ")
	if !ok {
		return
	}
	sheet, err := c.svc.Scores.StudentScores(ctx, studentID)
	if err != nil {
		c.fail(err)
		return
	}
	c.heading(fmt.Sprintf("\n---Scores for %s (ID: %s) ---", sheet.StudentName, sheet.StudentID))
	if len(sheet.Lines) == 0 {
		c.say("No scores recorded for this student.")
		return
	}
	c.printSheet(sheet)
}

func (c *Console) viewTeacherScores(ctx context.Context) {
	teacherID, ok := c.askID("\nEnter Teacher ID to view scores in assigned grades: ")
	if !ok {
		return
	}
	teacher, err := c.svc.Teachers.GetByID(ctx, teacherID)
	if err != nil {
		c.fail(err)
		return
	}
	grades, err := c.svc.Scores.TeacherGradeScores(ctx, teacherID)
	if err != nil {
		c.fail(err)
		return
	}
	if len(grades) == 0 {
		c.say(fmt.Sprintf("Teacher %s is not assigned to any grades.", teacher.Name))
		return
	}

	c.heading(fmt.Sprintf("\n---Scores for Teacher %s (ID: %s) in Assigned Grades ---", teacher.Name, teacher.ID))
	for _, g := range grades {
		c.say(fmt.Sprintf("\nGrade: %s (ID: %s)", g.Grade.Name, g.Grade.ID))
		switch {
		case !g.HasStudents:
			c.say("No students currently in this grade.")
		case len(g.Rows) == 0:
			c.say("No scores recorded for students in this grade.")
		default:
			rows := make([][]string, 0, len(g.Rows))
			for _, r := range g.Rows {
				rows = append(rows, []string{r.StudentName, r.SubjectName, strconv.Itoa(r.Score)})
			}
			c.table([]string{"Student Name", "Subject", "Score"}, rows)
		}
	}
}

package console

import (
	"context"
	"fmt"
)

func (c *Console) enrollmentMenu(ctx context.Context) {
	c.runMenu(ctx, "Enrollment System Menu", []menuItem{
		{"Enroll Student into Grade", c.enrollStudent},
		{"View Enrollment History of a Student", c.viewHistory},
	}, "Return to Main Menu")
}

func (c *Console) enrollStudent(ctx context.Context) {
	c.heading("\n---Enroll Student ---")
	studentID, ok := c.askID("Enter Student ID to Enroll: ")
	if !ok {
		return
	}
	if _, err := c.svc.Students.GetByID(ctx, studentID); err != nil {
		c.fail(err)
		return
	}
	c.viewGrades(ctx)
	gradeID, ok := c.askID("Enter Grade ID to Enroll Student into: ")
	if !ok {
		return
	}

	// The menu always moves the student, so overwrite is on.
	res, err := c.svc.Enrollments.Enroll(ctx, studentID, gradeID, true)
	if !c.committed(err) {
		return
	}
	if res.Notice != "" {
		c.say(res.Notice)
	}
	c.say(fmt.Sprintf("Student %s successfully enrolled/updated to Grade %s.", studentID, gradeID))
}

func (c *Console) viewHistory(ctx context.Context) {
	studentID, ok := c.askID("\nEnter Student ID to view history: ")
	if !ok {
		return
	}
	student, err := c.svc.Students.GetByID(ctx, studentID)
	if err != nil {
		c.fail(err)
		return
	}
	history, err := c.svc.Enrollments.History(ctx, studentID)
	if err != nil {
		c.fail(err)
		return
	}
	if len(history) == 0 {
		c.say(fmt.Sprintf("Student %s has no enrollment history.", studentID))
		return
	}

	c.heading(fmt.Sprintf("\n---Enrollment History for %s (ID: %s) ---", student.Name, student.ID))
	rows := make([][]string, 0, len(history))
	for _, h := range history {
		rows = append(rows, []string{h.GradeID, h.GradeName})
	}
	c.table([]string{"Grade ID", "Grade Name"}, rows)
}

package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/stemsi/school-records/internal/model"
)

func (c *Console) catalogMenu(ctx context.Context) {
	c.runMenu(ctx, "Subject & Grade Management Menu", []menuItem{
		{"Add New Grade", c.addGrade},
		{"View All Grades", c.viewGrades},
		{"Update Grade Name", c.updateGrade},
		{"Delete a Grade", c.deleteGrade},
		separator,
		{"Add New Subject", c.addSubject},
		{"View All Subjects", c.viewSubjects},
		{"Update Subject Name", c.updateSubject},
		{"Delete a Subject", c.deleteSubject},
		{"Assign Subjects to Grades", c.assignSubjects},
	}, "Return to Main Menu")
}

func (c *Console) addGrade(ctx context.Context) {
	c.heading("\n--- Add New Grade ---")
	id, ok := c.askID("Enter Grade ID (Numeric): ")
	if !ok {
		return
	}
	if _, err := c.svc.Grades.GetByID(ctx, id); err == nil {
		c.say(fmt.Sprintf("Grade with ID %s already exists.", id))
		return
	}
	name, ok := c.askText("Enter Grade Name (e.g., Grade 10): ", "Grade name cannot be empty.")
	if !ok {
		return
	}
	if !c.committed(c.svc.Grades.Create(ctx, model.CreateGradeRequest{ID: id, Name: name})) {
		return
	}
	c.say(fmt.Sprintf("Grade '%s' (ID: %s) added successfully.", name, id))
}

func (c *Console) viewGrades(ctx context.Context) {
	c.heading("\n---All Grades ---")
	var rows [][]string
	for g := range c.svc.Grades.List(ctx) {
		rows = append(rows, []string{g.ID, g.Name})
	}
	if len(rows) == 0 {
		c.say("No grades registered.")
		return
	}
	c.table([]string{"ID", "Name"}, rows)
}

func (c *Console) updateGrade(ctx context.Context) {
	id, ok := c.askID("\nEnter Grade ID to Update: ")
	if !ok {
		return
	}
	current, err := c.svc.Grades.GetByID(ctx, id)
	if err != nil {
		c.fail(err)
		return
	}
	name, ok := c.askOptional("Grade Name", current.Name)
	if !ok {
		return
	}
	res, err := c.svc.Grades.Update(ctx, id, model.UpdateGradeRequest{Name: name})
	c.reportUpdate(res)
	if !c.committed(err) || !res.HasChanges() {
		return
	}
	c.say(fmt.Sprintf("Grade %s name updated to '%s'.", id, *name))
}

func (c *Console) deleteGrade(ctx context.Context) {
	id, ok := c.askID("\nEnter Grade ID to Delete: ")
	if !ok {
		return
	}
	err := c.svc.Grades.Delete(ctx, id, func(g model.Grade) bool {
		return c.confirm(fmt.Sprintf("Are you sure you want to delete grade %s (ID: %s)? Students in it will be unassigned.", g.Name, g.ID))
	})
	if !c.committed(err) {
		return
	}
	c.say(fmt.Sprintf("Grade %s deleted and related data cleaned up.", id))
}

func (c *Console) addSubject(ctx context.Context) {
	c.heading("\n--- Add New Subject ---")
	id, ok := c.askID("Enter Subject ID (Numeric): ")
	if !ok {
		return
	}
	if _, err := c.svc.Subjects.GetByID(ctx, id); err == nil {
		c.say(fmt.Sprintf("Subject with ID %s already exists.", id))
		return
	}
	name, ok := c.askText("Enter Subject Name: ", "Subject name cannot be empty.")
	if !ok {
		return
	}
	if !c.committed(c.svc.Subjects.Create(ctx, model.CreateSubjectRequest{ID: id, Name: name})) {
		return
	}
	c.say(fmt.Sprintf("Subject '%s' (ID: %s) added successfully.", name, id))
}

func (c *Console) viewSubjects(ctx context.Context) {
	c.heading("\n---All Subjects ---")
	overview := c.svc.Reports.SubjectOverview(ctx)
	if len(overview) == 0 {
		c.say("No subjects registered.")
		return
	}
	rows := make([][]string, 0, len(overview))
	for _, ov := range overview {
		rows = append(rows, []string{ov.Subject.ID, ov.Subject.Name, strings.Join(ov.GradeNames, ", ")})
	}
	c.table([]string{"ID", "Name", "Assigned Grades"}, rows)
}

func (c *Console) updateSubject(ctx context.Context) {
	id, ok := c.askID("\nEnter Subject ID to Update: ")
	if !ok {
		return
	}
	current, err := c.svc.Subjects.GetByID(ctx, id)
	if err != nil {
		c.fail(err)
		return
	}
	name, ok := c.askOptional("Subject Name", current.Name)
	if !ok {
		return
	}
	res, err := c.svc.Subjects.Update(ctx, id, model.UpdateSubjectRequest{Name: name})
	c.reportUpdate(res)
	if !c.committed(err) || !res.HasChanges() {
		return
	}
	c.say(fmt.Sprintf("Subject %s name updated to '%s'.", id, *name))
}

func (c *Console) deleteSubject(ctx context.Context) {
	id, ok := c.askID("\nEnter Subject ID to Delete: ")
	if !ok {
		return
	}
	err := c.svc.Subjects.Delete(ctx, id, func(s model.Subject) bool {
		return c.confirm(fmt.Sprintf("Are you sure you want to delete subject %s (ID: %s)?", s.Name, s.ID))
	})
	if !c.committed(err) {
		return
	}
	c.say(fmt.Sprintf("Subject %s deleted successfully.", id))
}

func (c *Console) assignSubjects(ctx context.Context) {
	id, ok := c.askID("\nEnter Grade ID to assign subjects to: ")
	if !ok {
		return
	}
	if _, err := c.svc.Grades.GetByID(ctx, id); err != nil {
		c.fail(err)
		return
	}
	c.viewSubjects(ctx)
	subjects, ok := c.ask("Enter Subject IDs to assign (comma-separated): ")
	if !ok {
		return
	}

	res, err := c.svc.Grades.AssignSubjects(ctx, id, splitIDs(subjects))
	if !c.committed(err) {
		return
	}
	if len(res.Invalid) > 0 {
		c.say("The following Subject IDs are invalid or do not exist and were skipped: " + strings.Join(res.Invalid, ", "))
	}
	c.say(fmt.Sprintf("Subjects %s assigned to Grade %s.", strings.Join(res.Assigned, ", "), id))
}

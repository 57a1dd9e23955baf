package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/stemsi/school-records/internal/model"
	"github.com/stemsi/school-records/internal/service"
)

func (c *Console) teacherMenu(ctx context.Context) {
	c.runMenu(ctx, "Teacher Management Menu", []menuItem{
		{"Add New Teacher", c.addTeacher},
		{"View All Teachers", c.viewTeachers},
		{"Update Teacher Information", c.updateTeacher},
		{"Delete a Teacher", c.deleteTeacher},
		{"Assign Teachers to Grades", c.assignTeacher},
	}, "Return to Main Menu")
}

func (c *Console) addTeacher(ctx context.Context) {
	c.heading("\n--- Add New Teacher ---")
	id, ok := c.askID("Enter Teacher ID (Numeric): ")
	if !ok {
		return
	}
	if _, err := c.svc.Teachers.GetByID(ctx, id); err == nil {
		c.say(fmt.Sprintf("Teacher with ID %s already exists.", id))
		return
	}

	req := model.CreateTeacherRequest{ID: id}
	if req.Name, ok = c.askText("Enter Name: ", "Name cannot be empty."); !ok {
		return
	}
	if req.Qualification, ok = c.askText("Enter Qualification: ", "Qualification cannot be empty."); !ok {
		return
	}
	subjects, ok := c.ask("Enter Subject IDs taught (comma-separated, blank for none): ")
	if !ok {
		return
	}
	req.SubjectIDs = splitIDs(subjects)
	if req.Phone, ok = c.askText("Enter Phone Number: ", "Phone number cannot be empty."); !ok {
		return
	}

	invalid, err := c.svc.Teachers.Create(ctx, req)
	if !c.committed(err) {
		return
	}
	if len(invalid) > 0 {
		c.say("The following Subject IDs are invalid or do not exist and were skipped: " + strings.Join(invalid, ", "))
	}
	c.say(fmt.Sprintf("Teacher %s (ID: %s) added successfully.", req.Name, req.ID))
}

func (c *Console) viewTeachers(ctx context.Context) {
	c.heading("\n---All Teachers ---")
	overview := c.svc.Reports.TeacherOverview(ctx)
	if len(overview) == 0 {
		c.say("No teachers registered.")
		return
	}
	rows := make([][]string, 0, len(overview))
	for _, ov := range overview {
		rows = append(rows, []string{
			ov.Teacher.ID, ov.Teacher.Name, ov.Teacher.Qualification,
			joinOrNA(ov.SubjectNames), joinOrNA(ov.GradeNames),
		})
	}
	c.table([]string{"ID", "Name", "Qualification", "Subjects", "Assigned Grades"}, rows)
}

func (c *Console) updateTeacher(ctx context.Context) {
	id, ok := c.askID("\nEnter Teacher ID to Update: ")
	if !ok {
		return
	}
	current, err := c.svc.Teachers.GetByID(ctx, id)
	if err != nil {
		c.fail(err)
		return
	}
	c.say(fmt.Sprintf("Updating Teacher: %s (ID: %s)", current.Name, current.ID))

	var req model.UpdateTeacherRequest
	if req.Name, ok = c.askOptional("Name", current.Name); !ok {
		return
	}
	if req.Qualification, ok = c.askOptional("Qualification", current.Qualification); !ok {
		return
	}
	subjects, ok := c.askOptional("Subject IDs (comma-separated)", strings.Join(current.SubjectIDs, ", "))
	if !ok {
		return
	}
	if subjects != nil {
		ids := splitIDs(*subjects)
		req.SubjectIDs = &ids
	}
	if req.Phone, ok = c.askOptional("Phone Number", current.Phone); !ok {
		return
	}

	res, err := c.svc.Teachers.Update(ctx, current.ID, req)
	c.reportUpdate(res)
	if !c.committed(err) {
		return
	}
	if res.HasChanges() {
		c.say(fmt.Sprintf("Teacher %s information updated.", current.ID))
	}
}

func (c *Console) deleteTeacher(ctx context.Context) {
	id, ok := c.askID("\nEnter Teacher ID to Delete: ")
	if !ok {
		return
	}
	err := c.svc.Teachers.Delete(ctx, id, func(t model.Teacher) bool {
		return c.confirm(fmt.Sprintf("Are you sure you want to delete teacher %s (ID: %s)?", t.Name, t.ID))
	})
	if !c.committed(err) {
		return
	}
	c.say(fmt.Sprintf("Teacher %s and their assignments deleted successfully.", id))
}

func (c *Console) assignTeacher(ctx context.Context) {
	id, ok := c.askID("\nEnter Teacher ID to assign: ")
	if !ok {
		return
	}
	if _, err := c.svc.Teachers.GetByID(ctx, id); err != nil {
		c.fail(err)
		return
	}
	c.viewGrades(ctx)
	grades, ok := c.ask("Enter Grade IDs to assign (comma-separated): ")
	if !ok {
		return
	}

	res, err := c.svc.Teachers.AssignGrades(ctx, id, splitIDs(grades))
	if !c.committed(err) {
		return
	}
	if len(res.Invalid) > 0 {
		c.say("The following Grade IDs are invalid or do not exist and were skipped: " + strings.Join(res.Invalid, ", "))
	}
	c.say(fmt.Sprintf("Teacher %s assigned to grades: %s", id, strings.Join(res.Assigned, ", ")))
}

func joinOrNA(names []string) string {
	if len(names) == 0 {
		return service.NotAvailable
	}
	return strings.Join(names, ", ")
}

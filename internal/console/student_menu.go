package console

import (
	"context"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/stemsi/school-records/internal/model"
	"github.com/stemsi/school-records/internal/service"
)

func (c *Console) studentMenu(ctx context.Context) {
	c.runMenu(ctx, "Student Management Menu", []menuItem{
		{"Add New Student", c.addStudent},
		{"View All Students", c.viewStudents},
		{"Update Student Information", c.updateStudent},
		{"Delete a Student", c.deleteStudent},
		{"Search for a Student", c.searchStudent},
		{"Import Students from Excel (.xlsx)", c.importStudents},
	}, "Return to Main Menu")
}

func (c *Console) addStudent(ctx context.Context) {
	c.heading("\n--- Add New Student ---")
	id, ok := c.askID("Enter Student ID (Numeric): ")
	if !ok {
		return
	}
	if _, err := c.svc.Students.GetByID(ctx, id); err == nil {
		c.say(fmt.Sprintf("Student with ID %s already exists.", id))
		return
	}

	var req model.CreateStudentRequest
	req.ID = id
	steps := []struct {
		prompt, errMsg string
		dst            *string
	}{
		{"Enter Name: ", "Name cannot be empty.", &req.Name},
		{"Enter Grade ID (must exist): ", "Grade ID cannot be empty.", &req.GradeID},
		{"Enter Date of Birth (YYYY-MM-DD): ", "Date of Birth cannot be empty.", &req.DateOfBirth},
	}
	for _, step := range steps {
		v, ok := c.askText(step.prompt, step.errMsg)
		if !ok {
			return
		}
		*step.dst = v
	}
	gender, ok := c.askValid("Enter Gender (M/F/O): ", func(v string) string {
		if _, valid := model.ParseGender(v); !valid {
			return "Gender must be M, F, or O."
		}
		return ""
	})
	if !ok {
		return
	}
	req.Gender = gender
	if req.Phone, ok = c.askText("Enter Phone Number: ", "Phone number cannot be empty."); !ok {
		return
	}

	res, err := c.svc.Students.Create(ctx, req)
	if !c.committed(err) {
		return
	}
	for _, n := range res.Notices {
		c.say(n)
	}
	c.say(fmt.Sprintf("Student %s (ID: %s) added successfully.", res.Student.Name, res.Student.ID))
}

func (c *Console) studentRows(ctx context.Context, students []model.Student) [][]string {
	rows := make([][]string, 0, len(students))
	for _, st := range students {
		grade := service.NotAvailable
		if g, err := c.svc.Grades.GetByID(ctx, st.CurrentGrade()); err == nil {
			grade = g.Name
		}
		rows = append(rows, []string{st.ID, st.Name, grade, st.DateOfBirth, string(st.Gender), st.Phone})
	}
	return rows
}

var studentHeaders = []string{"ID", "Name", "Grade", "DOB", "Gender", "Phone"}

func (c *Console) viewStudents(ctx context.Context) {
	c.heading("\n---All Students ---")
	var students []model.Student
	for st := range c.svc.Students.List(ctx) {
		students = append(students, st)
	}
	if len(students) == 0 {
		c.say("No students registered.")
		return
	}
	c.table(studentHeaders, c.studentRows(ctx, students))
}

func (c *Console) updateStudent(ctx context.Context) {
	id, ok := c.askID("\nEnter Student ID to Update: ")
	if !ok {
		return
	}
	current, err := c.svc.Students.GetByID(ctx, id)
	if err != nil {
		c.fail(err)
		return
	}
	c.say(fmt.Sprintf("Updating Student: %s (ID: %s)", current.Name, current.ID))

	var req model.UpdateStudentRequest
	grade := current.CurrentGrade()
	if grade == "" {
		grade = service.NotAvailable
	}
	fields := []struct {
		label, current string
		dst            **string
	}{
		{"Name", current.Name, &req.Name},
		{"Grade ID", grade, &req.GradeID},
		{"Date of Birth", current.DateOfBirth, &req.DateOfBirth},
		{"Gender (M/F/O)", string(current.Gender), &req.Gender},
		{"Phone Number", current.Phone, &req.Phone},
	}
	for _, f := range fields {
		v, ok := c.askOptional(f.label, f.current)
		if !ok {
			return
		}
		*f.dst = v
	}

	res, err := c.svc.Students.Update(ctx, current.ID, req)
	c.reportUpdate(res)
	if !c.committed(err) {
		return
	}
	if res.HasChanges() {
		c.say(fmt.Sprintf("Student %s information updated.", current.ID))
	}
}

// reportUpdate prints rejected fields and notices of a partial update.
func (c *Console) reportUpdate(res model.UpdateResult) {
	for _, field := range slices.Sorted(maps.Keys(res.Rejected)) {
		c.say(fmt.Sprintf("%s not updated: %s", field, res.Rejected[field]))
	}
	for _, n := range res.Notices {
		c.say(n)
	}
	if !res.HasChanges() {
		c.say("No changes made.")
	}
}

func (c *Console) deleteStudent(ctx context.Context) {
	id, ok := c.askID("\nEnter Student ID to Delete: ")
	if !ok {
		return
	}
	err := c.svc.Students.Delete(ctx, id, func(st model.Student) bool {
		return c.confirm(fmt.Sprintf("Are you sure you want to delete student %s (ID: %s)?", st.Name, st.ID))
	})
	if !c.committed(err) {
		return
	}
	c.say(fmt.Sprintf("Student %s, enrollment, and scores deleted successfully.", id))
}

func (c *Console) searchStudent(ctx context.Context) {
	query, ok := c.askText("\nEnter Student Name or ID to search: ", "Search query cannot be empty.")
	if !ok {
		return
	}
	found := c.svc.Students.Search(ctx, query)
	if len(found) == 0 {
		c.say(fmt.Sprintf("No students found matching '%s'.", query))
		return
	}
	c.heading(fmt.Sprintf("\n---Search Results for '%s' ---", query))
	c.table(studentHeaders, c.studentRows(ctx, found))
}

func (c *Console) importStudents(ctx context.Context) {
	path, ok := c.askText("\nEnter path to .xlsx file: ", "Path cannot be empty.")
	if !ok {
		return
	}
	gradeID, ok := c.ask("Enter Grade ID to enroll imported students (blank for none): ")
	if !ok {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		c.fail(err)
		return
	}
	defer f.Close()

	res, err := c.svc.Sheets.ImportStudents(ctx, f, gradeID)
	for _, n := range res.Notices {
		c.say(n)
	}
	if !c.committed(err) {
		return
	}
	c.say(fmt.Sprintf("%d students imported.", res.Imported))
}

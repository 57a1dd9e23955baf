// Package console drives the services through numbered text menus.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stemsi/school-records/internal/response"
	"github.com/stemsi/school-records/internal/service"
	"github.com/stemsi/school-records/internal/validator"
	"golang.org/x/term"
)

// Saver flushes the current state to storage.
type Saver interface {
	Save(ctx context.Context) error
}

// Services bundles the use cases the menus call.
type Services struct {
	Students    *service.StudentService
	Teachers    *service.TeacherService
	Subjects    *service.SubjectService
	Grades      *service.GradeService
	Enrollments *service.EnrollmentService
	Scores      *service.ScoreService
	Reports     *service.ReportService
	Sheets      *service.SpreadsheetService
}

// Console reads choices from in and writes screens to out.
type Console struct {
	in        *bufio.Scanner
	out       io.Writer
	svc       Services
	saver     Saver
	echo      bool
	eof       bool
	exportDir string
	log       zerolog.Logger

	errColor  *color.Color
	headColor *color.Color
}

// Option configures a Console.
type Option func(*Console)

// WithEcho writes every line read back to out, so piped sessions produce a
// readable transcript.
func WithEcho(echo bool) Option {
	return func(c *Console) { c.echo = echo }
}

// WithColor enables colored headings and errors.
func WithColor(enabled bool) Option {
	return func(c *Console) {
		if enabled {
			c.errColor.EnableColor()
			c.headColor.EnableColor()
			return
		}
		c.errColor.DisableColor()
		c.headColor.DisableColor()
	}
}

// WithExportDir sets where exported workbooks are written.
func WithExportDir(dir string) Option {
	return func(c *Console) { c.exportDir = dir }
}

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Console) { c.log = log.With().Str("component", "console").Logger() }
}

// New creates a Console. Color is off unless WithColor(true) is given.
func New(in io.Reader, out io.Writer, svc Services, saver Saver, opts ...Option) *Console {
	c := &Console{
		in:        bufio.NewScanner(in),
		out:       out,
		svc:       svc,
		saver:     saver,
		exportDir: ".",
		log:       zerolog.Nop(),
		errColor:  color.New(color.FgRed),
		headColor: color.New(color.Bold),
	}
	c.errColor.DisableColor()
	c.headColor.DisableColor()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Run shows the main menu until the user exits or input ends, then saves.
func (c *Console) Run(ctx context.Context) error {
	c.say("*******************************************")
	c.say("     SCHOOL MANAGEMENT SYSTEM (Console)    ")
	c.say("*******************************************")

	items := []menuItem{
		{"Student Management", c.studentMenu},
		{"Teacher Management", c.teacherMenu},
		{"Subject & Grade Management", c.catalogMenu},
		{"Enrollment System", c.enrollmentMenu},
		{"Score Management", c.scoreMenu},
		{"Reports and Summaries", c.reportMenu},
	}
	c.runMenu(ctx, "Main Menu", items, "Exit System and Save Data")

	if c.eof {
		c.log.Info().Msg("input closed, saving and exiting")
	}
	err := c.saver.Save(ctx)
	if err != nil {
		c.fail(err)
	} else {
		c.say("Data saved successfully.")
	}
	c.say("\nThank you for using the School Management System. Goodbye!")
	return err
}

type menuItem struct {
	label string
	// action is nil for a separator line.
	action func(ctx context.Context)
}

var separator = menuItem{}

// runMenu loops over a numbered menu. The last number is exitLabel.
func (c *Console) runMenu(ctx context.Context, title string, items []menuItem, exitLabel string) {
	for !c.eof {
		c.heading("\n---" + title + " ---")
		var actions []func(ctx context.Context)
		for _, item := range items {
			if item.action == nil {
				c.say(strings.Repeat("-", 35))
				continue
			}
			actions = append(actions, item.action)
			c.say(fmt.Sprintf("%d. %s", len(actions), item.label))
		}
		exit := len(actions) + 1
		c.say(fmt.Sprintf("%d. %s", exit, exitLabel))

		choice, ok := c.askNumber("Enter choice: ", "Invalid choice. Please enter a number.")
		if !ok {
			return
		}
		n, _ := strconv.Atoi(choice)
		switch {
		case n == exit:
			return
		case n >= 1 && n <= len(actions):
			actions[n-1](ctx)
		default:
			c.say(fmt.Sprintf("Invalid choice. Please select from 1 to %d.", exit))
		}
	}
}

// readLine returns the next trimmed line; ok is false at end of input.
func (c *Console) readLine() (string, bool) {
	if c.eof {
		return "", false
	}
	if !c.in.Scan() {
		c.eof = true
		if err := c.in.Err(); err != nil && !errors.Is(err, io.EOF) {
			c.log.Error().Err(err).Msg("read input")
		}
		fmt.Fprintln(c.out)
		return "", false
	}
	line := c.in.Text()
	if c.echo {
		fmt.Fprintln(c.out, line)
	}
	return strings.TrimSpace(line), true
}

// ask prompts once and returns the trimmed answer, which may be empty.
func (c *Console) ask(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	return c.readLine()
}

// askValid prompts until check returns "" for the answer.
func (c *Console) askValid(prompt string, check func(string) string) (string, bool) {
	for {
		v, ok := c.ask(prompt)
		if !ok {
			return "", false
		}
		if msg := check(v); msg != "" {
			c.say(msg)
			continue
		}
		return v, true
	}
}

// askNumber prompts until the answer is a non-empty string of digits.
func (c *Console) askNumber(prompt, errMsg string) (string, bool) {
	return c.askValid(prompt, func(v string) string {
		if validator.Var("id", v, "required,number") != "" {
			return errMsg
		}
		return ""
	})
}

// askID prompts for a numeric identifier.
func (c *Console) askID(prompt string) (string, bool) {
	return c.askNumber(prompt, "ID must be a numeric value.")
}

// askText prompts until the answer is not blank.
func (c *Console) askText(prompt, errMsg string) (string, bool) {
	return c.askValid(prompt, func(v string) string {
		if validator.Var("value", v, "notblank") != "" {
			return errMsg
		}
		return ""
	})
}

// askOptional prompts for a replacement value. A blank answer keeps the
// current value and returns nil.
func (c *Console) askOptional(field, current string) (*string, bool) {
	v, ok := c.ask(fmt.Sprintf("Enter new %s (current: %s) [leave blank to keep]: ", field, current))
	if !ok || v == "" {
		return nil, ok
	}
	return &v, true
}

// confirm asks a yes/no question; only "yes" confirms.
func (c *Console) confirm(question string) bool {
	v, ok := c.ask(question + " (yes/no): ")
	return ok && strings.EqualFold(v, "yes")
}

func (c *Console) say(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) heading(s string) {
	c.headColor.Fprintln(c.out, s)
}

// committed reports whether a mutation took effect. Errors other than a
// failed save are printed; a failed save is printed as a warning and still
// counts as committed.
func (c *Console) committed(err error) bool {
	switch response.CodeOf(err) {
	case "":
		return true
	case response.ErrPersistence:
		c.fail(err)
		return true
	default:
		c.fail(err)
		return false
	}
}

// fail prints err the way the menus phrase it.
func (c *Console) fail(err error) {
	c.errColor.Fprintln(c.out, describe(err))
}

func describe(err error) string {
	var e *response.Error
	if !errors.As(err, &e) {
		return "Error: " + err.Error()
	}
	switch e.Code {
	case response.ErrNotFound:
		return fmt.Sprintf("%s with ID %s not found.", title(e.Entity), e.ID)
	case response.ErrDuplicateID:
		return fmt.Sprintf("%s with ID %s already exists.", title(e.Entity), e.ID)
	case response.ErrCancelled:
		return "Operation cancelled."
	case response.ErrOutOfRange:
		return "Score must be a number between 0 and 100."
	case response.ErrPersistence:
		return fmt.Sprintf(" Error saving data: %v", e.Err)
	case response.ErrLoadFailed:
		return fmt.Sprintf("%s (%v)", response.GetMessage(e.Code), e.Err)
	default:
		return e.Error()
	}
}

func title(s string) string {
	if s == "" {
		return "Record"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// splitIDs parses a comma separated list of ids.
func splitIDs(s string) []string {
	var ids []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}

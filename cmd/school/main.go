package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/stemsi/school-records/internal/config"
	"github.com/stemsi/school-records/internal/console"
	"github.com/stemsi/school-records/internal/logger"
	"github.com/stemsi/school-records/internal/model"
	"github.com/stemsi/school-records/internal/repository"
	"github.com/stemsi/school-records/internal/response"
	"github.com/stemsi/school-records/internal/service"
	"github.com/stemsi/school-records/internal/store"
	"github.com/stemsi/school-records/internal/validator"
)

func main() {
	cfg := config.Load()
	os.Exit(run(cfg, os.Stdin, os.Stdout,
		console.WithEcho(!console.IsTerminal(os.Stdin)),
		console.WithColor(console.IsTerminal(os.Stdout)),
	))
}

// run drives one console session and returns the process exit code. All
// resources are released before it returns.
func run(cfg *config.Config, stdin io.Reader, stdout io.Writer, opts ...console.Option) int {
	// ─── Initialize Logger ─────────────────────────────────────────────
	logOut, closeLog, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		return 1
	}
	defer func() { _ = closeLog() }()

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, logOut).
		With().
		Str("session", uuid.NewString()).
		Logger()
	log.Info().
		Str("store", cfg.StoreDriver).
		Str("log_level", cfg.LogLevel).
		Msg("Starting school records")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// Mutations are saved as they happen.
	ctx := context.Background()

	// ─── Open Store ────────────────────────────────────────────────────
	st, closeStore, err := store.Open(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("Failed to open store")
		fmt.Fprintf(os.Stderr, "Failed to open %s store: %v\n", cfg.StoreDriver, err)
		return 1
	}
	defer closeStore()

	// ─── Load Records ──────────────────────────────────────────────────
	repo := repository.NewSchoolRepository(st, model.ParseSubjectDeletePolicy(cfg.SubjectDeletePolicy), log)
	if err := repo.Load(ctx); err != nil {
		var e *response.Error
		if errors.As(err, &e) {
			fmt.Fprintf(stdout, "%s (%v)\n", response.GetMessage(e.Code), e.Err)
		}
	}

	// ─── Initialize Services ──────────────────────────────────────────
	svc := console.Services{
		Students:    service.NewStudentService(repo, log),
		Teachers:    service.NewTeacherService(repo, log),
		Subjects:    service.NewSubjectService(repo, log),
		Grades:      service.NewGradeService(repo, log),
		Enrollments: service.NewEnrollmentService(repo),
		Scores:      service.NewScoreService(repo, log),
		Reports:     service.NewReportService(repo, service.NewPlaceholderRand(cfg.PlaceholderSeed), log),
	}
	svc.Sheets = service.NewSpreadsheetService(svc.Students, svc.Scores, svc.Reports, log)

	// ─── Run Console ───────────────────────────────────────────────────
	opts = append([]console.Option{
		console.WithExportDir(cfg.ExportDir),
		console.WithLogger(log),
	}, opts...)
	c := console.New(stdin, stdout, svc, repo, opts...)
	if err := c.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Exited with unsaved changes")
		return 1
	}
	log.Info().Msg("Session ended")
	return 0
}

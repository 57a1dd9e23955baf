package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/stemsi/school-records/internal/config"
	"github.com/stemsi/school-records/internal/logger"
	"github.com/stemsi/school-records/internal/model"
	"github.com/stemsi/school-records/internal/repository"
	"github.com/stemsi/school-records/internal/service"
	"github.com/stemsi/school-records/internal/store"
	"github.com/stemsi/school-records/internal/validator"
)

func main() {
	var count int
	flag.IntVar(&count, "students", 50, "Number of students to seed")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, nil)
	validator.Setup()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	st, closeStore, err := store.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open store")
	}
	defer closeStore()

	repo := repository.NewSchoolRepository(st, model.ParseSubjectDeletePolicy(cfg.SubjectDeletePolicy), log)
	if err := repo.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("Refusing to seed over unreadable data")
	}

	gradeService := service.NewGradeService(repo, log)
	subjectService := service.NewSubjectService(repo, log)
	teacherService := service.NewTeacherService(repo, log)
	studentService := service.NewStudentService(repo, log)
	scoreService := service.NewScoreService(repo, log)

	fmt.Println("=== Seeding Grades and Subjects ===")

	grades := []model.CreateGradeRequest{
		{ID: "10", Name: "Grade 10"},
		{ID: "11", Name: "Grade 11"},
		{ID: "12", Name: "Grade 12"},
	}
	for _, g := range grades {
		if _, err := gradeService.GetByID(ctx, g.ID); err == nil {
			fmt.Printf("Grade %s already exists, skipping\n", g.ID)
			continue
		}
		if err := gradeService.Create(ctx, g); err != nil {
			log.Fatal().Err(err).Str("grade_id", g.ID).Msg("Failed to create grade")
		}
	}

	subjects := []model.CreateSubjectRequest{
		{ID: "101", Name: "Mathematics"},
		{ID: "102", Name: "Physics"},
		{ID: "103", Name: "English"},
		{ID: "104", Name: "History"},
	}
	subjectIDs := make([]string, 0, len(subjects))
	for _, s := range subjects {
		subjectIDs = append(subjectIDs, s.ID)
		if _, err := subjectService.GetByID(ctx, s.ID); err == nil {
			continue
		}
		if err := subjectService.Create(ctx, s); err != nil {
			log.Fatal().Err(err).Str("subject_id", s.ID).Msg("Failed to create subject")
		}
	}
	for _, g := range grades {
		if _, err := gradeService.AssignSubjects(ctx, g.ID, subjectIDs); err != nil {
			log.Fatal().Err(err).Str("grade_id", g.ID).Msg("Failed to assign subjects")
		}
	}

	fmt.Println("=== Seeding Teachers ===")

	teachers := []model.CreateTeacherRequest{
		{ID: "9001", Name: "Made Wirawan", Qualification: "M.Sc. Mathematics", SubjectIDs: []string{"101", "102"}, Phone: "555-9001"},
		{ID: "9002", Name: "Ketut Sari", Qualification: "B.A. English", SubjectIDs: []string{"103", "104"}, Phone: "555-9002"},
	}
	for i, t := range teachers {
		if _, err := teacherService.GetByID(ctx, t.ID); err != nil {
			if _, err := teacherService.Create(ctx, t); err != nil {
				log.Fatal().Err(err).Str("teacher_id", t.ID).Msg("Failed to create teacher")
			}
		}
		if _, err := teacherService.AssignGrades(ctx, t.ID, []string{grades[i].ID, grades[i+1].ID}); err != nil {
			log.Fatal().Err(err).Str("teacher_id", t.ID).Msg("Failed to assign grades")
		}
	}

	fmt.Printf("=== Seeding %d Students ===\n", count)

	names := []string{
		"Budi Santoso", "Siti Aminah", "Andi Pratama", "Rina Wati", "Joko Susilo",
		"Ayu Lestari", "Dodi Kusuma", "Eka Putri", "Fahri Hamzah", "Gita Savitri",
		"Hendra Gunawan", "Ika Sari", "Jamal Mirdad", "Kiki Fatmala", "Lukman Hakim",
		"Maya Septiana", "Nanda Pratama", "Oki Setiana", "Putri Dian", "Qori Maharani",
	}

	successCount := 0
	for i := 0; i < count; i++ {
		req := model.CreateStudentRequest{
			ID:          strconv.Itoa(5001 + i),
			Name:        names[i%len(names)],
			GradeID:     grades[i%len(grades)].ID,
			DateOfBirth: fmt.Sprintf("2009-%02d-%02d", i%12+1, i%28+1),
			Gender:      string(model.GenderMale),
			Phone:       fmt.Sprintf("555-%04d", 1000+i),
		}
		// Alternate genders for variety
		if i%2 != 0 {
			req.Gender = string(model.GenderFemale)
		}

		if _, err := studentService.Create(ctx, req); err != nil {
			fmt.Printf("Error creating student %s (ID: %s): %v\n", req.Name, req.ID, err)
			continue
		}
		for j, subjectID := range subjectIDs {
			score := 55 + (i*7+j*13)%46
			if err := scoreService.SetScore(ctx, req.ID, subjectID, score); err != nil {
				fmt.Printf("Error scoring student %s in %s: %v\n", req.ID, subjectID, err)
			}
		}
		successCount++
		if (i+1)%10 == 0 {
			fmt.Printf("Created %d students...\n", i+1)
		}
	}

	fmt.Printf("\nSeed completed! Successfully added %d/%d students.\n", successCount, count)
}

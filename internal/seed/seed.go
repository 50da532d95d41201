package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/selimc/homework-tracker/internal/app/models"
	appRepos "github.com/selimc/homework-tracker/internal/app/repositories"
	"github.com/selimc/homework-tracker/internal/pkg/apperrors"
	"github.com/selimc/homework-tracker/internal/pkg/auth"
)

// Demo account credentials, for local development only.
const (
	DemoEmail    = "demo@homeworktracker.app"
	demoPassword = "demo1234"
)

// CreateDemoData seeds a demo user with a few courses and assignments so a
// fresh installation has something to show. Safe to call repeatedly.
func CreateDemoData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)
	assignmentRepo := appRepos.NewAssignmentRepository(dbPool)
	gradeRepo := appRepos.NewGradeRepository(dbPool)

	lgr.Info().Msg("Checking/Creating demo data...")

	exists, err := userRepo.EmailExists(ctx, DemoEmail)
	if err != nil {
		return err
	}
	if exists {
		lgr.Info().Msg("Demo user already present, skipping demo data creation")
		return nil
	}

	hashed, err := auth.HashPassword(demoPassword)
	if err != nil {
		return err
	}

	demoUser := &appModels.User{
		Email:     DemoEmail,
		Password:  hashed,
		FirstName: "Demo",
		LastName:  "Student",
		IsActive:  true,
	}
	userID, err := userRepo.Create(ctx, demoUser)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return err
	}

	var finalErr error

	courses := []*appModels.Course{
		{Name: "Algorithms", Code: "CS301", OwnerID: userID},
		{Name: "Linear Algebra", Code: "MATH201", OwnerID: userID},
		{Name: "Art History", OwnerID: userID},
	}
	courseIDs := make([]int64, 0, len(courses))
	for _, course := range courses {
		id, err := courseRepo.Create(ctx, course)
		if err != nil {
			lgr.Error().Err(err).Str("course", course.Name).Msg("Error creating demo course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		courseIDs = append(courseIDs, id)
	}

	if len(courseIDs) < len(courses) {
		return finalErr
	}

	now := time.Now()
	due := func(days int, hour int) *time.Time {
		t := now.AddDate(0, 0, days).Truncate(time.Hour)
		t = t.Add(time.Duration(hour-t.Hour()) * time.Hour)
		return &t
	}

	assignments := []*appModels.Assignment{
		{Title: "Sorting homework", Description: "Implement merge sort and quicksort", DueDate: due(2, 17), OwnerID: userID, CourseID: &courseIDs[0]},
		{Title: "Graph problem set", DueDate: due(6, 9), OwnerID: userID, CourseID: &courseIDs[0]},
		{Title: "Matrix exercises", Description: "Chapters 3 and 4", DueDate: due(-3, 12), OwnerID: userID, CourseID: &courseIDs[1]},
		{Title: "Renaissance essay", Description: "1500 words on perspective", DueDate: due(10, 23), OwnerID: userID, CourseID: &courseIDs[2]},
		{Title: "Clean up notes", OwnerID: userID},
	}

	var gradedID int64
	for i, a := range assignments {
		id, err := assignmentRepo.Create(ctx, a)
		if err != nil {
			lgr.Error().Err(err).Str("assignment", a.Title).Msg("Error creating demo assignment")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if i == 2 {
			gradedID = id
		}
	}

	// One completed and graded assignment so the dashboard has data.
	if gradedID > 0 {
		if err := assignmentRepo.SetCompleted(ctx, gradedID, userID, true); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
		comment := "Solid work"
		grade := &appModels.Grade{AssignmentID: gradedID, Score: 45, MaxScore: 50, Comment: &comment}
		if err := gradeRepo.Upsert(ctx, grade); err != nil {
			lgr.Error().Err(err).Msg("Error creating demo grade")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Str("email", DemoEmail).Msg("Demo data created")
	}
	return finalErr
}

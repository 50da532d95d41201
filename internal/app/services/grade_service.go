package services

import (
	"context"
	"fmt"

	"github.com/selimc/homework-tracker/internal/app/models"
	"github.com/selimc/homework-tracker/internal/app/repositories"
	"github.com/selimc/homework-tracker/internal/pkg/apperrors"
	"github.com/selimc/homework-tracker/internal/pkg/logger"
)

// DefaultMaxScore is used when a grade is recorded without an explicit maximum.
const DefaultMaxScore = 100

// GradeService handles grade recording for assignments
type GradeService struct {
	gradeRepo      *repositories.GradeRepository
	assignmentRepo *repositories.AssignmentRepository
}

// NewGradeService creates a new grade service instance
func NewGradeService(gradeRepo *repositories.GradeRepository, assignmentRepo *repositories.AssignmentRepository) *GradeService {
	return &GradeService{
		gradeRepo:      gradeRepo,
		assignmentRepo: assignmentRepo,
	}
}

// RecordGrade records or replaces the grade of one of the user's
// assignments. A graded assignment is considered done, so the assignment is
// marked completed as part of the operation.
func (s *GradeService) RecordGrade(ctx context.Context, assignmentID, ownerID int64, score float64, maxScore *float64, comment string) (*models.Grade, error) {
	if score < 0 {
		return nil, fmt.Errorf("%w: score cannot be negative", apperrors.ErrValidationFailed)
	}

	max := float64(DefaultMaxScore)
	if maxScore != nil {
		max = *maxScore
	}
	if max < 0 {
		return nil, fmt.Errorf("%w: max score cannot be negative", apperrors.ErrValidationFailed)
	}
	if max > 0 && score > max {
		return nil, fmt.Errorf("%w: score cannot exceed max score", apperrors.ErrValidationFailed)
	}

	// Ownership check before touching the grades table.
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID, ownerID)
	if err != nil {
		return nil, err
	}

	grade := &models.Grade{
		AssignmentID: assignment.ID,
		Score:        score,
		MaxScore:     max,
	}
	if comment != "" {
		grade.Comment = &comment
	}

	if err := s.gradeRepo.Upsert(ctx, grade); err != nil {
		return nil, err
	}

	if !assignment.Completed {
		if err := s.assignmentRepo.SetCompleted(ctx, assignment.ID, ownerID, true); err != nil {
			logger.Warn().Err(err).Int64("assignmentID", assignment.ID).Msg("Failed to mark graded assignment completed")
		}
	}

	return grade, nil
}

// GetGrade retrieves the grade of one of the user's assignments.
func (s *GradeService) GetGrade(ctx context.Context, assignmentID, ownerID int64) (*models.Grade, error) {
	if _, err := s.assignmentRepo.GetByID(ctx, assignmentID, ownerID); err != nil {
		return nil, err
	}
	return s.gradeRepo.GetByAssignmentID(ctx, assignmentID)
}

// DeleteGrade removes the grade of one of the user's assignments. The
// assignment's completion status is left as is.
func (s *GradeService) DeleteGrade(ctx context.Context, assignmentID, ownerID int64) error {
	if _, err := s.assignmentRepo.GetByID(ctx, assignmentID, ownerID); err != nil {
		return err
	}
	return s.gradeRepo.DeleteByAssignmentID(ctx, assignmentID)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/selimc/homework-tracker/internal/app/models"
	"github.com/selimc/homework-tracker/internal/app/repositories"
	"github.com/selimc/homework-tracker/internal/pkg/apperrors"
)

// AssignmentService handles assignment-related operations
type AssignmentService struct {
	assignmentRepo *repositories.AssignmentRepository
	courseRepo     *repositories.CourseRepository
}

// NewAssignmentService creates a new assignment service instance
func NewAssignmentService(assignmentRepo *repositories.AssignmentRepository, courseRepo *repositories.CourseRepository) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		courseRepo:     courseRepo,
	}
}

// validateAssignment validates assignment data before database operations
func (s *AssignmentService) validateAssignment(a *models.Assignment) error {
	if a == nil {
		return fmt.Errorf("%w: assignment is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if len(a.Title) > 200 {
		return fmt.Errorf("%w: title must be at most 200 characters", apperrors.ErrValidationFailed)
	}
	return nil
}

// checkCourseOwnership verifies that the referenced course, if any, belongs
// to the assignment's owner.
func (s *AssignmentService) checkCourseOwnership(ctx context.Context, a *models.Assignment) error {
	if a.CourseID == nil {
		return nil
	}
	if _, err := s.courseRepo.GetByID(ctx, *a.CourseID, a.OwnerID); err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error checking course: %w", err)
	}
	return nil
}

// CreateAssignment creates a new assignment for the owner set on the model.
// A referenced course must belong to the same user.
func (s *AssignmentService) CreateAssignment(ctx context.Context, a *models.Assignment) error {
	a.Title = strings.TrimSpace(a.Title)

	if err := s.validateAssignment(a); err != nil {
		return err
	}
	if err := s.checkCourseOwnership(ctx, a); err != nil {
		return err
	}

	id, err := s.assignmentRepo.Create(ctx, a)
	if err != nil {
		return fmt.Errorf("error creating assignment: %w", err)
	}
	a.ID = id

	return nil
}

// GetAssignmentByID retrieves one of the user's assignments with its course
// and grade relations populated.
func (s *AssignmentService) GetAssignmentByID(ctx context.Context, id, ownerID int64) (*models.Assignment, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: assignment ID must be positive", apperrors.ErrValidationFailed)
	}
	return s.assignmentRepo.GetByID(ctx, id, ownerID)
}

// ListAssignments retrieves the user's assignments matching the filter, with
// the total count of matching rows.
func (s *AssignmentService) ListAssignments(ctx context.Context, ownerID int64, filter repositories.AssignmentFilter, limit int, offset uint64) ([]*models.Assignment, int64, error) {
	return s.assignmentRepo.ListByOwner(ctx, ownerID, filter, limit, offset)
}

// UpdateAssignment updates one of the user's assignments. The completion
// flag is not changed here; use ToggleCompleted.
func (s *AssignmentService) UpdateAssignment(ctx context.Context, a *models.Assignment) error {
	a.Title = strings.TrimSpace(a.Title)

	if err := s.validateAssignment(a); err != nil {
		return err
	}
	if err := s.checkCourseOwnership(ctx, a); err != nil {
		return err
	}

	return s.assignmentRepo.Update(ctx, a)
}

// ToggleCompleted flips the completion status of an assignment and returns
// the updated record.
func (s *AssignmentService) ToggleCompleted(ctx context.Context, id, ownerID int64) (*models.Assignment, error) {
	a, err := s.assignmentRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if err := s.assignmentRepo.SetCompleted(ctx, id, ownerID, !a.Completed); err != nil {
		return nil, err
	}
	a.Completed = !a.Completed

	return a, nil
}

// DeleteAssignment deletes one of the user's assignments.
func (s *AssignmentService) DeleteAssignment(ctx context.Context, id, ownerID int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: assignment ID must be positive", apperrors.ErrValidationFailed)
	}
	return s.assignmentRepo.Delete(ctx, id, ownerID)
}

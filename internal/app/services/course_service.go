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

// CourseService handles course-related operations
type CourseService struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

// validateCourse validates course data before database operations
func (s *CourseService) validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(course.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if len(course.Name) > 100 {
		return fmt.Errorf("%w: name must be at most 100 characters", apperrors.ErrValidationFailed)
	}
	if len(course.Code) > 20 {
		return fmt.Errorf("%w: code must be at most 20 characters", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateCourse creates a new course for the owner set on the model.
func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	course.Name = strings.TrimSpace(course.Name)
	course.Code = strings.TrimSpace(course.Code)

	if err := s.validateCourse(course); err != nil {
		return err
	}

	id, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}
	course.ID = id

	return nil
}

// GetCourseByID retrieves one of the user's courses by ID.
func (s *CourseService) GetCourseByID(ctx context.Context, id, ownerID int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: course ID must be positive", apperrors.ErrValidationFailed)
	}
	return s.courseRepo.GetByID(ctx, id, ownerID)
}

// ListCourses retrieves all of the user's courses ordered by name.
func (s *CourseService) ListCourses(ctx context.Context, ownerID int64) ([]*models.Course, error) {
	return s.courseRepo.ListByOwner(ctx, ownerID)
}

// UpdateCourse updates one of the user's courses.
func (s *CourseService) UpdateCourse(ctx context.Context, course *models.Course) error {
	course.Name = strings.TrimSpace(course.Name)
	course.Code = strings.TrimSpace(course.Code)

	if err := s.validateCourse(course); err != nil {
		return err
	}

	err := s.courseRepo.Update(ctx, course)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	return nil
}

// DeleteCourse deletes one of the user's courses together with all
// assignments that belong to it.
func (s *CourseService) DeleteCourse(ctx context.Context, id, ownerID int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: course ID must be positive", apperrors.ErrValidationFailed)
	}
	return s.courseRepo.Delete(ctx, id, ownerID)
}

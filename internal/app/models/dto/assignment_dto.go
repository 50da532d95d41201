package dto

import (
	"time"

	"github.com/selimc/homework-tracker/internal/app/models"
)

// CreateAssignmentRequest represents the request to create an assignment
type CreateAssignmentRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	CourseID    *int64     `json:"courseId" binding:"omitempty,min=1"`
}

// UpdateAssignmentRequest represents the request to update an assignment
type UpdateAssignmentRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	CourseID    *int64     `json:"courseId" binding:"omitempty,min=1"`
}

// AssignmentResponse represents an assignment in API responses
type AssignmentResponse struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
	Completed   bool            `json:"completed"`
	IsOverdue   bool            `json:"isOverdue"`
	Status      string          `json:"status" example:"Pending" enums:"Completed,Overdue,Pending"`
	CreatedAt   time.Time       `json:"createdAt"`
	Course      *CourseResponse `json:"course,omitempty"`
	Grade       *GradeResponse  `json:"grade,omitempty"`
}

// AssignmentListResponse represents a paginated list of assignments
type AssignmentListResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
	Pagination  PaginationInfo       `json:"pagination"`
}

// PaginationInfo represents pagination metadata
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
}

// FromAssignment converts a models.Assignment to an AssignmentResponse.
// Derived fields are computed against the supplied now.
func FromAssignment(a *models.Assignment, now time.Time) AssignmentResponse {
	if a == nil {
		return AssignmentResponse{}
	}
	resp := AssignmentResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		DueDate:     a.DueDate,
		Completed:   a.Completed,
		IsOverdue:   a.IsOverdue(now),
		Status:      a.Status(now),
		CreatedAt:   a.CreatedAt,
	}
	if a.Course != nil {
		course := FromCourse(a.Course)
		resp.Course = &course
	}
	if a.Grade != nil {
		grade := FromGrade(a.Grade)
		resp.Grade = &grade
	}
	return resp
}

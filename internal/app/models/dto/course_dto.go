package dto

import "github.com/selimc/homework-tracker/internal/app/models"

// CreateCourseRequest represents the request to create a course
type CreateCourseRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Code string `json:"code" binding:"omitempty,max=20"`
}

// UpdateCourseRequest represents the request to update a course
type UpdateCourseRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Code string `json:"code" binding:"omitempty,max=20"`
}

// CourseResponse represents a course in API responses
type CourseResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code,omitempty"`
	DisplayName string `json:"displayName"`
}

// FromCourse converts a models.Course to a CourseResponse
func FromCourse(course *models.Course) CourseResponse {
	if course == nil {
		return CourseResponse{}
	}
	return CourseResponse{
		ID:          course.ID,
		Name:        course.Name,
		Code:        course.Code,
		DisplayName: course.DisplayName(),
	}
}

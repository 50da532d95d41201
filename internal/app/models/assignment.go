package models

import (
	"time"
)

// Assignment status labels as shown in the UI
const (
	StatusCompleted = "Completed"
	StatusOverdue   = "Overdue"
	StatusPending   = "Pending"
)

// NoCoursePlaceholder is used wherever an uncategorized assignment needs a course label.
const NoCoursePlaceholder = "No Course"

// Assignment defines the assignment model based on the 'assignments' table.
// An assignment belongs to exactly one user and optionally to one of that
// user's courses; a nil CourseID means "uncategorized".
type Assignment struct {
	ID          int64      `json:"id" db:"id"`                             // Unique identifier for the assignment
	Title       string     `json:"title" db:"title"`                       // Short title shown in lists
	Description string     `json:"description,omitempty" db:"description"` // Optional detailed instructions or notes
	DueDate     *time.Time `json:"dueDate,omitempty" db:"due_date"`        // Deadline for completion (nullable)
	Completed   bool       `json:"completed" db:"completed"`               // Manually toggled by the user
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`              // Immutable, set at creation
	OwnerID     int64      `json:"ownerId" db:"owner_id"`                  // Owning user
	CourseID    *int64     `json:"courseId,omitempty" db:"course_id"`      // Optional course (nullable)

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"`
	Grade  *Grade  `json:"grade,omitempty"`
}

// IsOverdue reports whether the assignment is past its due date and still
// incomplete. Assignments without a due date are never overdue.
func (a *Assignment) IsOverdue(now time.Time) bool {
	return !a.Completed && a.DueDate != nil && a.DueDate.Before(now)
}

// Status returns the human-readable status label: Completed, Overdue or Pending.
func (a *Assignment) Status(now time.Time) string {
	if a.Completed {
		return StatusCompleted
	}
	if a.IsOverdue(now) {
		return StatusOverdue
	}
	return StatusPending
}

// CourseName returns the related course's name, or the "No Course" placeholder
// for uncategorized assignments.
func (a *Assignment) CourseName() string {
	if a.Course != nil {
		return a.Course.Name
	}
	return NoCoursePlaceholder
}

package models

import (
	"time"
)

// Grade stores grading details for a single assignment. Each assignment can
// have at most one grade (enforced by a unique constraint on assignment_id).
type Grade struct {
	ID           int64     `json:"id" db:"id"`
	AssignmentID int64     `json:"assignmentId" db:"assignment_id"`
	Score        float64   `json:"score" db:"score"`               // Points awarded
	MaxScore     float64   `json:"maxScore" db:"max_score"`        // Maximum possible points (default 100)
	Comment      *string   `json:"comment,omitempty" db:"comment"` // Optional feedback (nullable)
	GradedAt     time.Time `json:"gradedAt" db:"graded_at"`        // Updated on every save
}

// Percentage returns the grade as a percentage. A zero max score yields 0
// rather than a division error.
func (g *Grade) Percentage() float64 {
	if g.MaxScore == 0 {
		return 0
	}
	return g.Score / g.MaxScore * 100
}

package dto

import (
	"time"

	"github.com/selimc/homework-tracker/internal/app/models"
)

// RecordGradeRequest represents the request to record or update a grade.
// MaxScore defaults to 100 when omitted.
type RecordGradeRequest struct {
	Score    *float64 `json:"score" binding:"required,min=0"`
	MaxScore *float64 `json:"maxScore" binding:"omitempty,min=0"`
	Comment  string   `json:"comment"`
}

// GradeResponse represents a grade in API responses
type GradeResponse struct {
	ID         int64     `json:"id"`
	Score      float64   `json:"score"`
	MaxScore   float64   `json:"maxScore"`
	Percentage float64   `json:"percentage"`
	Comment    string    `json:"comment,omitempty"`
	GradedAt   time.Time `json:"gradedAt"`
}

// FromGrade converts a models.Grade to a GradeResponse
func FromGrade(g *models.Grade) GradeResponse {
	if g == nil {
		return GradeResponse{}
	}
	resp := GradeResponse{
		ID:         g.ID,
		Score:      g.Score,
		MaxScore:   g.MaxScore,
		Percentage: g.Percentage(),
		GradedAt:   g.GradedAt,
	}
	if g.Comment != nil {
		resp.Comment = *g.Comment
	}
	return resp
}

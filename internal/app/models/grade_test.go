package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradePercentage(t *testing.T) {
	tests := []struct {
		name  string
		grade Grade
		want  float64
	}{
		{name: "regular grade", grade: Grade{Score: 45, MaxScore: 50}, want: 90},
		{name: "full marks", grade: Grade{Score: 100, MaxScore: 100}, want: 100},
		{name: "zero score", grade: Grade{Score: 0, MaxScore: 50}, want: 0},
		{name: "zero max score", grade: Grade{Score: 10, MaxScore: 0}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.grade.Percentage(), 0.0001)
		})
	}
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time { return &t }

func TestAssignmentIsOverdue(t *testing.T) {
	tests := []struct {
		name       string
		assignment Assignment
		want       bool
	}{
		{
			name:       "past due and incomplete",
			assignment: Assignment{DueDate: timePtr(testNow.Add(-time.Hour))},
			want:       true,
		},
		{
			name:       "past due but completed",
			assignment: Assignment{DueDate: timePtr(testNow.Add(-time.Hour)), Completed: true},
			want:       false,
		},
		{
			name:       "due in the future",
			assignment: Assignment{DueDate: timePtr(testNow.Add(time.Hour))},
			want:       false,
		},
		{
			name:       "no due date",
			assignment: Assignment{},
			want:       false,
		},
		{
			name:       "due exactly now",
			assignment: Assignment{DueDate: timePtr(testNow)},
			want:       false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.assignment.IsOverdue(testNow))
		})
	}
}

func TestAssignmentStatus(t *testing.T) {
	tests := []struct {
		name       string
		assignment Assignment
		want       string
	}{
		{
			name:       "completed wins over overdue",
			assignment: Assignment{DueDate: timePtr(testNow.Add(-time.Hour)), Completed: true},
			want:       StatusCompleted,
		},
		{
			name:       "overdue",
			assignment: Assignment{DueDate: timePtr(testNow.Add(-time.Hour))},
			want:       StatusOverdue,
		},
		{
			name:       "pending with future due date",
			assignment: Assignment{DueDate: timePtr(testNow.Add(time.Hour))},
			want:       StatusPending,
		},
		{
			name:       "pending without due date",
			assignment: Assignment{},
			want:       StatusPending,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.assignment.Status(testNow))
		})
	}
}

func TestAssignmentCourseName(t *testing.T) {
	withCourse := Assignment{Course: &Course{Name: "Algorithms"}}
	assert.Equal(t, "Algorithms", withCourse.CourseName())

	uncategorized := Assignment{}
	assert.Equal(t, NoCoursePlaceholder, uncategorized.CourseName())
}

func TestCourseDisplayName(t *testing.T) {
	withCode := Course{Name: "Algorithms", Code: "CS301"}
	assert.Equal(t, "Algorithms (CS301)", withCode.DisplayName())

	withoutCode := Course{Name: "Art History"}
	assert.Equal(t, "Art History", withoutCode.DisplayName())
}

package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selimc/homework-tracker/internal/app/models"
)

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time { return &t }

func dueAt(day, hour int) *time.Time {
	return timePtr(time.Date(2024, 6, day, hour, 0, 0, 0, time.UTC))
}

func TestComputeStatistics(t *testing.T) {
	assignments := []*models.Assignment{
		{Title: "done", Completed: true},
		{Title: "done late", Completed: true, DueDate: dueAt(1, 10)},
		{Title: "overdue", DueDate: dueAt(9, 10)},
		{Title: "pending", DueDate: dueAt(15, 10)},
		{Title: "no due date"},
	}

	total, completed, overdue, rate := computeStatistics(assignments, testNow)

	assert.Equal(t, 5, total)
	assert.Equal(t, 2, completed)
	assert.Equal(t, 1, overdue)
	assert.InDelta(t, 40.0, rate, 0.0001)
}

func TestComputeStatisticsEmpty(t *testing.T) {
	total, completed, overdue, rate := computeStatistics(nil, testNow)

	assert.Zero(t, total)
	assert.Zero(t, completed)
	assert.Zero(t, overdue)
	assert.Zero(t, rate)
}

func TestComputeStatisticsRounding(t *testing.T) {
	// 2 of 3 completed: 66.666... rounds to 66.7
	assignments := []*models.Assignment{
		{Completed: true},
		{Completed: true},
		{},
	}

	_, _, _, rate := computeStatistics(assignments, testNow)
	assert.InDelta(t, 66.7, rate, 0.0001)
}

func TestBuildCourseChart(t *testing.T) {
	physics := &models.Course{ID: 1, Name: "Physics"}
	algorithms := &models.Course{ID: 2, Name: "Algorithms"}

	assignments := []*models.Assignment{
		{Course: physics, Completed: true},
		{Course: physics},
		{Course: physics},
		{Course: algorithms, Completed: true},
		{Title: "uncategorized, excluded from the chart"},
	}

	chart := buildCourseChart(assignments)

	require.Len(t, chart, 2)
	// Ordered by course name ascending.
	assert.Equal(t, "Algorithms", chart[0].CourseName)
	assert.InDelta(t, 100.0, chart[0].CompletionRate, 0.0001)
	assert.Equal(t, "Physics", chart[1].CourseName)
	assert.InDelta(t, 33.3, chart[1].CompletionRate, 0.0001)
}

func TestBuildCourseChartEmpty(t *testing.T) {
	chart := buildCourseChart([]*models.Assignment{{Title: "no course"}})
	assert.Empty(t, chart)
}

func TestSelectUpcomingWindow(t *testing.T) {
	assignments := []*models.Assignment{
		{Title: "earlier today", DueDate: dueAt(10, 1)},         // in: today counts even if the hour has passed
		{Title: "last day of window", DueDate: dueAt(16, 23)},   // in: sixth day after today
		{Title: "yesterday", DueDate: dueAt(9, 23)},             // out: in the past
		{Title: "one day too far", DueDate: dueAt(17, 0)},       // out: beyond the window
		{Title: "completed", DueDate: dueAt(12, 10), Completed: true},
		{Title: "no due date"},
	}

	upcoming := selectUpcoming(assignments, testNow)

	require.Len(t, upcoming, 2)
	assert.Equal(t, "earlier today", upcoming[0].Title)
	assert.Equal(t, "last day of window", upcoming[1].Title)
}

func TestSelectUpcomingOrderAndCap(t *testing.T) {
	// Build 12 candidates in reverse due order; only the 10 soonest survive.
	assignments := make([]*models.Assignment, 0, 12)
	for i := 11; i >= 0; i-- {
		assignments = append(assignments, &models.Assignment{
			Title:   fmt.Sprintf("a%d", i),
			DueDate: timePtr(testNow.Add(time.Duration(i+1) * time.Hour)),
		})
	}

	upcoming := selectUpcoming(assignments, testNow)

	require.Len(t, upcoming, MaxUpcomingAssignments)
	for i := 0; i < len(upcoming)-1; i++ {
		assert.False(t, upcoming[i+1].DueDate.Before(*upcoming[i].DueDate), "upcoming must be ordered soonest first")
	}
	assert.Equal(t, "a0", upcoming[0].Title)
}

func TestSelectReminders(t *testing.T) {
	assignments := []*models.Assignment{
		{Title: "due in a minute", DueDate: timePtr(testNow.Add(time.Minute))},
		{Title: "due exactly now", DueDate: timePtr(testNow)},
		{Title: "far future, still included", DueDate: dueAt(30, 10)},
		{Title: "past", DueDate: dueAt(9, 10)},
		{Title: "completed", DueDate: timePtr(testNow.Add(time.Hour)), Completed: true},
		{Title: "no due date"},
	}

	reminders := selectReminders(assignments, testNow)

	require.Len(t, reminders, 2)
	assert.Equal(t, "due in a minute", reminders[0].Title)
	assert.Equal(t, "far future, still included", reminders[1].Title)
	assert.Equal(t, testNow.Add(time.Minute).Format(time.RFC3339), reminders[0].DueDate)
}

func TestBuildCalendarEvents(t *testing.T) {
	course := &models.Course{ID: 1, Name: "Physics"}
	assignments := []*models.Assignment{
		{Title: "graded past work", DueDate: dueAt(1, 10), Completed: true, Course: course},
		{Title: "overdue", DueDate: dueAt(9, 10)},
		{Title: "upcoming", DueDate: dueAt(20, 10)},
		{Title: "no due date, skipped"},
	}

	events := buildCalendarEvents(assignments, testNow)

	require.Len(t, events, 3)

	assert.Equal(t, "graded past work", events[0].Title)
	assert.Equal(t, "2024-06-01T10:00:00Z", events[0].Start)
	assert.True(t, events[0].ExtendedProps.Completed)
	assert.False(t, events[0].ExtendedProps.IsOverdue)
	assert.Equal(t, "Physics", events[0].ExtendedProps.Course)

	assert.True(t, events[1].ExtendedProps.IsOverdue)
	assert.Equal(t, models.NoCoursePlaceholder, events[1].ExtendedProps.Course)

	assert.False(t, events[2].ExtendedProps.IsOverdue)
	assert.False(t, events[2].ExtendedProps.Completed)
}

func TestSelectUpcomingUsesLocalCalendarDays(t *testing.T) {
	// 2024-06-10 22:00 in UTC+10: the local day runs to 2024-06-10T14:00Z.
	loc := time.FixedZone("UTC+10", 10*3600)
	localNow := time.Date(2024, 6, 10, 22, 0, 0, 0, loc)

	// 2024-06-17T10:00+10 is the 7th local day, outside the window;
	// 2024-06-16T23:30+10 is still the 6th day after today, inside.
	inside := time.Date(2024, 6, 16, 23, 30, 0, 0, loc)
	outside := time.Date(2024, 6, 17, 10, 0, 0, 0, loc)

	assignments := []*models.Assignment{
		{Title: "inside", DueDate: timePtr(inside)},
		{Title: "outside", DueDate: timePtr(outside)},
	}

	upcoming := selectUpcoming(assignments, localNow)

	require.Len(t, upcoming, 1)
	assert.Equal(t, "inside", upcoming[0].Title)
}

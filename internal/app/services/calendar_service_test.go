package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selimc/homework-tracker/internal/app/models"
)

func TestBuildCalendarSingleEvent(t *testing.T) {
	now := time.Date(2024, 6, 10, 8, 30, 15, 0, time.UTC)
	assignments := []*models.Assignment{
		{
			ID:          7,
			Title:       "Essay",
			Description: "Write about Go",
			DueDate:     timePtr(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)),
		},
	}

	got := buildCalendar(assignments, now)

	want := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Homework Tracker//Homework Tracker//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:assignment-7@homeworktracker",
		"SUMMARY:Essay",
		"DESCRIPTION:Write about Go",
		"DTSTART:20240601T100000Z",
		"DTEND:20240601T100000Z",
		"DTSTAMP:20240610T083015Z",
		"END:VEVENT",
		"END:VCALENDAR",
	}, "\r\n")

	assert.Equal(t, want, got)
}

func TestBuildCalendarSkipsCompletedAndUndated(t *testing.T) {
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	assignments := []*models.Assignment{
		{ID: 1, Title: "completed", DueDate: timePtr(now), Completed: true},
		{ID: 2, Title: "no due date"},
		{ID: 3, Title: "exported", DueDate: timePtr(now.Add(24 * time.Hour))},
	}

	got := buildCalendar(assignments, now)

	assert.Equal(t, 1, strings.Count(got, "BEGIN:VEVENT"))
	assert.Contains(t, got, "UID:assignment-3@homeworktracker")
	assert.NotContains(t, got, "completed")
	assert.NotContains(t, got, "no due date")
}

func TestBuildCalendarEmptyDescriptionFallback(t *testing.T) {
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	assignments := []*models.Assignment{
		{ID: 1, Title: "bare", DueDate: timePtr(now.Add(time.Hour))},
	}

	got := buildCalendar(assignments, now)

	assert.Contains(t, got, "DESCRIPTION:No description")
}

func TestBuildCalendarConvertsToUTC(t *testing.T) {
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	loc := time.FixedZone("UTC+3", 3*3600)
	assignments := []*models.Assignment{
		{ID: 1, Title: "local due date", DueDate: timePtr(time.Date(2024, 6, 12, 13, 0, 0, 0, loc))},
	}

	got := buildCalendar(assignments, now)

	assert.Contains(t, got, "DTSTART:20240612T100000Z")
}

func TestBuildCalendarEmpty(t *testing.T) {
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	got := buildCalendar(nil, now)

	lines := strings.Split(got, "\r\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "BEGIN:VCALENDAR", lines[0])
	assert.Equal(t, "END:VCALENDAR", lines[5])
}

package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/selimc/homework-tracker/internal/app/models"
	"github.com/selimc/homework-tracker/internal/app/repositories"
)

// iCalendar output constants. UTC timestamps keep the export compatible with
// calendar apps like Google Calendar.
const (
	icsProductID   = "-//Homework Tracker//Homework Tracker//EN"
	icsTimeLayout  = "20060102T150405Z"
	icsUIDSuffix   = "@homeworktracker"
	icsContentType = "text/calendar"
	icsFilename    = "homework_tracker.ics"
)

// CalendarService exports a user's open assignments as an iCalendar file.
type CalendarService struct {
	assignmentRepo *repositories.AssignmentRepository
}

// NewCalendarService creates a new calendar service instance
func NewCalendarService(assignmentRepo *repositories.AssignmentRepository) *CalendarService {
	return &CalendarService{assignmentRepo: assignmentRepo}
}

// ContentType returns the MIME type of the export.
func (s *CalendarService) ContentType() string { return icsContentType }

// Filename returns the attachment filename of the export.
func (s *CalendarService) Filename() string { return icsFilename }

// buildCalendar renders the iCalendar document for the given assignments.
// Completed assignments and assignments without a due date are skipped; each
// remaining one becomes a zero-length VEVENT at its due date. Lines are
// joined with CRLF as the format requires.
func buildCalendar(assignments []*models.Assignment, now time.Time) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + icsProductID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
	}

	stamp := now.UTC().Format(icsTimeLayout)

	for _, a := range assignments {
		if a.Completed || a.DueDate == nil {
			continue
		}

		description := a.Description
		if description == "" {
			description = "No description"
		}

		due := a.DueDate.UTC().Format(icsTimeLayout)
		lines = append(lines,
			"BEGIN:VEVENT",
			fmt.Sprintf("UID:assignment-%d%s", a.ID, icsUIDSuffix),
			"SUMMARY:"+a.Title,
			"DESCRIPTION:"+description,
			"DTSTART:"+due,
			"DTEND:"+due,
			"DTSTAMP:"+stamp,
			"END:VEVENT",
		)
	}

	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\r\n")
}

// ExportCalendar renders the user's incomplete assignments as an iCalendar
// document.
func (s *CalendarService) ExportCalendar(ctx context.Context, ownerID int64, now time.Time) (string, error) {
	completed := false
	hasDueDate := true
	assignments, _, err := s.assignmentRepo.ListByOwner(ctx, ownerID, repositories.AssignmentFilter{
		Completed:  &completed,
		HasDueDate: &hasDueDate,
	}, 0, 0)
	if err != nil {
		return "", fmt.Errorf("error loading assignments: %w", err)
	}

	return buildCalendar(assignments, now), nil
}

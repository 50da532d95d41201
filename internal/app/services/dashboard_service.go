package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/selimc/homework-tracker/internal/app/models"
	"github.com/selimc/homework-tracker/internal/app/models/dto"
	"github.com/selimc/homework-tracker/internal/app/repositories"
	"github.com/selimc/homework-tracker/internal/pkg/helpers"
)

// UpcomingWindowDays is the span of the upcoming-deadlines window, counted in
// calendar days including today.
const UpcomingWindowDays = 7

// MaxUpcomingAssignments caps the upcoming-deadlines list.
const MaxUpcomingAssignments = 10

// DashboardService aggregates a user's assignments into the dashboard
// view-model: completion statistics, the per-course chart, the upcoming
// window and the calendar/reminder feeds.
type DashboardService struct {
	assignmentRepo *repositories.AssignmentRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(assignmentRepo *repositories.AssignmentRepository) *DashboardService {
	return &DashboardService{assignmentRepo: assignmentRepo}
}

// roundRate rounds a percentage to one decimal place.
func roundRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}

// computeStatistics counts the user's assignments and derives the overall
// completion rate. An assignment counts as overdue when it is incomplete and
// its due date lies strictly in the past; assignments without a due date are
// never overdue.
func computeStatistics(assignments []*models.Assignment, now time.Time) (total, completed, overdue int, completionRate float64) {
	total = len(assignments)
	for _, a := range assignments {
		if a.Completed {
			completed++
		} else if a.IsOverdue(now) {
			overdue++
		}
	}
	completionRate = roundRate(completed, total)
	return
}

// buildCourseChart computes per-course completion rates, ordered by course
// name ascending. Uncategorized assignments are excluded.
func buildCourseChart(assignments []*models.Assignment) []dto.CourseChartEntry {
	type courseCount struct {
		total     int
		completed int
	}
	counts := map[string]*courseCount{}
	for _, a := range assignments {
		if a.Course == nil {
			continue
		}
		c, ok := counts[a.Course.Name]
		if !ok {
			c = &courseCount{}
			counts[a.Course.Name] = c
		}
		c.total++
		if a.Completed {
			c.completed++
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	chart := make([]dto.CourseChartEntry, 0, len(names))
	for _, name := range names {
		c := counts[name]
		chart = append(chart, dto.CourseChartEntry{
			CourseName:     name,
			CompletionRate: roundRate(c.completed, c.total),
		})
	}
	return chart
}

// selectUpcoming picks the incomplete assignments whose due date falls on
// one of the next seven calendar days including today, in now's location.
// The result is ordered soonest first and capped at ten entries.
func selectUpcoming(assignments []*models.Assignment, now time.Time) []*models.Assignment {
	windowStart := helpers.StartOfDay(now)
	windowEnd := windowStart.AddDate(0, 0, UpcomingWindowDays-1)

	upcoming := []*models.Assignment{}
	for _, a := range assignments {
		if a.Completed || a.DueDate == nil {
			continue
		}
		dueDay := helpers.StartOfDay(a.DueDate.In(now.Location()))
		if dueDay.Before(windowStart) || dueDay.After(windowEnd) {
			continue
		}
		upcoming = append(upcoming, a)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(*upcoming[j].DueDate)
	})

	if len(upcoming) > MaxUpcomingAssignments {
		upcoming = upcoming[:MaxUpcomingAssignments]
	}
	return upcoming
}

// selectReminders picks every incomplete assignment due strictly after now,
// for the browser reminder feed. Unlike the upcoming window the list is
// unbounded and uncapped.
func selectReminders(assignments []*models.Assignment, now time.Time) []dto.ReminderAssignment {
	reminders := []dto.ReminderAssignment{}
	for _, a := range assignments {
		if a.Completed || a.DueDate == nil || !a.DueDate.After(now) {
			continue
		}
		reminders = append(reminders, dto.ReminderAssignment{
			Title:   a.Title,
			DueDate: a.DueDate.In(now.Location()).Format(time.RFC3339),
		})
	}
	return reminders
}

// buildCalendarEvents turns every assignment with a due date into a calendar
// event. Timestamps are kept in UTC for calendar consistency.
func buildCalendarEvents(assignments []*models.Assignment, now time.Time) []dto.CalendarEvent {
	events := []dto.CalendarEvent{}
	for _, a := range assignments {
		if a.DueDate == nil {
			continue
		}
		events = append(events, dto.CalendarEvent{
			Title: a.Title,
			Start: a.DueDate.UTC().Format(time.RFC3339),
			ExtendedProps: dto.CalendarEventProps{
				Completed: a.Completed,
				IsOverdue: a.IsOverdue(now),
				Course:    a.CourseName(),
			},
		})
	}
	return events
}

// GetDashboard composes the dashboard view-model for a user. The upcoming
// and calendar collections are additionally pre-encoded as JSON strings so
// the rendered page can embed them verbatim.
func (s *DashboardService) GetDashboard(ctx context.Context, ownerID int64, now time.Time) (*dto.DashboardResponse, error) {
	assignments, _, err := s.assignmentRepo.ListByOwner(ctx, ownerID, repositories.AssignmentFilter{}, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("error loading assignments: %w", err)
	}

	total, completed, overdue, completionRate := computeStatistics(assignments, now)
	upcoming := selectUpcoming(assignments, now)

	upcomingResponses := make([]dto.AssignmentResponse, 0, len(upcoming))
	upcomingEmbedded := make([]dto.UpcomingAssignment, 0, len(upcoming))
	for _, a := range upcoming {
		upcomingResponses = append(upcomingResponses, dto.FromAssignment(a, now))
		upcomingEmbedded = append(upcomingEmbedded, dto.UpcomingAssignment{
			Title:   a.Title,
			DueDate: a.DueDate.In(now.Location()).Format(time.RFC3339),
			Course:  a.CourseName(),
		})
	}

	upcomingJSON, err := json.Marshal(upcomingEmbedded)
	if err != nil {
		return nil, fmt.Errorf("error encoding upcoming assignments: %w", err)
	}

	calendarJSON, err := json.Marshal(buildCalendarEvents(assignments, now))
	if err != nil {
		return nil, fmt.Errorf("error encoding calendar events: %w", err)
	}

	return &dto.DashboardResponse{
		TotalAssignments:     total,
		CompletedAssignments: completed,
		OverdueAssignments:   overdue,
		CompletionRate:       completionRate,
		CourseChartData:      buildCourseChart(assignments),
		UpcomingAssignments:  upcomingResponses,
		UpcomingForReminder:  selectReminders(assignments, now),
		UpcomingJSON:         string(upcomingJSON),
		CalendarEventsJSON:   string(calendarJSON),
	}, nil
}

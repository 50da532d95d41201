package dto

// CourseChartEntry is one bar of the per-course completion chart. The JSON
// field names match what the dashboard chart script consumes.
type CourseChartEntry struct {
	CourseName     string  `json:"course_name"`
	CompletionRate float64 `json:"completion_rate"`
}

// UpcomingAssignment is one entry of the embedded upcoming-deadlines JSON.
// DueDate is an ISO-8601 timestamp in the server's local time.
type UpcomingAssignment struct {
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
	Course  string `json:"course"`
}

// ReminderAssignment is one entry of the browser-reminder feed. Unlike the
// upcoming list it is unbounded, uncapped and carries no course field.
type ReminderAssignment struct {
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
}

// CalendarEventProps carries the extended properties of a calendar event.
type CalendarEventProps struct {
	Completed bool   `json:"completed"`
	IsOverdue bool   `json:"is_overdue"`
	Course    string `json:"course"`
}

// CalendarEvent is one entry of the full-calendar feed. Start is an ISO-8601
// timestamp kept in UTC for calendar consistency.
type CalendarEvent struct {
	Title         string             `json:"title"`
	Start         string             `json:"start"`
	ExtendedProps CalendarEventProps `json:"extendedProps"`
}

// DashboardResponse is the composed dashboard view-model. The calendar and
// upcoming collections are additionally pre-encoded as JSON strings so the
// rendered page can embed them verbatim.
type DashboardResponse struct {
	TotalAssignments     int                  `json:"totalAssignments"`
	CompletedAssignments int                  `json:"completedAssignments"`
	OverdueAssignments   int                  `json:"overdueAssignments"`
	CompletionRate       float64              `json:"completionRate"`
	CourseChartData      []CourseChartEntry   `json:"courseChartData"`
	UpcomingAssignments  []AssignmentResponse `json:"upcomingAssignments"`
	UpcomingForReminder  []ReminderAssignment `json:"upcomingAssignmentsForReminder"`
	UpcomingJSON         string               `json:"upcomingJson"`
	CalendarEventsJSON   string               `json:"calendarEventsJson"`
}

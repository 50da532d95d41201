package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/selimc/homework-tracker/internal/app/models"
	"github.com/selimc/homework-tracker/internal/app/models/dto"
	"github.com/selimc/homework-tracker/internal/app/repositories"
	"github.com/selimc/homework-tracker/internal/app/services"
	"github.com/selimc/homework-tracker/internal/middleware"
	"github.com/selimc/homework-tracker/internal/pkg/helpers"
)

// CourseFilterUncategorized selects assignments without a course in the
// list endpoint's course query parameter.
const CourseFilterUncategorized = "uncategorized"

// AssignmentController handles assignment-related operations
type AssignmentController struct {
	assignmentService *services.AssignmentService
	calendarService   *services.CalendarService
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService *services.AssignmentService, calendarService *services.CalendarService) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
		calendarService:   calendarService,
	}
}

// buildListFilter interprets the list endpoint's query parameters.
func buildListFilter(ctx *gin.Context) repositories.AssignmentFilter {
	filter := repositories.AssignmentFilter{
		Search: strings.TrimSpace(ctx.Query("q")),
	}

	courseParam := strings.TrimSpace(ctx.Query("course"))
	if courseParam == CourseFilterUncategorized {
		filter.Uncategorized = true
	} else if courseID, err := strconv.ParseInt(courseParam, 10, 64); err == nil && courseID > 0 {
		filter.CourseID = &courseID
	}

	if completedParam := ctx.Query("completed"); completedParam != "" {
		if completed, err := strconv.ParseBool(completedParam); err == nil {
			filter.Completed = &completed
		}
	}

	if fromParam := ctx.Query("dueFrom"); fromParam != "" {
		if from, err := time.Parse(time.RFC3339, fromParam); err == nil {
			filter.DueFrom = &from
		}
	}
	if untilParam := ctx.Query("dueUntil"); untilParam != "" {
		if until, err := time.Parse(time.RFC3339, untilParam); err == nil {
			filter.DueUntil = &until
		}
	}

	return filter
}

// CreateAssignment handles assignment creation
// @Summary Create a new assignment
// @Description Creates a new assignment owned by the authenticated user, optionally linked to one of their courses
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAssignmentRequest true "Assignment information"
// @Success 201 {object} dto.APIResponse{data=dto.AssignmentResponse} "Assignment created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	assignment := &models.Assignment{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		CourseID:    req.CourseID,
		OwnerID:     userID,
	}
	if err := c.assignmentService.CreateAssignment(ctx, assignment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// Re-read to pick up the joined course for the response.
	created, err := c.assignmentService.GetAssignmentByID(ctx, assignment.ID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromAssignment(created, time.Now()),
		Timestamp: time.Now(),
	})
}

// GetAssignmentByID retrieves an assignment by ID
// @Summary Get assignment by ID
// @Description Retrieves one of the authenticated user's assignments with its course and grade
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=dto.AssignmentResponse} "Assignment retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid assignment ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments/{id} [get]
func (c *AssignmentController) GetAssignmentByID(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id", "Assignment")
	if !ok {
		return
	}

	assignment, err := c.assignmentService.GetAssignmentByID(ctx, id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromAssignment(assignment, time.Now()),
		Timestamp: time.Now(),
	})
}

// ListAssignments retrieves a filtered list of assignments
// @Summary List assignments
// @Description Retrieves the authenticated user's assignments with optional course filter and keyword search, ordered soonest due first
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search in title and course name"
// @Param course query string false "Course ID or 'uncategorized'"
// @Param completed query bool false "Filter by completion state"
// @Param dueFrom query string false "Earliest due date (RFC3339, inclusive)"
// @Param dueUntil query string false "Latest due date (RFC3339, inclusive)"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.AssignmentListResponse} "Assignments retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments [get]
func (c *AssignmentController) ListAssignments(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	filter := buildListFilter(ctx)
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	assignments, total, err := c.assignmentService.ListAssignments(ctx, userID, filter, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	now := time.Now()
	responses := make([]dto.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, dto.FromAssignment(a, now))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.AssignmentListResponse{
			Assignments: responses,
			Pagination:  helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: now,
	})
}

// UpdateAssignment updates an existing assignment
// @Summary Update an assignment
// @Description Updates one of the authenticated user's assignments; completion status is unchanged
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Param request body dto.UpdateAssignmentRequest true "Updated assignment information"
// @Success 200 {object} dto.APIResponse{data=dto.AssignmentResponse} "Assignment updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Assignment or course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments/{id} [put]
func (c *AssignmentController) UpdateAssignment(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id", "Assignment")
	if !ok {
		return
	}

	var req dto.UpdateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	assignment := &models.Assignment{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		CourseID:    req.CourseID,
		OwnerID:     userID,
	}
	if err := c.assignmentService.UpdateAssignment(ctx, assignment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	updated, err := c.assignmentService.GetAssignmentByID(ctx, id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromAssignment(updated, time.Now()),
		Timestamp: time.Now(),
	})
}

// ToggleCompleted flips the completion status of an assignment
// @Summary Toggle assignment completion
// @Description Flips the completion status of one of the authenticated user's assignments
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=dto.AssignmentResponse} "Assignment toggled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid assignment ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments/{id}/toggle [post]
func (c *AssignmentController) ToggleCompleted(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id", "Assignment")
	if !ok {
		return
	}

	assignment, err := c.assignmentService.ToggleCompleted(ctx, id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromAssignment(assignment, time.Now()),
		Timestamp: time.Now(),
	})
}

// DeleteAssignment deletes an assignment
// @Summary Delete an assignment
// @Description Deletes one of the authenticated user's assignments
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse "Assignment deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid assignment ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments/{id} [delete]
func (c *AssignmentController) DeleteAssignment(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id", "Assignment")
	if !ok {
		return
	}

	if err := c.assignmentService.DeleteAssignment(ctx, id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"message": "Assignment deleted"},
		Timestamp: time.Now(),
	})
}

// ExportCalendar exports incomplete assignments as an iCalendar file
// @Summary Export assignments as iCalendar
// @Description Exports the authenticated user's incomplete assignments with due dates as an .ics file
// @Tags assignments
// @Produce text/calendar
// @Security BearerAuth
// @Success 200 {string} string "iCalendar document"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments/calendar [get]
func (c *AssignmentController) ExportCalendar(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	calendar, err := c.calendarService.ExportCalendar(ctx, userID, time.Now())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+c.calendarService.Filename()+`"`)
	ctx.Data(http.StatusOK, c.calendarService.ContentType(), []byte(calendar))
}

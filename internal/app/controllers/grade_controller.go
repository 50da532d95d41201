package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/selimc/homework-tracker/internal/app/models/dto"
	"github.com/selimc/homework-tracker/internal/app/services"
	"github.com/selimc/homework-tracker/internal/middleware"
)

// GradeController handles grade recording for assignments
type GradeController struct {
	gradeService *services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService *services.GradeService) *GradeController {
	return &GradeController{gradeService: gradeService}
}

// RecordGrade records or replaces the grade of an assignment
// @Summary Record a grade
// @Description Records or replaces the grade of one of the authenticated user's assignments and marks it completed
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Param request body dto.RecordGradeRequest true "Grade information"
// @Success 200 {object} dto.APIResponse{data=dto.GradeResponse} "Grade recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments/{id}/grade [put]
func (c *GradeController) RecordGrade(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	assignmentID, ok := parseIDParam(ctx, "id", "Assignment")
	if !ok {
		return
	}

	var req dto.RecordGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	grade, err := c.gradeService.RecordGrade(ctx, assignmentID, userID, *req.Score, req.MaxScore, req.Comment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromGrade(grade),
		Timestamp: time.Now(),
	})
}

// GetGrade retrieves the grade of an assignment
// @Summary Get grade
// @Description Retrieves the grade of one of the authenticated user's assignments
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=dto.GradeResponse} "Grade retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid assignment ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Assignment or grade not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments/{id}/grade [get]
func (c *GradeController) GetGrade(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	assignmentID, ok := parseIDParam(ctx, "id", "Assignment")
	if !ok {
		return
	}

	grade, err := c.gradeService.GetGrade(ctx, assignmentID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromGrade(grade),
		Timestamp: time.Now(),
	})
}

// DeleteGrade removes the grade of an assignment
// @Summary Delete grade
// @Description Removes the grade of one of the authenticated user's assignments
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse "Grade deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid assignment ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Assignment or grade not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments/{id}/grade [delete]
func (c *GradeController) DeleteGrade(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	assignmentID, ok := parseIDParam(ctx, "id", "Assignment")
	if !ok {
		return
	}

	if err := c.gradeService.DeleteGrade(ctx, assignmentID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"message": "Grade deleted"},
		Timestamp: time.Now(),
	})
}

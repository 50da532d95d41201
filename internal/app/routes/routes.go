package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/selimc/homework-tracker/internal/app/controllers"
	"github.com/selimc/homework-tracker/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	assignmentController *controllers.AssignmentController,
	gradeController *controllers.GradeController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/users/me", authController.GetProfile)

		// Course routes
		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.ListCourses)
			courses.POST("", courseController.CreateCourse)
			courses.GET("/:id", courseController.GetCourseByID)
			courses.PUT("/:id", courseController.UpdateCourse)
			courses.DELETE("/:id", courseController.DeleteCourse)
		}

		// Assignment routes, including the calendar export and grades
		assignments := authenticated.Group("/assignments")
		{
			assignments.GET("", assignmentController.ListAssignments)
			assignments.POST("", assignmentController.CreateAssignment)
			assignments.GET("/calendar", assignmentController.ExportCalendar)
			assignments.GET("/:id", assignmentController.GetAssignmentByID)
			assignments.PUT("/:id", assignmentController.UpdateAssignment)
			assignments.DELETE("/:id", assignmentController.DeleteAssignment)
			assignments.POST("/:id/toggle", assignmentController.ToggleCompleted)

			assignments.GET("/:id/grade", gradeController.GetGrade)
			assignments.PUT("/:id/grade", gradeController.RecordGrade)
			assignments.DELETE("/:id/grade", gradeController.DeleteGrade)
		}

		// Dashboard
		authenticated.GET("/dashboard", dashboardController.GetDashboard)
	}
}

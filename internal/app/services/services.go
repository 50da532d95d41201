// Services defined in this package:
// - AuthService: Handles registration, login and token refresh
// - CourseService: Handles operations related to courses
// - AssignmentService: Handles operations related to assignments
// - GradeService: Handles grade recording for assignments
// - DashboardService: Aggregates per-user statistics and deadline feeds
// - CalendarService: Exports assignments as an iCalendar file
package services

import (
	"github.com/rs/zerolog"

	"github.com/selimc/homework-tracker/internal/app/repositories"
	"github.com/selimc/homework-tracker/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService       *AuthService
	CourseService     *CourseService
	AssignmentService *AssignmentService
	GradeService      *GradeService
	DashboardService  *DashboardService
	CalendarService   *CalendarService
}

// NewServices wires all services to their repositories.
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, logger zerolog.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(repos.UserRepository, repos.TokenRepository, jwtService, logger),
		CourseService:     NewCourseService(repos.CourseRepository),
		AssignmentService: NewAssignmentService(repos.AssignmentRepository, repos.CourseRepository),
		GradeService:      NewGradeService(repos.GradeRepository, repos.AssignmentRepository),
		DashboardService:  NewDashboardService(repos.AssignmentRepository),
		CalendarService:   NewCalendarService(repos.AssignmentRepository),
	}
}

package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	TokenRepository      *TokenRepository
	CourseRepository     *CourseRepository
	AssignmentRepository *AssignmentRepository
	GradeRepository      *GradeRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		TokenRepository:      NewTokenRepository(db),
		CourseRepository:     NewCourseRepository(db),
		AssignmentRepository: NewAssignmentRepository(db),
		GradeRepository:      NewGradeRepository(db),
	}
}

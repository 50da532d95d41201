package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/selimc/homework-tracker/internal/app/models"
	"github.com/selimc/homework-tracker/internal/pkg/apperrors"
	"github.com/selimc/homework-tracker/internal/pkg/dberrors"
	"github.com/selimc/homework-tracker/internal/pkg/logger"
)

// GradeRepository handles grade database operations. A grade belongs to
// exactly one assignment; recording a grade again replaces the previous one.
type GradeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGradeRepository creates a new GradeRepository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByAssignmentID retrieves the grade recorded for an assignment.
func (r *GradeRepository) GetByAssignmentID(ctx context.Context, assignmentID int64) (*models.Grade, error) {
	sql, args, err := r.sb.Select("id", "assignment_id", "score", "max_score", "comment", "graded_at").
		From("grades").
		Where(squirrel.Eq{"assignment_id": assignmentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get grade query: %w", err)
	}

	grade := &models.Grade{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&grade.ID, &grade.AssignmentID, &grade.Score, &grade.MaxScore, &grade.Comment, &grade.GradedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGradeNotFound
		}
		return nil, fmt.Errorf("error getting grade by assignment ID: %w", err)
	}

	return grade, nil
}

// Upsert inserts the grade for its assignment, replacing any existing one.
// The model's ID and GradedAt are filled from the resulting row.
func (r *GradeRepository) Upsert(ctx context.Context, grade *models.Grade) error {
	sql, args, err := r.sb.Insert("grades").
		Columns("assignment_id", "score", "max_score", "comment").
		Values(grade.AssignmentID, grade.Score, grade.MaxScore, grade.Comment).
		Suffix(`ON CONFLICT (assignment_id) DO UPDATE
			SET score = EXCLUDED.score, max_score = EXCLUDED.max_score, comment = EXCLUDED.comment, graded_at = NOW()
			RETURNING id, graded_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert grade query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&grade.ID, &grade.GradedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrAssignmentNotFound
		}
		logger.Error().Err(err).Int64("assignmentID", grade.AssignmentID).Msg("Error executing upsert grade query")
		return fmt.Errorf("error recording grade: %w", err)
	}

	return nil
}

// DeleteByAssignmentID removes the grade recorded for an assignment.
func (r *GradeRepository) DeleteByAssignmentID(ctx context.Context, assignmentID int64) error {
	sql, args, err := r.sb.Delete("grades").
		Where(squirrel.Eq{"assignment_id": assignmentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete grade query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting grade: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}

	return nil
}

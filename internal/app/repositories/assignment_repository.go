package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/selimc/homework-tracker/internal/app/models"
	"github.com/selimc/homework-tracker/internal/pkg/apperrors"
	"github.com/selimc/homework-tracker/internal/pkg/logger"
)

// AssignmentFilter is an explicit filter specification interpreted by the
// repository in a single pass. Nil pointer fields mean "no constraint".
type AssignmentFilter struct {
	// Completed filters on completion state.
	Completed *bool
	// CourseID restricts to a single course.
	CourseID *int64
	// Uncategorized restricts to assignments without a course. Mutually
	// exclusive with CourseID; CourseID wins if both are set.
	Uncategorized bool
	// Search matches title or course name, case-insensitively.
	Search string
	// HasDueDate filters on due date presence.
	HasDueDate *bool
	// DueFrom / DueUntil bound the due date inclusively on either side.
	DueFrom  *time.Time
	DueUntil *time.Time
}

// apply adds the filter's conditions to a select builder. The builder is
// expected to alias assignments as "a" and left-join courses as "c".
func (f AssignmentFilter) apply(q squirrel.SelectBuilder) squirrel.SelectBuilder {
	if f.Completed != nil {
		q = q.Where(squirrel.Eq{"a.completed": *f.Completed})
	}
	switch {
	case f.CourseID != nil:
		q = q.Where(squirrel.Eq{"a.course_id": *f.CourseID})
	case f.Uncategorized:
		q = q.Where("a.course_id IS NULL")
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"a.title": pattern},
			squirrel.ILike{"c.name": pattern},
		})
	}
	if f.HasDueDate != nil {
		if *f.HasDueDate {
			q = q.Where("a.due_date IS NOT NULL")
		} else {
			q = q.Where("a.due_date IS NULL")
		}
	}
	if f.DueFrom != nil {
		q = q.Where(squirrel.GtOrEq{"a.due_date": *f.DueFrom})
	}
	if f.DueUntil != nil {
		q = q.Where(squirrel.LtOrEq{"a.due_date": *f.DueUntil})
	}
	return q
}

// AssignmentRepository handles assignment database operations. All lookups
// are owner-scoped; records of other users are indistinguishable from
// missing ones.
type AssignmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// selectAssignments builds the base select with course and grade relations
// joined in, owner-scoped and ordered soonest due first.
func (r *AssignmentRepository) selectAssignments(ownerID int64) squirrel.SelectBuilder {
	return r.sb.Select(
		"a.id", "a.title", "a.description", "a.due_date", "a.completed", "a.created_at", "a.owner_id", "a.course_id",
		"c.name", "c.code",
		"g.id", "g.score", "g.max_score", "g.comment", "g.graded_at",
	).
		From("assignments a").
		LeftJoin("courses c ON c.id = a.course_id").
		LeftJoin("grades g ON g.assignment_id = a.id").
		Where(squirrel.Eq{"a.owner_id": ownerID}).
		OrderBy("a.due_date ASC NULLS LAST", "a.id ASC")
}

// scanAssignment reads one joined row into a model, filling the Course and
// Grade relations when present.
func scanAssignment(rows pgx.Rows, extra ...interface{}) (*models.Assignment, error) {
	a := &models.Assignment{}
	var (
		courseName *string
		courseCode *string
		gradeID    *int64
		score      *float64
		maxScore   *float64
		comment    *string
		gradedAt   *time.Time
	)

	dest := []interface{}{
		&a.ID, &a.Title, &a.Description, &a.DueDate, &a.Completed, &a.CreatedAt, &a.OwnerID, &a.CourseID,
		&courseName, &courseCode,
		&gradeID, &score, &maxScore, &comment, &gradedAt,
	}
	dest = append(dest, extra...)

	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}

	if a.CourseID != nil && courseName != nil {
		course := &models.Course{ID: *a.CourseID, Name: *courseName, OwnerID: a.OwnerID}
		if courseCode != nil {
			course.Code = *courseCode
		}
		a.Course = course
	}
	if gradeID != nil {
		a.Grade = &models.Grade{
			ID:           *gradeID,
			AssignmentID: a.ID,
			Score:        *score,
			MaxScore:     *maxScore,
			Comment:      comment,
			GradedAt:     *gradedAt,
		}
	}

	return a, nil
}

// Create creates a new assignment for the owner set on the model.
func (r *AssignmentRepository) Create(ctx context.Context, a *models.Assignment) (int64, error) {
	sql, args, err := r.sb.Insert("assignments").
		Columns("title", "description", "due_date", "completed", "owner_id", "course_id").
		Values(a.Title, a.Description, a.DueDate, a.Completed, a.OwnerID, a.CourseID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create assignment query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id, &a.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create assignment query")
		return 0, fmt.Errorf("error creating assignment: %w", err)
	}

	return id, nil
}

// GetByID retrieves an assignment by ID, scoped to the owner, with its
// course and grade relations populated.
func (r *AssignmentRepository) GetByID(ctx context.Context, id, ownerID int64) (*models.Assignment, error) {
	sql, args, err := r.selectAssignments(ownerID).
		Where(squirrel.Eq{"a.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get assignment query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error getting assignment by ID: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("error getting assignment by ID: %w", err)
		}
		return nil, apperrors.ErrAssignmentNotFound
	}

	a, err := scanAssignment(rows)
	if err != nil {
		logger.Error().Err(err).Int64("assignmentID", id).Msg("Error scanning assignment row")
		return nil, fmt.Errorf("error scanning assignment row: %w", err)
	}

	return a, nil
}

// ListByOwner retrieves a user's assignments matching the filter, ordered by
// due date ascending. A zero limit disables pagination. The second return
// value is the total number of matching rows regardless of pagination.
func (r *AssignmentRepository) ListByOwner(ctx context.Context, ownerID int64, filter AssignmentFilter, limit int, offset uint64) ([]*models.Assignment, int64, error) {
	query := filter.apply(r.selectAssignments(ownerID)).
		Column("COUNT(*) OVER()")

	if limit > 0 {
		query = query.Limit(uint64(limit)).Offset(offset)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list assignments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list assignments query")
		return nil, 0, fmt.Errorf("error querying assignments: %w", err)
	}
	defer rows.Close()

	assignments := []*models.Assignment{}
	var total int64
	for rows.Next() {
		a, err := scanAssignment(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning assignment row: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating assignment rows: %w", err)
	}

	return assignments, total, nil
}

// Update updates an existing assignment owned by the user. The completion
// flag and creation timestamp are not touched here.
func (r *AssignmentRepository) Update(ctx context.Context, a *models.Assignment) error {
	sql, args, err := r.sb.Update("assignments").
		SetMap(map[string]interface{}{
			"title":       a.Title,
			"description": a.Description,
			"due_date":    a.DueDate,
			"course_id":   a.CourseID,
		}).
		Where(squirrel.Eq{"id": a.ID, "owner_id": a.OwnerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update assignment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("assignmentID", a.ID).Msg("Error executing update assignment query")
		return fmt.Errorf("error updating assignment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}

	return nil
}

// SetCompleted sets the completion flag of an assignment owned by the user.
func (r *AssignmentRepository) SetCompleted(ctx context.Context, id, ownerID int64, completed bool) error {
	sql, args, err := r.sb.Update("assignments").
		Set("completed", completed).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set completed query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error setting assignment completion: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}

	return nil
}

// Delete deletes an assignment owned by the user. Its grade, if any, is
// removed by the ON DELETE CASCADE constraint.
func (r *AssignmentRepository) Delete(ctx context.Context, id, ownerID int64) error {
	sql, args, err := r.sb.Delete("assignments").
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete assignment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("assignmentID", id).Msg("Error executing delete assignment query")
		return fmt.Errorf("error deleting assignment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}

	return nil
}

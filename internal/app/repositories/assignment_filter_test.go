package repositories

import (
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterSQL(t *testing.T, f AssignmentFilter) (string, []interface{}) {
	t.Helper()
	q := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("a.id").
		From("assignments a").
		LeftJoin("courses c ON c.id = a.course_id").
		Where(squirrel.Eq{"a.owner_id": int64(1)})
	sql, args, err := f.apply(q).ToSql()
	require.NoError(t, err)
	return sql, args
}

func TestAssignmentFilterEmpty(t *testing.T) {
	sql, args := filterSQL(t, AssignmentFilter{})

	assert.Equal(t, "SELECT a.id FROM assignments a LEFT JOIN courses c ON c.id = a.course_id WHERE a.owner_id = $1", sql)
	assert.Equal(t, []interface{}{int64(1)}, args)
}

func TestAssignmentFilterCompleted(t *testing.T) {
	completed := true
	sql, args := filterSQL(t, AssignmentFilter{Completed: &completed})

	assert.Contains(t, sql, "a.completed = $2")
	assert.Equal(t, []interface{}{int64(1), true}, args)
}

func TestAssignmentFilterCourseWinsOverUncategorized(t *testing.T) {
	courseID := int64(3)
	sql, args := filterSQL(t, AssignmentFilter{CourseID: &courseID, Uncategorized: true})

	assert.Contains(t, sql, "a.course_id = $2")
	assert.NotContains(t, sql, "a.course_id IS NULL")
	assert.Equal(t, []interface{}{int64(1), int64(3)}, args)
}

func TestAssignmentFilterUncategorized(t *testing.T) {
	sql, args := filterSQL(t, AssignmentFilter{Uncategorized: true})

	assert.Contains(t, sql, "a.course_id IS NULL")
	assert.Equal(t, []interface{}{int64(1)}, args)
}

func TestAssignmentFilterSearch(t *testing.T) {
	sql, args := filterSQL(t, AssignmentFilter{Search: "essay"})

	assert.Contains(t, sql, "a.title ILIKE $2 OR c.name ILIKE $3")
	assert.Equal(t, []interface{}{int64(1), "%essay%", "%essay%"}, args)
}

func TestAssignmentFilterHasDueDate(t *testing.T) {
	hasDue := true
	sql, _ := filterSQL(t, AssignmentFilter{HasDueDate: &hasDue})
	assert.Contains(t, sql, "a.due_date IS NOT NULL")

	hasDue = false
	sql, _ = filterSQL(t, AssignmentFilter{HasDueDate: &hasDue})
	assert.Contains(t, sql, "a.due_date IS NULL")
}

func TestAssignmentFilterDueRange(t *testing.T) {
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)
	sql, args := filterSQL(t, AssignmentFilter{DueFrom: &from, DueUntil: &until})

	assert.Contains(t, sql, "a.due_date >= $2")
	assert.Contains(t, sql, "a.due_date <= $3")
	assert.Equal(t, []interface{}{int64(1), from, until}, args)
}

func TestAssignmentFilterCombined(t *testing.T) {
	completed := false
	hasDue := true
	sql, args := filterSQL(t, AssignmentFilter{Completed: &completed, HasDueDate: &hasDue})

	assert.Contains(t, sql, "a.completed = $2")
	assert.Contains(t, sql, "a.due_date IS NOT NULL")
	assert.Equal(t, []interface{}{int64(1), false}, args)
}

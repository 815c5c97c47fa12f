package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/devflowhq/devflow/internal/domain/project"
)

// StatsRepository implements repository.StatsRepository for SQLite
type StatsRepository struct {
	db *DB
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// CountProjects returns the total number of projects.
func (r *StatsRepository) CountProjects(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return count, nil
}

// CountByStatus buckets projects by lifecycle status.
func (r *StatsRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM projects GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status counts: %w", err)
	}
	return counts, nil
}

// CountByType buckets projects by type name. Projects whose type row is
// missing land in the "unknown" bucket.
func (r *StatsRepository) CountByType(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT pt.name, COUNT(*)
		FROM projects p
		LEFT JOIN project_types pt ON p.project_type_id = pt.id
		GROUP BY p.project_type_id, pt.name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count by type: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var name sql.NullString
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return nil, fmt.Errorf("failed to scan type count: %w", err)
		}
		bucket := "unknown"
		if name.Valid {
			bucket = name.String
		}
		counts[bucket] = count
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating type counts: %w", err)
	}
	return counts, nil
}

// CountExpiring counts non-Completed projects with an end date on or
// before until.
func (r *StatsRepository) CountExpiring(ctx context.Context, until string) (int, error) {
	query := `
		SELECT COUNT(*) FROM projects
		WHERE end_date IS NOT NULL AND end_date <= ? AND status != ?
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, until, project.StatusCompleted).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count expiring projects: %w", err)
	}
	return count, nil
}

// UpcomingDeadlines returns non-Completed projects with an end date in
// [from, until], soonest first, type names resolved.
func (r *StatsRepository) UpcomingDeadlines(ctx context.Context, from, until string) ([]project.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects p
		LEFT JOIN project_types pt ON p.project_type_id = pt.id
		WHERE p.end_date IS NOT NULL
		  AND p.end_date >= ?
		  AND p.end_date <= ?
		  AND p.status != ?
		ORDER BY p.end_date
	`

	rows, err := r.db.QueryContext(ctx, query, from, until, project.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming deadlines: %w", err)
	}
	defer rows.Close()

	return collectProjects(rows)
}

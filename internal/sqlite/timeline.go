package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/devflowhq/devflow/internal/domain/timeline"
	"github.com/devflowhq/devflow/internal/repository"
)

// TimelineRepository implements repository.TimelineRepository for SQLite
type TimelineRepository struct {
	db *DB
}

// NewTimelineRepository creates a new TimelineRepository
func NewTimelineRepository(db *DB) *TimelineRepository {
	return &TimelineRepository{db: db}
}

// Upsert inserts the entry, or overwrites platform_id and description in
// place when an entry already exists for (project, assigned date). The
// unique index on the pair makes the at-most-one-entry-per-date
// invariant hold even against concurrent writers. Returns the id of the
// affected row.
func (r *TimelineRepository) Upsert(ctx context.Context, e *timeline.Entry) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	upsertQuery := `
		INSERT INTO project_platforms (project_id, platform_id, assigned_date, description)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(project_id, assigned_date) DO UPDATE SET
			platform_id = excluded.platform_id,
			description = excluded.description
	`

	if _, err := tx.ExecContext(ctx, upsertQuery, e.ProjectID, e.PlatformID, e.AssignedDate, e.Description); err != nil {
		if mapped := mapConstraintError(err, ""); mapped != err {
			return 0, mapped
		}
		return 0, fmt.Errorf("failed to upsert timeline entry: %w", err)
	}

	// LastInsertId is meaningless on the conflict path, so read the row
	// id back by its natural key.
	var id int64
	selectQuery := `
		SELECT id FROM project_platforms
		WHERE project_id = ? AND assigned_date = ?
	`
	if err := tx.QueryRowContext(ctx, selectQuery, e.ProjectID, e.AssignedDate).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to get timeline entry id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, nil
}

// AsOf returns the entry with the greatest assigned_date <= date: the
// platform active on that date under step-function semantics.
func (r *TimelineRepository) AsOf(ctx context.Context, projectID int64, date string) (*timeline.Entry, error) {
	query := `
		SELECT pp.id, pp.project_id, pp.platform_id, COALESCE(pl.name, '') AS platform_name,
		       pp.assigned_date, pp.description
		FROM project_platforms pp
		LEFT JOIN platforms pl ON pp.platform_id = pl.id
		WHERE pp.project_id = ? AND pp.assigned_date <= ?
		ORDER BY pp.assigned_date DESC
		LIMIT 1
	`

	var e timeline.Entry
	err := r.db.QueryRowContext(ctx, query, projectID, date).Scan(
		&e.ID,
		&e.ProjectID,
		&e.PlatformID,
		&e.PlatformName,
		&e.AssignedDate,
		&e.Description,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve platform as of date: %w", err)
	}

	return &e, nil
}

// History returns all entries for the project ordered by assigned_date
// ascending, platform names resolved.
func (r *TimelineRepository) History(ctx context.Context, projectID int64) ([]timeline.Entry, error) {
	query := `
		SELECT pp.id, pp.project_id, pp.platform_id, COALESCE(pl.name, '') AS platform_name,
		       pp.assigned_date, pp.description
		FROM project_platforms pp
		LEFT JOIN platforms pl ON pp.platform_id = pl.id
		WHERE pp.project_id = ?
		ORDER BY pp.assigned_date
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load platform history: %w", err)
	}
	defer rows.Close()

	var entries []timeline.Entry
	for rows.Next() {
		var e timeline.Entry
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.PlatformID, &e.PlatformName, &e.AssignedDate, &e.Description); err != nil {
			return nil, fmt.Errorf("failed to scan timeline entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating timeline rows: %w", err)
	}

	return entries, nil
}

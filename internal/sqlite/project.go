package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/devflowhq/devflow/internal/domain/project"
	"github.com/devflowhq/devflow/internal/repository"
)

// ProjectRepository implements repository.ProjectRepository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `
	p.id, p.name, p.description, p.project_type_id,
	COALESCE(pt.name, '') AS project_type_name,
	p.start_date, p.end_date, p.status, p.created_at, p.updated_at
`

// Create inserts a project and returns its generated id. Callers
// validate first; only schema constraints are enforced here.
func (r *ProjectRepository) Create(ctx context.Context, proj *project.Project) (int64, error) {
	query := `
		INSERT INTO projects (name, description, project_type_id, start_date, end_date, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query,
		proj.Name,
		proj.Description,
		proj.ProjectTypeID,
		proj.StartDate,
		proj.EndDate,
		proj.Status,
		proj.CreatedAt,
	)
	if err != nil {
		if mapped := mapConstraintError(err, "projects.name"); mapped != err {
			return 0, mapped
		}
		return 0, fmt.Errorf("failed to create project: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get project id: %w", err)
	}
	return id, nil
}

// Get retrieves a project by id, joining the type name as a read-side
// convenience.
func (r *ProjectRepository) Get(ctx context.Context, id int64) (*project.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects p
		LEFT JOIN project_types pt ON p.project_type_id = pt.id
		WHERE p.id = ?
	`

	proj, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return proj, nil
}

// Update applies all supplied fields and stamps updated_at. Returns
// false when the id does not exist.
func (r *ProjectRepository) Update(ctx context.Context, proj *project.Project) (bool, error) {
	query := `
		UPDATE projects
		SET name = ?, description = ?, project_type_id = ?, start_date = ?,
		    end_date = ?, status = ?, updated_at = ?
		WHERE id = ?
	`

	res, err := r.db.ExecContext(ctx, query,
		proj.Name,
		proj.Description,
		proj.ProjectTypeID,
		proj.StartDate,
		proj.EndDate,
		proj.Status,
		time.Now(),
		proj.ID,
	)
	if err != nil {
		if mapped := mapConstraintError(err, "projects.name"); mapped != err {
			return false, mapped
		}
		return false, fmt.Errorf("failed to update project: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

// Delete removes a project; timeline entries and collaborators go with
// it via foreign-key cascade.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

// Search returns projects matching the filter, newest first. All
// supplied filters are ANDed; the free-text query matches name and
// description case-insensitively.
func (r *ProjectRepository) Search(ctx context.Context, filter project.SearchFilter) ([]project.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects p
		LEFT JOIN project_types pt ON p.project_type_id = pt.id
		WHERE 1=1
	`
	var args []any

	if filter.Query != "" {
		query += ` AND (LOWER(p.name) LIKE '%' || LOWER(?) || '%' OR LOWER(p.description) LIKE '%' || LOWER(?) || '%')`
		args = append(args, filter.Query, filter.Query)
	}
	if filter.Status != nil {
		query += ` AND p.status = ?`
		args = append(args, *filter.Status)
	}
	if filter.ProjectTypeID != nil {
		query += ` AND p.project_type_id = ?`
		args = append(args, *filter.ProjectTypeID)
	}

	query += ` ORDER BY p.created_at DESC, p.id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search projects: %w", err)
	}
	defer rows.Close()

	return collectProjects(rows)
}

// NameTaken reports whether another project already uses name.
func (r *ProjectRepository) NameTaken(ctx context.Context, name string, excludeID *int64) (bool, error) {
	return nameTaken(ctx, r.db, "projects", name, excludeID)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*project.Project, error) {
	var proj project.Project
	var endDate sql.NullString
	var updatedAt sql.NullTime
	err := row.Scan(
		&proj.ID,
		&proj.Name,
		&proj.Description,
		&proj.ProjectTypeID,
		&proj.ProjectTypeName,
		&proj.StartDate,
		&endDate,
		&proj.Status,
		&proj.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if endDate.Valid {
		proj.EndDate = &endDate.String
	}
	if updatedAt.Valid {
		proj.UpdatedAt = &updatedAt.Time
	}
	return &proj, nil
}

func collectProjects(rows *sql.Rows) ([]project.Project, error) {
	var projects []project.Project
	for rows.Next() {
		proj, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *proj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, nil
}

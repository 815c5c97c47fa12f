package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/devflowhq/devflow/internal/domain/catalog"
	"github.com/devflowhq/devflow/internal/repository"
)

// ProjectTypeRepository implements repository.ProjectTypeRepository for
// SQLite
type ProjectTypeRepository struct {
	db *DB
}

// NewProjectTypeRepository creates a new ProjectTypeRepository
func NewProjectTypeRepository(db *DB) *ProjectTypeRepository {
	return &ProjectTypeRepository{db: db}
}

// Create inserts a project type and returns its generated id. Callers
// validate first; only schema constraints are enforced here.
func (r *ProjectTypeRepository) Create(ctx context.Context, pt *catalog.ProjectType) (int64, error) {
	query := `
		INSERT INTO project_types (name, description, created_at)
		VALUES (?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query, pt.Name, pt.Description, pt.CreatedAt)
	if err != nil {
		if mapped := mapConstraintError(err, "project_types.name"); mapped != err {
			return 0, mapped
		}
		return 0, fmt.Errorf("failed to create project type: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get project type id: %w", err)
	}
	return id, nil
}

// Get retrieves a project type by id
func (r *ProjectTypeRepository) Get(ctx context.Context, id int64) (*catalog.ProjectType, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM project_types
		WHERE id = ?
	`

	var pt catalog.ProjectType
	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&pt.ID,
		&pt.Name,
		&pt.Description,
		&pt.CreatedAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project type: %w", err)
	}

	if updatedAt.Valid {
		pt.UpdatedAt = &updatedAt.Time
	}
	return &pt, nil
}

// List returns all project types ordered by name
func (r *ProjectTypeRepository) List(ctx context.Context) ([]catalog.ProjectType, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM project_types
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list project types: %w", err)
	}
	defer rows.Close()

	var types []catalog.ProjectType
	for rows.Next() {
		var pt catalog.ProjectType
		var updatedAt sql.NullTime
		if err := rows.Scan(&pt.ID, &pt.Name, &pt.Description, &pt.CreatedAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project type: %w", err)
		}
		if updatedAt.Valid {
			pt.UpdatedAt = &updatedAt.Time
		}
		types = append(types, pt)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project type rows: %w", err)
	}

	return types, nil
}

// Update applies all supplied fields and stamps updated_at. Returns
// false when the id does not exist.
func (r *ProjectTypeRepository) Update(ctx context.Context, pt *catalog.ProjectType) (bool, error) {
	query := `
		UPDATE project_types
		SET name = ?, description = ?, updated_at = ?
		WHERE id = ?
	`

	res, err := r.db.ExecContext(ctx, query, pt.Name, pt.Description, time.Now(), pt.ID)
	if err != nil {
		if mapped := mapConstraintError(err, "project_types.name"); mapped != err {
			return false, mapped
		}
		return false, fmt.Errorf("failed to update project type: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

// Delete removes a project type. Returns false when the id does not
// exist.
func (r *ProjectTypeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM project_types WHERE id = ?`, id)
	if err != nil {
		if mapped := mapConstraintError(err, ""); mapped != err {
			return false, mapped
		}
		return false, fmt.Errorf("failed to delete project type: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

// NameTaken reports whether another project type already uses name.
func (r *ProjectTypeRepository) NameTaken(ctx context.Context, name string, excludeID *int64) (bool, error) {
	return nameTaken(ctx, r.db, "project_types", name, excludeID)
}

// PlatformRepository implements repository.PlatformRepository for SQLite
type PlatformRepository struct {
	db *DB
}

// NewPlatformRepository creates a new PlatformRepository
func NewPlatformRepository(db *DB) *PlatformRepository {
	return &PlatformRepository{db: db}
}

// Create inserts a platform and returns its generated id.
func (r *PlatformRepository) Create(ctx context.Context, p *catalog.Platform) (int64, error) {
	query := `
		INSERT INTO platforms (name, description, created_at)
		VALUES (?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query, p.Name, p.Description, p.CreatedAt)
	if err != nil {
		if mapped := mapConstraintError(err, "platforms.name"); mapped != err {
			return 0, mapped
		}
		return 0, fmt.Errorf("failed to create platform: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get platform id: %w", err)
	}
	return id, nil
}

// Get retrieves a platform by id
func (r *PlatformRepository) Get(ctx context.Context, id int64) (*catalog.Platform, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM platforms
		WHERE id = ?
	`

	var p catalog.Platform
	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.CreatedAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get platform: %w", err)
	}

	if updatedAt.Valid {
		p.UpdatedAt = &updatedAt.Time
	}
	return &p, nil
}

// List returns all platforms ordered by name
func (r *PlatformRepository) List(ctx context.Context) ([]catalog.Platform, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM platforms
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list platforms: %w", err)
	}
	defer rows.Close()

	var platforms []catalog.Platform
	for rows.Next() {
		var p catalog.Platform
		var updatedAt sql.NullTime
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan platform: %w", err)
		}
		if updatedAt.Valid {
			p.UpdatedAt = &updatedAt.Time
		}
		platforms = append(platforms, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating platform rows: %w", err)
	}

	return platforms, nil
}

// Update applies all supplied fields and stamps updated_at.
func (r *PlatformRepository) Update(ctx context.Context, p *catalog.Platform) (bool, error) {
	query := `
		UPDATE platforms
		SET name = ?, description = ?, updated_at = ?
		WHERE id = ?
	`

	res, err := r.db.ExecContext(ctx, query, p.Name, p.Description, time.Now(), p.ID)
	if err != nil {
		if mapped := mapConstraintError(err, "platforms.name"); mapped != err {
			return false, mapped
		}
		return false, fmt.Errorf("failed to update platform: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

// Delete removes a platform.
func (r *PlatformRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM platforms WHERE id = ?`, id)
	if err != nil {
		if mapped := mapConstraintError(err, ""); mapped != err {
			return false, mapped
		}
		return false, fmt.Errorf("failed to delete platform: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

// NameTaken reports whether another platform already uses name.
func (r *PlatformRepository) NameTaken(ctx context.Context, name string, excludeID *int64) (bool, error) {
	return nameTaken(ctx, r.db, "platforms", name, excludeID)
}

// nameTaken probes current storage state for a name collision, excluding
// the row being edited when excludeID is non-nil.
func nameTaken(ctx context.Context, db *DB, table, name string, excludeID *int64) (bool, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE name = ?`, table)
	args := []any{name}
	if excludeID != nil {
		query += ` AND id != ?`
		args = append(args, *excludeID)
	}

	var count int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check name uniqueness: %w", err)
	}
	return count > 0, nil
}

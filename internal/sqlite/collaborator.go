package sqlite

import (
	"context"
	"fmt"

	"github.com/devflowhq/devflow/internal/domain/collab"
)

// CollaboratorRepository implements repository.CollaboratorRepository
// for SQLite
type CollaboratorRepository struct {
	db *DB
}

// NewCollaboratorRepository creates a new CollaboratorRepository
func NewCollaboratorRepository(db *DB) *CollaboratorRepository {
	return &CollaboratorRepository{db: db}
}

// Add attaches a collaborator to a project and returns the generated id.
func (r *CollaboratorRepository) Add(ctx context.Context, c *collab.Collaborator) (int64, error) {
	query := `
		INSERT INTO project_collaborators (project_id, user_name, user_email, role, added_at)
		VALUES (?, ?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query, c.ProjectID, c.UserName, c.UserEmail, c.Role, c.AddedAt)
	if err != nil {
		if mapped := mapConstraintError(err, ""); mapped != err {
			return 0, mapped
		}
		return 0, fmt.Errorf("failed to add collaborator: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get collaborator id: %w", err)
	}
	return id, nil
}

// ListByProject returns a project's collaborators in insertion order.
func (r *CollaboratorRepository) ListByProject(ctx context.Context, projectID int64) ([]collab.Collaborator, error) {
	query := `
		SELECT id, project_id, user_name, user_email, role, added_at
		FROM project_collaborators
		WHERE project_id = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborators: %w", err)
	}
	defer rows.Close()

	var collaborators []collab.Collaborator
	for rows.Next() {
		var c collab.Collaborator
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.UserName, &c.UserEmail, &c.Role, &c.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan collaborator: %w", err)
		}
		collaborators = append(collaborators, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating collaborator rows: %w", err)
	}

	return collaborators, nil
}

// Remove detaches a collaborator. Returns false when the id does not
// exist.
func (r *CollaboratorRepository) Remove(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM project_collaborators WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to remove collaborator: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

package collab

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/devflowhq/devflow/internal/domain/validation"
)

// DefaultRole is assigned when no role is supplied.
const DefaultRole = "member"

// Repository provides persistence for collaborators.
type Repository interface {
	Add(ctx context.Context, c *Collaborator) (int64, error)
	ListByProject(ctx context.Context, projectID int64) ([]Collaborator, error)
	Remove(ctx context.Context, id int64) (bool, error)
}

// Service handles collaborator operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new collaborator service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// AddRequest defines collaborator creation inputs.
type AddRequest struct {
	ProjectID int64
	UserName  string
	UserEmail string
	Role      string
}

// Add attaches a collaborator to a project.
func (s *Service) Add(ctx context.Context, req AddRequest) (*Collaborator, error) {
	if strings.TrimSpace(req.UserName) == "" {
		return nil, validation.NewError([]string{"collaborator name is required"})
	}
	role := req.Role
	if role == "" {
		role = DefaultRole
	}

	c := &Collaborator{
		ProjectID: req.ProjectID,
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
		Role:      role,
		AddedAt:   time.Now(),
	}
	id, err := s.repo.Add(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("adding collaborator: %w", err)
	}
	c.ID = id
	return c, nil
}

// ListByProject returns a project's collaborators.
func (s *Service) ListByProject(ctx context.Context, projectID int64) ([]Collaborator, error) {
	return s.repo.ListByProject(ctx, projectID)
}

// Remove detaches a collaborator. Returns false when the id does not
// exist.
func (s *Service) Remove(ctx context.Context, id int64) (bool, error) {
	return s.repo.Remove(ctx, id)
}

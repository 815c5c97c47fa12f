package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/devflowhq/devflow/internal/domain/notify"
	"github.com/devflowhq/devflow/internal/domain/timeline"
	"github.com/devflowhq/devflow/internal/domain/validation"
	"github.com/devflowhq/devflow/internal/repository"
)

// Service handles project operations. Creation seeds the platform
// timeline and appends a notification; deletion appends a notification
// and cascades to timeline entries and collaborators.
type Service struct {
	repo           Repository
	timeline       TimelineAssigner
	notifier       Notifier
	seedPlatformID int64
	logger         *slog.Logger
}

// NewService creates a new project service. seedPlatformID is the
// platform automatically assigned at a new project's start date.
func NewService(repo Repository, tl TimelineAssigner, notifier Notifier, seedPlatformID int64, logger *slog.Logger) *Service {
	return &Service{
		repo:           repo,
		timeline:       tl,
		notifier:       notifier,
		seedPlatformID: seedPlatformID,
		logger:         logger,
	}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	Name          string
	Description   string
	ProjectTypeID int64
	StartDate     string
	EndDate       *string
	Status        Status
}

// Create validates and creates a project, seeds its platform history at
// the start date, and records a creation notification.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	msgs, err := s.Validate(ctx, ValidateInput{
		Name:          req.Name,
		Description:   req.Description,
		ProjectTypeID: req.ProjectTypeID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	})
	if err != nil {
		return nil, err
	}
	if req.Status != "" && !req.Status.Valid() {
		msgs = append(msgs, "invalid project status")
	}
	if err := validation.NewError(msgs); err != nil {
		return nil, err
	}
	return s.create(ctx, req)
}

// CreateTrusted creates a project without running validation. Import
// uses it in permissive mode, where rows are treated as authoritative
// and only storage-level constraints apply.
func (s *Service) CreateTrusted(ctx context.Context, req CreateRequest) (*Project, error) {
	return s.create(ctx, req)
}

func (s *Service) create(ctx context.Context, req CreateRequest) (*Project, error) {
	status := req.Status
	if status == "" {
		status = StatusPlanning
	}

	proj := &Project{
		Name:          req.Name,
		Description:   req.Description,
		ProjectTypeID: req.ProjectTypeID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Status:        status,
		CreatedAt:     time.Now(),
	}

	id, err := s.repo.Create(ctx, proj)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, validation.NewError([]string{"a project with this name already exists"})
		}
		return nil, fmt.Errorf("creating project: %w", err)
	}
	proj.ID = id

	// Seed the timeline so every project has a non-empty history from
	// creation. A missing seed platform row is logged, not fatal.
	if _, err := s.timeline.Assign(ctx, timeline.AssignRequest{
		ProjectID:    id,
		PlatformID:   s.seedPlatformID,
		AssignedDate: req.StartDate,
		Description:  fmt.Sprintf("Initial platform for project %s", req.Name),
	}); err != nil {
		s.log().Warn("seed platform assignment failed", "project_id", id, "platform_id", s.seedPlatformID, "error", err)
	}

	if _, err := s.notifier.Add(ctx,
		fmt.Sprintf("New Project: %s", req.Name),
		fmt.Sprintf("Project %q was created.", req.Name),
		notify.TypeSuccess,
	); err != nil {
		s.log().Warn("creation notification failed", "project_id", id, "error", err)
	}

	return proj, nil
}

// Get fetches a project by id, with its type name resolved.
func (s *Service) Get(ctx context.Context, id int64) (*Project, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// UpdateRequest defines project update inputs. All fields are applied.
type UpdateRequest struct {
	Name          string
	Description   string
	ProjectTypeID int64
	StartDate     string
	EndDate       *string
	Status        Status
}

// Update validates and applies an update. Returns false when the id does
// not exist.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (bool, error) {
	msgs, err := s.Validate(ctx, ValidateInput{
		Name:          req.Name,
		Description:   req.Description,
		ProjectTypeID: req.ProjectTypeID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		ExcludeID:     &id,
	})
	if err != nil {
		return false, err
	}
	if !req.Status.Valid() {
		msgs = append(msgs, "invalid project status")
	}
	if err := validation.NewError(msgs); err != nil {
		return false, err
	}

	ok, err := s.repo.Update(ctx, &Project{
		ID:            id,
		Name:          req.Name,
		Description:   req.Description,
		ProjectTypeID: req.ProjectTypeID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Status:        req.Status,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return false, validation.NewError([]string{"a project with this name already exists"})
		}
		return false, fmt.Errorf("updating project: %w", err)
	}
	return ok, nil
}

// Delete removes a project, cascading to its timeline entries and
// collaborators, and records a deletion notification. Returns false when
// the id does not exist.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("getting project for delete: %w", err)
	}

	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("deleting project: %w", err)
	}
	if !ok {
		return false, nil
	}

	if _, err := s.notifier.Add(ctx,
		fmt.Sprintf("Project Deleted: %s", proj.Name),
		fmt.Sprintf("Project %q was removed from the system.", proj.Name),
		notify.TypeWarning,
	); err != nil {
		s.log().Warn("deletion notification failed", "project_id", id, "error", err)
	}

	return true, nil
}

// Search returns projects matching the filter, newest first. A zero
// filter returns all projects.
func (s *Service) Search(ctx context.Context, filter SearchFilter) ([]Project, error) {
	return s.repo.Search(ctx, filter)
}

func (s *Service) log() *slog.Logger {
	if s.logger == nil {
		return slog.Default()
	}
	return s.logger
}

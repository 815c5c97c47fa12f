package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/devflowhq/devflow/internal/domain/validation"
	"github.com/devflowhq/devflow/internal/repository"
)

// Service handles project type and platform operations.
type Service struct {
	types     TypeRepository
	platforms PlatformRepository
	logger    *slog.Logger
}

// NewService creates a new catalog service.
func NewService(types TypeRepository, platforms PlatformRepository, logger *slog.Logger) *Service {
	return &Service{types: types, platforms: platforms, logger: logger}
}

// NameRequest carries the inputs for creating or updating a project type
// or platform.
type NameRequest struct {
	Name        string
	Description string
}

// ValidateType returns the violation messages for a prospective project
// type. excludeID identifies the row being edited, nil for a new row.
func (s *Service) ValidateType(ctx context.Context, req NameRequest, excludeID *int64) ([]string, error) {
	return validateName(ctx, s.types, "project type", req.Name, excludeID)
}

// ValidatePlatform returns the violation messages for a prospective
// platform.
func (s *Service) ValidatePlatform(ctx context.Context, req NameRequest, excludeID *int64) ([]string, error) {
	return validateName(ctx, s.platforms, "platform", req.Name, excludeID)
}

// CreateType validates and creates a project type.
func (s *Service) CreateType(ctx context.Context, req NameRequest) (*ProjectType, error) {
	msgs, err := s.ValidateType(ctx, req, nil)
	if err != nil {
		return nil, err
	}
	if err := validation.NewError(msgs); err != nil {
		return nil, err
	}

	pt := &ProjectType{
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	id, err := s.types.Create(ctx, pt)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, validation.NewError([]string{"a project type with this name already exists"})
		}
		return nil, fmt.Errorf("creating project type: %w", err)
	}
	pt.ID = id
	return pt, nil
}

// GetType fetches a project type by id.
func (s *Service) GetType(ctx context.Context, id int64) (*ProjectType, error) {
	pt, err := s.types.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTypeNotFound
		}
		return nil, fmt.Errorf("getting project type: %w", err)
	}
	return pt, nil
}

// ListTypes returns all project types ordered by name.
func (s *Service) ListTypes(ctx context.Context) ([]ProjectType, error) {
	return s.types.List(ctx)
}

// UpdateType validates and applies an update. Returns false when the id
// does not exist.
func (s *Service) UpdateType(ctx context.Context, id int64, req NameRequest) (bool, error) {
	msgs, err := s.ValidateType(ctx, req, &id)
	if err != nil {
		return false, err
	}
	if err := validation.NewError(msgs); err != nil {
		return false, err
	}
	return s.types.Update(ctx, &ProjectType{ID: id, Name: req.Name, Description: req.Description})
}

// DeleteType removes a project type. Returns false when the id does not
// exist.
func (s *Service) DeleteType(ctx context.Context, id int64) (bool, error) {
	return s.types.Delete(ctx, id)
}

// CreatePlatform validates and creates a platform.
func (s *Service) CreatePlatform(ctx context.Context, req NameRequest) (*Platform, error) {
	msgs, err := s.ValidatePlatform(ctx, req, nil)
	if err != nil {
		return nil, err
	}
	if err := validation.NewError(msgs); err != nil {
		return nil, err
	}

	p := &Platform{
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	id, err := s.platforms.Create(ctx, p)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, validation.NewError([]string{"a platform with this name already exists"})
		}
		return nil, fmt.Errorf("creating platform: %w", err)
	}
	p.ID = id
	return p, nil
}

// GetPlatform fetches a platform by id.
func (s *Service) GetPlatform(ctx context.Context, id int64) (*Platform, error) {
	p, err := s.platforms.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlatformNotFound
		}
		return nil, fmt.Errorf("getting platform: %w", err)
	}
	return p, nil
}

// ListPlatforms returns all platforms ordered by name.
func (s *Service) ListPlatforms(ctx context.Context) ([]Platform, error) {
	return s.platforms.List(ctx)
}

// UpdatePlatform validates and applies an update.
func (s *Service) UpdatePlatform(ctx context.Context, id int64, req NameRequest) (bool, error) {
	msgs, err := s.ValidatePlatform(ctx, req, &id)
	if err != nil {
		return false, err
	}
	if err := validation.NewError(msgs); err != nil {
		return false, err
	}
	return s.platforms.Update(ctx, &Platform{ID: id, Name: req.Name, Description: req.Description})
}

// DeletePlatform removes a platform.
func (s *Service) DeletePlatform(ctx context.Context, id int64) (bool, error) {
	return s.platforms.Delete(ctx, id)
}

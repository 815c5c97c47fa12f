package timeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/devflowhq/devflow/internal/domain/validation"
	"github.com/devflowhq/devflow/internal/repository"
)

// Repository provides persistence for timeline entries.
type Repository interface {
	// Upsert inserts the entry, or overwrites platform and description in
	// place when an entry already exists for (project, assigned date).
	// Returns the id of the affected row either way.
	Upsert(ctx context.Context, e *Entry) (int64, error)
	// AsOf returns the entry with the greatest assigned date <= date.
	AsOf(ctx context.Context, projectID int64, date string) (*Entry, error)
	// History returns all entries for the project, assigned date
	// ascending.
	History(ctx context.Context, projectID int64) ([]Entry, error)
}

// Service handles platform-history operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new timeline service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Assign records that req.PlatformID is the project's active platform
// from req.AssignedDate forward. An empty date defaults to today.
// Assigning on a date that already has an entry overwrites it; the
// history never holds two entries for one date. Returns the id of the
// affected entry.
func (s *Service) Assign(ctx context.Context, req AssignRequest) (int64, error) {
	date := req.AssignedDate
	if date == "" {
		date = time.Now().Format(validation.DateLayout)
	}
	if !validation.ValidDate(date) {
		return 0, validation.NewError([]string{"invalid assigned date format (expected YYYY-MM-DD)"})
	}

	id, err := s.repo.Upsert(ctx, &Entry{
		ProjectID:    req.ProjectID,
		PlatformID:   req.PlatformID,
		AssignedDate: date,
		Description:  req.Description,
	})
	if err != nil {
		return 0, fmt.Errorf("assigning platform: %w", err)
	}
	return id, nil
}

// AsOf answers "which platform was active for the project on date": the
// entry with the greatest assigned date on or before it. Dates between
// entries resolve to the preceding entry; dates before the first entry
// yield ErrNoPlatform.
func (s *Service) AsOf(ctx context.Context, projectID int64, date string) (*Entry, error) {
	if date == "" {
		date = time.Now().Format(validation.DateLayout)
	}
	if !validation.ValidDate(date) {
		return nil, validation.NewError([]string{"invalid date format (expected YYYY-MM-DD)"})
	}

	entry, err := s.repo.AsOf(ctx, projectID, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoPlatform
		}
		return nil, fmt.Errorf("resolving platform as of %s: %w", date, err)
	}
	return entry, nil
}

// History returns the project's full platform history, oldest first,
// with platform names resolved.
func (s *Service) History(ctx context.Context, projectID int64) ([]Entry, error) {
	entries, err := s.repo.History(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading platform history: %w", err)
	}
	return entries, nil
}

package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/devflowhq/devflow/internal/domain/project"
	"github.com/devflowhq/devflow/internal/domain/validation"
)

// DefaultDeadlineWindow is the lookahead, in days, for deadline reports.
const DefaultDeadlineWindow = 7

// Repository provides the aggregate queries.
type Repository interface {
	CountProjects(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
	// CountByType buckets projects by type name; projects whose type row
	// is missing land in the "unknown" bucket.
	CountByType(ctx context.Context) (map[string]int, error)
	// CountExpiring counts non-Completed projects with an end date on or
	// before until.
	CountExpiring(ctx context.Context, until string) (int, error)
	// UpcomingDeadlines returns non-Completed projects with an end date
	// in [from, until], end date ascending.
	UpcomingDeadlines(ctx context.Context, from, until string) ([]project.Project, error)
}

// Service handles statistics and deadline reports.
type Service struct {
	repo   Repository
	now    func() time.Time
	logger *slog.Logger
}

// NewService creates a new stats service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, now: time.Now, logger: logger}
}

// Summary computes the dashboard aggregates.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	total, err := s.repo.CountProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting projects: %w", err)
	}
	byStatus, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting by status: %w", err)
	}
	byType, err := s.repo.CountByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting by type: %w", err)
	}

	until := s.now().AddDate(0, 0, DefaultDeadlineWindow).Format(validation.DateLayout)
	expiring, err := s.repo.CountExpiring(ctx, until)
	if err != nil {
		return nil, fmt.Errorf("counting expiring projects: %w", err)
	}

	return &Summary{
		TotalProjects:    total,
		StatusCounts:     byStatus,
		TypeCounts:       byType,
		ExpiringThisWeek: expiring,
	}, nil
}

// UpcomingDeadlines returns non-Completed projects whose end date falls
// within the next days days, soonest first. days <= 0 selects the
// default window.
func (s *Service) UpcomingDeadlines(ctx context.Context, days int) ([]project.Project, error) {
	if days <= 0 {
		days = DefaultDeadlineWindow
	}
	from := s.now().Format(validation.DateLayout)
	until := s.now().AddDate(0, 0, days).Format(validation.DateLayout)
	return s.repo.UpcomingDeadlines(ctx, from, until)
}

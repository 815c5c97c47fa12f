package cron

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/devflowhq/devflow/internal/domain/notify"
	"github.com/devflowhq/devflow/internal/domain/stats"
)

// deadlineWindowDays is how far ahead the daily sweep looks for project
// deadlines.
const deadlineWindowDays = 7

// Scheduler runs the background deadline sweep.
type Scheduler struct {
	cron   *cron.Cron
	stats  *stats.Service
	notify *notify.Service
	logger *slog.Logger
}

// NewScheduler creates a scheduler over the stats and notification services.
func NewScheduler(statsSvc *stats.Service, notifySvc *notify.Service, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron:   cron.New(),
		stats:  statsSvc,
		notify: notifySvc,
		logger: logger,
	}
}

// Start registers the jobs and starts the scheduler.
func (s *Scheduler) Start() {
	// Every day at 9 AM: remind about projects ending within a week.
	s.cron.AddFunc("0 9 * * *", func() {
		if err := s.SweepDeadlines(context.Background()); err != nil {
			s.logger.Error("deadline sweep failed", "error", err)
		}
	})

	s.cron.Start()
	s.logger.Info("scheduler started")
}

// Stop stops the scheduler. Running jobs finish.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("scheduler stopped")
}

// SweepDeadlines creates a warning notification for every active project
// whose end date falls within the deadline window.
func (s *Scheduler) SweepDeadlines(ctx context.Context) error {
	projects, err := s.stats.UpcomingDeadlines(ctx, deadlineWindowDays)
	if err != nil {
		return fmt.Errorf("find upcoming deadlines: %w", err)
	}

	for _, p := range projects {
		endDate := ""
		if p.EndDate != nil {
			endDate = *p.EndDate
		}
		title := fmt.Sprintf("Deadline Approaching: %s", p.Name)
		message := fmt.Sprintf("Project %q is due on %s.", p.Name, endDate)
		if _, err := s.notify.Add(ctx, title, message, notify.TypeWarning); err != nil {
			s.logger.Error("failed to create deadline notification",
				"project_id", p.ID, "error", err)
			continue
		}
		s.logger.Info("deadline notification created",
			"project_id", p.ID, "end_date", endDate)
	}

	return nil
}

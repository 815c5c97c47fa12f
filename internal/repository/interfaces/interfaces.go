package interfaces

import (
	"context"

	"github.com/devflowhq/devflow/internal/domain/catalog"
	"github.com/devflowhq/devflow/internal/domain/collab"
	"github.com/devflowhq/devflow/internal/domain/notify"
	"github.com/devflowhq/devflow/internal/domain/project"
	"github.com/devflowhq/devflow/internal/domain/timeline"
)

// ProjectTypeRepository manages project type persistence
type ProjectTypeRepository interface {
	Create(ctx context.Context, pt *catalog.ProjectType) (int64, error)
	Get(ctx context.Context, id int64) (*catalog.ProjectType, error)
	List(ctx context.Context) ([]catalog.ProjectType, error)
	Update(ctx context.Context, pt *catalog.ProjectType) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	NameTaken(ctx context.Context, name string, excludeID *int64) (bool, error)
}

// PlatformRepository manages platform persistence
type PlatformRepository interface {
	Create(ctx context.Context, p *catalog.Platform) (int64, error)
	Get(ctx context.Context, id int64) (*catalog.Platform, error)
	List(ctx context.Context) ([]catalog.Platform, error)
	Update(ctx context.Context, p *catalog.Platform) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	NameTaken(ctx context.Context, name string, excludeID *int64) (bool, error)
}

// ProjectRepository manages project persistence
type ProjectRepository interface {
	Create(ctx context.Context, proj *project.Project) (int64, error)
	Get(ctx context.Context, id int64) (*project.Project, error)
	Update(ctx context.Context, proj *project.Project) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Search(ctx context.Context, filter project.SearchFilter) ([]project.Project, error)
	NameTaken(ctx context.Context, name string, excludeID *int64) (bool, error)
}

// TimelineRepository manages platform-history persistence
type TimelineRepository interface {
	Upsert(ctx context.Context, e *timeline.Entry) (int64, error)
	AsOf(ctx context.Context, projectID int64, date string) (*timeline.Entry, error)
	History(ctx context.Context, projectID int64) ([]timeline.Entry, error)
}

// CollaboratorRepository manages collaborator persistence
type CollaboratorRepository interface {
	Add(ctx context.Context, c *collab.Collaborator) (int64, error)
	ListByProject(ctx context.Context, projectID int64) ([]collab.Collaborator, error)
	Remove(ctx context.Context, id int64) (bool, error)
}

// NotificationRepository manages the notification log
type NotificationRepository interface {
	Add(ctx context.Context, n *notify.Notification) (int64, error)
	Unread(ctx context.Context) ([]notify.Notification, error)
	Recent(ctx context.Context, limit int) ([]notify.Notification, error)
	MarkRead(ctx context.Context, id int64) (bool, error)
}

// StatsRepository provides the aggregate queries
type StatsRepository interface {
	CountProjects(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
	CountByType(ctx context.Context) (map[string]int, error)
	CountExpiring(ctx context.Context, until string) (int, error)
	UpcomingDeadlines(ctx context.Context, from, until string) ([]project.Project, error)
}

package project

import (
	"context"

	"github.com/devflowhq/devflow/internal/domain/notify"
	"github.com/devflowhq/devflow/internal/domain/timeline"
)

// Repository provides persistence for projects.
type Repository interface {
	Create(ctx context.Context, proj *Project) (int64, error)
	Get(ctx context.Context, id int64) (*Project, error)
	Update(ctx context.Context, proj *Project) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Search(ctx context.Context, filter SearchFilter) ([]Project, error)
	NameTaken(ctx context.Context, name string, excludeID *int64) (bool, error)
}

// TimelineAssigner seeds the platform history of a new project.
type TimelineAssigner interface {
	Assign(ctx context.Context, req timeline.AssignRequest) (int64, error)
}

// Notifier records project lifecycle notifications.
type Notifier interface {
	Add(ctx context.Context, title, message string, typ notify.Type) (int64, error)
}

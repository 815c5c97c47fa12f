package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/devflowhq/devflow/internal/domain/catalog"
	"github.com/devflowhq/devflow/internal/domain/collab"
	"github.com/devflowhq/devflow/internal/domain/notify"
	"github.com/devflowhq/devflow/internal/domain/project"
	"github.com/devflowhq/devflow/internal/domain/timeline"
)

// ProjectTypeRepository is a mock for repository.ProjectTypeRepository.
type ProjectTypeRepository struct {
	mock.Mock
}

func (m *ProjectTypeRepository) Create(ctx context.Context, pt *catalog.ProjectType) (int64, error) {
	args := m.Called(ctx, pt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProjectTypeRepository) Get(ctx context.Context, id int64) (*catalog.ProjectType, error) {
	args := m.Called(ctx, id)
	if pt, ok := args.Get(0).(*catalog.ProjectType); ok {
		return pt, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectTypeRepository) List(ctx context.Context) ([]catalog.ProjectType, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]catalog.ProjectType); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectTypeRepository) Update(ctx context.Context, pt *catalog.ProjectType) (bool, error) {
	args := m.Called(ctx, pt)
	return args.Bool(0), args.Error(1)
}

func (m *ProjectTypeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *ProjectTypeRepository) NameTaken(ctx context.Context, name string, excludeID *int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

// PlatformRepository is a mock for repository.PlatformRepository.
type PlatformRepository struct {
	mock.Mock
}

func (m *PlatformRepository) Create(ctx context.Context, p *catalog.Platform) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PlatformRepository) Get(ctx context.Context, id int64) (*catalog.Platform, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*catalog.Platform); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PlatformRepository) List(ctx context.Context) ([]catalog.Platform, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]catalog.Platform); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PlatformRepository) Update(ctx context.Context, p *catalog.Platform) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}

func (m *PlatformRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *PlatformRepository) NameTaken(ctx context.Context, name string, excludeID *int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

// ProjectRepository is a mock for repository.ProjectRepository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, proj *project.Project) (int64, error) {
	args := m.Called(ctx, proj)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProjectRepository) Get(ctx context.Context, id int64) (*project.Project, error) {
	args := m.Called(ctx, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Update(ctx context.Context, proj *project.Project) (bool, error) {
	args := m.Called(ctx, proj)
	return args.Bool(0), args.Error(1)
}

func (m *ProjectRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *ProjectRepository) Search(ctx context.Context, filter project.SearchFilter) ([]project.Project, error) {
	args := m.Called(ctx, filter)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) NameTaken(ctx context.Context, name string, excludeID *int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

// TimelineRepository is a mock for repository.TimelineRepository.
type TimelineRepository struct {
	mock.Mock
}

func (m *TimelineRepository) Upsert(ctx context.Context, e *timeline.Entry) (int64, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TimelineRepository) AsOf(ctx context.Context, projectID int64, date string) (*timeline.Entry, error) {
	args := m.Called(ctx, projectID, date)
	if e, ok := args.Get(0).(*timeline.Entry); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TimelineRepository) History(ctx context.Context, projectID int64) ([]timeline.Entry, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]timeline.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// CollaboratorRepository is a mock for repository.CollaboratorRepository.
type CollaboratorRepository struct {
	mock.Mock
}

func (m *CollaboratorRepository) Add(ctx context.Context, c *collab.Collaborator) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CollaboratorRepository) ListByProject(ctx context.Context, projectID int64) ([]collab.Collaborator, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]collab.Collaborator); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CollaboratorRepository) Remove(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// NotificationRepository is a mock for repository.NotificationRepository.
type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) Add(ctx context.Context, n *notify.Notification) (int64, error) {
	args := m.Called(ctx, n)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationRepository) Unread(ctx context.Context) ([]notify.Notification, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]notify.Notification); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NotificationRepository) Recent(ctx context.Context, limit int) ([]notify.Notification, error) {
	args := m.Called(ctx, limit)
	if list, ok := args.Get(0).([]notify.Notification); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NotificationRepository) MarkRead(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// StatsRepository is a mock for repository.StatsRepository.
type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) CountProjects(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *StatsRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if counts, ok := args.Get(0).(map[string]int); ok {
		return counts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StatsRepository) CountByType(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if counts, ok := args.Get(0).(map[string]int); ok {
		return counts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StatsRepository) CountExpiring(ctx context.Context, until string) (int, error) {
	args := m.Called(ctx, until)
	return args.Int(0), args.Error(1)
}

func (m *StatsRepository) UpcomingDeadlines(ctx context.Context, from, until string) ([]project.Project, error) {
	args := m.Called(ctx, from, until)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// TimelineAssigner is a mock for project.TimelineAssigner.
type TimelineAssigner struct {
	mock.Mock
}

func (m *TimelineAssigner) Assign(ctx context.Context, req timeline.AssignRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

// Notifier is a mock for the notification side-effect consumers.
type Notifier struct {
	mock.Mock
}

func (m *Notifier) Add(ctx context.Context, title, message string, typ notify.Type) (int64, error) {
	args := m.Called(ctx, title, message, typ)
	return args.Get(0).(int64), args.Error(1)
}

package mcp

import (
	"context"

	"github.com/devflowhq/devflow/internal/domain/catalog"
	"github.com/devflowhq/devflow/internal/domain/collab"
	"github.com/devflowhq/devflow/internal/domain/notify"
	"github.com/devflowhq/devflow/internal/domain/project"
	"github.com/devflowhq/devflow/internal/domain/stats"
	"github.com/devflowhq/devflow/internal/domain/timeline"
	"github.com/devflowhq/devflow/internal/domain/transfer"
)

// CatalogService defines project type and platform operations needed by MCP.
type CatalogService interface {
	CreateType(ctx context.Context, req catalog.NameRequest) (*catalog.ProjectType, error)
	GetType(ctx context.Context, id int64) (*catalog.ProjectType, error)
	ListTypes(ctx context.Context) ([]catalog.ProjectType, error)
	UpdateType(ctx context.Context, id int64, req catalog.NameRequest) (bool, error)
	DeleteType(ctx context.Context, id int64) (bool, error)
	CreatePlatform(ctx context.Context, req catalog.NameRequest) (*catalog.Platform, error)
	GetPlatform(ctx context.Context, id int64) (*catalog.Platform, error)
	ListPlatforms(ctx context.Context) ([]catalog.Platform, error)
	UpdatePlatform(ctx context.Context, id int64, req catalog.NameRequest) (bool, error)
	DeletePlatform(ctx context.Context, id int64) (bool, error)
}

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	Get(ctx context.Context, id int64) (*project.Project, error)
	Update(ctx context.Context, id int64, req project.UpdateRequest) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Search(ctx context.Context, filter project.SearchFilter) ([]project.Project, error)
}

// TimelineService defines platform history operations needed by MCP.
type TimelineService interface {
	Assign(ctx context.Context, req timeline.AssignRequest) (int64, error)
	AsOf(ctx context.Context, projectID int64, date string) (*timeline.Entry, error)
	History(ctx context.Context, projectID int64) ([]timeline.Entry, error)
}

// CollabService defines collaborator operations needed by MCP.
type CollabService interface {
	Add(ctx context.Context, req collab.AddRequest) (*collab.Collaborator, error)
	ListByProject(ctx context.Context, projectID int64) ([]collab.Collaborator, error)
	Remove(ctx context.Context, id int64) (bool, error)
}

// NotifyService defines notification operations needed by MCP.
type NotifyService interface {
	Add(ctx context.Context, title, message string, typ notify.Type) (int64, error)
	Unread(ctx context.Context) ([]notify.Notification, error)
	Recent(ctx context.Context, limit int) ([]notify.Notification, error)
	MarkRead(ctx context.Context, id int64) (bool, error)
}

// StatsService defines dashboard operations needed by MCP.
type StatsService interface {
	Summary(ctx context.Context) (*stats.Summary, error)
	UpcomingDeadlines(ctx context.Context, days int) ([]project.Project, error)
}

// TransferService defines CSV export and import operations needed by MCP.
type TransferService interface {
	ExportCSV(ctx context.Context) (string, error)
	ImportCSV(ctx context.Context, content string, opts transfer.ImportOptions) (*transfer.ImportResult, error)
}

// Maintenance defines database file operations needed by MCP.
type Maintenance interface {
	Backup() (string, error)
	Restore(backupPath string) error
}

// Handler dispatches MCP tool calls to domain services.
type Handler struct {
	catalog     CatalogService
	projects    ProjectService
	timeline    TimelineService
	collab      CollabService
	notify      NotifyService
	stats       StatsService
	transfer    TransferService
	maintenance Maintenance
}

// NewHandler creates a new MCP handler.
func NewHandler(services Services) *Handler {
	return &Handler{
		catalog:     services.Catalog,
		projects:    services.Projects,
		timeline:    services.Timeline,
		collab:      services.Collab,
		notify:      services.Notify,
		stats:       services.Stats,
		transfer:    services.Transfer,
		maintenance: services.Maintenance,
	}
}

// Project types.

func (h *Handler) CreateProjectType(ctx context.Context, in NameParams) (*catalog.ProjectType, error) {
	pt, err := h.catalog.CreateType(ctx, catalog.NameRequest{Name: in.Name, Description: in.Description})
	if err != nil {
		return nil, mapError(err)
	}
	return pt, nil
}

func (h *Handler) GetProjectType(ctx context.Context, in IDParams) (*catalog.ProjectType, error) {
	pt, err := h.catalog.GetType(ctx, in.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return pt, nil
}

func (h *Handler) ListProjectTypes(ctx context.Context) (*ProjectTypeListResult, error) {
	types, err := h.catalog.ListTypes(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &ProjectTypeListResult{ProjectTypes: types}, nil
}

func (h *Handler) UpdateProjectType(ctx context.Context, in UpdateNameParams) (*UpdatedResult, error) {
	ok, err := h.catalog.UpdateType(ctx, in.ID, catalog.NameRequest{Name: in.Name, Description: in.Description})
	if err != nil {
		return nil, mapError(err)
	}
	return &UpdatedResult{Updated: ok}, nil
}

func (h *Handler) DeleteProjectType(ctx context.Context, in IDParams) (*DeletedResult, error) {
	ok, err := h.catalog.DeleteType(ctx, in.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return &DeletedResult{Deleted: ok}, nil
}

// Platforms.

func (h *Handler) CreatePlatform(ctx context.Context, in NameParams) (*catalog.Platform, error) {
	p, err := h.catalog.CreatePlatform(ctx, catalog.NameRequest{Name: in.Name, Description: in.Description})
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}

func (h *Handler) GetPlatform(ctx context.Context, in IDParams) (*catalog.Platform, error) {
	p, err := h.catalog.GetPlatform(ctx, in.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}

func (h *Handler) ListPlatforms(ctx context.Context) (*PlatformListResult, error) {
	platforms, err := h.catalog.ListPlatforms(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &PlatformListResult{Platforms: platforms}, nil
}

func (h *Handler) UpdatePlatform(ctx context.Context, in UpdateNameParams) (*UpdatedResult, error) {
	ok, err := h.catalog.UpdatePlatform(ctx, in.ID, catalog.NameRequest{Name: in.Name, Description: in.Description})
	if err != nil {
		return nil, mapError(err)
	}
	return &UpdatedResult{Updated: ok}, nil
}

func (h *Handler) DeletePlatform(ctx context.Context, in IDParams) (*DeletedResult, error) {
	ok, err := h.catalog.DeletePlatform(ctx, in.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return &DeletedResult{Deleted: ok}, nil
}

// Projects.

func (h *Handler) CreateProject(ctx context.Context, in CreateProjectParams) (*project.Project, error) {
	p, err := h.projects.Create(ctx, project.CreateRequest{
		Name:          in.Name,
		Description:   in.Description,
		ProjectTypeID: in.ProjectTypeID,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		Status:        project.Status(in.Status),
	})
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}

func (h *Handler) GetProject(ctx context.Context, in IDParams) (*project.Project, error) {
	p, err := h.projects.Get(ctx, in.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}

func (h *Handler) UpdateProject(ctx context.Context, in UpdateProjectParams) (*UpdatedResult, error) {
	ok, err := h.projects.Update(ctx, in.ID, project.UpdateRequest{
		Name:          in.Name,
		Description:   in.Description,
		ProjectTypeID: in.ProjectTypeID,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		Status:        project.Status(in.Status),
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &UpdatedResult{Updated: ok}, nil
}

func (h *Handler) DeleteProject(ctx context.Context, in IDParams) (*DeletedResult, error) {
	ok, err := h.projects.Delete(ctx, in.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return &DeletedResult{Deleted: ok}, nil
}

func (h *Handler) SearchProjects(ctx context.Context, in SearchProjectsParams) (*ProjectListResult, error) {
	filter := project.SearchFilter{
		Query:         in.Query,
		ProjectTypeID: in.ProjectTypeID,
	}
	if in.Status != "" {
		status := project.Status(in.Status)
		filter.Status = &status
	}
	projects, err := h.projects.Search(ctx, filter)
	if err != nil {
		return nil, mapError(err)
	}
	return &ProjectListResult{Projects: projects}, nil
}

// Platform timeline.

func (h *Handler) AssignPlatform(ctx context.Context, in AssignPlatformParams) (*IDResult, error) {
	id, err := h.timeline.Assign(ctx, timeline.AssignRequest{
		ProjectID:    in.ProjectID,
		PlatformID:   in.PlatformID,
		AssignedDate: in.AssignedDate,
		Description:  in.Description,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &IDResult{ID: id}, nil
}

func (h *Handler) PlatformAsOf(ctx context.Context, in PlatformAsOfParams) (*TimelineEntryResult, error) {
	entry, err := h.timeline.AsOf(ctx, in.ProjectID, in.Date)
	if err != nil {
		return nil, mapError(err)
	}
	return &TimelineEntryResult{Entry: *entry}, nil
}

func (h *Handler) PlatformHistory(ctx context.Context, in ProjectIDParams) (*TimelineHistoryResult, error) {
	entries, err := h.timeline.History(ctx, in.ProjectID)
	if err != nil {
		return nil, mapError(err)
	}
	return &TimelineHistoryResult{Entries: entries}, nil
}

// Collaborators.

func (h *Handler) AddCollaborator(ctx context.Context, in AddCollaboratorParams) (*collab.Collaborator, error) {
	c, err := h.collab.Add(ctx, collab.AddRequest{
		ProjectID: in.ProjectID,
		UserName:  in.UserName,
		UserEmail: in.UserEmail,
		Role:      in.Role,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return c, nil
}

func (h *Handler) ListCollaborators(ctx context.Context, in ProjectIDParams) (*CollaboratorListResult, error) {
	collaborators, err := h.collab.ListByProject(ctx, in.ProjectID)
	if err != nil {
		return nil, mapError(err)
	}
	return &CollaboratorListResult{Collaborators: collaborators}, nil
}

func (h *Handler) RemoveCollaborator(ctx context.Context, in IDParams) (*DeletedResult, error) {
	ok, err := h.collab.Remove(ctx, in.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return &DeletedResult{Deleted: ok}, nil
}

// Notifications.

func (h *Handler) ListNotifications(ctx context.Context, in ListNotificationsParams) (*NotificationListResult, error) {
	var (
		notifications []notify.Notification
		err           error
	)
	if in.UnreadOnly {
		notifications, err = h.notify.Unread(ctx)
	} else {
		notifications, err = h.notify.Recent(ctx, in.Limit)
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &NotificationListResult{Notifications: notifications}, nil
}

func (h *Handler) MarkNotificationRead(ctx context.Context, in IDParams) (*UpdatedResult, error) {
	ok, err := h.notify.MarkRead(ctx, in.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return &UpdatedResult{Updated: ok}, nil
}

func (h *Handler) AddNotification(ctx context.Context, in AddNotificationParams) (*IDResult, error) {
	id, err := h.notify.Add(ctx, in.Title, in.Message, notify.Type(in.Type))
	if err != nil {
		return nil, mapError(err)
	}
	return &IDResult{ID: id}, nil
}

// Dashboard.

func (h *Handler) GetStatistics(ctx context.Context) (*StatisticsResult, error) {
	summary, err := h.stats.Summary(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &StatisticsResult{Summary: *summary}, nil
}

func (h *Handler) UpcomingDeadlines(ctx context.Context, in UpcomingDeadlinesParams) (*ProjectListResult, error) {
	projects, err := h.stats.UpcomingDeadlines(ctx, in.Days)
	if err != nil {
		return nil, mapError(err)
	}
	return &ProjectListResult{Projects: projects}, nil
}

// CSV transfer.

func (h *Handler) ExportProjects(ctx context.Context) (*ExportResult, error) {
	csvData, err := h.transfer.ExportCSV(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &ExportResult{CSV: csvData}, nil
}

func (h *Handler) ImportProjects(ctx context.Context, in ImportProjectsParams) (*ImportProjectsResult, error) {
	result, err := h.transfer.ImportCSV(ctx, in.Content, transfer.ImportOptions{Strict: in.Strict})
	if err != nil {
		return nil, mapError(err)
	}
	return &ImportProjectsResult{Result: *result}, nil
}

// Maintenance.

func (h *Handler) BackupDatabase(ctx context.Context) (*BackupResult, error) {
	path, err := h.maintenance.Backup()
	if err != nil {
		return nil, mapError(err)
	}
	return &BackupResult{BackupPath: path}, nil
}

func (h *Handler) RestoreDatabase(ctx context.Context, in RestoreDatabaseParams) (*StatusResult, error) {
	if err := h.maintenance.Restore(in.BackupPath); err != nil {
		return nil, mapError(err)
	}
	return &StatusResult{Status: "restored"}, nil
}

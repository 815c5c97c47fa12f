package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devflowhq/devflow/internal/domain/notify"
	"github.com/devflowhq/devflow/internal/domain/project"
	"github.com/devflowhq/devflow/internal/domain/timeline"
	"github.com/devflowhq/devflow/internal/domain/validation"
)

type stubProjectService struct {
	createFn func(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	searchFn func(ctx context.Context, filter project.SearchFilter) ([]project.Project, error)
}

func (s *stubProjectService) Create(ctx context.Context, req project.CreateRequest) (*project.Project, error) {
	return s.createFn(ctx, req)
}

func (s *stubProjectService) Get(ctx context.Context, id int64) (*project.Project, error) {
	return nil, project.ErrProjectNotFound
}

func (s *stubProjectService) Update(ctx context.Context, id int64, req project.UpdateRequest) (bool, error) {
	return false, nil
}

func (s *stubProjectService) Delete(ctx context.Context, id int64) (bool, error) {
	return false, nil
}

func (s *stubProjectService) Search(ctx context.Context, filter project.SearchFilter) ([]project.Project, error) {
	return s.searchFn(ctx, filter)
}

type stubTimelineService struct {
	asOfFn func(ctx context.Context, projectID int64, date string) (*timeline.Entry, error)
}

func (s *stubTimelineService) Assign(ctx context.Context, req timeline.AssignRequest) (int64, error) {
	return 0, nil
}

func (s *stubTimelineService) AsOf(ctx context.Context, projectID int64, date string) (*timeline.Entry, error) {
	return s.asOfFn(ctx, projectID, date)
}

func (s *stubTimelineService) History(ctx context.Context, projectID int64) ([]timeline.Entry, error) {
	return nil, nil
}

type stubNotifyService struct {
	unreadFn func(ctx context.Context) ([]notify.Notification, error)
	recentFn func(ctx context.Context, limit int) ([]notify.Notification, error)
}

func (s *stubNotifyService) Add(ctx context.Context, title, message string, typ notify.Type) (int64, error) {
	return 0, nil
}

func (s *stubNotifyService) Unread(ctx context.Context) ([]notify.Notification, error) {
	return s.unreadFn(ctx)
}

func (s *stubNotifyService) Recent(ctx context.Context, limit int) ([]notify.Notification, error) {
	return s.recentFn(ctx, limit)
}

func (s *stubNotifyService) MarkRead(ctx context.Context, id int64) (bool, error) {
	return false, nil
}

type stubMaintenance struct {
	restoredPath string
}

func (s *stubMaintenance) Backup() (string, error) {
	return "devflow_backup_20240101_120000.db", nil
}

func (s *stubMaintenance) Restore(backupPath string) error {
	s.restoredPath = backupPath
	return nil
}

func TestCreateProject_MapsParams(t *testing.T) {
	ctx := context.Background()
	end := "2024-06-30"

	var got project.CreateRequest
	h := NewHandler(Services{Projects: &stubProjectService{
		createFn: func(ctx context.Context, req project.CreateRequest) (*project.Project, error) {
			got = req
			return &project.Project{ID: 1, Name: req.Name}, nil
		},
	}})

	p, err := h.CreateProject(ctx, CreateProjectParams{
		Name:          "Shop Frontend",
		Description:   "Storefront",
		ProjectTypeID: 2,
		StartDate:     "2024-01-01",
		EndDate:       &end,
		Status:        "Testing",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), p.ID)
	require.Equal(t, project.CreateRequest{
		Name:          "Shop Frontend",
		Description:   "Storefront",
		ProjectTypeID: 2,
		StartDate:     "2024-01-01",
		EndDate:       &end,
		Status:        project.StatusTesting,
	}, got)
}

func TestCreateProject_ValidationErrorBecomesAPIError(t *testing.T) {
	ctx := context.Background()

	h := NewHandler(Services{Projects: &stubProjectService{
		createFn: func(ctx context.Context, req project.CreateRequest) (*project.Project, error) {
			return nil, validation.NewError([]string{"project name is required"})
		},
	}})

	_, err := h.CreateProject(ctx, CreateProjectParams{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "VALIDATION_FAILED", apiErr.Code)
	require.Equal(t, []string{"project name is required"}, apiErr.Details)
}

func TestGetProject_NotFoundCode(t *testing.T) {
	ctx := context.Background()

	h := NewHandler(Services{Projects: &stubProjectService{}})
	_, err := h.GetProject(ctx, IDParams{ID: 99})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "PROJECT_NOT_FOUND", apiErr.Code)
}

func TestSearchProjects_StatusFilter(t *testing.T) {
	ctx := context.Background()

	var got project.SearchFilter
	h := NewHandler(Services{Projects: &stubProjectService{
		searchFn: func(ctx context.Context, filter project.SearchFilter) ([]project.Project, error) {
			got = filter
			return []project.Project{}, nil
		},
	}})

	_, err := h.SearchProjects(ctx, SearchProjectsParams{Query: "shop", Status: "Testing"})
	require.NoError(t, err)
	require.Equal(t, "shop", got.Query)
	require.NotNil(t, got.Status)
	require.Equal(t, project.StatusTesting, *got.Status)

	_, err = h.SearchProjects(ctx, SearchProjectsParams{Query: "shop"})
	require.NoError(t, err)
	require.Nil(t, got.Status)
}

func TestPlatformAsOf_NoEntryCode(t *testing.T) {
	ctx := context.Background()

	h := NewHandler(Services{Timeline: &stubTimelineService{
		asOfFn: func(ctx context.Context, projectID int64, date string) (*timeline.Entry, error) {
			return nil, timeline.ErrNoPlatform
		},
	}})

	_, err := h.PlatformAsOf(ctx, PlatformAsOfParams{ProjectID: 1, Date: "2020-01-01"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "NO_PLATFORM_ASSIGNED", apiErr.Code)
}

func TestListNotifications_UnreadBranch(t *testing.T) {
	ctx := context.Background()

	unread := []notify.Notification{{ID: 1, Title: "a"}}
	recent := []notify.Notification{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}
	var recentLimit int
	h := NewHandler(Services{Notify: &stubNotifyService{
		unreadFn: func(ctx context.Context) ([]notify.Notification, error) { return unread, nil },
		recentFn: func(ctx context.Context, limit int) ([]notify.Notification, error) {
			recentLimit = limit
			return recent, nil
		},
	}})

	result, err := h.ListNotifications(ctx, ListNotificationsParams{UnreadOnly: true})
	require.NoError(t, err)
	require.Equal(t, unread, result.Notifications)

	result, err = h.ListNotifications(ctx, ListNotificationsParams{Limit: 5})
	require.NoError(t, err)
	require.Equal(t, recent, result.Notifications)
	require.Equal(t, 5, recentLimit)
}

func TestRestoreDatabase(t *testing.T) {
	ctx := context.Background()

	m := &stubMaintenance{}
	h := NewHandler(Services{Maintenance: m})
	result, err := h.RestoreDatabase(ctx, RestoreDatabaseParams{BackupPath: "devflow_backup_20240101_120000.db"})
	require.NoError(t, err)
	require.Equal(t, "restored", result.Status)
	require.Equal(t, "devflow_backup_20240101_120000.db", m.restoredPath)
}

func TestMapError_Unmapped(t *testing.T) {
	require.Nil(t, MapError(nil))
	require.Nil(t, MapError(context.DeadlineExceeded))
}

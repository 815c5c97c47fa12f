package transfer_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/devflowhq/devflow/internal/domain/catalog"
	"github.com/devflowhq/devflow/internal/domain/notify"
	"github.com/devflowhq/devflow/internal/domain/project"
	"github.com/devflowhq/devflow/internal/domain/transfer"
)

type stubProjects struct {
	searchFn        func(ctx context.Context, filter project.SearchFilter) ([]project.Project, error)
	createFn        func(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	createTrustedFn func(ctx context.Context, req project.CreateRequest) (*project.Project, error)
}

func (s *stubProjects) Search(ctx context.Context, filter project.SearchFilter) ([]project.Project, error) {
	return s.searchFn(ctx, filter)
}

func (s *stubProjects) Create(ctx context.Context, req project.CreateRequest) (*project.Project, error) {
	return s.createFn(ctx, req)
}

func (s *stubProjects) CreateTrusted(ctx context.Context, req project.CreateRequest) (*project.Project, error) {
	return s.createTrustedFn(ctx, req)
}

type stubTypes struct {
	types []catalog.ProjectType
}

func (s *stubTypes) ListTypes(ctx context.Context) ([]catalog.ProjectType, error) {
	return s.types, nil
}

type stubNotifier struct {
	titles []string
}

func (s *stubNotifier) Add(ctx context.Context, title, message string, typ notify.Type) (int64, error) {
	s.titles = append(s.titles, title)
	return 1, nil
}

func TestExportCSV(t *testing.T) {
	ctx := context.Background()
	end := "2024-06-30"
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	projects := &stubProjects{
		searchFn: func(ctx context.Context, filter project.SearchFilter) ([]project.Project, error) {
			require.Equal(t, project.SearchFilter{}, filter)
			return []project.Project{
				{
					ID:              1,
					Name:            "Shop Frontend",
					Description:     "Customer storefront",
					ProjectTypeName: "Web Application",
					StartDate:       "2024-01-01",
					EndDate:         &end,
					Status:          project.StatusTesting,
					CreatedAt:       created,
				},
			}, nil
		},
	}

	svc := transfer.NewService(projects, &stubTypes{}, &stubNotifier{}, nil)
	out, err := svc.ExportCSV(ctx)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, strings.Join(transfer.Header, ","), lines[0])
	require.Equal(t, "1,Shop Frontend,Customer storefront,Web Application,2024-01-01,2024-06-30,Testing,2024-01-02T03:04:05Z,", lines[1])
}

func TestImportCSV_Permissive(t *testing.T) {
	ctx := context.Background()
	content := strings.Join([]string{
		"ID,Name,Description,ProjectTypeName,StartDate,EndDate,Status,CreatedAt,UpdatedAt",
		"1,Shop Frontend,Storefront,Web Application,2024-01-01,2024-06-30,Testing,,",
		"2,Billing API,,API Service,2024-02-01,,Planning,,",
	}, "\n")

	var created []project.CreateRequest
	projects := &stubProjects{
		createFn: func(ctx context.Context, req project.CreateRequest) (*project.Project, error) {
			t.Fatal("strict create should not be called in permissive mode")
			return nil, nil
		},
		createTrustedFn: func(ctx context.Context, req project.CreateRequest) (*project.Project, error) {
			created = append(created, req)
			return &project.Project{ID: int64(len(created))}, nil
		},
	}
	types := &stubTypes{types: []catalog.ProjectType{
		{ID: 1, Name: "Web Application"},
		{ID: 2, Name: "API Service"},
	}}
	notifier := &stubNotifier{}

	svc := transfer.NewService(projects, types, notifier, nil)
	result, err := svc.ImportCSV(ctx, content, transfer.ImportOptions{})
	require.NoError(t, err)
	require.Equal(t, 2, result.Imported)
	require.Empty(t, result.Errors)
	require.NotEmpty(t, result.BatchID)

	require.Len(t, created, 2)
	require.Equal(t, "Shop Frontend", created[0].Name)
	require.Equal(t, int64(1), created[0].ProjectTypeID)
	require.NotNil(t, created[0].EndDate)
	require.Equal(t, "2024-06-30", *created[0].EndDate)
	require.Equal(t, "Billing API", created[1].Name)
	require.Nil(t, created[1].EndDate)

	require.Equal(t, []string{"Project Import Completed"}, notifier.titles)
}

func TestImportCSV_StrictUsesValidation(t *testing.T) {
	ctx := context.Background()
	content := strings.Join([]string{
		"Name,ProjectTypeName,StartDate",
		"Shop Frontend,Web Application,2024-01-01",
	}, "\n")

	strictCalled := false
	projects := &stubProjects{
		createFn: func(ctx context.Context, req project.CreateRequest) (*project.Project, error) {
			strictCalled = true
			return &project.Project{ID: 1}, nil
		},
		createTrustedFn: func(ctx context.Context, req project.CreateRequest) (*project.Project, error) {
			t.Fatal("trusted create should not be called in strict mode")
			return nil, nil
		},
	}
	types := &stubTypes{types: []catalog.ProjectType{{ID: 1, Name: "Web Application"}}}

	svc := transfer.NewService(projects, types, &stubNotifier{}, nil)
	result, err := svc.ImportCSV(ctx, content, transfer.ImportOptions{Strict: true})
	require.NoError(t, err)
	require.Equal(t, 1, result.Imported)
	require.True(t, strictCalled)
}

func TestImportCSV_CollectsRowErrors(t *testing.T) {
	ctx := context.Background()
	content := strings.Join([]string{
		"Name,ProjectTypeName,StartDate",
		"Shop Frontend,Nonexistent,2024-01-01",
		"Billing API,API Service,2024-02-01",
	}, "\n")

	projects := &stubProjects{
		createTrustedFn: func(ctx context.Context, req project.CreateRequest) (*project.Project, error) {
			return &project.Project{ID: 1}, nil
		},
	}
	types := &stubTypes{types: []catalog.ProjectType{{ID: 2, Name: "API Service"}}}

	svc := transfer.NewService(projects, types, &stubNotifier{}, nil)
	result, err := svc.ImportCSV(ctx, content, transfer.ImportOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, result.Imported)
	require.Equal(t, []string{`project type "Nonexistent" not found for project "Shop Frontend"`}, result.Errors)
}

func TestImportCSV_MissingRequiredColumn(t *testing.T) {
	ctx := context.Background()
	content := "Name,Description\nShop Frontend,Storefront\n"

	svc := transfer.NewService(&stubProjects{}, &stubTypes{}, &stubNotifier{}, nil)
	_, err := svc.ImportCSV(ctx, content, transfer.ImportOptions{})
	require.Error(t, err)
	require.Contains(t, err.Error(), `missing column "ProjectTypeName"`)
}

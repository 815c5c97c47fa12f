package timeline_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/devflowhq/devflow/internal/domain/timeline"
	"github.com/devflowhq/devflow/internal/domain/validation"
	"github.com/devflowhq/devflow/internal/repository"
	"github.com/devflowhq/devflow/internal/repository/mocks"
)

func TestAssign(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TimelineRepository{}
	repo.On("Upsert", ctx, &timeline.Entry{
		ProjectID:    1,
		PlatformID:   2,
		AssignedDate: "2024-03-15",
		Description:  "Moved to GCP",
	}).Return(int64(7), nil)

	svc := timeline.NewService(repo, nil)
	id, err := svc.Assign(ctx, timeline.AssignRequest{
		ProjectID:    1,
		PlatformID:   2,
		AssignedDate: "2024-03-15",
		Description:  "Moved to GCP",
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), id)
	repo.AssertExpectations(t)
}

func TestAssign_EmptyDateDefaultsToToday(t *testing.T) {
	ctx := context.Background()
	today := time.Now().Format(validation.DateLayout)

	repo := &mocks.TimelineRepository{}
	repo.On("Upsert", ctx, &timeline.Entry{
		ProjectID:    1,
		PlatformID:   2,
		AssignedDate: today,
	}).Return(int64(1), nil)

	svc := timeline.NewService(repo, nil)
	_, err := svc.Assign(ctx, timeline.AssignRequest{ProjectID: 1, PlatformID: 2})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestAssign_InvalidDate(t *testing.T) {
	ctx := context.Background()

	svc := timeline.NewService(&mocks.TimelineRepository{}, nil)
	_, err := svc.Assign(ctx, timeline.AssignRequest{ProjectID: 1, PlatformID: 2, AssignedDate: "15/03/2024"})
	verr, ok := validation.AsError(err)
	require.True(t, ok)
	require.Equal(t, []string{"invalid assigned date format (expected YYYY-MM-DD)"}, verr.Messages)
}

func TestAsOf(t *testing.T) {
	ctx := context.Background()
	want := &timeline.Entry{ID: 3, ProjectID: 1, PlatformID: 2, PlatformName: "GCP", AssignedDate: "2024-03-01"}

	repo := &mocks.TimelineRepository{}
	repo.On("AsOf", ctx, int64(1), "2024-03-15").Return(want, nil)

	svc := timeline.NewService(repo, nil)
	entry, err := svc.AsOf(ctx, 1, "2024-03-15")
	require.NoError(t, err)
	require.Equal(t, want, entry)
}

func TestAsOf_NoEntryBeforeDate(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TimelineRepository{}
	repo.On("AsOf", ctx, int64(1), "2020-01-01").Return((*timeline.Entry)(nil), repository.ErrNotFound)

	svc := timeline.NewService(repo, nil)
	_, err := svc.AsOf(ctx, 1, "2020-01-01")
	require.ErrorIs(t, err, timeline.ErrNoPlatform)
}

func TestAsOf_InvalidDate(t *testing.T) {
	ctx := context.Background()

	svc := timeline.NewService(&mocks.TimelineRepository{}, nil)
	_, err := svc.AsOf(ctx, 1, "yesterday")
	verr, ok := validation.AsError(err)
	require.True(t, ok)
	require.Equal(t, []string{"invalid date format (expected YYYY-MM-DD)"}, verr.Messages)
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	want := []timeline.Entry{
		{ID: 1, ProjectID: 1, PlatformID: 2, AssignedDate: "2024-01-01"},
		{ID: 2, ProjectID: 1, PlatformID: 3, AssignedDate: "2024-03-01"},
	}

	repo := &mocks.TimelineRepository{}
	repo.On("History", ctx, int64(1)).Return(want, nil)

	svc := timeline.NewService(repo, nil)
	entries, err := svc.History(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, want, entries)
}

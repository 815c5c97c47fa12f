package notify_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/devflowhq/devflow/internal/domain/notify"
	"github.com/devflowhq/devflow/internal/repository/mocks"
)

func TestAdd(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.NotificationRepository{}
	repo.On("Add", ctx, mock.MatchedBy(func(n *notify.Notification) bool {
		return n.Title == "New Project: Shop Frontend" &&
			n.Type == notify.TypeSuccess &&
			!n.IsRead &&
			!n.CreatedAt.IsZero()
	})).Return(int64(5), nil)

	svc := notify.NewService(repo, nil)
	id, err := svc.Add(ctx, "New Project: Shop Frontend", "Project created.", notify.TypeSuccess)
	require.NoError(t, err)
	require.Equal(t, int64(5), id)
	repo.AssertExpectations(t)
}

func TestAdd_UnknownTypeFallsBackToInfo(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.NotificationRepository{}
	repo.On("Add", ctx, mock.MatchedBy(func(n *notify.Notification) bool {
		return n.Type == notify.TypeInfo
	})).Return(int64(1), nil)

	svc := notify.NewService(repo, nil)
	_, err := svc.Add(ctx, "t", "m", notify.Type("urgent"))
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestRecent_DefaultLimit(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.NotificationRepository{}
	repo.On("Recent", ctx, 10).Return([]notify.Notification{}, nil)

	svc := notify.NewService(repo, nil)
	_, err := svc.Recent(ctx, 0)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestMarkRead_Missing(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.NotificationRepository{}
	repo.On("MarkRead", ctx, int64(99)).Return(false, nil)

	svc := notify.NewService(repo, nil)
	ok, err := svc.MarkRead(ctx, 99)
	require.NoError(t, err)
	require.False(t, ok)
}

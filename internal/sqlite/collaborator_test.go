package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/devflowhq/devflow/internal/domain/collab"
	"github.com/devflowhq/devflow/internal/repository"
)

func TestCollaboratorRepository_AddListRemove(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCollaboratorRepository(db)
	ctx := context.Background()

	projectID := seedProject(t, db, "Demo")

	adaID, err := repo.Add(ctx, &collab.Collaborator{
		ProjectID: projectID, UserName: "ada", UserEmail: "ada@example.com",
		Role: "owner", AddedAt: time.Now(),
	})
	require.NoError(t, err)

	_, err = repo.Add(ctx, &collab.Collaborator{
		ProjectID: projectID, UserName: "grace", Role: "member", AddedAt: time.Now(),
	})
	require.NoError(t, err)

	list, err := repo.ListByProject(ctx, projectID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "ada", list[0].UserName)
	require.Equal(t, "owner", list[0].Role)
	require.Equal(t, "grace", list[1].UserName)

	ok, err := repo.Remove(ctx, adaID)
	require.NoError(t, err)
	require.True(t, ok)

	list, err = repo.ListByProject(ctx, projectID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "grace", list[0].UserName)

	ok, err = repo.Remove(ctx, adaID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCollaboratorRepository_AddMissingProject(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCollaboratorRepository(db)

	_, err := repo.Add(context.Background(), &collab.Collaborator{
		ProjectID: 99, UserName: "ada", Role: "member", AddedAt: time.Now(),
	})
	require.ErrorIs(t, err, repository.ErrForeignKeyViolation)
}

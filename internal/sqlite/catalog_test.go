package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/devflowhq/devflow/internal/domain/catalog"
	"github.com/devflowhq/devflow/internal/repository"
)

func TestProjectTypeRepository_CRUD(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectTypeRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, &catalog.ProjectType{
		Name:        "Web Application",
		Description: "Browser-facing products",
		CreatedAt:   time.Now(),
	})
	require.NoError(t, err)
	require.Positive(t, id)

	pt, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Web Application", pt.Name)
	require.Equal(t, "Browser-facing products", pt.Description)
	require.Nil(t, pt.UpdatedAt)

	ok, err := repo.Update(ctx, &catalog.ProjectType{ID: id, Name: "Web App", Description: "Renamed"})
	require.NoError(t, err)
	require.True(t, ok)

	pt, err = repo.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Web App", pt.Name)
	require.NotNil(t, pt.UpdatedAt)

	ok, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = repo.Get(ctx, id)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectTypeRepository_UpdateMissing(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectTypeRepository(db)
	ctx := context.Background()

	ok, err := repo.Update(ctx, &catalog.ProjectType{ID: 42, Name: "Ghost"})
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = repo.Delete(ctx, 42)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestProjectTypeRepository_DuplicateName(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectTypeRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &catalog.ProjectType{Name: "Mobile", CreatedAt: time.Now()})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &catalog.ProjectType{Name: "Mobile", CreatedAt: time.Now()})
	require.ErrorIs(t, err, repository.ErrDuplicateName)
}

func TestProjectTypeRepository_NameTaken(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectTypeRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, &catalog.ProjectType{Name: "Mobile", CreatedAt: time.Now()})
	require.NoError(t, err)

	taken, err := repo.NameTaken(ctx, "Mobile", nil)
	require.NoError(t, err)
	require.True(t, taken)

	// The row being edited does not collide with itself.
	taken, err = repo.NameTaken(ctx, "Mobile", &id)
	require.NoError(t, err)
	require.False(t, taken)

	taken, err = repo.NameTaken(ctx, "Desktop", nil)
	require.NoError(t, err)
	require.False(t, taken)
}

func TestPlatformRepository_CRUD(t *testing.T) {
	db := NewTestDB(t)
	repo := NewPlatformRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, &catalog.Platform{
		Name:        "AWS",
		Description: "Amazon Web Services",
		CreatedAt:   time.Now(),
	})
	require.NoError(t, err)

	p, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "AWS", p.Name)

	ok, err := repo.Update(ctx, &catalog.Platform{ID: id, Name: "AWS", Description: "Updated"})
	require.NoError(t, err)
	require.True(t, ok)

	p, err = repo.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Updated", p.Description)
	require.NotNil(t, p.UpdatedAt)

	ok, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestPlatformRepository_ListOrdering(t *testing.T) {
	db := NewTestDB(t)
	repo := NewPlatformRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Heroku", "AWS", "GCP"} {
		_, err := repo.Create(ctx, &catalog.Platform{Name: name, CreatedAt: time.Now()})
		require.NoError(t, err)
	}

	platforms, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, platforms, 3)
	require.Equal(t, "AWS", platforms[0].Name)
	require.Equal(t, "GCP", platforms[1].Name)
	require.Equal(t, "Heroku", platforms[2].Name)
}

func TestPlatformRepository_DuplicateName(t *testing.T) {
	db := NewTestDB(t)
	repo := NewPlatformRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, &catalog.Platform{Name: "AWS", CreatedAt: time.Now()})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &catalog.Platform{Name: "GCP", CreatedAt: time.Now()})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &catalog.Platform{Name: "AWS", CreatedAt: time.Now()})
	require.ErrorIs(t, err, repository.ErrDuplicateName)

	ok, err := repo.Update(ctx, &catalog.Platform{ID: id, Name: "GCP"})
	require.ErrorIs(t, err, repository.ErrDuplicateName)
	require.False(t, ok)
}

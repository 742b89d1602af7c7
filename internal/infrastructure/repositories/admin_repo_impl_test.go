package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"gdgoc.backend/internal/domain/entities"
	domainerrors "gdgoc.backend/internal/domain/errors"
)

func newAdmin(username string) *entities.Admin {
	now := time.Now()
	return &entities.Admin{
		ID:           uuid.New(),
		Name:         "Admin " + username,
		Username:     username,
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestAdminRepository_CRUDAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdminRepository(db)
	ctx := context.Background()

	a := newAdmin("root")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, newAdmin("second")))

	byID, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "root", byID.Username)
	require.False(t, byID.ProfileImage.Valid)

	byName, err := repo.GetByUsername(ctx, "root")
	require.NoError(t, err)
	require.Equal(t, a.ID, byName.ID)

	a.Name = "Root Admin"
	a.ProfileImage = null.StringFrom("https://img.example.com/root.png")
	require.NoError(t, repo.Update(ctx, a))
	updated, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "Root Admin", updated.Name)
	require.Equal(t, "https://img.example.com/root.png", updated.ProfileImage.String)

	require.NoError(t, repo.UpdatePassword(ctx, a.ID, "hash2"))
	updated, err = repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "hash2", updated.PasswordHash)

	items, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 2)

	items, err = repo.List(ctx, "ROOT")
	require.NoError(t, err)
	require.Len(t, items, 1)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	require.NoError(t, repo.Delete(ctx, a.ID))
	_, err = repo.GetByID(ctx, a.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAdminRepository_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdminRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newAdmin("root")))
	err := repo.Create(ctx, newAdmin("root"))
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestAdminRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdminRepository(db)
	ctx := context.Background()
	id := uuid.New()

	_, err := repo.GetByID(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByUsername(ctx, "missing")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.ErrorIs(t, repo.Update(ctx, &entities.Admin{ID: id, Name: "x", Username: "x"}), domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.UpdatePassword(ctx, id, "hash"), domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.Delete(ctx, id), domainerrors.ErrNotFound)
}

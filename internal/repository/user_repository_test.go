package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"kotoba/backend/internal/model"
	"kotoba/backend/internal/repository"
	"kotoba/backend/internal/repository/testutil"
)

func TestUserRepository_SaveAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	missing, err := repo.Get(ctx, "pra40109")
	require.NoError(t, err)
	require.Nil(t, missing)

	require.NoError(t, repo.Save(ctx, model.User{ID: "pra40109", Email: "a@example.com", PasswordHash: "h1"}))
	require.NoError(t, repo.Save(ctx, model.User{ID: "pra40109", Email: "b@example.com", PasswordHash: "h2"}))

	user, err := repo.Get(ctx, "pra40109")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, "b@example.com", user.Email)
	require.Equal(t, "h2", user.PasswordHash)
	require.False(t, user.CreatedAt.IsZero())
}

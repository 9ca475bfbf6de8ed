package repository

import (
	"context"
	"testing"

	"meublog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateWithProfile(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("Creates User And Profile Atomically", func(t *testing.T) {
		user := &models.User{Username: "maria", Email: "maria@example.com", Password: "hash", Active: true}
		profile := &models.Profile{CPF: "52998224725", Role: models.RoleComum, Active: true}

		require.NoError(t, repo.CreateWithProfile(ctx, user, profile))
		assert.NotZero(t, user.ID)
		assert.Equal(t, user.ID, profile.UserID)

		got, err := repo.GetByUsername(ctx, "maria")
		require.NoError(t, err)
		require.NotNil(t, got)
		require.NotNil(t, got.Profile)
		assert.Equal(t, "52998224725", got.Profile.CPF)
	})

	t.Run("Duplicate CPF Rolls Back User Row", func(t *testing.T) {
		user := &models.User{Username: "joao", Email: "joao@example.com", Password: "hash", Active: true}
		profile := &models.Profile{CPF: "52998224725", Role: models.RoleComum, Active: true}

		err := repo.CreateWithProfile(ctx, user, profile)
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

		// The user insert must not survive the failed profile insert.
		got, err := repo.GetByUsername(ctx, "joao")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Duplicate Username Rejected", func(t *testing.T) {
		user := &models.User{Username: "maria", Email: "outra@example.com", Password: "hash", Active: true}
		profile := &models.Profile{CPF: "11144477735", Role: models.RoleComum, Active: true}

		err := repo.CreateWithProfile(ctx, user, profile)
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})
}

func TestUserRepository_GetByUsername_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	got, err := repo.GetByUsername(context.Background(), "ninguem")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_Delete_CascadesProfile(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db)
	require.NoError(t, repo.Delete(ctx, user.ID))

	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUserRepository_List(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		seedUser(t, db)
	}

	users, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, users, 3)
	for _, u := range users {
		assert.NotNil(t, u.Profile)
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeenkov/avito-tasker/internal/apperrors"
)

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func TestUserRepo_UpsertUser(t *testing.T) {
	r := NewUserRepository(testDB)
	ctx := context.Background()

	t.Run("first login creates the user", func(t *testing.T) {
		setupTestData(t, testDB)

		user, err := r.UpsertUser(ctx, 100, strPtr("newbie"), "Nika", nil)
		require.NoError(t, err)
		assert.Equal(t, int64(100), user.TelegramID)
		require.NotNil(t, user.Username)
		assert.Equal(t, "newbie", *user.Username)
		assert.Zero(t, user.MainBalance)
		assert.Nil(t, user.ReferredBy)
	})

	t.Run("later login refreshes display fields only", func(t *testing.T) {
		setupTestData(t, testDB)

		user, err := r.UpsertUser(ctx, 1, strPtr("renamed"), "Oleg II", nil)
		require.NoError(t, err)
		require.NotNil(t, user.Username)
		assert.Equal(t, "renamed", *user.Username)
		assert.Equal(t, "Oleg II", user.FirstName)
		assert.Equal(t, int64(600), user.MainBalance)
		assert.Equal(t, int64(100), user.ReferralBalance)
	})

	t.Run("referrer binds on first login with token", func(t *testing.T) {
		setupTestData(t, testDB)

		user, err := r.UpsertUser(ctx, 100, nil, "Nika", int64Ptr(1))
		require.NoError(t, err)
		require.NotNil(t, user.ReferredBy)
		assert.Equal(t, int64(1), *user.ReferredBy)
	})

	t.Run("referrer is write-once", func(t *testing.T) {
		setupTestData(t, testDB)

		// user 3 is already bound to user 1; a fresh token must not rebind
		user, err := r.UpsertUser(ctx, 3, nil, "Pasha", int64Ptr(2))
		require.NoError(t, err)
		require.NotNil(t, user.ReferredBy)
		assert.Equal(t, int64(1), *user.ReferredBy)
	})

	t.Run("late token binds a user registered without one", func(t *testing.T) {
		setupTestData(t, testDB)

		user, err := r.UpsertUser(ctx, 2, nil, "Dina", int64Ptr(1))
		require.NoError(t, err)
		require.NotNil(t, user.ReferredBy)
		assert.Equal(t, int64(1), *user.ReferredBy)
	})
}

func TestUserRepo_GetUser(t *testing.T) {
	r := NewUserRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	user, err := r.GetUser(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(300), user.MainBalance)
	assert.Equal(t, int64(300), user.ReferralBalance)
	require.NotNil(t, user.ReferredBy)
	assert.Equal(t, int64(1), *user.ReferredBy)

	_, err = r.GetUser(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserRepo_UserExists(t *testing.T) {
	r := NewUserRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	exists, err := r.UserExists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = r.UserExists(ctx, 999)
	require.NoError(t, err)
	assert.False(t, exists)
}

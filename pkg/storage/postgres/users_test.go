package postgres_test

import (
	"context"
	"testing"

	"estate/pkg/domain"
	"estate/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Users(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	alice, err := pg.CreateUser(ctx, domain.User{
		Email: "Alice@Example.com", Name: "Alice", Role: domain.RoleUser, PasswordHash: "h1",
	})
	require.NoError(t, err)
	require.False(t, alice.ID.IsZero())
	require.Equal(t, "alice@example.com", alice.Email)
	require.Equal(t, domain.UserStatusActive, alice.Status)
	require.False(t, alice.CreatedAt.IsZero())

	bob, err := pg.CreateUser(ctx, domain.User{
		Email: "bob@agency.in", Name: "Bob Broker", Role: domain.RoleAgent, PasswordHash: "h2",
	})
	require.NoError(t, err)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := pg.CreateUser(ctx, domain.User{Email: "ALICE@example.com", Role: domain.RoleUser, PasswordHash: "x"})
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("by email and id", func(t *testing.T) {
		u, err := pg.UserByEmail(ctx, " alice@EXAMPLE.com ")
		require.NoError(t, err)
		require.Equal(t, alice.ID, u.ID)
		require.Equal(t, "h1", u.PasswordHash)

		u, err = pg.UserByID(ctx, bob.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleAgent, u.Role)

		u, err = pg.UserByID(ctx, domain.UserID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, u)
	})

	t.Run("search", func(t *testing.T) {
		users, err := pg.SearchUsers(ctx, "broker", 10)
		require.NoError(t, err)
		require.Len(t, users, 1)
		require.Equal(t, bob.ID, users[0].ID)

		users, err = pg.SearchUsers(ctx, "EXAMPLE.COM", 10)
		require.NoError(t, err)
		require.Len(t, users, 1)

		users, err = pg.SearchUsers(ctx, "", 10)
		require.NoError(t, err)
		require.Len(t, users, 2)

		users, err = pg.SearchUsers(ctx, "%", 10)
		require.NoError(t, err)
		require.Empty(t, users)
	})

	t.Run("update status", func(t *testing.T) {
		u, err := pg.UpdateUserStatus(ctx, alice.ID, domain.UserStatusBlocked)
		require.NoError(t, err)
		require.True(t, u.IsBlocked())
		require.False(t, u.UpdatedAt.IsZero())

		u, err = pg.UpdateUserStatus(ctx, domain.UserID(uuid.New()), domain.UserStatusBlocked)
		require.NoError(t, err)
		require.Nil(t, u)
	})
}

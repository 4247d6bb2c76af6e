package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complaintdesk/internal/domain/user"
)

func mustUser(t *testing.T, id, email string, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(id, id, email, role, "", "", time.Now())
	require.NoError(t, err)
	return u
}

func TestUserRepository_LookupByEmailIgnoresCase(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()
	require.NoError(t, repo.Add(ctx, mustUser(t, "agent-1", "amit.agent@sudlife.com", user.RoleAgent)))

	got, err := repo.GetByEmail(ctx, "  AMIT.Agent@SudLife.com")
	require.NoError(t, err)
	assert.Equal(t, "agent-1", got.ID())

	_, err = repo.GetByEmail(ctx, "unknown@x.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmailKeepsFirst(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()
	require.NoError(t, repo.Add(ctx, mustUser(t, "user-1", "rajesh@example.com", user.RoleCustomer)))
	require.NoError(t, repo.Add(ctx, mustUser(t, "user-9", "Rajesh@Example.com", user.RoleCustomer)))

	got, err := repo.GetByEmail(ctx, "rajesh@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.ID())

	second, err := repo.GetByID(ctx, "user-9")
	require.NoError(t, err)
	assert.Equal(t, "user-9", second.ID())

	assert.Error(t, repo.Add(ctx, mustUser(t, "user-1", "other@example.com", user.RoleCustomer)))
}

func TestUserRepository_ListByRole(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()
	require.NoError(t, repo.Add(ctx, mustUser(t, "agent-1", "a1@x.com", user.RoleAgent)))
	require.NoError(t, repo.Add(ctx, mustUser(t, "user-1", "u1@x.com", user.RoleCustomer)))
	require.NoError(t, repo.Add(ctx, mustUser(t, "agent-2", "a2@x.com", user.RoleAgent)))

	agents, err := repo.ListByRole(ctx, user.RoleAgent)
	require.NoError(t, err)
	require.Len(t, agents, 2)
	assert.Equal(t, "agent-1", agents[0].ID())
	assert.Equal(t, "agent-2", agents[1].ID())

	managers, err := repo.ListByRole(ctx, user.RoleManager)
	require.NoError(t, err)
	assert.Empty(t, managers)

	_, err = repo.GetByID(ctx, "nobody")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

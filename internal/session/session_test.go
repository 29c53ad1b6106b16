package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-backtest/internal/dto"
	"stock-backtest/internal/repository"
	"stock-backtest/internal/session"
)

func newTestRepo(t *testing.T) repository.SessionRepository {
	t.Helper()
	repo, err := repository.NewSQLiteSessionRepository(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestManager_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	manager := session.NewManager(repo)
	require.NoError(t, manager.Hydrate(ctx))
	assert.False(t, manager.Authenticated())
	assert.Empty(t, manager.Token())

	user := dto.UserProfile{UserID: 7, Username: "alice", Email: "alice@example.com"}
	require.NoError(t, manager.Set(ctx, "token-1", user))
	assert.True(t, manager.Authenticated())
	assert.Equal(t, "token-1", manager.Token())

	got, ok := manager.User()
	require.True(t, ok)
	assert.Equal(t, "alice", got.Username)

	require.NoError(t, manager.Clear(ctx))
	assert.False(t, manager.Authenticated())
	_, ok = manager.User()
	assert.False(t, ok)
}

func TestManager_HydrateFromPersistedStore(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	first := session.NewManager(repo)
	require.NoError(t, first.Hydrate(ctx))
	require.NoError(t, first.Set(ctx, "token-1", dto.UserProfile{UserID: 7, Username: "alice"}))

	// a second manager over the same store sees the persisted session
	second := session.NewManager(repo)
	require.NoError(t, second.Hydrate(ctx))
	assert.True(t, second.Authenticated())
	assert.Equal(t, "token-1", second.Token())

	user, ok := second.User()
	require.True(t, ok)
	assert.Equal(t, "alice", user.Username)
}

func TestManager_HydrateDropsCorruptUserKeepsToken(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	require.NoError(t, repo.Save(ctx, "token-1", []byte("{not json")))

	manager := session.NewManager(repo)
	require.NoError(t, manager.Hydrate(ctx))

	assert.True(t, manager.Authenticated())
	assert.Equal(t, "token-1", manager.Token())
	_, ok := manager.User()
	assert.False(t, ok)
}

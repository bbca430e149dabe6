package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *Repository {
	t.Helper()

	repo, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestRepositorySetGetRemove(t *testing.T) {
	t.Parallel()

	repo := openMemory(t)
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, "theme", "light"))
	require.NoError(t, repo.Set(ctx, "theme", "dark"))

	value, ok, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)

	require.NoError(t, repo.Remove(ctx, "theme"))
	require.NoError(t, repo.Remove(ctx, "theme"))

	_, ok, err = repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepositoryClear(t *testing.T) {
	t.Parallel()

	repo := openMemory(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "user", "{}"))
	require.NoError(t, repo.Set(ctx, "theme", "dark"))
	require.NoError(t, repo.Clear(ctx))

	for _, key := range []string{"user", "theme"} {
		_, ok, err := repo.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}
}

func TestRepositoryPersistsAcrossReopenAndMigratesOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	config := viper.New()
	config.Set(StatePathKey, filepath.Join(t.TempDir(), "nested", "state.db"))

	first, err := NewRepository(ctx, config)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "theme", "dark"))
	require.NoError(t, first.Close())

	second, err := NewRepository(ctx, config)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	value, ok, err := second.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)

	var versions int
	require.NoError(t, second.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM goose_db_version WHERE version_id > 0`).Scan(&versions))
	assert.Equal(t, 1, versions)
}

func TestRepositoryHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	repo := openMemory(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, repo.Set(ctx, "theme", "dark"))
}

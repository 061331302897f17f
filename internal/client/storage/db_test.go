package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDatabase_EmptyDSNUsesMemory(t *testing.T) {
	repos, err := InitDatabase(context.Background(), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	require.NoError(t, repos.Metadata.Set(context.Background(), "k", []byte("v")))
	v, err := repos.Metadata.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
}

func TestInitDatabase_MigratesAndPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "premium.db")

	first, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, first.Metadata.Set(ctx, "jg_premium", []byte("1")))
	require.NoError(t, first.Close())

	second, err := InitDatabase(ctx, dsn)
	require.NoError(t, err, "migrations must be re-runnable")
	t.Cleanup(func() { _ = second.Close() })

	v, err := second.Metadata.Get(ctx, "jg_premium")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
}

func TestInitDatabase_CreatesParentDir(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "missing-dir", "premium.db")
	repos, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	_, err = os.Stat(dsn)
	require.NoError(t, err)
}

func TestInitDatabase_BadPath(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := InitDatabase(context.Background(), filepath.Join(blocker, "premium.db"))
	require.ErrorContains(t, err, "failed to prepare database")
}

package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/trackhist/pkg/adapters/file"
	"github.com/aretw0/trackhist/pkg/domain"
	"github.com/aretw0/trackhist/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.New(t.TempDir())
	ports.RunRunStoreContract(t, store)
}

func TestFileStore_ListIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "b", &domain.Run{ID: "b"}))
	require.NoError(t, store.Save(ctx, "a", &domain.Run{ID: "a"}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tmp-c-123.json"), []byte("{}"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0o755))

	runs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, runs)
}

func TestFileStore_MissingDir(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "missing"))

	runs, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestFileStore_InvalidRunID(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	assert.ErrorIs(t, store.Save(ctx, "", &domain.Run{}), domain.ErrInvalidRunID)
	assert.ErrorIs(t, store.Save(ctx, "../escape", &domain.Run{}), domain.ErrInvalidRunID)
	_, err := store.Load(ctx, "a/b")
	assert.ErrorIs(t, err, domain.ErrInvalidRunID)
}

func TestFileStore_Overwrite(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "r", &domain.Run{ID: "r", Workers: 1}))
	require.NoError(t, store.Save(ctx, "r", &domain.Run{ID: "r", Workers: 4}))

	run, err := store.Load(ctx, "r")
	require.NoError(t, err)
	assert.Equal(t, 4, run.Workers)
}

package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStore_SaveAndURL(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := NewLocalStore(dir, "http://localhost:5000/")
	require.NoError(t, err)

	err = store.Save(context.Background(), "p-1.png", strings.NewReader("fake png bytes"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "p-1.png"))
	require.NoError(t, err)
	require.Equal(t, "fake png bytes", string(data))

	require.Equal(t, "http://localhost:5000/uploads/p-1.png", store.URL("p-1.png"))
}

func TestLocalStore_SaveStripsPathComponents(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := NewLocalStore(dir, "http://localhost:5000")
	require.NoError(t, err)

	// A key with path separators must not escape the uploads directory.
	err = store.Save(context.Background(), "../escape.png", strings.NewReader("x"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "escape.png"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(filepath.Dir(dir), "escape.png"))
	require.True(t, os.IsNotExist(err))
}

func TestLocalStore_CreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "public", "uploads")
	_, err := NewLocalStore(dir, "http://localhost:5000")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestLocalStore_SaveCancelledContext(t *testing.T) {
	t.Parallel()

	store, err := NewLocalStore(t.TempDir(), "http://localhost:5000")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = store.Save(ctx, "p.png", strings.NewReader("x"))
	require.Error(t, err)
}

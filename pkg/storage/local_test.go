package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_UploadAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "http://localhost:8080/")
	require.NoError(t, err)

	ctx := context.Background()
	url, err := store.UploadImage(ctx, strings.NewReader("image-bytes"), "posts", "plate.jpg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(filepath.Join(dir, files[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	require.NoError(t, store.DeleteImage(ctx, url))
	files, err = os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, files)

	// Deleting twice is fine; the file is already gone.
	assert.NoError(t, store.DeleteImage(ctx, url))
}

func TestLocalStorage_DeleteRejectsForeignURL(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	err = store.DeleteImage(context.Background(), "https://cdn.example.com/x.jpg")
	assert.Error(t, err)
}

func TestLocalStorage_DeleteIgnoresPathTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "http://localhost:8080")
	require.NoError(t, err)

	outside := filepath.Join(filepath.Dir(dir), "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))
	t.Cleanup(func() { os.Remove(outside) })

	// filepath.Base strips any traversal, so the sibling file survives.
	_ = store.DeleteImage(context.Background(), "http://localhost:8080/uploads/../victim.txt")
	_, statErr := os.Stat(outside)
	assert.NoError(t, statErr)
}

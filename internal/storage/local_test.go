package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	return s
}

func TestLocalStorageSaveGetDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	err := s.Save(ctx, "photo.png", strings.NewReader("fake png bytes"), "image/png")
	require.NoError(t, err)

	exists, err := s.Exists(ctx, "photo.png")
	require.NoError(t, err)
	assert.True(t, exists)

	rc, err := s.Get(ctx, "photo.png")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)
	assert.Equal(t, "fake png bytes", string(data))

	require.NoError(t, s.Delete(ctx, "photo.png"))

	exists, err = s.Exists(ctx, "photo.png")
	require.NoError(t, err)
	assert.False(t, exists)

	// deleting a missing file is not an error
	assert.NoError(t, s.Delete(ctx, "photo.png"))
}

func TestLocalStorageGetURL(t *testing.T) {
	ctx := context.Background()

	s := newTestStorage(t)
	url, err := s.GetURL(ctx, "abc.png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/abc.png", url)

	withBase, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "https://cdn.example.com/files"})
	require.NoError(t, err)
	url, err = withBase.GetURL(ctx, "abc.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/files/abc.png", url)
}

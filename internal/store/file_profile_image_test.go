package store

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/mentor-match/internal/config"
	"github.com/MKhiriev/mentor-match/internal/logger"
	"github.com/MKhiriev/mentor-match/models"
)

func newTestImageStorage(t *testing.T, defaultImage string) (ImageStorage, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "images")
	s, err := NewProfileImageFileStorage(config.Files{ImagesDir: dir, DefaultImage: defaultImage}, logger.Nop())
	require.NoError(t, err)
	return s, dir
}

func TestNewProfileImageFileStorage_CreatesDirectory(t *testing.T) {
	_, dir := newTestImageStorage(t, "")

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestProfileImageFileStorage_SaveOpenRemove(t *testing.T) {
	s, dir := newTestImageStorage(t, "")
	ctx := context.Background()
	data := []byte("\x89PNG\r\n\x1a\nimage-bytes")

	name, err := s.Save(ctx, 42, models.ProfileImage{Data: data, ContentType: "image/png"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "42_"))
	assert.Equal(t, ".png", filepath.Ext(name))
	assert.FileExists(t, filepath.Join(dir, name))

	img, err := s.Open(ctx, name)
	require.NoError(t, err)
	got, err := io.ReadAll(img)
	require.NoError(t, err)
	require.NoError(t, img.Close())
	assert.Equal(t, data, got)
	assert.Equal(t, name, img.Name)
	assert.False(t, img.ModTime.IsZero())

	require.NoError(t, s.Remove(ctx, name))
	assert.NoFileExists(t, filepath.Join(dir, name))

	_, err = s.Open(ctx, name)
	assert.ErrorIs(t, err, ErrImageNotFound)

	assert.NoError(t, s.Remove(ctx, name), "removing a missing file is not an error")
}

func TestProfileImageFileStorage_SaveNamesAreUnique(t *testing.T) {
	s, _ := newTestImageStorage(t, "")
	ctx := context.Background()

	first, err := s.Save(ctx, 1, models.ProfileImage{Data: []byte("a"), ContentType: "image/jpeg"})
	require.NoError(t, err)
	second, err := s.Save(ctx, 1, models.ProfileImage{Data: []byte("b"), ContentType: "image/jpeg"})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, ".jpg", filepath.Ext(first))
}

func TestProfileImageFileStorage_SaveUnsupportedType(t *testing.T) {
	s, dir := newTestImageStorage(t, "")

	_, err := s.Save(context.Background(), 1, models.ProfileImage{Data: []byte("text"), ContentType: "text/plain"})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProfileImageFileStorage_OpenRejectsPaths(t *testing.T) {
	s, dir := newTestImageStorage(t, "")
	ctx := context.Background()

	outside := filepath.Join(filepath.Dir(dir), "secret.png")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	for _, name := range []string{"", "../secret.png", "nested/../../secret.png", "nested", ".", ".."} {
		t.Run(name, func(t *testing.T) {
			_, err := s.Open(ctx, name)
			assert.ErrorIs(t, err, ErrImageNotFound)
		})
	}

	require.NoError(t, s.Remove(ctx, "../secret.png"))
	assert.FileExists(t, outside)
}

func TestProfileImageFileStorage_OpenDefault(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		s, _ := newTestImageStorage(t, "")
		_, err := s.OpenDefault(context.Background())
		assert.ErrorIs(t, err, ErrImageNotFound)
	})

	t.Run("missing file", func(t *testing.T) {
		s, _ := newTestImageStorage(t, filepath.Join(t.TempDir(), "missing.png"))
		_, err := s.OpenDefault(context.Background())
		assert.ErrorIs(t, err, ErrImageNotFound)
	})

	t.Run("configured", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "default.png")
		require.NoError(t, os.WriteFile(path, []byte("default"), 0o644))

		s, _ := newTestImageStorage(t, path)
		img, err := s.OpenDefault(context.Background())
		require.NoError(t, err)
		defer img.Close()

		got, err := io.ReadAll(img)
		require.NoError(t, err)
		assert.Equal(t, "default", string(got))
		assert.Equal(t, "default.png", img.Name)
	})
}

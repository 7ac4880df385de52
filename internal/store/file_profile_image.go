package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/MKhiriev/mentor-match/internal/config"
	"github.com/MKhiriev/mentor-match/internal/logger"
	"github.com/MKhiriev/mentor-match/internal/utils"
	"github.com/MKhiriev/mentor-match/models"
)

// imageExtensions maps the accepted content types to file extensions.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// profileImageFileStorage keeps uploaded images as plain files in a single
// directory. Files are named "<userID>_<uuid><ext>".
type profileImageFileStorage struct {
	dir          string
	defaultImage string
	uuids        *utils.UUIDGenerator
	logger       *logger.Logger
}

// NewProfileImageFileStorage creates the images directory if needed.
func NewProfileImageFileStorage(cfg config.Files, logger *logger.Logger) (ImageStorage, error) {
	if err := os.MkdirAll(cfg.ImagesDir, 0o755); err != nil {
		logger.Err(err).Str("func", "NewProfileImageFileStorage").Msg("failed to create images directory")
		return nil, fmt.Errorf("error creating images directory: %w", err)
	}

	return &profileImageFileStorage{
		dir:          cfg.ImagesDir,
		defaultImage: cfg.DefaultImage,
		uuids:        utils.NewUUIDGenerator(),
		logger:       logger,
	}, nil
}

func (s *profileImageFileStorage) Save(ctx context.Context, userID int64, image models.ProfileImage) (string, error) {
	log := logger.FromContext(ctx)

	ext, ok := imageExtensions[image.ContentType]
	if !ok {
		return "", fmt.Errorf("unsupported image content type %q", image.ContentType)
	}

	fileName := strconv.FormatInt(userID, 10) + "_" + s.uuids.Generate() + ext
	if err := os.WriteFile(filepath.Join(s.dir, fileName), image.Data, 0o644); err != nil {
		log.Err(err).Str("func", "*profileImageFileStorage.Save").Int64("user_id", userID).Msg("failed to write image")
		return "", fmt.Errorf("error writing image: %w", err)
	}

	return fileName, nil
}

func (s *profileImageFileStorage) Open(_ context.Context, fileName string) (Image, error) {
	// stored names never contain separators
	if fileName == "" || fileName != filepath.Base(fileName) {
		return Image{}, ErrImageNotFound
	}

	return openImage(filepath.Join(s.dir, fileName))
}

func (s *profileImageFileStorage) OpenDefault(context.Context) (Image, error) {
	if s.defaultImage == "" {
		return Image{}, ErrImageNotFound
	}

	return openImage(s.defaultImage)
}

func (s *profileImageFileStorage) Remove(ctx context.Context, fileName string) error {
	if fileName == "" || fileName != filepath.Base(fileName) {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, fileName))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "*profileImageFileStorage.Remove").Str("file", fileName).Msg("failed to remove image")
		return fmt.Errorf("error removing image: %w", err)
	}

	return nil
}

func openImage(path string) (Image, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Image{}, ErrImageNotFound
	}
	if err != nil {
		return Image{}, fmt.Errorf("error opening image: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return Image{}, fmt.Errorf("error reading image info: %w", err)
	}
	if info.IsDir() {
		f.Close()
		return Image{}, ErrImageNotFound
	}

	return Image{ReadSeekCloser: f, Name: info.Name(), ModTime: info.ModTime()}, nil
}

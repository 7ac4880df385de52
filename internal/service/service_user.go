package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/mentor-match/internal/config"
	"github.com/MKhiriev/mentor-match/internal/logger"
	"github.com/MKhiriev/mentor-match/internal/store"
	"github.com/MKhiriev/mentor-match/models"
)

// allowedImageTypes are the sniffed content types accepted as profile images.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

type userService struct {
	userRepository store.UserRepository
	imageStorage   store.ImageStorage
	maxImageSize   int64

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, imageStorage store.ImageStorage, cfg config.Files, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		imageStorage:   imageStorage,
		maxImageSize:   cfg.MaxImageSize,
		logger:         logger,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user, nil
}

// UpdateProfile writes the changed fields and, if an image was uploaded,
// stores it and points the profile at it. The previous image file is removed
// only after the row has been updated.
func (s *userService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate, image *models.ProfileImage) (models.User, error) {
	log := logger.FromContext(ctx)

	update.ProfileImage = nil
	if update.IsEmpty() && image == nil {
		return models.User{}, ErrEmptyProfileUpdate
	}

	if image == nil {
		user, err := s.userRepository.UpdateUser(ctx, userID, update)
		if err != nil {
			return models.User{}, fmt.Errorf("profile update failed: %w", err)
		}
		return user, nil
	}

	if err := s.checkImage(image); err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Int("size", len(image.Data)).Msg("profile image rejected")
		return models.User{}, err
	}

	current, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	fileName, err := s.imageStorage.Save(ctx, userID, *image)
	if err != nil {
		return models.User{}, fmt.Errorf("saving profile image failed: %w", err)
	}
	update.ProfileImage = &fileName

	user, err := s.userRepository.UpdateUser(ctx, userID, update)
	if err != nil {
		if rmErr := s.imageStorage.Remove(ctx, fileName); rmErr != nil {
			log.Err(rmErr).Str("file", fileName).Msg("failed to clean up unused profile image")
		}
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	if current.ProfileImage != "" && current.ProfileImage != fileName {
		if err = s.imageStorage.Remove(ctx, current.ProfileImage); err != nil {
			log.Err(err).Str("file", current.ProfileImage).Msg("failed to remove previous profile image")
		}
	}

	return user, nil
}

// checkImage enforces the size limit and sniffs the content type, replacing
// whatever type the client claimed.
func (s *userService) checkImage(image *models.ProfileImage) error {
	if len(image.Data) == 0 {
		return ErrUnsupportedImageType
	}
	if s.maxImageSize > 0 && int64(len(image.Data)) > s.maxImageSize {
		return ErrImageTooLarge
	}

	contentType := http.DetectContentType(image.Data)
	if !allowedImageTypes[contentType] {
		return fmt.Errorf("%w: got %s", ErrUnsupportedImageType, contentType)
	}
	image.ContentType = contentType

	return nil
}

func (s *userService) GetProfileImage(ctx context.Context, role models.Role, userID int64) (store.Image, error) {
	if !role.Valid() {
		return store.Image{}, store.ErrImageNotFound
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return store.Image{}, store.ErrImageNotFound
	}
	if err != nil {
		return store.Image{}, fmt.Errorf("profile lookup failed: %w", err)
	}
	if user.Role != role {
		return store.Image{}, store.ErrImageNotFound
	}

	if user.ProfileImage != "" {
		image, err := s.imageStorage.Open(ctx, user.ProfileImage)
		if err == nil {
			return image, nil
		}
		if !errors.Is(err, store.ErrImageNotFound) {
			return store.Image{}, err
		}
		logger.FromContext(ctx).Warn().Int64("user_id", userID).Str("file", user.ProfileImage).Msg("profile image file is missing")
	}

	return s.imageStorage.OpenDefault(ctx)
}

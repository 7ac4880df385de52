package service

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/mentor-match/internal/config"
	"github.com/MKhiriev/mentor-match/internal/logger"
	"github.com/MKhiriev/mentor-match/internal/store"
	"github.com/MKhiriev/mentor-match/models"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newTestUserService(users *mockUserRepository, images *mockImageStorage) UserService {
	return NewUserService(users, images, config.Files{MaxImageSize: 64}, logger.Nop())
}

func strPtr(s string) *string { return &s }

func TestUserService_UpdateProfile_EmptyUpdate(t *testing.T) {
	svc := newTestUserService(&mockUserRepository{}, &mockImageStorage{})

	_, err := svc.UpdateProfile(context.Background(), 1, models.ProfileUpdate{}, nil)

	assert.ErrorIs(t, err, ErrEmptyProfileUpdate)
}

func TestUserService_UpdateProfile_FieldsOnly(t *testing.T) {
	users := &mockUserRepository{
		updateFn: func(_ context.Context, id int64, update models.ProfileUpdate) (models.User, error) {
			assert.Equal(t, int64(4), id)
			require.NotNil(t, update.Bio)
			assert.Nil(t, update.ProfileImage)
			return models.User{ID: id, Bio: *update.Bio}, nil
		},
	}
	images := &mockImageStorage{
		saveFn: func(context.Context, int64, models.ProfileImage) (string, error) {
			t.Fatal("no image must be saved")
			return "", nil
		},
	}

	user, err := newTestUserService(users, images).UpdateProfile(context.Background(), 4, models.ProfileUpdate{Bio: strPtr("hi")}, nil)

	require.NoError(t, err)
	assert.Equal(t, "hi", user.Bio)
}

func TestUserService_UpdateProfile_ReplacesImage(t *testing.T) {
	var removed []string
	users := &mockUserRepository{
		findByIDFn: func(_ context.Context, id int64) (models.User, error) {
			return models.User{ID: id, ProfileImage: "old.png"}, nil
		},
		updateFn: func(_ context.Context, id int64, update models.ProfileUpdate) (models.User, error) {
			require.NotNil(t, update.ProfileImage)
			return models.User{ID: id, ProfileImage: *update.ProfileImage}, nil
		},
	}
	images := &mockImageStorage{
		saveFn: func(_ context.Context, userID int64, image models.ProfileImage) (string, error) {
			assert.Equal(t, "image/png", image.ContentType, "content type is sniffed")
			return "new.png", nil
		},
		removeFn: func(_ context.Context, name string) error {
			removed = append(removed, name)
			return nil
		},
	}

	user, err := newTestUserService(users, images).UpdateProfile(context.Background(), 2, models.ProfileUpdate{},
		&models.ProfileImage{Data: pngHeader, ContentType: "application/octet-stream"})

	require.NoError(t, err)
	assert.Equal(t, "new.png", user.ProfileImage)
	assert.Equal(t, []string{"old.png"}, removed)
}

func TestUserService_UpdateProfile_RemovesNewImageOnFailure(t *testing.T) {
	var removed []string
	users := &mockUserRepository{
		findByIDFn: func(_ context.Context, id int64) (models.User, error) {
			return models.User{ID: id, ProfileImage: "old.png"}, nil
		},
		updateFn: func(context.Context, int64, models.ProfileUpdate) (models.User, error) {
			return models.User{}, errStorage
		},
	}
	images := &mockImageStorage{
		removeFn: func(_ context.Context, name string) error {
			removed = append(removed, name)
			return nil
		},
	}

	_, err := newTestUserService(users, images).UpdateProfile(context.Background(), 2, models.ProfileUpdate{}, &models.ProfileImage{Data: pngHeader})

	assert.ErrorIs(t, err, errStorage)
	assert.Equal(t, []string{"new.png"}, removed)
}

func TestUserService_UpdateProfile_RejectsImages(t *testing.T) {
	svc := newTestUserService(&mockUserRepository{}, &mockImageStorage{})
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, 1, models.ProfileUpdate{}, &models.ProfileImage{Data: []byte("plain text, not an image")})
	assert.ErrorIs(t, err, ErrUnsupportedImageType)

	_, err = svc.UpdateProfile(ctx, 1, models.ProfileUpdate{}, &models.ProfileImage{Data: []byte{}})
	assert.ErrorIs(t, err, ErrUnsupportedImageType)

	big := append(append([]byte{}, pngHeader...), make([]byte, 64)...)
	_, err = svc.UpdateProfile(ctx, 1, models.ProfileUpdate{}, &models.ProfileImage{Data: big})
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestUserService_GetProfileImage(t *testing.T) {
	users := &mockUserRepository{
		findByIDFn: func(_ context.Context, id int64) (models.User, error) {
			switch id {
			case 1:
				return models.User{ID: 1, Role: models.RoleMentor, ProfileImage: "1_a.png"}, nil
			case 2:
				return models.User{ID: 2, Role: models.RoleMentee}, nil
			case 3:
				return models.User{ID: 3, Role: models.RoleMentor, ProfileImage: "gone.png"}, nil
			}
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	images := &mockImageStorage{
		openFn: func(_ context.Context, name string) (store.Image, error) {
			if name == "1_a.png" {
				return testImage(name, "own"), nil
			}
			return store.Image{}, store.ErrImageNotFound
		},
		openDefaultFn: func(context.Context) (store.Image, error) {
			return testImage("default.png", "default"), nil
		},
	}
	svc := newTestUserService(users, images)
	ctx := context.Background()

	read := func(t *testing.T, img store.Image) string {
		t.Helper()
		b, err := io.ReadAll(img)
		require.NoError(t, err)
		return string(b)
	}

	img, err := svc.GetProfileImage(ctx, models.RoleMentor, 1)
	require.NoError(t, err)
	assert.Equal(t, "own", read(t, img))

	img, err = svc.GetProfileImage(ctx, models.RoleMentee, 2)
	require.NoError(t, err)
	assert.Equal(t, "default", read(t, img), "no image falls back to placeholder")

	img, err = svc.GetProfileImage(ctx, models.RoleMentor, 3)
	require.NoError(t, err)
	assert.Equal(t, "default", read(t, img), "missing file falls back to placeholder")

	_, err = svc.GetProfileImage(ctx, models.RoleMentee, 1)
	assert.ErrorIs(t, err, store.ErrImageNotFound, "role must match")

	_, err = svc.GetProfileImage(ctx, models.Role("admin"), 1)
	assert.ErrorIs(t, err, store.ErrImageNotFound)

	_, err = svc.GetProfileImage(ctx, models.RoleMentor, 42)
	assert.ErrorIs(t, err, store.ErrImageNotFound)
}

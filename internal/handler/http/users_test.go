package http

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/mentor-match/internal/service"
	"github.com/MKhiriev/mentor-match/internal/store"
	"github.com/MKhiriev/mentor-match/models"
)

func ptr[T any](v T) *T { return &v }

// newMultipartRequest builds a PUT /api/profile form with the given text
// fields and, when image is not nil, a profile_image file part.
func newMultipartRequest(t *testing.T, fields map[string]string, image []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if image != nil {
		part, err := mw.CreateFormFile(profileImageField, "avatar.png")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPut, "/api/profile", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return withBearer(req)
}

func TestGetMe(t *testing.T) {
	h, mocks := newMockedHandler(t)
	mocks.authenticateAs(testMentor)

	stored := testMentor
	stored.Bio = "10 years of Go"
	stored.HourlyRate = ptr(80.0)
	stored.ProfileImage = "2_abc.png"
	mocks.users.EXPECT().GetProfile(gomock.Any(), testMentor.ID).Return(stored, nil)

	rec := serve(h, withBearer(httptest.NewRequest(http.MethodGet, "/api/me", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	profile := decodeResponse[models.Profile](t, rec)
	assert.Equal(t, stored.ID, profile.ID)
	assert.Equal(t, "10 years of Go", profile.Bio)
	require.NotNil(t, profile.ProfileImageURL)
	assert.Equal(t, "/api/images/mentor/2", *profile.ProfileImageURL)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "2_abc.png")
}

func TestGetMe_UserGone(t *testing.T) {
	h, mocks := newMockedHandler(t)
	mocks.authenticateAs(testMentee)
	mocks.users.EXPECT().GetProfile(gomock.Any(), testMentee.ID).Return(models.User{}, store.ErrNoUserWasFound)

	rec := serve(h, withBearer(httptest.NewRequest(http.MethodGet, "/api/me", nil)))

	assertErrorResponse(t, rec, http.StatusNotFound, store.ErrNoUserWasFound.Error())
}

func TestUpdateProfile_JSON(t *testing.T) {
	h, mocks := newMockedHandler(t)
	mocks.authenticateAs(testMentor)

	want := models.ProfileUpdate{Name: ptr("Renamed"), ExperienceYears: ptr(5)}
	updated := testMentor
	updated.Name = "Renamed"
	updated.ExperienceYears = 5
	mocks.users.EXPECT().
		UpdateProfile(gomock.Any(), testMentor.ID, want, (*models.ProfileImage)(nil)).
		Return(updated, nil)

	rec := serve(h, withBearer(newJSONRequest(t, http.MethodPut, "/api/profile", `{"name":"Renamed","experience_years":5}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse[models.ProfileResponse](t, rec)
	assert.Equal(t, "Profile updated successfully", body.Message)
	assert.Equal(t, "Renamed", body.User.Name)
	assert.Equal(t, 5, body.User.ExperienceYears)
}

func TestUpdateProfile_Multipart(t *testing.T) {
	h, mocks := newMockedHandler(t)
	mocks.authenticateAs(testMentor)

	image := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)
	want := models.ProfileUpdate{Bio: ptr("hello"), HourlyRate: ptr(42.5)}
	mocks.users.EXPECT().
		UpdateProfile(gomock.Any(), testMentor.ID, want, &models.ProfileImage{Data: image}).
		Return(testMentor, nil)

	req := newMultipartRequest(t, map[string]string{"bio": "hello", "hourly_rate": "42.5"}, image)
	rec := serve(h, req)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestUpdateProfile_MultipartWithoutImage(t *testing.T) {
	h, mocks := newMockedHandler(t)
	mocks.authenticateAs(testMentee)
	mocks.users.EXPECT().
		UpdateProfile(gomock.Any(), testMentee.ID, models.ProfileUpdate{Skills: ptr("")}, (*models.ProfileImage)(nil)).
		Return(testMentee, nil)

	rec := serve(h, newMultipartRequest(t, map[string]string{"skills": ""}, nil))

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestUpdateProfile_Errors(t *testing.T) {
	tests := []struct {
		name       string
		request    func(t *testing.T) *http.Request
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{
			name: "malformed json",
			request: func(t *testing.T) *http.Request {
				return withBearer(newJSONRequest(t, http.MethodPut, "/api/profile", `{"name":`))
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    ErrInvalidJSON.Error(),
		},
		{
			name: "negative experience",
			request: func(t *testing.T) *http.Request {
				return withBearer(newJSONRequest(t, http.MethodPut, "/api/profile", `{"experience_years":-1}`))
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "experience_years",
		},
		{
			name: "blank name",
			request: func(t *testing.T) *http.Request {
				return withBearer(newJSONRequest(t, http.MethodPut, "/api/profile", `{"name":""}`))
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "name",
		},
		{
			name: "non numeric form field",
			request: func(t *testing.T) *http.Request {
				return newMultipartRequest(t, map[string]string{"experience_years": "many"}, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "experience_years must be an integer",
		},
		{
			name: "image over the limit",
			request: func(t *testing.T) *http.Request {
				return newMultipartRequest(t, nil, bytes.Repeat([]byte{1}, 2<<10))
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    service.ErrImageTooLarge.Error(),
		},
		{
			name: "nothing to update",
			request: func(t *testing.T) *http.Request {
				return withBearer(newJSONRequest(t, http.MethodPut, "/api/profile", `{}`))
			},
			serviceErr: service.ErrEmptyProfileUpdate,
			wantStatus: http.StatusBadRequest,
			wantMsg:    service.ErrEmptyProfileUpdate.Error(),
		},
		{
			name: "unsupported image type",
			request: func(t *testing.T) *http.Request {
				return newMultipartRequest(t, nil, []byte("plain text"))
			},
			serviceErr: service.ErrUnsupportedImageType,
			wantStatus: http.StatusBadRequest,
			wantMsg:    service.ErrUnsupportedImageType.Error(),
		},
		{
			name: "storage failure",
			request: func(t *testing.T) *http.Request {
				return withBearer(newJSONRequest(t, http.MethodPut, "/api/profile", `{"bio":"x"}`))
			},
			serviceErr: errors.New("disk full"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    internalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newMockedHandler(t)
			mocks.authenticateAs(testMentor)
			if tt.serviceErr != nil {
				mocks.users.EXPECT().
					UpdateProfile(gomock.Any(), testMentor.ID, gomock.Any(), gomock.Any()).
					Return(models.User{}, tt.serviceErr)
			}

			rec := serve(h, tt.request(t))

			assertErrorResponse(t, rec, tt.wantStatus, tt.wantMsg)
		})
	}
}

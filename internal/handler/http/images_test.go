package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/mentor-match/internal/store"
	"github.com/MKhiriev/mentor-match/models"
)

type closableReader struct {
	*bytes.Reader
	closed bool
}

func (c *closableReader) Close() error {
	c.closed = true
	return nil
}

func TestGetProfileImage(t *testing.T) {
	h, mocks := newMockedHandler(t)

	content := []byte("\x89PNG\r\n\x1a\nimage-bytes")
	reader := &closableReader{Reader: bytes.NewReader(content)}
	mocks.users.EXPECT().
		GetProfileImage(gomock.Any(), models.RoleMentee, int64(5)).
		Return(store.Image{ReadSeekCloser: reader, Name: "5_x.png", ModTime: time.Now()}, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/images/mentee/5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, content, rec.Body.Bytes())
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.True(t, reader.closed)
}

func TestGetProfileImage_MalformedPath(t *testing.T) {
	paths := []string{
		"/api/images/admin/1",
		"/api/images/mentor/abc",
		"/api/images/mentor/1.5",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			h, _ := newMockedHandler(t)

			rec := serve(h, httptest.NewRequest(http.MethodGet, path, nil))

			assertErrorResponse(t, rec, http.StatusNotFound, store.ErrImageNotFound.Error())
		})
	}
}

func TestGetProfileImage_WrongRoleForUser(t *testing.T) {
	h, mocks := newMockedHandler(t)
	mocks.users.EXPECT().
		GetProfileImage(gomock.Any(), models.RoleMentor, int64(1)).
		Return(store.Image{}, store.ErrImageNotFound)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/images/mentor/1", nil))

	assertErrorResponse(t, rec, http.StatusNotFound, store.ErrImageNotFound.Error())
}

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/mentor-match/models"
)

func TestGetServerVersion(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		buildInfo models.AppBuildInfo
		want      models.VersionResponse
	}{
		{
			name:      "full build info",
			version:   "1.2.0",
			buildInfo: models.NewAppBuildInfo("1.2.0", "2026-10-01", "abc123"),
			want:      models.VersionResponse{Version: "1.2.0", Date: "2026-10-01", Commit: "abc123"},
		},
		{
			name:      "missing linker flags",
			version:   "dev",
			buildInfo: models.NewAppBuildInfo("", "", ""),
			want:      models.VersionResponse{Version: "dev", Date: "N/A", Commit: "N/A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newMockedHandler(t)
			mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(tt.version)
			mocks.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(tt.buildInfo)

			rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/version", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.want, decodeResponse[models.VersionResponse](t, rec))
		})
	}
}

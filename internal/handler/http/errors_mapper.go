package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/mentor-match/internal/logger"
	"github.com/MKhiriev/mentor-match/internal/service"
	"github.com/MKhiriev/mentor-match/internal/store"
	"github.com/MKhiriev/mentor-match/internal/utils"
	"github.com/MKhiriev/mentor-match/internal/validators"
)

// internalErrorMessage is the only message ever shown for unmapped errors.
const internalErrorMessage = "internal server error"

// errorMapping ties a sentinel error to a response. When detailed is set the
// full error text is shown to the client, otherwise the sentinel's own text.
type errorMapping struct {
	target   error
	status   int
	detailed bool
}

// errorMappings is searched in order; the first match wins.
var errorMappings = []errorMapping{
	{target: ErrInvalidJSON, status: http.StatusBadRequest, detailed: true},
	{target: ErrInvalidForm, status: http.StatusBadRequest, detailed: true},
	{target: ErrInvalidID, status: http.StatusBadRequest},
	{target: ErrInvalidGzipBody, status: http.StatusBadRequest},
	{target: validators.ErrInvalidRequest, status: http.StatusBadRequest, detailed: true},
	{target: service.ErrInvalidQuery, status: http.StatusBadRequest, detailed: true},
	{target: service.ErrInvalidStatus, status: http.StatusBadRequest},
	{target: service.ErrEmptyProfileUpdate, status: http.StatusBadRequest},
	{target: service.ErrImageTooLarge, status: http.StatusBadRequest},
	{target: service.ErrUnsupportedImageType, status: http.StatusBadRequest},
	{target: store.ErrEmailAlreadyExists, status: http.StatusBadRequest},
	{target: store.ErrMatchRequestAlreadyExists, status: http.StatusBadRequest},
	{target: store.ErrMatchRequestAlreadyProcessed, status: http.StatusBadRequest},

	{target: ErrEmptyAuthorizationHeader, status: http.StatusUnauthorized},
	{target: ErrInvalidAuthorizationHeader, status: http.StatusUnauthorized},
	{target: ErrUserNotInContext, status: http.StatusUnauthorized},
	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized},
	{target: service.ErrTokenIsExpired, status: http.StatusUnauthorized},
	{target: service.ErrTokenIsMalformed, status: http.StatusUnauthorized},
	{target: service.ErrUnauthenticated, status: http.StatusUnauthorized},

	{target: service.ErrForbidden, status: http.StatusForbidden, detailed: true},

	{target: ErrRouteNotFound, status: http.StatusNotFound},
	{target: service.ErrMentorNotFound, status: http.StatusNotFound},
	{target: store.ErrMatchRequestNotFound, status: http.StatusNotFound},
	{target: store.ErrImageNotFound, status: http.StatusNotFound},
	{target: store.ErrNoUserWasFound, status: http.StatusNotFound},
}

// responseFromError returns the status and public message for err.
func responseFromError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			if m.detailed {
				return m.status, err.Error()
			}
			return m.status, m.target.Error()
		}
	}
	return http.StatusInternalServerError, internalErrorMessage
}

// writeError logs err and writes the mapped error response.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, status, message)
}

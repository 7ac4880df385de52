package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/mentor-match/internal/logger"
	"github.com/MKhiriev/mentor-match/models"
)

type accessLogCtxKey struct{}

// accessLogEntry collects what inner middleware learns about the request,
// such as the authenticated caller, for the line written by withLogging.
type accessLogEntry struct {
	userID int64
	role   models.Role
}

// recordCaller notes the authenticated user on the request's access log entry.
// It is a no-op outside withLogging.
func recordCaller(ctx context.Context, user models.User) {
	if entry, ok := ctx.Value(accessLogCtxKey{}).(*accessLogEntry); ok {
		entry.userID = user.ID
		entry.role = user.Role
	}
}

// withLogging writes one access log line per request once the handler
// returns. 4xx answers are logged as warnings and 5xx as errors.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		entry := &accessLogEntry{}
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r.WithContext(context.WithValue(r.Context(), accessLogCtxKey{}, entry)))

		log := logger.FromRequest(r)
		event := accessLogEvent(log, lw.status).
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size)
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				event = event.Str("route", pattern)
			}
		}
		if entry.userID != 0 {
			event = event.Int64("user_id", entry.userID).Str("user_role", string(entry.role))
		}
		event.Send()
	})
}

func accessLogEvent(log *logger.Logger, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case status >= http.StatusBadRequest:
		return log.Warn()
	default:
		return log.Info()
	}
}

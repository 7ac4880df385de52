package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/mentor-match/internal/logger"
	"github.com/MKhiriev/mentor-match/internal/service"
	"github.com/MKhiriev/mentor-match/internal/utils"
	"github.com/MKhiriev/mentor-match/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header and resolves
// it through [service.AuthService.Authenticate], which also re-reads the user
// so that tokens of deleted accounts stop working. On success the live
// [models.User] is stored in the request context under [utils.UserCtxKey].
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header is not "Bearer <token>" ([ErrInvalidAuthorizationHeader]).
//   - The token is expired, malformed or names a user that no longer exists.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, "*Handler.auth", ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, "*Handler.auth", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			writeError(w, r, "*Handler.auth", err)
			return
		}

		recordCaller(ctx, user)
		l := logger.FromRequest(r).With().Int64("user_id", user.ID).Logger()
		ctx = utils.WithUser(l.WithContext(ctx), user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRoles lets the request through only when the authenticated user
// has one of roles. It must run after [Handler.auth].
func (h *Handler) requireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	allowed := make([]string, 0, len(roles))
	for _, role := range roles {
		allowed = append(allowed, string(role))
	}
	denied := fmt.Errorf("%w: requires role %s", service.ErrForbidden, strings.Join(allowed, " or "))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := currentUser(r)
			if err != nil {
				writeError(w, r, "*Handler.requireRoles", err)
				return
			}
			if !user.HasRole(roles...) {
				writeError(w, r, "*Handler.requireRoles", denied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

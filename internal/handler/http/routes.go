package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/mentor-match/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withCORS, middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// OpenAPI document and Swagger UI
	router.Get("/api-docs.json", h.getAPIDocsJSON)
	router.Get("/api-docs.yaml", h.getAPIDocsYAML)
	router.Get("/swagger-ui", h.getSwaggerUI)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)
		r.Get("/images/{role}/{id}", h.getProfileImage)
		r.Get("/version", h.getServerVersion)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/me", h.getMe)
			r.Put("/profile", h.updateProfile)
			r.Get("/mentors", h.listMentors)

			r.Get("/match-requests", h.listMatchRequests)
			r.With(h.requireRoles(models.RoleMentee)).Post("/match-requests", h.createMatchRequest)
			r.With(h.requireRoles(models.RoleMentor)).Put("/match-requests/{id}", h.updateMatchRequestStatus)
			r.Delete("/match-requests/{id}", h.deleteMatchRequest)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

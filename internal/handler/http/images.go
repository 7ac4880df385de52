package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/mentor-match/internal/store"
	"github.com/MKhiriev/mentor-match/models"
)

// getProfileImage serves the profile image of /images/{role}/{id}. Any
// malformed path is reported as a missing image.
func (h *Handler) getProfileImage(w http.ResponseWriter, r *http.Request) {
	role := models.Role(chi.URLParam(r, "role"))
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || !role.Valid() {
		writeError(w, r, "*Handler.getProfileImage", store.ErrImageNotFound)
		return
	}

	image, err := h.services.UserService.GetProfileImage(r.Context(), role, id)
	if err != nil {
		writeError(w, r, "*Handler.getProfileImage", err)
		return
	}
	defer image.Close()

	w.Header().Set("Cache-Control", "no-cache")
	http.ServeContent(w, r, image.Name, image.ModTime, image)
}

package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/mentor-match/internal/service"
	"github.com/MKhiriev/mentor-match/internal/utils"
	"github.com/MKhiriev/mentor-match/models"
)

func (h *Handler) listMentors(w http.ResponseWriter, r *http.Request) {
	query, err := mentorQueryFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.listMentors", err)
		return
	}

	page, err := h.services.MentorService.ListMentors(r.Context(), query)
	if err != nil {
		writeError(w, r, "*Handler.listMentors", err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

// mentorQueryFromRequest reads filters, sort and page from the query string.
// Unset parameters keep their defaults; range checks are left to the service.
func mentorQueryFromRequest(r *http.Request) (models.MentorQuery, error) {
	values := r.URL.Query()
	query := models.NewMentorQuery()

	query.Filter.Skills = strings.TrimSpace(values.Get("skills"))
	if v := values.Get("sort_by"); v != "" {
		query.SortBy = v
	}
	if v := values.Get("order"); v != "" {
		query.Order = v
	}

	var err error
	if query.Filter.MinExperience, err = queryInt(values, "min_experience"); err != nil {
		return query, fmt.Errorf("%w: %w", service.ErrInvalidQuery, err)
	}
	if query.Filter.MaxExperience, err = queryInt(values, "max_experience"); err != nil {
		return query, fmt.Errorf("%w: %w", service.ErrInvalidQuery, err)
	}
	if query.Filter.MinRate, err = queryFloat(values, "min_rate"); err != nil {
		return query, fmt.Errorf("%w: %w", service.ErrInvalidQuery, err)
	}
	if query.Filter.MaxRate, err = queryFloat(values, "max_rate"); err != nil {
		return query, fmt.Errorf("%w: %w", service.ErrInvalidQuery, err)
	}

	if query.Page, query.Limit, err = pageFromQuery(r); err != nil {
		return query, err
	}

	return query, nil
}

// pageFromQuery reads page and limit, falling back to the defaults.
func pageFromQuery(r *http.Request) (int, int, error) {
	values := r.URL.Query()
	page, limit := models.DefaultPage, models.DefaultLimit

	p, err := queryInt(values, "page")
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", service.ErrInvalidQuery, err)
	}
	if p != nil {
		page = *p
	}

	l, err := queryInt(values, "limit")
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", service.ErrInvalidQuery, err)
	}
	if l != nil {
		limit = *l
	}

	return page, limit, nil
}

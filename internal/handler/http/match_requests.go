package http

import (
	"net/http"

	"github.com/MKhiriev/mentor-match/internal/utils"
	"github.com/MKhiriev/mentor-match/models"
)

func (h *Handler) createMatchRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, err := currentUser(r)
	if err != nil {
		writeError(w, r, "*Handler.createMatchRequest", err)
		return
	}

	var request models.CreateMatchRequestRequest
	if err = decodeJSON(r, &request); err != nil {
		writeError(w, r, "*Handler.createMatchRequest", err)
		return
	}
	if err = h.validator.Validate(ctx, request); err != nil {
		writeError(w, r, "*Handler.createMatchRequest", err)
		return
	}

	created, err := h.services.MatchRequestService.CreateMatchRequest(ctx, caller, request)
	if err != nil {
		writeError(w, r, "*Handler.createMatchRequest", err)
		return
	}

	utils.WriteJSON(w, models.CreateMatchRequestResponse{
		Message:   "Match request created successfully",
		RequestID: created.ID,
	}, http.StatusCreated)
}

func (h *Handler) listMatchRequests(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r)
	if err != nil {
		writeError(w, r, "*Handler.listMatchRequests", err)
		return
	}

	query := models.NewMatchRequestQuery()
	query.Status = models.MatchRequestStatus(r.URL.Query().Get("status"))
	if query.Page, query.Limit, err = pageFromQuery(r); err != nil {
		writeError(w, r, "*Handler.listMatchRequests", err)
		return
	}

	page, err := h.services.MatchRequestService.ListMatchRequests(r.Context(), caller, query)
	if err != nil {
		writeError(w, r, "*Handler.listMatchRequests", err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) updateMatchRequestStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, err := currentUser(r)
	if err != nil {
		writeError(w, r, "*Handler.updateMatchRequestStatus", err)
		return
	}

	id, err := idFromPath(r)
	if err != nil {
		writeError(w, r, "*Handler.updateMatchRequestStatus", err)
		return
	}

	var request models.UpdateMatchRequestStatusRequest
	if err = decodeJSON(r, &request); err != nil {
		writeError(w, r, "*Handler.updateMatchRequestStatus", err)
		return
	}
	if err = h.validator.Validate(ctx, request); err != nil {
		writeError(w, r, "*Handler.updateMatchRequestStatus", err)
		return
	}

	updated, err := h.services.MatchRequestService.UpdateMatchRequestStatus(ctx, caller, id, request.Status)
	if err != nil {
		writeError(w, r, "*Handler.updateMatchRequestStatus", err)
		return
	}

	utils.WriteJSON(w, models.MatchRequestResponse{
		Message: "Match request " + string(updated.Status) + " successfully",
		Request: updated,
	}, http.StatusOK)
}

func (h *Handler) deleteMatchRequest(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteMatchRequest", err)
		return
	}

	id, err := idFromPath(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteMatchRequest", err)
		return
	}

	if err = h.services.MatchRequestService.DeleteMatchRequest(r.Context(), caller, id); err != nil {
		writeError(w, r, "*Handler.deleteMatchRequest", err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Match request deleted successfully"}, http.StatusOK)
}

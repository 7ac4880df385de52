package http

import (
	"net/http"

	"github.com/MKhiriev/mentor-match/internal/logger"
	"github.com/MKhiriev/mentor-match/internal/utils"
	"github.com/MKhiriev/mentor-match/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.SignupRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, "*Handler.signup", err)
		return
	}
	if err := h.validator.Validate(ctx, request); err != nil {
		writeError(w, r, "*Handler.signup", err)
		return
	}

	user, err := h.services.AuthService.Signup(ctx, request)
	if err != nil {
		writeError(w, r, "*Handler.signup", err)
		return
	}

	utils.WriteJSON(w, models.SignupResponse{
		Message: "User created successfully",
		User:    user.Summary(),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}
	if err := h.validator.Validate(ctx, request); err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	log.Debug().Int64("user_id", user.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Message: "Login successful",
		Token:   token.String(),
		User:    user.Summary(),
	}, http.StatusOK)
}

package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/MKhiriev/mentor-match/internal/service"
	"github.com/MKhiriev/mentor-match/internal/utils"
	"github.com/MKhiriev/mentor-match/models"
)

// profileImageField is the multipart field carrying the uploaded image.
const profileImageField = "profile_image"

func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r)
	if err != nil {
		writeError(w, r, "*Handler.getMe", err)
		return
	}

	user, err := h.services.UserService.GetProfile(r.Context(), caller.ID)
	if err != nil {
		writeError(w, r, "*Handler.getMe", err)
		return
	}

	utils.WriteJSON(w, user.Profile(), http.StatusOK)
}

// updateProfile accepts either a JSON body or multipart/form-data with the
// same text fields plus an optional "profile_image" file.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, err := currentUser(r)
	if err != nil {
		writeError(w, r, "*Handler.updateProfile", err)
		return
	}

	var (
		request models.ProfileUpdateRequest
		image   *models.ProfileImage
	)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		request, image, err = h.parseProfileForm(w, r)
	} else {
		err = decodeJSON(r, &request)
	}
	if err != nil {
		writeError(w, r, "*Handler.updateProfile", err)
		return
	}

	if err = h.validator.Validate(ctx, request); err != nil {
		writeError(w, r, "*Handler.updateProfile", err)
		return
	}

	user, err := h.services.UserService.UpdateProfile(ctx, caller.ID, request.ToUpdate(), image)
	if err != nil {
		writeError(w, r, "*Handler.updateProfile", err)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{
		Message: "Profile updated successfully",
		User:    user.Profile(),
	}, http.StatusOK)
}

func (h *Handler) parseProfileForm(w http.ResponseWriter, r *http.Request) (models.ProfileUpdateRequest, *models.ProfileImage, error) {
	var request models.ProfileUpdateRequest

	r.Body = http.MaxBytesReader(w, r.Body, h.maxImageSize+multipartOverhead)
	if err := r.ParseMultipartForm(h.maxImageSize + multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return request, nil, service.ErrImageTooLarge
		}
		return request, nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	form := r.MultipartForm.Value
	if v, ok := form["name"]; ok {
		request.Name = &v[0]
	}
	if v, ok := form["bio"]; ok {
		request.Bio = &v[0]
	}
	if v, ok := form["skills"]; ok {
		request.Skills = &v[0]
	}
	if v := r.FormValue("experience_years"); v != "" {
		years, err := strconv.Atoi(v)
		if err != nil {
			return request, nil, fmt.Errorf("%w: experience_years must be an integer", ErrInvalidForm)
		}
		request.ExperienceYears = &years
	}
	if v := r.FormValue("hourly_rate"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return request, nil, fmt.Errorf("%w: hourly_rate must be a number", ErrInvalidForm)
		}
		request.HourlyRate = &rate
	}

	file, _, err := r.FormFile(profileImageField)
	if errors.Is(err, http.ErrMissingFile) {
		return request, nil, nil
	}
	if err != nil {
		return request, nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxImageSize+1))
	if err != nil {
		return request, nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	if int64(len(data)) > h.maxImageSize {
		return request, nil, service.ErrImageTooLarge
	}

	return request, &models.ProfileImage{Data: data}, nil
}

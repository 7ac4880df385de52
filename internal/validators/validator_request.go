package validators

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/mentor-match/models"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Field limits shared by signup and profile update.
const (
	maxNameLength     = 100
	minPasswordLength = 8
	maxPasswordLength = 100
	maxBioLength      = 1000
	maxSkillsLength   = 500
	maxExperience     = 50
	maxHourlyRate     = 10000.0
	maxMessageLength  = 1000
)

// RequestValidator validates the JSON bodies accepted by the HTTP API.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(_ context.Context, obj any, fields ...string) error {
	var err error
	switch value := obj.(type) {
	case models.SignupRequest:
		err = validateSignup(&value)
	case *models.SignupRequest:
		err = validateSignup(value)
	case models.LoginRequest:
		err = validateLogin(&value)
	case *models.LoginRequest:
		err = validateLogin(value)
	case models.ProfileUpdateRequest:
		err = validateProfileUpdate(&value)
	case *models.ProfileUpdateRequest:
		err = validateProfileUpdate(value)
	case models.CreateMatchRequestRequest:
		err = validateCreateMatchRequest(&value)
	case *models.CreateMatchRequestRequest:
		err = validateCreateMatchRequest(value)
	case models.UpdateMatchRequestStatusRequest:
		err = validateUpdateStatus(&value)
	case *models.UpdateMatchRequestStatusRequest:
		err = validateUpdateStatus(value)
	default:
		return ErrUnsupportedType
	}

	err = onlyFields(err, fields)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	return nil
}

func validateSignup(r *models.SignupRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(minPasswordLength, maxPasswordLength)),
		validation.Field(&r.Name, validation.Required, validation.Length(1, maxNameLength)),
		validation.Field(&r.Role, validation.Required, validation.In(models.RoleMentor, models.RoleMentee)),
		validation.Field(&r.Bio, validation.Length(0, maxBioLength)),
		validation.Field(&r.Skills, validation.Length(0, maxSkillsLength)),
		validation.Field(&r.ExperienceYears, validation.Min(0), validation.Max(maxExperience)),
		validation.Field(&r.HourlyRate, validation.Min(0.0), validation.Max(maxHourlyRate)),
	)
}

func validateLogin(r *models.LoginRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

func validateProfileUpdate(r *models.ProfileUpdateRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, maxNameLength)),
		validation.Field(&r.Bio, validation.Length(0, maxBioLength)),
		validation.Field(&r.Skills, validation.Length(0, maxSkillsLength)),
		validation.Field(&r.ExperienceYears, validation.Min(0), validation.Max(maxExperience)),
		validation.Field(&r.HourlyRate, validation.Min(0.0), validation.Max(maxHourlyRate)),
	)
}

func validateCreateMatchRequest(r *models.CreateMatchRequestRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.MentorID, validation.Required, validation.Min(1)),
		validation.Field(&r.Message, validation.Length(0, maxMessageLength)),
	)
}

func validateUpdateStatus(r *models.UpdateMatchRequestStatusRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Status, validation.Required, validation.In(models.StatusAccepted, models.StatusRejected)),
	)
}

// onlyFields drops the errors of fields not listed. With no fields listed
// err is returned unchanged.
func onlyFields(err error, fields []string) error {
	if err == nil || len(fields) == 0 {
		return err
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}

	filtered := validation.Errors{}
	for field, fieldErr := range errs {
		if slices.Contains(fields, field) {
			filtered[field] = fieldErr
		}
	}

	return filtered.Filter()
}

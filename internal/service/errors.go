package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsMalformed    = errors.New("token is malformed")
	ErrUnauthenticated     = errors.New("user is not authenticated")

	ErrForbidden = errors.New("access denied")

	ErrInvalidQuery  = errors.New("invalid query parameters")
	ErrInvalidStatus = errors.New("status must be accepted or rejected")

	ErrMentorNotFound = errors.New("mentor not found")

	ErrEmptyProfileUpdate   = errors.New("no profile fields provided")
	ErrImageTooLarge        = errors.New("profile image is too large")
	ErrUnsupportedImageType = errors.New("profile image must be a JPEG, PNG or GIF")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/mentor-match/internal/store"
	"github.com/MKhiriev/mentor-match/models"
)

type AuthService interface {
	// Signup creates an account with a bcrypt-hashed password.
	Signup(ctx context.Context, request models.SignupRequest) (models.User, error)
	// Login checks credentials and returns the matching user.
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// Authenticate verifies tokenString and resolves it to the live user
	// record named by its subject.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int64) (models.User, error)
	// UpdateProfile applies update and, when image is not nil, replaces the
	// user's profile image.
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate, image *models.ProfileImage) (models.User, error)
	// GetProfileImage opens the image of the user with the given role and id,
	// falling back to the default placeholder. The caller closes the image.
	GetProfileImage(ctx context.Context, role models.Role, userID int64) (store.Image, error)
}

type MentorService interface {
	ListMentors(ctx context.Context, query models.MentorQuery) (models.MentorPage, error)
}

type MatchRequestService interface {
	CreateMatchRequest(ctx context.Context, caller models.User, request models.CreateMatchRequestRequest) (models.MatchRequest, error)
	ListMatchRequests(ctx context.Context, caller models.User, query models.MatchRequestQuery) (models.MatchRequestPage, error)
	UpdateMatchRequestStatus(ctx context.Context, caller models.User, requestID int64, status models.MatchRequestStatus) (models.MatchRequest, error)
	DeleteMatchRequest(ctx context.Context, caller models.User, requestID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/mentor-match/models"
)

// UserRepository owns the users table.
type UserRepository interface {
	// CreateUser inserts user and returns it with its id assigned.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// UpdateUser applies the non-nil fields of update and returns the
	// stored user.
	UpdateUser(ctx context.Context, id int64, update models.ProfileUpdate) (models.User, error)

	// FindMentors returns one page of mentors matching query.
	FindMentors(ctx context.Context, query models.MentorQuery) ([]models.User, error)
	// CountMentors counts all mentors matching filter.
	CountMentors(ctx context.Context, filter models.MentorFilter) (int, error)
}

// MatchRequestRepository owns the matching_requests table.
type MatchRequestRepository interface {
	// CreateMatchRequest inserts a pending request. A second request for the
	// same pair fails with ErrMatchRequestAlreadyExists.
	CreateMatchRequest(ctx context.Context, request models.NewMatchRequest) (models.MatchRequest, error)
	FindMatchRequestByID(ctx context.Context, id int64) (models.MatchRequest, error)
	FindMatchRequests(ctx context.Context, filter models.MatchRequestFilter) ([]models.MatchRequest, error)
	CountMatchRequests(ctx context.Context, filter models.MatchRequestFilter) (int, error)
	// UpdateMatchRequestStatus moves a pending request to status. It fails
	// with ErrMatchRequestAlreadyProcessed when the request is not pending.
	UpdateMatchRequestStatus(ctx context.Context, id int64, status models.MatchRequestStatus) (models.MatchRequest, error)
	DeleteMatchRequest(ctx context.Context, id int64) error
}

// ImageStorage keeps uploaded profile images.
type ImageStorage interface {
	// Save writes image for userID and returns the stored file name.
	Save(ctx context.Context, userID int64, image models.ProfileImage) (string, error)
	// Open returns the stored image named fileName.
	Open(ctx context.Context, fileName string) (Image, error)
	// OpenDefault returns the placeholder image, or ErrImageNotFound when
	// none is configured.
	OpenDefault(ctx context.Context) (Image, error)
	// Remove deletes fileName. Removing a missing file is not an error.
	Remove(ctx context.Context, fileName string) error
}

// Image is an opened image file. The caller must close it.
type Image struct {
	io.ReadSeekCloser
	Name    string
	ModTime time.Time
}

// ErrorClassificator maps driver errors to the constraint violations the
// repositories care about.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/MKhiriev/mentor-match/internal/store"
	"github.com/MKhiriev/mentor-match/models"
)

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn      func(ctx context.Context, user models.User) (models.User, error)
	findByIDFn    func(ctx context.Context, id int64) (models.User, error)
	findByEmailFn func(ctx context.Context, email string) (models.User, error)
	updateFn      func(ctx context.Context, id int64, update models.ProfileUpdate) (models.User, error)
	findMentorsFn func(ctx context.Context, query models.MentorQuery) ([]models.User, error)
	countFn       func(ctx context.Context, filter models.MentorFilter) (int, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	user.ID = 1
	return user, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, id int64, update models.ProfileUpdate) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, update)
	}
	return models.User{ID: id}, nil
}

func (m *mockUserRepository) FindMentors(ctx context.Context, query models.MentorQuery) ([]models.User, error) {
	if m.findMentorsFn != nil {
		return m.findMentorsFn(ctx, query)
	}
	return nil, nil
}

func (m *mockUserRepository) CountMentors(ctx context.Context, filter models.MentorFilter) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx, filter)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Mock: store.MatchRequestRepository
// ─────────────────────────────────────────────

type mockMatchRequestRepository struct {
	createFn   func(ctx context.Context, request models.NewMatchRequest) (models.MatchRequest, error)
	findByIDFn func(ctx context.Context, id int64) (models.MatchRequest, error)
	findFn     func(ctx context.Context, filter models.MatchRequestFilter) ([]models.MatchRequest, error)
	countFn    func(ctx context.Context, filter models.MatchRequestFilter) (int, error)
	updateFn   func(ctx context.Context, id int64, status models.MatchRequestStatus) (models.MatchRequest, error)
	deleteFn   func(ctx context.Context, id int64) error
}

func (m *mockMatchRequestRepository) CreateMatchRequest(ctx context.Context, request models.NewMatchRequest) (models.MatchRequest, error) {
	if m.createFn != nil {
		return m.createFn(ctx, request)
	}
	return models.MatchRequest{ID: 1, MentorID: request.MentorID, MenteeID: request.MenteeID, Message: request.Message, Status: models.StatusPending}, nil
}

func (m *mockMatchRequestRepository) FindMatchRequestByID(ctx context.Context, id int64) (models.MatchRequest, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.MatchRequest{}, store.ErrMatchRequestNotFound
}

func (m *mockMatchRequestRepository) FindMatchRequests(ctx context.Context, filter models.MatchRequestFilter) ([]models.MatchRequest, error) {
	if m.findFn != nil {
		return m.findFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockMatchRequestRepository) CountMatchRequests(ctx context.Context, filter models.MatchRequestFilter) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx, filter)
	}
	return 0, nil
}

func (m *mockMatchRequestRepository) UpdateMatchRequestStatus(ctx context.Context, id int64, status models.MatchRequestStatus) (models.MatchRequest, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, status)
	}
	return models.MatchRequest{ID: id, Status: status}, nil
}

func (m *mockMatchRequestRepository) DeleteMatchRequest(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ImageStorage
// ─────────────────────────────────────────────

type mockImageStorage struct {
	saveFn        func(ctx context.Context, userID int64, image models.ProfileImage) (string, error)
	openFn        func(ctx context.Context, name string) (store.Image, error)
	openDefaultFn func(ctx context.Context) (store.Image, error)
	removeFn      func(ctx context.Context, name string) error
}

func (m *mockImageStorage) Save(ctx context.Context, userID int64, image models.ProfileImage) (string, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, userID, image)
	}
	return "new.png", nil
}

func (m *mockImageStorage) Open(ctx context.Context, name string) (store.Image, error) {
	if m.openFn != nil {
		return m.openFn(ctx, name)
	}
	return store.Image{}, store.ErrImageNotFound
}

func (m *mockImageStorage) OpenDefault(ctx context.Context) (store.Image, error) {
	if m.openDefaultFn != nil {
		return m.openDefaultFn(ctx)
	}
	return store.Image{}, store.ErrImageNotFound
}

func (m *mockImageStorage) Remove(ctx context.Context, name string) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, name)
	}
	return nil
}

type nopReadSeekCloser struct {
	*strings.Reader
}

func (nopReadSeekCloser) Close() error { return nil }

func testImage(name, content string) store.Image {
	return store.Image{ReadSeekCloser: nopReadSeekCloser{strings.NewReader(content)}, Name: name}
}

var _ io.ReadSeekCloser = nopReadSeekCloser{}

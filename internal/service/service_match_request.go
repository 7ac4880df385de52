// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/mentor-match/internal/logger"
	"github.com/MKhiriev/mentor-match/internal/store"
	"github.com/MKhiriev/mentor-match/models"
)

// matchRequestService implements the matching request state machine:
// a mentee creates a pending request, the target mentor accepts or rejects
// it once, and either participant may delete it at any time.
//
// Role and ownership are checked here even though routes are already
// role-gated. Pair uniqueness and the pending check are left to the
// repository, which performs both atomically.
type matchRequestService struct {
	matchRequestRepository store.MatchRequestRepository
	userRepository         store.UserRepository

	logger *logger.Logger
}

func NewMatchRequestService(matchRequestRepository store.MatchRequestRepository, userRepository store.UserRepository, logger *logger.Logger) MatchRequestService {
	return &matchRequestService{
		matchRequestRepository: matchRequestRepository,
		userRepository:         userRepository,
		logger:                 logger,
	}
}

// CreateMatchRequest files a pending request from caller to the mentor.
//
// Errors:
//   - [ErrForbidden] if caller is not a mentee.
//   - [ErrMentorNotFound] if the target does not exist or is not a mentor.
//   - [store.ErrMatchRequestAlreadyExists] if the pair already has a request,
//     whatever its status.
func (s *matchRequestService) CreateMatchRequest(ctx context.Context, caller models.User, request models.CreateMatchRequestRequest) (models.MatchRequest, error) {
	log := logger.FromContext(ctx)

	if caller.Role != models.RoleMentee {
		return models.MatchRequest{}, fmt.Errorf("%w: only mentees can send match requests", ErrForbidden)
	}

	mentor, err := s.userRepository.FindUserByID(ctx, request.MentorID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.MatchRequest{}, ErrMentorNotFound
	}
	if err != nil {
		return models.MatchRequest{}, fmt.Errorf("mentor lookup failed: %w", err)
	}
	if mentor.Role != models.RoleMentor {
		return models.MatchRequest{}, ErrMentorNotFound
	}

	created, err := s.matchRequestRepository.CreateMatchRequest(ctx, models.NewMatchRequest{
		MentorID: mentor.ID,
		MenteeID: caller.ID,
		Message:  request.Message,
	})
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.MatchRequest{}, ErrMentorNotFound
	}
	if err != nil {
		log.Debug().Err(err).Int64("mentor_id", mentor.ID).Int64("mentee_id", caller.ID).Msg("match request not created")
		return models.MatchRequest{}, fmt.Errorf("match request creation failed: %w", err)
	}

	log.Info().Int64("request_id", created.ID).Int64("mentor_id", mentor.ID).Int64("mentee_id", caller.ID).Msg("match request created")
	return created, nil
}

// ListMatchRequests returns the caller's requests, newest first. Mentors see
// the requests addressed to them, mentees the ones they sent.
func (s *matchRequestService) ListMatchRequests(ctx context.Context, caller models.User, query models.MatchRequestQuery) (models.MatchRequestPage, error) {
	if query.Status != "" && !query.Status.Valid() {
		return models.MatchRequestPage{}, fmt.Errorf("%w: unknown status %q", ErrInvalidQuery, query.Status)
	}
	if err := validatePage(query.Page, query.Limit); err != nil {
		return models.MatchRequestPage{}, err
	}

	filter := models.MatchRequestFilter{
		Status: query.Status,
		Page:   query.Page,
		Limit:  query.Limit,
	}
	switch caller.Role {
	case models.RoleMentor:
		filter.MentorID = caller.ID
	case models.RoleMentee:
		filter.MenteeID = caller.ID
	default:
		return models.MatchRequestPage{}, ErrForbidden
	}

	total, err := s.matchRequestRepository.CountMatchRequests(ctx, filter)
	if err != nil {
		return models.MatchRequestPage{}, fmt.Errorf("counting match requests failed: %w", err)
	}

	requests, err := s.matchRequestRepository.FindMatchRequests(ctx, filter)
	if err != nil {
		return models.MatchRequestPage{}, fmt.Errorf("listing match requests failed: %w", err)
	}

	return models.MatchRequestPage{
		Requests:   requests,
		Pagination: models.NewPagination(query.Page, query.Limit, total),
	}, nil
}

// UpdateMatchRequestStatus accepts or rejects a pending request addressed to
// caller.
//
// Errors:
//   - [ErrForbidden] if caller is not a mentor or not the request's mentor.
//   - [ErrInvalidStatus] if status is not accepted or rejected.
//   - [store.ErrMatchRequestNotFound] if the request does not exist.
//   - [store.ErrMatchRequestAlreadyProcessed] if it is no longer pending.
func (s *matchRequestService) UpdateMatchRequestStatus(ctx context.Context, caller models.User, requestID int64, status models.MatchRequestStatus) (models.MatchRequest, error) {
	log := logger.FromContext(ctx)

	if caller.Role != models.RoleMentor {
		return models.MatchRequest{}, fmt.Errorf("%w: only mentors can answer match requests", ErrForbidden)
	}
	if !status.IsTerminal() {
		return models.MatchRequest{}, ErrInvalidStatus
	}

	request, err := s.matchRequestRepository.FindMatchRequestByID(ctx, requestID)
	if err != nil {
		return models.MatchRequest{}, fmt.Errorf("match request lookup failed: %w", err)
	}
	if request.MentorID != caller.ID {
		log.Warn().Int64("request_id", requestID).Int64("caller_id", caller.ID).Msg("mentor answering a foreign match request")
		return models.MatchRequest{}, fmt.Errorf("%w: match request is addressed to another mentor", ErrForbidden)
	}

	updated, err := s.matchRequestRepository.UpdateMatchRequestStatus(ctx, requestID, status)
	if err != nil {
		return models.MatchRequest{}, fmt.Errorf("match request status update failed: %w", err)
	}

	log.Info().Int64("request_id", requestID).Str("status", string(status)).Msg("match request answered")
	return updated, nil
}

// DeleteMatchRequest removes a request in any state. Only the mentee who sent
// it and the mentor it targets may do so.
func (s *matchRequestService) DeleteMatchRequest(ctx context.Context, caller models.User, requestID int64) error {
	log := logger.FromContext(ctx)

	request, err := s.matchRequestRepository.FindMatchRequestByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("match request lookup failed: %w", err)
	}

	isOwner := caller.Role == models.RoleMentee && request.MenteeID == caller.ID
	isTarget := caller.Role == models.RoleMentor && request.MentorID == caller.ID
	if !isOwner && !isTarget {
		log.Warn().Int64("request_id", requestID).Int64("caller_id", caller.ID).Msg("delete of a foreign match request")
		return fmt.Errorf("%w: not a participant of this match request", ErrForbidden)
	}

	if err = s.matchRequestRepository.DeleteMatchRequest(ctx, requestID); err != nil {
		return fmt.Errorf("match request deletion failed: %w", err)
	}

	log.Info().Int64("request_id", requestID).Int64("caller_id", caller.ID).Msg("match request deleted")
	return nil
}

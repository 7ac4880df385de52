package service

import (
	"context"
	"fmt"
	"math"

	"github.com/MKhiriev/mentor-match/internal/logger"
	"github.com/MKhiriev/mentor-match/internal/store"
	"github.com/MKhiriev/mentor-match/models"
)

var mentorSortFields = map[string]bool{
	models.MentorSortByCreatedAt:       true,
	models.MentorSortByExperienceYears: true,
	models.MentorSortByHourlyRate:      true,
	models.MentorSortByName:            true,
}

type mentorService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewMentorService(userRepository store.UserRepository, logger *logger.Logger) MentorService {
	return &mentorService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListMentors returns one page of the mentor directory together with the
// pagination of the whole filtered set.
func (s *mentorService) ListMentors(ctx context.Context, query models.MentorQuery) (models.MentorPage, error) {
	if err := validateMentorQuery(query); err != nil {
		return models.MentorPage{}, err
	}

	total, err := s.userRepository.CountMentors(ctx, query.Filter)
	if err != nil {
		return models.MentorPage{}, fmt.Errorf("counting mentors failed: %w", err)
	}

	users, err := s.userRepository.FindMentors(ctx, query)
	if err != nil {
		return models.MentorPage{}, fmt.Errorf("listing mentors failed: %w", err)
	}

	mentors := make([]models.Mentor, 0, len(users))
	for _, u := range users {
		mentors = append(mentors, u.Mentor())
	}

	return models.MentorPage{
		Mentors:    mentors,
		Pagination: models.NewPagination(query.Page, query.Limit, total),
	}, nil
}

func validateMentorQuery(q models.MentorQuery) error {
	if !mentorSortFields[q.SortBy] {
		return fmt.Errorf("%w: unknown sort field %q", ErrInvalidQuery, q.SortBy)
	}
	if q.Order != models.OrderAsc && q.Order != models.OrderDesc {
		return fmt.Errorf("%w: order must be asc or desc", ErrInvalidQuery)
	}

	return validatePage(q.Page, q.Limit)
}

func validatePage(page, limit int) error {
	if page < 1 {
		return fmt.Errorf("%w: page must be at least 1", ErrInvalidQuery)
	}
	if limit < 1 || limit > models.MaxLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidQuery, models.MaxLimit)
	}
	// page*limit must fit in int for the offset and has_next.
	if page > math.MaxInt/limit {
		return fmt.Errorf("%w: page is out of range", ErrInvalidQuery)
	}

	return nil
}

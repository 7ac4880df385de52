package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/mentor-match/internal/logger"
	"github.com/MKhiriev/mentor-match/models"
)

// matchRequestRepository is the SQL implementation of
// [MatchRequestRepository]. It owns the "matching_requests" table.
//
// Concurrency rests on the database: the UNIQUE(mentor_id, mentee_id)
// constraint rejects duplicate pairs and status updates are conditional on
// the row still being pending.
type matchRequestRepository struct {
	*DB
	logger *logger.Logger
}

func NewMatchRequestRepository(db *DB, logger *logger.Logger) MatchRequestRepository {
	logger.Debug().Msg("creating match request repository")
	return &matchRequestRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateMatchRequest inserts a pending request.
//
// Error handling:
//   - unique violation on the pair → [ErrMatchRequestAlreadyExists].
//   - foreign key violation → [ErrNoUserWasFound].
func (r *matchRequestRepository) CreateMatchRequest(ctx context.Context, request models.NewMatchRequest) (models.MatchRequest, error) {
	log := logger.FromContext(ctx)

	created := models.MatchRequest{
		MentorID:  request.MentorID,
		MenteeID:  request.MenteeID,
		Message:   request.Message,
		Status:    models.StatusPending,
		CreatedAt: now(),
	}
	created.UpdatedAt = created.CreatedAt

	query, args, err := buildInsertMatchRequestQuery(r.builder, created)
	if err != nil {
		log.Err(err).Str("func", "*matchRequestRepository.CreateMatchRequest").Msg("failed to build query")
		return models.MatchRequest{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.QueryRowContext(ctx, query, args...).Scan(&created.ID); err != nil {
		switch r.errorClassificator.Classify(err) {
		case UniqueViolation:
			return models.MatchRequest{}, ErrMatchRequestAlreadyExists
		case ForeignKeyViolation:
			return models.MatchRequest{}, ErrNoUserWasFound
		}
		log.Err(err).
			Str("func", "*matchRequestRepository.CreateMatchRequest").
			Int64("mentor_id", request.MentorID).
			Int64("mentee_id", request.MenteeID).
			Msg("failed to insert match request")
		return models.MatchRequest{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *matchRequestRepository) FindMatchRequestByID(ctx context.Context, id int64) (models.MatchRequest, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMatchRequestByIDQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*matchRequestRepository.FindMatchRequestByID").Msg("failed to build query")
		return models.MatchRequest{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row, err := scanMatchRequest(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.MatchRequest{}, ErrMatchRequestNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*matchRequestRepository.FindMatchRequestByID").Int64("id", id).Msg("failed to scan match request")
		return models.MatchRequest{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return row.toModel(), nil
}

func (r *matchRequestRepository) FindMatchRequests(ctx context.Context, filter models.MatchRequestFilter) ([]models.MatchRequest, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMatchRequestsQuery(r.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "*matchRequestRepository.FindMatchRequests").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*matchRequestRepository.FindMatchRequests").Msg("failed to query match requests")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	requests := make([]models.MatchRequest, 0, filter.Limit)
	for rows.Next() {
		row, err := scanMatchRequest(rows)
		if err != nil {
			log.Err(err).Str("func", "*matchRequestRepository.FindMatchRequests").Msg("failed to scan match request")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		requests = append(requests, row.toModel())
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*matchRequestRepository.FindMatchRequests").Msg("error iterating match requests")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return requests, nil
}

func (r *matchRequestRepository) CountMatchRequests(ctx context.Context, filter models.MatchRequestFilter) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountMatchRequestsQuery(r.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "*matchRequestRepository.CountMatchRequests").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*matchRequestRepository.CountMatchRequests").Msg("failed to count match requests")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// UpdateMatchRequestStatus sets status on a pending request. Zero affected
// rows means the request is gone or no longer pending; the two cases are
// told apart by a follow-up lookup.
func (r *matchRequestRepository) UpdateMatchRequestStatus(ctx context.Context, id int64, status models.MatchRequestStatus) (models.MatchRequest, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateMatchRequestStatusQuery(r.builder, id, status, now())
	if err != nil {
		log.Err(err).Str("func", "*matchRequestRepository.UpdateMatchRequestStatus").Msg("failed to build query")
		return models.MatchRequest{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*matchRequestRepository.UpdateMatchRequestStatus").Int64("id", id).Msg("failed to update status")
		return models.MatchRequest{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.MatchRequest{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	updated, err := r.FindMatchRequestByID(ctx, id)
	if err != nil {
		return models.MatchRequest{}, err
	}
	if affected == 0 {
		return models.MatchRequest{}, ErrMatchRequestAlreadyProcessed
	}

	return updated, nil
}

func (r *matchRequestRepository) DeleteMatchRequest(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteMatchRequestQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*matchRequestRepository.DeleteMatchRequest").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*matchRequestRepository.DeleteMatchRequest").Int64("id", id).Msg("failed to delete match request")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrMatchRequestNotFound
	}

	return nil
}

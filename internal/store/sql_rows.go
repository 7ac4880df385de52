package store

import (
	"database/sql"
	"time"

	"github.com/MKhiriev/mentor-match/models"
)

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// userRow mirrors userColumns.
type userRow struct {
	ID              int64
	Email           string
	PasswordHash    string
	Name            string
	Role            string
	Bio             sql.NullString
	Skills          sql.NullString
	ExperienceYears sql.NullInt64
	HourlyRate      sql.NullFloat64
	ProfileImage    sql.NullString
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func scanUser(s scanner) (userRow, error) {
	var row userRow
	err := s.Scan(
		&row.ID,
		&row.Email,
		&row.PasswordHash,
		&row.Name,
		&row.Role,
		&row.Bio,
		&row.Skills,
		&row.ExperienceYears,
		&row.HourlyRate,
		&row.ProfileImage,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	return row, err
}

func (r userRow) toModel() models.User {
	user := models.User{
		ID:              r.ID,
		Email:           r.Email,
		PasswordHash:    r.PasswordHash,
		Name:            r.Name,
		Role:            models.Role(r.Role),
		Bio:             r.Bio.String,
		Skills:          r.Skills.String,
		ExperienceYears: int(r.ExperienceYears.Int64),
		ProfileImage:    r.ProfileImage.String,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.HourlyRate.Valid {
		rate := r.HourlyRate.Float64
		user.HourlyRate = &rate
	}
	return user
}

// matchRequestRow mirrors matchRequestColumns. The counterpart columns come
// from LEFT JOINs and may be NULL.
type matchRequestRow struct {
	ID          int64
	MentorID    int64
	MenteeID    int64
	Message     sql.NullString
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	MentorName  sql.NullString
	MentorEmail sql.NullString
	MenteeName  sql.NullString
	MenteeEmail sql.NullString
}

func scanMatchRequest(s scanner) (matchRequestRow, error) {
	var row matchRequestRow
	err := s.Scan(
		&row.ID,
		&row.MentorID,
		&row.MenteeID,
		&row.Message,
		&row.Status,
		&row.CreatedAt,
		&row.UpdatedAt,
		&row.MentorName,
		&row.MentorEmail,
		&row.MenteeName,
		&row.MenteeEmail,
	)
	return row, err
}

func (r matchRequestRow) toModel() models.MatchRequest {
	return models.MatchRequest{
		ID:          r.ID,
		MentorID:    r.MentorID,
		MenteeID:    r.MenteeID,
		Message:     r.Message.String,
		Status:      models.MatchRequestStatus(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		MentorName:  r.MentorName.String,
		MentorEmail: r.MentorEmail.String,
		MenteeName:  r.MenteeName.String,
		MenteeEmail: r.MenteeEmail.String,
	}
}

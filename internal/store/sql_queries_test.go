// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/mentor-match/models"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func Test_mentorFilter(t *testing.T) {
	tests := []struct {
		name     string
		filter   models.MentorFilter
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "role only",
			filter:   models.MentorFilter{},
			wantSQL:  "(role = ?)",
			wantArgs: []any{"mentor"},
		},
		{
			name:     "skills are lowered and escaped",
			filter:   models.MentorFilter{Skills: `Go_100%\`},
			wantSQL:  `(role = ? AND LOWER(skills) LIKE ? ESCAPE '\')`,
			wantArgs: []any{"mentor", `%go\_100\%\\%`},
		},
		{
			name: "all bounds",
			filter: models.MentorFilter{
				MinExperience: intPtr(1),
				MaxExperience: intPtr(10),
				MinRate:       floatPtr(5),
				MaxRate:       floatPtr(50),
			},
			wantSQL:  "(role = ? AND experience_years >= ? AND experience_years <= ? AND hourly_rate >= ? AND hourly_rate <= ?)",
			wantArgs: []any{"mentor", 1, 10, 5.0, 50.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := mentorFilter(tt.filter).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildSelectMentorsQuery(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(q *models.MentorQuery)
		wantSQL string
		wantErr bool
	}{
		{
			name:    "defaults",
			mutate:  func(*models.MentorQuery) {},
			wantSQL: "SELECT id, email, password_hash, name, role, bio, skills, experience_years, hourly_rate, profile_image, created_at, updated_at FROM users WHERE (role = $1) ORDER BY created_at DESC, id DESC LIMIT 10 OFFSET 0",
		},
		{
			name: "name ascending third page",
			mutate: func(q *models.MentorQuery) {
				q.SortBy = models.MentorSortByName
				q.Order = models.OrderAsc
				q.Page = 3
				q.Limit = 20
			},
			wantSQL: "SELECT id, email, password_hash, name, role, bio, skills, experience_years, hourly_rate, profile_image, created_at, updated_at FROM users WHERE (role = $1) ORDER BY name ASC, id ASC LIMIT 20 OFFSET 40",
		},
		{
			name:    "hourly rate keeps nulls last",
			mutate:  func(q *models.MentorQuery) { q.SortBy = models.MentorSortByHourlyRate },
			wantSQL: "SELECT id, email, password_hash, name, role, bio, skills, experience_years, hourly_rate, profile_image, created_at, updated_at FROM users WHERE (role = $1) ORDER BY hourly_rate IS NULL, hourly_rate DESC, id DESC LIMIT 10 OFFSET 0",
		},
		{
			name:    "unknown sort column",
			mutate:  func(q *models.MentorQuery) { q.SortBy = "email; DROP TABLE users" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := models.NewMentorQuery()
			tt.mutate(&q)

			sql, _, err := buildSelectMentorsQuery(dollar, q)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBuildingSQLQuery)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
		})
	}
}

func Test_buildUpdateUserQuery(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	update := models.ProfileUpdate{
		Bio:             strPtr("new bio"),
		ExperienceYears: intPtr(4),
		HourlyRate:      floatPtr(99.5),
		ProfileImage:    strPtr("1_a.png"),
	}

	sql, args, err := buildUpdateUserQuery(question, 1, update, at)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE users SET bio = ?, experience_years = ?, hourly_rate = ?, profile_image = ?, updated_at = ? WHERE id = ?", sql)
	assert.Equal(t, []any{"new bio", 4, 99.5, "1_a.png", at, int64(1)}, args)
}

func Test_buildUpdateMatchRequestStatusQuery(t *testing.T) {
	at := time.Now()

	sql, args, err := buildUpdateMatchRequestStatusQuery(dollar, 3, models.StatusRejected, at)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE matching_requests SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4", sql)
	assert.Equal(t, []any{"rejected", at, int64(3), "pending"}, args)
}

func Test_buildSelectMatchRequestsQuery(t *testing.T) {
	sql, args, err := buildSelectMatchRequestsQuery(question, models.MatchRequestFilter{MenteeID: 4, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Contains(t, sql, "LEFT JOIN users mentor ON mentor.id = mr.mentor_id")
	assert.Contains(t, sql, "LEFT JOIN users mentee ON mentee.id = mr.mentee_id")
	assert.Contains(t, sql, "WHERE mr.mentee_id = ? ORDER BY mr.created_at DESC, mr.id DESC LIMIT 10 OFFSET 0")
	assert.Equal(t, []any{int64(4)}, args)
}

func Test_buildCountMatchRequestsQuery_NoFilter(t *testing.T) {
	sql, args, err := buildCountMatchRequestsQuery(question, models.MatchRequestFilter{})
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM matching_requests mr", sql)
	assert.Empty(t, args)
}

package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/mentor-match/models"
)

const (
	usersTable         = "users"
	matchRequestsTable = "matching_requests"
)

var userColumns = []string{
	"id",
	"email",
	"password_hash",
	"name",
	"role",
	"bio",
	"skills",
	"experience_years",
	"hourly_rate",
	"profile_image",
	"created_at",
	"updated_at",
}

var matchRequestColumns = []string{
	"mr.id",
	"mr.mentor_id",
	"mr.mentee_id",
	"mr.message",
	"mr.status",
	"mr.created_at",
	"mr.updated_at",
	"mentor.name",
	"mentor.email",
	"mentee.name",
	"mentee.email",
}

// mentorSortColumns whitelists the columns the directory may be ordered by.
var mentorSortColumns = map[string]string{
	models.MentorSortByCreatedAt:       "created_at",
	models.MentorSortByExperienceYears: "experience_years",
	models.MentorSortByHourlyRate:      "hourly_rate",
	models.MentorSortByName:            "name",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(
			"email", "password_hash", "name", "role", "bio", "skills",
			"experience_years", "hourly_rate", "created_at", "updated_at",
		).
		Values(
			user.Email, user.PasswordHash, user.Name, string(user.Role), user.Bio, user.Skills,
			user.ExperienceYears, user.HourlyRate, user.CreatedAt, user.UpdatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, id int64, update models.ProfileUpdate, updatedAt time.Time) (string, []any, error) {
	values := map[string]any{"updated_at": updatedAt}
	if update.Name != nil {
		values["name"] = *update.Name
	}
	if update.Bio != nil {
		values["bio"] = *update.Bio
	}
	if update.Skills != nil {
		values["skills"] = *update.Skills
	}
	if update.ExperienceYears != nil {
		values["experience_years"] = *update.ExperienceYears
	}
	if update.HourlyRate != nil {
		values["hourly_rate"] = *update.HourlyRate
	}
	if update.ProfileImage != nil {
		values["profile_image"] = *update.ProfileImage
	}

	return b.Update(usersTable).
		SetMap(values).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// mentorFilter is the WHERE clause shared by the directory page and count
// queries. Skills are matched case-insensitively as a literal substring.
func mentorFilter(f models.MentorFilter) sq.And {
	cond := sq.And{sq.Eq{"role": string(models.RoleMentor)}}

	if f.Skills != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(f.Skills)) + "%"
		cond = append(cond, sq.Expr(`LOWER(skills) LIKE ? ESCAPE '\'`, pattern))
	}
	if f.MinExperience != nil {
		cond = append(cond, sq.GtOrEq{"experience_years": *f.MinExperience})
	}
	if f.MaxExperience != nil {
		cond = append(cond, sq.LtOrEq{"experience_years": *f.MaxExperience})
	}
	if f.MinRate != nil {
		cond = append(cond, sq.GtOrEq{"hourly_rate": *f.MinRate})
	}
	if f.MaxRate != nil {
		cond = append(cond, sq.LtOrEq{"hourly_rate": *f.MaxRate})
	}

	return cond
}

func buildSelectMentorsQuery(b sq.StatementBuilderType, q models.MentorQuery) (string, []any, error) {
	column, ok := mentorSortColumns[q.SortBy]
	if !ok {
		return "", nil, fmt.Errorf("%w: unknown sort field %q", ErrBuildingSQLQuery, q.SortBy)
	}

	direction := "DESC"
	if q.Order == models.OrderAsc {
		direction = "ASC"
	}

	orderBy := []string{column + " " + direction, "id " + direction}
	if column == "hourly_rate" {
		// unpriced mentors go last in both directions
		orderBy = append([]string{"hourly_rate IS NULL"}, orderBy...)
	}

	return b.Select(userColumns...).
		From(usersTable).
		Where(mentorFilter(q.Filter)).
		OrderBy(orderBy...).
		Limit(uint64(q.Limit)).
		Offset(uint64(q.Offset())).
		ToSql()
}

func buildCountMentorsQuery(b sq.StatementBuilderType, f models.MentorFilter) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(usersTable).
		Where(mentorFilter(f)).
		ToSql()
}

func buildInsertMatchRequestQuery(b sq.StatementBuilderType, r models.MatchRequest) (string, []any, error) {
	return b.Insert(matchRequestsTable).
		Columns("mentor_id", "mentee_id", "message", "status", "created_at", "updated_at").
		Values(r.MentorID, r.MenteeID, r.Message, string(r.Status), r.CreatedAt, r.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func selectMatchRequests(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(matchRequestColumns...).
		From(matchRequestsTable + " mr").
		LeftJoin(usersTable + " mentor ON mentor.id = mr.mentor_id").
		LeftJoin(usersTable + " mentee ON mentee.id = mr.mentee_id")
}

func buildSelectMatchRequestByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return selectMatchRequests(b).
		Where(sq.Eq{"mr.id": id}).
		ToSql()
}

func matchRequestFilter(f models.MatchRequestFilter) sq.Eq {
	cond := sq.Eq{}
	if f.MentorID != 0 {
		cond["mr.mentor_id"] = f.MentorID
	}
	if f.MenteeID != 0 {
		cond["mr.mentee_id"] = f.MenteeID
	}
	if f.Status != "" {
		cond["mr.status"] = string(f.Status)
	}
	return cond
}

func whereMatchRequests(sb sq.SelectBuilder, f models.MatchRequestFilter) sq.SelectBuilder {
	if cond := matchRequestFilter(f); len(cond) > 0 {
		sb = sb.Where(cond)
	}
	return sb
}

func buildSelectMatchRequestsQuery(b sq.StatementBuilderType, f models.MatchRequestFilter) (string, []any, error) {
	return whereMatchRequests(selectMatchRequests(b), f).
		OrderBy("mr.created_at DESC", "mr.id DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset())).
		ToSql()
}

func buildCountMatchRequestsQuery(b sq.StatementBuilderType, f models.MatchRequestFilter) (string, []any, error) {
	return whereMatchRequests(b.Select("COUNT(*)").From(matchRequestsTable+" mr"), f).
		ToSql()
}

// buildUpdateMatchRequestStatusQuery only matches pending requests, so the
// status check and the write happen in one statement.
func buildUpdateMatchRequestStatusQuery(b sq.StatementBuilderType, id int64, status models.MatchRequestStatus, updatedAt time.Time) (string, []any, error) {
	return b.Update(matchRequestsTable).
		Set("status", string(status)).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id, "status": string(models.StatusPending)}).
		ToSql()
}

func buildDeleteMatchRequestQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(matchRequestsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

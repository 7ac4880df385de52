package models

import "time"

// Mentor sort fields accepted by the directory.
const (
	MentorSortByCreatedAt       = "created_at"
	MentorSortByExperienceYears = "experience_years"
	MentorSortByHourlyRate      = "hourly_rate"
	MentorSortByName            = "name"
)

// Sort orders.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Pagination defaults and bounds shared by every paged listing.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Mentor is the directory view of a mentor. It never carries credentials
// or the e-mail address.
type Mentor struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Bio             string    `json:"bio"`
	Skills          string    `json:"skills"`
	ExperienceYears int       `json:"experience_years"`
	HourlyRate      *float64  `json:"hourly_rate"`
	ProfileImageURL *string   `json:"profile_image_url"`
	CreatedAt       time.Time `json:"created_at"`
}

// Mentor returns the directory view of u.
func (u User) Mentor() Mentor {
	return Mentor{
		ID:              u.ID,
		Name:            u.Name,
		Bio:             u.Bio,
		Skills:          u.Skills,
		ExperienceYears: u.ExperienceYears,
		HourlyRate:      u.HourlyRate,
		ProfileImageURL: optionalString(u.ProfileImageURL()),
		CreatedAt:       u.CreatedAt,
	}
}

// MentorFilter narrows the directory. Nil bounds are not applied; all bounds
// are inclusive.
type MentorFilter struct {
	Skills        string
	MinExperience *int
	MaxExperience *int
	MinRate       *float64
	MaxRate       *float64
}

// MentorQuery is a complete directory request: filters, sort and page.
type MentorQuery struct {
	Filter MentorFilter
	SortBy string
	Order  string
	Page   int
	Limit  int
}

// NewMentorQuery returns a query populated with the directory defaults.
func NewMentorQuery() MentorQuery {
	return MentorQuery{
		SortBy: MentorSortByCreatedAt,
		Order:  OrderDesc,
		Page:   DefaultPage,
		Limit:  DefaultLimit,
	}
}

// Offset returns the number of rows to skip for the query's page.
func (q MentorQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// MentorPage is one page of the directory.
type MentorPage struct {
	Mentors    []Mentor   `json:"mentors"`
	Pagination Pagination `json:"pagination"`
}

package models

import (
	"strconv"
	"time"
)

// Role is the immutable kind of account a user signed up with.
type Role string

const (
	// RoleMentor receives and answers matching requests and is listed in the
	// mentor directory.
	RoleMentor Role = "mentor"

	// RoleMentee initiates matching requests against mentors.
	RoleMentee Role = "mentee"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleMentor || r == RoleMentee
}

// User is the identity record owned by the credential store.
// PasswordHash never leaves the server: it is excluded from JSON.
type User struct {
	ID              int64     `json:"id"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	Name            string    `json:"name"`
	Role            Role      `json:"role"`
	Bio             string    `json:"bio"`
	Skills          string    `json:"skills"`
	ExperienceYears int       `json:"experience_years"`
	HourlyRate      *float64  `json:"hourly_rate"`
	ProfileImage    string    `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with User.
func (u User) TableName() string {
	return "users"
}

// HasRole reports whether the user's role is one of roles.
func (u User) HasRole(roles ...Role) bool {
	for _, role := range roles {
		if u.Role == role {
			return true
		}
	}
	return false
}

// ProfileImageURL returns the public URL of the user's profile image or an
// empty string when no image was uploaded.
func (u User) ProfileImageURL() string {
	if u.ProfileImage == "" {
		return ""
	}
	return "/api/images/" + string(u.Role) + "/" + strconv.FormatInt(u.ID, 10)
}

// UserSummary is the short identity view returned by signup and login.
type UserSummary struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// Summary returns the short identity view of u.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

// Profile is the full public view of a user, as returned by GET /api/me.
type Profile struct {
	ID              int64     `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Role            Role      `json:"role"`
	Bio             string    `json:"bio"`
	Skills          string    `json:"skills"`
	ExperienceYears int       `json:"experience_years"`
	HourlyRate      *float64  `json:"hourly_rate"`
	ProfileImageURL *string   `json:"profile_image_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Profile returns the full public view of u.
func (u User) Profile() Profile {
	return Profile{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		Role:            u.Role,
		Bio:             u.Bio,
		Skills:          u.Skills,
		ExperienceYears: u.ExperienceYears,
		HourlyRate:      u.HourlyRate,
		ProfileImageURL: optionalString(u.ProfileImageURL()),
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// ProfileUpdate describes a partial profile change. Nil fields are left
// untouched.
type ProfileUpdate struct {
	Name            *string
	Bio             *string
	Skills          *string
	ExperienceYears *int
	HourlyRate      *float64
	ProfileImage    *string
}

// IsEmpty reports whether the update changes nothing.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Name == nil && p.Bio == nil && p.Skills == nil &&
		p.ExperienceYears == nil && p.HourlyRate == nil && p.ProfileImage == nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package models

// SignupRequest is the body of POST /api/signup.
type SignupRequest struct {
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	Name            string   `json:"name"`
	Role            Role     `json:"role"`
	Bio             string   `json:"bio"`
	Skills          string   `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	HourlyRate      *float64 `json:"hourly_rate"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdateRequest is the text part of PUT /api/profile. Absent fields
// are left unchanged.
type ProfileUpdateRequest struct {
	Name            *string  `json:"name"`
	Bio             *string  `json:"bio"`
	Skills          *string  `json:"skills"`
	ExperienceYears *int     `json:"experience_years"`
	HourlyRate      *float64 `json:"hourly_rate"`
}

// ToUpdate converts the request into a domain profile update.
func (r ProfileUpdateRequest) ToUpdate() ProfileUpdate {
	return ProfileUpdate{
		Name:            r.Name,
		Bio:             r.Bio,
		Skills:          r.Skills,
		ExperienceYears: r.ExperienceYears,
		HourlyRate:      r.HourlyRate,
	}
}

// CreateMatchRequestRequest is the body of POST /api/match-requests.
type CreateMatchRequestRequest struct {
	MentorID int64  `json:"mentor_id"`
	Message  string `json:"message"`
}

// UpdateMatchRequestStatusRequest is the body of PUT /api/match-requests/{id}.
type UpdateMatchRequestStatusRequest struct {
	Status MatchRequestStatus `json:"status"`
}

// ProfileImage is an uploaded image ready to be persisted.
type ProfileImage struct {
	Data        []byte
	ContentType string
}

package models

import "time"

// MatchRequestStatus is the lifecycle state of a matching request.
//
// pending is the only initial state; accepted and rejected are terminal.
type MatchRequestStatus string

const (
	StatusPending  MatchRequestStatus = "pending"
	StatusAccepted MatchRequestStatus = "accepted"
	StatusRejected MatchRequestStatus = "rejected"
)

// Valid reports whether s is a known status.
func (s MatchRequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no transition out of s exists.
func (s MatchRequestStatus) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// MatchRequest is one mentee's request to one mentor.
//
// The counterpart fields are filled by list and lookup queries that join
// the users table; they are empty on freshly created requests.
type MatchRequest struct {
	ID        int64              `json:"id"`
	MentorID  int64              `json:"mentor_id"`
	MenteeID  int64              `json:"mentee_id"`
	Message   string             `json:"message"`
	Status    MatchRequestStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`

	MentorName  string `json:"mentor_name,omitempty"`
	MentorEmail string `json:"mentor_email,omitempty"`
	MenteeName  string `json:"mentee_name,omitempty"`
	MenteeEmail string `json:"mentee_email,omitempty"`
}

// TableName returns the name of the database table associated with
// MatchRequest.
func (m MatchRequest) TableName() string {
	return "matching_requests"
}

// NewMatchRequest describes a request to be created by a mentee.
type NewMatchRequest struct {
	MentorID int64
	MenteeID int64
	Message  string
}

// MatchRequestFilter selects the requests visible to one participant.
// Exactly one of MentorID and MenteeID is set.
type MatchRequestFilter struct {
	MentorID int64
	MenteeID int64
	Status   MatchRequestStatus
	Page     int
	Limit    int
}

// Offset returns the number of rows to skip for the filter's page.
func (f MatchRequestFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// MatchRequestQuery is the caller-supplied part of a listing.
type MatchRequestQuery struct {
	Status MatchRequestStatus
	Page   int
	Limit  int
}

// NewMatchRequestQuery returns a query populated with the listing defaults.
func NewMatchRequestQuery() MatchRequestQuery {
	return MatchRequestQuery{Page: DefaultPage, Limit: DefaultLimit}
}

// MatchRequestPage is one page of a participant's requests.
type MatchRequestPage struct {
	Requests   []MatchRequest `json:"requests"`
	Pagination Pagination     `json:"pagination"`
}

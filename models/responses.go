package models

// ErrorResponse is the body of every failed API call. Error holds the
// HTTP status category, Message a human readable explanation.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// MessageResponse is the body of calls that only acknowledge an action.
type MessageResponse struct {
	Message string `json:"message"`
}

// SignupResponse is returned after a successful signup.
type SignupResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

// ProfileResponse is returned after a profile update.
type ProfileResponse struct {
	Message string  `json:"message"`
	User    Profile `json:"user"`
}

// CreateMatchRequestResponse is returned after a request is created.
type CreateMatchRequestResponse struct {
	Message   string `json:"message"`
	RequestID int64  `json:"request_id"`
}

// VersionResponse describes the running build.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"build_date,omitempty"`
	Commit  string `json:"build_commit,omitempty"`
}

// MatchRequestResponse is returned after a request was answered.
type MatchRequestResponse struct {
	Message string       `json:"message"`
	Request MatchRequest `json:"request"`
}

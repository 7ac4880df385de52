package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user insert violates the
	// unique e-mail constraint.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup by id or e-mail matches no
	// user, or when a referenced user no longer exists.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrMatchRequestAlreadyExists is returned when a request for the same
	// (mentor, mentee) pair already exists, whatever its status.
	ErrMatchRequestAlreadyExists = errors.New("match request already exists")

	// ErrMatchRequestNotFound is returned when no request has the given id.
	ErrMatchRequestNotFound = errors.New("match request not found")

	// ErrMatchRequestAlreadyProcessed is returned when a status update finds
	// the request no longer pending.
	ErrMatchRequestAlreadyProcessed = errors.New("match request has already been processed")

	// ErrImageNotFound is returned when an image file does not exist.
	ErrImageNotFound = errors.New("image not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails for a reason other than a known constraint violation.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

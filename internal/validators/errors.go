package validators

import "errors"

var (
	// ErrUnsupportedType is returned for values the validator has no rules for.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrInvalidRequest wraps every rule violation.
	ErrInvalidRequest = errors.New("invalid request data")
)

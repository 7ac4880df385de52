// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads at the API boundary, before
// they are turned into domain values.
//
// Rules are declared with ozzo-validation. A failed validation returns an
// error wrapping [ErrInvalidRequest] whose text lists the offending fields.
package validators

import "context"

// Validator validates an input value, optionally restricting the check to
// the named (JSON) fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}

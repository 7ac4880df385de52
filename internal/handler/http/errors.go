// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("access token required")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrUserNotInContext is returned when a protected handler runs without
	// the auth middleware.
	ErrUserNotInContext = errors.New("no authenticated user in request context")

	ErrInvalidJSON = errors.New("invalid JSON was passed")
	ErrInvalidID   = errors.New("invalid id")
	ErrInvalidForm = errors.New("invalid form data")

	ErrInvalidGzipBody = errors.New("invalid gzip data")

	ErrRouteNotFound = errors.New("route not found")
)

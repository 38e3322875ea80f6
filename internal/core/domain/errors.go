package domain

import "errors"

var (
	// ErrUnauthorized is surfaced when the API answers 401. The HTTP
	// client clears the durable token before returning it.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotAuthenticated guards operations that require a live session.
	ErrNotAuthenticated = errors.New("not authenticated, run login first")
	// ErrInvalidCredentials is returned by login validation.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound maps 404 responses on single-record lookups.
	ErrNotFound = errors.New("not found")
)

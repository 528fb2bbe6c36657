// Package common defines shared constants and sentinel errors used across
// the museumkeeper data layer. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors are returned before any I/O happens.
	ErrorValidation = errors.New("validation error")

	// ErrorNotSignedIn is returned by operations that require an active session.
	ErrorNotSignedIn = errors.New("no active session")
)

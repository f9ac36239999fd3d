package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist, or exists but is not visible to the caller.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. unknown enum value, scenic preference out of range).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a write would violate a uniqueness rule,
// such as a second invitation for the same (trip, user) pair or a reused email.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrForbidden is returned when the caller can see a resource but is not
// allowed to change it (e.g. a participant trying to invite others).
// Handlers should map this to HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized is returned for bad credentials and invalid or expired tokens.
// Handlers should map this to HTTP 401.
var ErrUnauthorized = errors.New("unauthorized")

// ErrPreferencesRequired is returned when an operation needs the caller's
// onboarding preferences and none have been saved yet.
// Handlers should map this to HTTP 400.
var ErrPreferencesRequired = errors.New("preferences required")

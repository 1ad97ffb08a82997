package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the referenced
// trip or participant does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails a business
// rule (e.g. destination too short, end date before start date, activity
// scheduled outside the trip range).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

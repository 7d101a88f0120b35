package domain

import "errors"

// ErrNotFound is returned by repo and service functions when no hobby with
// the requested id exists in the backing collection.
// Handlers map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (missing required title).
// Handlers map this to HTTP 400 Bad Request.
var ErrValidation = errors.New("validation error")

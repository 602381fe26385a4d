package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, detail date outside the
// plan's range).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrDuplicateUsername is returned by UserService.Register when the trimmed
// username is already taken by an existing user.
// Handlers should map this to HTTP 409 Conflict.
var ErrDuplicateUsername = errors.New("username already exists")

// ErrInvalidCredentials is returned when authentication fails, for either an
// unknown username or a wrong password — callers cannot tell which.
// Handlers should map this to HTTP 401.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNotOwner is returned by service functions when a user attempts to
// mutate, delete, or publish a plan owned by someone else.
// Handlers should map this to HTTP 403.
var ErrNotOwner = errors.New("not the plan owner")

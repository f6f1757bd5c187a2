// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// string matching. Handlers translate them into HTTP responses:
// ErrEventNotFound becomes 404, ErrForbidden 403 and so on.
package repository

import "errors"

// ErrEmailExists is returned when registering with an email address
// that is already taken.
var ErrEmailExists = errors.New("email already exists")

// ErrEventNotFound is returned when an event id does not resolve to a
// stored event.
var ErrEventNotFound = errors.New("event not found")

// ErrUserNotFound is returned when a user id does not resolve to a
// stored account.
var ErrUserNotFound = errors.New("user not found")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own.
var ErrForbidden = errors.New("forbidden")

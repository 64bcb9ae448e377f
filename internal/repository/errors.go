// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as handlers
// to distinguish between different failure scenarios: ErrNotFound becomes a
// 404, ErrForbidden a 403 and the duplicate errors become field-level
// validation messages.
package repository

import "errors"

// ErrNotFound is returned when a row cannot be found by id.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own.
var ErrForbidden = errors.New("forbidden")

// ErrUsernameExists is returned when an insert collides with the unique
// username index.
var ErrUsernameExists = errors.New("username already exists")

// ErrEmailExists is returned when an insert collides with the unique email
// index.
var ErrEmailExists = errors.New("email already exists")

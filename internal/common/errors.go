// Package common defines shared constants and sentinel errors used across
// the user service. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Validation errors.
	ErrInvalidInput = errors.New("invalid input")

	// Authentication errors. Absent user and wrong password both collapse
	// into ErrInvalidCredentials so callers cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveUser       = errors.New("inactive user")
	ErrTokenInvalid       = errors.New("invalid token")

	// Account lifecycle errors.
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

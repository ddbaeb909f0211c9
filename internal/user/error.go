package user

import "errors"

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserDisabled       = errors.New("user account is disabled")
	ErrNothingToUpdate    = errors.New("no fields to update")
	ErrInvalidRole        = errors.New("invalid role")

	// -- Constants (External Systems) --
	PgUniqueViolation = "23505"
)

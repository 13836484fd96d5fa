package auth

import "errors"

// Sentinel errors for the auth flows. Handlers translate these into the
// user-facing messages and status codes; anything not listed here is
// treated as a storage failure and answered with a 500.
var (
	ErrMissingFields = errors.New("all fields are required")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrEmailTaken    = errors.New("email is already registered")
	ErrUsernameTaken = errors.New("username is already taken")
	ErrNoAccount     = errors.New("no account found with this email or username")
	ErrWrongPassword = errors.New("incorrect password")
	ErrNotFound      = errors.New("user not found")
)

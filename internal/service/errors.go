package service

import "errors"

var (
	// ErrNotFound maps to 404 at the API boundary.
	ErrNotFound = errors.New("not found")
	// ErrNotAuthorized is returned when the owner-or-admin rule denies a
	// mutation.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrInvalidCredentials covers both unknown email and bad password so
	// login failures are indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when registering with an existing email.
	ErrEmailTaken = errors.New("user with this email already exists")
	// ErrUsernameTaken is returned when registering with an existing
	// username.
	ErrUsernameTaken = errors.New("user with this username already exists")
	// ErrInvalidToken covers bad signatures, malformed tokens and expiry.
	ErrInvalidToken = errors.New("invalid or expired token")
)

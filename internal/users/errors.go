package users

import "errors"

var (
	// ErrUserNotFound indicates no credential record exists for the username.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser indicates a credential record already exists for the username.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrSessionNotFound indicates no session row exists for the token.
	ErrSessionNotFound = errors.New("session not found")
)

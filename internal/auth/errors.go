package auth

import "errors"

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDuplicateUser indicates the username is already provisioned.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrNoSession indicates no active login session exists.
	ErrNoSession = errors.New("no active session")
	// ErrSessionExpired indicates the login session has lapsed.
	ErrSessionExpired = errors.New("session expired")
)

// Package user provides use cases for account management and credential
// verification.
package user

import "errors"

var (
	// ErrDuplicateUsername indicates the username is already taken.
	ErrDuplicateUsername = errors.New("user already exists")

	// ErrInvalidCredentials indicates the username/password pair did not
	// match. Callers get the same error for an unknown username and a
	// wrong password, so responses never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound indicates no user has the requested id.
	ErrUserNotFound = errors.New("user not found")
)

package user

import "errors"

var (
	// ErrInvalidCredentials covers both unknown username and wrong
	// password so a caller cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrUserNotFound = errors.New("user not found")
)

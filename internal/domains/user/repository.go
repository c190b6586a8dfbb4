package user

import "context"

// Repository is the read-only access path to the identity store.
type Repository interface {
	// FindByUsername returns the user with roles loaded, or
	// ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*User, error)
}

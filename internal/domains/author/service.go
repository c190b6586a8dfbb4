package author

import "context"

// Service orchestrates validation, existence checks, repository calls and
// mapping for the author endpoints.
type Service interface {
	// List returns all authors as read DTOs, in store order.
	List(ctx context.Context) ([]AuthorResponse, error)

	// Get returns one author or ErrAuthorNotFound.
	Get(ctx context.Context, id int64) (*AuthorResponse, error)

	// Create validates the DTO, persists it and returns the stored
	// entity including its new identifier.
	Create(ctx context.Context, req *CreateAuthorRequest) (*AuthorResponse, error)

	// Update applies the DTO to the row at id. Fails with ErrInvalidID,
	// ErrIDMismatch, a validation error, or ErrAuthorNotFound before
	// touching the store.
	Update(ctx context.Context, id int64, req *UpdateAuthorRequest) error

	// Delete checks existence, re-fetches the entity and removes it.
	// The check-then-act sequence is not atomic with the delete.
	Delete(ctx context.Context, id int64) error
}

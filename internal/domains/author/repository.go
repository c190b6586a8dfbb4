package author

import (
	"context"

	"bookstore-api/internal/shared"
)

// Repository is the sole access path to persisted authors.
//
// Reads return (value, error): ErrAuthorNotFound when the row is absent,
// a wrapped storage error otherwise. Writes report their outcome through
// shared.WriteResult so the caller can tell a rejected write from a
// missing row.
type Repository interface {
	// FindAll returns authors in the store's natural order, each with
	// its book summaries.
	FindAll(ctx context.Context) ([]Author, error)

	// FindByID returns the author with its books, or ErrAuthorNotFound.
	FindByID(ctx context.Context, id int64) (*Author, error)

	// Exists reports whether an author row exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// Create inserts a and fills in the store-assigned identifier.
	Create(ctx context.Context, a *Author) shared.WriteResult

	// Update rewrites the row identified by a.ID. RowsAffected is zero
	// when the row vanished between the existence check and the write.
	Update(ctx context.Context, a *Author) shared.WriteResult

	// Delete removes the given entity's row. A foreign-key rejection
	// surfaces as ErrAuthorHasBooks in the result cause.
	Delete(ctx context.Context, a *Author) shared.WriteResult
}

package book

import (
	"context"

	"bookstore-api/internal/shared"
)

// Repository is the sole access path to persisted books. Same contract
// shape as the author repository: reads return (value, error), writes
// report through shared.WriteResult.
type Repository interface {
	FindAll(ctx context.Context) ([]Book, error)
	FindByID(ctx context.Context, id int64) (*Book, error)
	Exists(ctx context.Context, id int64) (bool, error)

	// Create inserts b and fills in the store-assigned identifier. An
	// invalid author foreign key surfaces as ErrAuthorMissing in the
	// result cause.
	Create(ctx context.Context, b *Book) shared.WriteResult
	Update(ctx context.Context, b *Book) shared.WriteResult
	Delete(ctx context.Context, b *Book) shared.WriteResult
}

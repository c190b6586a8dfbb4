package book

import "context"

// Service orchestrates validation, existence checks, repository calls and
// mapping for the book endpoints.
type Service interface {
	List(ctx context.Context) ([]BookResponse, error)
	Get(ctx context.Context, id int64) (*BookResponse, error)
	Create(ctx context.Context, req *CreateBookRequest) (*BookResponse, error)
	Update(ctx context.Context, id int64, req *UpdateBookRequest) error
	Delete(ctx context.Context, id int64) error
}

package service

import (
	"context"
	"errors"
	"fmt"

	"bookstore-api/internal/domains/author"
	"bookstore-api/internal/domains/book"
)

type bookService struct {
	repo    book.Repository
	authors author.Repository
}

// NewBookService builds the book service. The author repository backs the
// foreign-key presence check on create and update.
func NewBookService(repo book.Repository, authors author.Repository) book.Service {
	return &bookService{repo: repo, authors: authors}
}

func (s *bookService) List(ctx context.Context) ([]book.BookResponse, error) {
	books, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	out := make([]book.BookResponse, 0, len(books))
	for i := range books {
		out = append(out, *books[i].ToResponse())
	}
	return out, nil
}

func (s *bookService) Get(ctx context.Context, id int64) (*book.BookResponse, error) {
	if id < 1 {
		return nil, book.ErrInvalidID
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return b.ToResponse(), nil
}

func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.BookResponse, error) {
	if req == nil {
		return nil, book.ErrEmptyRequest
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkAuthor(ctx, req.AuthorID); err != nil {
		return nil, err
	}

	b := req.ToEntity()
	if res := s.repo.Create(ctx, b); !res.Succeeded {
		if errors.Is(res.Cause, book.ErrAuthorMissing) {
			return nil, book.ErrAuthorMissing
		}
		return nil, fmt.Errorf("create book: %w", res.Cause)
	}
	return b.ToResponse(), nil
}

func (s *bookService) Update(ctx context.Context, id int64, req *book.UpdateBookRequest) error {
	if id < 1 {
		return book.ErrInvalidID
	}
	if req == nil {
		return book.ErrEmptyRequest
	}
	if id != req.ID {
		return book.ErrIDMismatch
	}

	// Existence check is a separate round-trip from the update.
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check book existence: %w", err)
	}
	if !exists {
		return book.ErrBookNotFound
	}

	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.checkAuthor(ctx, req.AuthorID); err != nil {
		return err
	}

	if res := s.repo.Update(ctx, req.ToEntity()); !res.Succeeded {
		switch {
		case errors.Is(res.Cause, book.ErrBookNotFound):
			return book.ErrBookNotFound
		case errors.Is(res.Cause, book.ErrAuthorMissing):
			return book.ErrAuthorMissing
		default:
			return fmt.Errorf("update book: %w", res.Cause)
		}
	}
	return nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	if id < 1 {
		return book.ErrInvalidID
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check book existence: %w", err)
	}
	if !exists {
		return book.ErrBookNotFound
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if res := s.repo.Delete(ctx, b); !res.Succeeded {
		if errors.Is(res.Cause, book.ErrBookNotFound) {
			return book.ErrBookNotFound
		}
		return fmt.Errorf("delete book: %w", res.Cause)
	}
	return nil
}

func (s *bookService) checkAuthor(ctx context.Context, authorID int64) error {
	ok, err := s.authors.Exists(ctx, authorID)
	if err != nil {
		return fmt.Errorf("check author existence: %w", err)
	}
	if !ok {
		return book.ErrAuthorMissing
	}
	return nil
}
